//go:build !integration

package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGetTranslator_Singleton(t *testing.T) {
	assert.Same(t, GetTranslator(), GetTranslator())
}

func TestTranslator_Translate(t *testing.T) {
	translator := NewTranslator()

	tests := []struct {
		name     string
		key      string
		locale   string
		expected string
	}{
		{name: "english", key: ErrKeyAirlineNotFound, locale: "en", expected: "Airline not found"},
		{name: "portuguese", key: ErrKeyAirlineNotFound, locale: "pt", expected: "Companhia aérea não encontrada"},
		{name: "dutch", key: ErrKeyDatasetReadOnly, locale: "nl", expected: "De dataset met luchtvaartmaatschappijen is alleen-lezen"},
		{name: "empty locale", key: ErrKeyInvalidRequest, locale: "", expected: "Invalid request"},
		{name: "unsupported locale", key: ErrKeyInvalidRequest, locale: "fr", expected: "Invalid request"},
		{name: "unknown key", key: "error.lost_luggage", locale: "pt", expected: "error.lost_luggage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, translator.Translate(tt.key, tt.locale))
		})
	}
}

func TestTranslator_MissingKeyFallsBackToEnglish(t *testing.T) {
	translator := &Translator{messages: map[string]map[string]string{
		"en": {ErrKeyTimeout: "Request timed out"},
		"nl": {},
	}}

	assert.Equal(t, "Request timed out", translator.Translate(ErrKeyTimeout, "nl"))
}

func TestGetLocale(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		acceptLanguage string
		expected       string
	}{
		{name: "no header", acceptLanguage: "", expected: DefaultLocale},
		{name: "plain tag", acceptLanguage: "nl", expected: "nl"},
		{name: "region subtag", acceptLanguage: "pt-BR", expected: "pt"},
		{name: "upper case", acceptLanguage: "NL-be", expected: "nl"},
		{name: "first of equal weights", acceptLanguage: "pt, nl", expected: "pt"},
		{name: "highest q wins", acceptLanguage: "en;q=0.5, nl;q=0.9, pt;q=0.7", expected: "nl"},
		{name: "unsupported first", acceptLanguage: "fr-CA, fr;q=0.9, pt;q=0.8", expected: "pt"},
		{name: "refused language", acceptLanguage: "pt;q=0, fr", expected: DefaultLocale},
		{name: "malformed q", acceptLanguage: "en;q=0.8, nl;q=high", expected: "nl"},
		{name: "wildcard only", acceptLanguage: "*", expected: DefaultLocale},
		{name: "nothing supported", acceptLanguage: "de-DE, fr;q=0.9", expected: DefaultLocale},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/api/airlines", nil)
			if tt.acceptLanguage != "" {
				c.Request.Header.Set(AcceptLanguageHeader, tt.acceptLanguage)
			}

			assert.Equal(t, tt.expected, GetLocale(c))
		})
	}
}

func TestDefaultMessages_EveryLocaleIsComplete(t *testing.T) {
	english := defaultMessages[DefaultLocale]
	for locale, messages := range defaultMessages {
		t.Run(locale, func(t *testing.T) {
			assert.Len(t, messages, len(english))
			for key := range english {
				assert.NotEmpty(t, messages[key], "missing %s", key)
			}
		})
	}
}
