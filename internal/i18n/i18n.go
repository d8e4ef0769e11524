package i18n

import (
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: defaultMessages,
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the message for key in locale. Unknown locales and keys
// missing from a locale fall back to DefaultLocale; unknown keys return the key.
func (t *Translator) Translate(key, locale string) string {
	if msg, ok := t.messages[locale][key]; ok {
		return msg
	}
	if msg, ok := t.messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// GetLocale negotiates the response locale from Accept-Language.
// The supported language with the highest q-value wins; ties go to the
// earlier entry. Region subtags are ignored, so pt-BR selects pt.
func GetLocale(c *gin.Context) string {
	header := c.GetHeader(AcceptLanguageHeader)
	if header == "" {
		return DefaultLocale
	}

	best, bestQ := DefaultLocale, 0.0
	for _, part := range strings.Split(header, ",") {
		tag, params, _ := strings.Cut(part, ";")
		lang, _, _ := strings.Cut(strings.ToLower(strings.TrimSpace(tag)), "-")
		if _, ok := defaultMessages[lang]; !ok {
			continue
		}

		q := qualityOf(params)
		if q > bestQ {
			best, bestQ = lang, q
		}
	}
	return best
}

// qualityOf reads the q parameter of one Accept-Language entry.
// A missing or malformed value counts as 1.
func qualityOf(params string) float64 {
	for _, p := range strings.Split(params, ";") {
		name, value, ok := strings.Cut(strings.TrimSpace(p), "=")
		if !ok || strings.TrimSpace(name) != "q" {
			continue
		}
		q, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil || q < 0 || q > 1 {
			return 1
		}
		return q
	}
	return 1
}

var defaultMessages = map[string]map[string]string{
	"en": {
		ErrKeyInvalidRequest:        "Invalid request",
		ErrKeyInvalidRequestBody:    "Invalid request body",
		ErrKeyInternalError:         "An unexpected error occurred",
		ErrKeyUnauthorized:          "Unauthorized",
		ErrKeyInvalidOperatorKey:    "Invalid operator key",
		ErrKeyAPIKeyRequired:        "API key is required",
		ErrKeyInvalidAPIKey:         "Invalid API key",
		ErrKeyForbidden:             "Forbidden",
		ErrKeyNotFound:              "Not found",
		ErrKeyAirlineNotFound:       "Airline not found",
		ErrKeyRateLimitExceeded:     "Too many requests, please try again later",
		ErrKeyConflict:              "Conflict",
		ErrKeyInvalidDimensions:     "Dimensions must be finite and not negative",
		ErrKeyInvalidFillPercentage: "Fill percentage must be between 0 and 100",
		ErrKeyInvalidSystem:         "Measurement system must be metric or imperial",
		ErrKeyInvalidAirline:        "Airline allowance is invalid",
		ErrKeyDataIntegrity:         "Airline data is incomplete for this measurement system",
		ErrKeyDatasetReadOnly:       "The airline dataset is read-only",
		ErrKeyServiceUnavailable:    "Service temporarily unavailable",
		ErrKeyInvalidToken:          "Invalid or expired token",
		ErrKeyTokenRequired:         "Authentication token is required",
		ErrKeyTimeout:               "Request timed out",
	},
	"pt": {
		ErrKeyInvalidRequest:        "Requisição inválida",
		ErrKeyInvalidRequestBody:    "Corpo da requisição inválido",
		ErrKeyInternalError:         "Ocorreu um erro inesperado",
		ErrKeyUnauthorized:          "Não autorizado",
		ErrKeyInvalidOperatorKey:    "Chave de operador inválida",
		ErrKeyAPIKeyRequired:        "Chave de API é obrigatória",
		ErrKeyInvalidAPIKey:         "Chave de API inválida",
		ErrKeyForbidden:             "Proibido",
		ErrKeyNotFound:              "Não encontrado",
		ErrKeyAirlineNotFound:       "Companhia aérea não encontrada",
		ErrKeyRateLimitExceeded:     "Muitas requisições, tente novamente mais tarde",
		ErrKeyConflict:              "Conflito",
		ErrKeyInvalidDimensions:     "As dimensões devem ser finitas e não negativas",
		ErrKeyInvalidFillPercentage: "O percentual de preenchimento deve estar entre 0 e 100",
		ErrKeyInvalidSystem:         "O sistema de medida deve ser metric ou imperial",
		ErrKeyInvalidAirline:        "Franquia da companhia aérea inválida",
		ErrKeyDataIntegrity:         "Os dados da companhia aérea estão incompletos para este sistema de medida",
		ErrKeyDatasetReadOnly:       "A base de companhias aéreas é somente leitura",
		ErrKeyServiceUnavailable:    "Serviço temporariamente indisponível",
		ErrKeyInvalidToken:          "Token inválido ou expirado",
		ErrKeyTokenRequired:         "Token de autenticação é obrigatório",
		ErrKeyTimeout:               "A requisição excedeu o tempo limite",
	},
	"nl": {
		ErrKeyInvalidRequest:        "Ongeldig verzoek",
		ErrKeyInvalidRequestBody:    "Ongeldige aanvraag body",
		ErrKeyInternalError:         "Er is een onverwachte fout opgetreden",
		ErrKeyUnauthorized:          "Niet geautoriseerd",
		ErrKeyInvalidOperatorKey:    "Ongeldige operatorsleutel",
		ErrKeyAPIKeyRequired:        "API-sleutel is vereist",
		ErrKeyInvalidAPIKey:         "Ongeldige API-sleutel",
		ErrKeyForbidden:             "Verboden",
		ErrKeyNotFound:              "Niet gevonden",
		ErrKeyAirlineNotFound:       "Luchtvaartmaatschappij niet gevonden",
		ErrKeyRateLimitExceeded:     "Te veel verzoeken, probeer het later opnieuw",
		ErrKeyConflict:              "Conflict",
		ErrKeyInvalidDimensions:     "Afmetingen moeten eindig en niet negatief zijn",
		ErrKeyInvalidFillPercentage: "Vulpercentage moet tussen 0 en 100 liggen",
		ErrKeyInvalidSystem:         "Maatsysteem moet metric of imperial zijn",
		ErrKeyInvalidAirline:        "Ongeldige bagagetoelage",
		ErrKeyDataIntegrity:         "Gegevens van de luchtvaartmaatschappij zijn onvolledig voor dit maatsysteem",
		ErrKeyDatasetReadOnly:       "De dataset met luchtvaartmaatschappijen is alleen-lezen",
		ErrKeyServiceUnavailable:    "Dienst tijdelijk niet beschikbaar",
		ErrKeyInvalidToken:          "Ongeldig of verlopen token",
		ErrKeyTokenRequired:         "Authenticatietoken is vereist",
		ErrKeyTimeout:               "Het verzoek duurde te lang",
	},
}
