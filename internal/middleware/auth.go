package middleware

import (
	"net/http"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/guttosm/carryon-service/internal/i18n"
	"github.com/guttosm/carryon-service/internal/logger"
)

const (
	// APIKeyHeader is the HTTP header name for API key authentication.
	APIKeyHeader = "X-API-Key"
	// APIKeyQuery is the query parameter name for API key authentication.
	APIKeyQuery = "api_key"
	// APIClientKey holds the fingerprint of the accepted key on the gin context.
	APIClientKey = "api_client"
)

// APIKeyAuth guards the public compliance endpoints with a shared key.
// The header wins over the query parameter. With no keys configured every
// request passes. Accepted requests are attributed to a key fingerprint so
// logs never carry the key itself.
func APIKeyAuth(validKeys map[string]bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(validKeys) == 0 {
			c.Next()
			return
		}

		key := c.GetHeader(APIKeyHeader)
		if key == "" {
			key = c.Query(APIKeyQuery)
		}

		switch {
		case key == "":
			AbortWithError(c, http.StatusUnauthorized, i18n.ErrKeyAPIKeyRequired)
		case !validKeys[key]:
			log.Ctx(c.Request.Context()).Warn().
				Str("api_client", KeyFingerprint(key)).
				Str("ip", c.ClientIP()).
				Msg("Rejected API key")
			AbortWithError(c, http.StatusUnauthorized, i18n.ErrKeyInvalidAPIKey)
		default:
			client := KeyFingerprint(key)
			c.Set(APIClientKey, client)
			c.Request = c.Request.WithContext(logger.WithFields(c.Request.Context(), map[string]interface{}{
				"api_client": client,
			}))
			c.Next()
		}
	}
}

// KeyFingerprint returns a short stable identifier for an API key.
func KeyFingerprint(key string) string {
	return strconv.FormatUint(xxhash.Sum64String(key), 16)
}

// GetAPIClient returns the fingerprint set by APIKeyAuth, or "".
func GetAPIClient(c *gin.Context) string {
	return c.GetString(APIClientKey)
}
