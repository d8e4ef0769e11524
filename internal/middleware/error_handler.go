package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/guttosm/carryon-service/internal/domain/dto"
	"github.com/guttosm/carryon-service/internal/i18n"
)

// AbortWithError writes a translated error body and stops the chain.
func AbortWithError(c *gin.Context, status int, messageKey string) {
	message := i18n.GetTranslator().Translate(messageKey, i18n.GetLocale(c))
	errorResp := dto.NewError(dto.ErrCodeFromStatus(status), message).
		WithRequestID(GetRequestID(c))
	c.AbortWithStatusJSON(status, errorResp)
}

// ErrorHandler returns a middleware that answers for errors left on the gin
// context when the handler wrote nothing. Bind errors become 400 and an
// expired request context becomes 504; anything else is a 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()
		log.Ctx(c.Request.Context()).Error().
			Err(err.Err).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Request error")

		if c.Writer.Written() {
			return
		}
		switch {
		case err.IsType(gin.ErrorTypeBind):
			AbortWithError(c, http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody)
		case errors.Is(err.Err, context.DeadlineExceeded):
			AbortWithError(c, http.StatusGatewayTimeout, i18n.ErrKeyTimeout)
		default:
			AbortWithError(c, http.StatusInternalServerError, i18n.ErrKeyInternalError)
		}
	}
}
