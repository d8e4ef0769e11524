package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/guttosm/carryon-service/internal/i18n"
	"github.com/guttosm/carryon-service/internal/metrics"
)

// Recovery turns a handler panic into a 500 and counts it per route.
// When the handler already started writing, the connection is only aborted.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			route := c.FullPath()
			metrics.RecordPanic(route)
			log.Ctx(c.Request.Context()).Error().
				Interface("panic", rec).
				Str("route", route).
				Str("method", c.Request.Method).
				Bytes("stack", debug.Stack()).
				Msg("PANIC recovered")

			if c.Writer.Written() {
				c.Abort()
				return
			}
			AbortWithError(c, http.StatusInternalServerError, i18n.ErrKeyInternalError)
		}()
		c.Next()
	}
}
