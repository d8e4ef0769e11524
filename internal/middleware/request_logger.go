package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/guttosm/carryon-service/internal/domain/model"
)

// RequestLogger logs every request to the console and, when sink is not
// nil, hands a copy to it for persistence.
func RequestLogger(sink LogSink) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()
		path := c.Request.URL.Path
		operator := GetOperator(c)

		event := log.Ctx(c.Request.Context()).WithLevel(levelForStatus(statusCode)).
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status_code", statusCode).
			Int64("duration_ms", latency.Milliseconds()).
			Str("ip", c.ClientIP()).
			Str("user_agent", c.Request.UserAgent())
		if route := c.FullPath(); route != "" {
			event = event.Str("route", route)
		}
		if operator != "" {
			event = event.Str("operator", operator)
		}
		event.Msg("HTTP request")

		if sink == nil {
			return
		}
		sink.Log(&model.LogEntry{
			Timestamp:  start.UTC(),
			Level:      levelForStatus(statusCode).String(),
			Message:    "HTTP request",
			RequestID:  GetRequestID(c),
			Method:     c.Request.Method,
			Path:       path,
			StatusCode: statusCode,
			Duration:   latency.Milliseconds(),
			IP:         c.ClientIP(),
			UserAgent:  c.Request.UserAgent(),
			Operator:   operator,
			AirlineID:  c.Param("id"),
		})
	}
}

func levelForStatus(statusCode int) zerolog.Level {
	switch {
	case statusCode >= 500:
		return zerolog.ErrorLevel
	case statusCode >= 400:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
