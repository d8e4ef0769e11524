package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/guttosm/carryon-service/internal/domain/model"
)

// Audit action types, re-exported for handlers.
const (
	ActionComplianceCheck = model.ActionComplianceCheck
	ActionFillSuggestion  = model.ActionFillSuggestion
	ActionAirlineUpsert   = model.ActionAirlineUpsert
	ActionAirlineDelete   = model.ActionAirlineDelete
	ActionTokenIssued     = model.ActionTokenIssued
)

// AuditLog records an action worth keeping, such as a dataset write.
func AuditLog(sink LogSink, c *gin.Context, actionType, message string, fields map[string]interface{}) {
	audit(sink, c, "info", actionType, message, nil, fields)
}

// AuditLogError records a failed action.
func AuditLogError(sink LogSink, c *gin.Context, actionType, message string, err error, fields map[string]interface{}) {
	audit(sink, c, "error", actionType, message, err, fields)
}

func audit(sink LogSink, c *gin.Context, level, actionType, message string, err error, fields map[string]interface{}) {
	if sink == nil {
		return
	}

	entry := &model.LogEntry{
		Timestamp:  time.Now().UTC(),
		Level:      level,
		Message:    message,
		RequestID:  GetRequestID(c),
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		Operator:   GetOperator(c),
		ActionType: actionType,
		AirlineID:  c.Param("id"),
	}
	if err != nil {
		entry.Error = err.Error()
	}
	if len(fields) > 0 {
		entry.WithFields(fields)
	}

	if !sink.Log(entry) {
		log.Ctx(c.Request.Context()).Warn().
			Str("action_type", actionType).
			Msg("Audit entry dropped")
	}
}
