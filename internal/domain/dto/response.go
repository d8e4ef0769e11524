package dto

import (
	"net/http"
	"time"

	"github.com/guttosm/carryon-service/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeUnauthorized indicates missing or invalid authentication.
	ErrCodeUnauthorized = "unauthorized"
	// ErrCodeForbidden indicates insufficient permissions.
	ErrCodeForbidden = "forbidden"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeConflict indicates a conflict with current state.
	ErrCodeConflict = "conflict"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
	// ErrCodeUnavailable indicates a dependency is down.
	ErrCodeUnavailable = "service_unavailable"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data is the endpoint payload.
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message,omitempty" example:"fill_percentage: must be between 0 and 100"`
	// Details maps a field to its problem.
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2025-01-28T10:00:00Z"`
	TraceID   string            `json:"trace_id,omitempty" example:"trace-123"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusForbidden:
		return ErrCodeForbidden
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	case http.StatusServiceUnavailable:
		return ErrCodeUnavailable
	default:
		return ErrCodeInternal
	}
}

// SuggestionResponse is the fill level search result.
//
// @Description Fill level suggestion and the score it improves on
type SuggestionResponse struct {
	// Suggestion is null when no lower fill level gains at least 10 points.
	Suggestion            *model.FillSuggestion `json:"suggestion"`
	BaselineScore         float64               `json:"baseline_score" example:"50"`
	CurrentFillPercentage float64               `json:"current_fill_percentage" example:"100"`
} // @name SuggestionResponse

// FlexibilityResponse is the per-axis compression budget of a soft bag.
//
// @Description Compression budget, largest axis first
type FlexibilityResponse struct {
	FillPercentage float64                `json:"fill_percentage" example:"80"`
	Flexibility    model.SortedDimensions `json:"flexibility" swaggertype:"array,number"`
	// Total is the pooled budget used against total-size limits.
	Total float64 `json:"total" example:"24.6"`
} // @name FlexibilityResponse

// AirlineListResponse lists airlines from the active dataset.
//
// @Description Airline allowances
type AirlineListResponse struct {
	Airlines []model.AirlineAllowanceEntry `json:"airlines"`
	Count    int                           `json:"count" example:"25"`
	Regions  []string                      `json:"regions" example:"Asia,Europe"`
	// Source is mongodb or bundled.
	Source         string `json:"source" example:"bundled"`
	DatasetVersion string `json:"dataset_version" example:"5f1d7a3c9b2e4f60"`
} // @name AirlineListResponse

// AirlineWriteResponse is returned after an airline is stored.
//
// @Description Stored airline with its revision
type AirlineWriteResponse struct {
	Airline   model.AirlineAllowanceEntry `json:"airline"`
	Version   int                         `json:"version" example:"2"`
	UpdatedAt time.Time                   `json:"updated_at" example:"2025-01-28T10:00:00Z"`
	UpdatedBy string                      `json:"updated_by,omitempty" example:"ops"`
} // @name AirlineWriteResponse

// AuditEntryResponse is one recorded dataset write.
//
// @Description Dataset write recorded in the audit log
type AuditEntryResponse struct {
	Timestamp time.Time              `json:"timestamp" example:"2025-01-28T10:00:00Z"`
	Action    string                 `json:"action" example:"airline_upsert"`
	Operator  string                 `json:"operator,omitempty" example:"ops"`
	Level     string                 `json:"level" example:"info"`
	Message   string                 `json:"message" example:"Airline stored"`
	RequestID string                 `json:"request_id,omitempty" example:"9b1c2d3e-4f50-6172-8394-a5b6c7d8e9f0"`
	Error     string                 `json:"error,omitempty"`
	Fields    map[string]interface{} `json:"fields,omitempty"`
} // @name AuditEntryResponse

// AirlineHistoryResponse lists the latest writes for one airline.
//
// @Description Latest dataset writes for an airline, newest first
type AirlineHistoryResponse struct {
	AirlineID string               `json:"airline_id" example:"ryanair"`
	Entries   []AuditEntryResponse `json:"entries"`
	Count     int                  `json:"count" example:"2"`
	Total     int64                `json:"total" example:"14"`
} // @name AirlineHistoryResponse

// NewAirlineHistoryResponse maps stored log entries to the history payload.
func NewAirlineHistoryResponse(airlineID string, entries []model.LogEntry, total int64) AirlineHistoryResponse {
	out := make([]AuditEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = AuditEntryResponse{
			Timestamp: e.Timestamp,
			Action:    e.ActionType,
			Operator:  e.Operator,
			Level:     e.Level,
			Message:   e.Message,
			RequestID: e.RequestID,
			Error:     e.Error,
			Fields:    e.Fields,
		}
	}
	return AirlineHistoryResponse{
		AirlineID: airlineID,
		Entries:   out,
		Count:     len(out),
		Total:     total,
	}
}
