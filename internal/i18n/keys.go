// Package i18n translates user-facing messages of the carry-on compliance service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyInvalidOperatorKey indicates an operator key that matches no operator.
	ErrKeyInvalidOperatorKey = "error.invalid_operator_key"
	// ErrKeyAPIKeyRequired indicates that an API key is required.
	ErrKeyAPIKeyRequired = "error.api_key_required"
	// ErrKeyInvalidAPIKey indicates an invalid API key.
	ErrKeyInvalidAPIKey = "error.invalid_api_key"
	// ErrKeyForbidden indicates insufficient permissions.
	ErrKeyForbidden = "error.forbidden"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyAirlineNotFound indicates an unknown airline id.
	ErrKeyAirlineNotFound = "error.airline_not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyConflict indicates a conflict with current state.
	ErrKeyConflict = "error.conflict"
	// ErrKeyInvalidDimensions indicates negative or non-finite bag measurements.
	ErrKeyInvalidDimensions = "error.validation.dimensions"
	// ErrKeyInvalidFillPercentage indicates a fill level outside 0-100.
	ErrKeyInvalidFillPercentage = "error.validation.fill_percentage"
	// ErrKeyInvalidSystem indicates an unknown measurement system.
	ErrKeyInvalidSystem = "error.validation.system"
	// ErrKeyInvalidAirline indicates an airline body that cannot be stored.
	ErrKeyInvalidAirline = "error.validation.airline"
	// ErrKeyDataIntegrity indicates broken airline reference data.
	ErrKeyDataIntegrity = "error.data_integrity"
	// ErrKeyDatasetReadOnly indicates writes while no database is configured.
	ErrKeyDatasetReadOnly = "error.dataset_read_only"
	// ErrKeyServiceUnavailable indicates the database circuit is open.
	ErrKeyServiceUnavailable = "error.service_unavailable"
	// ErrKeyInvalidToken indicates an invalid or expired JWT token.
	ErrKeyInvalidToken = "error.invalid_token"
	// ErrKeyTokenRequired indicates that a JWT token is required.
	ErrKeyTokenRequired = "error.token_required"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
)
