package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/carryon-service/internal/circuitbreaker"
	"github.com/guttosm/carryon-service/internal/compliance"
	"github.com/guttosm/carryon-service/internal/domain/dto"
	"github.com/guttosm/carryon-service/internal/domain/model"
	"github.com/guttosm/carryon-service/internal/i18n"
	"github.com/guttosm/carryon-service/internal/repository"
	"github.com/guttosm/carryon-service/internal/service"
)

// validationKeys picks the message for a failed field.
var validationKeys = map[string]string{
	"dimensions":              i18n.ErrKeyInvalidDimensions,
	"fill_percentage":         i18n.ErrKeyInvalidFillPercentage,
	"current_fill_percentage": i18n.ErrKeyInvalidFillPercentage,
	"system":                  i18n.ErrKeyInvalidSystem,
}

// respondError maps service and validation errors to a status and message.
func respondError(c *gin.Context, err error) {
	builder := NewResponseBuilder(c)

	var validationErr *dto.ValidationError
	var integrityErr *compliance.DataIntegrityError

	switch {
	case errors.As(err, &validationErr):
		builder.ErrorWithDetails(http.StatusBadRequest, validationKey(validationErr.Field),
			map[string]string{validationErr.Field: validationErr.Message}, nil)
	case errors.Is(err, service.ErrInvalidDimensions):
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidDimensions, nil)
	case errors.Is(err, model.ErrUnknownMeasurementSystem):
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidSystem, nil)
	case errors.Is(err, repository.ErrAirlineNotFound):
		builder.Error(http.StatusNotFound, i18n.ErrKeyAirlineNotFound, nil)
	case errors.As(err, &integrityErr):
		builder.ErrorWithDetails(http.StatusInternalServerError, i18n.ErrKeyDataIntegrity,
			map[string]string{"airline_id": integrityErr.AirlineID, "system": string(integrityErr.System)}, err)
	case errors.Is(err, service.ErrRepositoryNotConfigured):
		builder.Error(http.StatusConflict, i18n.ErrKeyDatasetReadOnly, nil)
	case errors.Is(err, circuitbreaker.ErrCircuitOpen):
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyServiceUnavailable, err)
	case errors.Is(err, service.ErrInvalidOperatorKey):
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyInvalidOperatorKey, nil)
	case errors.Is(err, context.DeadlineExceeded):
		builder.Error(http.StatusGatewayTimeout, i18n.ErrKeyTimeout, err)
	default:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}

func validationKey(field string) string {
	if key, ok := validationKeys[field]; ok {
		return key
	}
	root, _, _ := strings.Cut(field, ".")
	switch root {
	case "name", "carry_on", "personal_item":
		return i18n.ErrKeyInvalidAirline
	}
	return i18n.ErrKeyInvalidRequest
}

// respondBindError reports a body that could not be decoded.
func respondBindError(c *gin.Context, err error) {
	var validationErr *dto.ValidationError
	if errors.As(err, &validationErr) {
		respondError(c, err)
		return
	}
	NewResponseBuilder(c).Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
}
