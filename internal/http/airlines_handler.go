package http

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/carryon-service/internal/dataset"
	"github.com/guttosm/carryon-service/internal/domain/dto"
	"github.com/guttosm/carryon-service/internal/middleware"
	"github.com/guttosm/carryon-service/internal/repository"
	"github.com/guttosm/carryon-service/internal/service"
)

// anonymousOperator is recorded as the author of writes when auth is off.
const anonymousOperator = "anonymous"

// AirlinesHandler serves the airline dataset and its admin writes.
type AirlinesHandler struct {
	airlines service.AirlineService
	audit    middleware.LogSink
	history  service.LoggingService
}

// NewAirlinesHandler creates an AirlinesHandler. audit may be nil.
func NewAirlinesHandler(airlines service.AirlineService, audit middleware.LogSink) *AirlinesHandler {
	return &AirlinesHandler{airlines: airlines, audit: audit}
}

// WithHistory enables the write history endpoint backed by the audit log.
func (h *AirlinesHandler) WithHistory(history service.LoggingService) *AirlinesHandler {
	h.history = history
	return h
}

// List handles GET /api/airlines requests.
//
// @Summary      List airline allowances
// @Description  Lists the active dataset, optionally narrowed to one region (case-insensitive). The dataset comes from MongoDB when configured and falls back to the bundled copy.
// @Tags         Airlines
// @Produce      json
// @Param        region query string false "Region filter" example(Europe)
// @Success      200 {object} dto.SuccessResponse{data=dto.AirlineListResponse} "Airlines"
// @Security     ApiKeyAuth
// @Router       /api/airlines [get]
func (h *AirlinesHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	snap := h.airlines.Snapshot(ctx)

	airlines := service.FilterAirlines(snap.Airlines, repository.AirlineFilter{
		Region: strings.TrimSpace(c.Query("region")),
	})

	NewResponseBuilder(c).SuccessOK(dto.AirlineListResponse{
		Airlines:       airlines,
		Count:          len(airlines),
		Regions:        dataset.Regions(snap.Airlines),
		Source:         snap.Source,
		DatasetVersion: snap.Version,
	})
}

// Get handles GET /api/airlines/:id requests.
//
// @Summary      Get one airline allowance
// @Tags         Airlines
// @Produce      json
// @Param        id path string true "Airline id" example(ryanair)
// @Success      200 {object} dto.SuccessResponse{data=model.AirlineAllowanceEntry} "Airline"
// @Failure      404 {object} dto.ErrorResponse "Unknown airline id"
// @Security     ApiKeyAuth
// @Router       /api/airlines/{id} [get]
func (h *AirlinesHandler) Get(c *gin.Context) {
	airline, err := h.airlines.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	NewResponseBuilder(c).SuccessOK(airline)
}

// Put handles PUT /api/airlines/:id requests.
//
// @Summary      Create or replace an airline allowance
// @Description  Stores the allowance under the path id. Missing units are derived (cm from in, kg from lb and the reverse). Requires MongoDB; compliance caches are invalidated.
// @Tags         Airlines
// @Accept       json
// @Produce      json
// @Param        id path string true "Airline id" example(ryanair)
// @Param        Idempotency-Key header string false "Replays the stored response of a repeated write"
// @Param        request body dto.AirlineRequest true "Airline allowance"
// @Success      200 {object} dto.SuccessResponse{data=dto.AirlineWriteResponse} "Updated airline"
// @Success      201 {object} dto.SuccessResponse{data=dto.AirlineWriteResponse} "Created airline"
// @Failure      400 {object} dto.ErrorResponse "Invalid allowance"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure      403 {object} dto.ErrorResponse "Operator lacks the editor role"
// @Failure      409 {object} dto.ErrorResponse "Dataset is read-only"
// @Failure      503 {object} dto.ErrorResponse "MongoDB unavailable"
// @Security     BearerAuth
// @Router       /api/airlines/{id} [put]
func (h *AirlinesHandler) Put(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		respondError(c, &dto.ValidationError{Field: "id", Message: "is required"})
		return
	}

	req, err := BuildRequestAndValidate[dto.AirlineRequest](c)
	if err != nil {
		respondBindError(c, err)
		return
	}

	operator := operatorOf(c)
	doc, err := h.airlines.Upsert(c.Request.Context(), req.ToEntry(id), operator)
	if err != nil {
		middleware.AuditLogError(h.audit, c, middleware.ActionAirlineUpsert, "Airline write failed", err, nil)
		respondError(c, err)
		return
	}

	airline, err := doc.ToModel()
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.AuditLog(h.audit, c, middleware.ActionAirlineUpsert, "Airline stored", map[string]interface{}{
		"version": doc.Version,
		"region":  airline.Region,
	})

	resp := dto.AirlineWriteResponse{
		Airline:   airline,
		Version:   doc.Version,
		UpdatedAt: doc.UpdatedAt,
		UpdatedBy: doc.UpdatedBy,
	}
	if doc.Version == 1 {
		NewResponseBuilder(c).SuccessCreated(resp)
		return
	}
	NewResponseBuilder(c).SuccessOK(resp)
}

// Delete handles DELETE /api/airlines/:id requests.
//
// @Summary      Delete an airline allowance
// @Tags         Airlines
// @Produce      json
// @Param        id path string true "Airline id" example(ryanair)
// @Success      200 {object} dto.SuccessResponse "Deleted"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure      403 {object} dto.ErrorResponse "Operator lacks the editor role"
// @Failure      404 {object} dto.ErrorResponse "Unknown airline id"
// @Failure      409 {object} dto.ErrorResponse "Dataset is read-only"
// @Failure      503 {object} dto.ErrorResponse "MongoDB unavailable"
// @Security     BearerAuth
// @Router       /api/airlines/{id} [delete]
func (h *AirlinesHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.airlines.Delete(c.Request.Context(), id, operatorOf(c)); err != nil {
		middleware.AuditLogError(h.audit, c, middleware.ActionAirlineDelete, "Airline delete failed", err, nil)
		respondError(c, err)
		return
	}

	middleware.AuditLog(h.audit, c, middleware.ActionAirlineDelete, "Airline deleted", nil)

	NewResponseBuilder(c).SuccessOK(gin.H{"id": id, "deleted": true})
}

// History handles GET /api/airlines/:id/history requests.
//
// @Summary      List recent writes to an airline
// @Description  Reads the audit log for upserts and deletes of the airline, newest first. Deleted airlines keep their history. Requires MongoDB.
// @Tags         Airlines
// @Produce      json
// @Param        id path string true "Airline id" example(ryanair)
// @Param        limit query int false "Entries to return (1-100)" default(20)
// @Success      200 {object} dto.SuccessResponse{data=dto.AirlineHistoryResponse} "History"
// @Failure      400 {object} dto.ErrorResponse "Invalid limit"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure      403 {object} dto.ErrorResponse "Operator lacks the editor role"
// @Failure      503 {object} dto.ErrorResponse "MongoDB unavailable"
// @Security     BearerAuth
// @Router       /api/airlines/{id}/history [get]
func (h *AirlinesHandler) History(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > service.MaxHistoryLimit {
			respondError(c, &dto.ValidationError{Field: "limit", Message: "must be between 1 and 100"})
			return
		}
		limit = n
	}

	entries, total, err := h.history.AirlineHistory(c.Request.Context(), id, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	NewResponseBuilder(c).SuccessOK(dto.NewAirlineHistoryResponse(id, entries, total))
}

func operatorOf(c *gin.Context) string {
	if operator := middleware.GetOperator(c); operator != "" {
		return operator
	}
	return anonymousOperator
}
