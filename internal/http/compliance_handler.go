package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/carryon-service/internal/compliance"
	"github.com/guttosm/carryon-service/internal/domain/dto"
	"github.com/guttosm/carryon-service/internal/domain/model"
	"github.com/guttosm/carryon-service/internal/middleware"
	"github.com/guttosm/carryon-service/internal/service"
)

// ComplianceHandler serves the bag evaluation endpoints.
type ComplianceHandler struct {
	compliance    service.ComplianceService
	defaultSystem model.MeasurementSystem
	audit         middleware.LogSink
}

// NewComplianceHandler creates a ComplianceHandler. audit may be nil.
func NewComplianceHandler(svc service.ComplianceService, defaultSystem model.MeasurementSystem, audit middleware.LogSink) *ComplianceHandler {
	if !defaultSystem.Valid() {
		defaultSystem = model.Metric
	}
	return &ComplianceHandler{
		compliance:    svc,
		defaultSystem: defaultSystem,
		audit:         audit,
	}
}

func (h *ComplianceHandler) evaluationRequest(req *dto.ComplianceCheckRequest) (service.EvaluationRequest, error) {
	system, err := req.MeasurementSystem(h.defaultSystem)
	if err != nil {
		return service.EvaluationRequest{}, err
	}
	return service.EvaluationRequest{
		Dimensions:     req.Dimensions(),
		System:         system,
		FillPercentage: req.FillPercentage,
		Region:         req.Region,
		AirlineIDs:     req.AirlineIDs,
	}, nil
}

// Check handles POST /api/compliance/check requests.
//
// @Summary      Check a bag against airline carry-on rules
// @Description  Scores the bag against every selected airline. A soft bag (fill_percentage set) may compress to fit. A zero dimension yields complete=false and no results. The report includes a lower fill level suggestion when one raises the score by at least 10 points.
// @Tags         Compliance
// @Accept       json
// @Produce      json
// @Param        request body dto.ComplianceCheckRequest true "Bag dimensions"
// @Param        Accept-Language header string false "Message language (en, pt, nl)"
// @Success      200 {object} dto.SuccessResponse{data=model.ComplianceReport} "Compliance report"
// @Failure      400 {object} dto.ErrorResponse "Invalid dimensions, fill level or system"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid API key"
// @Failure      404 {object} dto.ErrorResponse "Unknown airline id"
// @Failure      429 {object} dto.ErrorResponse "Rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Airline data is incomplete"
// @Security     ApiKeyAuth
// @Router       /api/compliance/check [post]
func (h *ComplianceHandler) Check(c *gin.Context) {
	req, err := BuildRequestAndValidate[dto.ComplianceCheckRequest](c)
	if err != nil {
		respondBindError(c, err)
		return
	}

	evaluation, err := h.evaluationRequest(req)
	if err != nil {
		respondError(c, err)
		return
	}

	report, err := h.compliance.Evaluate(c.Request.Context(), evaluation)
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.AuditLog(h.audit, c, middleware.ActionComplianceCheck, "Compliance evaluated", map[string]interface{}{
		"system":           string(report.System),
		"complete":         report.Complete,
		"airlines":         len(report.Airlines),
		"compliance_score": report.ComplianceScore,
		"dataset_version":  report.DatasetVersion,
	})

	NewResponseBuilder(c).SuccessOK(report)
}

// Suggestion handles POST /api/compliance/suggestion requests.
//
// @Summary      Suggest a lower fill level
// @Description  Evaluates the bag at its current fill level (current_fill_percentage, then fill_percentage, then 100) and searches down in 5 point steps to 60 for the first level that raises the compliance score by at least 10 points.
// @Tags         Compliance
// @Accept       json
// @Produce      json
// @Param        request body dto.SuggestionRequest true "Bag dimensions and current fill level"
// @Success      200 {object} dto.SuccessResponse{data=dto.SuggestionResponse} "Suggestion, null when none helps"
// @Failure      400 {object} dto.ErrorResponse "Invalid request"
// @Failure      404 {object} dto.ErrorResponse "Unknown airline id"
// @Failure      500 {object} dto.ErrorResponse "Airline data is incomplete"
// @Security     ApiKeyAuth
// @Router       /api/compliance/suggestion [post]
func (h *ComplianceHandler) Suggestion(c *gin.Context) {
	req, err := BuildRequestAndValidate[dto.SuggestionRequest](c)
	if err != nil {
		respondBindError(c, err)
		return
	}

	evaluation, err := h.evaluationRequest(&req.ComplianceCheckRequest)
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := h.compliance.Suggest(c.Request.Context(), service.SuggestionRequest{
		EvaluationRequest:     evaluation,
		CurrentFillPercentage: req.CurrentFillPercentage,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	fields := map[string]interface{}{
		"current_fill_percentage": result.CurrentFillPercentage,
		"baseline_score":          result.BaselineScore,
		"found":                   result.Suggestion != nil,
	}
	if result.Suggestion != nil {
		fields["suggested_fill_percentage"] = result.Suggestion.FillPercentage
	}
	middleware.AuditLog(h.audit, c, middleware.ActionFillSuggestion, "Fill level suggested", fields)

	NewResponseBuilder(c).SuccessOK(dto.SuggestionResponse{
		Suggestion:            result.Suggestion,
		BaselineScore:         result.BaselineScore,
		CurrentFillPercentage: result.CurrentFillPercentage,
	})
}

// Flexibility handles POST /api/compliance/flexibility requests.
//
// @Summary      Compression budget of a soft bag
// @Description  Returns how many units each axis of the bag can give at the given fill level, largest first, and the pooled total used against total-size limits.
// @Tags         Compliance
// @Accept       json
// @Produce      json
// @Param        request body dto.FlexibilityRequest true "Bag dimensions and fill level"
// @Success      200 {object} dto.SuccessResponse{data=dto.FlexibilityResponse} "Flexibility budget"
// @Failure      400 {object} dto.ErrorResponse "Invalid request"
// @Security     ApiKeyAuth
// @Router       /api/compliance/flexibility [post]
func (h *ComplianceHandler) Flexibility(c *gin.Context) {
	req, err := BuildRequestAndValidate[dto.FlexibilityRequest](c)
	if err != nil {
		respondBindError(c, err)
		return
	}

	fill := compliance.ClampFill(*req.FillPercentage)
	flex := h.compliance.Flexibility(req.Dimensions(), fill)

	NewResponseBuilder(c).SuccessOK(dto.FlexibilityResponse{
		FillPercentage: fill,
		Flexibility:    flex,
		Total:          flex.Sum(),
	})
}
