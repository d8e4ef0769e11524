package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/guttosm/carryon-service/internal/domain/dto"
	"github.com/guttosm/carryon-service/internal/i18n"
	"github.com/guttosm/carryon-service/internal/middleware"
	"github.com/guttosm/carryon-service/internal/service"
)

// TokenHandler exchanges operator keys for access tokens.
type TokenHandler struct {
	tokens service.TokenService
	audit  middleware.LogSink
}

// NewTokenHandler creates a TokenHandler. audit may be nil.
func NewTokenHandler(tokens service.TokenService, audit middleware.LogSink) *TokenHandler {
	return &TokenHandler{tokens: tokens, audit: audit}
}

// IssueToken handles POST /api/auth/token requests.
//
// @Summary      Issue an operator access token
// @Description  Exchanges the operator key in X-Operator-Key for a short-lived JWT. The token is required by airline writes.
// @Tags         Auth
// @Produce      json
// @Param        X-Operator-Key header string true "Operator key"
// @Success      200 {object} dto.SuccessResponse{data=dto.TokenResponse} "Access token"
// @Failure      400 {object} dto.ErrorResponse "Missing operator key"
// @Failure      401 {object} dto.ErrorResponse "Unknown operator key"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     ApiKeyAuth
// @Router       /api/auth/token [post]
func (h *TokenHandler) IssueToken(c *gin.Context) {
	key := strings.TrimSpace(c.GetHeader(dto.OperatorKeyHeader))
	if key == "" {
		NewResponseBuilder(c).ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyInvalidRequest,
			map[string]string{dto.OperatorKeyHeader: "is required"}, nil)
		return
	}

	token, err := h.tokens.Issue(c.Request.Context(), key)
	if err != nil {
		if errors.Is(err, service.ErrInvalidOperatorKey) {
			log.Ctx(c.Request.Context()).Warn().Str("client_ip", c.ClientIP()).Msg("Rejected operator key")
		}
		middleware.AuditLogError(h.audit, c, middleware.ActionTokenIssued, "Token request rejected", err, nil)
		respondError(c, err)
		return
	}

	if claims, err := h.tokens.Validate(token.AccessToken); err == nil {
		c.Set(middleware.OperatorKey, claims.Operator)
	}
	middleware.AuditLog(h.audit, c, middleware.ActionTokenIssued, "Access token issued", map[string]interface{}{
		"expires_in": token.ExpiresIn,
	})

	NewResponseBuilder(c).SuccessOK(token)
}
