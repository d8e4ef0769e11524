package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/carryon-service/internal/domain/dto"
	"github.com/guttosm/carryon-service/internal/middleware"
)

// RouteGroup defines a group of routes that can be registered.
type RouteGroup interface {
	// RegisterRoutes registers routes to the given router group.
	RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig)
}

// ComplianceRoutes registers the compliance endpoints.
type ComplianceRoutes struct {
	handler *ComplianceHandler
}

// NewComplianceRoutes creates a new ComplianceRoutes instance.
func NewComplianceRoutes(handler *ComplianceHandler) *ComplianceRoutes {
	return &ComplianceRoutes{handler: handler}
}

// RegisterRoutes registers the compliance routes.
func (r *ComplianceRoutes) RegisterRoutes(rg *gin.RouterGroup, _ *RouterConfig) {
	group := rg.Group("/compliance")
	group.POST("/check", r.handler.Check)
	group.POST("/suggestion", r.handler.Suggestion)
	group.POST("/flexibility", r.handler.Flexibility)
}

// AirlineRoutes registers the airline dataset endpoints.
type AirlineRoutes struct {
	handler *AirlinesHandler
	// writeLimiter throttles writes per operator.
	writeLimiter *middleware.ShardedRateLimiter
}

// NewAirlineRoutes creates a new AirlineRoutes instance. writeLimiter may be nil.
func NewAirlineRoutes(handler *AirlinesHandler, writeLimiter *middleware.ShardedRateLimiter) *AirlineRoutes {
	return &AirlineRoutes{handler: handler, writeLimiter: writeLimiter}
}

// RegisterRoutes registers read routes openly and write routes behind the
// operator guards when auth is enabled.
func (r *AirlineRoutes) RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	group := rg.Group("/airlines")
	group.GET("", r.handler.List)
	group.GET("/:id", r.handler.Get)

	writes := group.Group("", r.writeGuards(cfg)...)
	writes.PUT("/:id", r.handler.Put)
	writes.DELETE("/:id", r.handler.Delete)

	if r.handler.history != nil {
		group.GET("/:id/history", append(r.operatorGuards(cfg), r.handler.History)...)
	}
}

// operatorGuards require an editor token when auth is enabled.
func (r *AirlineRoutes) operatorGuards(cfg *RouterConfig) []gin.HandlerFunc {
	if !cfg.EnableAuth || cfg.TokenService == nil {
		return nil
	}
	return []gin.HandlerFunc{
		middleware.JWTAuth(cfg.TokenService),
		middleware.RequireRole(dto.RoleEditor),
	}
}

func (r *AirlineRoutes) writeGuards(cfg *RouterConfig) []gin.HandlerFunc {
	guards := r.operatorGuards(cfg)
	if r.writeLimiter != nil {
		guards = append(guards, r.writeLimiter.UserRateLimit())
	}
	return guards
}

// AuthRoutes registers the token exchange endpoint.
type AuthRoutes struct {
	handler *TokenHandler
}

// NewAuthRoutes creates a new AuthRoutes instance.
func NewAuthRoutes(handler *TokenHandler) *AuthRoutes {
	return &AuthRoutes{handler: handler}
}

// RegisterRoutes registers the auth routes.
func (r *AuthRoutes) RegisterRoutes(rg *gin.RouterGroup, _ *RouterConfig) {
	rg.POST("/auth/token", r.handler.IssueToken)
}
