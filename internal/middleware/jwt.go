package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/carryon-service/internal/domain/dto"
	"github.com/guttosm/carryon-service/internal/i18n"
	"github.com/guttosm/carryon-service/internal/logger"
	"github.com/guttosm/carryon-service/internal/service"
)

const (
	// ClaimsKey holds the validated *dto.Claims on the gin context.
	ClaimsKey = "claims"
	// OperatorKey holds the operator name on the gin context.
	OperatorKey = "operator"

	bearerPrefix = "Bearer "
)

// JWTAuth returns a middleware that requires a valid operator bearer token.
func JWTAuth(tokens service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			AbortWithError(c, http.StatusUnauthorized, i18n.ErrKeyTokenRequired)
			return
		}

		if !strings.HasPrefix(authHeader, bearerPrefix) {
			AbortWithError(c, http.StatusUnauthorized, i18n.ErrKeyInvalidToken)
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
		if tokenString == "" {
			AbortWithError(c, http.StatusUnauthorized, i18n.ErrKeyTokenRequired)
			return
		}

		claims, err := tokens.Validate(tokenString)
		if err != nil {
			AbortWithError(c, http.StatusUnauthorized, i18n.ErrKeyInvalidToken)
			return
		}

		c.Set(ClaimsKey, claims)
		c.Set(OperatorKey, claims.Operator)

		ctx := c.Request.Context()
		c.Request = c.Request.WithContext(logger.WithFields(ctx, map[string]interface{}{
			"operator": claims.Operator,
		}))

		c.Next()
	}
}

// GetClaims returns the claims set by JWTAuth.
func GetClaims(c *gin.Context) (*dto.Claims, bool) {
	v, exists := c.Get(ClaimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := v.(*dto.Claims)
	return claims, ok && claims != nil
}

// GetOperator returns the authenticated operator, or "" for anonymous calls.
func GetOperator(c *gin.Context) string {
	return c.GetString(OperatorKey)
}
