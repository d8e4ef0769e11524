package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/carryon-service/internal/i18n"
)

// RequireRole lets the request through when the token carries any of roles.
// It must run after JWTAuth.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetClaims(c)
		if !ok {
			AbortWithError(c, http.StatusUnauthorized, i18n.ErrKeyUnauthorized)
			return
		}

		for _, role := range roles {
			if claims.HasRole(role) {
				c.Next()
				return
			}
		}

		AbortWithError(c, http.StatusForbidden, i18n.ErrKeyForbidden)
	}
}
