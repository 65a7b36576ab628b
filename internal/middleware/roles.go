package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/seacatering/catering-api/internal/models"
)

// RequireRoles gates an endpoint to a flat set of roles. Runs after
// AuthMiddleware. Role membership only; ownership checks live in the
// handlers and repositories.
func RequireRoles(allowed ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := UserRole(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user_not_in_context"})
			return
		}

		if !role.In(allowed...) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient_role"})
			return
		}

		c.Next()
	}
}

// RequireAdmin is shorthand for the admin-or-above gate.
func RequireAdmin() gin.HandlerFunc {
	return RequireRoles(models.RoleAdmin, models.RoleSuperAdmin)
}
