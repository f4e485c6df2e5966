package rmiddleware

import (
	"net/http"

	"github.com/clubhaus-app/clubhaus/internal/access"
	"github.com/clubhaus-app/clubhaus/internal/middleware"

	"github.com/gin-gonic/gin"
)

// ModuleMiddleware rejects requests whose authenticated role has no access to
// the given module. The denial is a distinguishable 403 carrying the role and
// module so the caller can render a proper "not authorized" state.
func ModuleMiddleware(gate *access.Gate, module string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, err := middleware.GetRoleFromContext(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: " + err.Error()})
			return
		}

		if !gate.HasModuleAccess(role, module) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":   "Forbidden",
				"message": "You don't have permission to access this module",
				"role":    role,
				"module":  module,
			})
			return
		}

		c.Next()
	}
}
