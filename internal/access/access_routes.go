package access

import (
	mw "github.com/clubhaus-app/clubhaus/internal/middleware"
	"github.com/gin-gonic/gin"
)

// RegisterAccessRoutes sets up navigation and roles-configuration routes.
// The gate is shared with the module middleware, so it is created by the
// caller and passed in.
func RegisterAccessRoutes(router *gin.RouterGroup, gate *Gate, jwtSecret string) {
	controller := NewAccessController(gate)

	authenticated := router.Group("/")
	authenticated.Use(mw.AuthMiddleware(jwtSecret))
	{
		authenticated.GET("/navigation", controller.GetNavigation)
		authenticated.GET("/settings/roles", controller.GetRolesConfiguration)
		authenticated.PUT("/settings/roles", controller.SaveRolesConfiguration)
	}
}
