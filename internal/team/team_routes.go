package team

import (
	"github.com/clubhaus-app/clubhaus/internal/access"
	mw "github.com/clubhaus-app/clubhaus/internal/middleware"
	"github.com/clubhaus-app/clubhaus/pkg/rmiddleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterTeamRoutes sets up all team-related routes
func RegisterTeamRoutes(router *gin.RouterGroup, db *gorm.DB, gate *access.Gate, jwtSecret string) {
	teamRepo := NewTeamRepository(db)
	teamController := NewTeamController(teamRepo)

	teams := router.Group("/teams")
	teams.Use(mw.AuthMiddleware(jwtSecret))
	teams.Use(rmiddleware.ModuleMiddleware(gate, access.ModuleTeams))
	{
		teams.GET("", teamController.GetAllTeams)
		teams.GET("/:team_id", teamController.GetTeamByID)
		teams.POST("", teamController.CreateTeam)
		teams.PUT("/:team_id", teamController.UpdateTeam)
		teams.DELETE("/:team_id", teamController.DeleteTeam)
	}
}
