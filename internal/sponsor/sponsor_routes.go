package sponsor

import (
	"github.com/clubhaus-app/clubhaus/internal/access"
	mw "github.com/clubhaus-app/clubhaus/internal/middleware"
	"github.com/clubhaus-app/clubhaus/pkg/rmiddleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterSponsorRoutes sets up all sponsor-related routes
func RegisterSponsorRoutes(router *gin.RouterGroup, db *gorm.DB, gate *access.Gate, jwtSecret string) {
	sponsorRepo := NewSponsorRepository(db)
	sponsorController := NewSponsorController(sponsorRepo)

	sponsors := router.Group("/sponsors")
	sponsors.Use(mw.AuthMiddleware(jwtSecret))
	sponsors.Use(rmiddleware.ModuleMiddleware(gate, access.ModuleSponsors))
	{
		sponsors.GET("", sponsorController.GetAllSponsors)
		sponsors.GET("/:sponsor_id", sponsorController.GetSponsorByID)
		sponsors.POST("", sponsorController.CreateSponsor)
		sponsors.PUT("/:sponsor_id", sponsorController.UpdateSponsor)
		sponsors.DELETE("/:sponsor_id", sponsorController.DeleteSponsor)
	}
}
