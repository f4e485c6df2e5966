package club

import (
	"github.com/clubhaus-app/clubhaus/internal/access"
	mw "github.com/clubhaus-app/clubhaus/internal/middleware"
	"github.com/clubhaus-app/clubhaus/pkg/rmiddleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterClubRoutes sets up all club-related routes
func RegisterClubRoutes(router *gin.RouterGroup, db *gorm.DB, gate *access.Gate, jwtSecret string) {
	clubRepo := NewClubRepository(db)
	clubController := NewClubController(clubRepo)

	clubs := router.Group("/clubs")
	clubs.Use(mw.AuthMiddleware(jwtSecret))
	clubs.Use(rmiddleware.ModuleMiddleware(gate, access.ModuleClubs))
	{
		clubs.GET("", clubController.GetAllClubs)
		clubs.GET("/:club_id", clubController.GetClubByID)
		clubs.POST("", clubController.CreateClub)
		clubs.PUT("/:club_id", clubController.UpdateClub)
		clubs.DELETE("/:club_id", clubController.DeleteClub)
	}
}
