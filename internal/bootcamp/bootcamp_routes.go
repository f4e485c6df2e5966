package bootcamp

import (
	"github.com/clubhaus-app/clubhaus/internal/access"
	mw "github.com/clubhaus-app/clubhaus/internal/middleware"
	"github.com/clubhaus-app/clubhaus/pkg/rmiddleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterBootcampRoutes sets up all bootcamp-related routes
func RegisterBootcampRoutes(router *gin.RouterGroup, db *gorm.DB, gate *access.Gate, jwtSecret string) {
	bootcampRepo := NewBootcampRepository(db)
	bootcampController := NewBootcampController(bootcampRepo)

	bootcamps := router.Group("/bootcamps")
	bootcamps.Use(mw.AuthMiddleware(jwtSecret))
	bootcamps.Use(rmiddleware.ModuleMiddleware(gate, access.ModuleBootcamps))
	{
		bootcamps.GET("", bootcampController.GetAllBootcamps)
		bootcamps.GET("/:bootcamp_id", bootcampController.GetBootcampByID)
		bootcamps.POST("", bootcampController.CreateBootcamp)
		bootcamps.PUT("/:bootcamp_id", bootcampController.UpdateBootcamp)
		bootcamps.DELETE("/:bootcamp_id", bootcampController.DeleteBootcamp)

		bootcamps.POST("/:bootcamp_id/bookings", bootcampController.CreateBooking)
		bootcamps.GET("/:bootcamp_id/bookings", bootcampController.GetBookings)
		bootcamps.PUT("/:bootcamp_id/bookings/:booking_id/:action", bootcampController.RespondToBooking)
	}
}
