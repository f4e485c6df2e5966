package season

import (
	"github.com/clubhaus-app/clubhaus/config"
	"github.com/clubhaus-app/clubhaus/internal/access"
	mw "github.com/clubhaus-app/clubhaus/internal/middleware"
	"github.com/clubhaus-app/clubhaus/pkg/mailer"
	"github.com/clubhaus-app/clubhaus/pkg/rmiddleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterSeasonRoutes sets up the season-transition route. The rollover is
// an administrative action scoped to the teams module.
func RegisterSeasonRoutes(router *gin.RouterGroup, db *gorm.DB, gate *access.Gate, appConfig *config.Config, mail mailer.Mailer, jwtSecret string) {
	repo := NewSeasonRepository(db)
	engine := NewEngine(repo, mail, appConfig.Mail.AdminAddress)
	controller := NewSeasonController(engine)

	seasonGroup := router.Group("/season")
	seasonGroup.Use(mw.AuthMiddleware(jwtSecret))
	seasonGroup.Use(rmiddleware.ModuleMiddleware(gate, access.ModuleTeams))
	{
		seasonGroup.POST("/transitions", controller.RunTransition)
	}
}
