package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/clubhaus-app/clubhaus/config"
	"github.com/clubhaus-app/clubhaus/internal/access"
	"github.com/clubhaus-app/clubhaus/internal/bootcamp"
	"github.com/clubhaus-app/clubhaus/internal/club"
	"github.com/clubhaus-app/clubhaus/internal/invoice"
	"github.com/clubhaus-app/clubhaus/internal/member"
	"github.com/clubhaus-app/clubhaus/internal/season"
	"github.com/clubhaus-app/clubhaus/internal/sponsor"
	"github.com/clubhaus-app/clubhaus/internal/team"
	"github.com/clubhaus-app/clubhaus/internal/tournament"
	"github.com/clubhaus-app/clubhaus/pkg/mailer"
)

// SetupRoutes wires the HTTP router. The access gate and mailer are created
// once here and shared by every module group.
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default()) // allows all origins, GET/POST/PUT

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	gate := access.NewGate(access.NewAccessRepository(db))
	mail := mailer.New(cfg.Mail.ResendAPIKey, cfg.Mail.FromAddress)
	jwtSecret := cfg.JWT.AccessTokenSecret

	// API routes
	api := r.Group("/api")
	access.RegisterAccessRoutes(api, gate, jwtSecret)
	club.RegisterClubRoutes(api, db, gate, jwtSecret)
	member.RegisterMemberRoutes(api, db, gate, jwtSecret)
	team.RegisterTeamRoutes(api, db, gate, jwtSecret)
	season.RegisterSeasonRoutes(api, db, gate, cfg, mail, jwtSecret)
	bootcamp.RegisterBootcampRoutes(api, db, gate, jwtSecret)
	sponsor.RegisterSponsorRoutes(api, db, gate, jwtSecret)
	tournament.RegisterTournamentRoutes(api, db, gate, jwtSecret)
	invoice.RegisterInvoiceRoutes(api, db, gate, mail, jwtSecret)

	return r
}
