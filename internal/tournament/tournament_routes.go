package tournament

import (
	"github.com/clubhaus-app/clubhaus/internal/access"
	mw "github.com/clubhaus-app/clubhaus/internal/middleware"
	"github.com/clubhaus-app/clubhaus/internal/team"
	"github.com/clubhaus-app/clubhaus/pkg/rmiddleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterTournamentRoutes sets up all tournament-related routes
func RegisterTournamentRoutes(router *gin.RouterGroup, db *gorm.DB, gate *access.Gate, jwtSecret string) {
	tournamentRepo := NewTournamentRepository(db)
	teamRepo := team.NewTeamRepository(db)
	tournamentController := NewTournamentController(tournamentRepo, teamRepo)

	tournaments := router.Group("/tournaments")
	tournaments.Use(mw.AuthMiddleware(jwtSecret))
	tournaments.Use(rmiddleware.ModuleMiddleware(gate, access.ModuleTournaments))
	{
		tournaments.GET("", tournamentController.GetAllTournaments)
		tournaments.GET("/:tournament_id", tournamentController.GetTournamentByID)
		tournaments.POST("", tournamentController.CreateTournament)
		tournaments.PUT("/:tournament_id", tournamentController.UpdateTournament)
		tournaments.DELETE("/:tournament_id", tournamentController.DeleteTournament)

		tournaments.POST("/:tournament_id/entries", tournamentController.RegisterTeam)
		tournaments.GET("/:tournament_id/entries", tournamentController.GetEntries)
		tournaments.DELETE("/:tournament_id/entries/:entry_id", tournamentController.WithdrawEntry)
	}
}
