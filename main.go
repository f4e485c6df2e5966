package main

import (
	"log"

	"github.com/clubhaus-app/clubhaus/config"
	_ "github.com/clubhaus-app/clubhaus/docs"
	"github.com/clubhaus-app/clubhaus/internal/access"
	"github.com/clubhaus-app/clubhaus/internal/bootcamp"
	"github.com/clubhaus-app/clubhaus/internal/club"
	"github.com/clubhaus-app/clubhaus/internal/invoice"
	"github.com/clubhaus-app/clubhaus/internal/member"
	"github.com/clubhaus-app/clubhaus/internal/sponsor"
	"github.com/clubhaus-app/clubhaus/internal/team"
	"github.com/clubhaus-app/clubhaus/internal/tournament"
	"github.com/clubhaus-app/clubhaus/routes"
)

// @title Clubhaus REST API
// @version 1.0
// @description Multi-tenant club management backend.
// @host localhost:8090
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	err := config.DB.AutoMigrate(
		&access.RolesConfigurationRecord{},
		&club.Club{},
		&member.Member{},
		&team.Team{},
		&bootcamp.Bootcamp{}, &bootcamp.Booking{},
		&sponsor.Sponsor{},
		&tournament.Tournament{}, &tournament.TournamentEntry{},
		&invoice.Invoice{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("AutoMigrate successful")

	r := routes.SetupRoutes(config.DB, cfg)

	// Use port from loaded configuration
	log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
