// tournament/model.go
package tournament

import (
	"time"

	"gorm.io/gorm"
)

// Tournament registration lifecycle.
const (
	RegistrationOpen   = "offen"
	RegistrationClosed = "geschlossen"
	RegistrationDone   = "abgeschlossen"
)

// Tournament represents a competition clubs can register teams for.
type Tournament struct {
	gorm.Model
	Name         string    `json:"name" gorm:"not null;uniqueIndex"`
	Location     string    `json:"location"`
	StartDate    time.Time `json:"start_date" gorm:"not null"`
	EndDate      time.Time `json:"end_date" gorm:"not null"`
	MaxTeams     int       `json:"max_teams" gorm:"default:16"`
	Registration string    `json:"registration" gorm:"type:VARCHAR(20);default:'offen'"`
	OrganizerID  uint      `json:"organizer_id" gorm:"index"`
}

// TournamentEntry links a team to a tournament.
type TournamentEntry struct {
	gorm.Model
	TournamentID uint   `json:"tournament_id" gorm:"index;not null"`
	TeamID       uint   `json:"team_id" gorm:"index;not null"`
	TeamName     string `json:"team_name" gorm:"not null"`
	ClubID       uint   `json:"club_id" gorm:"index"`
}
