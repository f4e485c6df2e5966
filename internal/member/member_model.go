// member/model.go
package member

import (
	"time"

	"github.com/clubhaus-app/clubhaus/internal/models"
	"gorm.io/gorm"
)

// NoTeam is the legacy single-team placeholder for members without a roster.
const NoTeam = "no team"

// Member represents a club member. Team membership is denormalized: Teams
// holds the ordered list of team names, and the legacy Team column mirrors
// the first entry (older clients still read it). The mirror invariant is
// enforced by SyncTeamMirror; every write path must call it.
type Member struct {
	gorm.Model
	FirstName string             `json:"first_name" gorm:"not null"`
	LastName  string             `json:"last_name" gorm:"not null"`
	Email     string             `json:"email" gorm:"uniqueIndex;not null"`
	Phone     string             `json:"phone"`
	Birthdate *time.Time         `json:"birthdate"`
	ClubID    uint               `json:"club_id" gorm:"index"`
	Teams     models.StringSlice `json:"teams" gorm:"type:json"`
	Team      string             `json:"team"` // legacy mirror of Teams[0]
}

// SyncTeamMirror resets the legacy Team column from the Teams list.
func (m *Member) SyncTeamMirror() {
	if len(m.Teams) == 0 {
		m.Team = NoTeam
		return
	}
	m.Team = m.Teams[0]
}
