// sponsor/model.go
package sponsor

import (
	"github.com/clubhaus-app/clubhaus/internal/models"
	"gorm.io/gorm"
)

// Sponsorship tiers.
const (
	TierGold   = "gold"
	TierSilver = "silber"
	TierBronze = "bronze"
)

// Sponsor represents a sponsoring partner of a club.
type Sponsor struct {
	gorm.Model
	Name    string                `json:"name" gorm:"not null;uniqueIndex"`
	Tier    string                `json:"tier" gorm:"type:VARCHAR(20);default:'bronze'"`
	ClubID  uint                  `json:"club_id" gorm:"index"`
	Contact models.ContactDetails `json:"contact" gorm:"type:json"`
	Active  bool                  `json:"active" gorm:"default:true"`
}
