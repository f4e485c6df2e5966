// club/model.go
package club

import (
	"github.com/clubhaus-app/clubhaus/internal/models"
	"gorm.io/gorm"
)

// Club represents one tenant of the platform (a Verein). Season holds the
// current season label, e.g. "2026/27"; the season transition does not touch
// it, the Super-Admin advances it manually.
type Club struct {
	gorm.Model
	Name    string                `json:"name" gorm:"not null;uniqueIndex"`
	City    string                `json:"city"`
	Season  string                `json:"season"`
	Contact models.ContactDetails `json:"contact" gorm:"type:json"`
}
