// team/model.go
package team

import (
	"gorm.io/gorm"
)

// Team statuses. Archived teams stay in the table for history but are
// excluded from the default listings.
const (
	StatusActive   = "Aktiv"
	StatusArchived = "Archiviert"
)

// Team represents a club team within one season, e.g. "FC Musterstadt A1".
// Category is the age/league bracket the season transition rewrites on
// promotion.
type Team struct {
	gorm.Model
	Name     string `json:"name" gorm:"not null;uniqueIndex"`
	Category string `json:"category" gorm:"index"`
	Status   string `json:"status" gorm:"type:VARCHAR(20);default:'Aktiv'"`
	ClubID   uint   `json:"club_id" gorm:"index"`
}
