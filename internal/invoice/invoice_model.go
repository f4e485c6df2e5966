// invoice/model.go
package invoice

import (
	"time"

	"gorm.io/gorm"
)

// Invoice statuses.
const (
	StatusOpen      = "offen"
	StatusPaid      = "bezahlt"
	StatusCancelled = "storniert"
)

// Invoice represents a billing document issued to a club or provider.
type Invoice struct {
	gorm.Model
	Number         string     `json:"number" gorm:"not null;uniqueIndex"`
	ClubID         uint       `json:"club_id" gorm:"index"`
	RecipientEmail string     `json:"recipient_email" gorm:"not null"`
	Description    string     `json:"description"`
	AmountCents    int64      `json:"amount_cents" gorm:"not null"`
	Currency       string     `json:"currency" gorm:"type:VARCHAR(3);default:'EUR'"`
	Status         string     `json:"status" gorm:"type:VARCHAR(20);default:'offen'"`
	DueDate        time.Time  `json:"due_date"`
	PaidAt         *time.Time `json:"paid_at"`
}
