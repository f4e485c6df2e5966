// bootcamp/model.go
package bootcamp

import (
	"time"

	"gorm.io/gorm"
)

// Booking statuses.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
)

// Bootcamp is a training-camp offering published by a provider
// (Trainingslager-Anbieter). ProviderID is the publishing user's id;
// providers may only manage their own offerings.
type Bootcamp struct {
	gorm.Model
	Name         string    `json:"name" gorm:"not null"`
	Location     string    `json:"location" gorm:"not null"`
	Description  string    `json:"description"`
	ProviderID   uint      `json:"provider_id" gorm:"index"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	Capacity     int       `json:"capacity"`
	PricePerHead float64   `json:"price_per_head"`
}

// Booking is a club's reservation of a bootcamp.
type Booking struct {
	gorm.Model
	BootcampID   uint   `json:"bootcamp_id" gorm:"index"`
	ClubID       uint   `json:"club_id" gorm:"index"`
	Participants int    `json:"participants"`
	Status       string `json:"status" gorm:"type:VARCHAR(20);check:status IN ('confirmed','cancelled','pending');default:'pending'"`
	Notes        string `json:"notes"`
}
