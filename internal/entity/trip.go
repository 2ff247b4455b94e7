package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TripStatus string

const (
	TripStatusDraft     TripStatus = "draft"
	TripStatusPublished TripStatus = "published"
	TripStatusArchived  TripStatus = "archived"
)

// Trip is a bookable tour. Invariants enforced at the service layer:
// StartDate < EndDate, Price >= 0, 0 <= AvailableSpots <= MaxTravelers.
type Trip struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`

	Title       string `gorm:"type:varchar(255);not null"`
	Destination string `gorm:"type:varchar(255);not null;index"`
	Description string `gorm:"type:text"`

	StartDate time.Time `gorm:"not null"`
	EndDate   time.Time `gorm:"not null"`

	Price          decimal.Decimal `gorm:"type:decimal(20,2);not null"`
	MaxTravelers   int             `gorm:"not null"`
	AvailableSpots int             `gorm:"not null"`

	Status TripStatus `gorm:"type:varchar(20);not null;default:'draft';index"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Bookings []Booking
}
