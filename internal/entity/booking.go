package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

func ParseBookingStatus(value string) (BookingStatus, bool) {
	switch BookingStatus(value) {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return BookingStatus(value), true
	}
	return "", false
}

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusOnDemand PaymentStatus = "on-demand"
)

func ParsePaymentStatus(value string) (PaymentStatus, bool) {
	switch PaymentStatus(value) {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusRefunded, PaymentStatusFailed, PaymentStatusOnDemand:
		return PaymentStatus(value), true
	}
	return "", false
}

// Booking links a user to a trip. Status and PaymentStatus are independent
// axes, not a combined state machine. UserID and TripID are immutable after
// creation.
type Booking struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index"`
	User   User      `gorm:"constraint:OnDelete:CASCADE"`
	TripID uuid.UUID `gorm:"type:uuid;not null;index"`
	Trip   Trip      `gorm:"constraint:OnDelete:CASCADE"`

	Status        BookingStatus `gorm:"type:varchar(20);not null;default:'pending';index"`
	PaymentStatus PaymentStatus `gorm:"type:varchar(20);not null;default:'pending';index"`

	NumberOfTravelers int             `gorm:"not null"`
	TotalAmount       decimal.Decimal `gorm:"type:decimal(20,2);not null"`

	Notes string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
