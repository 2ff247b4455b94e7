package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	UserRoleUser    UserRole = "user"
	UserRoleManager UserRole = "manager"
	UserRoleAdmin   UserRole = "admin"
)

// ParseRole validates a role string at the session-deserialization boundary.
func ParseRole(value string) (UserRole, bool) {
	switch UserRole(value) {
	case UserRoleUser, UserRoleManager, UserRoleAdmin:
		return UserRole(value), true
	}
	return "", false
}

// IsStaff reports whether the role may reach admin-tier surfaces.
func (r UserRole) IsStaff() bool {
	return r == UserRoleAdmin || r == UserRoleManager
}

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash *string   `gorm:"type:text"`
	Role         UserRole  `gorm:"type:varchar(20);default:'user';not null"`

	EmailVerifiedAt *time.Time
	// no column default: a default tag would make gorm skip the false
	// zero value on insert, silently activating unverified accounts
	IsActive bool `gorm:"not null"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Sessions  []Session
	Bookings  []Booking
	MFASecret *MFASecret
}
