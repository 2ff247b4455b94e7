package entity

import (
	"time"

	"github.com/google/uuid"
)

type VerificationType string

const (
	EmailVerify   VerificationType = "email_verify"
	PasswordReset VerificationType = "password_reset"
)

// VerificationToken is a single-use credential. Only the SHA-256 hash of the
// raw token is stored. A token is active until UsedAt is set (consumed) or
// ExpiresAt passes, whichever comes first. Duplicate active tokens per user
// are allowed; each is checked against its own expiry.
type VerificationToken struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index"`
	User   User      `gorm:"constraint:OnDelete:CASCADE"`

	TokenHash string           `gorm:"type:text;not null;index"`
	Type      VerificationType `gorm:"type:varchar(20);not null"`

	ExpiresAt time.Time
	UsedAt    *time.Time

	CreatedAt time.Time
}
