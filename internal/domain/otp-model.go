package domain

import (
	"time"

	"gorm.io/gorm"
)

// OTPTTL is how long an issued code stays valid.
const OTPTTL = 10 * time.Minute

// OTPChallenge is the single active email challenge for an address. Issuing
// a new code marks every prior unused row for the same email as used in the
// same transaction, so there is never more than one live code to race on.
type OTPChallenge struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Email     string     `gorm:"index;size:255;not null" json:"email"`
	CodeHash  string     `gorm:"size:64;not null" json:"-"`
	ExpiresAt time.Time  `gorm:"index;not null" json:"expires_at"`
	UsedAt    *time.Time `json:"used_at,omitempty"`

	gorm.Model
}

func (c *OTPChallenge) Expired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}
