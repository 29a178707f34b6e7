package domain

import (
	"time"

	"gorm.io/gorm"
)

type EntitlementKind string

const (
	EntitlementKindCheckin EntitlementKind = "checkin"
	EntitlementKindMeal    EntitlementKind = "meal"
)

// Entitlement is a QR-scannable token issued to each member of a shortlisted
// team. The frontend renders the token as a QR image; the backend only ever
// sees the token string.
type Entitlement struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	EventID    uint            `gorm:"not null;uniqueIndex:uidx_user_entitlement" json:"event_id"`
	TeamID     uint            `gorm:"not null;index" json:"team_id"`
	UserID     uint            `gorm:"not null;uniqueIndex:uidx_user_entitlement" json:"user_id"`
	Kind       EntitlementKind `gorm:"type:varchar(10);not null;uniqueIndex:uidx_user_entitlement" json:"kind"`
	QRToken    string          `gorm:"size:36;uniqueIndex;not null" json:"qr_token"`
	ConsumedAt *time.Time      `json:"consumed_at,omitempty"`

	gorm.Model
}
