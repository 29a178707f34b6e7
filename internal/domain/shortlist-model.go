package domain

import "gorm.io/gorm"

// ShortlistEntry is one ranked slot produced by the admin confirm action.
// Entries are replaced wholesale on re-confirmation until entitlements have
// been generated, after which the shortlist is frozen.
type ShortlistEntry struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	EventID    uint    `gorm:"not null;uniqueIndex:uidx_event_team_shortlist" json:"event_id"`
	TeamID     uint    `gorm:"not null;uniqueIndex:uidx_event_team_shortlist" json:"team_id"`
	Rank       int     `gorm:"not null" json:"rank"`
	TotalScore float64 `gorm:"not null" json:"total_score"`

	gorm.Model
}
