package domain

import "gorm.io/gorm"

type NotificationType string

const (
	NotificationTypeTeamInvite   NotificationType = "team_invite"
	NotificationTypeInviteAnswer NotificationType = "invite_answer"
	NotificationTypeShortlisted  NotificationType = "shortlisted"
	NotificationTypeAnnouncement NotificationType = "announcement"
)

type Notification struct {
	ID     uint             `gorm:"primaryKey" json:"id"`
	UserID uint             `gorm:"not null;index" json:"user_id"`
	Type   NotificationType `gorm:"type:varchar(30);not null" json:"type"`
	Title  string           `gorm:"not null" json:"title"`
	Body   string           `gorm:"type:text" json:"body"`
	Read   bool             `gorm:"not null;default:false" json:"read"`

	// optional pointer back at the thing the notification is about
	TeamID *uint `json:"team_id,omitempty"`

	gorm.Model
}
