package domain

import (
	"time"

	"gorm.io/gorm"
)

type SubmissionKind string

const (
	SubmissionKindPPT   SubmissionKind = "ppt"
	SubmissionKindFinal SubmissionKind = "final"
)

// Submission holds one artifact per (team, kind). Re-uploads overwrite the
// row rather than appending history.
type Submission struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	TeamID      uint           `gorm:"not null;uniqueIndex:uidx_team_submission" json:"team_id"`
	EventID     uint           `gorm:"not null;index" json:"event_id"`
	Kind        SubmissionKind `gorm:"type:varchar(10);not null;uniqueIndex:uidx_team_submission" json:"kind"`
	FileURL     string         `gorm:"type:text;not null" json:"file_url"`
	SubmittedAt time.Time      `gorm:"not null" json:"submitted_at"`

	gorm.Model
}
