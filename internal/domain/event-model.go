package domain

import (
	"time"

	"gorm.io/gorm"
)

type Event struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	Name             string `gorm:"uniqueIndex;not null" json:"name"`
	Description      string `gorm:"type:text" json:"description,omitempty"`
	MinTeamSize      int    `gorm:"not null;default:1" json:"min_team_size"`
	MaxTeamSize      int    `gorm:"not null;default:4" json:"max_team_size"`
	AllowIndividual  bool   `gorm:"not null;default:false" json:"allow_individual"`
	TeamsToShortlist int    `gorm:"not null;default:10" json:"teams_to_shortlist"`

	PPTDeadline   *time.Time `json:"ppt_deadline,omitempty"`
	FinalDeadline *time.Time `json:"final_deadline,omitempty"`

	gorm.Model
}
