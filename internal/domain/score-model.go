package domain

import (
	"math"

	"gorm.io/gorm"
)

type ScoreStage string

const (
	ScoreStagePPT   ScoreStage = "ppt"
	ScoreStageFinal ScoreStage = "final"
)

// Score is one judge's weighted rubric for one team at one stage.
// The five weights must sum to exactly 100; Total is persisted so ranking
// never recomputes against drifting weights.
type Score struct {
	ID      uint       `gorm:"primaryKey" json:"id"`
	TeamID  uint       `gorm:"not null;uniqueIndex:uidx_team_judge_stage" json:"team_id"`
	JudgeID uint       `gorm:"not null;uniqueIndex:uidx_team_judge_stage" json:"judge_id"`
	Stage   ScoreStage `gorm:"type:varchar(10);not null;uniqueIndex:uidx_team_judge_stage" json:"stage"`

	Innovation   int `gorm:"not null" json:"innovation"`
	Technical    int `gorm:"not null" json:"technical"`
	Presentation int `gorm:"not null" json:"presentation"`
	Feasibility  int `gorm:"not null" json:"feasibility"`
	Impact       int `gorm:"not null" json:"impact"`

	InnovationWeight   int `gorm:"not null" json:"innovation_weight"`
	TechnicalWeight    int `gorm:"not null" json:"technical_weight"`
	PresentationWeight int `gorm:"not null" json:"presentation_weight"`
	FeasibilityWeight  int `gorm:"not null" json:"feasibility_weight"`
	ImpactWeight       int `gorm:"not null" json:"impact_weight"`

	Total float64 `gorm:"not null" json:"total"`

	gorm.Model
}

func (s *Score) Components() []int {
	return []int{s.Innovation, s.Technical, s.Presentation, s.Feasibility, s.Impact}
}

func (s *Score) Weights() []int {
	return []int{s.InnovationWeight, s.TechnicalWeight, s.PresentationWeight, s.FeasibilityWeight, s.ImpactWeight}
}

// WeightedTotal computes round(Σ(value_i × weight_i) / 100, 2).
// Callers must have validated that weights sum to 100.
func WeightedTotal(values, weights []int) float64 {
	var sum int
	for i := range values {
		sum += values[i] * weights[i]
	}
	return math.Round(float64(sum)) / 100
}
