package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/HackVerse/hackathon-service/internal/domain"
)

type ScoreRepository interface {
	// Upsert keeps one row per (team, judge, stage); a judge re-scoring a
	// team replaces their previous rubric.
	Upsert(score *domain.Score) error
	ListForEvent(eventID uint, stage domain.ScoreStage) ([]domain.Score, error)
	ListByTeam(teamID uint) ([]domain.Score, error)
}

type scoreRepository struct {
	db *gorm.DB
}

func NewScoreRepository(db *gorm.DB) ScoreRepository {
	return &scoreRepository{db: db}
}

func (r *scoreRepository) Upsert(score *domain.Score) error {
	existing := &domain.Score{}
	err := r.db.
		Where("team_id = ? AND judge_id = ? AND stage = ?", score.TeamID, score.JudgeID, score.Stage).
		First(existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(score).Error
	}
	if err != nil {
		return err
	}

	score.ID = existing.ID
	score.CreatedAt = existing.CreatedAt
	return r.db.Save(score).Error
}

func (r *scoreRepository) ListForEvent(eventID uint, stage domain.ScoreStage) ([]domain.Score, error) {
	var scores []domain.Score
	err := r.db.
		Joins("JOIN teams ON teams.id = scores.team_id").
		Where("teams.event_id = ? AND scores.stage = ? AND teams.deleted_at IS NULL", eventID, stage).
		Find(&scores).Error
	if err != nil {
		return nil, err
	}
	return scores, nil
}

func (r *scoreRepository) ListByTeam(teamID uint) ([]domain.Score, error) {
	var scores []domain.Score
	if err := r.db.Where("team_id = ?", teamID).Find(&scores).Error; err != nil {
		return nil, err
	}
	return scores, nil
}
