package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/HackVerse/hackathon-service/internal/domain"
)

type SubmissionRepository interface {
	// Upsert overwrites any prior artifact of the same kind for the team.
	Upsert(sub *domain.Submission) error
	FindByTeamAndKind(teamID uint, kind domain.SubmissionKind) (*domain.Submission, error)
	ListByTeam(teamID uint) ([]domain.Submission, error)
}

type submissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) Upsert(sub *domain.Submission) error {
	existing := &domain.Submission{}
	err := r.db.
		Where("team_id = ? AND kind = ?", sub.TeamID, sub.Kind).
		First(existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(sub).Error
	}
	if err != nil {
		return err
	}

	existing.FileURL = sub.FileURL
	existing.SubmittedAt = sub.SubmittedAt
	if err := r.db.Save(existing).Error; err != nil {
		return err
	}
	*sub = *existing
	return nil
}

func (r *submissionRepository) FindByTeamAndKind(teamID uint, kind domain.SubmissionKind) (*domain.Submission, error) {
	sub := &domain.Submission{}
	err := r.db.
		Where("team_id = ? AND kind = ?", teamID, kind).
		First(sub).Error
	if err != nil {
		return nil, err
	}
	return sub, nil
}

func (r *submissionRepository) ListByTeam(teamID uint) ([]domain.Submission, error) {
	var subs []domain.Submission
	if err := r.db.Where("team_id = ?", teamID).Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}
