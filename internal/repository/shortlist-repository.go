package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/HackVerse/hackathon-service/internal/domain"
)

type ShortlistRepository interface {
	// Replace swaps the whole shortlist for an event in one transaction.
	Replace(eventID uint, entries []domain.ShortlistEntry) error
	ListByEvent(eventID uint) ([]domain.ShortlistEntry, error)
	IsShortlisted(eventID, teamID uint) (bool, error)
}

type shortlistRepository struct {
	db *gorm.DB
}

func NewShortlistRepository(db *gorm.DB) ShortlistRepository {
	return &shortlistRepository{db: db}
}

func (r *shortlistRepository) Replace(eventID uint, entries []domain.ShortlistEntry) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("event_id = ?", eventID).
			Delete(&domain.ShortlistEntry{}).Error; err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}
		return tx.Create(&entries).Error
	})
}

func (r *shortlistRepository) ListByEvent(eventID uint) ([]domain.ShortlistEntry, error) {
	var entries []domain.ShortlistEntry
	err := r.db.
		Where("event_id = ?", eventID).
		Order("rank ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *shortlistRepository) IsShortlisted(eventID, teamID uint) (bool, error) {
	entry := &domain.ShortlistEntry{}
	err := r.db.
		Where("event_id = ? AND team_id = ?", eventID, teamID).
		First(entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
