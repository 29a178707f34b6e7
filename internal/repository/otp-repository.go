package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/HackVerse/hackathon-service/internal/domain"
)

type OTPRepository interface {
	// Issue consumes every prior unused challenge for the email and stores
	// the new one in the same transaction, so at most one code is live.
	Issue(ch *domain.OTPChallenge) error
	FindActiveByEmail(email string) (*domain.OTPChallenge, error)
	MarkUsed(id uint) error
}

type otpRepository struct {
	db *gorm.DB
}

func NewOTPRepository(db *gorm.DB) OTPRepository {
	return &otpRepository{db: db}
}

func (r *otpRepository) Issue(ch *domain.OTPChallenge) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		if err := tx.Model(&domain.OTPChallenge{}).
			Where("email = ? AND used_at IS NULL", ch.Email).
			Update("used_at", now).Error; err != nil {
			return err
		}
		return tx.Create(ch).Error
	})
}

func (r *otpRepository) FindActiveByEmail(email string) (*domain.OTPChallenge, error) {
	ch := &domain.OTPChallenge{}
	err := r.db.
		Where("email = ? AND used_at IS NULL", email).
		Order("created_at DESC").
		First(ch).Error
	if err != nil {
		return nil, err
	}
	return ch, nil
}

func (r *otpRepository) MarkUsed(id uint) error {
	now := time.Now()
	return r.db.Model(&domain.OTPChallenge{}).
		Where("id = ?", id).
		Update("used_at", now).Error
}
