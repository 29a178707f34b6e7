package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/HackVerse/hackathon-service/internal/domain"
)

type EntitlementRepository interface {
	Create(e *domain.Entitlement) error
	FindByToken(token string) (*domain.Entitlement, error)
	FindByEventUserKind(eventID, userID uint, kind domain.EntitlementKind) (*domain.Entitlement, error)
	Save(e *domain.Entitlement) error
	ListByUser(userID uint) ([]domain.Entitlement, error)
	ExistsForEvent(eventID uint) (bool, error)
}

type entitlementRepository struct {
	db *gorm.DB
}

func NewEntitlementRepository(db *gorm.DB) EntitlementRepository {
	return &entitlementRepository{db: db}
}

func (r *entitlementRepository) Create(e *domain.Entitlement) error {
	return r.db.Create(e).Error
}

func (r *entitlementRepository) FindByToken(token string) (*domain.Entitlement, error) {
	e := &domain.Entitlement{}
	if err := r.db.Where("qr_token = ?", token).First(e).Error; err != nil {
		return nil, err
	}
	return e, nil
}

func (r *entitlementRepository) FindByEventUserKind(eventID, userID uint, kind domain.EntitlementKind) (*domain.Entitlement, error) {
	e := &domain.Entitlement{}
	err := r.db.
		Where("event_id = ? AND user_id = ? AND kind = ?", eventID, userID, kind).
		First(e).Error
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *entitlementRepository) Save(e *domain.Entitlement) error {
	return r.db.Save(e).Error
}

func (r *entitlementRepository) ListByUser(userID uint) ([]domain.Entitlement, error) {
	var list []domain.Entitlement
	if err := r.db.Where("user_id = ?", userID).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *entitlementRepository) ExistsForEvent(eventID uint) (bool, error) {
	e := &domain.Entitlement{}
	err := r.db.Where("event_id = ?", eventID).First(e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
