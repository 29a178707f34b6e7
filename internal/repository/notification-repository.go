package repository

import (
	"gorm.io/gorm"

	"github.com/HackVerse/hackathon-service/internal/domain"
)

type NotificationRepository interface {
	Create(n *domain.Notification) error
	ListByUser(userID uint) ([]domain.Notification, error)
	MarkRead(id, userID uint) (int64, error)
	MarkAllRead(userID uint) error
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(n *domain.Notification) error {
	return r.db.Create(n).Error
}

func (r *notificationRepository) ListByUser(userID uint) ([]domain.Notification, error) {
	var list []domain.Notification
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// MarkRead scopes by owner so one user cannot flip another's rows; the
// returned count distinguishes not-found from success.
func (r *notificationRepository) MarkRead(id, userID uint) (int64, error) {
	res := r.db.Model(&domain.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("read", true)
	return res.RowsAffected, res.Error
}

func (r *notificationRepository) MarkAllRead(userID uint) error {
	return r.db.Model(&domain.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Update("read", true).Error
}
