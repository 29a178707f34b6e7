package services

import (
	"github.com/HackVerse/hackathon-service/internal/domain"
	"github.com/HackVerse/hackathon-service/internal/repository"
)

type NotificationService interface {
	List(userID uint) ([]domain.Notification, error)
	MarkRead(id, userID uint) error
	MarkAllRead(userID uint) error
}

type notificationService struct {
	repo repository.NotificationRepository
}

func NewNotificationService(repo repository.NotificationRepository) NotificationService {
	return &notificationService{repo: repo}
}

func (s *notificationService) List(userID uint) ([]domain.Notification, error) {
	return s.repo.ListByUser(userID)
}

func (s *notificationService) MarkRead(id, userID uint) error {
	affected, err := s.repo.MarkRead(id, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (s *notificationService) MarkAllRead(userID uint) error {
	return s.repo.MarkAllRead(userID)
}
