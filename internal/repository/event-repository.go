package repository

import (
	"gorm.io/gorm"

	"github.com/HackVerse/hackathon-service/internal/domain"
)

type EventRepository interface {
	Create(event *domain.Event) error
	FindByID(eventID uint) (*domain.Event, error)
	List() ([]domain.Event, error)
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(event *domain.Event) error {
	return r.db.Create(event).Error
}

func (r *eventRepository) FindByID(eventID uint) (*domain.Event, error) {
	event := &domain.Event{}
	if err := r.db.First(event, eventID).Error; err != nil {
		return nil, err
	}
	return event, nil
}

func (r *eventRepository) List() ([]domain.Event, error) {
	var events []domain.Event
	if err := r.db.Order("created_at DESC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}
