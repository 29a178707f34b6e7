package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/HackVerse/hackathon-service/internal/domain"
	"github.com/HackVerse/hackathon-service/internal/dto"
	"github.com/HackVerse/hackathon-service/internal/helper"
	"github.com/HackVerse/hackathon-service/internal/repository"
)

type EventService interface {
	Create(input dto.CreateEventRequest) (*domain.Event, error)
	Get(eventID uint) (*domain.Event, error)
	List() ([]domain.Event, error)
}

type eventService struct {
	repo repository.EventRepository
}

func NewEventService(repo repository.EventRepository) EventService {
	return &eventService{repo: repo}
}

func (s *eventService) Create(input dto.CreateEventRequest) (*domain.Event, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, invalid("event name is required")
	}
	if input.MinTeamSize < 1 || input.MaxTeamSize < input.MinTeamSize {
		return nil, invalid("invalid team size limits")
	}
	if input.TeamsToShortlist < 1 {
		return nil, invalid("teamsToShortlist must be at least 1")
	}

	event := &domain.Event{
		Name:             name,
		Description:      strings.TrimSpace(input.Description),
		MinTeamSize:      input.MinTeamSize,
		MaxTeamSize:      input.MaxTeamSize,
		AllowIndividual:  input.AllowIndividual,
		TeamsToShortlist: input.TeamsToShortlist,
	}
	if err := s.repo.Create(event); err != nil {
		if helper.IsUniqueViolation(err) {
			return nil, invalid("an event with this name already exists")
		}
		return nil, err
	}
	return event, nil
}

func (s *eventService) Get(eventID uint) (*domain.Event, error) {
	event, err := s.repo.FindByID(eventID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, err
	}
	return event, nil
}

func (s *eventService) List() ([]domain.Event, error) {
	return s.repo.List()
}
