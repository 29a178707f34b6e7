package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/HackVerse/hackathon-service/internal/domain"
	"github.com/HackVerse/hackathon-service/internal/helper"
	"github.com/HackVerse/hackathon-service/internal/repository"
)

type EntitlementService interface {
	Generate(eventID uint) (int, error)
	Scan(token string) (*domain.Entitlement, error)
	My(userID uint) ([]domain.Entitlement, error)
}

type entitlementService struct {
	entitlementRepo repository.EntitlementRepository
	shortlistRepo   repository.ShortlistRepository
	teamRepo        repository.TeamRepository
}

func NewEntitlementService(
	entitlementRepo repository.EntitlementRepository,
	shortlistRepo repository.ShortlistRepository,
	teamRepo repository.TeamRepository,
) EntitlementService {
	return &entitlementService{
		entitlementRepo: entitlementRepo,
		shortlistRepo:   shortlistRepo,
		teamRepo:        teamRepo,
	}
}

// Generate issues check-in and meal QR tokens to every active member of
// every shortlisted team. Idempotent per (event, user, kind): re-running
// only fills gaps and returns the number of tokens newly created.
func (s *entitlementService) Generate(eventID uint) (int, error) {
	entries, err := s.shortlistRepo.ListByEvent(eventID)
	if err != nil {
		return 0, err
	}
	if len(entries) == 0 {
		return 0, ErrNoShortlist
	}

	kinds := []domain.EntitlementKind{
		domain.EntitlementKindCheckin,
		domain.EntitlementKindMeal,
	}

	created := 0
	for _, entry := range entries {
		team, err := s.teamRepo.FindByID(entry.TeamID)
		if err != nil {
			return created, err
		}
		for _, m := range team.Members {
			if m.Status == domain.MemberStatusDeclined {
				continue
			}
			for _, kind := range kinds {
				_, err := s.entitlementRepo.FindByEventUserKind(eventID, m.UserID, kind)
				if err == nil {
					continue
				}
				if !errors.Is(err, gorm.ErrRecordNotFound) {
					return created, err
				}
				e := &domain.Entitlement{
					EventID: eventID,
					TeamID:  team.ID,
					UserID:  m.UserID,
					Kind:    kind,
					QRToken: uuid.NewString(),
				}
				if err := s.entitlementRepo.Create(e); err != nil {
					// a concurrent run already issued this one
					if helper.IsUniqueViolation(err) {
						continue
					}
					return created, err
				}
				created++
			}
		}
	}

	return created, nil
}

// Scan consumes a token exactly once: unknown tokens 404, replays 409.
func (s *entitlementService) Scan(token string) (*domain.Entitlement, error) {
	e, err := s.entitlementRepo.FindByToken(token)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTokenUnknown
	}
	if err != nil {
		return nil, err
	}
	if e.ConsumedAt != nil {
		return nil, ErrTokenConsumed
	}

	now := time.Now()
	e.ConsumedAt = &now
	if err := s.entitlementRepo.Save(e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *entitlementService) My(userID uint) ([]domain.Entitlement, error) {
	return s.entitlementRepo.ListByUser(userID)
}
