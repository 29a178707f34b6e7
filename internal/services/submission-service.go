package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/HackVerse/hackathon-service/internal/domain"
	"github.com/HackVerse/hackathon-service/internal/interfaces"
	"github.com/HackVerse/hackathon-service/internal/repository"
	pkgutils "github.com/HackVerse/hackathon-service/pkg/utils"
)

type SubmissionService interface {
	Submit(ctx context.Context, userID, teamID uint, kind domain.SubmissionKind, fileBase64 string) (*domain.Submission, error)
	ListByTeam(teamID uint) ([]domain.Submission, error)
}

type submissionService struct {
	subRepo       repository.SubmissionRepository
	teamRepo      repository.TeamRepository
	eventRepo     repository.EventRepository
	shortlistRepo repository.ShortlistRepository
	uploader      interfaces.Uploader
}

func NewSubmissionService(
	subRepo repository.SubmissionRepository,
	teamRepo repository.TeamRepository,
	eventRepo repository.EventRepository,
	shortlistRepo repository.ShortlistRepository,
	uploader interfaces.Uploader,
) SubmissionService {
	return &submissionService{
		subRepo:       subRepo,
		teamRepo:      teamRepo,
		eventRepo:     eventRepo,
		shortlistRepo: shortlistRepo,
		uploader:      uploader,
	}
}

// Submit is leader-only. PPT decks need a confirmed team; final deliverables
// additionally need the team on the event's shortlist.
func (s *submissionService) Submit(ctx context.Context, userID, teamID uint, kind domain.SubmissionKind, fileBase64 string) (*domain.Submission, error) {
	team, err := s.teamRepo.FindByID(teamID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTeamNotFound
	}
	if err != nil {
		return nil, err
	}

	if team.LeaderID != userID {
		return nil, ErrNotTeamLeader
	}
	if team.Status != domain.TeamStatusConfirmed {
		return nil, ErrTeamNotConfirmed
	}

	event, err := s.eventRepo.FindByID(team.EventID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, err
	}

	deadline := event.PPTDeadline
	if kind == domain.SubmissionKindFinal {
		deadline = event.FinalDeadline
	}
	if deadline != nil && time.Now().After(*deadline) {
		return nil, ErrDeadlinePassed
	}

	if kind == domain.SubmissionKindFinal {
		shortlisted, err := s.shortlistRepo.IsShortlisted(team.EventID, team.ID)
		if err != nil {
			return nil, err
		}
		if !shortlisted {
			return nil, ErrTeamNotShortlisted
		}
	}

	raw, err := pkgutils.DecodeBase64Payload(fileBase64)
	if err != nil {
		return nil, err
	}

	filename := fmt.Sprintf("team-%d-%s-%s", team.ID, kind, uuid.NewString())
	url, err := s.uploader.UploadRaw(ctx, "hackverse/submissions", filename, raw)
	if err != nil {
		return nil, err
	}

	sub := &domain.Submission{
		TeamID:      team.ID,
		EventID:     team.EventID,
		Kind:        kind,
		FileURL:     url,
		SubmittedAt: time.Now(),
	}
	if err := s.subRepo.Upsert(sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *submissionService) ListByTeam(teamID uint) ([]domain.Submission, error) {
	return s.subRepo.ListByTeam(teamID)
}
