package services

import (
	"errors"
	"fmt"
	"log"
	"math"
	"sort"

	"gorm.io/gorm"

	"github.com/HackVerse/hackathon-service/internal/domain"
	"github.com/HackVerse/hackathon-service/internal/dto"
	"github.com/HackVerse/hackathon-service/internal/repository"
)

type JudgingService interface {
	Score(judgeID uint, stage domain.ScoreStage, input dto.ScoreRequest) (*domain.Score, error)
	ConfirmShortlist(eventID uint) ([]domain.ShortlistEntry, error)
	Shortlist(eventID uint) ([]domain.ShortlistEntry, error)
}

type judgingService struct {
	scoreRepo       repository.ScoreRepository
	shortlistRepo   repository.ShortlistRepository
	teamRepo        repository.TeamRepository
	eventRepo       repository.EventRepository
	entitlementRepo repository.EntitlementRepository
	notifRepo       repository.NotificationRepository
}

func NewJudgingService(
	scoreRepo repository.ScoreRepository,
	shortlistRepo repository.ShortlistRepository,
	teamRepo repository.TeamRepository,
	eventRepo repository.EventRepository,
	entitlementRepo repository.EntitlementRepository,
	notifRepo repository.NotificationRepository,
) JudgingService {
	return &judgingService{
		scoreRepo:       scoreRepo,
		shortlistRepo:   shortlistRepo,
		teamRepo:        teamRepo,
		eventRepo:       eventRepo,
		entitlementRepo: entitlementRepo,
		notifRepo:       notifRepo,
	}
}

// Score validates the rubric and persists the weighted total. The weight
// check is strict: anything other than exactly 100 is rejected with the sum
// echoed back.
func (s *judgingService) Score(judgeID uint, stage domain.ScoreStage, input dto.ScoreRequest) (*domain.Score, error) {
	weights := input.Weights()
	var weightSum int
	for _, w := range weights {
		weightSum += w
	}
	if weightSum != 100 {
		return nil, &WeightSumError{Sum: weightSum}
	}

	for _, v := range input.Components() {
		if v < 0 || v > 100 {
			return nil, ErrScoreOutOfRange
		}
	}

	if _, err := s.teamRepo.FindByID(input.TeamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}

	score := &domain.Score{
		TeamID:  input.TeamID,
		JudgeID: judgeID,
		Stage:   stage,

		Innovation:   input.Innovation,
		Technical:    input.Technical,
		Presentation: input.Presentation,
		Feasibility:  input.Feasibility,
		Impact:       input.Impact,

		InnovationWeight:   input.InnovationWeight,
		TechnicalWeight:    input.TechnicalWeight,
		PresentationWeight: input.PresentationWeight,
		FeasibilityWeight:  input.FeasibilityWeight,
		ImpactWeight:       input.ImpactWeight,

		Total: domain.WeightedTotal(input.Components(), weights),
	}
	if err := s.scoreRepo.Upsert(score); err != nil {
		return nil, err
	}
	return score, nil
}

// ConfirmShortlist ranks teams by their averaged PPT-stage totals and keeps
// the event's configured top-N. Re-running it with unchanged scores yields
// the same entries; once entitlements exist the shortlist is frozen.
func (s *judgingService) ConfirmShortlist(eventID uint) ([]domain.ShortlistEntry, error) {
	event, err := s.eventRepo.FindByID(eventID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, err
	}

	frozen, err := s.entitlementRepo.ExistsForEvent(eventID)
	if err != nil {
		return nil, err
	}
	if frozen {
		return nil, ErrShortlistFrozen
	}

	scores, err := s.scoreRepo.ListForEvent(eventID, domain.ScoreStagePPT)
	if err != nil {
		return nil, err
	}

	type aggregate struct {
		teamID uint
		sum    float64
		count  int
	}
	byTeam := map[uint]*aggregate{}
	for _, sc := range scores {
		agg, ok := byTeam[sc.TeamID]
		if !ok {
			agg = &aggregate{teamID: sc.TeamID}
			byTeam[sc.TeamID] = agg
		}
		agg.sum += sc.Total
		agg.count++
	}

	ranked := make([]*aggregate, 0, len(byTeam))
	for _, agg := range byTeam {
		ranked = append(ranked, agg)
	}
	// score descending, team ID ascending as a stable tiebreak
	sort.Slice(ranked, func(i, j int) bool {
		si := ranked[i].sum / float64(ranked[i].count)
		sj := ranked[j].sum / float64(ranked[j].count)
		if si != sj {
			return si > sj
		}
		return ranked[i].teamID < ranked[j].teamID
	})

	if len(ranked) > event.TeamsToShortlist {
		ranked = ranked[:event.TeamsToShortlist]
	}

	entries := make([]domain.ShortlistEntry, 0, len(ranked))
	for i, agg := range ranked {
		avg := math.Round(agg.sum/float64(agg.count)*100) / 100
		entries = append(entries, domain.ShortlistEntry{
			EventID:    eventID,
			TeamID:     agg.teamID,
			Rank:       i + 1,
			TotalScore: avg,
		})
	}

	if err := s.shortlistRepo.Replace(eventID, entries); err != nil {
		return nil, err
	}

	for _, entry := range entries {
		team, err := s.teamRepo.FindByID(entry.TeamID)
		if err != nil {
			continue
		}
		for _, m := range team.Members {
			if m.Status == domain.MemberStatusDeclined {
				continue
			}
			n := &domain.Notification{
				UserID: m.UserID,
				Type:   domain.NotificationTypeShortlisted,
				Title:  "Team shortlisted",
				Body:   fmt.Sprintf("Team %q has been shortlisted at rank %d.", team.Name, entry.Rank),
				TeamID: &team.ID,
			}
			if err := s.notifRepo.Create(n); err != nil {
				log.Printf("create notification failed: %v", err)
			}
		}
	}

	return entries, nil
}

func (s *judgingService) Shortlist(eventID uint) ([]domain.ShortlistEntry, error) {
	return s.shortlistRepo.ListByEvent(eventID)
}
