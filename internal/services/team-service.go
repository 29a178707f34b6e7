package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"gorm.io/gorm"

	"github.com/HackVerse/hackathon-service/internal/domain"
	"github.com/HackVerse/hackathon-service/internal/dto"
	"github.com/HackVerse/hackathon-service/internal/helper/utils"
	"github.com/HackVerse/hackathon-service/internal/repository"
)

type TeamService interface {
	Create(leaderID uint, input dto.CreateTeamRequest) (*domain.Team, error)
	Accept(teamID, userID uint) (*domain.Team, error)
	Decline(teamID, userID uint) (*domain.Team, error)
	MyTeams(userID uint) ([]domain.Team, error)
	Get(teamID uint) (*domain.Team, error)
	ListByEvent(eventID uint) ([]domain.Team, error)
}

type teamService struct {
	teamRepo  repository.TeamRepository
	userRepo  repository.UserRepository
	eventRepo repository.EventRepository
	notifRepo repository.NotificationRepository
}

func NewTeamService(
	teamRepo repository.TeamRepository,
	userRepo repository.UserRepository,
	eventRepo repository.EventRepository,
	notifRepo repository.NotificationRepository,
) TeamService {
	return &teamService{
		teamRepo:  teamRepo,
		userRepo:  userRepo,
		eventRepo: eventRepo,
		notifRepo: notifRepo,
	}
}

// Create validates team size against the event's limits before any row is
// written: a rejected team leaves nothing behind.
func (s *teamService) Create(leaderID uint, input dto.CreateTeamRequest) (*domain.Team, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, invalid("team name is required")
	}

	event, err := s.eventRepo.FindByID(input.EventID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, err
	}

	leader, err := s.userRepo.FindUserById(leaderID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	// resolve teammate emails, skipping duplicates and the leader's own
	memberIDs := make([]uint, 0, len(input.MemberEmails))
	seen := map[string]bool{leader.Email: true}
	for _, raw := range input.MemberEmails {
		email := utils.NormalizeEmail(raw)
		if email == "" || seen[email] {
			continue
		}
		seen[email] = true

		member, err := s.userRepo.FindUserByEmail(email)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrUserNotFound, email)
		}
		if err != nil {
			return nil, err
		}
		memberIDs = append(memberIDs, member.ID)
	}

	size := 1 + len(memberIDs)
	minSize := event.MinTeamSize
	if size == 1 && !event.AllowIndividual && minSize < 2 {
		minSize = 2
	}
	if size < minSize || size > event.MaxTeamSize {
		return nil, &TeamSizeError{Min: minSize, Max: event.MaxTeamSize, Size: size}
	}

	members := make([]domain.TeamMember, 0, size)
	members = append(members, domain.TeamMember{UserID: leaderID, Status: domain.MemberStatusLeader})
	for _, id := range memberIDs {
		members = append(members, domain.TeamMember{UserID: id, Status: domain.MemberStatusPending})
	}

	team := &domain.Team{
		EventID:  event.ID,
		Name:     name,
		LeaderID: leaderID,
		Status:   domain.ComputeTeamStatus(members),
	}
	if err := s.teamRepo.CreateWithMembers(team, members); err != nil {
		return nil, err
	}
	team.Members = members

	for _, id := range memberIDs {
		s.notify(id, domain.NotificationTypeTeamInvite,
			"Team invitation",
			fmt.Sprintf("%s %s invited you to join team %q.", leader.FirstName, leader.LastName, team.Name),
			&team.ID)
	}

	return team, nil
}

func (s *teamService) Accept(teamID, userID uint) (*domain.Team, error) {
	return s.answerInvite(teamID, userID, domain.MemberStatusAccepted)
}

func (s *teamService) Decline(teamID, userID uint) (*domain.Team, error) {
	return s.answerInvite(teamID, userID, domain.MemberStatusDeclined)
}

// answerInvite flips the caller's own membership row exactly once and then
// re-derives the team status from the full membership set.
func (s *teamService) answerInvite(teamID, userID uint, answer domain.MemberStatus) (*domain.Team, error) {
	member, err := s.teamRepo.FindMember(teamID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotInvited
	}
	if err != nil {
		return nil, err
	}
	if member.Status != domain.MemberStatusPending {
		return nil, ErrInviteAlreadyAnswered
	}

	member.Status = answer
	if err := s.teamRepo.SaveMember(member); err != nil {
		return nil, err
	}

	team, err := s.teamRepo.FindByID(teamID)
	if err != nil {
		return nil, err
	}

	// disqualification is a sticky admin override, never recomputed away
	if team.Status != domain.TeamStatusDisqualified {
		status := domain.ComputeTeamStatus(team.Members)
		if status != team.Status {
			if err := s.teamRepo.UpdateStatus(teamID, status); err != nil {
				return nil, err
			}
			team.Status = status
		}
	}

	user, err := s.userRepo.FindUserById(userID)
	if err == nil {
		verb := "accepted"
		if answer == domain.MemberStatusDeclined {
			verb = "declined"
		}
		s.notify(team.LeaderID, domain.NotificationTypeInviteAnswer,
			"Invite "+verb,
			fmt.Sprintf("%s %s %s the invitation to team %q.", user.FirstName, user.LastName, verb, team.Name),
			&team.ID)
	}

	return team, nil
}

func (s *teamService) MyTeams(userID uint) ([]domain.Team, error) {
	return s.teamRepo.ListByUser(userID)
}

func (s *teamService) Get(teamID uint) (*domain.Team, error) {
	team, err := s.teamRepo.FindByID(teamID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTeamNotFound
	}
	if err != nil {
		return nil, err
	}
	return team, nil
}

func (s *teamService) ListByEvent(eventID uint) ([]domain.Team, error) {
	return s.teamRepo.ListByEvent(eventID)
}

// notify is best-effort: a failed notification never fails the operation
// that triggered it.
func (s *teamService) notify(userID uint, typ domain.NotificationType, title, body string, teamID *uint) {
	n := &domain.Notification{
		UserID: userID,
		Type:   typ,
		Title:  title,
		Body:   body,
		TeamID: teamID,
	}
	if err := s.notifRepo.Create(n); err != nil {
		log.Printf("create notification failed: %v", err)
	}
}
