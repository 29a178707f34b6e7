package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HackVerse/hackathon-service/internal/domain"
	"github.com/HackVerse/hackathon-service/internal/dto"
)

type teamFixture struct {
	svc    TeamService
	teams  *memTeamRepo
	users  *memUserRepo
	events *memEventRepo
	notifs *memNotificationRepo
}

func newTeamFixture(t *testing.T) *teamFixture {
	t.Helper()
	f := &teamFixture{
		teams:  newMemTeamRepo(),
		users:  newMemUserRepo(),
		events: newMemEventRepo(),
		notifs: newMemNotificationRepo(),
	}
	f.svc = NewTeamService(f.teams, f.users, f.events, f.notifs)
	return f
}

func (f *teamFixture) addUser(t *testing.T, email string) *domain.User {
	t.Helper()
	u, err := f.users.CreateUser(&domain.User{
		Email:     email,
		FirstName: "Test",
		LastName:  "User",
		Role:      domain.RoleStudent,
	})
	require.NoError(t, err)
	return u
}

func (f *teamFixture) addEvent(t *testing.T, min, max int, allowIndividual bool) *domain.Event {
	t.Helper()
	e := &domain.Event{
		Name:             "HackVerse",
		MinTeamSize:      min,
		MaxTeamSize:      max,
		AllowIndividual:  allowIndividual,
		TeamsToShortlist: 10,
	}
	require.NoError(t, f.events.Create(e))
	return e
}

func TestCreateTeam(t *testing.T) {
	f := newTeamFixture(t)
	event := f.addEvent(t, 2, 4, false)
	leader := f.addUser(t, "leader@example.com")
	mate := f.addUser(t, "mate@example.com")

	team, err := f.svc.Create(leader.ID, dto.CreateTeamRequest{
		EventID:      event.ID,
		Name:         "Bit Benders",
		MemberEmails: []string{"mate@example.com"},
	})
	require.NoError(t, err)

	assert.Equal(t, domain.TeamStatusPending, team.Status)
	assert.Equal(t, leader.ID, team.LeaderID)
	require.Len(t, team.Members, 2)
	assert.Equal(t, domain.MemberStatusLeader, team.Members[0].Status)
	assert.Equal(t, domain.MemberStatusPending, team.Members[1].Status)

	// the invitee got an invite notification, the leader did not
	invites, err := f.notifs.ListByUser(mate.ID)
	require.NoError(t, err)
	require.Len(t, invites, 1)
	assert.Equal(t, domain.NotificationTypeTeamInvite, invites[0].Type)

	own, err := f.notifs.ListByUser(leader.ID)
	require.NoError(t, err)
	assert.Empty(t, own)
}

func TestCreateTeamSizeRejectedBeforeWrite(t *testing.T) {
	f := newTeamFixture(t)
	event := f.addEvent(t, 1, 4, false)
	leader := f.addUser(t, "leader@example.com")

	_, err := f.svc.Create(leader.ID, dto.CreateTeamRequest{
		EventID: event.ID,
		Name:    "Solo",
	})
	var sizeErr *TeamSizeError
	require.ErrorAs(t, err, &sizeErr)
	// solo entries need at least a pair when individuals are not allowed
	assert.Equal(t, 2, sizeErr.Min)
	assert.Equal(t, 1, sizeErr.Size)

	// nothing was persisted
	assert.Empty(t, f.teams.teams)
}

func TestCreateTeamSoloAllowed(t *testing.T) {
	f := newTeamFixture(t)
	event := f.addEvent(t, 1, 4, true)
	leader := f.addUser(t, "leader@example.com")

	team, err := f.svc.Create(leader.ID, dto.CreateTeamRequest{
		EventID: event.ID,
		Name:    "Lone Wolf",
	})
	require.NoError(t, err)
	// no pending invites, so the team is confirmed from the start
	assert.Equal(t, domain.TeamStatusConfirmed, team.Status)
}

func TestCreateTeamTooLarge(t *testing.T) {
	f := newTeamFixture(t)
	event := f.addEvent(t, 1, 2, true)
	leader := f.addUser(t, "leader@example.com")
	f.addUser(t, "a@example.com")
	f.addUser(t, "b@example.com")

	_, err := f.svc.Create(leader.ID, dto.CreateTeamRequest{
		EventID:      event.ID,
		Name:         "Crowd",
		MemberEmails: []string{"a@example.com", "b@example.com"},
	})
	var sizeErr *TeamSizeError
	require.ErrorAs(t, err, &sizeErr)
	assert.Equal(t, 2, sizeErr.Max)
	assert.Equal(t, 3, sizeErr.Size)
}

func TestCreateTeamDeduplicatesEmails(t *testing.T) {
	f := newTeamFixture(t)
	event := f.addEvent(t, 1, 4, true)
	leader := f.addUser(t, "leader@example.com")
	f.addUser(t, "mate@example.com")

	team, err := f.svc.Create(leader.ID, dto.CreateTeamRequest{
		EventID: event.ID,
		Name:    "Dedup",
		MemberEmails: []string{
			"mate@example.com",
			"MATE@example.com ",
			"leader@example.com",
		},
	})
	require.NoError(t, err)
	assert.Len(t, team.Members, 2)
}

func TestCreateTeamUnknownMember(t *testing.T) {
	f := newTeamFixture(t)
	event := f.addEvent(t, 1, 4, true)
	leader := f.addUser(t, "leader@example.com")

	_, err := f.svc.Create(leader.ID, dto.CreateTeamRequest{
		EventID:      event.ID,
		Name:         "Ghosts",
		MemberEmails: []string{"ghost@example.com"},
	})
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.ErrorContains(t, err, "ghost@example.com")
}

func TestCreateTeamUnknownEvent(t *testing.T) {
	f := newTeamFixture(t)
	leader := f.addUser(t, "leader@example.com")

	_, err := f.svc.Create(leader.ID, dto.CreateTeamRequest{EventID: 99, Name: "Nowhere"})
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestAcceptConfirmsWhenNoPendingLeft(t *testing.T) {
	f := newTeamFixture(t)
	event := f.addEvent(t, 2, 4, false)
	leader := f.addUser(t, "leader@example.com")
	mate := f.addUser(t, "mate@example.com")

	team, err := f.svc.Create(leader.ID, dto.CreateTeamRequest{
		EventID:      event.ID,
		Name:         "Bit Benders",
		MemberEmails: []string{"mate@example.com"},
	})
	require.NoError(t, err)

	updated, err := f.svc.Accept(team.ID, mate.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TeamStatusConfirmed, updated.Status)

	// leader is told about the answer
	inbox, err := f.notifs.ListByUser(leader.ID)
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	assert.Equal(t, domain.NotificationTypeInviteAnswer, inbox[0].Type)
}

func TestDeclinedMemberDropsOutOfRequiredSet(t *testing.T) {
	f := newTeamFixture(t)
	event := f.addEvent(t, 2, 4, false)
	leader := f.addUser(t, "leader@example.com")
	a := f.addUser(t, "a@example.com")
	b := f.addUser(t, "b@example.com")

	team, err := f.svc.Create(leader.ID, dto.CreateTeamRequest{
		EventID:      event.ID,
		Name:         "Mixed",
		MemberEmails: []string{"a@example.com", "b@example.com"},
	})
	require.NoError(t, err)

	_, err = f.svc.Decline(team.ID, a.ID)
	require.NoError(t, err)

	updated, err := f.svc.Accept(team.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TeamStatusConfirmed, updated.Status)
}

func TestAnswerInviteOnlyOnce(t *testing.T) {
	f := newTeamFixture(t)
	event := f.addEvent(t, 2, 4, false)
	leader := f.addUser(t, "leader@example.com")
	mate := f.addUser(t, "mate@example.com")

	team, err := f.svc.Create(leader.ID, dto.CreateTeamRequest{
		EventID:      event.ID,
		Name:         "Once",
		MemberEmails: []string{"mate@example.com"},
	})
	require.NoError(t, err)

	_, err = f.svc.Accept(team.ID, mate.ID)
	require.NoError(t, err)

	_, err = f.svc.Decline(team.ID, mate.ID)
	assert.ErrorIs(t, err, ErrInviteAlreadyAnswered)

	// the leader's own row is never answerable either
	_, err = f.svc.Accept(team.ID, leader.ID)
	assert.ErrorIs(t, err, ErrInviteAlreadyAnswered)
}

func TestAnswerInviteNotInvited(t *testing.T) {
	f := newTeamFixture(t)
	event := f.addEvent(t, 1, 4, true)
	leader := f.addUser(t, "leader@example.com")
	stranger := f.addUser(t, "stranger@example.com")

	team, err := f.svc.Create(leader.ID, dto.CreateTeamRequest{EventID: event.ID, Name: "Closed"})
	require.NoError(t, err)

	_, err = f.svc.Accept(team.ID, stranger.ID)
	assert.ErrorIs(t, err, ErrNotInvited)
}

func TestDisqualificationIsSticky(t *testing.T) {
	f := newTeamFixture(t)
	event := f.addEvent(t, 2, 4, false)
	leader := f.addUser(t, "leader@example.com")
	mate := f.addUser(t, "mate@example.com")

	team, err := f.svc.Create(leader.ID, dto.CreateTeamRequest{
		EventID:      event.ID,
		Name:         "Banned",
		MemberEmails: []string{"mate@example.com"},
	})
	require.NoError(t, err)

	require.NoError(t, f.teams.UpdateStatus(team.ID, domain.TeamStatusDisqualified))

	updated, err := f.svc.Accept(team.ID, mate.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TeamStatusDisqualified, updated.Status)
}

func TestMyTeamsAndGet(t *testing.T) {
	f := newTeamFixture(t)
	event := f.addEvent(t, 1, 4, true)
	leader := f.addUser(t, "leader@example.com")

	created, err := f.svc.Create(leader.ID, dto.CreateTeamRequest{EventID: event.ID, Name: "Mine"})
	require.NoError(t, err)

	mine, err := f.svc.MyTeams(leader.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, created.ID, mine[0].ID)

	got, err := f.svc.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mine", got.Name)

	_, err = f.svc.Get(999)
	assert.ErrorIs(t, err, ErrTeamNotFound)
}
