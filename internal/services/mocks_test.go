package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/HackVerse/hackathon-service/internal/domain"
)

// In-memory repository fakes. They mirror the gorm-backed implementations
// closely enough for service-level tests, including returning
// gorm.ErrRecordNotFound where the real ones do.

type memUserRepo struct {
	nextID uint
	users  map[uint]*domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{nextID: 1, users: map[uint]*domain.User{}}
}

func (r *memUserRepo) CreateUser(user *domain.User) (*domain.User, error) {
	user.ID = r.nextID
	r.nextID++
	cp := *user
	r.users[user.ID] = &cp
	return user, nil
}

func (r *memUserRepo) SaveUser(user *domain.User) error {
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *memUserRepo) FindUserByEmail(email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memUserRepo) FindUserById(userID uint) (*domain.User, error) {
	u, ok := r.users[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

type memOTPRepo struct {
	nextID     uint
	challenges []*domain.OTPChallenge
}

func newMemOTPRepo() *memOTPRepo {
	return &memOTPRepo{nextID: 1}
}

func (r *memOTPRepo) Issue(ch *domain.OTPChallenge) error {
	now := time.Now()
	for _, prior := range r.challenges {
		if prior.Email == ch.Email && prior.UsedAt == nil {
			t := now
			prior.UsedAt = &t
		}
	}
	ch.ID = r.nextID
	r.nextID++
	cp := *ch
	r.challenges = append(r.challenges, &cp)
	return nil
}

func (r *memOTPRepo) FindActiveByEmail(email string) (*domain.OTPChallenge, error) {
	for i := len(r.challenges) - 1; i >= 0; i-- {
		ch := r.challenges[i]
		if ch.Email == email && ch.UsedAt == nil {
			cp := *ch
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memOTPRepo) MarkUsed(id uint) error {
	for _, ch := range r.challenges {
		if ch.ID == id {
			now := time.Now()
			ch.UsedAt = &now
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *memOTPRepo) activeCount(email string) int {
	n := 0
	for _, ch := range r.challenges {
		if ch.Email == email && ch.UsedAt == nil {
			n++
		}
	}
	return n
}

type memEventRepo struct {
	nextID uint
	events map[uint]*domain.Event
}

func newMemEventRepo() *memEventRepo {
	return &memEventRepo{nextID: 1, events: map[uint]*domain.Event{}}
}

func (r *memEventRepo) Create(event *domain.Event) error {
	event.ID = r.nextID
	r.nextID++
	cp := *event
	r.events[event.ID] = &cp
	return nil
}

func (r *memEventRepo) FindByID(eventID uint) (*domain.Event, error) {
	e, ok := r.events[eventID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *memEventRepo) List() ([]domain.Event, error) {
	out := make([]domain.Event, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type memTeamRepo struct {
	nextTeamID   uint
	nextMemberID uint
	teams        map[uint]*domain.Team
	members      map[uint][]*domain.TeamMember
}

func newMemTeamRepo() *memTeamRepo {
	return &memTeamRepo{
		nextTeamID:   1,
		nextMemberID: 1,
		teams:        map[uint]*domain.Team{},
		members:      map[uint][]*domain.TeamMember{},
	}
}

func (r *memTeamRepo) CreateWithMembers(team *domain.Team, members []domain.TeamMember) error {
	team.ID = r.nextTeamID
	r.nextTeamID++
	cp := *team
	r.teams[team.ID] = &cp
	for i := range members {
		members[i].ID = r.nextMemberID
		members[i].TeamID = team.ID
		r.nextMemberID++
		mcp := members[i]
		r.members[team.ID] = append(r.members[team.ID], &mcp)
	}
	return nil
}

func (r *memTeamRepo) FindByID(teamID uint) (*domain.Team, error) {
	t, ok := r.teams[teamID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *t
	cp.Members = nil
	for _, m := range r.members[teamID] {
		cp.Members = append(cp.Members, *m)
	}
	return &cp, nil
}

func (r *memTeamRepo) FindMember(teamID, userID uint) (*domain.TeamMember, error) {
	for _, m := range r.members[teamID] {
		if m.UserID == userID {
			cp := *m
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memTeamRepo) SaveMember(member *domain.TeamMember) error {
	for _, m := range r.members[member.TeamID] {
		if m.ID == member.ID {
			*m = *member
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *memTeamRepo) UpdateStatus(teamID uint, status domain.TeamStatus) error {
	t, ok := r.teams[teamID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	t.Status = status
	return nil
}

func (r *memTeamRepo) ListByUser(userID uint) ([]domain.Team, error) {
	var out []domain.Team
	for teamID, ms := range r.members {
		for _, m := range ms {
			if m.UserID == userID {
				t, err := r.FindByID(teamID)
				if err == nil {
					out = append(out, *t)
				}
				break
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memTeamRepo) ListByEvent(eventID uint) ([]domain.Team, error) {
	var out []domain.Team
	for _, t := range r.teams {
		if t.EventID == eventID {
			full, err := r.FindByID(t.ID)
			if err == nil {
				out = append(out, *full)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type memSubmissionRepo struct {
	nextID uint
	subs   []*domain.Submission
}

func newMemSubmissionRepo() *memSubmissionRepo {
	return &memSubmissionRepo{nextID: 1}
}

func (r *memSubmissionRepo) Upsert(sub *domain.Submission) error {
	for _, existing := range r.subs {
		if existing.TeamID == sub.TeamID && existing.Kind == sub.Kind {
			sub.ID = existing.ID
			*existing = *sub
			return nil
		}
	}
	sub.ID = r.nextID
	r.nextID++
	cp := *sub
	r.subs = append(r.subs, &cp)
	return nil
}

func (r *memSubmissionRepo) FindByTeamAndKind(teamID uint, kind domain.SubmissionKind) (*domain.Submission, error) {
	for _, s := range r.subs {
		if s.TeamID == teamID && s.Kind == kind {
			cp := *s
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memSubmissionRepo) ListByTeam(teamID uint) ([]domain.Submission, error) {
	var out []domain.Submission
	for _, s := range r.subs {
		if s.TeamID == teamID {
			out = append(out, *s)
		}
	}
	return out, nil
}

type memScoreRepo struct {
	nextID uint
	scores []*domain.Score
	// teamEvent lets ListForEvent join without a teams table
	teamEvent map[uint]uint
}

func newMemScoreRepo() *memScoreRepo {
	return &memScoreRepo{nextID: 1, teamEvent: map[uint]uint{}}
}

func (r *memScoreRepo) Upsert(score *domain.Score) error {
	for _, existing := range r.scores {
		if existing.TeamID == score.TeamID && existing.JudgeID == score.JudgeID && existing.Stage == score.Stage {
			score.ID = existing.ID
			*existing = *score
			return nil
		}
	}
	score.ID = r.nextID
	r.nextID++
	cp := *score
	r.scores = append(r.scores, &cp)
	return nil
}

func (r *memScoreRepo) ListForEvent(eventID uint, stage domain.ScoreStage) ([]domain.Score, error) {
	var out []domain.Score
	for _, s := range r.scores {
		if r.teamEvent[s.TeamID] == eventID && s.Stage == stage {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *memScoreRepo) ListByTeam(teamID uint) ([]domain.Score, error) {
	var out []domain.Score
	for _, s := range r.scores {
		if s.TeamID == teamID {
			out = append(out, *s)
		}
	}
	return out, nil
}

type memShortlistRepo struct {
	nextID  uint
	entries []*domain.ShortlistEntry
}

func newMemShortlistRepo() *memShortlistRepo {
	return &memShortlistRepo{nextID: 1}
}

func (r *memShortlistRepo) Replace(eventID uint, entries []domain.ShortlistEntry) error {
	kept := r.entries[:0]
	for _, e := range r.entries {
		if e.EventID != eventID {
			kept = append(kept, e)
		}
	}
	r.entries = kept
	for i := range entries {
		entries[i].ID = r.nextID
		r.nextID++
		cp := entries[i]
		r.entries = append(r.entries, &cp)
	}
	return nil
}

func (r *memShortlistRepo) ListByEvent(eventID uint) ([]domain.ShortlistEntry, error) {
	var out []domain.ShortlistEntry
	for _, e := range r.entries {
		if e.EventID == eventID {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Rank < out[j].Rank })
	return out, nil
}

func (r *memShortlistRepo) IsShortlisted(eventID, teamID uint) (bool, error) {
	for _, e := range r.entries {
		if e.EventID == eventID && e.TeamID == teamID {
			return true, nil
		}
	}
	return false, nil
}

type memEntitlementRepo struct {
	nextID       uint
	entitlements []*domain.Entitlement
}

func newMemEntitlementRepo() *memEntitlementRepo {
	return &memEntitlementRepo{nextID: 1}
}

func (r *memEntitlementRepo) Create(e *domain.Entitlement) error {
	e.ID = r.nextID
	r.nextID++
	cp := *e
	r.entitlements = append(r.entitlements, &cp)
	return nil
}

func (r *memEntitlementRepo) FindByToken(token string) (*domain.Entitlement, error) {
	for _, e := range r.entitlements {
		if e.QRToken == token {
			cp := *e
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memEntitlementRepo) FindByEventUserKind(eventID, userID uint, kind domain.EntitlementKind) (*domain.Entitlement, error) {
	for _, e := range r.entitlements {
		if e.EventID == eventID && e.UserID == userID && e.Kind == kind {
			cp := *e
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memEntitlementRepo) Save(e *domain.Entitlement) error {
	for _, existing := range r.entitlements {
		if existing.ID == e.ID {
			*existing = *e
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *memEntitlementRepo) ListByUser(userID uint) ([]domain.Entitlement, error) {
	var out []domain.Entitlement
	for _, e := range r.entitlements {
		if e.UserID == userID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *memEntitlementRepo) ExistsForEvent(eventID uint) (bool, error) {
	for _, e := range r.entitlements {
		if e.EventID == eventID {
			return true, nil
		}
	}
	return false, nil
}

type memNotificationRepo struct {
	nextID        uint
	notifications []*domain.Notification
}

func newMemNotificationRepo() *memNotificationRepo {
	return &memNotificationRepo{nextID: 1}
}

func (r *memNotificationRepo) Create(n *domain.Notification) error {
	n.ID = r.nextID
	r.nextID++
	cp := *n
	r.notifications = append(r.notifications, &cp)
	return nil
}

func (r *memNotificationRepo) ListByUser(userID uint) ([]domain.Notification, error) {
	var out []domain.Notification
	for _, n := range r.notifications {
		if n.UserID == userID {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (r *memNotificationRepo) MarkRead(id, userID uint) (int64, error) {
	// like the UPDATE it stands in for, an already-read row still counts
	for _, n := range r.notifications {
		if n.ID == id && n.UserID == userID {
			n.Read = true
			return 1, nil
		}
	}
	return 0, nil
}

func (r *memNotificationRepo) MarkAllRead(userID uint) error {
	for _, n := range r.notifications {
		if n.UserID == userID {
			n.Read = true
		}
	}
	return nil
}

// fakeUploader records uploads and hands back deterministic URLs.
type fakeUploader struct {
	uploads int
}

func (u *fakeUploader) UploadBytes(ctx context.Context, folder, name string, data []byte) (string, error) {
	u.uploads++
	return fmt.Sprintf("https://cdn.test/%s/%s.jpg", folder, name), nil
}

func (u *fakeUploader) UploadRaw(ctx context.Context, folder, name string, data []byte) (string, error) {
	u.uploads++
	return fmt.Sprintf("https://cdn.test/%s/%s", folder, name), nil
}

// fakeProducer captures published events so tests can inspect payloads.
type fakeProducer struct {
	keys     []string
	payloads [][]byte
}

func (p *fakeProducer) PublishMessage(key, value []byte) error {
	p.keys = append(p.keys, string(key))
	p.payloads = append(p.payloads, value)
	return nil
}
