package repository

import (
	"gorm.io/gorm"

	"github.com/HackVerse/hackathon-service/internal/domain"
)

type TeamRepository interface {
	// CreateWithMembers persists the team and every membership row in one
	// transaction: size validation happens before this is called, so either
	// all rows exist afterwards or none do.
	CreateWithMembers(team *domain.Team, members []domain.TeamMember) error

	FindByID(teamID uint) (*domain.Team, error)
	FindMember(teamID, userID uint) (*domain.TeamMember, error)
	SaveMember(member *domain.TeamMember) error
	UpdateStatus(teamID uint, status domain.TeamStatus) error

	ListByUser(userID uint) ([]domain.Team, error)
	ListByEvent(eventID uint) ([]domain.Team, error)
}

type teamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) CreateWithMembers(team *domain.Team, members []domain.TeamMember) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(team).Error; err != nil {
			return err
		}
		for i := range members {
			members[i].TeamID = team.ID
		}
		return tx.Create(&members).Error
	})
}

func (r *teamRepository) FindByID(teamID uint) (*domain.Team, error) {
	team := &domain.Team{}
	err := r.db.Preload("Members").First(team, teamID).Error
	if err != nil {
		return nil, err
	}
	return team, nil
}

func (r *teamRepository) FindMember(teamID, userID uint) (*domain.TeamMember, error) {
	member := &domain.TeamMember{}
	err := r.db.
		Where("team_id = ? AND user_id = ?", teamID, userID).
		First(member).Error
	if err != nil {
		return nil, err
	}
	return member, nil
}

func (r *teamRepository) SaveMember(member *domain.TeamMember) error {
	return r.db.Save(member).Error
}

func (r *teamRepository) UpdateStatus(teamID uint, status domain.TeamStatus) error {
	return r.db.Model(&domain.Team{}).
		Where("id = ?", teamID).
		Update("status", status).Error
}

func (r *teamRepository) ListByUser(userID uint) ([]domain.Team, error) {
	var teams []domain.Team
	err := r.db.
		Preload("Members").
		Joins("JOIN team_members ON team_members.team_id = teams.id").
		Where("team_members.user_id = ? AND team_members.deleted_at IS NULL", userID).
		Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}

func (r *teamRepository) ListByEvent(eventID uint) ([]domain.Team, error) {
	var teams []domain.Team
	err := r.db.
		Preload("Members").
		Where("event_id = ?", eventID).
		Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}
