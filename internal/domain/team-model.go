package domain

import "gorm.io/gorm"

type TeamStatus string

const (
	TeamStatusPending      TeamStatus = "pending"
	TeamStatusConfirmed    TeamStatus = "confirmed"
	TeamStatusDisqualified TeamStatus = "disqualified" // admin override, sticky
)

type MemberStatus string

const (
	MemberStatusLeader   MemberStatus = "leader"
	MemberStatusPending  MemberStatus = "pending"
	MemberStatusAccepted MemberStatus = "accepted"
	MemberStatusDeclined MemberStatus = "declined"
)

type Team struct {
	ID       uint       `gorm:"primaryKey" json:"id"`
	EventID  uint       `gorm:"not null;index" json:"event_id"`
	Name     string     `gorm:"not null" json:"name"`
	LeaderID uint       `gorm:"not null;index" json:"leader_id"`
	Status   TeamStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`

	Members []TeamMember `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;foreignKey:TeamID" json:"members,omitempty"`

	gorm.Model
}

type TeamMember struct {
	ID     uint         `gorm:"primaryKey" json:"id"`
	TeamID uint         `gorm:"not null;uniqueIndex:uidx_team_member" json:"team_id"`
	UserID uint         `gorm:"not null;uniqueIndex:uidx_team_member" json:"user_id"`
	Status MemberStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`

	gorm.Model
}

// ComputeTeamStatus derives a team's status from its membership rows.
// Any pending invite keeps the team pending; declined members drop out of
// the required set. Idempotent: same rows, same answer.
func ComputeTeamStatus(members []TeamMember) TeamStatus {
	for _, m := range members {
		if m.Status == MemberStatusPending {
			return TeamStatusPending
		}
	}
	return TeamStatusConfirmed
}
