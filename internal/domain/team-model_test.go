package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTeamStatus(t *testing.T) {
	cases := []struct {
		name    string
		members []TeamMember
		want    TeamStatus
	}{
		{
			name:    "leader only",
			members: []TeamMember{{Status: MemberStatusLeader}},
			want:    TeamStatusConfirmed,
		},
		{
			name: "one pending keeps the team pending",
			members: []TeamMember{
				{Status: MemberStatusLeader},
				{Status: MemberStatusAccepted},
				{Status: MemberStatusPending},
			},
			want: TeamStatusPending,
		},
		{
			name: "all answered",
			members: []TeamMember{
				{Status: MemberStatusLeader},
				{Status: MemberStatusAccepted},
			},
			want: TeamStatusConfirmed,
		},
		{
			name: "declined members drop out of the required set",
			members: []TeamMember{
				{Status: MemberStatusLeader},
				{Status: MemberStatusDeclined},
				{Status: MemberStatusAccepted},
			},
			want: TeamStatusConfirmed,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ComputeTeamStatus(tc.members))
			// derivation is pure: asking twice gives the same answer
			assert.Equal(t, tc.want, ComputeTeamStatus(tc.members))
		})
	}
}
