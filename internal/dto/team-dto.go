package dto

type CreateTeamRequest struct {
	EventID      uint     `json:"eventId"`
	Name         string   `json:"name"`
	MemberEmails []string `json:"memberEmails"`
}
