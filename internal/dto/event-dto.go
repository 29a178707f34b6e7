package dto

type CreateEventRequest struct {
	Name             string `json:"name"`
	Description      string `json:"description"`
	MinTeamSize      int    `json:"minTeamSize"`
	MaxTeamSize      int    `json:"maxTeamSize"`
	AllowIndividual  bool   `json:"allowIndividual"`
	TeamsToShortlist int    `json:"teamsToShortlist"`
}
