package dto

// ScoreRequest carries the five rubric components and their weights.
// Weights are percentages and must sum to exactly 100.
type ScoreRequest struct {
	TeamID uint `json:"teamId"`

	Innovation   int `json:"innovation"`
	Technical    int `json:"technical"`
	Presentation int `json:"presentation"`
	Feasibility  int `json:"feasibility"`
	Impact       int `json:"impact"`

	InnovationWeight   int `json:"innovationWeight"`
	TechnicalWeight    int `json:"technicalWeight"`
	PresentationWeight int `json:"presentationWeight"`
	FeasibilityWeight  int `json:"feasibilityWeight"`
	ImpactWeight       int `json:"impactWeight"`
}

func (r *ScoreRequest) Components() []int {
	return []int{r.Innovation, r.Technical, r.Presentation, r.Feasibility, r.Impact}
}

func (r *ScoreRequest) Weights() []int {
	return []int{r.InnovationWeight, r.TechnicalWeight, r.PresentationWeight, r.FeasibilityWeight, r.ImpactWeight}
}
