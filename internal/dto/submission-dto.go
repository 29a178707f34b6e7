package dto

type SubmitRequest struct {
	TeamID     uint   `json:"teamId"`
	FileBase64 string `json:"fileBase64"`
}
