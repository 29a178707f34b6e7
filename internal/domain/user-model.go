package domain

import "gorm.io/gorm"

type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
	RoleJudge   Role = "judge"
)

// ParseRole maps a raw string onto the closed role set. Anything else is
// rejected rather than passed through as a free-form string.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleStudent, RoleAdmin, RoleJudge:
		return Role(s), true
	}
	return "", false
}

func (r Role) Valid() bool {
	_, ok := ParseRole(string(r))
	return ok
}

type User struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	Email         string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash  string `json:"-"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	DOB           string `gorm:"type:varchar(10)" json:"dob"`
	Phone         string `json:"phone"`
	AadhaarNumber string `gorm:"type:varchar(12)" json:"-"`
	Role          Role   `gorm:"type:varchar(20);not null;default:'student'" json:"role"`

	// verification state
	OTPVerified  bool   `gorm:"not null;default:false" json:"otp_verified"`
	CollegeIDURL string `gorm:"type:text" json:"college_id_url,omitempty"`
	SelfieURL    string `gorm:"type:text" json:"selfie_url,omitempty"`

	gorm.Model
}

// DocsVerified is derived, not stored: both images must be on file.
func (u *User) DocsVerified() bool {
	return u.CollegeIDURL != "" && u.SelfieURL != ""
}
