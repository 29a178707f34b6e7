package dto

type RegisterBasicRequest struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	DOB           string `json:"dob"`
	Phone         string `json:"phone"`
	AadhaarNumber string `json:"aadhaarNumber"`
	Email         string `json:"email"`
	Password      string `json:"password"`
}

type RegisterBasicResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

type VerifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

type ResendOTPRequest struct {
	Email string `json:"email"`
}

type RegisterCompleteRequest struct {
	CollegeIDBase64 string `json:"collegeIdBase64"`
	SelfieBase64    string `json:"selfieBase64"`
}

type RegisterCompleteResponse struct {
	CollegeIDURL string `json:"collegeIdUrl"`
	SelfieURL    string `json:"selfieUrl"`
}

type UserLogin struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	UserID int     `json:"user_id"`
	Email  string  `json:"email"`
	Role   string  `json:"role"`
	Expiry float64 `json:"exp"`
	Iat    float64 `json:"iat"`
}
