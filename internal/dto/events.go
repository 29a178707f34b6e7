package dto

// OTPIssuedEvent is the payload published on the mail topic whenever a
// verification code is (re)issued. The mailer binary consumes it.
type OTPIssuedEvent struct {
	Email     string `json:"email"`
	Code      string `json:"code"`
	ExpiresAt string `json:"expires_at"`
}
