package services

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the services. Handlers map these onto HTTP
// statuses; everything else is a 500.
var (
	ErrEmailAlreadyVerified = errors.New("this email is already registered and verified")
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidCredentials   = errors.New("invalid email or password")

	ErrOTPNotFound  = errors.New("no verification code found for this email")
	ErrOTPExpired   = errors.New("verification code has expired")
	ErrOTPIncorrect = errors.New("incorrect verification code")

	ErrOTPRequired      = errors.New("email is not verified yet")
	ErrDocsRequired     = errors.New("identity documents have not been uploaded")
	ErrMissingDocuments = errors.New("both a college ID image and a live selfie are required")

	ErrEventNotFound         = errors.New("event not found")
	ErrTeamNotFound          = errors.New("team not found")
	ErrNotTeamLeader         = errors.New("only the team leader can do this")
	ErrNotInvited            = errors.New("you are not invited to this team")
	ErrInviteAlreadyAnswered = errors.New("this invite has already been answered")
	ErrTeamNotConfirmed      = errors.New("team is not confirmed yet")
	ErrTeamNotShortlisted    = errors.New("team is not on the shortlist")
	ErrDeadlinePassed        = errors.New("the submission deadline for this stage has passed")

	ErrScoreOutOfRange = errors.New("score components must be between 0 and 100")
	ErrNoShortlist     = errors.New("no shortlist has been confirmed for this event")
	ErrShortlistFrozen = errors.New("shortlist is frozen: QR codes have already been generated")

	ErrTokenUnknown  = errors.New("unknown QR token")
	ErrTokenConsumed = errors.New("this QR token has already been used")

	ErrNotificationNotFound = errors.New("notification not found")
)

// ValidationError marks missing or malformed input; handlers answer 400.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func invalid(msg string) error {
	return &ValidationError{Msg: msg}
}

// WeightSumError carries the offending sum so the client sees exactly what
// was submitted.
type WeightSumError struct {
	Sum int
}

func (e *WeightSumError) Error() string {
	return fmt.Sprintf("Weights must sum to 100. Current sum: %d", e.Sum)
}

// TeamSizeError reports a team-size violation against the event's limits.
type TeamSizeError struct {
	Min, Max, Size int
}

func (e *TeamSizeError) Error() string {
	if e.Size < e.Min {
		return fmt.Sprintf("Team must have at least %d members. Current size: %d", e.Min, e.Size)
	}
	return fmt.Sprintf("Team can have at most %d members. Current size: %d", e.Max, e.Size)
}
