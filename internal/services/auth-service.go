package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/HackVerse/hackathon-service/internal/domain"
	"github.com/HackVerse/hackathon-service/internal/dto"
	"github.com/HackVerse/hackathon-service/internal/helper"
	"github.com/HackVerse/hackathon-service/internal/helper/utils"
	"github.com/HackVerse/hackathon-service/internal/interfaces"
	"github.com/HackVerse/hackathon-service/internal/repository"
	pkgutils "github.com/HackVerse/hackathon-service/pkg/utils"
)

const (
	otpDigits     = 6
	imageMaxWidth = 1280
	jpegQuality   = 85
)

type AuthService interface {
	RegisterBasic(input dto.RegisterBasicRequest) (*dto.RegisterBasicResponse, error)
	VerifyOTP(email, code string) error
	ResendOTP(email string) error
	RegisterComplete(ctx context.Context, userID uint, input dto.RegisterCompleteRequest) (*dto.RegisterCompleteResponse, error)
	Login(input dto.UserLogin) (string, *domain.User, error)
	Me(userID uint) (*domain.User, error)
}

type authService struct {
	repo     repository.UserRepository
	otpRepo  repository.OTPRepository
	auth     helper.Auth
	uploader interfaces.Uploader
	producer interfaces.ProducerHandler
}

func NewAuthService(
	repo repository.UserRepository,
	otpRepo repository.OTPRepository,
	auth helper.Auth,
	uploader interfaces.Uploader,
	producer interfaces.ProducerHandler,
) AuthService {
	return &authService{
		repo:     repo,
		otpRepo:  otpRepo,
		auth:     auth,
		uploader: uploader,
		producer: producer,
	}
}

// RegisterBasic is the first transition of the verification pipeline.
// A fully verified email is a conflict; an unverified prior attempt is
// overwritten in place rather than deleted and recreated, so a retried
// registration is idempotent.
func (s *authService) RegisterBasic(input dto.RegisterBasicRequest) (*dto.RegisterBasicResponse, error) {
	email := utils.NormalizeEmail(input.Email)
	firstName := strings.TrimSpace(input.FirstName)
	lastName := strings.TrimSpace(input.LastName)
	phone := strings.TrimSpace(input.Phone)
	aadhaar := strings.TrimSpace(input.AadhaarNumber)

	if email == "" || strings.TrimSpace(input.Password) == "" ||
		firstName == "" || lastName == "" || phone == "" ||
		input.DOB == "" || aadhaar == "" {
		return nil, invalid("all registration fields are required")
	}
	if _, err := utils.ExtractEmailDomain(email); err != nil {
		return nil, err
	}
	if len(input.Password) < 6 {
		return nil, invalid("password must be at least 6 characters")
	}
	if len(aadhaar) != 12 {
		return nil, invalid("aadhaar number must be 12 digits")
	}

	hashed, err := s.auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.FindUserByEmail(email)
	switch {
	case err == nil:
		if user.OTPVerified {
			return nil, ErrEmailAlreadyVerified
		}
		// retried unverified registration: overwrite the earlier attempt
		user.PasswordHash = hashed
		user.FirstName = firstName
		user.LastName = lastName
		user.DOB = input.DOB
		user.Phone = phone
		user.AadhaarNumber = aadhaar
		if err := s.repo.SaveUser(user); err != nil {
			return nil, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = &domain.User{
			Email:         email,
			PasswordHash:  hashed,
			FirstName:     firstName,
			LastName:      lastName,
			DOB:           input.DOB,
			Phone:         phone,
			AadhaarNumber: aadhaar,
			Role:          domain.RoleStudent,
		}
		if _, err := s.repo.CreateUser(user); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	if err := s.issueOTP(email); err != nil {
		return nil, err
	}

	token, err := s.auth.GenerateToken(int(user.ID), user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &dto.RegisterBasicResponse{Token: token, Email: user.Email}, nil
}

func (s *authService) issueOTP(email string) error {
	code, err := utils.RandomOTP(otpDigits)
	if err != nil {
		return errors.New("failed to generate verification code")
	}

	expiresAt := time.Now().Add(domain.OTPTTL)
	ch := &domain.OTPChallenge{
		Email:     email,
		CodeHash:  utils.Sha256Hex(code),
		ExpiresAt: expiresAt,
	}
	if err := s.otpRepo.Issue(ch); err != nil {
		return err
	}

	if s.producer != nil {
		payload, _ := json.Marshal(dto.OTPIssuedEvent{
			Email:     email,
			Code:      code,
			ExpiresAt: expiresAt.Format(time.RFC3339),
		})
		if err := s.producer.PublishMessage([]byte("otp.issued"), payload); err != nil {
			log.Printf("publish otp.issued failed: %v", err)
		}
	}

	return nil
}

func (s *authService) VerifyOTP(email, code string) error {
	email = utils.NormalizeEmail(email)
	code = strings.TrimSpace(code)
	if email == "" || code == "" {
		return invalid("email and otp are required")
	}

	ch, err := s.otpRepo.FindActiveByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrOTPNotFound
	}
	if err != nil {
		return err
	}

	// expiry wins over correctness: an expired code never verifies
	if ch.Expired(time.Now()) {
		return ErrOTPExpired
	}
	if utils.Sha256Hex(code) != ch.CodeHash {
		return ErrOTPIncorrect
	}

	user, err := s.repo.FindUserByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return err
	}

	user.OTPVerified = true
	if err := s.repo.SaveUser(user); err != nil {
		return err
	}

	// consume last: a failed save leaves the code live so the user can retry
	return s.otpRepo.MarkUsed(ch.ID)
}

func (s *authService) ResendOTP(email string) error {
	email = utils.NormalizeEmail(email)
	if email == "" {
		return invalid("email is required")
	}

	user, err := s.repo.FindUserByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return err
	}
	if user.OTPVerified {
		return ErrEmailAlreadyVerified
	}

	return s.issueOTP(email)
}

// RegisterComplete stores the college ID and the live selfie and activates
// the account. Requires a verified OTP first.
func (s *authService) RegisterComplete(ctx context.Context, userID uint, input dto.RegisterCompleteRequest) (*dto.RegisterCompleteResponse, error) {
	user, err := s.repo.FindUserById(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	if !user.OTPVerified {
		return nil, ErrOTPRequired
	}
	if strings.TrimSpace(input.CollegeIDBase64) == "" || strings.TrimSpace(input.SelfieBase64) == "" {
		return nil, ErrMissingDocuments
	}

	collegeIDURL, err := s.uploadImage(ctx, "hackverse/college_ids", input.CollegeIDBase64)
	if err != nil {
		return nil, err
	}
	selfieURL, err := s.uploadImage(ctx, "hackverse/selfies", input.SelfieBase64)
	if err != nil {
		return nil, err
	}

	user.CollegeIDURL = collegeIDURL
	user.SelfieURL = selfieURL
	if err := s.repo.SaveUser(user); err != nil {
		return nil, err
	}

	return &dto.RegisterCompleteResponse{
		CollegeIDURL: collegeIDURL,
		SelfieURL:    selfieURL,
	}, nil
}

func (s *authService) uploadImage(ctx context.Context, folder, b64 string) (string, error) {
	raw, err := pkgutils.DecodeBase64Payload(b64)
	if err != nil {
		return "", err
	}
	normalized, err := pkgutils.NormalizeToJPG(raw, imageMaxWidth, jpegQuality)
	if err != nil {
		return "", err
	}
	return s.uploader.UploadBytes(ctx, folder, uuid.NewString(), normalized)
}

// Login gates students on the full verification pipeline: the handler turns
// ErrOTPRequired / ErrDocsRequired into the typed 403 flags the frontend
// switches on.
func (s *authService) Login(input dto.UserLogin) (string, *domain.User, error) {
	email := utils.NormalizeEmail(input.Email)
	password := strings.TrimSpace(input.Password)
	if email == "" || password == "" {
		return "", nil, ErrInvalidCredentials
	}

	user, err := s.repo.FindUserByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}
	if err := s.auth.VerifyPassword(password, user.PasswordHash); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if user.Role == domain.RoleStudent {
		if !user.OTPVerified {
			return "", nil, ErrOTPRequired
		}
		if !user.DocsVerified() {
			return "", nil, ErrDocsRequired
		}
	}

	token, err := s.auth.GenerateToken(int(user.ID), user.Email, string(user.Role))
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func (s *authService) Me(userID uint) (*domain.User, error) {
	user, err := s.repo.FindUserById(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
