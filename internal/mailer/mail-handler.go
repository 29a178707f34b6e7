package mailer

import (
	"encoding/json"
	"log"

	"github.com/HackVerse/hackathon-service/internal/dto"
)

const otpIssuedKey = "otp.issued"

type MailHandler struct {
	MailService *MailService
}

func NewMailHandler(ms *MailService) *MailHandler {
	return &MailHandler{MailService: ms}
}

func (h *MailHandler) HandleMessage(key, message string) error {
	if key != otpIssuedKey {
		log.Printf("ignoring event key=%s", key)
		return nil
	}

	var event dto.OTPIssuedEvent
	if err := json.Unmarshal([]byte(message), &event); err != nil {
		log.Printf("invalid event payload: %s\n", message)
		return err
	}

	log.Printf("OTP issued event received: email=%s", event.Email)

	err := h.MailService.SendOTPEmail(event.Email, event.Code, event.ExpiresAt)
	if err != nil {
		log.Println("[MAIL] send failed, err =", err)
	}
	return err
}
