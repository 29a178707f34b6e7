package mailer

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"log"
	"net"
	"net/smtp"
	"strings"
	"time"
)

const otpTemplate = `<!DOCTYPE html>
<html>
  <body style="font-family: Arial, sans-serif; background: #f4f4f7; padding: 24px;">
    <div style="max-width: 480px; margin: 0 auto; background: #ffffff; border-radius: 8px; padding: 32px;">
      <h2 style="margin-top: 0;">Your verification code</h2>
      <p>Use this code to verify your email address. It expires at {{.ExpiresAt}}.</p>
      <p style="font-size: 32px; letter-spacing: 8px; font-weight: bold; text-align: center; margin: 24px 0;">{{.Code}}</p>
      <p style="color: #6b6e76; font-size: 12px;">If you did not request this code, you can ignore this email.</p>
    </div>
  </body>
</html>`

type MailService struct {
	smtpHost     string
	smtpPort     string
	smtpUser     string
	smtpPassword string
	mailFrom     string
	mailFromName string

	otpTmpl *template.Template
}

func NewMailService(
	smtpHost string,
	smtpPort string,
	smtpUser string,
	smtpPassword string,
	mailFrom string,
	mailFromName string,
) *MailService {
	return &MailService{
		smtpHost:     smtpHost,
		smtpPort:     smtpPort,
		smtpUser:     smtpUser,
		smtpPassword: smtpPassword,
		mailFrom:     mailFrom,
		mailFromName: mailFromName,
		otpTmpl:      template.Must(template.New("otp").Parse(otpTemplate)),
	}
}

func (s *MailService) SendOTPEmail(to, code, expiresAt string) error {
	var buf bytes.Buffer
	if err := s.otpTmpl.Execute(&buf, map[string]string{
		"Code":      code,
		"ExpiresAt": expiresAt,
	}); err != nil {
		return err
	}

	fromHeader := fmt.Sprintf("%s <%s>", s.mailFromName, s.mailFrom)

	msg := strings.Join([]string{
		fmt.Sprintf("From: %s", fromHeader),
		fmt.Sprintf("To: %s", to),
		"Subject: Your verification code",
		"MIME-Version: 1.0",
		`Content-Type: text/html; charset="UTF-8"`,
		"",
		buf.String(),
	}, "\r\n")

	log.Printf("[MAIL] smtp sending to=%s via=%s:%s", to, s.smtpHost, s.smtpPort)

	if err := s.sendSMTPWithTimeout(to, []byte(msg)); err != nil {
		return err
	}

	log.Printf("[MAIL] sent to=%s", to)
	return nil
}

func (s *MailService) sendSMTPWithTimeout(to string, msg []byte) error {
	addr := net.JoinHostPort(s.smtpHost, s.smtpPort)

	conn, err := net.DialTimeout("tcp", addr, 8*time.Second)
	if err != nil {
		return err
	}
	// deadline covers the whole SMTP conversation
	_ = conn.SetDeadline(time.Now().Add(15 * time.Second))

	c, err := smtp.NewClient(conn, s.smtpHost)
	if err != nil {
		return err
	}
	defer func() { _ = c.Quit() }()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: s.smtpHost}); err != nil {
			return err
		}
	}

	auth := smtp.PlainAuth("", s.smtpUser, s.smtpPassword, s.smtpHost)
	if err := c.Auth(auth); err != nil {
		return err
	}

	if err := c.Mail(s.mailFrom); err != nil {
		return err
	}
	if err := c.Rcpt(to); err != nil {
		return err
	}

	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}
