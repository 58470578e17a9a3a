package services

import (
	"fmt"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/services/api-service/internal/config"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-utils"
)

// EmailService delivers transactional mail.
type EmailService interface {
	// Enabled is false when no SendGrid key is configured.
	Enabled() bool
	SendPasswordReset(toName, toEmail, token string, validFor time.Duration) error
}

type sendgridEmailService struct {
	cfg    *config.Config
	client *sendgrid.Client
}

func NewEmailService(cfg *config.Config) EmailService {
	var client *sendgrid.Client
	if cfg.SendGridAPIKey != "" {
		client = sendgrid.NewSendClient(cfg.SendGridAPIKey)
	}
	return &sendgridEmailService{cfg: cfg, client: client}
}

func (s *sendgridEmailService) Enabled() bool {
	return s.client != nil
}

func (s *sendgridEmailService) SendPasswordReset(toName, toEmail, token string, validFor time.Duration) error {
	if s.client == nil {
		return fmt.Errorf("%w: sendgrid is not configured", utils.ErrExternalServiceFailure)
	}

	from := mail.NewEmail(s.cfg.OrganizationName, s.cfg.LDFlag_SendgridFromEmail)
	to := mail.NewEmail(toName, toEmail)
	subject := fmt.Sprintf("%s password reset", s.cfg.OrganizationName)
	minutes := int(validFor.Minutes())
	plainTextContent := fmt.Sprintf(
		"Your password reset token is: %s\nIt expires in %d minutes. If you did not request a reset, ignore this email.",
		token, minutes,
	)
	htmlContent := fmt.Sprintf(passwordResetEmailHTML,
		"Reset your password",
		fmt.Sprintf("Use this token on the reset page. It expires in %d minutes.", minutes),
		token,
		time.Now().Year(),
		s.cfg.OrganizationName,
	)

	message := mail.NewSingleEmail(from, subject, to, plainTextContent, htmlContent)
	if s.cfg.LDFlag_SendgridSandboxMode {
		ms := mail.NewMailSettings()
		ms.SetSandboxMode(mail.NewSetting(true))
		message.MailSettings = ms
	}

	resp, err := s.client.Send(message)
	if err != nil {
		return fmt.Errorf("%w: failed to send email via sendgrid: %v", utils.ErrExternalServiceFailure, err)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("%w: sendgrid returned status %d", utils.ErrExternalServiceFailure, resp.StatusCode)
	}
	return nil
}
