package email

import (
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"
	"time"

	"github.com/enkonix/hr-backend-go/internal/config"
)

const maxRetries = 3

// EmailService sends HR notification mails. Delivery is best effort; callers
// must not fail their own operation on a send error.
type EmailService interface {
	SendLeaveDecision(to, employeeName, date, status, hrComment string) error
}

type emailServiceImpl struct {
	cfg config.SMTPConfig
}

func NewEmailService(cfg config.SMTPConfig) EmailService {
	return &emailServiceImpl{cfg: cfg}
}

// SendLeaveDecision notifies an employee that a leave request was decided.
func (s *emailServiceImpl) SendLeaveDecision(to, employeeName, date, status, hrComment string) error {
	subject := fmt.Sprintf("Leave Request %s", capitalize(status))
	body := fmt.Sprintf(
		"Hi %s,\n\nYour leave request for %s has been %s.\nHR comment: %s\n\nRegards,\nHR Team\n",
		employeeName, date, status, hrComment,
	)
	return s.send(to, subject, body)
}

func (s *emailServiceImpl) send(to, subject, body string) error {
	// Skip sending if SMTP is not configured
	if s.cfg.Host == "" {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	headers := fmt.Sprintf("From: %s <%s>\r\n", s.cfg.FromName, s.cfg.From)
	headers += fmt.Sprintf("To: %s\r\n", to)
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += "Content-Type: text/plain; charset=\"UTF-8\"\r\n"
	headers += "\r\n"

	message := []byte(headers + body)

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := smtp.SendMail(addr, auth, s.cfg.From, []string{to}, message)
		if err == nil {
			slog.Info("Email sent", "to", to, "subject", subject, "attempt", attempt)
			return nil
		}
		lastErr = err
		slog.Warn("Email send failed", "to", to, "attempt", attempt, "error", err)
		time.Sleep(time.Duration(attempt) * time.Second)
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
