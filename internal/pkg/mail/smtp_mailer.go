package mail

import (
	"fmt"
	"net/smtp"

	"github.com/gofiber/fiber/v2/log"

	"github.com/pleromasprings/core-api/internal/pkg/env"
)

// SendMail delivers a plain notification mail via SMTP. Form submission
// notifications are best-effort; callers log and move on when this fails.
func SendMail(to string, subject string, body string) error {
	host := env.GetEnv("SMTP_HOST", "")
	if host == "" {
		return fmt.Errorf("SMTP_HOST not configured")
	}
	port := env.GetEnv("SMTP_PORT", "587")
	username := env.GetEnv("SMTP_USERNAME", "")
	password := env.GetEnv("SMTP_PASSWORD", "")
	sender := env.GetEnv("SMTP_SENDER", "")

	if sender == "" {
		sender = "no-reply@localhost"
		log.Infof("SMTP_SENDER not set, using default sender: %s", sender)
	}

	var auth smtp.Auth
	if username != "" && password != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}

	addr := fmt.Sprintf("%s:%s", host, port)

	msg := []byte(
		fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n", sender, to, subject) +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/plain; charset=UTF-8\r\n\r\n" +
			body,
	)

	if err := smtp.SendMail(addr, auth, sender, []string{to}, msg); err != nil {
		log.Errorf("SMTP send error: %v", err)
		return err
	}
	return nil
}

// NotifyStaff mails the configured notification address, if any.
func NotifyStaff(subject, body string) {
	to := env.GetEnv("NOTIFY_EMAIL", "")
	if to == "" {
		return
	}
	if err := SendMail(to, subject, body); err != nil {
		log.Warnf("staff notification not sent: %v", err)
	}
}
