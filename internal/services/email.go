package services

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/tasknest/tasknest/internal/config"
	"github.com/tasknest/tasknest/pkg/logger"
)

// EmailService delivers one-time codes over SMTP. It implements Notifier.
// With SMTP disabled (local development) sends are logged and succeed, so
// the auth flows stay testable without a mail server.
type EmailService struct {
	cfg *config.SMTPConfig
}

func NewEmailService(cfg *config.SMTPConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

var _ Notifier = (*EmailService)(nil)

func (s *EmailService) SendVerificationEmail(ctx context.Context, to, name, code string) error {
	subject := "[TaskNest] Verify your email address"
	body := s.buildCodeEmail(name, code,
		"Welcome to TaskNest! Use the code below to verify your email address.",
		"The code expires in 24 hours.")
	return s.send(ctx, to, subject, body)
}

func (s *EmailService) SendPasswordResetEmail(ctx context.Context, to, name, code string) error {
	subject := "[TaskNest] Password reset code"
	body := s.buildCodeEmail(name, code,
		"A password reset was requested for your account. Use the code below to choose a new password.",
		"The code expires in 1 hour. If you did not request this, you can ignore this email.")
	return s.send(ctx, to, subject, body)
}

func (s *EmailService) buildCodeEmail(name, code, intro, outro string) string {
	var sb strings.Builder

	sb.WriteString("<html><body style=\"font-family: Arial, sans-serif;\">")
	sb.WriteString(fmt.Sprintf("<h2>Hi %s,</h2>", name))
	sb.WriteString(fmt.Sprintf("<p>%s</p>", intro))
	sb.WriteString(fmt.Sprintf("<div style=\"background: #f5f5f5; padding: 16px; border-radius: 4px; font-size: 28px; letter-spacing: 6px; text-align: center;\"><b>%s</b></div>", code))
	sb.WriteString(fmt.Sprintf("<p style=\"color: #666;\">%s</p>", outro))
	sb.WriteString("<hr><p style=\"color: #888; font-size: 12px;\">TaskNest</p>")
	sb.WriteString("</body></html>")

	return sb.String()
}

func (s *EmailService) send(ctx context.Context, to, subject, body string) error {
	if !s.cfg.Enabled || s.cfg.Host == "" {
		logger.Debug().Str("to", to).Str("subject", subject).Msg("smtp disabled, skipping send")
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	from := s.cfg.From
	if from == "" {
		from = s.cfg.Username
	}

	headers := map[string]string{
		"From":         from,
		"To":           to,
		"Subject":      subject,
		"MIME-Version": "1.0",
		"Content-Type": "text/html; charset=UTF-8",
	}

	var message strings.Builder
	for k, v := range headers {
		message.WriteString(fmt.Sprintf("%s: %s\r\n", k, v))
	}
	message.WriteString("\r\n")
	message.WriteString(body)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var auth smtp.Auth
	if s.cfg.Username != "" && s.cfg.Password != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	var err error
	if s.cfg.UseTLS {
		err = s.sendTLS(addr, auth, from, to, message.String())
	} else {
		err = smtp.SendMail(addr, auth, from, []string{to}, []byte(message.String()))
	}

	if err != nil {
		logger.Error().Err(err).Str("to", to).Msg("failed to send email")
		return err
	}

	logger.Info().Str("to", to).Str("subject", subject).Msg("email sent")
	return nil
}

func (s *EmailService) sendTLS(addr string, auth smtp.Auth, from, to, message string) error {
	tlsConfig := &tls.Config{
		ServerName: s.cfg.Host,
	}

	conn, err := tls.Dial("tcp", addr, tlsConfig)
	if err != nil {
		return err
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return err
	}
	defer client.Close()

	if auth != nil {
		if err := client.Auth(auth); err != nil {
			return err
		}
	}

	if err := client.Mail(from); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}

	w, err := client.Data()
	if err != nil {
		return err
	}

	if _, err := w.Write([]byte(message)); err != nil {
		return err
	}

	return w.Close()
}
