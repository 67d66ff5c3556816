package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/damian-kos/portfolio/internal/config"
	"github.com/google/uuid"
	"go.uber.org/zap"
	mail "gopkg.in/mail.v2"
)

var ErrMailNotConfigured = errors.New("mail transport is not configured")

// TransportError wraps an SMTP failure so handlers can show a failure
// state instead of propagating the fault.
type TransportError struct {
	Reference string
	Err       error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("mail relay %s failed: %v", e.Reference, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ContactMessage is what the contact form hands to the relay.
type ContactMessage struct {
	Name    string
	Email   string
	Message string
}

// MessageSender sends a composed message. Satisfied by *mail.Dialer;
// tests substitute a stub.
type MessageSender interface {
	DialAndSend(m ...*mail.Message) error
}

// MailService relays contact messages to the configured recipient. The
// SMTP exchange runs with an explicit dial timeout and a single retry so
// a slow or flaky transport cannot hang the request indefinitely.
type MailService struct {
	cfg    config.MailConfig
	sender MessageSender
	logger *zap.Logger
}

const (
	mailDialTimeout = 10 * time.Second
	mailAttempts    = 2
)

// NewMailService builds a relay backed by a real SMTP dialer.
func NewMailService(cfg config.MailConfig, logger *zap.Logger) *MailService {
	var sender MessageSender
	if cfg.Host != "" && cfg.SenderEmail != "" {
		dialer := mail.NewDialer(cfg.Host, cfg.Port, cfg.SenderEmail, cfg.SenderPassword)
		dialer.Timeout = mailDialTimeout
		sender = dialer
	}
	return &MailService{cfg: cfg, sender: sender, logger: logger}
}

// NewMailServiceWithSender wires an explicit sender, used by tests.
func NewMailServiceWithSender(cfg config.MailConfig, sender MessageSender, logger *zap.Logger) *MailService {
	return &MailService{cfg: cfg, sender: sender, logger: logger}
}

// Relay delivers one contact message and returns its reference id. Any
// transport failure comes back as a *TransportError.
func (s *MailService) Relay(msg ContactMessage) (string, error) {
	reference := uuid.NewString()

	if s.sender == nil || s.cfg.ReceiverEmail == "" {
		s.logger.Warn("contact relay skipped, transport not configured",
			zap.String("reference", reference))
		return reference, &TransportError{Reference: reference, Err: ErrMailNotConfigured}
	}

	m := mail.NewMessage()
	m.SetHeader("From", s.cfg.SenderEmail)
	m.SetHeader("To", s.cfg.ReceiverEmail)
	m.SetHeader("Subject", fmt.Sprintf("New Message [%s]", reference))
	m.SetBody("text/plain", fmt.Sprintf("Name: %s\nEmail: %s\nMessage: %s",
		msg.Name, msg.Email, msg.Message))

	var lastErr error
	for attempt := 1; attempt <= mailAttempts; attempt++ {
		if lastErr = s.sender.DialAndSend(m); lastErr == nil {
			s.logger.Info("contact message relayed",
				zap.String("reference", reference),
				zap.Int("attempt", attempt))
			return reference, nil
		}

		s.logger.Warn("contact relay attempt failed",
			zap.String("reference", reference),
			zap.Int("attempt", attempt),
			zap.Error(lastErr))
	}

	return reference, &TransportError{Reference: reference, Err: lastErr}
}
