// Package email sends plain-text reminder emails over SMTP with implicit TLS.
package email

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/wneessen/go-mail"

	"bin-reminder/internal/domain/model"
	"bin-reminder/internal/domain/ports"
)

// ErrNotConfigured is returned when no SMTP credential is set.
var ErrNotConfigured = ports.ErrEmailNotConfigured

// Config holds the SMTP account and recipients.
type Config struct {
	Host     string
	Port     int
	From     string
	To       []string
	Password string
}

// Deliverer sends composed messages; *mail.Client satisfies it.
type Deliverer interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// DialFunc builds a Deliverer for the configured account.
type DialFunc func(cfg Config) (Deliverer, error)

// Sender implements EmailSender over SMTP.
type Sender struct {
	cfg    Config
	dial   DialFunc
	logger ports.Logger
}

var _ ports.EmailSender = (*Sender)(nil)

// NewSender creates an SMTP sender. A nil dial uses a go-mail client.
func NewSender(cfg Config, dial DialFunc, logger ports.Logger) *Sender {
	if dial == nil {
		dial = newClient
	}
	return &Sender{cfg: cfg, dial: dial, logger: logger}
}

// Send delivers one message to every recipient.
func (s *Sender) Send(ctx context.Context, email model.Email) error {
	if s.cfg.Password == "" {
		return ErrNotConfigured
	}
	if len(s.cfg.To) == 0 {
		return errors.New("no recipients configured")
	}

	msg, err := BuildMessage(s.cfg.From, s.cfg.To, email)
	if err != nil {
		return err
	}

	client, err := s.dial(s.cfg)
	if err != nil {
		return fmt.Errorf("create smtp client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send mail via %s:%d: %w", s.cfg.Host, s.cfg.Port, err)
	}

	if s.logger != nil {
		s.logger.Info(ctx, "email sent", "recipients", strings.Join(s.cfg.To, ", "))
	}
	return nil
}

// BuildMessage composes a plain-text message from sender to recipients.
func BuildMessage(from string, to []string, email model.Email) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(from); err != nil {
		return nil, fmt.Errorf("set sender: %w", err)
	}
	if err := msg.To(to...); err != nil {
		return nil, fmt.Errorf("set recipients: %w", err)
	}
	msg.Subject(email.Subject)
	msg.SetBodyString(mail.TypeTextPlain, email.Body)
	return msg, nil
}

func newClient(cfg Config) (Deliverer, error) {
	return mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSSL(),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.From),
		mail.WithPassword(cfg.Password),
	)
}
