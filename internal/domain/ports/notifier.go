package ports

import (
	"context"
	"errors"

	"bin-reminder/internal/domain/model"
)

var (
	// ErrRemindersUnavailable means the host has no reminders facility.
	ErrRemindersUnavailable = errors.New("local reminders unavailable")
	// ErrEmailNotConfigured means no SMTP credential is set.
	ErrEmailNotConfigured = errors.New("smtp password not configured")
)

// ReminderCreator creates an item in the host's personal reminders store.
type ReminderCreator interface {
	CreateReminder(ctx context.Context, title, body string) error
}

// EmailSender delivers a plain-text email to the configured recipients.
type EmailSender interface {
	Send(ctx context.Context, email model.Email) error
}
