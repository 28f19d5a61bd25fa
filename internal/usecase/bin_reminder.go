package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"bin-reminder/internal/domain/model"
	"bin-reminder/internal/domain/ports"
	"bin-reminder/internal/domain/schedule"
)

// BinReminder fetches tomorrow's collections and reminds the household.
type BinReminder struct {
	schedules  ports.ScheduleProvider
	reminders  ports.ReminderCreator
	mailer     ports.EmailSender
	logger     ports.Logger
	out        io.Writer
	uprn       string
	upcoming   int
	recipients []string
	dryRun     bool
	now        func() time.Time
}

// BinReminderConfig controls optional behaviours for the run.
type BinReminderConfig struct {
	UPRN          string
	UpcomingCount int
	Recipients    []string
	DryRun        bool
	// Now defaults to time.Now.
	Now func() time.Time
}

// Result summarises one run.
type Result struct {
	Collections     []model.Collection
	Tomorrow        []model.Collection
	Reminder        model.Reminder
	ReminderCreated bool
	EmailSent       bool
	EmailSkipped    bool
}

// NewBinReminder constructs a BinReminder use case.
func NewBinReminder(
	schedules ports.ScheduleProvider,
	reminderCreator ports.ReminderCreator,
	mailer ports.EmailSender,
	logger ports.Logger,
	out io.Writer,
	cfg BinReminderConfig,
) *BinReminder {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	if out == nil {
		out = io.Discard
	}
	return &BinReminder{
		schedules:  schedules,
		reminders:  reminderCreator,
		mailer:     mailer,
		logger:     logger,
		out:        out,
		uprn:       cfg.UPRN,
		upcoming:   cfg.UpcomingCount,
		recipients: cfg.Recipients,
		dryRun:     cfg.DryRun,
		now:        now,
	}
}

// Run executes the reminder workflow. A returned error means the schedule
// could not be fetched or parsed; notification failures are only reported.
func (b *BinReminder) Run(ctx context.Context) (*Result, error) {
	now := b.now()
	b.printf("Bin Reminder - %s\n", now.Format("2006-01-02 15:04"))
	b.printf("%s\n", strings.Repeat("-", 40))

	b.printf("Fetching bin collection data...\n")
	collections, err := b.collections(ctx)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Collections: collections,
		Tomorrow:    schedule.Tomorrow(collections, now),
	}

	if len(result.Tomorrow) == 0 {
		b.logger.Info(ctx, "no collections tomorrow", "collections", len(collections))
		b.printf("No collections tomorrow - nothing to remind about\n")
		b.printf("\nUpcoming collections:\n")
		for _, c := range schedule.Upcoming(collections, b.upcoming) {
			b.printf("  - %s: %s\n", c.Type, FormatDate(c.Date))
		}
		return result, nil
	}

	result.Reminder = BuildReminder(result.Tomorrow)
	b.printf("\n%s\n%s\n\n", result.Reminder.Title, result.Reminder.Body)

	mail := BuildEmail(result.Reminder, result.Tomorrow[0].Date)
	if b.dryRun {
		b.printf("Dry run - not creating reminder or sending email\n")
		b.printf("Would email %q to %s\n", mail.Subject, b.recipientList())
		return result, nil
	}

	result.ReminderCreated = b.createReminder(ctx, result.Reminder)
	result.EmailSent, result.EmailSkipped = b.sendEmail(ctx, mail)

	b.logger.Info(ctx, "bin reminder completed",
		"due", len(result.Tomorrow),
		"reminder_created", result.ReminderCreated,
		"email_sent", result.EmailSent,
	)
	return result, nil
}

// Upcoming returns the next n collections without notifying anyone.
func (b *BinReminder) Upcoming(ctx context.Context, n int) ([]model.Collection, error) {
	collections, err := b.collections(ctx)
	if err != nil {
		return nil, err
	}
	return schedule.Upcoming(collections, n), nil
}

func (b *BinReminder) collections(ctx context.Context) ([]model.Collection, error) {
	raw, err := b.schedules.FetchSchedule(ctx, b.uprn)
	if err != nil {
		b.logger.Error(ctx, "failed to fetch schedule", "error", err)
		b.printf("Error fetching data: %v\n", err)
		return nil, fmt.Errorf("fetch schedule: %w", err)
	}

	collections, err := schedule.Parse(raw)
	if err != nil {
		b.logger.Error(ctx, "failed to parse schedule", "error", err)
		b.printf("Error parsing data: %v\n", err)
		return nil, fmt.Errorf("parse schedule: %w", err)
	}
	return collections, nil
}

func (b *BinReminder) createReminder(ctx context.Context, reminder model.Reminder) bool {
	if b.reminders == nil {
		b.printf("Local reminders not configured - skipping\n")
		return false
	}

	err := b.reminders.CreateReminder(ctx, reminder.Title, reminder.Body)
	switch {
	case err == nil:
		b.printf("Created macOS Reminder\n")
		return true
	case errors.Is(err, ports.ErrRemindersUnavailable):
		b.logger.Info(ctx, "local reminder skipped", "reason", err)
		b.printf("Local reminders unavailable - skipping (%v)\n", err)
	default:
		b.logger.Error(ctx, "failed to create local reminder", "error", err)
		b.printf("Failed to create reminder: %v\n", err)
	}
	return false
}

func (b *BinReminder) sendEmail(ctx context.Context, mail model.Email) (sent, skipped bool) {
	if b.mailer == nil {
		b.printf("Email not configured - skipping email\n")
		return false, true
	}

	err := b.mailer.Send(ctx, mail)
	switch {
	case err == nil:
		b.printf("Email sent to %s\n", b.recipientList())
		return true, false
	case errors.Is(err, ports.ErrEmailNotConfigured):
		b.logger.Warn(ctx, "email skipped", "reason", err)
		b.printf("Gmail App Password not configured - skipping email\n")
		return false, true
	default:
		b.logger.Error(ctx, "failed to send email", "error", err)
		b.printf("Failed to send email: %v\n", err)
		return false, false
	}
}

func (b *BinReminder) recipientList() string {
	if len(b.recipients) == 0 {
		return "(no recipients)"
	}
	return strings.Join(b.recipients, ", ")
}

func (b *BinReminder) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(b.out, format, args...)
}
