package reminders

import (
	"context"
	"fmt"

	"bin-reminder/internal/domain/ports"
)

// Noop stands in on hosts without a reminders facility.
type Noop struct {
	Reason string
}

var _ ports.ReminderCreator = Noop{}

// CreateReminder always reports ErrUnavailable.
func (n Noop) CreateReminder(context.Context, string, string) error {
	if n.Reason == "" {
		return ErrUnavailable
	}
	return fmt.Errorf("%w: %s", ErrUnavailable, n.Reason)
}
