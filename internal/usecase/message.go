package usecase

import (
	"fmt"
	"strings"
	"time"

	"bin-reminder/internal/domain/model"
)

const (
	reminderTitle = "Put bins out tonight!"
	// dateLayout renders dates as e.g. "Thursday 29 January".
	dateLayout = "Monday 02 January"
)

// FormatDate renders a collection date the way reminders show it.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// BuildReminder composes the reminder for a non-empty set of collections
// that share a date.
func BuildReminder(due []model.Collection) model.Reminder {
	if len(due) == 0 {
		return model.Reminder{}
	}

	lines := make([]string, 0, len(due))
	for _, c := range due {
		lines = append(lines, "  - "+c.Type)
	}

	return model.Reminder{
		Title: reminderTitle,
		Body:  fmt.Sprintf("Collection tomorrow (%s):\n%s", FormatDate(due[0].Date), strings.Join(lines, "\n")),
	}
}

// BuildEmail wraps a reminder into the weekly email.
func BuildEmail(reminder model.Reminder, date time.Time) model.Email {
	var body strings.Builder
	body.WriteString("Hi,\n\n")
	body.WriteString("This is your weekly bin reminder.\n\n")
	body.WriteString(reminder.Body)
	body.WriteString("\n\nRemember to put them out tonight!\n\n")
	body.WriteString("---\n")
	body.WriteString("Automated reminder from bin-reminder\n")

	return model.Email{
		Subject: fmt.Sprintf("Bin Reminder: Collection tomorrow (%s)", FormatDate(date)),
		Body:    body.String(),
	}
}
