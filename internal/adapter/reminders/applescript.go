// Package reminders creates items in the host's personal reminders store.
package reminders

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"bin-reminder/internal/domain/ports"
)

// ErrUnavailable is returned when the host has no reminders facility.
var ErrUnavailable = ports.ErrRemindersUnavailable

// DefaultList is the list new reminders are added to.
const DefaultList = "Reminders"

// CommandRunner executes an external command and returns its error, with
// stderr folded in.
type CommandRunner func(ctx context.Context, name string, args ...string) error

// AppleScript creates reminders in the macOS Reminders app via osascript.
type AppleScript struct {
	list   string
	run    CommandRunner
	logger ports.Logger
}

var _ ports.ReminderCreator = (*AppleScript)(nil)

// NewAppleScript builds an AppleScript creator for the named list.
// A nil runner executes the real osascript binary.
func NewAppleScript(list string, run CommandRunner, logger ports.Logger) *AppleScript {
	if strings.TrimSpace(list) == "" {
		list = DefaultList
	}
	if run == nil {
		run = execCommand
	}
	return &AppleScript{list: list, run: run, logger: logger}
}

// CreateReminder adds one reminder with the given title and notes.
func (a *AppleScript) CreateReminder(ctx context.Context, title, body string) error {
	script := Script(a.list, title, body)
	if err := a.run(ctx, "osascript", "-e", script); err != nil {
		return fmt.Errorf("osascript: %w", err)
	}

	if a.logger != nil {
		a.logger.Info(ctx, "created local reminder", "list", a.list)
	}
	return nil
}

// Script renders the AppleScript that creates a reminder.
func Script(list, title, body string) string {
	return fmt.Sprintf(`tell application "Reminders"
	set mylist to list "%s"
	tell mylist
		make new reminder with properties {name:"%s", body:"%s"}
	end tell
end tell`, escape(list), escape(title), escape(body))
}

func escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}

func execCommand(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%w: %s", err, msg)
		}
		return err
	}
	return nil
}
