package di

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"bin-reminder/internal/adapter/reminders"
	"bin-reminder/internal/config"
	"bin-reminder/internal/domain/model"
	"bin-reminder/internal/domain/ports"
)

func TestNewReminderCreator(t *testing.T) {
	tests := []struct {
		name     string
		enabled  bool
		goos     string
		wantNoop bool
	}{
		{name: "darwin enabled", enabled: true, goos: "darwin"},
		{name: "darwin disabled", enabled: false, goos: "darwin", wantNoop: true},
		{name: "linux", enabled: true, goos: "linux", wantNoop: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creator := newReminderCreator(&config.Config{LocalReminders: tt.enabled}, tt.goos, nil)
			_, isNoop := creator.(reminders.Noop)
			if isNoop != tt.wantNoop {
				t.Fatalf("creator = %T, want noop=%v", creator, tt.wantNoop)
			}
			if tt.wantNoop {
				err := creator.CreateReminder(context.Background(), "t", "b")
				if !errors.Is(err, ports.ErrRemindersUnavailable) {
					t.Errorf("noop error = %v", err)
				}
			}
		})
	}
}

func TestEmailSenderSkipsWithoutPassword(t *testing.T) {
	sender := provideEmailSender(&config.Config{EmailFrom: "me@example.com", EmailTo: []string{"me@example.com"}}, nil)
	err := sender.Send(context.Background(), model.Email{Subject: "s", Body: "b"})
	if !errors.Is(err, ports.ErrEmailNotConfigured) {
		t.Fatalf("expected ErrEmailNotConfigured, got %v", err)
	}
}

func TestReminderConfigUsesEmailRecipients(t *testing.T) {
	cfg, err := config.Load(config.MapProvider{
		"BIN_UPRN":   "100120000000",
		"EMAIL_FROM": "bins@example.com",
		"EMAIL_TO":   "alice@example.com, bob@example.com",
	})
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}

	got := provideReminderConfig(cfg)
	if got.UPRN != "100120000000" {
		t.Errorf("UPRN = %q", got.UPRN)
	}
	if len(got.Recipients) != 2 || got.Recipients[0] != "alice@example.com" || got.Recipients[1] != "bob@example.com" {
		t.Errorf("Recipients = %v", got.Recipients)
	}
}

func TestInitializeApp(t *testing.T) {
	cfg, err := config.Load(config.MapProvider{
		"BIN_UPRN": "100120000000",
		"LOG_FILE": filepath.Join(t.TempDir(), "bin-reminder.log"),
	})
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}

	application, cleanup, err := InitializeApp(cfg, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("InitializeApp: %v", err)
	}
	defer cleanup()

	if application == nil {
		t.Fatal("InitializeApp returned nil app")
	}
}

func TestInitializeAppRejectsBadLogLevel(t *testing.T) {
	cfg := &config.Config{UPRN: "1", LogLevel: "chatty"}
	if _, _, err := InitializeApp(cfg, &bytes.Buffer{}); err == nil {
		t.Fatal("expected log level error")
	}
}
