package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(MapProvider{"BIN_UPRN": "100120000000"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.UPRN != "100120000000" {
		t.Errorf("UPRN = %q", cfg.UPRN)
	}
	if cfg.SMTPHost != defaultSMTPHost || cfg.SMTPPort != defaultSMTPPort {
		t.Errorf("SMTP = %s:%d", cfg.SMTPHost, cfg.SMTPPort)
	}
	if cfg.ScheduleBaseURL != defaultScheduleBaseURL {
		t.Errorf("ScheduleBaseURL = %q", cfg.ScheduleBaseURL)
	}
	if !cfg.InsecureTLS {
		t.Error("InsecureTLS should default to true")
	}
	if cfg.RequestTimeout != defaultTimeout {
		t.Errorf("RequestTimeout = %v", cfg.RequestTimeout)
	}
	if cfg.ReminderList != "Reminders" || !cfg.LocalReminders {
		t.Errorf("reminders = %q enabled=%v", cfg.ReminderList, cfg.LocalReminders)
	}
	if cfg.UpcomingCount != 3 {
		t.Errorf("UpcomingCount = %d", cfg.UpcomingCount)
	}
	if cfg.AppPassword != "" {
		t.Error("app password should default to empty")
	}
}

func TestLoadRequiresUPRN(t *testing.T) {
	_, err := Load(MapProvider{"EMAIL_FROM": "me@example.com"})
	if err == nil || !strings.Contains(err.Error(), "BIN_UPRN") {
		t.Fatalf("expected BIN_UPRN error, got %v", err)
	}
}

func TestLoadEmailSettings(t *testing.T) {
	tests := []struct {
		name    string
		values  MapProvider
		wantTo  []string
		wantErr string
	}{
		{
			name:   "recipient list",
			values: MapProvider{"BIN_UPRN": "1", "EMAIL_FROM": "me@example.com", "EMAIL_TO": "a@example.com, b@example.com,,", "GMAIL_APP_PASSWORD": "pw"},
			wantTo: []string{"a@example.com", "b@example.com"},
		},
		{
			name:   "recipient defaults to sender",
			values: MapProvider{"BIN_UPRN": "1", "EMAIL_FROM": "me@example.com"},
			wantTo: []string{"me@example.com"},
		},
		{
			name:    "password without sender",
			values:  MapProvider{"BIN_UPRN": "1", "GMAIL_APP_PASSWORD": "pw"},
			wantErr: "EMAIL_FROM",
		},
		{
			name:    "port out of range",
			values:  MapProvider{"BIN_UPRN": "1", "SMTP_PORT": "70000"},
			wantErr: "SMTP_PORT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(tt.values)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if !reflect.DeepEqual(cfg.EmailTo, tt.wantTo) {
				t.Errorf("EmailTo = %v, want %v", cfg.EmailTo, tt.wantTo)
			}
		})
	}
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	cfg, err := Load(MapProvider{
		"BIN_UPRN":              "1",
		"REQUEST_TIMEOUT":       "soon",
		"SCHEDULE_INSECURE_TLS": "maybe",
		"UPCOMING_COUNT":        "-4",
		"SCHEDULE_BASE_URL":     "https://example.test/api/",
		"LOG_LEVEL":             "DEBUG",
	})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Errorf("RequestTimeout = %v", cfg.RequestTimeout)
	}
	if !cfg.InsecureTLS {
		t.Error("invalid bool should fall back to default")
	}
	if cfg.UpcomingCount != 3 {
		t.Errorf("UpcomingCount = %d", cfg.UpcomingCount)
	}
	if cfg.ScheduleBaseURL != "https://example.test/api" {
		t.Errorf("ScheduleBaseURL = %q", cfg.ScheduleBaseURL)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
}

func TestFromEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "BIN_UPRN=200\nREMINDER_LIST=\"Household\"\nBIN_REMINDER_TEST_OVERRIDE=file\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("BIN_REMINDER_TEST_OVERRIDE", "env")

	p, err := FromEnvFile(path, false)
	if err != nil {
		t.Fatalf("FromEnvFile: %v", err)
	}

	if val, _ := p.Lookup("REMINDER_LIST"); val != "Household" {
		t.Errorf("REMINDER_LIST = %q", val)
	}
	if val, _ := p.Lookup("BIN_REMINDER_TEST_OVERRIDE"); val != "env" {
		t.Errorf("environment should win over file, got %q", val)
	}
}

func TestFromEnvFileMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.env")

	if _, err := FromEnvFile(missing, true); err != nil {
		t.Fatalf("optional missing file should be ignored: %v", err)
	}
	if _, err := FromEnvFile(missing, false); err == nil {
		t.Fatal("expected error for required missing file")
	}
}
