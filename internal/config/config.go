package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config contains runtime configuration values.
type Config struct {
	UPRN            string
	EmailFrom       string
	EmailTo         []string
	AppPassword     string
	SMTPHost        string
	SMTPPort        int
	ScheduleBaseURL string
	InsecureTLS     bool
	RequestTimeout  time.Duration
	LocalReminders  bool
	ReminderList    string
	UpcomingCount   int
	DryRun          bool
	LogLevel        string
	LogFile         string
}

const (
	defaultSMTPHost        = "smtp.gmail.com"
	defaultSMTPPort        = 465
	defaultScheduleBaseURL = "https://www.bathnes.gov.uk/webapi/api/BinsAPI/v2/getbartecroute"
	defaultTimeout         = 30 * time.Second
	defaultReminderList    = "Reminders"
	defaultUpcomingCount   = 3
	defaultLogLevel        = "info"
)

// Provider looks up raw configuration values by key.
type Provider interface {
	Lookup(key string) (string, bool)
}

// EnvProvider reads values from the process environment.
type EnvProvider struct{}

// Lookup implements Provider.
func (EnvProvider) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// MapProvider serves values from a fixed map.
type MapProvider map[string]string

// Lookup implements Provider.
func (m MapProvider) Lookup(key string) (string, bool) {
	val, ok := m[key]
	return val, ok
}

// Layered consults each provider in order and returns the first non-empty hit.
type Layered []Provider

// Lookup implements Provider.
func (l Layered) Lookup(key string) (string, bool) {
	for _, p := range l {
		if p == nil {
			continue
		}
		if val, ok := p.Lookup(key); ok && val != "" {
			return val, true
		}
	}
	return "", false
}

// FromEnvFile layers the environment over the values of a .env file.
// A missing file is not an error when optional is true.
func FromEnvFile(path string, optional bool) (Provider, error) {
	if path == "" {
		return EnvProvider{}, nil
	}

	values, err := godotenv.Read(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return EnvProvider{}, nil
		}
		return nil, fmt.Errorf("read env file %s: %w", path, err)
	}
	return Layered{EnvProvider{}, MapProvider(values)}, nil
}

// Load builds a Config from the provider with sane defaults.
func Load(p Provider) (*Config, error) {
	if p == nil {
		p = EnvProvider{}
	}
	l := loader{p: p}

	cfg := &Config{
		UPRN:            l.str("BIN_UPRN", ""),
		EmailFrom:       l.str("EMAIL_FROM", ""),
		EmailTo:         splitList(l.str("EMAIL_TO", "")),
		AppPassword:     l.str("GMAIL_APP_PASSWORD", ""),
		SMTPHost:        l.str("SMTP_HOST", defaultSMTPHost),
		SMTPPort:        l.integer("SMTP_PORT", defaultSMTPPort),
		ScheduleBaseURL: strings.TrimRight(l.str("SCHEDULE_BASE_URL", defaultScheduleBaseURL), "/"),
		InsecureTLS:     l.boolean("SCHEDULE_INSECURE_TLS", true),
		RequestTimeout:  l.duration("REQUEST_TIMEOUT", defaultTimeout),
		LocalReminders:  l.boolean("LOCAL_REMINDERS", true),
		ReminderList:    l.str("REMINDER_LIST", defaultReminderList),
		UpcomingCount:   l.integer("UPCOMING_COUNT", defaultUpcomingCount),
		DryRun:          l.boolean("DRY_RUN", false),
		LogLevel:        strings.ToLower(l.str("LOG_LEVEL", defaultLogLevel)),
		LogFile:         l.str("LOG_FILE", ""),
	}

	if cfg.UPRN == "" {
		return nil, fmt.Errorf("BIN_UPRN is required")
	}

	if len(cfg.EmailTo) == 0 && cfg.EmailFrom != "" {
		cfg.EmailTo = []string{cfg.EmailFrom}
	}

	if cfg.AppPassword != "" && cfg.EmailFrom == "" {
		return nil, fmt.Errorf("EMAIL_FROM is required when GMAIL_APP_PASSWORD is set")
	}

	if cfg.SMTPPort <= 0 || cfg.SMTPPort > 65535 {
		return nil, fmt.Errorf("SMTP_PORT %d out of range", cfg.SMTPPort)
	}

	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultTimeout
	}

	if cfg.UpcomingCount < 0 {
		cfg.UpcomingCount = defaultUpcomingCount
	}

	return cfg, nil
}

type loader struct {
	p Provider
}

func (l loader) str(key, fallback string) string {
	if val, ok := l.p.Lookup(key); ok {
		if val = strings.TrimSpace(val); val != "" {
			return val
		}
	}
	return fallback
}

func (l loader) integer(key string, fallback int) int {
	if val := l.str(key, ""); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}

func (l loader) duration(key string, fallback time.Duration) time.Duration {
	if val := l.str(key, ""); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}

func (l loader) boolean(key string, fallback bool) bool {
	if val := l.str(key, ""); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return fallback
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
