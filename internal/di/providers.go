package di

import (
	"log/slog"
	"runtime"

	"bin-reminder/internal/adapter/bathnes"
	"bin-reminder/internal/adapter/email"
	"bin-reminder/internal/adapter/logging"
	"bin-reminder/internal/adapter/reminders"
	"bin-reminder/internal/config"
	"bin-reminder/internal/domain/ports"
	"bin-reminder/internal/usecase"
)

func provideSlogLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	return logging.NewJSONLogger(logging.Options{
		Level: cfg.LogLevel,
		File:  cfg.LogFile,
	})
}

func provideScheduleProvider(cfg *config.Config, logger ports.Logger) ports.ScheduleProvider {
	return bathnes.New(bathnes.Options{
		BaseURL:     cfg.ScheduleBaseURL,
		Timeout:     cfg.RequestTimeout,
		InsecureTLS: cfg.InsecureTLS,
	}, logger)
}

func provideReminderCreator(cfg *config.Config, logger ports.Logger) ports.ReminderCreator {
	return newReminderCreator(cfg, runtime.GOOS, logger)
}

func newReminderCreator(cfg *config.Config, goos string, logger ports.Logger) ports.ReminderCreator {
	if !cfg.LocalReminders {
		return reminders.Noop{Reason: "disabled by LOCAL_REMINDERS"}
	}
	if goos != "darwin" {
		return reminders.Noop{Reason: "not supported on " + goos}
	}
	return reminders.NewAppleScript(cfg.ReminderList, nil, logger)
}

func provideEmailSender(cfg *config.Config, logger ports.Logger) ports.EmailSender {
	return email.NewSender(email.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		From:     cfg.EmailFrom,
		To:       cfg.EmailTo,
		Password: cfg.AppPassword,
	}, nil, logger)
}

func provideReminderConfig(cfg *config.Config) usecase.BinReminderConfig {
	return usecase.BinReminderConfig{
		UPRN:          cfg.UPRN,
		UpcomingCount: cfg.UpcomingCount,
		Recipients:    cfg.EmailTo,
		DryRun:        cfg.DryRun,
	}
}
