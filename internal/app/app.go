package app

import (
	"context"

	"bin-reminder/internal/domain/model"
	"bin-reminder/internal/domain/ports"
	"bin-reminder/internal/usecase"
)

// Exit codes returned by Run.
const (
	ExitOK    = 0
	ExitFatal = 1
)

// Runner is the use case driven by App.
type Runner interface {
	Run(ctx context.Context) (*usecase.Result, error)
	Upcoming(ctx context.Context, n int) ([]model.Collection, error)
}

// App executes a single reminder pass. Scheduling is left to cron/launchd.
type App struct {
	usecase Runner
	logger  ports.Logger
}

// New constructs an App instance.
func New(reminder *usecase.BinReminder, logger ports.Logger) *App {
	return &App{usecase: reminder, logger: logger}
}

// Run executes the reminder once and returns the process exit code.
func (a *App) Run(ctx context.Context) int {
	a.logger.Info(ctx, "starting bin reminder")
	if _, err := a.usecase.Run(ctx); err != nil {
		a.logger.Error(ctx, "bin reminder failed", "error", err)
		return ExitFatal
	}
	return ExitOK
}

// Upcoming lists the next n collections.
func (a *App) Upcoming(ctx context.Context, n int) ([]model.Collection, error) {
	return a.usecase.Upcoming(ctx, n)
}
