//go:build wireinject

package di

import (
	"io"

	"github.com/google/wire"

	"bin-reminder/internal/adapter/logging"
	"bin-reminder/internal/app"
	"bin-reminder/internal/config"
	"bin-reminder/internal/domain/ports"
	"bin-reminder/internal/usecase"
)

// InitializeApp wires the application components together.
func InitializeApp(cfg *config.Config, out io.Writer) (*app.App, func(), error) {
	wire.Build(
		provideSlogLogger,
		logging.New,
		wire.Bind(new(ports.Logger), new(*logging.SLogger)),
		provideScheduleProvider,
		provideReminderCreator,
		provideEmailSender,
		provideReminderConfig,
		usecase.NewBinReminder,
		app.New,
	)
	return nil, nil, nil
}
