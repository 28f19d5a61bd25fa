package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"bin-reminder/internal/app"
	"bin-reminder/internal/config"
	"bin-reminder/internal/di"
)

const defaultEnvFile = ".env"

// exitError carries a non-zero exit code whose cause was already reported.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

type options struct {
	envFile string
	dryRun  bool
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		var exit *exitError
		if errors.As(err, &exit) {
			return exit.code
		}
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(stderr, err)
		}
		return app.ExitFatal
	}
	return app.ExitOK
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "bin-reminder",
		Short:         "Remind the household when bins go out tomorrow",
		Long:          "Fetches the council collection schedule and, if a collection is due tomorrow, creates a local reminder and sends an email.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, application *app.App, _ *config.Config) error {
				if code := application.Run(ctx); code != app.ExitOK {
					return &exitError{code: code}
				}
				return nil
			})
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.envFile, "env-file", defaultEnvFile, "Path to a .env file with configuration")
	rootCmd.PersistentFlags().BoolVar(&opts.dryRun, "dry-run", false, "Print the reminder without creating it or sending email")

	rootCmd.AddCommand(newUpcomingCommand(opts))

	return rootCmd
}

func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	optional := !cmd.Flags().Changed("env-file")
	provider, err := config.FromEnvFile(opts.envFile, optional)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(provider)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if opts.dryRun {
		cfg.DryRun = true
	}
	return cfg, nil
}

func withApp(cmd *cobra.Command, opts *options, fn func(context.Context, *app.App, *config.Config) error) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	application, cleanup, err := di.InitializeApp(cfg, cmd.OutOrStdout())
	if err != nil {
		return fmt.Errorf("initialize application: %w", err)
	}
	defer cleanup()

	return fn(cmd.Context(), application, cfg)
}
