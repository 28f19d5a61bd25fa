package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"bin-reminder/internal/app"
	"bin-reminder/internal/config"
)

func newUpcomingCommand(opts *options) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "upcoming",
		Short: "List the next scheduled collections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, application *app.App, cfg *config.Config) error {
				n := cfg.UpcomingCount
				if cmd.Flags().Changed("count") {
					n = count
				}

				collections, err := application.Upcoming(ctx, n)
				if err != nil {
					return err
				}
				if len(collections) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No upcoming collections")
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderCollections(collections, time.Now()))
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 3, "Number of collections to list")
	return cmd
}
