package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Rorical/ContentAnalyzer/internal/app"
	"github.com/Rorical/ContentAnalyzer/internal/config"
	"github.com/Rorical/ContentAnalyzer/internal/extract"
)

var healthTimeout time.Duration

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the extraction service is reachable",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := mustLoadConfig()
		profile := cfg.Current()
		if profile.GetBackend() != config.BackendExtract {
			return fmt.Errorf("profile '%s' uses the %s backend, which has no health endpoint", cfg.ActiveProfile, profile.GetBackend())
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), healthTimeout)
		defer cancel()

		client := extract.NewClient(profile.GetOrigin(), nil, app.NewStderrLogger(cfg.SlogLevel()))
		if err := client.Health(ctx); err != nil {
			return fmt.Errorf("%s is unreachable: %w", client.Origin(), err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s OK\n", client.Origin())
		return nil
	},
}

func init() {
	healthCmd.Flags().DurationVar(&healthTimeout, "timeout", 5*time.Second, "how long to wait for the service")
	rootCmd.AddCommand(healthCmd)
}
