// Package cli implements the personagen command-line interface using Cobra.
// It provides a one-shot batch generator and the HTTP API server.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/personagen/pkg/config"
	"github.com/dmitrymomot/personagen/pkg/logger"
)

// appConfig carries settings shared by all commands.
type appConfig struct {
	Environment string `env:"APP_ENV" envDefault:"development"`
	ServiceName string `env:"APP_NAME" envDefault:"personagen"`
}

var log *slog.Logger

var rootCmd = &cobra.Command{
	Use:   "personagen",
	Short: "Generate test personas with public-place addresses across all 50 US states",
	Long: `personagen produces synthetic test identities (name, email, phone,
public-place address) with best-effort uniqueness guarantees. Generate a
batch straight to a file, or run the HTTP API for session-based generation
with CSV, JSON and Excel export.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var cfg appConfig
		if err := config.Load(&cfg); err != nil {
			return err
		}
		log = logger.New(logger.WithEnvironment(cfg.Environment, cfg.ServiceName))
		slog.SetDefault(log)
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", slog.Any("error", err))
		return err
	}
	return nil
}

func init() {
	rootCmd.AddCommand(generateCmd(), serveCmd())
}
