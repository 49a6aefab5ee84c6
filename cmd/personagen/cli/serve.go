package cli

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/personagen/modules/personas"
	"github.com/dmitrymomot/personagen/pkg/config"
	"github.com/dmitrymomot/personagen/pkg/httpserver"
	"github.com/dmitrymomot/personagen/pkg/persona"
)

type serveConfig struct {
	HTTP       httpserver.Config
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	MaxBatch   int           `env:"MAX_BATCH" envDefault:"5000"`
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the persona generation HTTP API",
		Long: `Starts the session-based HTTP API. Each session owns an independent
generator lineage; batches can be downloaded as CSV, JSON or Excel.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg serveConfig
			if err := config.Load(&cfg); err != nil {
				return err
			}

			store := personas.NewStore(nil, cfg.SessionTTL,
				personas.WithGeneratorOptions(persona.WithMaxCount(cfg.MaxBatch)))

			r := chi.NewRouter()
			r.Use(middleware.RequestID)
			r.Use(middleware.Recoverer)
			r.Mount("/api/v1", personas.New(store, log).Router())

			srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
			return srv.Run(cmd.Context(), r)
		},
	}
}
