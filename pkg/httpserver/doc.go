// Package httpserver wraps net/http's Server with graceful shutdown,
// environment-driven configuration and structured logging hooks.
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server failed", "error", err)
//	}
//
// Run blocks until the context is cancelled, SIGINT/SIGTERM arrives, or the
// listener fails; shutdown drains in-flight requests within the configured
// timeout.
package httpserver
