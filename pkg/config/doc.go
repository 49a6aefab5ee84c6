// Package config loads environment-driven configuration structs.
//
// It reads a .env file once per process (missing files are fine) and parses
// environment variables into caarlos0/env tagged structs:
//
//	type AppConfig struct {
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg AppConfig
//	config.MustLoad(&cfg)
package config
