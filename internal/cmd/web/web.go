// Package web parses landing-site flags and launches the HTTP server.
package web

import (
	"context"
	"flag"
	"fmt"
	"time"

	entrypoint "github.com/lycee-saint-jean/site/internal/platform/cmd"
	"github.com/lycee-saint-jean/site/internal/services/web"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr string `env:"SAINT_JEAN_WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	// OTelShutdownTimeout bounds the final span flush on exit.
	OTelShutdownTimeout time.Duration `env:"SAINT_JEAN_OTEL_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// ParseConfig parses environment and flags into Config. Flags that are
// given override the environment.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	if fs == nil {
		return Config{}, fmt.Errorf("flag parser is required")
	}
	var cfg Config
	fs.StringVar(&cfg.HTTPAddr, "http-addr", "", "HTTP listen address (env SAINT_JEAN_WEB_HTTP_ADDR)")
	fs.DurationVar(&cfg.OTelShutdownTimeout, "otel-shutdown-timeout", 0, "Telemetry flush timeout on exit (env SAINT_JEAN_OTEL_SHUTDOWN_TIMEOUT)")
	if err := entrypoint.ParseConfigFromArgs(&cfg, fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run serves the landing site until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	options := entrypoint.RunOptions{ShutdownTimeout: cfg.OTelShutdownTimeout}
	return entrypoint.RunWithTelemetryAndOptions(ctx, entrypoint.ServiceWeb, options, func(ctx context.Context) error {
		server, err := web.NewServer(web.Config{HTTPAddr: cfg.HTTPAddr})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
