// Package landing parses landing service flags and launches the service.
package landing

import (
	"context"
	"flag"
	"fmt"
	"strings"

	entrypoint "github.com/aceleraclinicas/landing/internal/platform/cmd"
	"github.com/aceleraclinicas/landing/internal/platform/logging"
	landingservice "github.com/aceleraclinicas/landing/internal/services/landing"
	"github.com/aceleraclinicas/landing/internal/services/landing/page"
	"go.uber.org/zap"
)

// Config holds landing command configuration.
type Config struct {
	HTTPAddr       string `env:"LANDING_HTTP_ADDR"       envDefault:"localhost:8080"`
	DefaultVariant string `env:"LANDING_DEFAULT_VARIANT" envDefault:"analise"`
	VariantsDir    string `env:"LANDING_VARIANTS_DIR"`
	LogLevel       string `env:"LANDING_LOG_LEVEL"       envDefault:"info"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	if fs == nil {
		fs = flag.NewFlagSet(entrypoint.ServiceLanding, flag.ContinueOnError)
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.DefaultVariant, "default-variant", cfg.DefaultVariant, "Variant id served at /")
	fs.StringVar(&cfg.VariantsDir, "variants-dir", cfg.VariantsDir, "Directory of variant YAML files (embedded variants when empty)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the landing HTTP service.
func Run(ctx context.Context, cfg Config) error {
	logger, err := logging.New(entrypoint.ServiceLanding, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	registry, err := LoadRegistry(cfg)
	if err != nil {
		return err
	}
	logger.Info("variants loaded",
		zap.Int("count", len(registry.All())),
		zap.String("default", registry.Default().ID),
	)

	return entrypoint.RunWithTelemetryAndOptions(ctx, entrypoint.ServiceLanding, entrypoint.RunOptions{Logger: logger}, func(ctx context.Context) error {
		server, err := landingservice.NewServer(ctx, landingservice.Config{
			HTTPAddr: cfg.HTTPAddr,
			Registry: registry,
			Logger:   logger,
		})
		if err != nil {
			return err
		}
		defer server.Close()
		return server.ListenAndServe(ctx)
	})
}

// LoadRegistry loads variants from cfg.VariantsDir, or the embedded set when
// it is empty, and selects the default variant.
func LoadRegistry(cfg Config) (*page.Registry, error) {
	var (
		variants []page.Variant
		err      error
	)
	if dir := strings.TrimSpace(cfg.VariantsDir); dir != "" {
		variants, err = page.LoadDir(dir)
	} else {
		variants, err = page.LoadEmbedded()
	}
	if err != nil {
		return nil, fmt.Errorf("load variants: %w", err)
	}
	registry, err := page.NewRegistry(variants, cfg.DefaultVariant)
	if err != nil {
		return nil, fmt.Errorf("build variant registry: %w", err)
	}
	return registry, nil
}
