// Package config loads runtime settings for the order sketch hosts from the
// environment.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"

	"github.com/Garsondee/Order-Sketch/internal/mapdata"
)

// Config is shared by the window and terminal hosts.
type Config struct {
	// MapPath is the map table file; empty selects the embedded demo board.
	MapPath      string `env:"ORDERS_MAP"`
	ExportDir    string `env:"ORDERS_EXPORT_DIR" envDefault:"."`
	WindowWidth  int    `env:"ORDERS_WINDOW_WIDTH" envDefault:"1280"`
	WindowHeight int    `env:"ORDERS_WINDOW_HEIGHT" envDefault:"800"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load returns the configuration read from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.WindowWidth <= 0 || cfg.WindowHeight <= 0 {
		return Config{}, fmt.Errorf("window size must be positive, got %dx%d", cfg.WindowWidth, cfg.WindowHeight)
	}
	return cfg, nil
}

// Board loads the configured map, or the demo board when none is set.
func (c Config) Board() (*mapdata.Map, error) {
	if c.MapPath == "" {
		return mapdata.Demo(), nil
	}
	return mapdata.Load(c.MapPath)
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
