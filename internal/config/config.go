package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Target   float64 `env:"ATTENDANCE_TARGET"    envDefault:"75"`
	Upcoming int     `env:"ATTENDANCE_UPCOMING"  envDefault:"10"`
	OutDir   string  `env:"ATTENDANCE_OUT_DIR"`
	Format   string  `env:"ATTENDANCE_FORMAT"    envDefault:"md,json"`
	LogLevel string  `env:"ATTENDANCE_LOG_LEVEL" envDefault:"info"`
	Strict   bool    `env:"ATTENDANCE_STRICT"`
}

// Load parses configuration from the process environment.
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom parses configuration from the given variables only.
func LoadFrom(vars map[string]string) (Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func ParseLevel(input string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", input)
	}
}
