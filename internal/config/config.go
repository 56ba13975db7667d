// Package config loads process configuration from GOALPATH_* environment
// variables and an optional config file.
package config

import (
	"log/slog"
	"time"

	"github.com/alexanderramin/goalpath/internal/loading"
)

// Config holds all application configuration.
type Config struct {
	// CatalogDir replaces the embedded catalog when set.
	CatalogDir  string        `mapstructure:"catalog_dir" validate:"omitempty,dir"`
	LogUseCases bool          `mapstructure:"log_use_cases"`
	LogLevel    string        `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	Loading     LoadingConfig `mapstructure:"loading" validate:"required"`
}

// LoadingConfig tunes the Loading screen timers.
type LoadingConfig struct {
	ContentInterval  time.Duration `mapstructure:"content_interval" validate:"gt=0"`
	ProgressInterval time.Duration `mapstructure:"progress_interval" validate:"gt=0"`
	ProgressStep     int           `mapstructure:"progress_step" validate:"gte=1,lte=100"`
}

// SlogLevel maps LogLevel to a slog level.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// TaskOptions converts the timers into loading task options for a
// carousel of contentCount items.
func (c LoadingConfig) TaskOptions(contentCount int) loading.Options {
	return loading.Options{
		ContentInterval:  c.ContentInterval,
		ProgressInterval: c.ProgressInterval,
		ProgressStep:     c.ProgressStep,
		ContentCount:     contentCount,
	}
}
