// Package config loads forge settings from the config file and command-line
// flags
package config

import (
	"fmt"
	"io"
	"os"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Goal          GoalConfig         `mapstructure:"goal"`
		Store         StoreConfig        `mapstructure:"store"`
		Settings      SettingsConfig     `mapstructure:"settings"`
		Log           LogConfig          `mapstructure:"log"`
		Leaderboard   LeaderboardConfig  `mapstructure:"leaderboard"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		Display       DisplayConfig      `mapstructure:"display"`
		PathToConfig  string             `mapstructure:"-"`
	}

	// GoalConfig holds the daily focus target.
	GoalConfig struct {
		// Daily is a duration such as "8h" or "7h30m".
		Daily string `mapstructure:"daily"`
		// Seconds is Daily resolved to seconds.
		Seconds int64 `mapstructure:"-"`
	}

	// StoreConfig selects the storage backend.
	StoreConfig struct {
		Driver string `mapstructure:"driver"`
	}

	// SettingsConfig holds behaviour settings.
	SettingsConfig struct {
		// SessionCmd runs when the daily goal is reached.
		SessionCmd string `mapstructure:"session_cmd"`
	}

	LogConfig struct {
		Level string `mapstructure:"level"`
	}

	// LeaderboardConfig holds the names shown by the rank command.
	LeaderboardConfig struct {
		Name   string   `mapstructure:"name"`
		Rivals []string `mapstructure:"rivals"`
	}

	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	DisplayConfig struct {
		DarkTheme bool `mapstructure:"dark_theme"`
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.3.0"

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a Config, applies options in order and validates the result.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errConfigValidation, err)
	}

	return cfg, nil
}
