package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/ayoisaiah/forge/stats"
)

const (
	keyDailyGoal            = "goal.daily"
	keyStoreDriver          = "store.driver"
	keyNotificationsEnabled = "notifications.enabled"
	keySessionCmd           = "settings.session_cmd"
	keyLeaderboardName      = "leaderboard.name"
	keyLeaderboardRivals    = "leaderboard.rivals"
	keyLogLevel             = "log.level"
	keyDarkTheme            = "display.dark_theme"
)

// WithViperConfig returns an Option that loads configuration from the yaml
// file at configPath. A missing file is created with the default values.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v)

		c.PathToConfig = configPath

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
			return errWriteConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper registers the default value of every key.
func setupViper(v *viper.Viper) {
	v.SetDefault(keyDailyGoal, "8h")
	v.SetDefault(keyStoreDriver, "bolt")
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyLeaderboardName, "You")
	v.SetDefault(keyLeaderboardRivals, stats.DefaultRivals)
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyDarkTheme, true)
}

// loadViperConfig copies the merged settings into c.
func loadViperConfig(v *viper.Viper, c *Config) error {
	err := v.Unmarshal(c)
	if err != nil {
		return errReadConfig.Wrap(err)
	}

	return c.resolveGoal()
}
