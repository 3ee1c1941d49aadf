package config

import (
	"slices"
	"strings"
	"time"

	"github.com/ayoisaiah/forge/internal/timeutil"
)

var (
	minDailyGoal = 1 * time.Minute
	maxDailyGoal = 24 * time.Hour

	drivers   = []string{"bolt", "sqlite"}
	logLevels = []string{"debug", "info", "warn", "error"}
)

// resolveGoal parses the daily goal duration into seconds.
func (c *Config) resolveGoal() error {
	seconds, err := timeutil.ParseDuration(strings.TrimSpace(c.Goal.Daily))
	if err != nil {
		return err
	}

	c.Goal.Seconds = seconds

	return nil
}

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	goal := time.Duration(c.Goal.Seconds) * time.Second
	if goal < minDailyGoal || goal > maxDailyGoal {
		return errInvalidGoal.Fmt(minDailyGoal, maxDailyGoal, c.Goal.Daily)
	}

	if !slices.Contains(drivers, c.Store.Driver) {
		return errUnknownDriver.Fmt(c.Store.Driver)
	}

	if !slices.Contains(logLevels, strings.ToLower(c.Log.Level)) {
		return errUnknownLogLevel.Fmt(c.Log.Level)
	}

	if strings.TrimSpace(c.Leaderboard.Name) == "" {
		return errEmptyName
	}

	return nil
}
