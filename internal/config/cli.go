package config

import (
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/forge/internal/timeutil"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Goal          string
	StoreDriver   string
	SessionCmd    string
	DisableNotify bool
}

// WithCLIConfig returns an Option that applies global command-line flags on
// top of the file settings.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Goal:          ctx.String("goal"),
			StoreDriver:   ctx.String("store"),
			SessionCmd:    ctx.String("session-cmd"),
			DisableNotify: ctx.Bool("disable-notification"),
		}

		return applyCLIOptions(c, opts)
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) error {
	if opts.Goal != "" {
		seconds, err := timeutil.ParseDuration(strings.TrimSpace(opts.Goal))
		if err != nil {
			return errInvalidCLIGoal.Wrap(err)
		}

		c.Goal.Daily = opts.Goal
		c.Goal.Seconds = seconds
	}

	if opts.StoreDriver != "" {
		c.Store.Driver = opts.StoreDriver
	}

	if opts.SessionCmd != "" {
		c.Settings.SessionCmd = opts.SessionCmd
	}

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	return nil
}
