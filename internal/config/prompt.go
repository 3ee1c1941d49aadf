package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"github.com/spf13/viper"
)

const asciiLogo = `
███████╗ ██████╗ ██████╗  ██████╗ ███████╗
██╔════╝██╔═══██╗██╔══██╗██╔════╝ ██╔════╝
█████╗  ██║   ██║██████╔╝██║  ███╗█████╗
██╔══╝  ██║   ██║██╔══██╗██║   ██║██╔══╝
██║     ╚██████╔╝██║  ██║╚██████╔╝███████╗
╚═╝      ╚═════╝ ╚═╝  ╚═╝ ╚═════╝ ╚══════╝`

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	Name      string
	DailyGoal string
	Driver    string
}

// WithPromptConfig returns an Option that asks for the main settings the
// first time forge runs and saves them to configPath. It does nothing when
// the file already exists or stdin is not a terminal.
func WithPromptConfig(configPath string) Option {
	return func(_ *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		if !interactive() {
			return nil
		}

		opts, err := promptUser()
		if err != nil {
			return fmt.Errorf("user prompt failed: %w", err)
		}

		return savePromptOptions(configPath, opts)
	}
}

func interactive() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}

	return fi.Mode()&os.ModeCharDevice != 0
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	opts := PromptOptions{Name: "You"}

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Follow the prompts below to configure forge for the first time.
Select your preferred value, or press ENTER to accept the defaults.
Edit the config file with 'forge edit-config' to change any settings.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Your name on the leaderboard").
				Value(&opts.Name),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Daily focus goal").
				Options(
					huh.NewOption("4 hours", "4h"),
					huh.NewOption("6 hours", "6h"),
					huh.NewOption("8 hours", "8h").Selected(true),
					huh.NewOption("10 hours", "10h"),
				).
				Value(&opts.DailyGoal),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Storage backend").
				Options(
					huh.NewOption("bbolt (single file, default)", "bolt").Selected(true),
					huh.NewOption("SQLite", "sqlite"),
				).
				Value(&opts.Driver),
		),
	)

	err := form.Run()
	if err != nil {
		return opts, fmt.Errorf("form interaction failed: %w", err)
	}

	return opts, nil
}

// savePromptOptions writes the defaults merged with the prompt responses so
// that WithViperConfig finds a complete file.
func savePromptOptions(configPath string, opts PromptOptions) error {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	setupViper(v)

	v.Set(keyLeaderboardName, opts.Name)
	v.Set(keyDailyGoal, opts.DailyGoal)
	v.Set(keyStoreDriver, opts.Driver)

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return errWriteConfig.Wrap(err)
	}

	if err := v.WriteConfig(); err != nil {
		return errWriteConfig.Wrap(err)
	}

	return nil
}
