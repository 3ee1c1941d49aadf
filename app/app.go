// Package app wires the forge commands to the tracker and reporting packages.
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/forge/internal/config"
	"github.com/ayoisaiah/forge/internal/models"
	"github.com/ayoisaiah/forge/stats"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

func listSortUsage() string {
	return "Sort by one of: " + joinKeys(
		string(models.SortDate),
		string(models.SortDateDesc),
		string(models.SortStartTime),
		string(models.SortStartTimeDesc),
		string(models.SortDuration),
		string(models.SortDurationDesc),
	) + " (default: date)"
}

func summarySortUsage() string {
	return "Sort by one of: " + joinKeys(stats.SortKeys...) + " (default: date-desc)"
}

// Get retrieves the forge app instance.
func Get() *cli.App {
	listSort := *sortFlag
	listSort.Usage = listSortUsage()

	summarySort := *sortFlag
	summarySort.Usage = summarySortUsage()

	forgeApp := &cli.App{
		Name: "forge",
		Authors: []*cli.Author{
			{
				Name:  "Ayooluwa Isaiah",
				Email: "ayo@freshman.tech",
			},
		},
		Usage: `
		Forge is a focus-session time tracker for the command-line. It records
		when you start and stop working, keeps sessions from overlapping, and
		reports how each day measured up against your daily goal.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Metadata:             make(map[string]any),
		Commands: []*cli.Command{
			{
				Name:   "start",
				Usage:  "Start a focus session",
				Flags:  []cli.Flag{watchFlag},
				Action: startAction,
			},
			{
				Name:   "stop",
				Usage:  "Stop the running session and record it",
				Action: stopAction,
			},
			{
				Name:      "add",
				Usage:     "Record a finished session manually (e.g. \"08:00 AM - 10:00 AM\")",
				ArgsUsage: "<range>",
				Action:    addAction,
			},
			{
				Name:   "list",
				Usage:  "List recorded sessions with their serial numbers",
				Flags:  append([]cli.Flag{&listSort, jsonFlag}, filterFlags()...),
				Action: listAction,
			},
			{
				Name:      "delete",
				Usage:     "Delete the session with the given serial number from the last list",
				ArgsUsage: "<serial>",
				Flags:     []cli.Flag{yesFlag},
				Action:    deleteAction,
			},
			{
				Name:      "edit",
				Usage:     "Change the date or times of the session with the given serial number",
				ArgsUsage: "<serial>",
				Flags:     []cli.Flag{editDateFlag, startTimeFlag, endTimeFlag},
				Action:    editAction,
			},
			{
				Name:  "summary",
				Usage: "Summarise focused time per day against the daily goal",
				Flags: append(
					[]cli.Flag{&summarySort, statusFlag, averageFlag, totalFlag, jsonFlag},
					filterFlags()...,
				),
				Action: summaryAction,
			},
			{
				Name:   "status",
				Usage:  "Print the running session and today's total",
				Flags:  []cli.Flag{watchFlag},
				Action: statusAction,
			},
			{
				Name:   "rank",
				Usage:  "Show today's leaderboard",
				Flags:  []cli.Flag{jsonFlag},
				Action: rankAction,
			},
			{
				Name:   "usage",
				Usage:  "Print usage examples",
				Action: usageAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
			{
				Name:   "seed",
				Usage:  "Fill a range of days with generated sessions",
				Hidden: true,
				Flags:  []cli.Flag{seedSinceFlag, seedUntilFlag},
				Action: seedAction,
			},
		},
		Flags: []cli.Flag{
			goalFlag,
			storeFlag,
			sessionCmdFlag,
			disableNotificationFlag,
			noColorFlag,
		},
		Before: beforeAction,
		After:  afterAction,
	}

	return forgeApp
}
