package app

import "github.com/urfave/cli/v2"

var (
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	goalFlag = &cli.StringFlag{
		Name:    "goal",
		Aliases: []string{"g"},
		Usage:   "Daily focus goal as a duration such as '8h' or '7h30m' (default: 8h)",
	}

	storeFlag = &cli.StringFlag{
		Name:  "store",
		Usage: "Storage backend to use: 'bolt' or 'sqlite' (default: bolt)",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:  "disable-notification",
		Usage: "Disable the system notification that appears when the daily goal is reached",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command when the daily goal is reached",
	}

	watchFlag = &cli.BoolFlag{
		Name:    "watch",
		Aliases: []string{"w"},
		Usage:   "Show a live view of the running session. Press 's' to stop it",
	}

	sortFlag = &cli.StringFlag{
		Name:  "sort",
		Usage: "Sort the results by the specified key",
	}

	dateFlag = &cli.StringFlag{
		Name:    "date",
		Aliases: []string{"d"},
		Usage:   "Filter by a single day (e.g. 2024-03-15, today, yesterday)",
	}

	sinceFlag = &cli.StringFlag{
		Name:    "since",
		Aliases: []string{"S"},
		Usage:   "Include records on or after this day, month or year (e.g. 2024-03, last_week)",
	}

	untilFlag = &cli.StringFlag{
		Name:    "until",
		Aliases: []string{"U"},
		Usage:   "Include records on or before this day, month or year (e.g. 2024, this_month)",
	}

	monthFlag = &cli.StringFlag{
		Name:    "month",
		Aliases: []string{"m"},
		Usage:   "Filter by a calendar month (e.g. 2024-03, last_month)",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the results as JSON",
	}

	statusFlag = &cli.StringFlag{
		Name:  "status",
		Usage: "Keep only days that 'passed' or 'failed' the daily goal",
	}

	averageFlag = &cli.StringFlag{
		Name:    "average",
		Aliases: []string{"avg"},
		Usage:   "Filter days by average session length (e.g. 'gte:1h', 'lt:30m')",
	}

	totalFlag = &cli.StringFlag{
		Name:  "total",
		Usage: "Filter days by total focused time (e.g. 'gt:6h')",
	}

	yesFlag = &cli.BoolFlag{
		Name:    "yes",
		Aliases: []string{"y"},
		Usage:   "Delete without asking for confirmation",
	}

	editDateFlag = &cli.StringFlag{
		Name:    "date",
		Aliases: []string{"d"},
		Usage:   "New date in YYYY-MM-DD format",
	}

	startTimeFlag = &cli.StringFlag{
		Name:    "start-time",
		Aliases: []string{"s"},
		Usage:   "New start time in HH:MM:SS format",
	}

	endTimeFlag = &cli.StringFlag{
		Name:    "end-time",
		Aliases: []string{"e"},
		Usage:   "New end time in HH:MM:SS format",
	}

	seedSinceFlag = &cli.StringFlag{
		Name:     "since",
		Usage:    "First day to fill (e.g. '2024-03-01', '2 weeks ago')",
		Required: true,
	}

	seedUntilFlag = &cli.StringFlag{
		Name:  "until",
		Usage: "Last day to fill (default: today)",
	}
)

// filterFlags are shared by list and summary.
func filterFlags() []cli.Flag {
	return []cli.Flag{dateFlag, sinceFlag, untilFlag, monthFlag}
}
