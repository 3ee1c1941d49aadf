package app

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

func joinKeys(keys ...string) string {
	return strings.Join(keys, ", ")
}

func helpText() string {
	description := fmt.Sprintf(
		"%s\n\t\t{{.Usage}}\n\n",
		pterm.Yellow("DESCRIPTION"),
	)

	usage := fmt.Sprintf(
		"%s\n\t\t{{.HelpName}} {{if .UsageText}}{{ .UsageText }}{{end}}\n\n",
		pterm.Yellow("USAGE"),
	)

	author := fmt.Sprintf(
		"{{if len .Authors}}%s\n\t\t{{range .Authors}}{{ . }}{{end}}{{end}}\n\n",
		pterm.Yellow("AUTHOR"),
	)

	version := fmt.Sprintf(
		"{{if .Version}}%s\n\t\t{{.Version}}{{end}}\n\n",
		pterm.Yellow("VERSION"),
	)

	commands := fmt.Sprintf(
		"%s\n{{range .VisibleCommands}}   %s{{ `\t`}}{{.Usage}}{{ `\n` }}{{end}}\n\n",
		pterm.Yellow("COMMANDS"),
		pterm.Green("{{join .Names `, `}}"),
	)

	options := fmt.Sprintf(
		"%s\n{{range .VisibleFlags}}\t\t{{if .Aliases}}{{range $element := .Aliases}}%s,{{end}}{{end}} %s\n\t\t\t\t{{.Usage}}\n\n{{end}}",
		pterm.Yellow("OPTIONS"),
		pterm.Green("-{{$element}}"),
		pterm.Green("--{{.Name}} {{.DefaultText}}"),
	)

	env := fmt.Sprintf(
		"%s\n\t\t%s\n\n",
		pterm.Yellow("ENVIRONMENTAL VARIABLES"),
		envHelp(),
	)

	website := fmt.Sprintf(
		"%s\n\t\thttps://github.com/ayoisaiah/forge\n",
		pterm.Yellow("WEBSITE"),
	)

	return description + usage + author + version + commands + options + env + website
}

func envHelp() string {
	return `
FORGE_NO_COLOR, NO_COLOR: set to any value to avoid printing ANSI escape sequences for color output.

FORGE_ENV: set to a name such as 'dev' to use a separate config file and database (config_dev.yml, forge_dev.db).`
}

type usageSection struct {
	title    string
	examples []string
}

var usageSections = []usageSection{
	{
		title:    "Auto start/stop",
		examples: []string{"forge start", "forge start --watch", "forge stop", "forge status"},
	},
	{
		title:    "Manual start/stop",
		examples: []string{`forge add "08:00 AM - 10:00 AM"`, `forge add "11:30 PM - 1:15 AM"`},
	},
	{
		title: "List sessions",
		examples: []string{
			"forge list",
			"forge list --date 2024-03-15",
			"forge list -d yesterday",
			"forge list --month 2024-03",
			"forge list -S last_week -U today --sort duration-desc",
		},
	},
	{
		title:    "Delete session",
		examples: []string{"forge delete 3", "forge delete 3 --yes"},
	},
	{
		title: "Edit session",
		examples: []string{
			"forge edit 2 --start-time 08:30:00",
			"forge edit 2 --end-time 17:00:00",
			"forge edit 2 --date 2025-02-10",
		},
	},
	{
		title: "Summary",
		examples: []string{
			"forge summary",
			"forge summary -d 2024-03-15",
			"forge summary -m this_month --status failed",
			"forge summary --average gte:1h --total lt:6h --sort total-desc",
		},
	},
	{
		title:    "Leaderboard",
		examples: []string{"forge rank"},
	},
}

// usageText renders worked examples for every command. Edit and delete
// take the serial numbers printed by the most recent list.
func usageText() string {
	var b strings.Builder

	for _, s := range usageSections {
		fmt.Fprintf(&b, "\n%s\n\n", pterm.Yellow(s.title))

		for _, ex := range s.examples {
			fmt.Fprintf(&b, "  %s\n", ex)
		}
	}

	b.WriteString("\n")

	return b.String()
}
