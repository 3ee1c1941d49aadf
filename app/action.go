package app

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"

	"github.com/kballard/go-shellquote"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/forge/internal/models"
	"github.com/ayoisaiah/forge/internal/osutil"
	"github.com/ayoisaiah/forge/internal/timeutil"
	"github.com/ayoisaiah/forge/internal/ui"
	"github.com/ayoisaiah/forge/internal/ui/live"
	"github.com/ayoisaiah/forge/stats"
	"github.com/ayoisaiah/forge/store"
	"github.com/ayoisaiah/forge/tracker"
)

const (
	envNoColor      = "NO_COLOR"
	envForgeNoColor = "FORGE_NO_COLOR"
)

// recordCommand stores the name of the command that just succeeded so that
// edit and delete can tell whether the serial numbers are fresh.
func recordCommand(ctx *cli.Context, e *appEnv, db store.DB) {
	err := db.SetLastCommand(ctx.Context, ctx.Command.Name)
	if err != nil {
		e.log.WarnContext(
			ctx.Context,
			"unable to record last command",
			slog.String("command", ctx.Command.Name),
			slog.Any("error", err),
		)
	}
}

// reportStop prints the finished records and fires the goal notification
// when the stop pushed today's total past the goal.
func reportStop(ctx *cli.Context, e *appEnv, res *tracker.StopResult) {
	pterm.Fprintln(e.out, pterm.Success.Sprint("Session stopped"))

	ui.PrintTable(ui.SessionRows(res.Sessions), e.out)

	pterm.Fprintln(
		e.out,
		fmt.Sprintf(
			"Today's total: %s / %s",
			ui.Highlight(timeutil.FormatSeconds(&res.TodayTotal)),
			timeutil.FormatSeconds(&e.cfg.Goal.Seconds),
		),
	)

	if !res.GoalReached {
		return
	}

	pterm.Fprintln(e.out, ui.Green("Daily goal reached!"))

	err := e.notifier.GoalReached(ctx.Context, res.TodayTotal, e.cfg.Goal.Seconds)
	if err != nil {
		e.log.WarnContext(ctx.Context, "goal notification failed", slog.Any("error", err))
	}
}

// startAction handles the start command.
func startAction(ctx *cli.Context) error {
	e, err := env(ctx)
	if err != nil {
		return err
	}

	err = e.withTracker(func(tr *tracker.Tracker, db store.DB) error {
		sess, err := tr.Start(ctx.Context)
		if err != nil {
			return err
		}

		recordCommand(ctx, e, db)

		pterm.Fprintln(
			e.out,
			pterm.Success.Sprintf("Session started at %s on %s", sess.StartTime, sess.Date),
		)

		return nil
	})
	if err != nil {
		return err
	}

	if ctx.Bool("watch") {
		return watch(ctx, e)
	}

	return nil
}

// stopAction handles the stop command.
func stopAction(ctx *cli.Context) error {
	e, err := env(ctx)
	if err != nil {
		return err
	}

	return e.withTracker(func(tr *tracker.Tracker, db store.DB) error {
		res, err := tr.Stop(ctx.Context)
		if err != nil {
			return err
		}

		recordCommand(ctx, e, db)
		reportStop(ctx, e, res)

		return nil
	})
}

// addAction handles the add command which records a finished session from a
// range such as "08:00 AM - 10:00 AM".
func addAction(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return errMissingArg.Fmt("time range")
	}

	e, err := env(ctx)
	if err != nil {
		return err
	}

	return e.withTracker(func(tr *tracker.Tracker, db store.DB) error {
		sessions, err := tr.AddManual(ctx.Context, ctx.Args().First())
		if err != nil {
			return err
		}

		recordCommand(ctx, e, db)

		pterm.Fprintln(e.out, pterm.Success.Sprint("Session added"))
		ui.PrintTable(ui.SessionRows(sessions), e.out)

		return nil
	})
}

// statusAction handles the status command and prints the running session.
func statusAction(ctx *cli.Context) error {
	e, err := env(ctx)
	if err != nil {
		return err
	}

	var running *models.Session

	err = e.withTracker(func(tr *tracker.Tracker, _ store.DB) error {
		now := e.now()

		r, err := tr.Running(ctx.Context)
		if err != nil {
			return err
		}

		running = r

		today, err := tr.DayTotal(ctx.Context, timeutil.Date(now))
		if err != nil {
			return err
		}

		if running == nil {
			pterm.Fprintln(e.out, pterm.Info.Sprint("No session is running"))
		} else {
			elapsed := live.Elapsed(running, now)
			pterm.Fprintln(
				e.out,
				pterm.Info.Sprintf(
					"Session running since %s %s (%s)",
					running.Date,
					running.StartTime,
					ui.Cyan(timeutil.FormatSeconds(&elapsed)),
				),
			)
		}

		pterm.Fprintln(
			e.out,
			fmt.Sprintf(
				"Today's total: %s / %s",
				ui.Highlight(timeutil.FormatSeconds(&today)),
				timeutil.FormatSeconds(&e.cfg.Goal.Seconds),
			),
		)

		return nil
	})
	if err != nil {
		return err
	}

	if running != nil && ctx.Bool("watch") {
		return watch(ctx, e)
	}

	return nil
}

// rankAction handles the rank command which prints today's leaderboard.
func rankAction(ctx *cli.Context) error {
	e, err := env(ctx)
	if err != nil {
		return err
	}

	_, db, err := e.open()
	if err != nil {
		return err
	}

	defer db.Close()

	entries, err := stats.Leaderboard(ctx.Context, db, stats.LeaderboardOptions{
		Date:   timeutil.Date(e.now()),
		Name:   e.cfg.Leaderboard.Name,
		Rivals: e.cfg.Leaderboard.Rivals,
	})
	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		return printJSON(e.out, entries)
	}

	ui.PrintTable(ui.LeaderboardRows(entries, e.cfg.Leaderboard.Name), e.out)

	return nil
}

// seedAction fills a range of days with generated sessions.
func seedAction(ctx *cli.Context) error {
	e, err := env(ctx)
	if err != nil {
		return err
	}

	now := e.now()

	since, err := timeutil.FromStr(ctx.String("since"), now)
	if err != nil {
		return err
	}

	until := now
	if ctx.IsSet("until") {
		until, err = timeutil.FromStr(ctx.String("until"), now)
		if err != nil {
			return err
		}
	}

	return e.withTracker(func(tr *tracker.Tracker, db store.DB) error {
		sessions, err := tr.Seed(ctx.Context, since, until, nil)
		if err != nil {
			return err
		}

		recordCommand(ctx, e, db)

		pterm.Fprintln(
			e.out,
			pterm.Success.Sprintf(
				"Seeded %d sessions from %s to %s",
				len(sessions),
				timeutil.Date(since),
				timeutil.Date(until),
			),
		)

		return nil
	})
}

// usageAction prints worked examples of each command.
func usageAction(ctx *cli.Context) error {
	pterm.Fprint(ctx.App.Writer, usageText())

	return nil
}

// editConfigAction handles the edit-config command which opens the forge
// config file in the user's default text editor.
func editConfigAction(ctx *cli.Context) error {
	e, err := env(ctx)
	if err != nil {
		return err
	}

	// editors such as "code --wait" carry their own arguments
	args, err := shellquote.Split(osutil.Editor())
	if err != nil {
		return err
	}

	args = append(args, e.cfg.PathToConfig)

	cmd := exec.CommandContext(ctx.Context, args[0], args[1:]...)

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	// Override the default version printer
	oldVersionPrinter := cli.VersionPrinter
	cli.VersionPrinter = func(c *cli.Context) {
		oldVersionPrinter(c)
		fmt.Fprintf(
			c.App.Writer,
			"https://github.com/ayoisaiah/forge/releases/%s\n",
			c.App.Version,
		)
	}

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if FORGE_NO_COLOR is set
	if _, exists := os.LookupEnv(envForgeNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}

func afterAction(ctx *cli.Context) error {
	e, ok := ctx.App.Metadata[envKey].(*appEnv)
	if !ok {
		return nil
	}

	e.log.InfoContext(ctx.Context, "exiting forge")
	e.close()

	return nil
}
