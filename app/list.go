package app

import (
	"encoding/json"
	"io"
	"slices"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/forge/internal/models"
	"github.com/ayoisaiah/forge/internal/ui"
	"github.com/ayoisaiah/forge/stats"
	"github.com/ayoisaiah/forge/store"
	"github.com/ayoisaiah/forge/tracker"
)

var listSortKeys = []models.SortKey{
	models.SortDate,
	models.SortDateDesc,
	models.SortStartTime,
	models.SortStartTimeDesc,
	models.SortDuration,
	models.SortDurationDesc,
}

func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	pterm.Fprintln(w, string(b))

	return nil
}

// filterFromFlags resolves the shared date flags of list and summary.
func filterFromFlags(ctx *cli.Context, e *appEnv) (*models.Filter, error) {
	return stats.NewFilter(stats.FilterOptions{
		Date:  ctx.String("date"),
		Since: ctx.String("since"),
		Until: ctx.String("until"),
		Month: ctx.String("month"),
	}, e.now())
}

// listAction handles the list command. The printed serial numbers are the
// ones edit and delete accept afterwards.
func listAction(ctx *cli.Context) error {
	e, err := env(ctx)
	if err != nil {
		return err
	}

	sort := models.SortDate
	if ctx.IsSet("sort") {
		sort = models.SortKey(ctx.String("sort"))
		if !slices.Contains(listSortKeys, sort) {
			keys := make([]string, len(listSortKeys))
			for i := range listSortKeys {
				keys[i] = string(listSortKeys[i])
			}

			return errInvalidSortKey.Fmt(sort, joinKeys(keys...))
		}
	}

	filter, err := filterFromFlags(ctx, e)
	if err != nil {
		return err
	}

	return e.withTracker(func(tr *tracker.Tracker, db store.DB) error {
		sessions, err := tr.Serials().Rebuild(ctx.Context, filter, sort)
		if err != nil {
			return err
		}

		recordCommand(ctx, e, db)

		if ctx.Bool("json") {
			return printJSON(e.out, sessions)
		}

		if len(sessions) == 0 {
			pterm.Fprintln(e.out, pterm.Info.Sprint("No sessions found"))
			return nil
		}

		ui.PrintTable(ui.SessionRows(sessions), e.out)

		return nil
	})
}

// summaryAction handles the summary command and prints one row per day.
func summaryAction(ctx *cli.Context) error {
	e, err := env(ctx)
	if err != nil {
		return err
	}

	filter, err := filterFromFlags(ctx, e)
	if err != nil {
		return err
	}

	_, db, err := e.open()
	if err != nil {
		return err
	}

	defer db.Close()

	days, err := stats.Summarize(ctx.Context, db, stats.SummaryOptions{
		Filter:  filter,
		Status:  ctx.String("status"),
		Average: ctx.String("average"),
		Total:   ctx.String("total"),
		Sort:    ctx.String("sort"),
		Goal:    e.cfg.Goal.Seconds,
	})
	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		return printJSON(e.out, days)
	}

	if len(days) == 0 {
		pterm.Fprintln(e.out, pterm.Info.Sprint("No sessions found"))
		return nil
	}

	ui.PrintTable(ui.SummaryRows(days), e.out)

	return nil
}
