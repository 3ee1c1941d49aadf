package app

import (
	"strconv"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/forge/internal/models"
	"github.com/ayoisaiah/forge/internal/ui"
	"github.com/ayoisaiah/forge/store"
	"github.com/ayoisaiah/forge/tracker"
)

// resolveSerial maps the serial argument to a session id. It fails unless
// the previous command was list.
func resolveSerial(
	ctx *cli.Context,
	args *serialArgs,
	tr *tracker.Tracker,
	db store.DB,
) (int64, error) {
	serial, err := strconv.Atoi(args.serial)
	if err != nil || serial < 1 {
		return 0, errInvalidSerial.Fmt(args.serial)
	}

	last, err := db.LastCommand(ctx.Context)
	if err != nil {
		return 0, tracker.ErrPersistence.Wrap(err)
	}

	if last != "list" {
		return 0, ErrListRequired.Fmt(ctx.Command.Name)
	}

	return tr.Serials().Resolve(ctx.Context, serial)
}

// editAction handles the edit command.
func editAction(ctx *cli.Context) error {
	args, err := parseSerialArgs(ctx)
	if err != nil {
		return err
	}

	e, err := env(ctx)
	if err != nil {
		return err
	}

	return e.withTracker(func(tr *tracker.Tracker, db store.DB) error {
		id, err := resolveSerial(ctx, args, tr, db)
		if err != nil {
			return err
		}

		res, err := tr.Edit(ctx.Context, id, tracker.EditRequest{
			Date:      args.String("date"),
			StartTime: args.String("start-time"),
			EndTime:   args.String("end-time"),
		})
		if err != nil {
			return err
		}

		if !res.Changed {
			pterm.Fprintln(e.out, pterm.Info.Sprint("No changes"))
			return nil
		}

		recordCommand(ctx, e, db)

		pterm.Fprintln(e.out, pterm.Success.Sprint("Session updated"))
		ui.PrintTable(ui.SessionRows([]*models.Session{res.Session}), e.out)

		return nil
	})
}
