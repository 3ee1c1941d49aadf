package app

import (
	"context"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/forge/internal/models"
	"github.com/ayoisaiah/forge/internal/ui"
	"github.com/ayoisaiah/forge/store"
	"github.com/ayoisaiah/forge/tracker"
)

// confirm asks the user before a session is deleted. Tests replace it.
var confirm = func(ctx context.Context, sess *models.Session) (bool, error) {
	var ok bool

	err := huh.NewConfirm().
		Title("Delete the session on " + sess.Date + " starting at " + sess.StartTime + "?").
		Description("This cannot be undone.").
		Affirmative("Delete").
		Negative("Cancel").
		Value(&ok).
		Run()
	if err != nil {
		return false, err
	}

	return ok, ctx.Err()
}

// deleteAction handles the delete command.
func deleteAction(ctx *cli.Context) error {
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

		sess, err := db.GetSession(ctx.Context, id)
		if err != nil {
			return tracker.ErrPersistence.Wrap(err)
		}

		if sess == nil {
			return tracker.ErrNotFound.Fmt(id)
		}

		if !args.Bool("yes") {
			ui.PrintTable(ui.SessionRows([]*models.Session{sess}), e.out)

			ok, err := confirm(ctx.Context, sess)
			if err != nil {
				return err
			}

			if !ok {
				return errDeleteCancelled
			}
		}

		err = tr.Delete(ctx.Context, id)
		if err != nil {
			return err
		}

		recordCommand(ctx, e, db)

		pterm.Fprintln(e.out, pterm.Success.Sprint("Session deleted"))

		return nil
	})
}
