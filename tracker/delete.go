package tracker

import (
	"context"
	"log/slog"

	"github.com/ayoisaiah/forge/store"
)

// Delete removes a stored session.
func (t *Tracker) Delete(ctx context.Context, id int64) error {
	sess, err := t.db.GetSession(ctx, id)
	if err != nil {
		return ErrPersistence.Wrap(err)
	}

	if sess == nil {
		return ErrNotFound.Fmt(id)
	}

	err = t.commit(ctx, &store.Mutation{Delete: []int64{id}})
	if err != nil {
		return err
	}

	t.log.Info("session deleted", slog.Int64("id", id), slog.String("date", sess.Date))

	return nil
}
