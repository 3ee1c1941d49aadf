package tracker

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/forge/internal/models"
	"github.com/ayoisaiah/forge/store"
)

// Serials maps the 1-based positions shown by the last listing to session
// ids.
type Serials struct {
	db  store.DB
	log *slog.Logger
}

// NewSerials returns a serial manager over db.
func NewSerials(db store.DB, l *slog.Logger) *Serials {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}

	return &Serials{db: db, log: l}
}

// Rebuild runs the listing query, numbers the rows in result order and
// replaces the stored mapping. The rows are returned for display.
func (s *Serials) Rebuild(
	ctx context.Context,
	filter *models.Filter,
	sort models.SortKey,
) ([]*models.Session, error) {
	if sort == "" {
		sort = models.SortDate
	}

	sessions, err := s.db.GetSessions(ctx, filter, sort)
	if err != nil {
		return nil, ErrPersistence.Wrap(err)
	}

	ids := make([]int64, len(sessions))
	for i := range sessions {
		ids[i] = sessions[i].ID
	}

	err = s.db.SaveSerials(ctx, ids)
	if err != nil {
		return nil, ErrPersistence.Wrap(err)
	}

	s.log.Debug("serial numbers rebuilt", slog.Int("count", len(ids)))

	if s.log.Enabled(ctx, slog.LevelDebug) {
		s.log.Debug(spew.Sdump(filter, ids))
	}

	return sessions, nil
}

// Resolve returns the session id behind a serial number.
func (s *Serials) Resolve(ctx context.Context, serial int) (int64, error) {
	m, err := s.db.Serials(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNoSerials) {
			return 0, ErrMappingMissing
		}

		return 0, ErrPersistence.Wrap(err)
	}

	id, ok := m[strconv.Itoa(serial)]
	if !ok {
		return 0, ErrUnknownSerial.Fmt(serial)
	}

	return id, nil
}
