package tracker

import (
	"context"
	"log/slog"
	"time"

	"github.com/ayoisaiah/forge/internal/models"
	"github.com/ayoisaiah/forge/internal/timeutil"
	"github.com/ayoisaiah/forge/store"
)

type (
	// EditRequest holds the fields to change. Nil fields keep their stored
	// value.
	EditRequest struct {
		Date      *string
		StartTime *string
		EndTime   *string
	}

	// EditResult reports the stored session after an edit.
	EditResult struct {
		Session *models.Session
		// Changed is false when the request matched the stored values.
		Changed bool
	}
)

func (r EditRequest) validate() error {
	if r.Date != nil {
		if _, err := timeutil.ParseDate(*r.Date, time.UTC); err != nil {
			return err
		}
	}

	for _, clock := range []*string{r.StartTime, r.EndTime} {
		if clock == nil {
			continue
		}

		if err := timeutil.ValidateClock(*clock); err != nil {
			return err
		}
	}

	return nil
}

func differs(v *string, current *string) bool {
	if v == nil {
		return false
	}

	return current == nil || *v != *current
}

func pick(v *string, current string) string {
	if v != nil {
		return *v
	}

	return current
}

// Edit changes the date or times of a stored session and recomputes its
// duration.
func (t *Tracker) Edit(
	ctx context.Context,
	id int64,
	req EditRequest,
) (*EditResult, error) {
	sess, err := t.db.GetSession(ctx, id)
	if err != nil {
		return nil, ErrPersistence.Wrap(err)
	}

	if sess == nil {
		return nil, ErrNotFound.Fmt(id)
	}

	err = req.validate()
	if err != nil {
		return nil, err
	}

	changed := differs(req.Date, &sess.Date) ||
		differs(req.StartTime, &sess.StartTime) ||
		differs(req.EndTime, sess.EndTime)
	if !changed {
		return &EditResult{Session: sess}, nil
	}

	end := req.EndTime
	if end == nil {
		end = sess.EndTime
	}

	if end == nil {
		return nil, ErrInvalidRange.Fmt("a running session needs an end time")
	}

	loc := t.now().Location()
	date := pick(req.Date, sess.Date)
	start := pick(req.StartTime, sess.StartTime)

	startAt, err := timeutil.Combine(date, start, loc)
	if err != nil {
		return nil, err
	}

	endAt, err := timeutil.Combine(date, *end, loc)
	if err != nil {
		return nil, err
	}

	if req.StartTime != nil && !startAt.Before(endAt) {
		if req.EndTime != nil {
			return nil, ErrInvalidRange.Fmt("start time must be before end time")
		}

		return nil, ErrInvalidRange.Fmt("start time must be before the original end time")
	}

	if endAt.Before(startAt) {
		endAt = endAt.AddDate(0, 0, 1)
	}

	if !endAt.After(startAt) {
		return nil, ErrInvalidRange.Fmt("end time must be after start time")
	}

	err = t.checkOverlap(ctx, date, start, end, id)
	if err != nil {
		return nil, err
	}

	updated := &models.Session{
		ID:        id,
		Date:      date,
		StartTime: start,
		EndTime:   models.String(*end),
		Duration:  models.Int64(timeutil.SecondsBetween(startAt, endAt)),
	}

	err = t.commit(ctx, &store.Mutation{Update: []*models.Session{updated}})
	if err != nil {
		return nil, err
	}

	t.log.Info(
		"session edited",
		slog.Int64("id", id),
		slog.String("date", date),
		slog.String("start", start),
		slog.String("end", *end),
	)

	return &EditResult{Session: updated, Changed: true}, nil
}
