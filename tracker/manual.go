package tracker

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/ayoisaiah/forge/internal/models"
	"github.com/ayoisaiah/forge/internal/timeutil"
	"github.com/ayoisaiah/forge/store"
)

const meridiemLayout = "3:04 PM"

// parseMeridiem parses a 12-hour clock time such as "9:05 am".
func parseMeridiem(s string) (time.Time, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))

	// hour zero is not a valid 12-hour clock reading
	if strings.HasPrefix(s, "0:") || strings.HasPrefix(s, "00:") {
		return time.Time{}, false
	}

	t, err := time.Parse(meridiemLayout, s)
	if err != nil {
		return time.Time{}, false
	}

	return t, true
}

// AddManual records a finished session from a range such as
// "9:00 AM - 11:30 AM" anchored to today. A range from PM to AM is taken to
// begin yesterday and is stored as two records split at midnight.
func (t *Tracker) AddManual(
	ctx context.Context,
	rangeSpec string,
) ([]*models.Session, error) {
	startStr, endStr, ok := strings.Cut(rangeSpec, " - ")
	if !ok {
		return nil, ErrInvalidFormat.Fmt(rangeSpec)
	}

	startClock, ok := parseMeridiem(startStr)
	if !ok {
		return nil, ErrInvalidFormat.Fmt(rangeSpec)
	}

	endClock, ok := parseMeridiem(endStr)
	if !ok {
		return nil, ErrInvalidFormat.Fmt(rangeSpec)
	}

	now := t.now()
	at := func(day time.Time, clock time.Time) time.Time {
		return time.Date(
			day.Year(), day.Month(), day.Day(),
			clock.Hour(), clock.Minute(), 0, 0,
			now.Location(),
		)
	}

	startAt, endAt := at(now, startClock), at(now, endClock)

	var sessions []*models.Session

	switch {
	case endAt.After(startAt):
		sessions = []*models.Session{finishedBetween(startAt, endAt)}
	case startClock.Hour() >= 12 && endClock.Hour() < 12:
		startAt = at(now.AddDate(0, 0, -1), startClock)

		sessions = []*models.Session{
			finishedBetween(startAt, timeutil.RoundToEnd(startAt)),
		}

		// a range ending at 12:00 AM has nothing to record today
		if midnight := timeutil.RoundToStart(endAt); endAt.After(midnight) {
			sessions = append(sessions, finishedBetween(midnight, endAt))
		}
	default:
		return nil, ErrInvalidRange.Fmt("end time must be after start time")
	}

	for _, s := range sessions {
		err := t.checkOverlap(ctx, s.Date, s.StartTime, s.EndTime, 0)
		if err != nil {
			return nil, err
		}
	}

	err := t.commit(ctx, &store.Mutation{Insert: sessions})
	if err != nil {
		return nil, err
	}

	for _, s := range sessions {
		t.log.Info(
			"manual session added",
			slog.Int64("id", s.ID),
			slog.String("date", s.Date),
			slog.String("start", s.StartTime),
			slog.String("end", *s.EndTime),
		)
	}

	return sessions, nil
}

func finishedBetween(start, end time.Time) *models.Session {
	return &models.Session{
		Date:      timeutil.Date(start),
		StartTime: timeutil.Clock(start),
		EndTime:   models.String(timeutil.Clock(end)),
		Duration:  models.Int64(timeutil.SecondsBetween(start, end)),
	}
}
