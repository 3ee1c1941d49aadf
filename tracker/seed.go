package tracker

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/ayoisaiah/forge/internal/models"
	"github.com/ayoisaiah/forge/internal/timeutil"
	"github.com/ayoisaiah/forge/store"
)

const (
	seedDayStart = 8 * time.Hour
	seedDayEnd   = 23*time.Hour + 45*time.Minute
)

func randomMinutes(r *rand.Rand, lo, hi int) time.Duration {
	return time.Duration(lo+r.IntN(hi-lo+1)) * time.Minute
}

// SeedDay generates back-to-back study sessions of 20 to 40 minutes with
// 30 to 45 minute gaps, between 08:00 and 23:45 on day.
func SeedDay(day time.Time, r *rand.Rand) []*models.Session {
	midnight := timeutil.RoundToStart(day)
	start := midnight.Add(seedDayStart)
	limit := midnight.Add(seedDayEnd)

	var sessions []*models.Session

	for start.Before(limit) {
		end := start.Add(randomMinutes(r, 20, 40))
		if end.After(limit) {
			break
		}

		sessions = append(sessions, finishedBetween(start, end))

		start = end.Add(randomMinutes(r, 30, 45))
	}

	return sessions
}

// Seed fills every day from since to until inclusive with generated sessions
// in a single transaction. Nothing is written if any generated session
// overlaps a stored one.
func (t *Tracker) Seed(
	ctx context.Context,
	since, until time.Time,
	r *rand.Rand,
) ([]*models.Session, error) {
	if r == nil {
		r = rand.New(rand.NewPCG(uint64(t.now().UnixNano()), 0))
	}

	since, until = timeutil.RoundToStart(since), timeutil.RoundToStart(until)

	if until.Before(since) {
		return nil, ErrInvalidRange.Fmt("the end date cannot be before the start date")
	}

	var sessions []*models.Session

	for day := since; !day.After(until); day = day.AddDate(0, 0, 1) {
		generated := SeedDay(day, r)

		for _, s := range generated {
			err := t.checkOverlap(ctx, s.Date, s.StartTime, s.EndTime, 0)
			if err != nil {
				return nil, err
			}
		}

		sessions = append(sessions, generated...)
	}

	err := t.commit(ctx, &store.Mutation{Insert: sessions})
	if err != nil {
		return nil, err
	}

	t.log.Info(
		"seeded sessions",
		slog.Int("count", len(sessions)),
		slog.String("since", timeutil.Date(since)),
		slog.String("until", timeutil.Date(until)),
	)

	return sessions, nil
}
