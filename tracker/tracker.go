// Package tracker implements the focus session lifecycle: starting and
// stopping the timer, recording manual sessions, and editing or deleting
// stored ones.
package tracker

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/ayoisaiah/forge/internal/models"
	"github.com/ayoisaiah/forge/internal/timeutil"
	"github.com/ayoisaiah/forge/store"
)

// DefaultGoal is the daily focus target in seconds (8 hours).
const DefaultGoal int64 = 8 * 60 * 60

type (
	// Tracker drives session state transitions against a store. Whether a
	// session is running is always read from the store.
	Tracker struct {
		db      store.DB
		now     func() time.Time
		log     *slog.Logger
		serials *Serials
		goal    int64
	}

	// Option configures a Tracker.
	Option func(*Tracker)

	// StopResult describes the records written when the timer stops.
	StopResult struct {
		// Sessions holds the finished record, or both halves of a session
		// that crossed midnight.
		Sessions []*models.Session
		// TodayTotal is the focused time recorded today after the stop.
		TodayTotal int64
		// GoalReached is set when this stop took today's total past the
		// daily goal.
		GoalReached bool
	}
)

// WithClock overrides the time source.
func WithClock(fn func() time.Time) Option {
	return func(t *Tracker) {
		t.now = fn
	}
}

// WithLogger sets the logger used for mutations.
func WithLogger(l *slog.Logger) Option {
	return func(t *Tracker) {
		t.log = l
	}
}

// WithGoal sets the daily goal in seconds.
func WithGoal(seconds int64) Option {
	return func(t *Tracker) {
		if seconds > 0 {
			t.goal = seconds
		}
	}
}

// New returns a Tracker backed by db.
func New(db store.DB, opts ...Option) *Tracker {
	t := &Tracker{
		db:   db,
		now:  time.Now,
		log:  slog.New(slog.DiscardHandler),
		goal: DefaultGoal,
	}

	for _, opt := range opts {
		opt(t)
	}

	t.serials = &Serials{db: t.db, log: t.log}

	return t
}

// Serials returns the serial number manager sharing the tracker's store.
func (t *Tracker) Serials() *Serials {
	return t.serials
}

// Running returns the open session, or nil if the timer is idle.
func (t *Tracker) Running(ctx context.Context) (*models.Session, error) {
	return t.db.RunningSession(ctx)
}

// Start opens a new session at the current time.
func (t *Tracker) Start(ctx context.Context) (*models.Session, error) {
	running, err := t.db.RunningSession(ctx)
	if err != nil {
		return nil, ErrPersistence.Wrap(err)
	}

	if running != nil {
		return nil, ErrAlreadyRunning.Fmt(running.Date, running.StartTime)
	}

	now := t.now()
	date, clock := timeutil.Date(now), timeutil.Clock(now)

	err = t.checkOverlap(ctx, date, clock, nil, 0)
	if err != nil {
		return nil, err
	}

	sess := &models.Session{
		Date:      date,
		StartTime: clock,
	}

	err = t.commit(ctx, &store.Mutation{Insert: []*models.Session{sess}})
	if err != nil {
		return nil, err
	}

	t.log.Info("session started", slog.Int64("id", sess.ID), slog.String("date", date), slog.String("start", clock))

	return sess, nil
}

// Stop closes the running session. A session started on an earlier day is
// split at midnight into two records written in the same transaction.
func (t *Tracker) Stop(ctx context.Context) (*StopResult, error) {
	running, err := t.db.RunningSession(ctx)
	if err != nil {
		return nil, ErrPersistence.Wrap(err)
	}

	if running == nil {
		return nil, ErrNotRunning
	}

	now := t.now()
	today := timeutil.Date(now)

	before, err := t.dayTotal(ctx, today)
	if err != nil {
		return nil, err
	}

	startedAt, err := timeutil.Combine(running.Date, running.StartTime, now.Location())
	if err != nil {
		return nil, ErrPersistence.Wrap(err)
	}

	var result *StopResult

	if running.Date < today {
		result, err = t.stopAcrossMidnight(ctx, running, startedAt, now)
	} else {
		result, err = t.stopSameDay(ctx, running, startedAt, now)
	}

	if err != nil {
		return nil, err
	}

	result.TodayTotal, err = t.dayTotal(ctx, today)
	if err != nil {
		return nil, err
	}

	result.GoalReached = before < t.goal && result.TodayTotal >= t.goal

	return result, nil
}

func (t *Tracker) stopSameDay(
	ctx context.Context,
	running *models.Session,
	startedAt, now time.Time,
) (*StopResult, error) {
	end := timeutil.Clock(now)

	duration := timeutil.SecondsBetween(startedAt, now)
	if duration < 0 {
		return nil, ErrInvalidRange.Fmt("the clock is behind the session start")
	}

	err := t.checkOverlap(ctx, running.Date, running.StartTime, &end, running.ID)
	if err != nil {
		if errors.Is(err, ErrOverlap) {
			return nil, ErrOverlap.Fmt(running.Date).Wrap(errStopBlocked)
		}

		return nil, err
	}

	finished := running.Clone()
	finished.EndTime = &end
	finished.Duration = &duration

	err = t.commit(ctx, &store.Mutation{Update: []*models.Session{finished}})
	if err != nil {
		return nil, err
	}

	t.log.Info(
		"session stopped",
		slog.Int64("id", finished.ID),
		slog.String("end", end),
		slog.Int64("duration", duration),
	)

	return &StopResult{Sessions: []*models.Session{finished}}, nil
}

func (t *Tracker) stopAcrossMidnight(
	ctx context.Context,
	running *models.Session,
	startedAt, now time.Time,
) (*StopResult, error) {
	first := running.Clone()
	first.EndTime = models.String(timeutil.EndOfDay)
	first.Duration = models.Int64(
		timeutil.SecondsBetween(startedAt, timeutil.RoundToEnd(startedAt)),
	)

	second := &models.Session{
		Date:      timeutil.Date(now),
		StartTime: timeutil.StartOfDay,
		EndTime:   models.String(timeutil.Clock(now)),
		Duration: models.Int64(
			timeutil.SecondsBetween(timeutil.RoundToStart(now), now),
		),
	}

	err := t.commit(ctx, &store.Mutation{
		Update: []*models.Session{first},
		Insert: []*models.Session{second},
	})
	if err != nil {
		return nil, err
	}

	t.log.Info(
		"session split at midnight",
		slog.Int64("id", first.ID),
		slog.Int64("new_id", second.ID),
		slog.Int64("first_duration", *first.Duration),
		slog.Int64("second_duration", *second.Duration),
	)

	return &StopResult{Sessions: []*models.Session{first, second}}, nil
}

// DayTotal returns the focused seconds recorded on date. Running sessions
// contribute nothing.
func (t *Tracker) DayTotal(ctx context.Context, date string) (int64, error) {
	return t.dayTotal(ctx, date)
}

func (t *Tracker) dayTotal(ctx context.Context, date string) (int64, error) {
	sessions, err := t.db.GetSessions(ctx, &models.Filter{Date: date}, "")
	if err != nil {
		return 0, ErrPersistence.Wrap(err)
	}

	var total int64

	for _, s := range sessions {
		if s.Duration != nil {
			total += *s.Duration
		}
	}

	return total, nil
}

// commit applies m and refreshes the serial mapping. A failed refresh is
// logged but does not undo the committed mutation.
func (t *Tracker) commit(ctx context.Context, m *store.Mutation) error {
	err := t.db.Commit(ctx, m)
	if err != nil {
		return ErrPersistence.Wrap(err)
	}

	_, err = t.serials.Rebuild(ctx, nil, models.SortDate)
	if err != nil {
		t.log.Error("rebuilding serial numbers", slog.Any("error", err))
	}

	return nil
}
