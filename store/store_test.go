package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/forge/internal/models"
	"github.com/ayoisaiah/forge/store"
)

func openStores(t *testing.T) map[string]store.DB {
	t.Helper()

	stores := make(map[string]store.DB)

	for driver, file := range map[string]string{
		store.DriverBolt:   "forge.db",
		store.DriverSQLite: "forge.sqlite",
	} {
		db, err := store.Open(driver, filepath.Join(t.TempDir(), file))
		if err != nil {
			t.Fatalf("opening %s store: %v", driver, err)
		}

		t.Cleanup(func() {
			_ = db.Close()
		})

		stores[driver] = db
	}

	return stores
}

func finished(date, start, end string, duration int64) *models.Session {
	return &models.Session{
		Date:      date,
		StartTime: start,
		EndTime:   models.String(end),
		Duration:  models.Int64(duration),
	}
}

func ids(sessions []*models.Session) []int64 {
	out := make([]int64, len(sessions))

	for i := range sessions {
		out[i] = sessions[i].ID
	}

	return out
}

func TestCommitAssignsIncreasingIDs(t *testing.T) {
	ctx := context.Background()

	for driver, db := range openStores(t) {
		t.Run(driver, func(t *testing.T) {
			a := finished("2024-03-15", "08:00:00", "10:00:00", 7200)
			b := finished("2024-03-15", "11:00:00", "12:00:00", 3600)

			err := db.Commit(ctx, &store.Mutation{Insert: []*models.Session{a, b}})
			assert.NoError(t, err)
			assert.Equal(t, int64(1), a.ID)
			assert.Equal(t, int64(2), b.ID)

			// ids are never reused after deleting the newest record
			err = db.Commit(ctx, &store.Mutation{Delete: []int64{b.ID}})
			assert.NoError(t, err)

			c := finished("2024-03-16", "08:00:00", "09:00:00", 3600)

			err = db.Commit(ctx, &store.Mutation{Insert: []*models.Session{c}})
			assert.NoError(t, err)
			assert.Equal(t, int64(3), c.ID)

			got, err := db.GetSession(ctx, a.ID)
			assert.NoError(t, err)

			if diff := cmp.Diff(a, got); diff != "" {
				t.Errorf("GetSession() mismatch (-want +got):\n%s", diff)
			}

			missing, err := db.GetSession(ctx, b.ID)
			assert.NoError(t, err)
			assert.Nil(t, missing)
		})
	}
}

func TestCommitRollsBackOnMissingRow(t *testing.T) {
	ctx := context.Background()

	for driver, db := range openStores(t) {
		t.Run(driver, func(t *testing.T) {
			ghost := finished("2024-03-15", "08:00:00", "09:00:00", 3600)
			ghost.ID = 42

			err := db.Commit(ctx, &store.Mutation{
				Update: []*models.Session{ghost},
				Insert: []*models.Session{finished("2024-03-15", "10:00:00", "11:00:00", 3600)},
			})
			assert.ErrorIs(t, err, store.ErrNoRows)

			sessions, err := db.GetSessions(ctx, nil, "")
			assert.NoError(t, err)
			assert.Empty(t, sessions)

			err = db.Commit(ctx, &store.Mutation{Delete: []int64{7}})
			assert.ErrorIs(t, err, store.ErrNoRows)
		})
	}
}

func TestGetSessionsFilterAndSort(t *testing.T) {
	ctx := context.Background()

	for driver, db := range openStores(t) {
		t.Run(driver, func(t *testing.T) {
			rows := []*models.Session{
				finished("2024-03-15", "10:00:00", "11:00:00", 3600),
				finished("2024-02-28", "08:00:00", "08:30:00", 1800),
				finished("2024-03-01", "07:00:00", "09:00:00", 7200),
				{Date: "2024-03-16", StartTime: "09:00:00"},
				finished("2023-12-31", "22:00:00", "23:00:00", 3600),
			}

			err := db.Commit(ctx, &store.Mutation{Insert: rows})
			assert.NoError(t, err)

			testCases := []struct {
				Name     string
				Filter   *models.Filter
				Sort     models.SortKey
				Expected []int64
			}{
				{Name: "storage order", Expected: []int64{1, 2, 3, 4, 5}},
				{Name: "date", Sort: models.SortDate, Expected: []int64{5, 2, 3, 1, 4}},
				{Name: "date desc", Sort: models.SortDateDesc, Expected: []int64{4, 1, 3, 2, 5}},
				{Name: "start time", Sort: models.SortStartTime, Expected: []int64{3, 2, 4, 1, 5}},
				{Name: "duration", Sort: models.SortDuration, Expected: []int64{4, 2, 1, 5, 3}},
				{Name: "duration desc", Sort: models.SortDurationDesc, Expected: []int64{3, 1, 5, 2, 4}},
				{
					Name:     "single date",
					Filter:   &models.Filter{Date: "2024-03-15"},
					Expected: []int64{1},
				},
				{
					Name:     "month",
					Filter:   &models.Filter{Month: "2024-03"},
					Sort:     models.SortDate,
					Expected: []int64{3, 1, 4},
				},
				{
					Name:     "since month until day",
					Filter:   &models.Filter{Since: "2024-02", Until: "2024-03"},
					Sort:     models.SortDate,
					Expected: []int64{2, 3, 1, 4},
				},
				{
					Name:     "until year",
					Filter:   &models.Filter{Until: "2023"},
					Expected: []int64{5},
				},
			}

			for _, tc := range testCases {
				t.Run(tc.Name, func(t *testing.T) {
					got, err := db.GetSessions(ctx, tc.Filter, tc.Sort)
					assert.NoError(t, err)
					assert.Equal(t, tc.Expected, ids(got))
				})
			}

			running, err := db.RunningSession(ctx)
			assert.NoError(t, err)
			assert.Equal(t, int64(4), running.ID)
		})
	}
}

func TestSerialsAndMeta(t *testing.T) {
	ctx := context.Background()

	for driver, db := range openStores(t) {
		t.Run(driver, func(t *testing.T) {
			_, err := db.Serials(ctx)
			assert.ErrorIs(t, err, store.ErrNoSerials)

			assert.NoError(t, db.SaveSerials(ctx, []int64{9, 4, 7}))

			m, err := db.Serials(ctx)
			assert.NoError(t, err)
			assert.Equal(t, map[string]int64{"1": 9, "2": 4, "3": 7}, m)

			assert.NoError(t, db.SaveSerials(ctx, nil))

			m, err = db.Serials(ctx)
			assert.NoError(t, err)
			assert.Empty(t, m)

			cmd, err := db.LastCommand(ctx)
			assert.NoError(t, err)
			assert.Equal(t, "", cmd)

			assert.NoError(t, db.SetLastCommand(ctx, "list"))

			cmd, err = db.LastCommand(ctx)
			assert.NoError(t, err)
			assert.Equal(t, "list", cmd)
		})
	}
}

func TestLeaderboardUpsert(t *testing.T) {
	ctx := context.Background()

	for driver, db := range openStores(t) {
		t.Run(driver, func(t *testing.T) {
			err := db.UpsertLeaderboard(ctx,
				models.LeaderboardEntry{Date: "2024-03-15", Name: "Ivy", Duration: 100},
				models.LeaderboardEntry{Date: "2024-03-15", Name: "Arthur", Duration: 300},
				models.LeaderboardEntry{Date: "2024-03-14", Name: "Ivy", Duration: 900},
			)
			assert.NoError(t, err)

			err = db.UpsertLeaderboard(ctx,
				models.LeaderboardEntry{Date: "2024-03-15", Name: "Ivy", Duration: 500},
			)
			assert.NoError(t, err)

			got, err := db.Leaderboard(ctx, "2024-03-15")
			assert.NoError(t, err)
			assert.Equal(t, []models.LeaderboardEntry{
				{Date: "2024-03-15", Name: "Ivy", Duration: 500},
				{Date: "2024-03-15", Name: "Arthur", Duration: 300},
			}, got)
		})
	}
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := store.Open("postgres", filepath.Join(t.TempDir(), "x"))
	assert.ErrorIs(t, err, store.ErrUnknownDriver)
}

func TestOpenLockedBolt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forge.db")

	db, err := store.Open(store.DriverBolt, path)
	assert.NoError(t, err)

	t.Cleanup(func() {
		_ = db.Close()
	})

	_, err = store.Open(store.DriverBolt, path)
	assert.ErrorIs(t, err, store.ErrForgeRunning)
}
