package app

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/forge/internal/config"
	"github.com/ayoisaiah/forge/internal/models"
	"github.com/ayoisaiah/forge/internal/notify"
	"github.com/ayoisaiah/forge/internal/testutil"
	"github.com/ayoisaiah/forge/store"
	"github.com/ayoisaiah/forge/tracker"
)

func init() {
	disableStyling()
}

type harness struct {
	env *appEnv
	out *bytes.Buffer
	now time.Time
}

func newHarness(t *testing.T, now time.Time) *harness {
	t.Helper()

	h := &harness{
		out: &bytes.Buffer{},
		now: now,
	}

	h.env = &appEnv{
		cfg: &config.Config{
			Goal:  config.GoalConfig{Daily: "8h", Seconds: 8 * 60 * 60},
			Store: config.StoreConfig{Driver: store.DriverBolt},
			Log:   config.LogConfig{Level: "info"},
			Leaderboard: config.LeaderboardConfig{
				Name:   "You",
				Rivals: []string{"Ivy", "Arthur"},
			},
		},
		log:      slog.New(slog.DiscardHandler),
		notifier: notify.New(false, ""),
		now:      func() time.Time { return h.now },
		out:      h.out,
		dbPath:   filepath.Join(t.TempDir(), "forge.db"),
	}

	return h
}

func (h *harness) run(args ...string) error {
	h.out.Reset()

	a := Get()
	a.Metadata[envKey] = h.env
	a.Writer = h.out

	return a.Run(append([]string{"forge"}, args...))
}

// seed writes sessions directly to the store and closes it again.
func (h *harness) seed(t *testing.T, sessions ...*models.Session) {
	t.Helper()

	db, err := store.Open(h.env.cfg.Store.Driver, h.env.dbPath)
	if err != nil {
		t.Fatal(err)
	}

	defer db.Close()

	err = db.Commit(context.Background(), &store.Mutation{Insert: sessions})
	if err != nil {
		t.Fatal(err)
	}
}

func at(clock string) time.Time {
	t, err := time.ParseInLocation(time.DateTime, clock, time.Local)
	if err != nil {
		panic(err)
	}

	return t
}

func TestStartStopStatus(t *testing.T) {
	h := newHarness(t, at("2024-03-15 09:00:00"))

	assert.NoError(t, h.run("start"))
	assert.Contains(t, h.out.String(), "Session started at 09:00:00 on 2024-03-15")

	err := h.run("start")
	assert.ErrorIs(t, err, tracker.ErrAlreadyRunning)

	h.now = h.now.Add(90 * time.Minute)

	assert.NoError(t, h.run("status"))
	assert.Contains(t, h.out.String(), "Session running since 2024-03-15 09:00:00 (01:30:00)")

	assert.NoError(t, h.run("stop"))
	assert.Contains(t, h.out.String(), "10:30:00")
	assert.Contains(t, h.out.String(), "Today's total: 01:30:00 / 08:00:00")

	assert.ErrorIs(t, h.run("stop"), tracker.ErrNotRunning)

	assert.NoError(t, h.run("status"))
	assert.Contains(t, h.out.String(), "No session is running")
}

func TestStopReportsGoal(t *testing.T) {
	h := newHarness(t, at("2024-03-15 17:00:00"))
	h.seed(t, testutil.Finished("2024-03-15", "08:00:00", "15:30:00", 27000))

	assert.NoError(t, h.run("start"))

	h.now = h.now.Add(time.Hour)

	assert.NoError(t, h.run("stop"))
	assert.Contains(t, h.out.String(), "Daily goal reached!")
}

func TestAdd(t *testing.T) {
	h := newHarness(t, at("2024-03-15 12:00:00"))

	assert.NoError(t, h.run("add", "08:00 AM - 10:00 AM"))
	assert.Contains(t, h.out.String(), "02:00:00")

	assert.ErrorIs(t, h.run("add", "09:00 AM - 09:30 AM"), tracker.ErrOverlap)
	assert.ErrorIs(t, h.run("add", "8 - 10"), tracker.ErrInvalidFormat)
	assert.ErrorIs(t, h.run("add"), errMissingArg)
}

func TestListJSON(t *testing.T) {
	h := newHarness(t, at("2024-03-15 12:00:00"))

	a := testutil.Finished("2024-03-14", "08:00:00", "09:00:00", 3600)
	b := testutil.Finished("2024-03-15", "07:00:00", "07:30:00", 1800)
	c := testutil.Finished("2024-03-13", "10:00:00", "12:00:00", 7200)
	h.seed(t, a, b, c)

	assert.NoError(t, h.run("list", "--json", "--sort", "duration-desc", "--since", "2024-03-14"))

	var got []*models.Session

	assert.NoError(t, json.Unmarshal(h.out.Bytes(), &got))

	if diff := cmp.Diff([]*models.Session{a, b}, got); diff != "" {
		t.Errorf("list --json mismatch (-want +got):\n%s", diff)
	}

	assert.ErrorIs(t, h.run("list", "--sort", "size"), errInvalidSortKey)
}

func TestEditAndDeleteNeedFreshList(t *testing.T) {
	h := newHarness(t, at("2024-03-15 12:00:00"))
	h.seed(t,
		testutil.Finished("2024-03-14", "08:00:00", "09:00:00", 3600),
		testutil.Finished("2024-03-15", "07:00:00", "07:30:00", 1800),
	)

	assert.ErrorIs(t, h.run("delete", "1", "--yes"), ErrListRequired)

	assert.NoError(t, h.run("list"))
	assert.NoError(t, h.run("edit", "2", "--end-time", "08:00:00"))
	assert.Contains(t, h.out.String(), "Session updated")
	assert.Contains(t, h.out.String(), "01:00:00")

	assert.ErrorIs(t, h.run("edit", "2", "--end-time", "08:30:00"), ErrListRequired)

	assert.NoError(t, h.run("list"))
	assert.ErrorIs(t, h.run("delete", "3", "--yes"), tracker.ErrUnknownSerial)
	assert.ErrorIs(t, h.run("delete", "x", "--yes"), errInvalidSerial)

	assert.NoError(t, h.run("list"))
	assert.NoError(t, h.run("delete", "1", "--yes"))
	assert.Contains(t, h.out.String(), "Session deleted")

	assert.NoError(t, h.run("list", "--json"))

	var left []*models.Session

	assert.NoError(t, json.Unmarshal(h.out.Bytes(), &left))
	assert.Len(t, left, 1)
	assert.Equal(t, "2024-03-15", left[0].Date)
	assert.Equal(t, models.String("08:00:00"), left[0].EndTime)
}

func TestSerialCommandFlagPlacement(t *testing.T) {
	testCases := []struct {
		Name     string
		Args     []string
		Expected string
		Err      error
	}{
		{
			Name:     "flag after serial",
			Args:     []string{"edit", "1", "--end-time", "08:00:00"},
			Expected: "08:00:00",
		},
		{
			Name:     "flag before serial",
			Args:     []string{"edit", "--end-time", "08:00:00", "1"},
			Expected: "08:00:00",
		},
		{
			Name:     "short alias after serial",
			Args:     []string{"edit", "1", "-s", "06:30:00"},
			Expected: "06:30:00",
		},
		{
			Name:     "mixed placement",
			Args:     []string{"edit", "-s", "06:30:00", "1", "-e", "08:00:00"},
			Expected: "01:30:00",
		},
		{
			Name: "unknown flag after serial",
			Args: []string{"edit", "1", "--colour", "red"},
			Err:  errInvalidArgs,
		},
		{
			Name: "extra argument",
			Args: []string{"edit", "1", "2"},
			Err:  errUnexpectedArg,
		},
		{
			Name:     "yes after serial",
			Args:     []string{"delete", "1", "--yes"},
			Expected: "Session deleted",
		},
		{
			Name:     "yes alias after serial",
			Args:     []string{"delete", "1", "-y"},
			Expected: "Session deleted",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			h := newHarness(t, at("2024-03-15 12:00:00"))
			h.seed(t, testutil.Finished("2024-03-15", "07:00:00", "07:30:00", 1800))

			orig := confirm
			t.Cleanup(func() { confirm = orig })

			confirm = func(context.Context, *models.Session) (bool, error) {
				t.Fatal("confirmation prompt shown")
				return false, nil
			}

			assert.NoError(t, h.run("list"))

			err := h.run(tc.Args...)
			if tc.Err != nil {
				assert.ErrorIs(t, err, tc.Err)
				return
			}

			assert.NoError(t, err)
			assert.NotContains(t, h.out.String(), "No changes")
			assert.Contains(t, h.out.String(), tc.Expected)
		})
	}
}

func TestEditNoChanges(t *testing.T) {
	h := newHarness(t, at("2024-03-15 12:00:00"))
	h.seed(t, testutil.Finished("2024-03-15", "07:00:00", "07:30:00", 1800))

	assert.NoError(t, h.run("list"))
	assert.NoError(t, h.run("edit", "1", "--start-time", "07:00:00"))
	assert.Contains(t, h.out.String(), "No changes")

	// an unchanged edit leaves the listing usable
	assert.NoError(t, h.run("edit", "1", "--start-time", "06:45:00"))
}

func TestDeleteCancelled(t *testing.T) {
	h := newHarness(t, at("2024-03-15 12:00:00"))
	h.seed(t, testutil.Finished("2024-03-15", "07:00:00", "07:30:00", 1800))

	orig := confirm
	t.Cleanup(func() { confirm = orig })

	confirm = func(context.Context, *models.Session) (bool, error) {
		return false, nil
	}

	assert.NoError(t, h.run("list"))
	assert.ErrorIs(t, h.run("delete", "1"), errDeleteCancelled)
	assert.Contains(t, h.out.String(), "07:30:00")
}

func TestSummaryJSON(t *testing.T) {
	h := newHarness(t, at("2024-03-15 12:00:00"))
	h.seed(t,
		testutil.Finished("2024-03-14", "08:00:00", "16:00:00", 28800),
		testutil.Finished("2024-03-15", "07:00:00", "08:00:00", 3600),
		testutil.Finished("2024-03-15", "09:00:00", "10:00:00", 3600),
	)

	assert.NoError(t, h.run("summary", "--json", "--sort", "total"))

	var got []models.DaySummary

	assert.NoError(t, json.Unmarshal(h.out.Bytes(), &got))
	assert.Equal(t, []models.DaySummary{
		{Date: "2024-03-15", Status: models.Failed, Count: 2, Average: 3600, Total: 7200},
		{Date: "2024-03-14", Status: models.Passed, Count: 1, Average: 28800, Total: 28800},
	}, got)

	err := h.run("summary", "--average", "about:1h")
	assert.Error(t, err)
}

func TestRank(t *testing.T) {
	h := newHarness(t, at("2024-03-15 12:00:00"))
	h.seed(t, testutil.Finished("2024-03-15", "07:00:00", "08:00:00", 3600))

	assert.NoError(t, h.run("rank", "--json"))

	var entries []models.LeaderboardEntry

	assert.NoError(t, json.Unmarshal(h.out.Bytes(), &entries))
	assert.Len(t, entries, 3)
	assert.Equal(t, models.LeaderboardEntry{Date: "2024-03-15", Name: "You", Duration: 3600}, entries[2])
}

func TestSeedCommand(t *testing.T) {
	h := newHarness(t, at("2024-03-15 12:00:00"))

	assert.NoError(t, h.run("seed", "--since", "2024-03-13", "--until", "2024-03-14"))
	assert.Contains(t, h.out.String(), "from 2024-03-13 to 2024-03-14")

	assert.NoError(t, h.run("list", "--json", "--date", "2024-03-15"))
	assert.Equal(t, "null", string(bytes.TrimSpace(h.out.Bytes())))
}

func TestUsage(t *testing.T) {
	h := newHarness(t, at("2024-03-15 12:00:00"))

	assert.NoError(t, h.run("usage"))
	assert.Contains(t, h.out.String(), `forge add "08:00 AM - 10:00 AM"`)
	assert.Contains(t, h.out.String(), "forge edit 2 --date 2025-02-10")
	assert.Contains(t, h.out.String(), "Summary")
}
