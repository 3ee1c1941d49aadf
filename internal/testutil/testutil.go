package testutil

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/ayoisaiah/forge/internal/models"
	"github.com/ayoisaiah/forge/internal/osutil"
	"github.com/ayoisaiah/forge/store"
)

type GoldenTest interface {
	Output() ([]byte, string)
}

// CompareGoldenFile verifies that the output of an operation matches
// the expected output.
func CompareGoldenFile(t *testing.T, tc GoldenTest) {
	t.Helper()

	if runtime.GOOS == osutil.Windows {
		// TODO: need to sort out line endings
		t.Skip("skipping golden file test in Windows")
	}

	g := goldie.New(
		t,
		goldie.WithFixtureDir("testdata"),
	)

	snap, golden := tc.Output()

	if snap != nil {
		g.Assert(t, golden, snap)
		return
	}

	f := filepath.Join("testdata", golden+".golden")
	if _, err := os.Stat(f); err == nil || errors.Is(err, os.ErrExist) {
		t.Fatalf("expected no output, but golden file exists: %s", f)
	}
}

// NewStore opens a throwaway store of the given driver in a temporary
// directory and seeds it with sessions.
func NewStore(t *testing.T, driver string, sessions ...*models.Session) store.DB {
	t.Helper()

	db, err := store.Open(driver, filepath.Join(t.TempDir(), "forge-"+driver))
	if err != nil {
		t.Fatalf("opening %s store: %v", driver, err)
	}

	t.Cleanup(func() {
		_ = db.Close()
	})

	if len(sessions) == 0 {
		return db
	}

	err = db.Commit(context.Background(), &store.Mutation{Insert: sessions})
	if err != nil {
		t.Fatalf("seeding %s store: %v", driver, err)
	}

	return db
}

// Finished returns a stopped session.
func Finished(date, start, end string, duration int64) *models.Session {
	return &models.Session{
		Date:      date,
		StartTime: start,
		EndTime:   models.String(end),
		Duration:  models.Int64(duration),
	}
}
