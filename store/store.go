// Package store connects to the data store and manages sessions, the serial
// number mapping and the leaderboard
package store

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/ayoisaiah/forge/internal/models"
)

const (
	DriverBolt   = "bolt"
	DriverSQLite = "sqlite"
)

// DB is the database storage interface.
type DB interface {
	// Commit applies a mutation in a single transaction. Inserted sessions
	// have their ID set once the transaction succeeds.
	Commit(ctx context.Context, m *Mutation) error
	// GetSession retrieves a session by its storage id. It returns nil if
	// the session does not exist.
	GetSession(ctx context.Context, id int64) (*models.Session, error)
	// GetSessions returns the sessions matching the filter, ordered by the
	// sort key. An empty key keeps storage order.
	GetSessions(
		ctx context.Context,
		filter *models.Filter,
		sort models.SortKey,
	) ([]*models.Session, error)
	// RunningSession returns the most recent session without an end time,
	// or nil if no session is running.
	RunningSession(ctx context.Context) (*models.Session, error)
	// SaveSerials replaces the serial number mapping. ids[i] is the storage
	// id displayed as serial number i+1.
	SaveSerials(ctx context.Context, ids []int64) error
	// Serials returns the last saved serial number mapping.
	Serials(ctx context.Context) (map[string]int64, error)
	// SetLastCommand records the name of the last successful command.
	SetLastCommand(ctx context.Context, cmd string) error
	// LastCommand returns the name of the last successful command.
	LastCommand(ctx context.Context) (string, error)
	// UpsertLeaderboard creates or overwrites leaderboard entries keyed by
	// date and name.
	UpsertLeaderboard(ctx context.Context, entries ...models.LeaderboardEntry) error
	// Leaderboard returns the entries for a date ordered by duration
	// descending.
	Leaderboard(ctx context.Context, date string) ([]models.LeaderboardEntry, error)
	// Close ends the database connection
	Close() error
}

// Mutation is a set of writes applied atomically. Updates and deletes are
// applied before inserts.
type Mutation struct {
	Insert []*models.Session
	Update []*models.Session
	Delete []int64
}

// Open connects to the store selected by driver.
func Open(driver, path string) (DB, error) {
	switch driver {
	case DriverBolt, "":
		c, err := NewClient(path)
		if err != nil {
			return nil, err
		}

		return c, nil
	case DriverSQLite:
		c, err := NewSQLiteClient(path)
		if err != nil {
			return nil, err
		}

		return c, nil
	default:
		return nil, ErrUnknownDriver.Fmt(driver)
	}
}

func serialMap(ids []int64) map[string]int64 {
	m := make(map[string]int64, len(ids))

	for i, id := range ids {
		m[strconv.Itoa(i+1)] = id
	}

	return m
}

func encodeSerials(ids []int64) ([]byte, error) {
	return json.Marshal(serialMap(ids))
}
