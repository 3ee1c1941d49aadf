package store

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	bolt "go.etcd.io/bbolt"
	berrors "go.etcd.io/bbolt/errors"

	"github.com/ayoisaiah/forge/internal/models"
)

var (
	sessionBucket     = []byte("sessions")
	leaderboardBucket = []byte("leaderboard")
	metaBucket        = []byte("meta")

	serialsKey     = []byte("serials")
	lastCommandKey = []byte("last_command")
)

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

// itob encodes a session id as a big-endian key so that cursor order is id
// order.
func itob(id int64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(id))

	return b
}

func decodeSession(v []byte) (*models.Session, error) {
	var s models.Session

	err := json.Unmarshal(v, &s)
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func putSession(b *bolt.Bucket, s *models.Session) error {
	value, err := json.Marshal(s)
	if err != nil {
		return err
	}

	return b.Put(itob(s.ID), value)
}

func (c *Client) Commit(_ context.Context, m *Mutation) error {
	ids := make([]int64, len(m.Insert))

	err := c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(sessionBucket)

		for _, s := range m.Update {
			if b.Get(itob(s.ID)) == nil {
				return ErrNoRows.Fmt(s.ID)
			}

			if err := putSession(b, s); err != nil {
				return err
			}
		}

		for _, id := range m.Delete {
			if b.Get(itob(id)) == nil {
				return ErrNoRows.Fmt(id)
			}

			if err := b.Delete(itob(id)); err != nil {
				return err
			}
		}

		for i, s := range m.Insert {
			// NextSequence never hands out the same value twice, even
			// after the highest id is deleted
			seq, err := b.NextSequence()
			if err != nil {
				return err
			}

			row := s.Clone()
			row.ID = int64(seq)

			if err := putSession(b, row); err != nil {
				return err
			}

			ids[i] = row.ID
		}

		return nil
	})
	if err != nil {
		return err
	}

	for i := range m.Insert {
		m.Insert[i].ID = ids[i]
	}

	return nil
}

func (c *Client) GetSession(_ context.Context, id int64) (*models.Session, error) {
	var sess *models.Session

	err := c.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(sessionBucket).Get(itob(id))
		if v == nil {
			return nil
		}

		var err error

		sess, err = decodeSession(v)

		return err
	})

	return sess, err
}

func (c *Client) GetSessions(
	_ context.Context,
	filter *models.Filter,
	sort models.SortKey,
) ([]*models.Session, error) {
	var sessions []*models.Session

	err := c.View(func(tx *bolt.Tx) error {
		return tx.Bucket(sessionBucket).ForEach(func(_, v []byte) error {
			sess, err := decodeSession(v)
			if err != nil {
				return err
			}

			if filter.Match(sess.Date) {
				sessions = append(sessions, sess)
			}

			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	if sort != "" {
		models.SortSessions(sessions, sort)
	}

	return sessions, nil
}

func (c *Client) RunningSession(_ context.Context) (*models.Session, error) {
	var running *models.Session

	err := c.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket(sessionBucket).Cursor()

		for k, v := cur.Last(); k != nil; k, v = cur.Prev() {
			sess, err := decodeSession(v)
			if err != nil {
				return err
			}

			if sess.Running() {
				running = sess
				return nil
			}
		}

		return nil
	})

	return running, err
}

func (c *Client) SaveSerials(_ context.Context, ids []int64) error {
	value, err := encodeSerials(ids)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(metaBucket).Put(serialsKey, value)
	})
}

func (c *Client) Serials(_ context.Context) (map[string]int64, error) {
	var m map[string]int64

	err := c.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(metaBucket).Get(serialsKey)
		if v == nil {
			return ErrNoSerials
		}

		return json.Unmarshal(v, &m)
	})

	return m, err
}

func (c *Client) SetLastCommand(_ context.Context, cmd string) error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(metaBucket).Put(lastCommandKey, []byte(cmd))
	})
}

func (c *Client) LastCommand(_ context.Context) (string, error) {
	var cmd string

	err := c.View(func(tx *bolt.Tx) error {
		cmd = string(tx.Bucket(metaBucket).Get(lastCommandKey))
		return nil
	})

	return cmd, err
}

func leaderboardKey(date, name string) []byte {
	return []byte(date + "\x00" + name)
}

func (c *Client) UpsertLeaderboard(
	_ context.Context,
	entries ...models.LeaderboardEntry,
) error {
	return c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(leaderboardBucket)

		for i := range entries {
			value, err := json.Marshal(entries[i])
			if err != nil {
				return err
			}

			err = b.Put(leaderboardKey(entries[i].Date, entries[i].Name), value)
			if err != nil {
				return err
			}
		}

		return nil
	})
}

func (c *Client) Leaderboard(
	_ context.Context,
	date string,
) ([]models.LeaderboardEntry, error) {
	var entries []models.LeaderboardEntry

	err := c.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket(leaderboardBucket).Cursor()
		prefix := []byte(date + "\x00")

		for k, v := cur.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = cur.Next() {
			var e models.LeaderboardEntry

			if err := json.Unmarshal(v, &e); err != nil {
				return err
			}

			entries = append(entries, e)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(entries, func(a, b models.LeaderboardEntry) int {
		switch {
		case a.Duration > b.Duration:
			return -1
		case a.Duration < b.Duration:
			return 1
		default:
			return 0
		}
	})

	return entries, nil
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, berrors.ErrTimeout) {
			return nil, ErrForgeRunning
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	err := os.MkdirAll(filepath.Dir(dbPath), 0o755)
	if err != nil {
		return nil, err
	}

	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	// Create the necessary buckets for storing data if they do not exist already
	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{sessionBucket, leaderboardBucket, metaBucket} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Client{
		db,
	}, nil
}
