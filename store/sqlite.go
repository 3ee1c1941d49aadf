package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/ayoisaiah/forge/internal/models"
)

// SQLiteClient is a store backed by a SQLite database file.
type SQLiteClient struct {
	db *sql.DB
}

var sqliteOrder = map[models.SortKey]string{
	models.SortDate:          "date ASC, id ASC",
	models.SortDateDesc:      "date DESC, id ASC",
	models.SortStartTime:     "start_time ASC, id ASC",
	models.SortStartTimeDesc: "start_time DESC, id ASC",
	models.SortDuration:      "duration ASC, id ASC",
	models.SortDurationDesc:  "duration DESC, id ASC",
}

// NewSQLiteClient opens (or creates) the SQLite database at dbPath.
func NewSQLiteClient(dbPath string) (*SQLiteClient, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// a single connection keeps transactions and reads serialised
	db.SetMaxOpenConns(1)

	c := &SQLiteClient{db: db}

	if err := c.ensureSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return c, nil
}

func (c *SQLiteClient) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS sessions (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  date TEXT NOT NULL,
  start_time TEXT NOT NULL,
  end_time TEXT,
  duration INTEGER
);
CREATE INDEX IF NOT EXISTS idx_sessions_date ON sessions(date);
CREATE TABLE IF NOT EXISTS leaderboard (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  date TEXT NOT NULL,
  name TEXT NOT NULL,
  duration INTEGER NOT NULL,
  UNIQUE(date, name)
);
CREATE TABLE IF NOT EXISTS serials (
  serial TEXT PRIMARY KEY,
  session_id INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS meta (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
`
	if _, err := c.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}

	return nil
}

// withTx runs fn in a transaction that is committed if fn succeeds and rolled
// back otherwise.
func (c *SQLiteClient) withTx(
	ctx context.Context,
	fn func(tx *sql.Tx) error,
) (err error) {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}

	return tx.Commit()
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}

	return sql.NullString{String: *s, Valid: true}
}

func nullInt(i *int64) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{}
	}

	return sql.NullInt64{Int64: *i, Valid: true}
}

func (c *SQLiteClient) Commit(ctx context.Context, m *Mutation) error {
	ids := make([]int64, len(m.Insert))

	err := c.withTx(ctx, func(tx *sql.Tx) error {
		for _, s := range m.Update {
			res, err := tx.ExecContext(ctx, `
UPDATE sessions
SET date = ?, start_time = ?, end_time = ?, duration = ?
WHERE id = ?;
`, s.Date, s.StartTime, nullString(s.EndTime), nullInt(s.Duration), s.ID)
			if err != nil {
				return fmt.Errorf("update session: %w", err)
			}

			if n, _ := res.RowsAffected(); n == 0 {
				return ErrNoRows.Fmt(s.ID)
			}
		}

		for _, id := range m.Delete {
			res, err := tx.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?;`, id)
			if err != nil {
				return fmt.Errorf("delete session: %w", err)
			}

			if n, _ := res.RowsAffected(); n == 0 {
				return ErrNoRows.Fmt(id)
			}
		}

		for i, s := range m.Insert {
			res, err := tx.ExecContext(ctx, `
INSERT INTO sessions (date, start_time, end_time, duration)
VALUES (?, ?, ?, ?);
`, s.Date, s.StartTime, nullString(s.EndTime), nullInt(s.Duration))
			if err != nil {
				return fmt.Errorf("insert session: %w", err)
			}

			ids[i], err = res.LastInsertId()
			if err != nil {
				return fmt.Errorf("insert session: %w", err)
			}
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

type scanner interface {
	Scan(dest ...any) error
}

func scanSession(row scanner) (*models.Session, error) {
	var (
		s        models.Session
		end      sql.NullString
		duration sql.NullInt64
	)

	if err := row.Scan(&s.ID, &s.Date, &s.StartTime, &end, &duration); err != nil {
		return nil, err
	}

	if end.Valid {
		s.EndTime = &end.String
	}

	if duration.Valid {
		s.Duration = &duration.Int64
	}

	return &s, nil
}

const selectSessions = `SELECT id, date, start_time, end_time, duration FROM sessions`

func (c *SQLiteClient) GetSession(ctx context.Context, id int64) (*models.Session, error) {
	row := c.db.QueryRowContext(ctx, selectSessions+` WHERE id = ?;`, id)

	s, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	return s, nil
}

// filterClause builds the WHERE clause for a filter. Since and Until compare
// on the prefix of the date that matches their own granularity.
func filterClause(f *models.Filter) (string, []any) {
	if f.Empty() {
		return "", nil
	}

	var (
		conditions []string
		args       []any
	)

	switch {
	case f.Date != "":
		conditions = append(conditions, "date = ?")
		args = append(args, f.Date)
	case f.Month != "":
		conditions = append(conditions, "substr(date, 1, 7) = ?")
		args = append(args, f.Month)
	default:
		if f.Since != "" {
			conditions = append(conditions, "substr(date, 1, ?) >= ?")
			args = append(args, len(f.Since), f.Since)
		}

		if f.Until != "" {
			conditions = append(conditions, "substr(date, 1, ?) <= ?")
			args = append(args, len(f.Until), f.Until)
		}
	}

	return " WHERE " + strings.Join(conditions, " AND "), args
}

func (c *SQLiteClient) GetSessions(
	ctx context.Context,
	filter *models.Filter,
	sort models.SortKey,
) ([]*models.Session, error) {
	where, args := filterClause(filter)

	order := "id ASC"
	if sort != "" {
		order = sqliteOrder[models.SortDate]
		if o, ok := sqliteOrder[sort]; ok {
			order = o
		}
	}

	rows, err := c.db.QueryContext(ctx, selectSessions+where+" ORDER BY "+order+";", args...)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var out []*models.Session

	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}

		out = append(out, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}

	return out, nil
}

func (c *SQLiteClient) RunningSession(ctx context.Context) (*models.Session, error) {
	row := c.db.QueryRowContext(
		ctx,
		selectSessions+` WHERE end_time IS NULL ORDER BY id DESC LIMIT 1;`,
	)

	s, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("running session: %w", err)
	}

	return s, nil
}

func (c *SQLiteClient) setMeta(ctx context.Context, tx *sql.Tx, key, value string) error {
	_, err := tx.ExecContext(ctx, `
INSERT INTO meta (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value;
`, key, value)

	return err
}

func (c *SQLiteClient) getMeta(ctx context.Context, key string) (string, bool, error) {
	var value string

	err := c.db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = ?;`, key).
		Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}

	if err != nil {
		return "", false, fmt.Errorf("read %s: %w", key, err)
	}

	return value, true, nil
}

func (c *SQLiteClient) SaveSerials(ctx context.Context, ids []int64) error {
	return c.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM serials;`); err != nil {
			return fmt.Errorf("clear serials: %w", err)
		}

		for serial, id := range serialMap(ids) {
			_, err := tx.ExecContext(
				ctx,
				`INSERT INTO serials (serial, session_id) VALUES (?, ?);`,
				serial,
				id,
			)
			if err != nil {
				return fmt.Errorf("save serial: %w", err)
			}
		}

		return c.setMeta(ctx, tx, "serials_built", "1")
	})
}

func (c *SQLiteClient) Serials(ctx context.Context) (map[string]int64, error) {
	_, built, err := c.getMeta(ctx, "serials_built")
	if err != nil {
		return nil, err
	}

	if !built {
		return nil, ErrNoSerials
	}

	rows, err := c.db.QueryContext(ctx, `SELECT serial, session_id FROM serials;`)
	if err != nil {
		return nil, fmt.Errorf("list serials: %w", err)
	}
	defer rows.Close()

	m := make(map[string]int64)

	for rows.Next() {
		var (
			serial string
			id     int64
		)

		if err := rows.Scan(&serial, &id); err != nil {
			return nil, fmt.Errorf("scan serial: %w", err)
		}

		m[serial] = id
	}

	return m, rows.Err()
}

func (c *SQLiteClient) SetLastCommand(ctx context.Context, cmd string) error {
	return c.withTx(ctx, func(tx *sql.Tx) error {
		return c.setMeta(ctx, tx, "last_command", cmd)
	})
}

func (c *SQLiteClient) LastCommand(ctx context.Context) (string, error) {
	cmd, _, err := c.getMeta(ctx, "last_command")

	return cmd, err
}

func (c *SQLiteClient) UpsertLeaderboard(
	ctx context.Context,
	entries ...models.LeaderboardEntry,
) error {
	return c.withTx(ctx, func(tx *sql.Tx) error {
		for _, e := range entries {
			_, err := tx.ExecContext(ctx, `
INSERT INTO leaderboard (date, name, duration)
VALUES (?, ?, ?)
ON CONFLICT(date, name) DO UPDATE SET duration = excluded.duration;
`, e.Date, e.Name, e.Duration)
			if err != nil {
				return fmt.Errorf("upsert leaderboard: %w", err)
			}
		}

		return nil
	})
}

func (c *SQLiteClient) Leaderboard(
	ctx context.Context,
	date string,
) ([]models.LeaderboardEntry, error) {
	rows, err := c.db.QueryContext(ctx, `
SELECT date, name, duration FROM leaderboard
WHERE date = ?
ORDER BY duration DESC, id ASC;
`, date)
	if err != nil {
		return nil, fmt.Errorf("list leaderboard: %w", err)
	}
	defer rows.Close()

	var out []models.LeaderboardEntry

	for rows.Next() {
		var e models.LeaderboardEntry

		if err := rows.Scan(&e.Date, &e.Name, &e.Duration); err != nil {
			return nil, fmt.Errorf("scan leaderboard: %w", err)
		}

		out = append(out, e)
	}

	return out, rows.Err()
}

func (c *SQLiteClient) Close() error {
	return c.db.Close()
}
