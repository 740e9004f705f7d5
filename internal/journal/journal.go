// Package journal records accepted carousel navigations in SQLite.
//
// The journal is write-mostly telemetry. It is read back only by the
// history command and never used to restore a carousel position.
package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite"
)

// FileName is the journal database name inside state_dir.
const FileName = "journal.db"

const (
	table = "navigations"

	// Fixed width so text ordering matches time ordering.
	timeFormat = "2006-01-02T15:04:05.000000000Z"

	// DefaultLimit bounds Recent when the filter sets no limit.
	DefaultLimit = 20
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS navigations (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	at         TEXT    NOT NULL,
	from_index INTEGER NOT NULL,
	to_index   INTEGER NOT NULL,
	direction  INTEGER NOT NULL CHECK (direction IN (-1, 0, 1)),
	source     TEXT    NOT NULL,
	item_id    TEXT    NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_navigations_at ON navigations (at);
CREATE INDEX IF NOT EXISTS idx_navigations_item ON navigations (item_id);
`

var (
	// ErrEmptyPath indicates Open was called without a database path.
	ErrEmptyPath = errors.New("journal: db path cannot be empty")
	// ErrInvalidEntry indicates an entry that cannot describe a navigation.
	ErrInvalidEntry = errors.New("journal: invalid entry")
	// ErrClosed indicates use of a closed journal.
	ErrClosed = errors.New("journal: closed")
)

// Entry is one accepted navigation.
type Entry struct {
	ID        int64     `json:"id"`
	At        time.Time `json:"at"`
	From      int       `json:"from"`
	To        int       `json:"to"`
	Direction int       `json:"direction"`
	Source    string    `json:"source"`
	ItemID    string    `json:"item_id"`
}

// Filter narrows Recent. Zero values match everything.
type Filter struct {
	Source string
	ItemID string
	Since  time.Time
	Limit  int
}

// ItemCount is how many navigations landed on an item.
type ItemCount struct {
	ItemID   string    `json:"item_id"`
	Views    int       `json:"views"`
	LastSeen time.Time `json:"last_seen"`
}

// Journal is a SQLite-backed navigation log.
type Journal struct {
	db   *sql.DB
	path string
}

// Open creates or opens the journal at path.
func Open(path string) (*Journal, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrEmptyPath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("journal: create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("journal: open db: %w", err)
	}
	// One writer keeps modernc's SQLITE_BUSY out of the picture.
	db.SetMaxOpenConns(1)

	j := &Journal{db: db, path: path}
	if err := j.init(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return j, nil
}

func (j *Journal) init() error {
	if _, err := j.db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		return fmt.Errorf("journal: set busy timeout: %w", err)
	}
	if _, err := j.db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("journal: create schema: %w", err)
	}
	return nil
}

// Path returns the database file location.
func (j *Journal) Path() string {
	return j.path
}

// Close closes the underlying connection. It is safe to call twice.
func (j *Journal) Close() error {
	if j == nil || j.db == nil {
		return nil
	}
	err := j.db.Close()
	j.db = nil
	return err
}

func (e Entry) validate() error {
	switch {
	case e.From < 0 || e.To < 0:
		return fmt.Errorf("%w: negative index %d -> %d", ErrInvalidEntry, e.From, e.To)
	case e.Direction < -1 || e.Direction > 1:
		return fmt.Errorf("%w: direction %d", ErrInvalidEntry, e.Direction)
	case strings.TrimSpace(e.Source) == "":
		return fmt.Errorf("%w: missing source", ErrInvalidEntry)
	}
	return nil
}

// Record appends e and returns its row id. A zero At is stamped with now.
func (j *Journal) Record(ctx context.Context, e Entry) (int64, error) {
	if j == nil || j.db == nil {
		return 0, ErrClosed
	}
	if err := e.validate(); err != nil {
		return 0, err
	}
	if e.At.IsZero() {
		e.At = time.Now()
	}

	query, args, err := sq.Insert(table).
		Columns("at", "from_index", "to_index", "direction", "source", "item_id").
		Values(formatTime(e.At), e.From, e.To, e.Direction, e.Source, e.ItemID).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("journal: build insert: %w", err)
	}

	res, err := j.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("journal: record navigation: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("journal: read row id: %w", err)
	}
	return id, nil
}

// Recent returns matching entries, newest first.
func (j *Journal) Recent(ctx context.Context, f Filter) ([]Entry, error) {
	if j == nil || j.db == nil {
		return nil, ErrClosed
	}
	limit := f.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	builder := sq.Select("id", "at", "from_index", "to_index", "direction", "source", "item_id").
		From(table).
		OrderBy("at DESC", "id DESC").
		Limit(uint64(limit))
	if f.Source != "" {
		builder = builder.Where(sq.Eq{"source": f.Source})
	}
	if f.ItemID != "" {
		builder = builder.Where(sq.Eq{"item_id": f.ItemID})
	}
	if !f.Since.IsZero() {
		builder = builder.Where(sq.GtOrEq{"at": formatTime(f.Since)})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("journal: build query: %w", err)
	}
	rows, err := j.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("journal: query recent: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e  Entry
			at string
		)
		if err := rows.Scan(&e.ID, &at, &e.From, &e.To, &e.Direction, &e.Source, &e.ItemID); err != nil {
			return nil, fmt.Errorf("journal: scan entry: %w", err)
		}
		if e.At, err = parseTime(at); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("journal: iterate entries: %w", err)
	}
	return entries, nil
}

// Counts returns per-item arrival counts, most viewed first.
// Entries without an item id are ignored.
func (j *Journal) Counts(ctx context.Context) ([]ItemCount, error) {
	if j == nil || j.db == nil {
		return nil, ErrClosed
	}
	query, args, err := sq.Select("item_id", "COUNT(*)", "MAX(at)").
		From(table).
		Where(sq.NotEq{"item_id": ""}).
		GroupBy("item_id").
		OrderBy("COUNT(*) DESC", "item_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("journal: build query: %w", err)
	}

	rows, err := j.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("journal: query counts: %w", err)
	}
	defer rows.Close()

	var counts []ItemCount
	for rows.Next() {
		var (
			c    ItemCount
			last string
		)
		if err := rows.Scan(&c.ItemID, &c.Views, &last); err != nil {
			return nil, fmt.Errorf("journal: scan count: %w", err)
		}
		if c.LastSeen, err = parseTime(last); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("journal: iterate counts: %w", err)
	}
	return counts, nil
}

// Clear deletes every entry and returns how many were removed.
func (j *Journal) Clear(ctx context.Context) (int64, error) {
	if j == nil || j.db == nil {
		return 0, ErrClosed
	}
	query, args, err := sq.Delete(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("journal: build delete: %w", err)
	}
	res, err := j.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("journal: clear: %w", err)
	}
	return res.RowsAffected()
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeFormat)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("journal: parse timestamp %q: %w", s, err)
	}
	return t, nil
}
