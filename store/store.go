// Package store archives trace bundles in an SQLite database.
//
// Each bundle is kept as one row of metadata plus its pages in order, so a
// stored trace can be handed back to replay.Load without re-encoding:
//
//	import _ "modernc.org/sqlite"
//
//	s, err := store.Open("traces.db")
//	id, err := s.Save(ctx, bundle)
//	b, err := s.Load(ctx, id)
//	r, err := replay.Load(b.Pages)
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/gogpu/glrr"
	"github.com/gogpu/glrr/trace"
)

var (
	// ErrNotFound is returned when no trace has the requested id.
	ErrNotFound = errors.New("store: trace not found")

	// ErrInvalidID is returned for ids that are not UUIDs.
	ErrInvalidID = errors.New("store: invalid trace id")
)

const schema = `
CREATE TABLE IF NOT EXISTS traces (
	id      TEXT PRIMARY KEY,
	created TEXT NOT NULL,
	frames  INTEGER NOT NULL,
	calls   INTEGER NOT NULL,
	chars   INTEGER NOT NULL,
	source  TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS pages (
	trace_id TEXT NOT NULL REFERENCES traces(id) ON DELETE CASCADE,
	seq      INTEGER NOT NULL,
	body     TEXT NOT NULL,
	PRIMARY KEY (trace_id, seq)
);
`

type config struct {
	driver      string
	busyTimeout int
	mkdirAll    bool
}

func defaults() config {
	return config{driver: "sqlite", busyTimeout: 10_000}
}

// Option customises Open.
type Option func(*config)

// WithDriver sets the database/sql driver name. Default: "sqlite".
func WithDriver(name string) Option { return func(c *config) { c.driver = name } }

// WithBusyTimeout sets PRAGMA busy_timeout in milliseconds. Default: 10000.
func WithBusyTimeout(ms int) Option { return func(c *config) { c.busyTimeout = ms } }

// WithMkdirAll creates parent directories of the database path before opening.
func WithMkdirAll() Option { return func(c *config) { c.mkdirAll = true } }

// Store is a trace archive backed by an SQLite database.
type Store struct {
	db *sql.DB
}

// Entry describes one archived trace.
type Entry struct {
	ID      uuid.UUID
	Created time.Time
	Frames  int
	Calls   int
	Chars   int
	Source  string
}

// String returns a one-line listing of e.
func (e Entry) String() string {
	s := fmt.Sprintf("%s  %d frames  %d calls  %s  %s",
		e.ID, e.Frames, e.Calls, humanize.IBytes(uint64(e.Chars)), humanize.Time(e.Created))
	if e.Source != "" {
		s += "  " + e.Source
	}
	return s
}

// Open opens the archive at path, creating the schema when missing.
// The caller must blank-import the SQLite driver.
func Open(path string, opts ...Option) (*Store, error) {
	cfg := defaults()
	for _, o := range opts {
		o(&cfg)
	}

	if cfg.mkdirAll && path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("store: mkdir: %w", err)
		}
	}

	db, err := sql.Open(cfg.driver, path)
	if err != nil {
		return nil, fmt.Errorf("store: open: %w", err)
	}
	if path == ":memory:" {
		// Every connection to ":memory:" is a separate database.
		db.SetMaxOpenConns(1)
	}
	if err := applyPragmas(db, &cfg); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: schema: %w", err)
	}
	return &Store{db: db}, nil
}

func applyPragmas(db *sql.DB, cfg *config) error {
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		fmt.Sprintf("PRAGMA busy_timeout = %d", cfg.busyTimeout),
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("store: %s: %w", p, err)
		}
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save archives b and returns its id. A bundle without a valid id is given
// a fresh one; saving an id that already exists replaces the stored trace.
func (s *Store) Save(ctx context.Context, b *trace.Bundle) (uuid.UUID, error) {
	id, err := uuid.Parse(b.Meta.ID)
	if err != nil {
		id = uuid.New()
	}
	created := b.Meta.Created
	if created.IsZero() {
		created = time.Now().UTC()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return uuid.Nil, fmt.Errorf("store: begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM traces WHERE id = ?`, id.String()); err != nil {
		return uuid.Nil, fmt.Errorf("store: replace %s: %w", id, err)
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO traces (id, created, frames, calls, chars, source) VALUES (?, ?, ?, ?, ?, ?)`,
		id.String(), created.Format(time.RFC3339Nano), b.Meta.Frames, b.Meta.Calls, trace.Len(b.Pages), b.Meta.Source)
	if err != nil {
		return uuid.Nil, fmt.Errorf("store: insert trace: %w", err)
	}
	for i, p := range b.Pages {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO pages (trace_id, seq, body) VALUES (?, ?, ?)`, id.String(), i, p); err != nil {
			return uuid.Nil, fmt.Errorf("store: insert page %d: %w", i, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return uuid.Nil, fmt.Errorf("store: commit: %w", err)
	}

	glrr.Logger().Info("store: saved trace",
		"id", id,
		"pages", len(b.Pages),
		"size", humanize.IBytes(uint64(trace.Len(b.Pages))))
	return id, nil
}

// List returns the archived traces, newest first.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created, frames, calls, chars, source FROM traces ORDER BY created DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}
	return entries, nil
}

// Stat returns the metadata of one archived trace.
func (s *Store) Stat(ctx context.Context, id string) (Entry, error) {
	uid, err := parseID(id)
	if err != nil {
		return Entry{}, err
	}
	row := s.db.QueryRowContext(ctx,
		`SELECT id, created, frames, calls, chars, source FROM traces WHERE id = ?`, uid.String())
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, fmt.Errorf("%w: %s", ErrNotFound, uid)
	}
	return e, err
}

// Load returns the archived trace as a bundle.
func (s *Store) Load(ctx context.Context, id string) (*trace.Bundle, error) {
	e, err := s.Stat(ctx, id)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT body FROM pages WHERE trace_id = ? ORDER BY seq`, e.ID.String())
	if err != nil {
		return nil, fmt.Errorf("store: load %s: %w", e.ID, err)
	}
	defer rows.Close()

	var pages []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("store: load %s: %w", e.ID, err)
		}
		pages = append(pages, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: load %s: %w", e.ID, err)
	}

	return &trace.Bundle{
		Version: trace.BundleVersion,
		Meta: trace.Meta{
			ID:      e.ID.String(),
			Created: e.Created,
			Frames:  e.Frames,
			Calls:   e.Calls,
			Source:  e.Source,
		},
		Pages: pages,
	}, nil
}

// Delete removes an archived trace and its pages.
func (s *Store) Delete(ctx context.Context, id string) error {
	uid, err := parseID(id)
	if err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM traces WHERE id = ?`, uid.String())
	if err != nil {
		return fmt.Errorf("store: delete %s: %w", uid, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, uid)
	}
	glrr.Logger().Info("store: deleted trace", "id", uid)
	return nil
}

func parseID(id string) (uuid.UUID, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return uid, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (Entry, error) {
	var (
		e       Entry
		id      string
		created string
	)
	if err := row.Scan(&id, &created, &e.Frames, &e.Calls, &e.Chars, &e.Source); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Entry{}, err
		}
		return Entry{}, fmt.Errorf("store: scan: %w", err)
	}
	var err error
	if e.ID, err = uuid.Parse(id); err != nil {
		return Entry{}, fmt.Errorf("store: stored id %q: %w", id, err)
	}
	if e.Created, err = time.Parse(time.RFC3339Nano, created); err != nil {
		return Entry{}, fmt.Errorf("store: stored time %q: %w", created, err)
	}
	return e, nil
}
