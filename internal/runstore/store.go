// Package runstore persists finished runs for balance analysis. SQLite is
// the default backend, Postgres is used when a shared history is wanted.
package runstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/vmihailenco/msgpack/v5"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned by Get for an unknown run id.
var ErrNotFound = errors.New("run not found")

// Config selects the backend. DSN is a file path for SQLite and a
// connection string for Postgres.
type Config struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

// Event is one entry of a run's event log.
type Event struct {
	Tick  uint64  `msgpack:"t" json:"tick"`
	Type  string  `msgpack:"e" json:"type"`
	Value float64 `msgpack:"v" json:"value"`
}

// Run is the stored outcome of one simulation.
type Run struct {
	ID            uuid.UUID `json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	Seed          int64     `json:"seed"`
	Survived      float64   `json:"survived_seconds"`
	Alive         bool      `json:"alive"`
	Level         int       `json:"level"`
	Kills         int       `json:"kills"`
	GrowthSteps   int       `json:"growth_steps"`
	SpawnCooldown float64   `json:"spawn_cooldown"`
	Events        []Event   `json:"events,omitempty"`
}

// Store wraps the database connection.
type Store struct {
	db      *sql.DB
	dialect Dialect
}

// Open connects to the configured backend and creates the schema.
func Open(ctx context.Context, cfg Config) (*Store, error) {
	dialect := NewDialect(cfg.Driver)
	if dialect.DriverName() == DriverSQLite && cfg.DSN != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(cfg.DSN), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open(dialect.DriverName(), cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if dialect.DriverName() == DriverSQLite {
		db.SetMaxOpenConns(1)
	}
	for _, stmt := range dialect.InitStatements() {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to run %q: %w", stmt, err)
		}
	}

	s := &Store{db: db, dialect: dialect}
	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate(ctx context.Context) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			created_at BIGINT NOT NULL,
			seed BIGINT NOT NULL,
			survived DOUBLE PRECISION NOT NULL,
			alive INTEGER NOT NULL DEFAULT 0,
			level INTEGER NOT NULL,
			kills INTEGER NOT NULL,
			growth_steps INTEGER NOT NULL,
			spawn_cooldown DOUBLE PRECISION NOT NULL,
			events ` + s.dialect.BlobType() + `
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at)`,
	}
	for _, m := range migrations {
		if _, err := s.db.ExecContext(ctx, m); err != nil {
			return err
		}
	}
	return nil
}

// SaveRun stores r, assigning an id and timestamp when missing. It returns
// the stored id.
func (s *Store) SaveRun(ctx context.Context, r Run) (uuid.UUID, error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	blob, err := msgpack.Marshal(r.Events)
	if err != nil {
		return uuid.Nil, fmt.Errorf("encode events: %w", err)
	}

	alive := 0
	if r.Alive {
		alive = 1
	}
	_, err = s.db.ExecContext(ctx, rebind(s.dialect, `
		INSERT INTO runs (id, created_at, seed, survived, alive, level, kills, growth_steps, spawn_cooldown, events)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`), r.ID.String(), r.CreatedAt.UnixNano(), r.Seed, r.Survived, alive, r.Level, r.Kills, r.GrowthSteps, r.SpawnCooldown, blob)
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert run: %w", err)
	}
	return r.ID, nil
}

const selectRun = `SELECT id, created_at, seed, survived, alive, level, kills, growth_steps, spawn_cooldown, events FROM runs`

// Get loads one run including its event log.
func (s *Store) Get(ctx context.Context, id uuid.UUID) (Run, error) {
	row := s.db.QueryRowContext(ctx, rebind(s.dialect, selectRun+` WHERE id = ?`), id.String())
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	return r, err
}

// Recent returns up to limit runs, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, rebind(s.dialect, selectRun+` ORDER BY created_at DESC LIMIT ?`), limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var (
		r       Run
		id      string
		created int64
		alive   int
		blob    []byte
	)
	if err := sc.Scan(&id, &created, &r.Seed, &r.Survived, &alive, &r.Level, &r.Kills, &r.GrowthSteps, &r.SpawnCooldown, &blob); err != nil {
		return Run{}, err
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return Run{}, fmt.Errorf("bad run id %q: %w", id, err)
	}
	r.ID = parsed
	r.CreatedAt = time.Unix(0, created)
	r.Alive = alive != 0
	if len(blob) > 0 {
		if err := msgpack.Unmarshal(blob, &r.Events); err != nil {
			return Run{}, fmt.Errorf("decode events: %w", err)
		}
	}
	return r, nil
}
