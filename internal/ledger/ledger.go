package ledger

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// schema.sql defines the runs table holding one summary row per search.
//
//go:embed schema.sql
var schemaSQL string

// Ledger records summaries of finished runs. It never stores search
// state.
type Ledger struct {
	*sql.DB
}

// Run is one ledger row. BestLength is zero when no path was found.
type Run struct {
	ID         string
	MapName    string
	Strategy   string
	Found      bool
	BestLength int
	Exhausted  bool
	Examined   int
	Calls      int
	Goals      int
	Elapsed    time.Duration
	CreatedAt  time.Time
}

func Open(path string) (*Ledger, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply ledger schema: %w", err)
	}
	return &Ledger{db}, nil
}

// Record inserts r, assigning an ID and timestamp when they are unset,
// and returns the ID.
func (l *Ledger) Record(ctx context.Context, r Run) (string, error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	var best sql.NullInt64
	if r.Found {
		best = sql.NullInt64{Int64: int64(r.BestLength), Valid: true}
	}

	_, err := l.ExecContext(ctx, `
		INSERT INTO runs (run_id, map_name, strategy, found, best_length, exhausted,
			examined, calls, goals, elapsed_ns, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.MapName, r.Strategy, r.Found, best, r.Exhausted,
		r.Examined, r.Calls, r.Goals, r.Elapsed.Nanoseconds(), r.CreatedAt.UnixNano(),
	)
	if err != nil {
		return "", fmt.Errorf("failed to record run %s: %w", r.ID, err)
	}
	return r.ID, nil
}

// Recent returns up to limit runs, newest first.
func (l *Ledger) Recent(ctx context.Context, limit int) ([]Run, error) {
	rows, err := l.QueryContext(ctx, `
		SELECT run_id, map_name, strategy, found, best_length, exhausted,
			examined, calls, goals, elapsed_ns, created_at
		FROM runs
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r         Run
			best      sql.NullInt64
			elapsedNs int64
			createdNs int64
		)
		if err := rows.Scan(&r.ID, &r.MapName, &r.Strategy, &r.Found, &best, &r.Exhausted,
			&r.Examined, &r.Calls, &r.Goals, &elapsedNs, &createdNs); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		r.BestLength = int(best.Int64)
		r.Elapsed = time.Duration(elapsedNs)
		r.CreatedAt = time.Unix(0, createdNs)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
