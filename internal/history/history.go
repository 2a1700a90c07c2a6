// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history keeps a local ledger of submitted research tasks so their
// ids survive across invocations. Only the id, the instructions, and the last
// observed status are stored — never result content. The ledger is a
// convenience: the research protocol itself still runs on ids the user
// re-supplies explicitly.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Task is one recorded research submission.
type Task struct {
	ID           string
	Instructions string
	CreatedAt    time.Time
	LastStatus   string
	CheckedAt    time.Time
}

// Ledger manages the task ledger SQLite database.
type Ledger struct {
	db *sql.DB
}

// DefaultPath returns the ledger location under the user config directory,
// or "" when no home directory is available.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "exa", "tasks.db")
}

// Open opens or creates the ledger database at path, creating parent
// directories and the schema as needed.
func Open(path string) (*Ledger, error) {
	if path == "" {
		return nil, fmt.Errorf("history database path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	l := &Ledger{db: db}
	if err := l.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return l, nil
}

// Close releases the database connection.
func (l *Ledger) Close() error {
	return l.db.Close()
}

func (l *Ledger) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS tasks (
			id TEXT PRIMARY KEY,
			instructions TEXT,
			created_at TEXT NOT NULL,
			last_status TEXT,
			checked_at TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_created_at ON tasks(created_at)`,
	}
	for _, stmt := range statements {
		if _, err := l.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record stores a newly submitted task. Recording the same id again
// refreshes the instructions and timestamp.
func (l *Ledger) Record(ctx context.Context, taskID, instructions string) error {
	_, err := l.db.ExecContext(ctx,
		`INSERT INTO tasks (id, instructions, created_at) VALUES (?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET instructions = excluded.instructions, created_at = excluded.created_at`,
		taskID, instructions, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("recording task %s: %w", taskID, err)
	}
	return nil
}

// UpdateStatus stores the status observed by a check call. Unknown ids are
// inserted rather than dropped, so checks on tasks started elsewhere still
// land in the ledger.
func (l *Ledger) UpdateStatus(ctx context.Context, taskID, status string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := l.db.ExecContext(ctx,
		`INSERT INTO tasks (id, created_at, last_status, checked_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET last_status = excluded.last_status, checked_at = excluded.checked_at`,
		taskID, now, status, now)
	if err != nil {
		return fmt.Errorf("updating task %s: %w", taskID, err)
	}
	return nil
}

// List returns all recorded tasks, most recently created first.
func (l *Ledger) List(ctx context.Context) ([]Task, error) {
	rows, err := l.db.QueryContext(ctx,
		`SELECT id, instructions, created_at, last_status, checked_at
		 FROM tasks ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	var tasks []Task
	for rows.Next() {
		var t Task
		var instructions, created, status, checked sql.NullString
		if err := rows.Scan(&t.ID, &instructions, &created, &status, &checked); err != nil {
			return nil, fmt.Errorf("scanning task row: %w", err)
		}
		t.Instructions = instructions.String
		t.LastStatus = status.String
		t.CreatedAt = parseTime(created.String)
		t.CheckedAt = parseTime(checked.String)
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
