package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS deals (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		company     TEXT NOT NULL DEFAULT '',
		value_cents INTEGER NOT NULL DEFAULT 0,
		stage       TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id           TEXT PRIMARY KEY,
		title        TEXT NOT NULL,
		description  TEXT NOT NULL DEFAULT '',
		estimate_min INTEGER NOT NULL DEFAULT 30,
		status       TEXT NOT NULL DEFAULT 'not_started'
		             CHECK(status IN ('not_started','in_progress','completed','blocked','other')),
		priority     TEXT NOT NULL DEFAULT '',
		urgency      INTEGER NOT NULL DEFAULT 0,
		impact       INTEGER NOT NULL DEFAULT 0,
		type         TEXT NOT NULL DEFAULT 'delivery'
		             CHECK(type IN ('revenue','delivery','system','other')),
		deal_id      TEXT REFERENCES deals(id) ON DELETE SET NULL,
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks(status)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_deal ON tasks(deal_id)`,

	`CREATE TABLE IF NOT EXISTS fixed_events (
		id         TEXT PRIMARY KEY,
		weekday    INTEGER NOT NULL CHECK(weekday BETWEEN 0 AND 6),
		start_time TEXT NOT NULL,
		end_time   TEXT NOT NULL,
		title      TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS settings (
		id             TEXT PRIMARY KEY DEFAULT 'default',
		workday_start  TEXT NOT NULL DEFAULT '09:00',
		workday_end    TEXT NOT NULL DEFAULT '17:00',
		prime_hours    TEXT NOT NULL DEFAULT '09:00-15:00',
		downtime_hours TEXT NOT NULL DEFAULT '19:00-22:00',
		meeting_blocks TEXT NOT NULL DEFAULT ''
	)`,

	// Seed default settings row
	`INSERT OR IGNORE INTO settings (id) VALUES ('default')`,

	`CREATE TABLE IF NOT EXISTS calendar_blocks (
		id         TEXT PRIMARY KEY,
		date       TEXT NOT NULL,
		start_time TEXT NOT NULL,
		end_time   TEXT NOT NULL,
		title      TEXT NOT NULL,
		type       TEXT NOT NULL
		           CHECK(type IN ('fixed','revenue','delivery','system')),
		task_id    TEXT NOT NULL DEFAULT '',
		locked     INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE INDEX IF NOT EXISTS idx_calendar_blocks_date ON calendar_blocks(date)`,

	// Add due_date to tasks
	`ALTER TABLE tasks ADD COLUMN due_date TEXT`,

	// Block-level completion toggle for the calendar view
	`ALTER TABLE calendar_blocks ADD COLUMN completed INTEGER NOT NULL DEFAULT 0`,
}
