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
	`CREATE TABLE IF NOT EXISTS goals (
		id          TEXT PRIMARY KEY,
		title       TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		specific    TEXT NOT NULL DEFAULT '',
		measurable  TEXT NOT NULL DEFAULT '',
		achievable  TEXT NOT NULL DEFAULT '',
		relevant    TEXT NOT NULL DEFAULT '',
		time_bound  TEXT NOT NULL DEFAULT '',
		domain      TEXT NOT NULL DEFAULT 'projects',
		status      TEXT NOT NULL DEFAULT 'draft'
		            CHECK(status IN ('draft','active','completed','abandoned')),
		milestones  TEXT NOT NULL DEFAULT '[]',
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_goals_status ON goals(status)`,
	`CREATE INDEX IF NOT EXISTS idx_goals_domain ON goals(domain)`,

	`CREATE TABLE IF NOT EXISTS analyses (
		id                 TEXT PRIMARY KEY,
		goal_id            TEXT REFERENCES goals(id) ON DELETE CASCADE,
		description        TEXT NOT NULL,
		report             TEXT NOT NULL,
		overall_confidence REAL NOT NULL DEFAULT 0,
		created_at         TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_analyses_goal ON analyses(goal_id)`,
	`CREATE INDEX IF NOT EXISTS idx_analyses_created ON analyses(created_at)`,
}
