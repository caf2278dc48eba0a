package schema

import (
	"context"
	"errors"

	"competency-matrix/internal/database"
)

// Statements create the three document tables. Entities are stored as rows
// with jsonb payload columns and no uniqueness constraints: duplicate titles,
// (title, level) pairs, and definition keys are all representable, matching
// the append-only insert model of ingest.
var statements = []string{
	`CREATE TABLE IF NOT EXISTS matrix_entries (
		id UUID PRIMARY KEY,
		job_title TEXT NOT NULL,
		competencies JSONB NOT NULL DEFAULT '[]'::jsonb
	)`,
	`CREATE TABLE IF NOT EXISTS standard_records (
		id UUID PRIMARY KEY,
		job_title TEXT NOT NULL,
		level TEXT NOT NULL,
		standards JSONB NOT NULL DEFAULT '{}'::jsonb
	)`,
	`CREATE TABLE IF NOT EXISTS definition_entries (
		id UUID PRIMARY KEY,
		key TEXT NOT NULL,
		label TEXT,
		description TEXT,
		"values" JSONB NOT NULL DEFAULT '{}'::jsonb
	)`,
}

// Ensure creates any missing tables. It runs at startup, after connect, and
// is idempotent across restarts and concurrent instances.
func Ensure(ctx context.Context, db database.DB) error {
	if db == nil {
		return errors.New("nil db")
	}
	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
