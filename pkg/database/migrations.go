package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These indexes enable efficient full-text search on task descriptions and
// result summaries, used by the dispatch search action.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// GIN index for description full-text search
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_tasks_description_gin
		ON tasks USING gin(to_tsvector('english', description))`)
	if err != nil {
		return fmt.Errorf("failed to create description GIN index: %w", err)
	}

	// GIN index for result_summary full-text search
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_tasks_result_summary_gin
		ON tasks USING gin(to_tsvector('english', COALESCE(result_summary, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create result_summary GIN index: %w", err)
	}

	return nil
}

// CreateClaimIndex creates the partial index used by the worker claim query.
// Ent's schema.Create emits it from the schema annotation, but callers that
// bootstrap from raw connections (tests, tooling) need it explicitly. Must
// match 20260801093000_init_task_schema.up.sql.
func CreateClaimIndex(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS task_status_priority_rank_created_at
		ON tasks (status, priority_rank, created_at)
		WHERE status = 'queued'`)
	if err != nil {
		return fmt.Errorf("failed to create claim index: %w", err)
	}

	return nil
}
