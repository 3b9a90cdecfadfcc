// Package database wires the PostgreSQL connection pool, the ent client,
// and the embedded schema migrations together.
package database

import (
	"context"
	stdsql "database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib" // register the pgx database/sql driver

	"github.com/taskwire/taskwire/ent"
)

// Schema migrations ship inside the binary; deployments never depend on
// files next to it.
//
//go:embed migrations
var migrationsFS embed.FS

// Client is the ent client plus a handle on the raw pool for health probes
// and the few direct queries ent cannot express.
type Client struct {
	*ent.Client
	db *stdsql.DB
}

// DB exposes the underlying pool.
func (c *Client) DB() *stdsql.DB {
	return c.db
}

// NewClientFromEnt wraps an already-open ent client. The test harness uses
// this to hand out schema-scoped clients over one shared container.
func NewClientFromEnt(entClient *ent.Client, db *stdsql.DB) *Client {
	return &Client{Client: entClient, db: db}
}

// NewClient opens the pool, verifies connectivity, applies pending
// migrations, and returns the wrapped ent client.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	db, err := stdsql.Open("pgx", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	// ent drives the pool it is given; pgx stays the actual wire driver.
	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))

	if err := applyMigrations(ctx, db, cfg, drv); err != nil {
		_ = entClient.Close()
		return nil, fmt.Errorf("apply schema migrations: %w", err)
	}

	return &Client{Client: entClient, db: db}, nil
}

// applyMigrations brings the schema up to date from the embedded migration
// files, then creates the raw-SQL indexes the migration chain does not
// cover. Schema changes start in ent/schema; the generated SQL is reviewed
// and committed under pkg/database/migrations and applied here on startup.
func applyMigrations(ctx context.Context, db *stdsql.DB, cfg Config, drv *entsql.Driver) error {
	present, err := embeddedMigrationsPresent()
	if err != nil {
		return fmt.Errorf("inspect embedded migrations: %w", err)
	}
	if !present {
		return fmt.Errorf("no embedded migration files found: binary may be built incorrectly")
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("postgres migrate driver: %w", err)
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("embedded migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, cfg.Database, driver)
	if err != nil {
		return fmt.Errorf("migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("apply migrations: %w", err)
	}

	// Close only the source. m.Close() would also close the database driver,
	// and with it the shared *sql.DB the ent client runs on.
	if err := source.Close(); err != nil {
		return fmt.Errorf("close migration source: %w", err)
	}

	if err := CreateGINIndexes(ctx, drv); err != nil {
		return fmt.Errorf("create search indexes: %w", err)
	}

	return nil
}

// embeddedMigrationsPresent reports whether the embed carries any .sql
// migration files.
func embeddedMigrationsPresent() (bool, error) {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("read embedded migrations: %w", err)
	}

	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			return true, nil
		}
	}
	return false, nil
}
