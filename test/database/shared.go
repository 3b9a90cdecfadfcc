package database

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/require"

	"github.com/taskwire/taskwire/ent"
	"github.com/taskwire/taskwire/pkg/database"
	"github.com/taskwire/taskwire/test/util"
)

// SharedTestDB is one schema served to several independent connection
// pools. Multi-replica tests hang separate worker pools off it so claim
// contention and NOTIFY delivery cross real connections.
type SharedTestDB struct {
	connStrWithSchema string
	baseConnStr       string
	schemaName        string
}

// NewSharedTestDB creates the schema, migrates it once (ent auto-migration
// plus the raw-SQL indexes), and registers the schema drop on cleanup.
// Replicas then obtain their own pools through NewClient.
func NewSharedTestDB(t *testing.T) *SharedTestDB {
	t.Helper()
	ctx := context.Background()

	baseConnStr := util.GetBaseConnectionString(t)
	schemaName := util.GenerateSchemaName(t)

	db, err := stdsql.Open("pgx", baseConnStr)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, fmt.Sprintf("CREATE SCHEMA %s", schemaName))
	require.NoError(t, err)
	t.Logf("SharedTestDB: created schema %s", schemaName)
	_ = db.Close()

	s := &SharedTestDB{
		connStrWithSchema: util.AddSearchPathToConnString(baseConnStr, schemaName),
		baseConnStr:       baseConnStr,
		schemaName:        schemaName,
	}

	// Migrate through a throwaway pool; replicas never run migrations.
	migrateClient, migrateDB := s.openPool(t)
	drv := entsql.OpenDB(dialect.Postgres, migrateDB)
	require.NoError(t, migrateClient.Schema.Create(ctx))
	require.NoError(t, database.CreateGINIndexes(ctx, drv))
	require.NoError(t, database.CreateClaimIndex(ctx, drv))
	_ = migrateClient.Close()
	_ = migrateDB.Close()

	// LIFO cleanup ordering runs replica shutdowns before the drop.
	t.Cleanup(func() {
		cleanDB, err := stdsql.Open("pgx", baseConnStr)
		if err != nil {
			t.Logf("SharedTestDB: warning: could not connect to drop schema %s: %v", schemaName, err)
			return
		}
		defer func() { _ = cleanDB.Close() }()
		if _, err := cleanDB.ExecContext(context.Background(), fmt.Sprintf("DROP SCHEMA IF EXISTS %s CASCADE", schemaName)); err != nil {
			t.Logf("SharedTestDB: warning: failed to drop schema %s: %v", schemaName, err)
		}
	})

	return s
}

// NewClient returns an independent *database.Client on the shared schema.
// Every replica owns its pool, so one can shut down while others keep
// claiming.
func (s *SharedTestDB) NewClient(t *testing.T) *database.Client {
	t.Helper()

	entClient, db := s.openPool(t)
	t.Cleanup(func() {
		_ = entClient.Close()
		_ = db.Close()
	})

	return database.NewClientFromEnt(entClient, db)
}

// openPool opens a schema-scoped pool and an ent client over it.
func (s *SharedTestDB) openPool(t *testing.T) (*ent.Client, *stdsql.DB) {
	t.Helper()

	db, err := stdsql.Open("pgx", s.connStrWithSchema)
	require.NoError(t, err)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	entClient := ent.NewClient(ent.Driver(entsql.OpenDB(dialect.Postgres, db)))
	return entClient, db
}
