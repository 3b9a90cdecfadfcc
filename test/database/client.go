// Package database wraps the shared test-database bootstrap in the client
// type production code runs on.
package database

import (
	"context"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/require"

	"github.com/taskwire/taskwire/pkg/database"
	"github.com/taskwire/taskwire/test/util"
)

// NewTestClient returns a *database.Client on a fresh per-test schema, with
// the raw-SQL indexes the production migrations create: the GIN search
// indexes and the partial index the queue's claim query scans. Schema drop
// and connection close are registered by the underlying setup.
func NewTestClient(t *testing.T) *database.Client {
	ctx := context.Background()

	entClient, db := util.SetupTestDatabase(t)

	drv := entsql.OpenDB(dialect.Postgres, db)
	require.NoError(t, database.CreateGINIndexes(ctx, drv))
	require.NoError(t, database.CreateClaimIndex(ctx, drv))

	return database.NewClientFromEnt(entClient, db)
}
