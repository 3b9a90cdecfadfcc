package database

import (
	"context"
	stdsql "database/sql"
	"encoding/json"
	"os"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/taskwire/taskwire/ent"
)

// testConnString returns a connection string for a throwaway database. CI
// provides an external Postgres through CI_DATABASE_URL; everywhere else a
// container is started for the test.
func testConnString(t *testing.T) string {
	if connStr := os.Getenv("CI_DATABASE_URL"); connStr != "" {
		t.Log("Using external PostgreSQL from CI_DATABASE_URL")
		return connStr
	}

	t.Log("Using testcontainers for PostgreSQL")
	ctx := context.Background()
	pgContainer, err := postgres.Run(ctx,
		"postgres:17-alpine",
		postgres.WithDatabase("test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(pgContainer); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	return connStr
}

// newTestClient builds a Client on a fresh database. The schema comes from
// ent auto-migration rather than the embedded migration chain, plus the
// raw-SQL indexes.
func newTestClient(t *testing.T) *Client {
	ctx := context.Background()

	db, err := stdsql.Open("pgx", testConnString(t))
	require.NoError(t, err)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))

	require.NoError(t, entClient.Schema.Create(ctx))
	require.NoError(t, CreateGINIndexes(ctx, drv))

	client := NewClientFromEnt(entClient, db)
	t.Cleanup(func() { client.Close() })
	return client
}

// searchTaskIDs runs a tsquery expression against the given column and
// returns the matching task ids.
func searchTaskIDs(t *testing.T, client *Client, column, query string) []string {
	t.Helper()
	rows, err := client.DB().QueryContext(context.Background(),
		`SELECT task_id FROM tasks
		WHERE to_tsvector('english', `+column+`) @@ to_tsquery('english', $1)`,
		query,
	)
	require.NoError(t, err)
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		require.NoError(t, rows.Scan(&id))
		ids = append(ids, id)
	}
	require.NoError(t, rows.Err())
	return ids
}

func TestDatabaseClient_ConnectionPool(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.DB().PingContext(ctx))

	health, err := Health(ctx, client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Greater(t, health.MaxOpenConns, 0)
	assert.False(t, health.Saturated, "an idle test pool must not report saturation")
}

func TestFullTextSearch(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	task1, err := client.Task.Create().
		SetID("test-1").
		SetTitle("Production login failures").
		SetDescription("Critical error in production cluster with login failures after deploy").
		Save(ctx)
	require.NoError(t, err)

	task2, err := client.Task.Create().
		SetID("test-2").
		SetTitle("Memory usage report").
		SetDescription("Warning: high memory usage detected on the staging host").
		Save(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{task1.ID}, searchTaskIDs(t, client, "description", "error & production"))
	assert.Equal(t, []string{task2.ID}, searchTaskIDs(t, client, "description", "memory"))
}

func TestResultSummarySearch(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	_, err := client.Task.Create().
		SetID("summary-1").
		SetTitle("Investigate checkout latency").
		SetDescription("Checkout requests are slow").
		SetResultSummary("Root cause: connection pool exhaustion in the payments service").
		Save(ctx)
	require.NoError(t, err)

	// Tasks without a summary must not break the COALESCE index expression
	_, err = client.Task.Create().
		SetID("summary-2").
		SetTitle("Unfinished task").
		SetDescription("No result yet").
		Save(ctx)
	require.NoError(t, err)

	got := searchTaskIDs(t, client, "COALESCE(result_summary, '')", "pool & exhaustion")
	assert.Equal(t, []string{"summary-1"}, got)
}

var dbEnvKeys = []string{
	"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
	"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
	"DB_CONN_MAX_LIFETIME", "DB_CONN_MAX_IDLE_TIME",
}

func TestLoadConfigFromEnv(t *testing.T) {
	tests := []struct {
		name        string
		envVars     map[string]string
		wantErr     string
		checkConfig func(t *testing.T, cfg Config)
	}{
		{
			name:    "valid config with defaults",
			envVars: map[string]string{"DB_PASSWORD": "test"},
			checkConfig: func(t *testing.T, cfg Config) {
				assert.Equal(t, "localhost", cfg.Host)
				assert.Equal(t, 5432, cfg.Port)
				assert.Equal(t, 25, cfg.MaxOpenConns)
				assert.Equal(t, 10, cfg.MaxIdleConns)
			},
		},
		{
			name: "valid config with custom values",
			envVars: map[string]string{
				"DB_HOST":           "db.example.com",
				"DB_PORT":           "5433",
				"DB_USER":           "admin",
				"DB_PASSWORD":       "secret",
				"DB_NAME":           "production",
				"DB_SSLMODE":        "require",
				"DB_MAX_OPEN_CONNS": "50",
				"DB_MAX_IDLE_CONNS": "20",
			},
			checkConfig: func(t *testing.T, cfg Config) {
				assert.Equal(t, "db.example.com", cfg.Host)
				assert.Equal(t, 5433, cfg.Port)
				assert.Equal(t, 50, cfg.MaxOpenConns)
			},
		},
		{
			name:    "invalid DB_PORT",
			envVars: map[string]string{"DB_PORT": "invalid", "DB_PASSWORD": "test"},
			wantErr: "invalid DB_PORT",
		},
		{
			name:    "invalid DB_MAX_OPEN_CONNS",
			envVars: map[string]string{"DB_MAX_OPEN_CONNS": "not_a_number", "DB_PASSWORD": "test"},
			wantErr: "invalid DB_MAX_OPEN_CONNS",
		},
		{
			name:    "invalid DB_MAX_IDLE_CONNS",
			envVars: map[string]string{"DB_MAX_IDLE_CONNS": "abc123", "DB_PASSWORD": "test"},
			wantErr: "invalid DB_MAX_IDLE_CONNS",
		},
		{
			name:    "invalid DB_CONN_MAX_LIFETIME",
			envVars: map[string]string{"DB_CONN_MAX_LIFETIME": "invalid_duration", "DB_PASSWORD": "test"},
			wantErr: "invalid DB_CONN_MAX_LIFETIME",
		},
		{
			name:    "invalid DB_CONN_MAX_IDLE_TIME",
			envVars: map[string]string{"DB_CONN_MAX_IDLE_TIME": "not_a_duration", "DB_PASSWORD": "test"},
			wantErr: "invalid DB_CONN_MAX_IDLE_TIME",
		},
		{
			name:    "missing password",
			envVars: map[string]string{},
			wantErr: "DB_PASSWORD is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range dbEnvKeys {
				os.Unsetenv(key)
			}
			for key, val := range tt.envVars {
				t.Setenv(key, val)
			}

			cfg, err := LoadConfigFromEnv()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			if tt.checkConfig != nil {
				tt.checkConfig(t, cfg)
			}
		})
	}
}

// The health payload reports durations in milliseconds; a regression to
// nanoseconds would render as million-scale values in the JSON.
func TestHealthStatus_JSONMilliseconds(t *testing.T) {
	client := newTestClient(t)

	health, err := Health(context.Background(), client.DB())
	require.NoError(t, err)
	require.NotNil(t, health)

	assert.GreaterOrEqual(t, health.ResponseTime, int64(0))
	assert.Less(t, health.ResponseTime, int64(1000), "local round trip should be well under a second")

	jsonBytes, err := json.Marshal(health)
	require.NoError(t, err)
	var jsonData map[string]any
	require.NoError(t, json.Unmarshal(jsonBytes, &jsonData))

	msField := func(name string) float64 {
		val, ok := jsonData[name].(float64)
		require.True(t, ok, "%s should be a number", name)
		return val
	}
	for _, field := range []string{"response_time_ms", "wait_duration_ms"} {
		ms := msField(field)
		assert.GreaterOrEqual(t, ms, float64(0), field)
		assert.Less(t, ms, float64(1000000), field)
	}

	_, ok := jsonData["saturated"].(bool)
	assert.True(t, ok, "saturated should be a boolean")
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		Host:         "localhost",
		Port:         5432,
		User:         "test",
		Password:     "test",
		Database:     "test",
		SSLMode:      "disable",
		MaxOpenConns: 10,
		MaxIdleConns: 5,
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid config", mutate: func(*Config) {}},
		{name: "missing password", mutate: func(c *Config) { c.Password = "" }, wantErr: true},
		{name: "idle conns exceed max conns", mutate: func(c *Config) { c.MaxIdleConns = 20 }, wantErr: true},
		{name: "zero max open conns", mutate: func(c *Config) { c.MaxOpenConns = 0; c.MaxIdleConns = 0 }, wantErr: true},
		{name: "negative idle conns", mutate: func(c *Config) { c.MaxIdleConns = -1 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
