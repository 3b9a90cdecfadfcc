package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize(t *testing.T) {
	configDir := setupTestConfigDir(t)

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)

	require.NoError(t, err)
	require.NotNil(t, cfg)

	// Verify registries are populated
	assert.NotNil(t, cfg.AgentRegistry)
	assert.NotNil(t, cfg.Assignments)
	assert.NotNil(t, cfg.TemplateRegistry)
	assert.NotNil(t, cfg.Defaults)
	assert.NotNil(t, cfg.Keywords)
	assert.NotNil(t, cfg.Queue)
	assert.NotNil(t, cfg.Resilience)
	assert.NotNil(t, cfg.Cache)

	// Verify built-in configs are loaded
	assert.True(t, cfg.AgentRegistry.Has("coder"))
	assert.True(t, cfg.AgentRegistry.Has("general"))
	assert.True(t, cfg.TemplateRegistry.Has("bug_fix_workflow"))
	assert.True(t, cfg.TemplateRegistry.Has("emergency_fix"))

	assignment, mapped := cfg.ResolveAssignment("bug_report")
	assert.True(t, mapped)
	assert.Equal(t, "bug", assignment.Primary)

	// Verify stats
	stats := cfg.Stats()
	assert.Greater(t, stats.Agents, 0)
	assert.Greater(t, stats.Assignments, 0)
	assert.Greater(t, stats.Templates, 0)
}

func TestInitializeConfigNotFound(t *testing.T) {
	ctx := context.Background()
	_, err := Initialize(ctx, "/nonexistent/directory")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestInitializeInvalidYAML(t *testing.T) {
	configDir := t.TempDir()

	invalidYAML := `{{{`
	err := os.WriteFile(filepath.Join(configDir, "taskwire.yaml"), []byte(invalidYAML), 0644)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = Initialize(ctx, configDir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestInitializeValidationFailure(t *testing.T) {
	configDir := t.TempDir()

	invalidConfig := `
assignments:
  bug_report:
    primary: "nonexistent-agent"
`
	err := os.WriteFile(filepath.Join(configDir, "taskwire.yaml"), []byte(invalidConfig), 0644)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = Initialize(ctx, configDir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "nonexistent-agent")
}

func TestInitializeWorkflowsYAMLOptional(t *testing.T) {
	// Only taskwire.yaml present: built-in templates stay in effect
	configDir := setupTestConfigDir(t)

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)

	require.NoError(t, err)
	assert.True(t, cfg.TemplateRegistry.Has("code_review"))
}

func TestInitializeWorkflowsYAMLOverride(t *testing.T) {
	configDir := setupTestConfigDir(t)

	workflowsYAML := `
workflows:
  code_review:
    name: "Custom review"
    mode: sequential
    steps:
      - agent: coder
        task: "Review the change"
  triage_only:
    name: "Triage only"
    steps:
      - agent: bug
        task: "Triage the report"
`
	err := os.WriteFile(filepath.Join(configDir, "workflows.yaml"), []byte(workflowsYAML), 0644)
	require.NoError(t, err)

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)
	require.NoError(t, err)

	// Override replaces the built-in template wholesale
	custom, err := cfg.GetTemplate("code_review")
	require.NoError(t, err)
	assert.Equal(t, "Custom review", custom.Name)
	assert.Len(t, custom.Steps, 1)
	assert.Equal(t, ModeSequential, custom.Mode)

	// New templates are additive
	triage, err := cfg.GetTemplate("triage_only")
	require.NoError(t, err)
	assert.Equal(t, "triage_only", triage.ID)

	// Untouched built-ins remain
	assert.True(t, cfg.TemplateRegistry.Has("bug_fix_workflow"))
}

func TestLoadTaskwireYAML(t *testing.T) {
	configDir := t.TempDir()

	config := `
defaults:
  task_type: "general"
  priority: "high"

agents:
  reviewer:
    role: "External reviewer"
    capabilities: ["code_review"]

queue:
  worker_count: 2

system:
  server:
    port: 9090
  webhook:
    signing_key: "shhh"
`
	err := os.WriteFile(filepath.Join(configDir, "taskwire.yaml"), []byte(config), 0644)
	require.NoError(t, err)

	loader := &configLoader{configDir: configDir}
	mainConfig, err := loader.loadTaskwireYAML()

	require.NoError(t, err)
	assert.NotNil(t, mainConfig.Defaults)
	assert.Equal(t, "high", mainConfig.Defaults.Priority)
	assert.Len(t, mainConfig.Agents, 1)
	assert.Equal(t, 2, mainConfig.Queue.WorkerCount)
	assert.Equal(t, 9090, mainConfig.System.Server.Port)
	assert.Equal(t, "shhh", mainConfig.System.Webhook.SigningKey)
}

func TestQueueConfigMergePreservesDefaults(t *testing.T) {
	configDir := setupTestConfigDir(t)

	config := `
queue:
  worker_count: 12
`
	err := os.WriteFile(filepath.Join(configDir, "taskwire.yaml"), []byte(config), 0644)
	require.NoError(t, err)

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.Queue.WorkerCount)
	// Unset fields keep built-in defaults
	assert.Equal(t, DefaultQueueConfig().HeartbeatInterval, cfg.Queue.HeartbeatInterval)
	assert.Equal(t, DefaultQueueConfig().PollInterval, cfg.Queue.PollInterval)
}

func TestEnvironmentVariableInterpolationInConfig(t *testing.T) {
	configDir := t.TempDir()

	config := `
system:
  webhook:
    signing_key: "{{.TEST_SIGNING_KEY}}"
  mailer:
    api_key: "{{.TEST_MAILGUN_KEY}}"
`
	err := os.WriteFile(filepath.Join(configDir, "taskwire.yaml"), []byte(config), 0644)
	require.NoError(t, err)

	t.Setenv("TEST_SIGNING_KEY", "key-from-env")
	t.Setenv("TEST_MAILGUN_KEY", "mg-key")

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)

	require.NoError(t, err)
	assert.Equal(t, "key-from-env", cfg.Webhook.SigningKey)
	assert.Equal(t, "mg-key", cfg.Mailer.APIKey)
	assert.True(t, cfg.Mailer.DeliveryEnabled())
}

func TestResolveSystemDefaults(t *testing.T) {
	cfg := resolveServerConfig(nil)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "0.0.0.0", cfg.Host)

	webhook := resolveWebhookConfig(nil)
	assert.Equal(t, 120*time.Second, webhook.MaxAge)

	mailer := resolveMailerConfig(nil)
	assert.False(t, mailer.DeliveryEnabled())

	retention := resolveRetentionConfig(nil)
	assert.True(t, retention.RetentionEnabled())
}

func TestResolveKeywordsReplacesWholesale(t *testing.T) {
	user := &KeywordConfig{
		UrgentKeywords: []string{"mayday"},
	}
	cfg := resolveKeywords(user)

	assert.Equal(t, []string{"mayday"}, cfg.UrgentKeywords)
	// Unset lexicons keep the built-in lists
	assert.Equal(t, DefaultKeywordConfig().HighKeywords, cfg.HighKeywords)
	assert.NotEmpty(t, cfg.TaskTypeKeywords)
}

// Helper function to set up test config directory
func setupTestConfigDir(t *testing.T) string {
	dir := t.TempDir()

	taskwireYAML := `
defaults:
  task_type: "general"
  priority: "medium"

agents: {}
assignments: {}
`
	err := os.WriteFile(filepath.Join(dir, "taskwire.yaml"), []byte(taskwireYAML), 0644)
	require.NoError(t, err)

	return dir
}
