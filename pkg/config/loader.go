package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// TaskwireYAMLConfig represents the complete taskwire.yaml file structure
type TaskwireYAMLConfig struct {
	System      *SystemYAMLConfig          `yaml:"system"`
	Agents      map[string]AgentProfile    `yaml:"agents"`
	Assignments map[string]AgentAssignment `yaml:"assignments"`
	Keywords    *KeywordConfig             `yaml:"keywords"`
	Defaults    *Defaults                  `yaml:"defaults"`
	Queue       *QueueConfig               `yaml:"queue"`
	Resilience  *ResilienceConfig          `yaml:"resilience"`
	Cache       *CacheConfig               `yaml:"cache"`
}

// SystemYAMLConfig groups system-wide infrastructure settings.
type SystemYAMLConfig struct {
	Server    *ServerConfig    `yaml:"server"`
	Webhook   *WebhookConfig   `yaml:"webhook"`
	Mailer    *MailerConfig    `yaml:"mailer"`
	LLM       *LLMConfig       `yaml:"llm"`
	Retention *RetentionConfig `yaml:"retention"`
}

// WorkflowsYAMLConfig represents the complete workflows.yaml file structure
type WorkflowsYAMLConfig struct {
	Workflows map[string]WorkflowTemplate `yaml:"workflows"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load YAML files from configDir
//  2. Expand environment variables
//  3. Parse YAML into structs
//  4. Merge built-in + user-defined configurations
//  5. Build in-memory registries
//  6. Apply default values
//  7. Validate all configuration
//  8. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	// 1. Load configuration files
	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// 2. Validate all configuration
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"agents", stats.Agents,
		"assignments", stats.Assignments,
		"templates", stats.Templates)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{
		configDir: configDir,
	}

	// 1. Load taskwire.yaml (contains system, agents, assignments, keywords, defaults)
	mainConfig, err := loader.loadTaskwireYAML()
	if err != nil {
		return nil, NewLoadError("taskwire.yaml", err)
	}

	// 2. Load workflows.yaml (optional; built-in templates cover the default set)
	userTemplates, err := loader.loadWorkflowsYAML()
	if err != nil {
		return nil, NewLoadError("workflows.yaml", err)
	}

	// 3. Get built-in configuration
	builtin := GetBuiltinConfig()

	// 4. Merge built-in + user-defined components (user overrides built-in)
	agents := mergeAgents(builtin.Agents, mainConfig.Agents)
	assignments := mergeAssignments(builtin.Assignments, mainConfig.Assignments)
	templates := mergeTemplates(builtin.Templates, userTemplates)

	// 5. Build registries
	agentRegistry := NewAgentRegistry(agents)
	assignmentMap := NewAssignmentMap(assignments)
	templateRegistry := NewTemplateRegistry(templates)

	// 6. Resolve defaults (YAML overrides built-in)
	defaults := mainConfig.Defaults
	if defaults == nil {
		defaults = &Defaults{}
	}
	if defaults.TaskType == "" {
		defaults.TaskType = builtin.DefaultTaskType
	}
	if defaults.Priority == "" {
		defaults.Priority = builtin.DefaultPriority
	}
	if defaults.WorkflowTemplate == "" {
		defaults.WorkflowTemplate = "feature_development"
	}
	if defaults.Masking == nil {
		defaults.Masking = DefaultMaskingConfig()
	}

	// Resolve keyword lexicons (user YAML replaces a lexicon wholesale when set)
	keywords := resolveKeywords(mainConfig.Keywords)

	// Resolve queue config (merge user YAML with built-in defaults)
	// Start with defaults, then merge user config on top to preserve unset defaults
	queueConfig := DefaultQueueConfig()
	if mainConfig.Queue != nil {
		if err := mergo.Merge(queueConfig, mainConfig.Queue, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge queue config: %w", err)
		}
	}

	// Resolve resilience config the same way
	resilienceConfig := DefaultResilienceConfig()
	if mainConfig.Resilience != nil {
		if err := mergo.Merge(resilienceConfig, mainConfig.Resilience, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge resilience config: %w", err)
		}
	}

	// Resolve cache config the same way
	cacheConfig := DefaultCacheConfig()
	if mainConfig.Cache != nil {
		if err := mergo.Merge(cacheConfig, mainConfig.Cache, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge cache config: %w", err)
		}
	}

	// Resolve system config (server, webhook, mailer, LLM, retention)
	serverCfg := resolveServerConfig(mainConfig.System)
	webhookCfg := resolveWebhookConfig(mainConfig.System)
	mailerCfg := resolveMailerConfig(mainConfig.System)
	llmCfg := resolveLLMConfig(mainConfig.System)
	retentionCfg := resolveRetentionConfig(mainConfig.System)

	return &Config{
		configDir:        configDir,
		Defaults:         defaults,
		Keywords:         keywords,
		Queue:            queueConfig,
		Resilience:       resilienceConfig,
		Cache:            cacheConfig,
		Server:           serverCfg,
		Webhook:          webhookCfg,
		Mailer:           mailerCfg,
		LLM:              llmCfg,
		Retention:        retentionCfg,
		AgentRegistry:    agentRegistry,
		Assignments:      assignmentMap,
		TemplateRegistry: templateRegistry,
	}, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	// Read file
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax
	// Note: ExpandEnv passes through original data on parse/execution errors,
	// allowing YAML parser to handle the content (or fail with clearer error message)
	data = ExpandEnv(data)

	// Parse YAML
	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func (l *configLoader) loadTaskwireYAML() (*TaskwireYAMLConfig, error) {
	var config TaskwireYAMLConfig

	// Initialize maps to avoid nil maps
	config.Agents = make(map[string]AgentProfile)
	config.Assignments = make(map[string]AgentAssignment)

	if err := l.loadYAML("taskwire.yaml", &config); err != nil {
		return nil, err
	}

	return &config, nil
}

func (l *configLoader) loadWorkflowsYAML() (map[string]WorkflowTemplate, error) {
	var config WorkflowsYAMLConfig

	// Initialize map to avoid nil map
	config.Workflows = make(map[string]WorkflowTemplate)

	if err := l.loadYAML("workflows.yaml", &config); err != nil {
		// workflows.yaml is optional; built-in templates remain in effect
		if errors.Is(err, ErrConfigNotFound) {
			return config.Workflows, nil
		}
		return nil, err
	}

	return config.Workflows, nil
}

// resolveKeywords resolves keyword lexicons from YAML, applying built-in
// lexicons for any list left unset. A lexicon set in YAML replaces the
// built-in list rather than appending to it.
func resolveKeywords(user *KeywordConfig) *KeywordConfig {
	cfg := DefaultKeywordConfig()
	if user == nil {
		return cfg
	}

	if len(user.UrgentKeywords) > 0 {
		cfg.UrgentKeywords = user.UrgentKeywords
	}
	if len(user.HighKeywords) > 0 {
		cfg.HighKeywords = user.HighKeywords
	}
	if len(user.LowKeywords) > 0 {
		cfg.LowKeywords = user.LowKeywords
	}
	if len(user.TaskTypeKeywords) > 0 {
		cfg.TaskTypeKeywords = user.TaskTypeKeywords
	}
	if len(user.TaskTypePrecedence) > 0 {
		cfg.TaskTypePrecedence = user.TaskTypePrecedence
	}
	if len(user.TechnologyLexicon) > 0 {
		cfg.TechnologyLexicon = user.TechnologyLexicon
	}

	return cfg
}

// resolveServerConfig resolves HTTP server configuration from system YAML, applying defaults.
func resolveServerConfig(sys *SystemYAMLConfig) *ServerConfig {
	cfg := DefaultServerConfig()

	if sys == nil || sys.Server == nil {
		return cfg
	}

	s := sys.Server
	if s.Host != "" {
		cfg.Host = s.Host
	}
	if s.Port > 0 {
		cfg.Port = s.Port
	}
	if s.AdminToken != "" {
		cfg.AdminToken = s.AdminToken
	}
	if s.ReadTimeout > 0 {
		cfg.ReadTimeout = s.ReadTimeout
	}
	if s.WriteTimeout > 0 {
		cfg.WriteTimeout = s.WriteTimeout
	}

	return cfg
}

// resolveWebhookConfig resolves webhook verification settings from system YAML, applying defaults.
func resolveWebhookConfig(sys *SystemYAMLConfig) *WebhookConfig {
	cfg := DefaultWebhookConfig()

	if sys == nil || sys.Webhook == nil {
		return cfg
	}

	w := sys.Webhook
	if w.SigningKey != "" {
		cfg.SigningKey = w.SigningKey
	}
	if w.MaxAge > 0 {
		cfg.MaxAge = w.MaxAge
	}

	return cfg
}

// resolveMailerConfig resolves outbound mail settings from system YAML, applying defaults.
func resolveMailerConfig(sys *SystemYAMLConfig) *MailerConfig {
	cfg := DefaultMailerConfig()

	if sys == nil || sys.Mailer == nil {
		return cfg
	}

	m := sys.Mailer
	if m.Enabled != nil {
		cfg.Enabled = m.Enabled
	}
	if m.BaseURL != "" {
		cfg.BaseURL = m.BaseURL
	}
	if m.Domain != "" {
		cfg.Domain = m.Domain
	}
	if m.APIKey != "" {
		cfg.APIKey = m.APIKey
	}
	if m.From != "" {
		cfg.From = m.From
	}
	if m.Timeout > 0 {
		cfg.Timeout = m.Timeout
	}

	return cfg
}

// resolveLLMConfig resolves agent backend settings from system YAML, applying defaults.
func resolveLLMConfig(sys *SystemYAMLConfig) *LLMConfig {
	cfg := DefaultLLMConfig()

	if sys == nil || sys.LLM == nil {
		return cfg
	}

	l := sys.LLM
	if l.Address != "" {
		cfg.Address = l.Address
	}
	if l.DefaultModel != "" {
		cfg.DefaultModel = l.DefaultModel
	}
	if l.CallTimeout > 0 {
		cfg.CallTimeout = l.CallTimeout
	}
	if l.MaxTokens > 0 {
		cfg.MaxTokens = l.MaxTokens
	}
	if l.Temperature > 0 {
		cfg.Temperature = l.Temperature
	}

	return cfg
}

// resolveRetentionConfig resolves retention configuration from system YAML, applying defaults.
func resolveRetentionConfig(sys *SystemYAMLConfig) *RetentionConfig {
	cfg := DefaultRetentionConfig()

	if sys == nil || sys.Retention == nil {
		return cfg
	}

	r := sys.Retention
	if r.Enabled != nil {
		cfg.Enabled = r.Enabled
	}
	if r.TaskMaxAge > 0 {
		cfg.TaskMaxAge = r.TaskMaxAge
	}
	if r.EventMaxAge > 0 {
		cfg.EventMaxAge = r.EventMaxAge
	}
	if r.CheckInterval > 0 {
		cfg.CheckInterval = r.CheckInterval
	}

	return cfg
}
