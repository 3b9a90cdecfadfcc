package config

// Config is the umbrella configuration object that encapsulates
// all registries, defaults, and configuration state.
// This is the primary object returned by Initialize() and used throughout the application.
type Config struct {
	configDir string // Configuration directory path (for reference)

	// System-wide defaults
	Defaults *Defaults

	// Keyword lexicons used by the email parser
	Keywords *KeywordConfig

	// Queue and worker pool configuration
	Queue *QueueConfig

	// Retry, breaker, and fallback configuration
	Resilience *ResilienceConfig

	// Result and replay cache configuration
	Cache *CacheConfig

	// HTTP server settings
	Server *ServerConfig

	// Inbound webhook verification settings
	Webhook *WebhookConfig

	// Outbound mail delivery settings
	Mailer *MailerConfig

	// Agent backend settings
	LLM *LLMConfig

	// Data retention settings
	Retention *RetentionConfig

	// Component registries
	AgentRegistry    *AgentRegistry
	Assignments      *AssignmentMap
	TemplateRegistry *TemplateRegistry
}

// Initialize is defined in loader.go

// Stats contains statistics about loaded configuration
type Stats struct {
	Agents      int
	Assignments int
	Templates   int
}

// Stats returns configuration statistics for logging/monitoring
func (c *Config) Stats() Stats {
	s := Stats{}
	if c.AgentRegistry != nil {
		s.Agents = c.AgentRegistry.Len()
	}
	if c.Assignments != nil {
		s.Assignments = c.Assignments.Len()
	}
	if c.TemplateRegistry != nil {
		s.Templates = c.TemplateRegistry.Len()
	}
	return s
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}

// GetAgent retrieves an agent profile by ID.
// This is a convenience method that wraps AgentRegistry.Get().
func (c *Config) GetAgent(id string) (*AgentProfile, error) {
	return c.AgentRegistry.Get(id)
}

// GetTemplate retrieves a workflow template by ID.
// This is a convenience method that wraps TemplateRegistry.Get().
func (c *Config) GetTemplate(id string) (*WorkflowTemplate, error) {
	return c.TemplateRegistry.Get(id)
}

// ResolveAssignment returns the agent assignment for a task type, falling
// back to the generalist when the task type has no mapping.
func (c *Config) ResolveAssignment(taskType string) (AgentAssignment, bool) {
	return c.Assignments.Resolve(taskType)
}
