package config

// Defaults contains system-wide default values applied when an email or a
// dispatch request does not pin one explicitly.
type Defaults struct {
	// Task type assigned when classification finds no keyword match
	TaskType string `yaml:"task_type,omitempty"`

	// Priority assigned when no priority keyword matches
	Priority string `yaml:"priority,omitempty"`

	// Workflow template used when routing cannot resolve an intent
	WorkflowTemplate string `yaml:"workflow_template,omitempty"`

	// Email body masking configuration, applied before DB storage
	Masking *MaskingConfig `yaml:"masking,omitempty"`
}
