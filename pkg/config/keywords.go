package config

// KeywordConfig holds the keyword sets driving priority and task-type
// detection, plus the technology lexicon used for tagging. All matching is
// case-insensitive on normalized text.
type KeywordConfig struct {
	// Priority keyword sets. Detection precedence is urgent > high > low;
	// medium is the default when nothing matches.
	UrgentKeywords []string `yaml:"urgent_keywords,omitempty"`
	HighKeywords   []string `yaml:"high_keywords,omitempty"`
	LowKeywords    []string `yaml:"low_keywords,omitempty"`

	// TaskTypeKeywords maps task type → keyword family.
	TaskTypeKeywords map[string][]string `yaml:"task_type_keywords,omitempty"`

	// TaskTypePrecedence orders task types for detection; the first type in
	// this list with a keyword hit wins. Types absent from the list are
	// never detected (general is the implicit fallback).
	TaskTypePrecedence []string `yaml:"task_type_precedence,omitempty"`

	// TechnologyLexicon lists technologies recognized as tags and routed
	// into step context.
	TechnologyLexicon []string `yaml:"technology_lexicon,omitempty"`
}

// DefaultKeywordConfig returns the built-in keyword sets.
func DefaultKeywordConfig() *KeywordConfig {
	return &KeywordConfig{
		UrgentKeywords: []string{
			"urgent", "asap", "emergency", "critical", "immediately",
			"right away", "production down", "outage", "p0", "sev1",
		},
		HighKeywords: []string{
			"important", "high priority", "priority", "soon", "blocker",
			"blocking", "eod", "end of day", "today", "p1",
		},
		LowKeywords: []string{
			"low priority", "whenever", "no rush", "no hurry", "eventually",
			"nice to have", "someday", "backlog", "when you get a chance",
		},
		TaskTypeKeywords: map[string][]string{
			"code_review": {
				"review", "code review", "pull request", "pr review",
				"merge request", "lgtm", "approve",
			},
			"bug_report": {
				"bug", "broken", "error", "crash", "exception", "failing",
				"doesn't work", "does not work", "can't", "cannot", "regression",
				"stack trace", "500", "fix",
			},
			"feature_request": {
				"feature", "implement", "add support", "enhancement",
				"new functionality", "build", "create", "would be great",
			},
			"documentation": {
				"document", "documentation", "docs", "readme", "write up",
				"runbook", "guide", "changelog",
			},
			"deployment": {
				"deploy", "deployment", "release", "rollout", "rollback",
				"ship", "push to prod", "promote",
			},
			"investigation": {
				"investigate", "debug", "look into", "analyze", "analysis",
				"root cause", "why is", "diagnose", "profile",
			},
			"calendar_event": {
				"meeting", "schedule", "calendar", "invite", "appointment",
				"call at", "sync up", "standup",
			},
		},
		TaskTypePrecedence: []string{
			"code_review", "bug_report", "feature_request",
			"documentation", "deployment", "investigation", "calendar_event",
		},
		TechnologyLexicon: []string{
			"go", "golang", "python", "javascript", "typescript", "rust",
			"java", "kubernetes", "docker", "postgres", "postgresql", "redis",
			"kafka", "grpc", "graphql", "react", "terraform", "aws", "gcp",
			"azure", "linux", "nginx", "prometheus", "grafana",
		},
	}
}
