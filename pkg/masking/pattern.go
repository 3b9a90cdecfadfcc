package masking

import (
	"log/slog"
	"regexp"

	"github.com/taskwire/taskwire/pkg/config"
)

// CompiledPattern holds a pre-compiled regex pattern with its replacement.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
	Description string
}

// compileGroup resolves a pattern group name into compiled patterns.
// Invalid patterns are logged and skipped; unknown group names resolve empty.
func compileGroup(groupName string) []*CompiledPattern {
	builtin := config.GetBuiltinConfig()

	names, ok := builtin.PatternGroups[groupName]
	if !ok {
		slog.Warn("Unknown masking pattern group, masking disabled", "group", groupName)
		return nil
	}

	compiled := make([]*CompiledPattern, 0, len(names))
	seen := make(map[string]bool)
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true

		pattern, ok := builtin.MaskingPatterns[name]
		if !ok {
			slog.Error("Pattern group references unknown masking pattern, skipping",
				"group", groupName, "pattern", name)
			continue
		}
		re, err := regexp.Compile(pattern.Pattern)
		if err != nil {
			slog.Error("Failed to compile masking pattern, skipping",
				"pattern", name, "error", err)
			continue
		}
		compiled = append(compiled, &CompiledPattern{
			Name:        name,
			Regex:       re,
			Replacement: pattern.Replacement,
			Description: pattern.Description,
		})
	}
	return compiled
}
