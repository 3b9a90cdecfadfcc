package parser

import (
	"regexp"
	"strings"
)

const (
	maxTitleLength = 100
	minTitleLength = 10
)

var replyPrefixRe = regexp.MustCompile(`(?i)^\s*(?:re|fw|fwd)\s*:\s*`)

// genericTitles are subjects too vague to stand as a task title.
var genericTitles = map[string]bool{
	"task":      true,
	"help":      true,
	"hi":        true,
	"hello":     true,
	"hey":       true,
	"request":   true,
	"question":  true,
	"update":    true,
	"urgent":    true,
	"important": true,
	"fyi":       true,
	"reminder":  true,
}

// actionKeywords mark a body line as a usable title when the subject is not.
var actionKeywords = []string{
	"review", "fix", "implement", "update", "create", "add", "remove",
	"deploy", "investigate", "write", "document", "test", "check",
	"build", "refactor", "upgrade", "migrate", "schedule", "prepare", "draft",
}

// extractTitle derives the task title: the subject stripped of reply/forward
// prefixes when it is long enough and specific, otherwise the first of five
// body lines containing an action keyword, otherwise "Email Task".
func extractTitle(subject, body string) string {
	title := strings.TrimSpace(subject)
	for {
		stripped := replyPrefixRe.ReplaceAllString(title, "")
		if stripped == title {
			break
		}
		title = stripped
	}
	title = strings.TrimSpace(title)

	if len(title) >= minTitleLength && !isGenericTitle(title) {
		return truncate(title, maxTitleLength)
	}

	scanned := 0
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		scanned++
		if scanned > 5 {
			break
		}
		if containsAny(strings.ToLower(line), actionKeywords) {
			return truncate(line, maxTitleLength)
		}
	}

	return "Email Task"
}

func isGenericTitle(title string) bool {
	normalized := strings.ToLower(strings.TrimRight(strings.TrimSpace(title), ".!?,"))
	return genericTitles[normalized]
}
