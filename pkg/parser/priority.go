package parser

import (
	"strings"
	"unicode"

	"github.com/taskwire/taskwire/pkg/models"
)

// detectPriority scans the normalized subject+body against the configured
// keyword sets. The highest priority among all matches wins: urgent beats
// high even when a low keyword also appears. No match yields the default.
func (p *Parser) detectPriority(text string) models.Priority {
	if containsAny(text, p.keywords.UrgentKeywords) {
		return models.PriorityUrgent
	}
	if containsAny(text, p.keywords.HighKeywords) {
		return models.PriorityHigh
	}
	if containsAny(text, p.keywords.LowKeywords) {
		return models.PriorityLow
	}
	return models.ParsePriority(p.defaults.Priority)
}

// detectTaskType returns the first task type in the configured precedence
// list whose keyword family matches; the configured default otherwise.
func (p *Parser) detectTaskType(text string) models.TaskType {
	for _, name := range p.keywords.TaskTypePrecedence {
		if containsAny(text, p.keywords.TaskTypeKeywords[name]) {
			return models.TaskType(name)
		}
	}
	return p.defaultTaskType()
}

// containsAny reports whether any keyword occurs in text. text must already
// be lowercased; keywords are matched case-insensitively.
func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if containsKeyword(text, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// containsKeyword matches multi-word keywords as substrings and single words
// on word boundaries, so "asap" does not fire inside "asapuna".
func containsKeyword(text, keyword string) bool {
	if keyword == "" {
		return false
	}
	if strings.ContainsRune(keyword, ' ') {
		return strings.Contains(text, keyword)
	}
	return containsWord(text, keyword)
}

func containsWord(text, word string) bool {
	for start := 0; start <= len(text)-len(word); {
		i := strings.Index(text[start:], word)
		if i < 0 {
			return false
		}
		i += start
		end := i + len(word)
		beforeOK := i == 0 || !isWordByte(text[i-1])
		afterOK := end == len(text) || !isWordByte(text[end])
		if beforeOK && afterOK {
			return true
		}
		start = i + 1
	}
	return false
}

func isWordByte(b byte) bool {
	r := rune(b)
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
