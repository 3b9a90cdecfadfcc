package parser

import (
	"regexp"
	"strings"
)

var (
	// Hashtags must start with a letter so "PR #123" is not one.
	hashtagRe = regexp.MustCompile(`(?:^|\s)#([A-Za-z][A-Za-z0-9_-]*)`)

	// Mentions must follow a boundary so the domain half of an email
	// address never matches.
	mentionRe = regexp.MustCompile(`(?:^|[\s(,;])@([A-Za-z][A-Za-z0-9._-]*)`)

	projectRefRe = regexp.MustCompile(`(?i)\b(?:pr|mr|issue|ticket|project)\s*#(\d+)`)
)

// extractTags unions hashtags, @mentions (prefixed mention:), technology
// lexicon hits, and project references (PR #123 → project:123). Duplicates
// are dropped case-insensitively, keeping the first occurrence.
func (p *Parser) extractTags(subject, body string) []string {
	text := subject + "\n" + body

	var tags []string
	seen := make(map[string]bool)
	add := func(tag string) {
		key := strings.ToLower(tag)
		if key == "" || seen[key] {
			return
		}
		seen[key] = true
		tags = append(tags, tag)
	}

	for _, m := range hashtagRe.FindAllStringSubmatch(text, -1) {
		add(strings.TrimRight(m[1], "-_"))
	}
	for _, m := range mentionRe.FindAllStringSubmatch(text, -1) {
		if name := strings.TrimRight(m[1], "._-"); name != "" {
			add("mention:" + name)
		}
	}

	lowerBody := strings.ToLower(body)
	for _, tech := range p.keywords.TechnologyLexicon {
		if containsKeyword(lowerBody, strings.ToLower(tech)) {
			add(tech)
		}
	}

	for _, m := range projectRefRe.FindAllStringSubmatch(text, -1) {
		add("project:" + m[1])
	}

	return tags
}
