package router

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/taskwire/taskwire/pkg/models"
)

// taskTypeIntents maps the parser's classification onto router intents. The
// keyword families behind both sides are the same, so this mapping is a
// relabeling, not a second detection pass.
var taskTypeIntents = map[models.TaskType]Intent{
	models.TaskTypeBugReport:      IntentBugFixing,
	models.TaskTypeFeatureRequest: IntentCodeDevelopment,
	models.TaskTypeCodeReview:     IntentCodeReview,
	models.TaskTypeDocumentation:  IntentDocumentation,
	models.TaskTypeDeployment:     IntentDeployment,
	models.TaskTypeInvestigation:  IntentInvestigation,
	models.TaskTypeCalendarEvent:  IntentScheduling,
	models.TaskTypeGeneral:        IntentGeneralQuery,
}

var (
	// fileRe catches path-ish tokens (handler.go, pkg/api/server.go).
	fileRe = regexp.MustCompile(`[\w./-]+\.(?:go|py|js|jsx|ts|tsx|java|rs|rb|c|cc|cpp|h|sql|ya?ml|json|toml|proto|md|sh|tf)\b`)
	// ticketRe catches issue tracker references (INFRA-142, PROJ-9).
	ticketRe = regexp.MustCompile(`\b[A-Z][A-Z0-9]+-\d+\b`)
	// quotedRe catches short double-quoted phrases treated as named entities.
	quotedRe = regexp.MustCompile(`"([^"\n]{2,60})"`)
)

// Analyze derives the NLU reading of a task: intent from the parsed type,
// complexity from size signals, entities and technologies from the text.
func (r *Router) Analyze(task *models.Task) NLUAnalysis {
	text := normalize(task.Title + " " + task.Description)

	analysis := NLUAnalysis{
		Intent:       intentFor(task.TaskType),
		Entities:     extractEntities(task),
		Technologies: r.matchLexicon(text),
		UrgencyHints: r.urgencyHints(text),
	}
	analysis.Complexity = r.scoreComplexity(task, analysis)
	return analysis
}

func intentFor(taskType models.TaskType) Intent {
	if intent, ok := taskTypeIntents[taskType]; ok {
		return intent
	}
	return IntentGeneralQuery
}

// scoreComplexity buckets effort from additive signals: body length, list
// volume, technology spread, and attachments.
func (r *Router) scoreComplexity(task *models.Task, analysis NLUAnalysis) Complexity {
	score := 0

	switch length := len(task.Description); {
	case length > 1500:
		score += 2
	case length > 500:
		score++
	}

	lists := len(task.Dependencies) + len(task.SuccessCriteria) + len(task.Constraints) + len(task.Deliverables)
	switch {
	case lists > 6:
		score += 2
	case lists > 2:
		score++
	}

	if len(analysis.Technologies) > 3 {
		score++
	}
	if task.EmailMetadata != nil && len(task.EmailMetadata.Attachments) > 0 {
		score++
	}

	switch {
	case score >= 4:
		return ComplexityHigh
	case score >= 2:
		return ComplexityMedium
	default:
		return ComplexityLow
	}
}

// extractEntities collects file paths, ticket references, and quoted phrases
// from the original text, plus the parser's project tags.
func extractEntities(task *models.Task) []string {
	text := task.Title + " " + task.Description

	seen := make(map[string]bool)
	var entities []string
	add := func(e string) {
		e = strings.TrimSpace(e)
		if e == "" {
			return
		}
		key := strings.ToLower(e)
		if !seen[key] {
			seen[key] = true
			entities = append(entities, e)
		}
	}

	for _, m := range fileRe.FindAllString(text, -1) {
		add(m)
	}
	for _, m := range ticketRe.FindAllString(text, -1) {
		add(m)
	}
	for _, m := range quotedRe.FindAllStringSubmatch(text, -1) {
		add(m[1])
	}
	for _, tag := range task.Tags {
		if strings.HasPrefix(tag, "project:") {
			add(tag)
		}
	}
	return entities
}

// matchLexicon returns the configured technologies present in text.
func (r *Router) matchLexicon(text string) []string {
	var matched []string
	for _, tech := range r.keywords.TechnologyLexicon {
		if containsWord(text, strings.ToLower(tech)) {
			matched = append(matched, tech)
		}
	}
	return matched
}

// urgencyHints returns every urgent/high keyword found, strongest first.
func (r *Router) urgencyHints(text string) []string {
	var hints []string
	for _, kw := range r.keywords.UrgentKeywords {
		if matchKeyword(text, strings.ToLower(kw)) {
			hints = append(hints, kw)
		}
	}
	for _, kw := range r.keywords.HighKeywords {
		if matchKeyword(text, strings.ToLower(kw)) {
			hints = append(hints, kw)
		}
	}
	return hints
}

func normalize(s string) string {
	return strings.ToLower(s)
}

// matchKeyword matches multi-word keywords as substrings, single words on
// word boundaries.
func matchKeyword(text, keyword string) bool {
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
