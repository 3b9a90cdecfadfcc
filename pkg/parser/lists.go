package parser

import (
	"regexp"
	"strings"
)

// minListItemLength drops noise items ("ok", "- x").
const minListItemLength = 4

// listSlot names the task field a list item lands in.
type listSlot int

const (
	slotDeliverables listSlot = iota
	slotSuccessCriteria
	slotConstraints
	slotDependencies
)

// listFields collects extracted list items per requirements slot.
type listFields struct {
	deliverables    []string
	successCriteria []string
	constraints     []string
	dependencies    []string
}

func (f *listFields) add(slot listSlot, item string) {
	item = strings.TrimSpace(item)
	if len(item) < minListItemLength {
		return
	}
	switch slot {
	case slotSuccessCriteria:
		f.successCriteria = append(f.successCriteria, item)
	case slotConstraints:
		f.constraints = append(f.constraints, item)
	case slotDependencies:
		f.dependencies = append(f.dependencies, item)
	default:
		f.deliverables = append(f.deliverables, item)
	}
}

func (f *listFields) appendToLast(slot listSlot, text string) bool {
	var target *[]string
	switch slot {
	case slotSuccessCriteria:
		target = &f.successCriteria
	case slotConstraints:
		target = &f.constraints
	case slotDependencies:
		target = &f.dependencies
	default:
		target = &f.deliverables
	}
	if len(*target) == 0 {
		return false
	}
	(*target)[len(*target)-1] += " " + strings.TrimSpace(text)
	return true
}

// sectionHeaderRe matches slot-binding headers, optionally marked up
// ("Deliverables:", "## Success Criteria", "**Requirements:** spec, tests").
var sectionHeaderRe = regexp.MustCompile(`(?i)^\s*(?:#{1,6}\s*)?\*{0,2}(deliverables|success criteria|acceptance criteria|requirements|constraints|dependencies)\*{0,2}\s*(:)?\s*(.*)$`)

var sectionSlots = map[string]listSlot{
	"deliverables":        slotDeliverables,
	"success criteria":    slotSuccessCriteria,
	"acceptance criteria": slotSuccessCriteria,
	"requirements":        slotConstraints,
	"constraints":         slotConstraints,
	"dependencies":        slotDependencies,
}

// Item strategies, scanned in precedence order per line: checkboxes,
// numbered, lettered, Roman numerals, bullets, emoji bullets.
var listItemPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\s*(?:[-*+]\s*)?\[[ xX]\]\s+(.+)$`),
	regexp.MustCompile(`^\s*\d{1,3}[.)]\s+(.+)$`),
	regexp.MustCompile(`^\s*[A-Za-z][.)]\s+(.+)$`),
	regexp.MustCompile(`^\s*[ivxlIVXL]{2,7}[.)]\s+(.+)$`),
	regexp.MustCompile(`^\s*[-*+•]\s+(.+)$`),
	regexp.MustCompile(`^\s*(?:✅|✔️|✔|☑️|☑|🔹|🔸|👉|➡️|→|►|‣)\s*(.+)$`),
}

var indentedContinuationRe = regexp.MustCompile(`^(?:\s{2,}|\t)(\S.*)$`)

// inlineIndicatorRe introduces an inline list ("including a, b and c").
var inlineIndicatorRe = regexp.MustCompile(`(?i)\b(?:including|such as|as follows|the following|namely)\b:?\s*(.+)$`)

// extractLists runs the multi-strategy extractor over a cleaned body.
// Section headers bind subsequent items to that slot until a plain
// paragraph line resets to the default (deliverables). Indented lines
// continue the previous item.
func extractLists(body string) listFields {
	var fields listFields
	slot := slotDeliverables
	lastWasItem := false

	for _, line := range strings.Split(body, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		if name, rest, ok := matchSectionHeader(line); ok {
			slot = sectionSlots[name]
			lastWasItem = false
			if rest != "" {
				// Header with content on the same line is an inline list
				for _, item := range splitInlineItems(rest) {
					fields.add(slot, item)
				}
			}
			continue
		}

		if item, ok := matchListItem(line); ok {
			fields.add(slot, item)
			lastWasItem = true
			continue
		}

		if lastWasItem {
			if m := indentedContinuationRe.FindStringSubmatch(line); m != nil {
				fields.appendToLast(slot, m[1])
				continue
			}
		}

		// Plain paragraph: check for an inline list, then reset the slot
		extractInlineList(line, slot, &fields)
		slot = slotDeliverables
		lastWasItem = false
	}

	return fields
}

func matchSectionHeader(line string) (name, rest string, ok bool) {
	m := sectionHeaderRe.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	name = strings.ToLower(m[1])
	rest = strings.TrimSpace(m[3])
	// Without a colon the line must be a bare header, otherwise it is prose
	// ("dependencies are tracked elsewhere").
	if m[2] == "" && rest != "" {
		return "", "", false
	}
	return name, rest, true
}

func matchListItem(line string) (string, bool) {
	for _, re := range listItemPatterns {
		if m := re.FindStringSubmatch(line); m != nil {
			return strings.TrimSpace(m[1]), true
		}
	}
	return "", false
}

// extractInlineList captures comma/semicolon/and-separated items from a
// paragraph line. An indicator word ("including", "such as") accepts 2+
// items; a bare colon intro requires 3+.
func extractInlineList(line string, slot listSlot, fields *listFields) {
	minItems := 0
	var tail string

	if m := inlineIndicatorRe.FindStringSubmatch(line); m != nil {
		tail = m[1]
		minItems = 2
	} else if idx := strings.Index(line, ":"); idx > 0 && idx < 60 {
		tail = line[idx+1:]
		minItems = 3
	} else {
		return
	}

	items := splitInlineItems(tail)
	if len(items) < minItems {
		return
	}
	for _, item := range items {
		fields.add(slot, item)
	}
}

func splitInlineItems(text string) []string {
	sep := ","
	if strings.Contains(text, ";") {
		sep = ";"
	}
	var items []string
	for _, fragment := range strings.Split(text, sep) {
		for _, piece := range strings.Split(fragment, " and ") {
			piece = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(piece), "."))
			if len(piece) >= minListItemLength {
				items = append(items, piece)
			}
		}
	}
	return items
}
