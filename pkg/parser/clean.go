package parser

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	replyAttributionRe = regexp.MustCompile(`^On .+ wrote:$`)
	forwardMarkerRe    = regexp.MustCompile(`^-{4,}\s*Forwarded message`)
)

// closingLines end an email; the closing and everything after it is
// signature territory.
var closingLines = map[string]bool{
	"regards":           true,
	"best regards":      true,
	"kind regards":      true,
	"warm regards":      true,
	"best":              true,
	"thanks":            true,
	"thank you":         true,
	"many thanks":       true,
	"thanks in advance": true,
	"cheers":            true,
	"sincerely":         true,
	"sincerely yours":   true,
}

// boilerplateMarkers flag confidentiality footers and mailing-list noise.
var boilerplateMarkers = []string{
	"confidentiality notice",
	"intended recipient",
	"privileged and confidential",
	"this email and any attachments",
	"do not distribute",
	"please notify the sender",
	"unsubscribe",
}

// cleanBody strips quoted replies, signatures, and boilerplate from an email
// body while preserving fenced code blocks. The returned text contains one
// placeholder line per code block; restoreCodeBlocks puts them back.
func cleanBody(body string) (string, []string) {
	withPlaceholders, codeBlocks := extractCodeBlocks(body)

	var kept []string
	blankRun := 0

scan:
	for _, line := range strings.Split(withPlaceholders, "\n") {
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "--" || line == "-- ":
			break scan
		case replyAttributionRe.MatchString(trimmed):
			break scan
		case forwardMarkerRe.MatchString(trimmed):
			break scan
		case closingLines[normalizeClosing(trimmed)]:
			break scan
		case strings.HasPrefix(trimmed, ">"):
			continue
		case strings.HasPrefix(strings.ToLower(trimmed), "sent from my "):
			continue
		case isBoilerplate(trimmed):
			continue
		}

		if trimmed == "" {
			blankRun++
			if blankRun > 1 {
				continue
			}
		} else {
			blankRun = 0
		}
		kept = append(kept, line)
	}

	return strings.TrimSpace(strings.Join(kept, "\n")), codeBlocks
}

func normalizeClosing(line string) string {
	return strings.ToLower(strings.TrimRight(line, ",.!"))
}

func isBoilerplate(line string) bool {
	lower := strings.ToLower(line)
	for _, marker := range boilerplateMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

func codeBlockPlaceholder(i int) string {
	return fmt.Sprintf("[[code-block-%d]]", i)
}

// extractCodeBlocks replaces each fenced ``` block with a placeholder line so
// cleaning and list extraction never touch code. An unterminated fence runs
// to the end of the body.
func extractCodeBlocks(body string) (string, []string) {
	if !strings.Contains(body, "```") {
		return body, nil
	}

	var (
		out     []string
		blocks  []string
		current []string
		inFence bool
	)
	for _, line := range strings.Split(body, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			current = append(current, line)
			if inFence {
				blocks = append(blocks, strings.Join(current, "\n"))
				out = append(out, codeBlockPlaceholder(len(blocks)-1))
				current = nil
			}
			inFence = !inFence
			continue
		}
		if inFence {
			current = append(current, line)
			continue
		}
		out = append(out, line)
	}
	if inFence && len(current) > 0 {
		blocks = append(blocks, strings.Join(current, "\n"))
		out = append(out, codeBlockPlaceholder(len(blocks)-1))
	}

	return strings.Join(out, "\n"), blocks
}

// restoreCodeBlocks substitutes extracted code blocks back into cleaned text.
func restoreCodeBlocks(text string, blocks []string) string {
	for i, block := range blocks {
		text = strings.Replace(text, codeBlockPlaceholder(i), block, 1)
	}
	return text
}
