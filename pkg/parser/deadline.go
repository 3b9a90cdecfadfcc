package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// minDeadlineConfidence is the acceptance floor; weaker candidates are
// discarded rather than guessed.
const minDeadlineConfidence = 0.7

// Business hours close; relative dates without an explicit time land here.
const (
	businessCloseHour = 17
	endOfDayHour      = 23
	endOfDayMinute    = 59
)

// isoDateRe matches YYYY-MM-DD with an optional time part. Input text is
// lowercased, so the date/time separator is "t" or a space.
var isoDateRe = regexp.MustCompile(`\b(\d{4}-\d{2}-\d{2})(?:[t ](\d{2}):(\d{2})(?::(\d{2}))?)?\b`)

type deadlinePattern struct {
	re         *regexp.Regexp
	confidence float64
	resolve    func(now time.Time, m []string) (time.Time, bool)
}

var weekdayNames = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

const weekdayAlt = `monday|tuesday|wednesday|thursday|friday|saturday|sunday`

// deadlinePatterns is scanned in order; every match becomes a candidate and
// the highest-confidence future candidate wins.
var deadlinePatterns = []deadlinePattern{
	{
		re:         regexp.MustCompile(`by\s+(?:cob|close of business)(?:\s+on)?\s+(` + weekdayAlt + `)`),
		confidence: 0.92,
		resolve:    resolveWeekday,
	},
	{
		re:         regexp.MustCompile(`within\s+(\d+)\s+business\s+days?`),
		confidence: 0.9,
		resolve:    resolveBusinessDays,
	},
	{
		re:         regexp.MustCompile(`(?:within|in)\s+(?:the\s+next\s+)?(\d+)\s+(hours?|days?|weeks?|months?)`),
		confidence: 0.85,
		resolve:    resolveRelativeUnits,
	},
	{
		re:         regexp.MustCompile(`next\s+(` + weekdayAlt + `)`),
		confidence: 0.85,
		resolve:    resolveWeekday,
	},
	{
		re:         regexp.MustCompile(`by\s+(?:this\s+)?(` + weekdayAlt + `)`),
		confidence: 0.8,
		resolve:    resolveWeekday,
	},
	{
		re:         regexp.MustCompile(`\btomorrow\b`),
		confidence: 0.85,
		resolve: func(now time.Time, _ []string) (time.Time, bool) {
			return atHour(now.AddDate(0, 0, 1), businessCloseHour, 0), true
		},
	},
	{
		re:         regexp.MustCompile(`\b(?:eod|end of (?:the )?day)\b`),
		confidence: 0.8,
		resolve: func(now time.Time, _ []string) (time.Time, bool) {
			return atHour(now, endOfDayHour, endOfDayMinute), true
		},
	},
	{
		re:         regexp.MustCompile(`\b(?:eow|end of (?:the )?week)\b`),
		confidence: 0.78,
		resolve: func(now time.Time, _ []string) (time.Time, bool) {
			return upcomingWeekday(now, time.Friday), true
		},
	},
	{
		re:         regexp.MustCompile(`\b(?:eom|end of (?:the )?month)\b`),
		confidence: 0.75,
		resolve: func(now time.Time, _ []string) (time.Time, bool) {
			return lastDayOfMonth(now.Year(), now.Month()), true
		},
	},
	{
		re:         regexp.MustCompile(`\b(?:eoq|end of (?:the )?quarter)\b`),
		confidence: 0.75,
		resolve: func(now time.Time, _ []string) (time.Time, bool) {
			return endOfQuarter(now.Year(), now.Month()), true
		},
	},
	{
		re:         regexp.MustCompile(`\bq([1-4])\s+(\d{4})\b`),
		confidence: 0.72,
		resolve:    resolveNamedQuarter,
	},
	{
		re:         regexp.MustCompile(`\b(?:asap|as soon as possible|urgently|urgent|immediately|right away)\b`),
		confidence: 0.9,
		resolve: func(now time.Time, _ []string) (time.Time, bool) {
			return now.Add(4 * time.Hour), true
		},
	},
	{
		re:         regexp.MustCompile(`(?:by|due(?:\s+by)?|deadline:?|before)\s+([a-z0-9][a-z0-9:,/ ]{2,39})`),
		confidence: 0.7,
		resolve:    resolveFuzzy,
	},
}

// extractDeadline runs the two-pass extraction over lowercased text and
// returns the highest-confidence candidate strictly in the future, with its
// confidence. nil when nothing acceptable is found.
func extractDeadline(text string, now time.Time) (*time.Time, float64) {
	var (
		best     time.Time
		bestConf float64
	)
	consider := func(at time.Time, conf float64) {
		if conf < minDeadlineConfidence || !at.After(now) {
			return
		}
		if conf > bestConf {
			best, bestConf = at, conf
		}
	}

	// Pass 1: ISO dates
	for _, m := range isoDateRe.FindAllStringSubmatch(text, -1) {
		if at, withTime, ok := parseISO(m); ok {
			conf := 0.95
			if withTime {
				conf = 0.98
			}
			consider(at, conf)
		}
	}

	// Pass 2: phrase patterns
	for _, p := range deadlinePatterns {
		m := p.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if at, ok := p.resolve(now, m); ok {
			consider(at.UTC(), p.confidence)
		}
	}

	if bestConf == 0 {
		return nil, 0
	}
	best = best.UTC()
	return &best, bestConf
}

func parseISO(m []string) (at time.Time, withTime bool, ok bool) {
	date, err := time.ParseInLocation("2006-01-02", m[1], time.UTC)
	if err != nil {
		return time.Time{}, false, false
	}
	if m[2] == "" {
		return date, false, true
	}
	hour, _ := strconv.Atoi(m[2])
	minute, _ := strconv.Atoi(m[3])
	second := 0
	if m[4] != "" {
		second, _ = strconv.Atoi(m[4])
	}
	if hour > 23 || minute > 59 || second > 59 {
		return date, false, true
	}
	return date.Add(time.Duration(hour)*time.Hour +
		time.Duration(minute)*time.Minute +
		time.Duration(second)*time.Second), true, true
}

func resolveWeekday(now time.Time, m []string) (time.Time, bool) {
	wd, ok := weekdayNames[m[1]]
	if !ok {
		return time.Time{}, false
	}
	days := int((wd - now.Weekday() + 7) % 7)
	if days == 0 {
		days = 7
	}
	return atHour(now.AddDate(0, 0, days), businessCloseHour, 0), true
}

func resolveBusinessDays(now time.Time, m []string) (time.Time, bool) {
	n, err := strconv.Atoi(m[1])
	if err != nil || n <= 0 || n > 365 {
		return time.Time{}, false
	}
	d := now
	for added := 0; added < n; {
		d = d.AddDate(0, 0, 1)
		if d.Weekday() != time.Saturday && d.Weekday() != time.Sunday {
			added++
		}
	}
	return atHour(d, businessCloseHour, 0), true
}

func resolveRelativeUnits(now time.Time, m []string) (time.Time, bool) {
	n, err := strconv.Atoi(m[1])
	if err != nil || n <= 0 || n > 1000 {
		return time.Time{}, false
	}
	switch strings.TrimSuffix(m[2], "s") {
	case "hour":
		return now.Add(time.Duration(n) * time.Hour), true
	case "day":
		return now.AddDate(0, 0, n), true
	case "week":
		return now.AddDate(0, 0, 7*n), true
	case "month":
		return now.AddDate(0, n, 0), true
	}
	return time.Time{}, false
}

func resolveNamedQuarter(_ time.Time, m []string) (time.Time, bool) {
	q, err := strconv.Atoi(m[1])
	if err != nil {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(m[2])
	if err != nil {
		return time.Time{}, false
	}
	return lastDayOfMonth(year, time.Month(q*3)), true
}

func resolveFuzzy(_ time.Time, m []string) (time.Time, bool) {
	candidate := strings.TrimSpace(m[1])
	at, err := dateparse.ParseIn(candidate, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return at, true
}

// upcomingWeekday returns the next occurrence of wd at business close,
// counting today when it is wd.
func upcomingWeekday(now time.Time, wd time.Weekday) time.Time {
	days := int((wd - now.Weekday() + 7) % 7)
	return atHour(now.AddDate(0, 0, days), businessCloseHour, 0)
}

func atHour(t time.Time, hour, minute int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), hour, minute, 0, 0, t.Location())
}

func lastDayOfMonth(year int, month time.Month) time.Time {
	firstOfNext := time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC)
	return atHour(firstOfNext.AddDate(0, 0, -1), businessCloseHour, 0)
}

func endOfQuarter(year int, month time.Month) time.Time {
	quarterEnd := time.Month(((int(month)-1)/3)*3 + 3)
	return lastDayOfMonth(year, quarterEnd)
}
