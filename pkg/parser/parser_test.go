package parser

import (
	"strings"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskwire/taskwire/pkg/config"
	"github.com/taskwire/taskwire/pkg/models"
)

// parseTime is a Monday, 10:00 UTC (2026-01-05).
var parseTime = time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)

func newTestParser(t *testing.T) *Parser {
	t.Helper()
	builtin := config.GetBuiltinConfig()
	cfg := &config.Config{
		Defaults:    &config.Defaults{TaskType: "general", Priority: "medium"},
		Keywords:    config.DefaultKeywordConfig(),
		Assignments: config.NewAssignmentMap(builtin.Assignments),
	}
	p := NewParser(cfg)
	p.now = func() time.Time { return parseTime }
	return p
}

func TestParseUrgentBugReport(t *testing.T) {
	p := newTestParser(t)

	task := p.Parse(&models.InboundEmail{
		MessageID: "<msg-1@example.com>",
		From:      "Ada L <ada@example.com>",
		Subject:   "URGENT: login broken",
		BodyPlain: "Users can't log in. Fix ASAP.",
		Timestamp: parseTime,
	})

	require.NoError(t, task.Validate())
	assert.Equal(t, models.PriorityUrgent, task.Priority)
	assert.Equal(t, models.TaskTypeBugReport, task.TaskType)
	assert.Equal(t, "bug", task.PrimaryAgent)
	assert.Equal(t, "URGENT: login broken", task.Title)
	assert.Equal(t, models.StatusPending, task.Status)

	require.NotNil(t, task.Deadline)
	assert.WithinDuration(t, task.CreatedAt.Add(4*time.Hour), *task.Deadline, time.Second)
}

func TestParseDeliverablesAndDeadline(t *testing.T) {
	p := newTestParser(t)

	task := p.Parse(&models.InboundEmail{
		MessageID: "<msg-2@example.com>",
		From:      "pm@example.com",
		Subject:   "Q1 planning deliverables",
		BodyPlain: "Deliverables:\n- API spec\n- Tests\nBy 2026-12-15",
		Timestamp: parseTime,
	})

	require.NoError(t, task.Validate())
	assert.Equal(t, []string{"API spec", "Tests"}, task.Deliverables)

	require.NotNil(t, task.Deadline)
	assert.Equal(t, time.Date(2026, 12, 15, 0, 0, 0, 0, time.UTC), *task.Deadline)
}

func TestParseSectionBinding(t *testing.T) {
	p := newTestParser(t)

	body := strings.Join([]string{
		"We need the login fix wrapped up.",
		"",
		"Success Criteria:",
		"1. All tests green",
		"2. No auth regressions",
		"",
		"Dependencies:",
		"- Staging database restore",
		"",
		"Requirements:",
		"- [ ] Keep backwards compatibility",
	}, "\n")

	task := p.Parse(&models.InboundEmail{
		MessageID: "<msg-3@example.com>",
		From:      "dev@example.com",
		Subject:   "Finish the login fix",
		BodyPlain: body,
		Timestamp: parseTime,
	})

	assert.Equal(t, []string{"All tests green", "No auth regressions"}, task.SuccessCriteria)
	assert.Equal(t, []string{"Staging database restore"}, task.Dependencies)
	assert.Equal(t, []string{"Keep backwards compatibility"}, task.Constraints)
}

func TestParseTags(t *testing.T) {
	p := newTestParser(t)

	task := p.Parse(&models.InboundEmail{
		MessageID: "<msg-4@example.com>",
		From:      "ada@example.com",
		Subject:   "Review the postgres migration",
		BodyPlain: "#infra @bob please check PR #42 against the postgres instance.",
		Timestamp: parseTime,
	})

	assert.Contains(t, task.Tags, "infra")
	assert.Contains(t, task.Tags, "mention:bob")
	assert.Contains(t, task.Tags, "postgres")
	assert.Contains(t, task.Tags, "project:42")
	// The sender address must never become a mention
	assert.NotContains(t, task.Tags, "mention:example.com")
}

func TestParseCodeBlocksPreserved(t *testing.T) {
	p := newTestParser(t)

	body := "The handler panics:\n```go\nfunc handle() {\n\tpanic(\"boom\")\n}\n```\nPlease fix."

	task := p.Parse(&models.InboundEmail{
		MessageID: "<msg-5@example.com>",
		From:      "dev@example.com",
		Subject:   "Handler panic in production",
		BodyPlain: body,
		Timestamp: parseTime,
	})

	assert.Contains(t, task.Description, "panic(\"boom\")")
	assert.Equal(t, 1, task.Context["code_blocks"])
}

func TestParseFallbackOnNilEnvelope(t *testing.T) {
	p := newTestParser(t)

	task := p.Parse(nil)

	require.NotNil(t, task)
	require.NoError(t, task.Validate())
	assert.Equal(t, "Email Task", task.Title)
	assert.Equal(t, models.TaskTypeGeneral, task.TaskType)
	assert.Equal(t, models.PriorityMedium, task.Priority)
	assert.Equal(t, config.FallbackAgentID, task.PrimaryAgent)
	assert.Equal(t, models.StatusPending, task.Status)

	require.NotEmpty(t, task.ProcessingNotes)
	assert.Contains(t, task.ProcessingNotes[0].Note, "parsing failed")
}

func TestParseUnmappedTypeFallsBackToGeneral(t *testing.T) {
	p := newTestParser(t)

	task := p.Parse(&models.InboundEmail{
		MessageID: "<msg-6@example.com>",
		From:      "someone@example.com",
		Subject:   "Quarterly strategy thoughts",
		BodyPlain: "Sharing some loose thoughts for next quarter.",
		Timestamp: parseTime,
	})

	assert.Equal(t, models.TaskTypeGeneral, task.TaskType)
	assert.Equal(t, config.FallbackAgentID, task.PrimaryAgent)
	assert.Equal(t, models.PriorityMedium, task.Priority)
}

func TestParseTotality(t *testing.T) {
	p := newTestParser(t)

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("every envelope yields a valid pending task", prop.ForAll(
		func(subject, body string) bool {
			task := p.Parse(&models.InboundEmail{
				MessageID: "<prop@example.com>",
				From:      "prop@example.com",
				Subject:   subject,
				BodyPlain: body,
				Timestamp: parseTime,
			})
			if task == nil || task.Validate() != nil {
				return false
			}
			return strings.TrimSpace(task.Title) != "" && task.Status == models.StatusPending
		},
		gen.AnyString(),
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

func TestPriorityMonotonicity(t *testing.T) {
	p := newTestParser(t)

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("adding an urgent keyword never lowers priority", prop.ForAll(
		func(body string) bool {
			base := p.detectPriority(strings.ToLower(body))
			boosted := p.detectPriority(strings.ToLower(body) + " urgent")
			return boosted.Rank() >= base.Rank()
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}

func TestDeadlineAlwaysAfterCreation(t *testing.T) {
	p := newTestParser(t)

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	phrases := gen.OneConstOf(
		"finish this by 2025-01-01",
		"finish this by 2030-06-01",
		"done asap please",
		"within 3 business days",
		"by cob friday",
		"next monday works",
		"eod today",
		"no deadline mentioned at all",
		"end of quarter",
		"q1 2020",
	)

	properties.Property("accepted deadlines are strictly in the future", prop.ForAll(
		func(phrase, noise string) bool {
			task := p.Parse(&models.InboundEmail{
				MessageID: "<prop2@example.com>",
				From:      "prop@example.com",
				Subject:   "Deadline probe request",
				BodyPlain: noise + " " + phrase,
				Timestamp: parseTime,
			})
			if task.Deadline == nil {
				return true
			}
			return task.Deadline.After(task.CreatedAt)
		},
		phrases,
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}

func TestParseMasksSecretsInBody(t *testing.T) {
	builtin := config.GetBuiltinConfig()
	cfg := &config.Config{
		Defaults: &config.Defaults{
			TaskType: "general",
			Priority: "medium",
			Masking:  config.DefaultMaskingConfig(),
		},
		Keywords:    config.DefaultKeywordConfig(),
		Assignments: config.NewAssignmentMap(builtin.Assignments),
	}
	p := NewParser(cfg)
	p.now = func() time.Time { return parseTime }

	email := &models.InboundEmail{
		MessageID: "<msg-7@example.com>",
		From:      "ops@example.com",
		Subject:   "Deploy failing in staging",
		BodyPlain: "The deploy job fails with 401.\napi_key = \"sk_live_aaaaaaaaaaaaaaaaaaaa\"\nPlease investigate.",
		Timestamp: parseTime,
	}
	task := p.Parse(email)

	require.NoError(t, task.Validate())
	assert.Contains(t, task.Description, "__MASKED_API_KEY__")
	assert.NotContains(t, task.Description, "sk_live_aaaaaaaaaaaaaaaaaaaa")

	// The caller's envelope is not mutated.
	assert.Contains(t, email.BodyPlain, "sk_live_aaaaaaaaaaaaaaaaaaaa")
}
