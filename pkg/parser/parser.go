// Package parser turns inbound email envelopes into fully-populated tasks.
// Parsing is total: every envelope yields a valid task, falling back to a
// general-agent task embedding the raw input when extraction fails.
package parser

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/taskwire/taskwire/pkg/config"
	"github.com/taskwire/taskwire/pkg/masking"
	"github.com/taskwire/taskwire/pkg/models"
)

// Parser extracts a task from an inbound email using configured keyword
// sets and the task-type assignment map.
type Parser struct {
	keywords    *config.KeywordConfig
	assignments *config.AssignmentMap
	defaults    *config.Defaults
	masker      *masking.Service
	logger      *slog.Logger
	now         func() time.Time
}

// NewParser creates a parser from the configuration snapshot.
func NewParser(cfg *config.Config) *Parser {
	p := &Parser{
		keywords:    cfg.Keywords,
		assignments: cfg.Assignments,
		defaults:    cfg.Defaults,
		logger:      slog.With("component", "parser"),
		now:         time.Now,
	}
	if cfg.Defaults != nil {
		p.masker = masking.NewService(cfg.Defaults.Masking)
	}
	return p
}

// Parse converts an email into a task. It never fails: any extraction error
// produces a fallback task carrying the raw input and a parse-failure note.
// Credential material is scrubbed from the body before anything downstream
// sees it, so neither the task row nor agent prompts carry raw secrets.
func (p *Parser) Parse(email *models.InboundEmail) *models.Task {
	email = p.maskEmail(email)
	task, err := p.build(email)
	if err != nil {
		p.logger.Warn("Email parse failed, producing fallback task",
			"message_id", messageID(email),
			"error", err)
		return p.fallbackTask(email, err)
	}
	return task
}

// maskEmail returns a copy of the envelope with secrets masked out of the
// body. The caller's envelope is left untouched.
func (p *Parser) maskEmail(email *models.InboundEmail) *models.InboundEmail {
	if p.masker == nil || email == nil {
		return email
	}
	masked := *email
	masked.BodyPlain = p.masker.MaskBody(email.BodyPlain)
	return &masked
}

// build runs the extraction pipeline. Panics from unexpected input are
// converted to errors so Parse can fall back.
func (p *Parser) build(email *models.InboundEmail) (task *models.Task, err error) {
	defer func() {
		if r := recover(); r != nil {
			task = nil
			err = fmt.Errorf("parse panic: %v", r)
		}
	}()

	if email == nil {
		return nil, errors.New("nil email envelope")
	}

	now := p.now().UTC()

	cleaned, codeBlocks := cleanBody(email.BodyPlain)
	searchText := strings.ToLower(email.Subject + " " + cleaned)

	priority := p.detectPriority(searchText)
	taskType := p.detectTaskType(searchText)
	deadline, deadlineConfidence := extractDeadline(searchText, now)
	lists := extractLists(cleaned)
	title := extractTitle(email.Subject, cleaned)
	tags := p.extractTags(email.Subject, cleaned)
	assignment, _ := p.assignments.Resolve(string(taskType))

	description := strings.TrimSpace(restoreCodeBlocks(cleaned, codeBlocks))
	if description == "" {
		description = strings.TrimSpace(email.Subject)
	}

	task = &models.Task{
		TaskID:      uuid.New().String(),
		CreatedAt:   now,
		Title:       title,
		Description: description,
		TaskType:    taskType,
		Priority:    priority,

		EmailMetadata: email.Metadata(),

		Deadline:        deadline,
		Dependencies:    lists.dependencies,
		SuccessCriteria: lists.successCriteria,
		Constraints:     lists.constraints,
		Deliverables:    lists.deliverables,

		PrimaryAgent:     assignment.Primary,
		SupportingAgents: assignment.Supporting,
		AssignmentReason: assignment.Reason,

		Status: models.StatusPending,
		Tags:   tags,
	}

	if deadline != nil {
		task.SetContext("deadline_confidence", deadlineConfidence)
	}
	if len(codeBlocks) > 0 {
		task.SetContext("code_blocks", len(codeBlocks))
	}
	if len(email.Attachments) > 0 {
		task.SetContext("attachments", len(email.Attachments))
	}

	task.AddNote(fmt.Sprintf("created from email %s", messageID(email)))

	if err := task.Validate(); err != nil {
		return nil, fmt.Errorf("parsed task failed validation: %w", err)
	}
	return task, nil
}

// fallbackTask wraps an unparseable email in a general task so no inbound
// message is ever dropped.
func (p *Parser) fallbackTask(email *models.InboundEmail, parseErr error) *models.Task {
	now := p.now().UTC()

	title := "Email Task"
	if email != nil {
		if subject := strings.TrimSpace(email.Subject); subject != "" {
			title = truncate(subject, maxTitleLength)
		}
	}

	serialized, err := json.Marshal(email)
	if err != nil {
		serialized = []byte(fmt.Sprintf("%+v", email))
	}

	task := &models.Task{
		TaskID:    uuid.New().String(),
		CreatedAt: now,
		Title:     title,
		Description: fmt.Sprintf("Email could not be parsed automatically.\n\nError: %v\n\nOriginal input:\n%s",
			parseErr, serialized),
		TaskType:         p.defaultTaskType(),
		Priority:         models.ParsePriority(p.defaults.Priority),
		PrimaryAgent:     config.FallbackAgentID,
		AssignmentReason: "parse failure routed to general agent",
		Status:           models.StatusPending,
	}
	if email != nil {
		task.EmailMetadata = email.Metadata()
	}
	task.AddNote(fmt.Sprintf("email parsing failed: %v", parseErr))
	return task
}

func (p *Parser) defaultTaskType() models.TaskType {
	fallback := models.TaskType(p.defaults.TaskType)
	if !fallback.Valid() {
		return models.TaskTypeGeneral
	}
	return fallback
}

func messageID(email *models.InboundEmail) string {
	if email == nil {
		return ""
	}
	return email.MessageID
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
