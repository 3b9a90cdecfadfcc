package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/google/uuid"

	"github.com/taskwire/taskwire/pkg/agent"
	"github.com/taskwire/taskwire/pkg/models"
)

const defaultComposeTimeout = 120 * time.Second

// dispatchHandler handles POST /api/v1/dispatch: a single admin entry point
// multiplexing the operational actions over one request envelope.
func (s *Server) dispatchHandler(c *echo.Context) error {
	var req DispatchRequest
	if err := c.Bind(&req); err != nil {
		return apiError(c, http.StatusBadRequest, CodeValidationFailed, "malformed request body")
	}
	if req.Action == "" {
		return apiError(c, http.StatusBadRequest, CodeMissingParameter, "action is required")
	}
	if len(req.Parameters) == 0 {
		return apiError(c, http.StatusBadRequest, CodeMissingParameter, "parameters is required")
	}

	switch req.Action {
	case "parse_email":
		return s.dispatchParseEmail(c, req)
	case "ingest_email":
		return s.dispatchIngestEmail(c, req)
	case "dispatch_task":
		return s.dispatchTask(c, req)
	case "analyze_email":
		return s.dispatchAnalyzeEmail(c, req)
	case "compose_draft":
		return s.dispatchComposeDraft(c, req)
	case "search_emails":
		return s.dispatchSearchEmails(c, req)
	default:
		return apiError(c, http.StatusBadRequest, CodeInvalidParameter,
			fmt.Sprintf("unknown action %q", req.Action))
	}
}

// dispatchParseEmail parses a raw email into a task without persisting it.
func (s *Server) dispatchParseEmail(c *echo.Context, req DispatchRequest) error {
	email, errResp := s.bindEmailParams(c, req)
	if email == nil {
		return errResp
	}
	task := s.parser.Parse(email)
	return c.JSON(http.StatusOK, &DispatchResponse{
		Status:    "ok",
		Action:    req.Action,
		MessageID: email.MessageID,
		Task:      task,
	})
}

// dispatchIngestEmail runs the webhook pipeline minus signature checks:
// parse the supplied email and enqueue the resulting task.
func (s *Server) dispatchIngestEmail(c *echo.Context, req DispatchRequest) error {
	email, errResp := s.bindEmailParams(c, req)
	if email == nil {
		return errResp
	}
	task := s.parser.Parse(email)
	created, err := s.taskService.CreateTask(c.Request().Context(), task)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusAccepted, &DispatchResponse{
		Status:    "queued",
		Action:    req.Action,
		TaskID:    created.ID,
		MessageID: email.MessageID,
	})
}

// dispatchTask enqueues a task supplied directly, with no originating email.
func (s *Server) dispatchTask(c *echo.Context, req DispatchRequest) error {
	var params DispatchTaskParams
	if err := json.Unmarshal(req.Parameters, &params); err != nil {
		return apiError(c, http.StatusBadRequest, CodeValidationFailed, "malformed parameters")
	}
	if strings.TrimSpace(params.Title) == "" {
		return apiError(c, http.StatusBadRequest, CodeMissingParameter, "parameters.title is required")
	}
	if params.TaskType != "" && !models.TaskType(params.TaskType).Valid() {
		return apiError(c, http.StatusBadRequest, CodeInvalidParameter,
			"invalid task_type: "+params.TaskType)
	}
	if params.Priority != "" && !models.Priority(params.Priority).Valid() {
		return apiError(c, http.StatusBadRequest, CodeInvalidParameter,
			"invalid priority: must be urgent, high, medium, or low")
	}

	task := &models.Task{
		Title:            params.Title,
		Description:      params.Description,
		TaskType:         models.TaskTypeGeneral,
		Priority:         models.PriorityMedium,
		PrimaryAgent:     params.PrimaryAgent,
		SupportingAgents: params.SupportingAgents,
		Deadline:         params.Deadline,
		Tags:             params.Tags,
		Context:          params.Context,
		CreatedAt:        time.Now().UTC(),
	}
	if params.TaskType != "" {
		task.TaskType = models.TaskType(params.TaskType)
	}
	if params.Priority != "" {
		task.Priority = models.Priority(params.Priority)
	}
	if task.Description == "" {
		task.Description = params.Title
	}

	created, err := s.taskService.CreateTask(c.Request().Context(), task)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusAccepted, &DispatchResponse{
		Status: "queued",
		Action: req.Action,
		TaskID: created.ID,
	})
}

// dispatchAnalyzeEmail parses a raw email and returns the routing analysis
// without persisting anything.
func (s *Server) dispatchAnalyzeEmail(c *echo.Context, req DispatchRequest) error {
	email, errResp := s.bindEmailParams(c, req)
	if email == nil {
		return errResp
	}
	if s.router == nil {
		return apiError(c, http.StatusServiceUnavailable, CodeServiceUnavailable,
			"router is not configured")
	}
	task := s.parser.Parse(email)
	analysis := s.router.Analyze(task)
	return c.JSON(http.StatusOK, &DispatchResponse{
		Status:    "ok",
		Action:    req.Action,
		MessageID: email.MessageID,
		Task:      task,
		Analysis:  &analysis,
	})
}

// dispatchComposeDraft asks the LLM backend for a one-shot reply draft.
func (s *Server) dispatchComposeDraft(c *echo.Context, req DispatchRequest) error {
	var params ComposeDraftParams
	if err := json.Unmarshal(req.Parameters, &params); err != nil {
		return apiError(c, http.StatusBadRequest, CodeValidationFailed, "malformed parameters")
	}
	if strings.TrimSpace(params.Instructions) == "" {
		return apiError(c, http.StatusBadRequest, CodeMissingParameter, "parameters.instructions is required")
	}
	if s.llmClient == nil {
		return apiError(c, http.StatusServiceUnavailable, CodeServiceUnavailable,
			"no LLM backend configured")
	}

	input := s.composeInput(&params)

	timeout := defaultComposeTimeout
	if s.cfg != nil && s.cfg.LLM != nil && s.cfg.LLM.CallTimeout > 0 {
		timeout = s.cfg.LLM.CallTimeout
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), timeout)
	defer cancel()

	resp, err := agent.GenerateText(ctx, s.llmClient, input)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, &DispatchResponse{
		Status: "ok",
		Action: req.Action,
		Draft:  resp.Text,
	})
}

// composeInput builds the generation input for a draft request, preferring
// the named agent's profile for prompt and model.
func (s *Server) composeInput(params *ComposeDraftParams) *agent.GenerateInput {
	agentID := params.AgentID
	if agentID == "" {
		agentID = "docs"
	}

	systemPrompt := "You draft clear, professional email replies. Return only the draft body."
	model := ""
	if s.cfg != nil {
		if s.cfg.AgentRegistry != nil {
			if profile, err := s.cfg.AgentRegistry.Get(agentID); err == nil {
				if profile.SystemPrompt != "" {
					systemPrompt = profile.SystemPrompt
				}
				model = profile.PreferredModel
			}
		}
		if model == "" && s.cfg.LLM != nil {
			model = s.cfg.LLM.DefaultModel
		}
	}

	var sb strings.Builder
	if params.Recipient != "" {
		fmt.Fprintf(&sb, "Recipient: %s\n", params.Recipient)
	}
	if params.Subject != "" {
		fmt.Fprintf(&sb, "Subject: %s\n", params.Subject)
	}
	sb.WriteString(params.Instructions)

	input := &agent.GenerateInput{
		AgentID:      agentID,
		Model:        model,
		SystemPrompt: systemPrompt,
		Messages:     []agent.Message{{Role: "user", Content: sb.String()}},
	}
	if s.cfg != nil && s.cfg.LLM != nil && s.cfg.LLM.MaxTokens > 0 {
		input.MaxTokens = int32(s.cfg.LLM.MaxTokens)
	}
	return input
}

// dispatchSearchEmails runs a full-text search over stored tasks.
func (s *Server) dispatchSearchEmails(c *echo.Context, req DispatchRequest) error {
	var params SearchEmailsParams
	if err := json.Unmarshal(req.Parameters, &params); err != nil {
		return apiError(c, http.StatusBadRequest, CodeValidationFailed, "malformed parameters")
	}
	if strings.TrimSpace(params.Query) == "" {
		return apiError(c, http.StatusBadRequest, CodeMissingParameter, "parameters.query is required")
	}

	results, err := s.taskService.SearchTasks(c.Request().Context(), params.Query, params.Limit)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, &DispatchResponse{
		Status:  "ok",
		Action:  req.Action,
		Results: results,
		Count:   len(results),
	})
}

// bindEmailParams decodes the email parameters shared by parse_email,
// ingest_email, and analyze_email. On failure it returns a nil email and the
// written error response.
func (s *Server) bindEmailParams(c *echo.Context, req DispatchRequest) (*models.InboundEmail, error) {
	var params DispatchEmailParams
	if err := json.Unmarshal(req.Parameters, &params); err != nil {
		return nil, apiError(c, http.StatusBadRequest, CodeValidationFailed, "malformed parameters")
	}
	if strings.TrimSpace(params.From) == "" {
		return nil, apiError(c, http.StatusBadRequest, CodeMissingParameter, "parameters.from is required")
	}
	if s.parser == nil {
		return nil, apiError(c, http.StatusServiceUnavailable, CodeServiceUnavailable,
			"parser is not configured")
	}

	messageID := params.MessageID
	if messageID == "" {
		messageID = "dispatch-" + uuid.New().String()
	}
	return &models.InboundEmail{
		MessageID: messageID,
		From:      params.From,
		Recipient: params.Recipient,
		Subject:   params.Subject,
		CC:        params.CC,
		ReplyTo:   params.ReplyTo,
		InReplyTo: params.InReplyTo,
		BodyPlain: params.Body,
		Timestamp: time.Now().UTC(),
		Headers:   params.Headers,
	}, nil
}
