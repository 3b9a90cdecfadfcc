package models

import (
	"encoding/json"

	"github.com/taskwire/taskwire/ent"
)

// TaskFromRow rebuilds the canonical task model from its persisted row.
// Notes and conversation entries live in their own tables and are not loaded
// here; callers that need them fetch through the task service.
func TaskFromRow(row *ent.Task) *Task {
	t := &Task{
		TaskID:           row.ID,
		CreatedAt:        row.CreatedAt,
		Title:            row.Title,
		Description:      row.Description,
		TaskType:         TaskType(row.TaskType),
		Priority:         Priority(row.Priority),
		Deadline:         row.Deadline,
		Dependencies:     row.Dependencies,
		SuccessCriteria:  row.SuccessCriteria,
		Constraints:      row.Constraints,
		Deliverables:     row.Deliverables,
		PrimaryAgent:     row.PrimaryAgent,
		SupportingAgents: row.SupportingAgents,
		AssignmentReason: row.AssignmentReason,
		Status:           TaskStatus(row.Status),
		Processed:        row.Processed,
		Progress:         row.Progress,
		Tags:             row.Tags,
		Context:          row.Context,
	}

	// email_metadata is stored as a generic JSON map; round-trip it back into
	// the typed struct. It was serialized from the same struct, so a decode
	// failure means hand-edited data — drop it rather than guess.
	if len(row.EmailMetadata) > 0 {
		raw, err := json.Marshal(row.EmailMetadata)
		if err == nil {
			meta := &EmailMetadata{}
			if err := json.Unmarshal(raw, meta); err == nil {
				t.EmailMetadata = meta
			}
		}
	}

	return t
}
