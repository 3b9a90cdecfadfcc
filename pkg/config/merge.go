package config

// mergeAgents merges built-in and user-defined agent profiles.
// User-defined agents override built-in agents with the same ID.
func mergeAgents(builtinAgents map[string]*AgentProfile, userAgents map[string]AgentProfile) map[string]*AgentProfile {
	result := make(map[string]*AgentProfile)

	for id, builtin := range builtinAgents {
		capsCopy := make([]string, len(builtin.Capabilities))
		copy(capsCopy, builtin.Capabilities)
		result[id] = &AgentProfile{
			Role:           builtin.Role,
			Capabilities:   capsCopy,
			PreferredModel: builtin.PreferredModel,
			SystemPrompt:   builtin.SystemPrompt,
		}
	}

	for id, userAgent := range userAgents {
		agentCopy := userAgent
		result[id] = &agentCopy
	}

	return result
}

// mergeAssignments merges built-in and user-defined task-type assignments.
// User-defined assignments override built-in ones with the same task type.
func mergeAssignments(builtinAssignments map[string]*AgentAssignment, userAssignments map[string]AgentAssignment) map[string]*AgentAssignment {
	result := make(map[string]*AgentAssignment)

	for taskType, builtin := range builtinAssignments {
		supportingCopy := make([]string, len(builtin.Supporting))
		copy(supportingCopy, builtin.Supporting)
		result[taskType] = &AgentAssignment{
			Primary:    builtin.Primary,
			Supporting: supportingCopy,
			Reason:     builtin.Reason,
		}
	}

	for taskType, userAssignment := range userAssignments {
		assignmentCopy := userAssignment
		result[taskType] = &assignmentCopy
	}

	return result
}

// mergeTemplates merges built-in and user-defined workflow templates.
// User-defined templates override built-in templates with the same ID.
func mergeTemplates(builtinTemplates map[string]*WorkflowTemplate, userTemplates map[string]WorkflowTemplate) map[string]*WorkflowTemplate {
	result := make(map[string]*WorkflowTemplate)

	for id, builtin := range builtinTemplates {
		stepsCopy := make([]StepTemplate, len(builtin.Steps))
		copy(stepsCopy, builtin.Steps)
		result[id] = &WorkflowTemplate{
			ID:              id,
			Name:            builtin.Name,
			Description:     builtin.Description,
			Steps:           stepsCopy,
			AllowReordering: builtin.AllowReordering,
			Mode:            builtin.Mode,
		}
	}

	for id, userTemplate := range userTemplates {
		templateCopy := userTemplate
		templateCopy.ID = id
		result[id] = &templateCopy
	}

	return result
}
