// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/taskwire/taskwire/ent/auditevent"
	"github.com/taskwire/taskwire/ent/conversationentry"
	"github.com/taskwire/taskwire/ent/deadletter"
	"github.com/taskwire/taskwire/ent/schema"
	"github.com/taskwire/taskwire/ent/task"
	"github.com/taskwire/taskwire/ent/tasknote"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	auditeventFields := schema.AuditEvent{}.Fields()
	_ = auditeventFields
	// auditeventDescCreatedAt is the schema descriptor for created_at field.
	auditeventDescCreatedAt := auditeventFields[3].Descriptor()
	// auditevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditevent.DefaultCreatedAt = auditeventDescCreatedAt.Default.(func() time.Time)
	conversationentryFields := schema.ConversationEntry{}.Fields()
	_ = conversationentryFields
	// conversationentryDescCreatedAt is the schema descriptor for created_at field.
	conversationentryDescCreatedAt := conversationentryFields[7].Descriptor()
	// conversationentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	conversationentry.DefaultCreatedAt = conversationentryDescCreatedAt.Default.(func() time.Time)
	deadletterFields := schema.DeadLetter{}.Fields()
	_ = deadletterFields
	// deadletterDescAttempts is the schema descriptor for attempts field.
	deadletterDescAttempts := deadletterFields[5].Descriptor()
	// deadletter.DefaultAttempts holds the default value on creation for the attempts field.
	deadletter.DefaultAttempts = deadletterDescAttempts.Default.(int)
	// deadletterDescPriority is the schema descriptor for priority field.
	deadletterDescPriority := deadletterFields[6].Descriptor()
	// deadletter.DefaultPriority holds the default value on creation for the priority field.
	deadletter.DefaultPriority = deadletterDescPriority.Default.(string)
	// deadletterDescFirstSeenAt is the schema descriptor for first_seen_at field.
	deadletterDescFirstSeenAt := deadletterFields[9].Descriptor()
	// deadletter.DefaultFirstSeenAt holds the default value on creation for the first_seen_at field.
	deadletter.DefaultFirstSeenAt = deadletterDescFirstSeenAt.Default.(func() time.Time)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescTaskType is the schema descriptor for task_type field.
	taskDescTaskType := taskFields[3].Descriptor()
	// task.DefaultTaskType holds the default value on creation for the task_type field.
	task.DefaultTaskType = taskDescTaskType.Default.(string)
	// taskDescPriority is the schema descriptor for priority field.
	taskDescPriority := taskFields[4].Descriptor()
	// task.DefaultPriority holds the default value on creation for the priority field.
	task.DefaultPriority = taskDescPriority.Default.(string)
	// taskDescPriorityRank is the schema descriptor for priority_rank field.
	taskDescPriorityRank := taskFields[5].Descriptor()
	// task.DefaultPriorityRank holds the default value on creation for the priority_rank field.
	task.DefaultPriorityRank = taskDescPriorityRank.Default.(int)
	// taskDescProcessed is the schema descriptor for processed field.
	taskDescProcessed := taskFields[17].Descriptor()
	// task.DefaultProcessed holds the default value on creation for the processed field.
	task.DefaultProcessed = taskDescProcessed.Default.(bool)
	// taskDescProgress is the schema descriptor for progress field.
	taskDescProgress := taskFields[18].Descriptor()
	// task.DefaultProgress holds the default value on creation for the progress field.
	task.DefaultProgress = taskDescProgress.Default.(int)
	// taskDescRequeueCount is the schema descriptor for requeue_count field.
	taskDescRequeueCount := taskFields[23].Descriptor()
	// task.DefaultRequeueCount holds the default value on creation for the requeue_count field.
	task.DefaultRequeueCount = taskDescRequeueCount.Default.(int)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[26].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	// taskDescUpdatedAt is the schema descriptor for updated_at field.
	taskDescUpdatedAt := taskFields[27].Descriptor()
	// task.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	task.DefaultUpdatedAt = taskDescUpdatedAt.Default.(func() time.Time)
	// task.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	task.UpdateDefaultUpdatedAt = taskDescUpdatedAt.UpdateDefault.(func() time.Time)
	tasknoteFields := schema.TaskNote{}.Fields()
	_ = tasknoteFields
	// tasknoteDescCreatedAt is the schema descriptor for created_at field.
	tasknoteDescCreatedAt := tasknoteFields[3].Descriptor()
	// tasknote.DefaultCreatedAt holds the default value on creation for the created_at field.
	tasknote.DefaultCreatedAt = tasknoteDescCreatedAt.Default.(func() time.Time)
}
