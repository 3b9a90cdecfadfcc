// Code generated by ent, DO NOT EDIT.

package task

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/taskwire/taskwire/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldID, id))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldDescription, v))
}

// TaskType applies equality check predicate on the "task_type" field. It's identical to TaskTypeEQ.
func TaskType(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldTaskType, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldPriority, v))
}

// PriorityRank applies equality check predicate on the "priority_rank" field. It's identical to PriorityRankEQ.
func PriorityRank(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldPriorityRank, v))
}

// MessageID applies equality check predicate on the "message_id" field. It's identical to MessageIDEQ.
func MessageID(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldMessageID, v))
}

// Deadline applies equality check predicate on the "deadline" field. It's identical to DeadlineEQ.
func Deadline(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldDeadline, v))
}

// PrimaryAgent applies equality check predicate on the "primary_agent" field. It's identical to PrimaryAgentEQ.
func PrimaryAgent(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldPrimaryAgent, v))
}

// AssignmentReason applies equality check predicate on the "assignment_reason" field. It's identical to AssignmentReasonEQ.
func AssignmentReason(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldAssignmentReason, v))
}

// Processed applies equality check predicate on the "processed" field. It's identical to ProcessedEQ.
func Processed(v bool) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldProcessed, v))
}

// Progress applies equality check predicate on the "progress" field. It's identical to ProgressEQ.
func Progress(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldProgress, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldErrorMessage, v))
}

// ResultSummary applies equality check predicate on the "result_summary" field. It's identical to ResultSummaryEQ.
func ResultSummary(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldResultSummary, v))
}

// WorkerID applies equality check predicate on the "worker_id" field. It's identical to WorkerIDEQ.
func WorkerID(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldWorkerID, v))
}

// LastHeartbeatAt applies equality check predicate on the "last_heartbeat_at" field. It's identical to LastHeartbeatAtEQ.
func LastHeartbeatAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// RequeueCount applies equality check predicate on the "requeue_count" field. It's identical to RequeueCountEQ.
func RequeueCount(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldRequeueCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldUpdatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCompletedAt, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldDescription, v))
}

// TaskTypeEQ applies the EQ predicate on the "task_type" field.
func TaskTypeEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldTaskType, v))
}

// TaskTypeNEQ applies the NEQ predicate on the "task_type" field.
func TaskTypeNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldTaskType, v))
}

// TaskTypeIn applies the In predicate on the "task_type" field.
func TaskTypeIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldTaskType, vs...))
}

// TaskTypeNotIn applies the NotIn predicate on the "task_type" field.
func TaskTypeNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldTaskType, vs...))
}

// TaskTypeGT applies the GT predicate on the "task_type" field.
func TaskTypeGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldTaskType, v))
}

// TaskTypeGTE applies the GTE predicate on the "task_type" field.
func TaskTypeGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldTaskType, v))
}

// TaskTypeLT applies the LT predicate on the "task_type" field.
func TaskTypeLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldTaskType, v))
}

// TaskTypeLTE applies the LTE predicate on the "task_type" field.
func TaskTypeLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldTaskType, v))
}

// TaskTypeContains applies the Contains predicate on the "task_type" field.
func TaskTypeContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldTaskType, v))
}

// TaskTypeHasPrefix applies the HasPrefix predicate on the "task_type" field.
func TaskTypeHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldTaskType, v))
}

// TaskTypeHasSuffix applies the HasSuffix predicate on the "task_type" field.
func TaskTypeHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldTaskType, v))
}

// TaskTypeEqualFold applies the EqualFold predicate on the "task_type" field.
func TaskTypeEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldTaskType, v))
}

// TaskTypeContainsFold applies the ContainsFold predicate on the "task_type" field.
func TaskTypeContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldTaskType, v))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldPriority, v))
}

// PriorityContains applies the Contains predicate on the "priority" field.
func PriorityContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldPriority, v))
}

// PriorityHasPrefix applies the HasPrefix predicate on the "priority" field.
func PriorityHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldPriority, v))
}

// PriorityHasSuffix applies the HasSuffix predicate on the "priority" field.
func PriorityHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldPriority, v))
}

// PriorityEqualFold applies the EqualFold predicate on the "priority" field.
func PriorityEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldPriority, v))
}

// PriorityContainsFold applies the ContainsFold predicate on the "priority" field.
func PriorityContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldPriority, v))
}

// PriorityRankEQ applies the EQ predicate on the "priority_rank" field.
func PriorityRankEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldPriorityRank, v))
}

// PriorityRankNEQ applies the NEQ predicate on the "priority_rank" field.
func PriorityRankNEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldPriorityRank, v))
}

// PriorityRankIn applies the In predicate on the "priority_rank" field.
func PriorityRankIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldPriorityRank, vs...))
}

// PriorityRankNotIn applies the NotIn predicate on the "priority_rank" field.
func PriorityRankNotIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldPriorityRank, vs...))
}

// PriorityRankGT applies the GT predicate on the "priority_rank" field.
func PriorityRankGT(v int) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldPriorityRank, v))
}

// PriorityRankGTE applies the GTE predicate on the "priority_rank" field.
func PriorityRankGTE(v int) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldPriorityRank, v))
}

// PriorityRankLT applies the LT predicate on the "priority_rank" field.
func PriorityRankLT(v int) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldPriorityRank, v))
}

// PriorityRankLTE applies the LTE predicate on the "priority_rank" field.
func PriorityRankLTE(v int) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldPriorityRank, v))
}

// MessageIDEQ applies the EQ predicate on the "message_id" field.
func MessageIDEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldMessageID, v))
}

// MessageIDNEQ applies the NEQ predicate on the "message_id" field.
func MessageIDNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldMessageID, v))
}

// MessageIDIn applies the In predicate on the "message_id" field.
func MessageIDIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldMessageID, vs...))
}

// MessageIDNotIn applies the NotIn predicate on the "message_id" field.
func MessageIDNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldMessageID, vs...))
}

// MessageIDGT applies the GT predicate on the "message_id" field.
func MessageIDGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldMessageID, v))
}

// MessageIDGTE applies the GTE predicate on the "message_id" field.
func MessageIDGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldMessageID, v))
}

// MessageIDLT applies the LT predicate on the "message_id" field.
func MessageIDLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldMessageID, v))
}

// MessageIDLTE applies the LTE predicate on the "message_id" field.
func MessageIDLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldMessageID, v))
}

// MessageIDContains applies the Contains predicate on the "message_id" field.
func MessageIDContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldMessageID, v))
}

// MessageIDHasPrefix applies the HasPrefix predicate on the "message_id" field.
func MessageIDHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldMessageID, v))
}

// MessageIDHasSuffix applies the HasSuffix predicate on the "message_id" field.
func MessageIDHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldMessageID, v))
}

// MessageIDIsNil applies the IsNil predicate on the "message_id" field.
func MessageIDIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldMessageID))
}

// MessageIDNotNil applies the NotNil predicate on the "message_id" field.
func MessageIDNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldMessageID))
}

// MessageIDEqualFold applies the EqualFold predicate on the "message_id" field.
func MessageIDEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldMessageID, v))
}

// MessageIDContainsFold applies the ContainsFold predicate on the "message_id" field.
func MessageIDContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldMessageID, v))
}

// EmailMetadataIsNil applies the IsNil predicate on the "email_metadata" field.
func EmailMetadataIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldEmailMetadata))
}

// EmailMetadataNotNil applies the NotNil predicate on the "email_metadata" field.
func EmailMetadataNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldEmailMetadata))
}

// DeadlineEQ applies the EQ predicate on the "deadline" field.
func DeadlineEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldDeadline, v))
}

// DeadlineNEQ applies the NEQ predicate on the "deadline" field.
func DeadlineNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldDeadline, v))
}

// DeadlineIn applies the In predicate on the "deadline" field.
func DeadlineIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldDeadline, vs...))
}

// DeadlineNotIn applies the NotIn predicate on the "deadline" field.
func DeadlineNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldDeadline, vs...))
}

// DeadlineGT applies the GT predicate on the "deadline" field.
func DeadlineGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldDeadline, v))
}

// DeadlineGTE applies the GTE predicate on the "deadline" field.
func DeadlineGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldDeadline, v))
}

// DeadlineLT applies the LT predicate on the "deadline" field.
func DeadlineLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldDeadline, v))
}

// DeadlineLTE applies the LTE predicate on the "deadline" field.
func DeadlineLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldDeadline, v))
}

// DeadlineIsNil applies the IsNil predicate on the "deadline" field.
func DeadlineIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldDeadline))
}

// DeadlineNotNil applies the NotNil predicate on the "deadline" field.
func DeadlineNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldDeadline))
}

// DependenciesIsNil applies the IsNil predicate on the "dependencies" field.
func DependenciesIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldDependencies))
}

// DependenciesNotNil applies the NotNil predicate on the "dependencies" field.
func DependenciesNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldDependencies))
}

// SuccessCriteriaIsNil applies the IsNil predicate on the "success_criteria" field.
func SuccessCriteriaIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldSuccessCriteria))
}

// SuccessCriteriaNotNil applies the NotNil predicate on the "success_criteria" field.
func SuccessCriteriaNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldSuccessCriteria))
}

// ConstraintsIsNil applies the IsNil predicate on the "constraints" field.
func ConstraintsIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldConstraints))
}

// ConstraintsNotNil applies the NotNil predicate on the "constraints" field.
func ConstraintsNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldConstraints))
}

// DeliverablesIsNil applies the IsNil predicate on the "deliverables" field.
func DeliverablesIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldDeliverables))
}

// DeliverablesNotNil applies the NotNil predicate on the "deliverables" field.
func DeliverablesNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldDeliverables))
}

// PrimaryAgentEQ applies the EQ predicate on the "primary_agent" field.
func PrimaryAgentEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldPrimaryAgent, v))
}

// PrimaryAgentNEQ applies the NEQ predicate on the "primary_agent" field.
func PrimaryAgentNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldPrimaryAgent, v))
}

// PrimaryAgentIn applies the In predicate on the "primary_agent" field.
func PrimaryAgentIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldPrimaryAgent, vs...))
}

// PrimaryAgentNotIn applies the NotIn predicate on the "primary_agent" field.
func PrimaryAgentNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldPrimaryAgent, vs...))
}

// PrimaryAgentGT applies the GT predicate on the "primary_agent" field.
func PrimaryAgentGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldPrimaryAgent, v))
}

// PrimaryAgentGTE applies the GTE predicate on the "primary_agent" field.
func PrimaryAgentGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldPrimaryAgent, v))
}

// PrimaryAgentLT applies the LT predicate on the "primary_agent" field.
func PrimaryAgentLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldPrimaryAgent, v))
}

// PrimaryAgentLTE applies the LTE predicate on the "primary_agent" field.
func PrimaryAgentLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldPrimaryAgent, v))
}

// PrimaryAgentContains applies the Contains predicate on the "primary_agent" field.
func PrimaryAgentContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldPrimaryAgent, v))
}

// PrimaryAgentHasPrefix applies the HasPrefix predicate on the "primary_agent" field.
func PrimaryAgentHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldPrimaryAgent, v))
}

// PrimaryAgentHasSuffix applies the HasSuffix predicate on the "primary_agent" field.
func PrimaryAgentHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldPrimaryAgent, v))
}

// PrimaryAgentIsNil applies the IsNil predicate on the "primary_agent" field.
func PrimaryAgentIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldPrimaryAgent))
}

// PrimaryAgentNotNil applies the NotNil predicate on the "primary_agent" field.
func PrimaryAgentNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldPrimaryAgent))
}

// PrimaryAgentEqualFold applies the EqualFold predicate on the "primary_agent" field.
func PrimaryAgentEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldPrimaryAgent, v))
}

// PrimaryAgentContainsFold applies the ContainsFold predicate on the "primary_agent" field.
func PrimaryAgentContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldPrimaryAgent, v))
}

// SupportingAgentsIsNil applies the IsNil predicate on the "supporting_agents" field.
func SupportingAgentsIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldSupportingAgents))
}

// SupportingAgentsNotNil applies the NotNil predicate on the "supporting_agents" field.
func SupportingAgentsNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldSupportingAgents))
}

// AssignmentReasonEQ applies the EQ predicate on the "assignment_reason" field.
func AssignmentReasonEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldAssignmentReason, v))
}

// AssignmentReasonNEQ applies the NEQ predicate on the "assignment_reason" field.
func AssignmentReasonNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldAssignmentReason, v))
}

// AssignmentReasonIn applies the In predicate on the "assignment_reason" field.
func AssignmentReasonIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldAssignmentReason, vs...))
}

// AssignmentReasonNotIn applies the NotIn predicate on the "assignment_reason" field.
func AssignmentReasonNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldAssignmentReason, vs...))
}

// AssignmentReasonGT applies the GT predicate on the "assignment_reason" field.
func AssignmentReasonGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldAssignmentReason, v))
}

// AssignmentReasonGTE applies the GTE predicate on the "assignment_reason" field.
func AssignmentReasonGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldAssignmentReason, v))
}

// AssignmentReasonLT applies the LT predicate on the "assignment_reason" field.
func AssignmentReasonLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldAssignmentReason, v))
}

// AssignmentReasonLTE applies the LTE predicate on the "assignment_reason" field.
func AssignmentReasonLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldAssignmentReason, v))
}

// AssignmentReasonContains applies the Contains predicate on the "assignment_reason" field.
func AssignmentReasonContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldAssignmentReason, v))
}

// AssignmentReasonHasPrefix applies the HasPrefix predicate on the "assignment_reason" field.
func AssignmentReasonHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldAssignmentReason, v))
}

// AssignmentReasonHasSuffix applies the HasSuffix predicate on the "assignment_reason" field.
func AssignmentReasonHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldAssignmentReason, v))
}

// AssignmentReasonIsNil applies the IsNil predicate on the "assignment_reason" field.
func AssignmentReasonIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldAssignmentReason))
}

// AssignmentReasonNotNil applies the NotNil predicate on the "assignment_reason" field.
func AssignmentReasonNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldAssignmentReason))
}

// AssignmentReasonEqualFold applies the EqualFold predicate on the "assignment_reason" field.
func AssignmentReasonEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldAssignmentReason, v))
}

// AssignmentReasonContainsFold applies the ContainsFold predicate on the "assignment_reason" field.
func AssignmentReasonContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldAssignmentReason, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldStatus, vs...))
}

// ProcessedEQ applies the EQ predicate on the "processed" field.
func ProcessedEQ(v bool) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldProcessed, v))
}

// ProcessedNEQ applies the NEQ predicate on the "processed" field.
func ProcessedNEQ(v bool) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldProcessed, v))
}

// ProgressEQ applies the EQ predicate on the "progress" field.
func ProgressEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldProgress, v))
}

// ProgressNEQ applies the NEQ predicate on the "progress" field.
func ProgressNEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldProgress, v))
}

// ProgressIn applies the In predicate on the "progress" field.
func ProgressIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldProgress, vs...))
}

// ProgressNotIn applies the NotIn predicate on the "progress" field.
func ProgressNotIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldProgress, vs...))
}

// ProgressGT applies the GT predicate on the "progress" field.
func ProgressGT(v int) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldProgress, v))
}

// ProgressGTE applies the GTE predicate on the "progress" field.
func ProgressGTE(v int) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldProgress, v))
}

// ProgressLT applies the LT predicate on the "progress" field.
func ProgressLT(v int) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldProgress, v))
}

// ProgressLTE applies the LTE predicate on the "progress" field.
func ProgressLTE(v int) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldProgress, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldErrorMessage, v))
}

// ResultSummaryEQ applies the EQ predicate on the "result_summary" field.
func ResultSummaryEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldResultSummary, v))
}

// ResultSummaryNEQ applies the NEQ predicate on the "result_summary" field.
func ResultSummaryNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldResultSummary, v))
}

// ResultSummaryIn applies the In predicate on the "result_summary" field.
func ResultSummaryIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldResultSummary, vs...))
}

// ResultSummaryNotIn applies the NotIn predicate on the "result_summary" field.
func ResultSummaryNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldResultSummary, vs...))
}

// ResultSummaryGT applies the GT predicate on the "result_summary" field.
func ResultSummaryGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldResultSummary, v))
}

// ResultSummaryGTE applies the GTE predicate on the "result_summary" field.
func ResultSummaryGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldResultSummary, v))
}

// ResultSummaryLT applies the LT predicate on the "result_summary" field.
func ResultSummaryLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldResultSummary, v))
}

// ResultSummaryLTE applies the LTE predicate on the "result_summary" field.
func ResultSummaryLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldResultSummary, v))
}

// ResultSummaryContains applies the Contains predicate on the "result_summary" field.
func ResultSummaryContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldResultSummary, v))
}

// ResultSummaryHasPrefix applies the HasPrefix predicate on the "result_summary" field.
func ResultSummaryHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldResultSummary, v))
}

// ResultSummaryHasSuffix applies the HasSuffix predicate on the "result_summary" field.
func ResultSummaryHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldResultSummary, v))
}

// ResultSummaryIsNil applies the IsNil predicate on the "result_summary" field.
func ResultSummaryIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldResultSummary))
}

// ResultSummaryNotNil applies the NotNil predicate on the "result_summary" field.
func ResultSummaryNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldResultSummary))
}

// ResultSummaryEqualFold applies the EqualFold predicate on the "result_summary" field.
func ResultSummaryEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldResultSummary, v))
}

// ResultSummaryContainsFold applies the ContainsFold predicate on the "result_summary" field.
func ResultSummaryContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldResultSummary, v))
}

// WorkerIDEQ applies the EQ predicate on the "worker_id" field.
func WorkerIDEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldWorkerID, v))
}

// WorkerIDNEQ applies the NEQ predicate on the "worker_id" field.
func WorkerIDNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldWorkerID, v))
}

// WorkerIDIn applies the In predicate on the "worker_id" field.
func WorkerIDIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldWorkerID, vs...))
}

// WorkerIDNotIn applies the NotIn predicate on the "worker_id" field.
func WorkerIDNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldWorkerID, vs...))
}

// WorkerIDGT applies the GT predicate on the "worker_id" field.
func WorkerIDGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldWorkerID, v))
}

// WorkerIDGTE applies the GTE predicate on the "worker_id" field.
func WorkerIDGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldWorkerID, v))
}

// WorkerIDLT applies the LT predicate on the "worker_id" field.
func WorkerIDLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldWorkerID, v))
}

// WorkerIDLTE applies the LTE predicate on the "worker_id" field.
func WorkerIDLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldWorkerID, v))
}

// WorkerIDContains applies the Contains predicate on the "worker_id" field.
func WorkerIDContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldWorkerID, v))
}

// WorkerIDHasPrefix applies the HasPrefix predicate on the "worker_id" field.
func WorkerIDHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldWorkerID, v))
}

// WorkerIDHasSuffix applies the HasSuffix predicate on the "worker_id" field.
func WorkerIDHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldWorkerID, v))
}

// WorkerIDIsNil applies the IsNil predicate on the "worker_id" field.
func WorkerIDIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldWorkerID))
}

// WorkerIDNotNil applies the NotNil predicate on the "worker_id" field.
func WorkerIDNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldWorkerID))
}

// WorkerIDEqualFold applies the EqualFold predicate on the "worker_id" field.
func WorkerIDEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldWorkerID, v))
}

// WorkerIDContainsFold applies the ContainsFold predicate on the "worker_id" field.
func WorkerIDContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldWorkerID, v))
}

// LastHeartbeatAtEQ applies the EQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtNEQ applies the NEQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIn applies the In predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtNotIn applies the NotIn predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtGT applies the GT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtGTE applies the GTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLT applies the LT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLTE applies the LTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIsNil applies the IsNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldLastHeartbeatAt))
}

// LastHeartbeatAtNotNil applies the NotNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldLastHeartbeatAt))
}

// RequeueCountEQ applies the EQ predicate on the "requeue_count" field.
func RequeueCountEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldRequeueCount, v))
}

// RequeueCountNEQ applies the NEQ predicate on the "requeue_count" field.
func RequeueCountNEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldRequeueCount, v))
}

// RequeueCountIn applies the In predicate on the "requeue_count" field.
func RequeueCountIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldRequeueCount, vs...))
}

// RequeueCountNotIn applies the NotIn predicate on the "requeue_count" field.
func RequeueCountNotIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldRequeueCount, vs...))
}

// RequeueCountGT applies the GT predicate on the "requeue_count" field.
func RequeueCountGT(v int) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldRequeueCount, v))
}

// RequeueCountGTE applies the GTE predicate on the "requeue_count" field.
func RequeueCountGTE(v int) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldRequeueCount, v))
}

// RequeueCountLT applies the LT predicate on the "requeue_count" field.
func RequeueCountLT(v int) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldRequeueCount, v))
}

// RequeueCountLTE applies the LTE predicate on the "requeue_count" field.
func RequeueCountLTE(v int) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldRequeueCount, v))
}

// TagsIsNil applies the IsNil predicate on the "tags" field.
func TagsIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldTags))
}

// TagsNotNil applies the NotNil predicate on the "tags" field.
func TagsNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldTags))
}

// ContextIsNil applies the IsNil predicate on the "context" field.
func ContextIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldContext))
}

// ContextNotNil applies the NotNil predicate on the "context" field.
func ContextNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldContext))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldUpdatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldCompletedAt))
}

// HasNotes applies the HasEdge predicate on the "notes" edge.
func HasNotes() predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, NotesTable, NotesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasNotesWith applies the HasEdge predicate on the "notes" edge with a given conditions (other predicates).
func HasNotesWith(preds ...predicate.TaskNote) predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := newNotesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasConversationEntries applies the HasEdge predicate on the "conversation_entries" edge.
func HasConversationEntries() predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ConversationEntriesTable, ConversationEntriesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasConversationEntriesWith applies the HasEdge predicate on the "conversation_entries" edge with a given conditions (other predicates).
func HasConversationEntriesWith(preds ...predicate.ConversationEntry) predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := newConversationEntriesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDeadLetters applies the HasEdge predicate on the "dead_letters" edge.
func HasDeadLetters() predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DeadLettersTable, DeadLettersColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDeadLettersWith applies the HasEdge predicate on the "dead_letters" edge with a given conditions (other predicates).
func HasDeadLettersWith(preds ...predicate.DeadLetter) predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := newDeadLettersStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAuditEvents applies the HasEdge predicate on the "audit_events" edge.
func HasAuditEvents() predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AuditEventsTable, AuditEventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAuditEventsWith applies the HasEdge predicate on the "audit_events" edge with a given conditions (other predicates).
func HasAuditEventsWith(preds ...predicate.AuditEvent) predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := newAuditEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Task) predicate.Task {
	return predicate.Task(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Task) predicate.Task {
	return predicate.Task(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Task) predicate.Task {
	return predicate.Task(sql.NotPredicates(p))
}
