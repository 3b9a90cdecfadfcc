// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AuditEvent is the predicate function for auditevent builders.
type AuditEvent func(*sql.Selector)

// ConversationEntry is the predicate function for conversationentry builders.
type ConversationEntry func(*sql.Selector)

// DeadLetter is the predicate function for deadletter builders.
type DeadLetter func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)

// TaskNote is the predicate function for tasknote builders.
type TaskNote func(*sql.Selector)
