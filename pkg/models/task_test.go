package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    TaskStatus
		to      TaskStatus
		allowed bool
	}{
		{"pending to queued", StatusPending, StatusQueued, true},
		{"pending to running", StatusPending, StatusRunning, true},
		{"pending to failed", StatusPending, StatusFailed, true},
		{"pending to completed", StatusPending, StatusCompleted, false},
		{"pending to abandoned", StatusPending, StatusAbandoned, false},
		{"queued to running", StatusQueued, StatusRunning, true},
		{"queued to completed", StatusQueued, StatusCompleted, true},
		{"queued to pending", StatusQueued, StatusPending, false},
		{"running to completed", StatusRunning, StatusCompleted, true},
		{"running to dispatched", StatusRunning, StatusDispatched, true},
		{"running to failed", StatusRunning, StatusFailed, true},
		{"running to queued is orphan requeue", StatusRunning, StatusQueued, true},
		{"running to pending", StatusRunning, StatusPending, false},
		{"failed to abandoned", StatusFailed, StatusAbandoned, true},
		{"failed to queued", StatusFailed, StatusQueued, false},
		{"failed to completed", StatusFailed, StatusCompleted, false},
		{"completed is terminal", StatusCompleted, StatusFailed, false},
		{"dispatched is terminal", StatusDispatched, StatusCompleted, false},
		{"abandoned is terminal", StatusAbandoned, StatusQueued, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransition(tt.from, tt.to))
			err := ValidateTransition(tt.from, tt.to)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestTaskStatusIsTerminal(t *testing.T) {
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusDispatched.IsTerminal())
	assert.True(t, StatusAbandoned.IsTerminal())
	// failed still admits abandoned
	assert.False(t, StatusFailed.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusRunning.IsTerminal())
}

func TestPriorityRank(t *testing.T) {
	assert.Greater(t, PriorityUrgent.Rank(), PriorityHigh.Rank())
	assert.Greater(t, PriorityHigh.Rank(), PriorityMedium.Rank())
	assert.Greater(t, PriorityMedium.Rank(), PriorityLow.Rank())
	// unknown values rank as medium
	assert.Equal(t, PriorityMedium.Rank(), Priority("bogus").Rank())
}

func TestParsePriority(t *testing.T) {
	assert.Equal(t, PriorityUrgent, ParsePriority("URGENT"))
	assert.Equal(t, PriorityLow, ParsePriority("  low "))
	assert.Equal(t, PriorityMedium, ParsePriority(""))
	assert.Equal(t, PriorityMedium, ParsePriority("whenever"))
}

func TestTaskValidate(t *testing.T) {
	now := time.Now().UTC()
	future := now.Add(4 * time.Hour)
	past := now.Add(-time.Hour)

	valid := func() *Task {
		return &Task{
			TaskID:           "t-1",
			CreatedAt:        now,
			Title:            "Fix login",
			TaskType:         TaskTypeBugReport,
			Priority:         PriorityUrgent,
			Deadline:         &future,
			PrimaryAgent:     "bug",
			SupportingAgents: []string{"tester", "general"},
			Status:           StatusPending,
		}
	}

	t.Run("valid task passes", func(t *testing.T) {
		require.NoError(t, valid().Validate())
	})

	t.Run("empty title rejected", func(t *testing.T) {
		task := valid()
		task.Title = "   "
		assert.Error(t, task.Validate())
	})

	t.Run("past deadline rejected", func(t *testing.T) {
		task := valid()
		task.Deadline = &past
		assert.Error(t, task.Validate())
	})

	t.Run("deadline equal to created_at rejected", func(t *testing.T) {
		task := valid()
		task.Deadline = &now
		assert.Error(t, task.Validate())
	})

	t.Run("primary among supporting rejected", func(t *testing.T) {
		task := valid()
		task.SupportingAgents = append(task.SupportingAgents, "bug")
		assert.Error(t, task.Validate())
	})

	t.Run("unknown task type rejected", func(t *testing.T) {
		task := valid()
		task.TaskType = TaskType("mystery")
		assert.Error(t, task.Validate())
	})

	t.Run("progress bounds", func(t *testing.T) {
		task := valid()
		task.Progress = 101
		assert.Error(t, task.Validate())
		task.Progress = -1
		assert.Error(t, task.Validate())
	})
}

func TestTaskAddNote(t *testing.T) {
	task := &Task{}
	task.AddNote("first")
	task.AddNote("second")

	require.Len(t, task.ProcessingNotes, 2)
	assert.Equal(t, "first", task.ProcessingNotes[0].Note)
	assert.Equal(t, "second", task.ProcessingNotes[1].Note)
	assert.False(t, task.ProcessingNotes[0].Timestamp.IsZero())
	assert.Equal(t, time.UTC, task.ProcessingNotes[0].Timestamp.Location())
}

func TestSenderAddress(t *testing.T) {
	tests := []struct {
		from string
		want string
	}{
		{"Ada Lovelace <ada@example.com>", "ada@example.com"},
		{"ada@example.com", "ada@example.com"},
		{"  <bob@example.com> ", "bob@example.com"},
		{"malformed <", "malformed <"},
	}
	for _, tt := range tests {
		email := &InboundEmail{From: tt.from}
		assert.Equal(t, tt.want, email.SenderAddress())
	}
}
