package e2e

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskwire/taskwire/pkg/models"
	testdb "github.com/taskwire/taskwire/test/database"
)

// TestTwoReplicasDrainSharedQueue runs two full instances against one
// database schema and checks the claim protocol: every task completes
// exactly once, no matter which replica's worker grabbed it.
func TestTwoReplicasDrainSharedQueue(t *testing.T) {
	const taskCount = 6

	dbClient := testdb.NewTestClient(t)

	llm := NewScriptedLLMClient()
	for i := 0; i < taskCount; i++ {
		llm.AddRouted("docs", LLMScriptEntry{Text: fmt.Sprintf("Module %d documented.", i)})
	}

	appA := NewTestApp(t, WithDBClient(dbClient), WithPodID("pod-a"), WithLLMClient(llm), WithoutMailer())
	appB := NewTestApp(t, WithDBClient(dbClient), WithPodID("pod-b"), WithLLMClient(llm), WithoutMailer())

	ids := make([]string, 0, taskCount)
	for i := 0; i < taskCount; i++ {
		resp := appA.SendEmail(t, EmailFixture{
			Subject: fmt.Sprintf("Document the storage module, part %d", i),
			Body:    "Please write up the docs for this module.",
		})
		ids = append(ids, taskIDFrom(t, resp))
	}

	claimedBy := map[string]int{}
	for _, id := range ids {
		row := appA.WaitForTaskStatus(t, id, models.StatusCompleted)
		require.NotEmpty(t, row.WorkerID)
		validPrefix := strings.HasPrefix(row.WorkerID, "pod-a-") || strings.HasPrefix(row.WorkerID, "pod-b-")
		assert.True(t, validPrefix, "unexpected worker id %q", row.WorkerID)
		assert.Equal(t, 0, row.RequeueCount)
		claimedBy[row.WorkerID]++
	}
	assert.NotEmpty(t, claimedBy)

	// Exactly one agent response per task: SKIP LOCKED claiming means no
	// task was executed twice.
	for _, id := range ids {
		responses := 0
		for _, entry := range appA.Conversation(t, id) {
			if string(entry.Role) == string(models.RoleResponse) {
				responses++
			}
		}
		assert.Equal(t, 1, responses, "task %s ran more than once", id)
	}
	assert.Equal(t, taskCount, llm.CallCount())

	// Both replicas stayed healthy through the drain.
	healthA := appA.WorkerPool.Health()
	healthB := appB.WorkerPool.Health()
	assert.Equal(t, 0, healthA.QueueDepth)
	assert.Equal(t, 0, healthB.QueueDepth)
}
