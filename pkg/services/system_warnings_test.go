package services

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemWarningsService_AddAndGet(t *testing.T) {
	svc := NewSystemWarningsService()

	id := svc.AddWarning(WarningCategoryAgentHealth, "Circuit open", "5 consecutive failures", "coder")
	assert.NotEmpty(t, id)

	warnings := svc.GetWarnings()
	require.Len(t, warnings, 1)
	assert.Equal(t, WarningCategoryAgentHealth, warnings[0].Category)
	assert.Equal(t, "Circuit open", warnings[0].Message)
	assert.Equal(t, "5 consecutive failures", warnings[0].Details)
	assert.Equal(t, "coder", warnings[0].Source)
	assert.False(t, warnings[0].CreatedAt.IsZero())
}

func TestSystemWarningsService_ClearBySource(t *testing.T) {
	svc := NewSystemWarningsService()
	svc.AddWarning(WarningCategoryAgentHealth, "Circuit open", "", "coder")
	svc.AddWarning(WarningCategoryAgentHealth, "Circuit open", "", "tester")
	assert.Len(t, svc.GetWarnings(), 2)

	assert.True(t, svc.ClearBySource(WarningCategoryAgentHealth, "coder"))
	require.Len(t, svc.GetWarnings(), 1)
	assert.Equal(t, "tester", svc.GetWarnings()[0].Source)

	assert.False(t, svc.ClearBySource(WarningCategoryAgentHealth, "nonexistent"))
}

func TestSystemWarningsService_ReplacesDuplicate(t *testing.T) {
	svc := NewSystemWarningsService()
	svc.AddWarning(WarningCategoryCacheBackend, "First error", "err1", "redis")
	svc.AddWarning(WarningCategoryCacheBackend, "Second error", "err2", "redis")

	// Same category+source replaces instead of stacking
	warnings := svc.GetWarnings()
	require.Len(t, warnings, 1)
	assert.Equal(t, "Second error", warnings[0].Message)
	assert.Equal(t, "err2", warnings[0].Details)
}

func TestSystemWarningsService_OldestFirst(t *testing.T) {
	svc := NewSystemWarningsService()
	svc.AddWarning(WarningCategoryAgentHealth, "first", "", "bug")
	time.Sleep(2 * time.Millisecond)
	svc.AddWarning(WarningCategoryMailDelivery, "second", "", "mailgun")
	time.Sleep(2 * time.Millisecond)
	svc.AddWarning(WarningCategoryCacheBackend, "third", "", "redis")

	warnings := svc.GetWarnings()
	require.Len(t, warnings, 3)
	assert.Equal(t, "first", warnings[0].Message)
	assert.Equal(t, "second", warnings[1].Message)
	assert.Equal(t, "third", warnings[2].Message)
}

func TestSystemWarningsService_Empty(t *testing.T) {
	assert.Empty(t, NewSystemWarningsService().GetWarnings())
}

func TestSystemWarningsService_ConcurrentAccess(t *testing.T) {
	svc := NewSystemWarningsService()
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			svc.AddWarning("test", "msg", "", "")
		}()
		go func() {
			defer wg.Done()
			_ = svc.GetWarnings()
		}()
	}
	wg.Wait()

	// Identical category+source collapses to a single entry
	assert.Len(t, svc.GetWarnings(), 1)
}
