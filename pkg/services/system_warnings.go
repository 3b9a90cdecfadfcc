package services

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Warning categories surfaced through the health probe.
const (
	WarningCategoryAgentHealth  = "agent_health"  // agent circuit opened at runtime
	WarningCategoryCacheBackend = "cache_backend" // result cache backend unreachable
	WarningCategoryMailDelivery = "mail_delivery" // outbound mail failing
)

// SystemWarning is one non-fatal degradation notice.
type SystemWarning struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Source    string    `json:"source,omitempty"` // agent id, backend name, mail domain
	CreatedAt time.Time `json:"created_at"`
}

// warningKey identifies the component a warning is about. One warning per
// key: a repeat replaces the earlier notice instead of stacking duplicates.
type warningKey struct {
	category string
	source   string
}

// SystemWarningsService keeps the active warnings in memory. Warnings are
// transient operational state and reset on restart; anything durable belongs
// in the audit feed.
type SystemWarningsService struct {
	mu       sync.RWMutex
	warnings map[warningKey]*SystemWarning
}

// NewSystemWarningsService returns an empty registry.
func NewSystemWarningsService() *SystemWarningsService {
	return &SystemWarningsService{
		warnings: make(map[warningKey]*SystemWarning),
	}
}

// AddWarning records a warning and returns its id, replacing any earlier
// warning for the same category and source.
func (s *SystemWarningsService) AddWarning(category, message, details, source string) string {
	w := &SystemWarning{
		ID:        uuid.New().String(),
		Category:  category,
		Message:   message,
		Details:   details,
		Source:    source,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.warnings[warningKey{category, source}] = w
	s.mu.Unlock()
	return w.ID
}

// GetWarnings returns copies of the active warnings, oldest first. Callers
// read the returned structs without holding any lock.
func (s *SystemWarningsService) GetWarnings() []*SystemWarning {
	s.mu.RLock()
	result := make([]*SystemWarning, 0, len(s.warnings))
	for _, w := range s.warnings {
		cp := *w
		result = append(result, &cp)
	}
	s.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result
}

// ClearBySource drops the warning for a category+source pair when the
// component recovers. Reports whether anything was removed.
func (s *SystemWarningsService) ClearBySource(category, source string) bool {
	key := warningKey{category, source}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.warnings[key]; !ok {
		return false
	}
	delete(s.warnings, key)
	return true
}
