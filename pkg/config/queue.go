package config

import "time"

// QueueConfig controls how tasks are polled, claimed, and processed by the
// worker pool.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica.
	WorkerCount int `yaml:"worker_count"`

	// MaxConcurrentTasks is the global limit of tasks running across ALL
	// replicas, enforced by a database COUNT(*) check at claim time.
	MaxConcurrentTasks int `yaml:"max_concurrent_tasks"`

	// PollInterval is the base interval for checking queued tasks.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is random jitter added to PollInterval so that
	// replicas do not poll in lockstep.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// TaskTimeout bounds a single task's total execution.
	TaskTimeout time.Duration `yaml:"task_timeout"`

	// HeartbeatInterval is how often a worker refreshes its claim on a
	// running task.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// GracefulShutdownTimeout is the max time to wait for active tasks to
	// finish during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// OrphanDetectionInterval is how often to scan for orphaned tasks.
	OrphanDetectionInterval time.Duration `yaml:"orphan_detection_interval"`

	// OrphanThreshold is how long a running task can go without a heartbeat
	// before it is considered orphaned.
	OrphanThreshold time.Duration `yaml:"orphan_threshold"`

	// OrphanMaxRequeues caps how many times an orphaned task is returned to
	// the queue before it is failed outright.
	OrphanMaxRequeues int `yaml:"orphan_max_requeues"`

	// DLQRedriveInterval is how often the redrive scheduler drains
	// retryable dead-letter entries.
	DLQRedriveInterval time.Duration `yaml:"dlq_redrive_interval"`

	// DLQMaxAttempts is the retry ceiling after which a dead-letter entry
	// is abandoned automatically.
	DLQMaxAttempts int `yaml:"dlq_max_attempts"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             4,
		MaxConcurrentTasks:      8,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		TaskTimeout:             20 * time.Minute,
		HeartbeatInterval:       30 * time.Second,
		GracefulShutdownTimeout: 20 * time.Minute,
		OrphanDetectionInterval: 5 * time.Minute,
		OrphanThreshold:         5 * time.Minute,
		OrphanMaxRequeues:       3,
		DLQRedriveInterval:      10 * time.Minute,
		DLQMaxAttempts:          5,
	}
}
