package config

import "time"

// QueueConfig contains queue and worker pool configuration.
// These values control how jobs are polled, claimed, and processed.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	// Each worker independently polls and processes jobs.
	WorkerCount int

	// PollInterval is the base idle sleep when the queue is empty
	// (WORKER_POLL_SECONDS).
	PollInterval time.Duration

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration

	// HeartbeatInterval is how often a worker touches its running job's
	// updated_at for orphan detection.
	HeartbeatInterval time.Duration

	// OrphanScanInterval is how often to scan for orphaned jobs.
	OrphanScanInterval time.Duration

	// OrphanThreshold is how long a running job can go without a heartbeat
	// before it is considered orphaned.
	OrphanThreshold time.Duration

	// GracefulShutdownTimeout is the max time to wait for active runs to
	// complete during shutdown.
	GracefulShutdownTimeout time.Duration
}

// LoadQueueConfig reads queue configuration from the environment.
func LoadQueueConfig() *QueueConfig {
	cfg := DefaultQueueConfig()
	cfg.WorkerCount = envInt("WORKER_COUNT", cfg.WorkerCount)
	if secs := envInt("WORKER_POLL_SECONDS", 0); secs > 0 {
		cfg.PollInterval = time.Duration(secs) * time.Second
	}
	cfg.HeartbeatInterval = envDuration("WORKER_HEARTBEAT_INTERVAL", cfg.HeartbeatInterval)
	cfg.OrphanScanInterval = envDuration("WORKER_ORPHAN_SCAN_INTERVAL", cfg.OrphanScanInterval)
	cfg.OrphanThreshold = envDuration("WORKER_ORPHAN_THRESHOLD", cfg.OrphanThreshold)
	cfg.GracefulShutdownTimeout = envDuration("WORKER_SHUTDOWN_TIMEOUT", cfg.GracefulShutdownTimeout)
	return cfg
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             2,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		HeartbeatInterval:       30 * time.Second,
		OrphanScanInterval:      5 * time.Minute,
		OrphanThreshold:         5 * time.Minute,
		GracefulShutdownTimeout: 15 * time.Minute,
	}
}
