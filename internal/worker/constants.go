package worker

import "time"

// Log messages - worker pool
const (
	LogMsgWorkerJobFailed   = "Worker job failed"
	LogMsgWorkerJobPanicked = "Worker job panicked"
	LogMsgPoolStopping      = "Worker pool stopping"
	LogMsgPoolStopped       = "Worker pool stopped"
	LogMsgPoolStopTimeout   = "Worker pool stop timed out, jobs may still be running"
	LogMsgQueuedJobsDropped = "Queued jobs dropped on stop"
)

// Log messages - janitor
const (
	LogMsgPruneScheduled  = "Retention run scheduled"
	LogMsgPruneStarting   = "Retention task starting"
	LogMsgPruneCompleted  = "Retention task completed"
	LogMsgPruneFailed     = "Retention task failed"
	LogMsgJanitorStopping = "Shutting down janitor"
	LogMsgJanitorStopped  = "Janitor shutdown complete"
	LogMsgJanitorTimeout  = "Janitor shutdown timeout, a retention run may still be in progress"
)

// Error messages
const (
	ErrMsgQueueFull   = "job queue is full"
	ErrMsgPoolStopped = "worker pool is stopped"

	ErrMsgPruneTaskFormat = "prune %s: %w"
)

// DefaultPruneInterval is how often the janitor runs
const DefaultPruneInterval = 6 * time.Hour
