package cleanup

import "context"

// Client keeps long-running state bounded: stale staging batches, expired
// selections and idle rate limiter entries.
type Client interface {
	ScheduleCleanup(ctx context.Context) error
	RunOnce(ctx context.Context)
}
