// Package workers runs the background jobs of the agent as one group.
package workers

import "context"

// Worker is a background job with an explicit lifecycle.
//
// Start must not block. Stop blocks until the job has exited and is a no-op
// for a job that is not running.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
