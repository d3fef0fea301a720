// Package workers runs the long-lived parts of the serve mode side by side:
// the control API server and the periodic merge job.
package workers

import "context"

// Worker is a long-running unit of the serve mode. Run blocks until ctx is
// done or the worker fails.
type Worker interface {
	Run(ctx context.Context) error
}
