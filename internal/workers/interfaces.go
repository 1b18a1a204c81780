// Package workers runs the backend's background jobs. Each job implements
// Worker and is started by a Workers aggregate that waits for all of them
// to stop.
package workers

import (
	"context"
	"time"
)

// Worker is a background job. Run blocks until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}

// ExpiredPurger drops expired state and reports how many entries went.
type ExpiredPurger interface {
	PurgeExpired(now time.Time) int
}
