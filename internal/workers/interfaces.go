// Package workers runs the background jobs of the terminal client. The only
// job today is the cookie sweeper that prunes expired rows from the SQL
// cookie jar.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is cancelled or the job
// fails.
//
//	type tick struct{}
//
//	func (tick) Run(ctx context.Context) error {
//	    <-ctx.Done()
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}
