// Package delivery holds the entry points that drive the use cases: the HTTP
// API and the reminder scheduler.
package delivery

import "context"

// Delivery is a long-running entry point started by the application.
type Delivery interface {
	// Serve runs until the delivery is stopped by its lifecycle hook.
	Serve(ctx context.Context) error
}
