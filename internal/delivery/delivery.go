// Package delivery groups the transports that expose the application: the REST API and the notifier worker.
package delivery

import "context"

// Delivery is a long-running transport started by the application entrypoint.
type Delivery interface {
	Serve(ctx context.Context) error
}
