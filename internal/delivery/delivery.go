// Package delivery defines the contract every transport-facing server fulfills.
package delivery

import "context"

// Delivery is a long-running server started by the application entrypoint.
// Serve blocks until the context is cancelled or the server fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
