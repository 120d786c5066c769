// Package delivery defines the contract shared by all transport entrypoints.
package delivery

import "context"

// Delivery is a long-running entrypoint such as an HTTP server or a
// background scheduler. Implementations block in Serve until the context
// is canceled or a fatal error occurs.
type Delivery interface {
	Serve(ctx context.Context) error
}
