// Package delivery defines the servers the application runs.
package delivery

import "context"

// Delivery is a server started by the application and stopped through its
// fx lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
