// Package delivery defines the contract for transport servers.
package delivery

import "context"

// Delivery is a transport-layer server that can be started by the process
// entry point. Shutdown is handled through lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
