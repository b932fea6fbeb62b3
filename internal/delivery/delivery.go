// Package delivery defines the contract every transport server implements.
package delivery

import "context"

// Delivery is a transport-facing server that can be started by the process
// bootstrap.
type Delivery interface {
	Serve(ctx context.Context) error
}
