// Package delivery defines the contract every transport server implements.
package delivery

import "context"

// Delivery is a server that can be started and serves until stopped by the
// application lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
