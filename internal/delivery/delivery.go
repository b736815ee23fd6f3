// Package delivery holds the inbound transports started by the commands.
package delivery

import "context"

// Delivery is a server that blocks in Serve until it stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
