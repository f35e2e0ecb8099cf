package delivery

import "context"

// Delivery is an inbound surface started by the application.
type Delivery interface {
	// Serve blocks until the surface stops.
	Serve(ctx context.Context) error
}
