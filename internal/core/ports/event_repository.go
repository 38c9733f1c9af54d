package ports

import (
	"context"

	"tracking/internal/core/domain/model/event"
)

// EventRepository defines the persistence contract for event records.
// Events are append-only: there is no update or delete.
type EventRepository interface {
	// Add persists a new event record and assigns its identifier.
	Add(ctx context.Context, aggregate *event.Event) error

	// GetAllForOrder retrieves the events of an order, oldest first.
	GetAllForOrder(ctx context.Context, orderID uint64) ([]*event.Event, error)
}
