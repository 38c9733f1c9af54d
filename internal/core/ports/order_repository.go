package ports

import (
	"context"

	"tracking/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate and assigns its identifier.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its identifier.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id uint64) (*order.Order, error)

	// GetBatch retrieves the orders with the given identifiers, keyed by id.
	// Missing identifiers are simply absent from the result.
	GetBatch(ctx context.Context, ids []uint64) (map[uint64]*order.Order, error)

	// ClientTrackingExists reports whether another order of the same company
	// already uses the client tracking number. excludeID skips the order
	// being updated; pass zero on create.
	ClientTrackingExists(ctx context.Context, clientTracking string, companyID *uint64, excludeID uint64) (bool, error)

	// Delete removes the order. Its boxes survive with a cleared order
	// reference; its events are kept.
	Delete(ctx context.Context, id uint64) error
}
