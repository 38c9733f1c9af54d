package ports

import (
	"context"

	"tracking/internal/core/domain/model/box"
)

// BoxRepository defines the persistence contract for box aggregates.
type BoxRepository interface {
	// Add persists a new box aggregate and assigns its identifier.
	Add(ctx context.Context, aggregate *box.Box) error

	// Update persists changes to an existing box aggregate.
	Update(ctx context.Context, aggregate *box.Box) error

	// Get retrieves a box aggregate by its identifier.
	// Returns errs.ObjectNotFoundError when no such box exists.
	Get(ctx context.Context, id uint64) (*box.Box, error)

	// GetBatch retrieves the boxes with the given identifiers, preserving the
	// request order. Returns errs.ObjectNotFoundError naming the first
	// missing identifier.
	GetBatch(ctx context.Context, ids []uint64) ([]*box.Box, error)

	// DetachAllFromOrder clears the order reference of every box belonging
	// to the order. Used when an order is deleted.
	DetachAllFromOrder(ctx context.Context, orderID uint64) error

	// Delete removes the box.
	Delete(ctx context.Context, id uint64) error
}
