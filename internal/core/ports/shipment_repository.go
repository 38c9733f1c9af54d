package ports

import (
	"context"

	"tracking/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate and assigns its identifier.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment aggregate by its identifier.
	// Returns errs.ObjectNotFoundError when no such shipment exists.
	Get(ctx context.Context, id uint64) (*shipment.Shipment, error)
}
