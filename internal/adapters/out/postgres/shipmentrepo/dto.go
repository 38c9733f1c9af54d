// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment persistence.
package shipmentrepo

import (
	"time"

	"tracking/internal/core/domain/model/shipment"
)

// ShipmentDTO represents the database structure for persisting shipments.
type ShipmentDTO struct {
	ID          uint64 `gorm:"primaryKey;autoIncrement"`
	WaybillNum  string `gorm:"index;size:64"`
	WaybillDate time.Time
	Comment     string
	AuthorID    uint64 `gorm:"index"`
	CreatedAt   time.Time
}

// TableName specifies the database table name for shipment entities.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// fromDomain converts a shipment aggregate to its database representation.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	return ShipmentDTO{
		ID:          aggregate.ID(),
		WaybillNum:  aggregate.WaybillNum(),
		WaybillDate: aggregate.WaybillDate(),
		Comment:     aggregate.Comment(),
		AuthorID:    aggregate.AuthorID(),
		CreatedAt:   aggregate.CreatedAt(),
	}
}

// toDomain converts a database row back to a shipment aggregate.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	return shipment.RestoreShipment(
		dto.ID,
		dto.WaybillNum,
		dto.WaybillDate,
		dto.Comment,
		dto.AuthorID,
		dto.CreatedAt,
	)
}
