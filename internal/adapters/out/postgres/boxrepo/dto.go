// Package boxrepo provides data transfer objects and mapping functions for
// box persistence.
package boxrepo

import (
	"tracking/internal/core/domain/model/box"
	"tracking/internal/core/domain/model/kernel"
)

// BoxDTO represents the database structure for persisting box aggregates.
// The client code carries the global uniqueness constraint. The order
// reference is nullable: deleting an order orphans its boxes instead of
// cascading.
type BoxDTO struct {
	ID                 uint64  `gorm:"primaryKey;autoIncrement"`
	OrderID            *uint64 `gorm:"index"`
	ClientCode         string  `gorm:"uniqueIndex;size:64"`
	Code               string  `gorm:"size:64"`
	Width              *float64
	Height             *float64
	Length             *float64
	Weight             *float64
	ContentDescription string
	Status             string  `gorm:"size:32;index"`
	ShipmentID         *uint64 `gorm:"index"`
}

// TableName specifies the database table name for box entities.
func (BoxDTO) TableName() string {
	return "boxes"
}

// fromDomain converts a box aggregate to its database representation.
func fromDomain(aggregate *box.Box) BoxDTO {
	dims := aggregate.Dimensions()
	return BoxDTO{
		ID:                 aggregate.ID(),
		OrderID:            aggregate.OrderID(),
		ClientCode:         aggregate.ClientCode(),
		Code:               aggregate.Code(),
		Width:              dims.Width(),
		Height:             dims.Height(),
		Length:             dims.Length(),
		Weight:             dims.Weight(),
		ContentDescription: aggregate.ContentDescription(),
		Status:             aggregate.Status().String(),
		ShipmentID:         aggregate.ShipmentID(),
	}
}

// toDomain converts a database row back to a box aggregate.
func toDomain(dto BoxDTO) (*box.Box, error) {
	dims, err := kernel.NewDimensions(dto.Width, dto.Height, dto.Length, dto.Weight)
	if err != nil {
		return nil, err
	}

	return box.RestoreBox(
		dto.ID,
		dto.OrderID,
		dto.ClientCode,
		dto.Code,
		dims,
		dto.ContentDescription,
		box.Status(dto.Status),
		dto.ShipmentID,
	)
}
