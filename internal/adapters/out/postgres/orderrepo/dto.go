// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The logistic tracking number carries the global uniqueness constraint;
// per-company uniqueness of the client tracking number is enforced by the
// application, so it only gets a plain index here.
type OrderDTO struct {
	ID                      uint64  `gorm:"primaryKey;autoIncrement"`
	UserID                  uint64  `gorm:"index"`
	CompanyID               *uint64 `gorm:"index"`
	RecipientCompanyID      uint64  `gorm:"index"`
	LogisticTracking        string  `gorm:"uniqueIndex;size:32"`
	ClientTracking          string  `gorm:"index;size:64"`
	ClientName              string
	RecipientOrderNum       string
	ShippingDate            *time.Time
	ShippingTime            string
	ShippingFrom            string
	ShippingCarType         string
	ShippingMethod          string
	CargoDescription        string
	CargoPallet             *int
	CargoQty                *int
	CargoWeight             *float64
	CargoPrice              string
	RecipientZip            string
	RecipientCity           string
	RecipientEmail          string
	RecipientArea           string
	RecipientAddress        string
	RecipientAddressComment string
	RecipientPhone          string
	RecipientName           string
	RecipientName2          string
	Comments                string
	UpdatedAt               time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	d := aggregate.Details()
	return OrderDTO{
		ID:                      aggregate.ID(),
		UserID:                  aggregate.UserID(),
		CompanyID:               aggregate.CompanyID(),
		RecipientCompanyID:      aggregate.RecipientCompanyID(),
		LogisticTracking:        aggregate.LogisticTracking().String(),
		ClientTracking:          aggregate.ClientTracking(),
		ClientName:              d.ClientName,
		RecipientOrderNum:       aggregate.RecipientOrderNum(),
		ShippingDate:            d.ShippingDate,
		ShippingTime:            d.ShippingTime,
		ShippingFrom:            d.ShippingFrom,
		ShippingCarType:         d.ShippingCarType,
		ShippingMethod:          d.ShippingMethod,
		CargoDescription:        d.CargoDescription,
		CargoPallet:             d.CargoPallet,
		CargoQty:                d.CargoQty,
		CargoWeight:             d.CargoWeight,
		CargoPrice:              d.CargoPrice,
		RecipientZip:            d.RecipientZip,
		RecipientCity:           d.RecipientCity,
		RecipientEmail:          d.RecipientEmail,
		RecipientArea:           d.RecipientArea,
		RecipientAddress:        d.RecipientAddress,
		RecipientAddressComment: d.RecipientAddressComment,
		RecipientPhone:          d.RecipientPhone,
		RecipientName:           d.RecipientName,
		RecipientName2:          d.RecipientName2,
		Comments:                d.Comments,
		UpdatedAt:               aggregate.UpdatedAt(),
	}
}

// toDomain converts a database row back to an order aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	tracking, err := kernel.TrackingNumberFromString(dto.LogisticTracking)
	if err != nil {
		return nil, err
	}

	details := order.Details{
		ClientName:              dto.ClientName,
		ShippingDate:            dto.ShippingDate,
		ShippingTime:            dto.ShippingTime,
		ShippingFrom:            dto.ShippingFrom,
		ShippingCarType:         dto.ShippingCarType,
		ShippingMethod:          dto.ShippingMethod,
		CargoDescription:        dto.CargoDescription,
		CargoPallet:             dto.CargoPallet,
		CargoQty:                dto.CargoQty,
		CargoWeight:             dto.CargoWeight,
		CargoPrice:              dto.CargoPrice,
		RecipientZip:            dto.RecipientZip,
		RecipientCity:           dto.RecipientCity,
		RecipientEmail:          dto.RecipientEmail,
		RecipientArea:           dto.RecipientArea,
		RecipientAddress:        dto.RecipientAddress,
		RecipientAddressComment: dto.RecipientAddressComment,
		RecipientPhone:          dto.RecipientPhone,
		RecipientName:           dto.RecipientName,
		RecipientName2:          dto.RecipientName2,
		Comments:                dto.Comments,
	}

	return order.RestoreOrder(
		dto.ID,
		dto.UserID,
		dto.CompanyID,
		dto.RecipientCompanyID,
		dto.ClientTracking,
		dto.RecipientOrderNum,
		tracking,
		details,
		dto.UpdatedAt,
	)
}
