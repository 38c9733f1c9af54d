// Package queries contains read-side operations of the CQRS architecture.
// Query handlers read directly from the database into flat response structs,
// bypassing the aggregates; tenant scoping is applied in SQL so out-of-scope
// rows are indistinguishable from missing ones.
package queries

import (
	"time"
)

// OrderResponse is the flat read model of an order. Status is derived from
// the order's boxes at read time and is a sorted set of their distinct
// statuses.
type OrderResponse struct {
	ID                 uint64     `json:"id"`
	LogisticTracking   string     `json:"logistic_tracking"`
	ClientTracking     string     `json:"client_tracking"`
	ClientName         string     `json:"client_name"`
	UserID             uint64     `json:"user"`
	CompanyID          *uint64    `json:"company"`
	RecipientCompanyID uint64     `json:"recipient_id"`
	RecipientOrderNum  string     `json:"recipient_order_num"`
	Status             []string   `json:"status"`
	BoxIDs             []uint64   `json:"boxes"`
	ShippingDate       *time.Time `json:"shipping_date"`
	ShippingTime       string     `json:"shipping_time"`
	ShippingFrom       string     `json:"shipping_from"`
	ShippingCarType    string     `json:"shipping_car_type"`
	ShippingMethod     string     `json:"shipping_method"`
	CargoDescription   string     `json:"cargo_description"`
	CargoPallet        *int       `json:"cargo_pallet"`
	CargoQty           *int       `json:"cargo_qty"`
	CargoWeight        *float64   `json:"cargo_weight"`
	CargoPrice         string     `json:"cargo_price"`
	RecipientZip       string     `json:"recipient_zip"`
	RecipientCity      string     `json:"recipient_city"`
	RecipientEmail     string     `json:"recipient_email"`
	RecipientArea      string     `json:"recipient_area"`
	RecipientAddress   string     `json:"recipient_address"`
	RecipientAddrNote  string     `json:"recipient_address_comment"`
	RecipientPhone     string     `json:"recipient_phone"`
	RecipientName      string     `json:"recipient_name"`
	RecipientName2     string     `json:"recipient_name2"`
	Comments           string     `json:"comments"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// BoxResponse is the flat read model of a box.
type BoxResponse struct {
	ID                 uint64   `json:"id"`
	OrderID            *uint64  `json:"order"`
	ClientCode         string   `json:"client_code"`
	Code               string   `json:"code"`
	Width              *float64 `json:"width"`
	Height             *float64 `json:"height"`
	Length             *float64 `json:"length"`
	Weight             *float64 `json:"weight"`
	ContentDescription string   `json:"content_description"`
	Status             string   `json:"status"`
	ShipmentID         *uint64  `json:"shipment"`
}

// ShipmentResponse is the flat read model of a shipment.
type ShipmentResponse struct {
	ID          uint64    `json:"id"`
	WaybillNum  string    `json:"waybill_num"`
	WaybillDate time.Time `json:"waybill_date"`
	Comment     string    `json:"comment"`
	AuthorID    uint64    `json:"user"`
	CreatedAt   time.Time `json:"created_at"`
	BoxIDs      []uint64  `json:"boxes"`
}

// EventResponse is the flat read model of an audit event.
type EventResponse struct {
	ID       uint64    `json:"id"`
	Status   string    `json:"status"`
	OrderID  *uint64   `json:"order"`
	Comments string    `json:"comments"`
	AuthorID uint64    `json:"user"`
	At       time.Time `json:"event_date"`
}

// Page wraps a paginated result set.
type Page[T any] struct {
	Count   int64 `json:"count"`
	Results []T   `json:"results"`
}

// orderRow mirrors the orders table for read queries.
type orderRow struct {
	ID                      uint64
	UserID                  uint64
	CompanyID               *uint64
	RecipientCompanyID      uint64
	LogisticTracking        string
	ClientTracking          string
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

func (orderRow) TableName() string { return "orders" }

// boxRow mirrors the boxes table for read queries.
type boxRow struct {
	ID                 uint64
	OrderID            *uint64
	ClientCode         string
	Code               string
	Width              *float64
	Height             *float64
	Length             *float64
	Weight             *float64
	ContentDescription string
	Status             string
	ShipmentID         *uint64
}

func (boxRow) TableName() string { return "boxes" }

// shipmentRow mirrors the shipments table for read queries.
type shipmentRow struct {
	ID          uint64
	WaybillNum  string
	WaybillDate time.Time
	Comment     string
	AuthorID    uint64
	CreatedAt   time.Time
}

func (shipmentRow) TableName() string { return "shipments" }

// eventRow mirrors the events table for read queries.
type eventRow struct {
	ID       uint64
	Status   string
	OrderID  *uint64
	Comments string
	AuthorID uint64
	At       time.Time
}

func (eventRow) TableName() string { return "events" }

func (r orderRow) toResponse() OrderResponse {
	return OrderResponse{
		ID:                 r.ID,
		LogisticTracking:   r.LogisticTracking,
		ClientTracking:     r.ClientTracking,
		ClientName:         r.ClientName,
		UserID:             r.UserID,
		CompanyID:          r.CompanyID,
		RecipientCompanyID: r.RecipientCompanyID,
		RecipientOrderNum:  r.RecipientOrderNum,
		Status:             []string{},
		BoxIDs:             []uint64{},
		ShippingDate:       r.ShippingDate,
		ShippingTime:       r.ShippingTime,
		ShippingFrom:       r.ShippingFrom,
		ShippingCarType:    r.ShippingCarType,
		ShippingMethod:     r.ShippingMethod,
		CargoDescription:   r.CargoDescription,
		CargoPallet:        r.CargoPallet,
		CargoQty:           r.CargoQty,
		CargoWeight:        r.CargoWeight,
		CargoPrice:         r.CargoPrice,
		RecipientZip:       r.RecipientZip,
		RecipientCity:      r.RecipientCity,
		RecipientEmail:     r.RecipientEmail,
		RecipientArea:      r.RecipientArea,
		RecipientAddress:   r.RecipientAddress,
		RecipientAddrNote:  r.RecipientAddressComment,
		RecipientPhone:     r.RecipientPhone,
		RecipientName:      r.RecipientName,
		RecipientName2:     r.RecipientName2,
		Comments:           r.Comments,
		UpdatedAt:          r.UpdatedAt,
	}
}

func (r boxRow) toResponse() BoxResponse {
	return BoxResponse{
		ID:                 r.ID,
		OrderID:            r.OrderID,
		ClientCode:         r.ClientCode,
		Code:               r.Code,
		Width:              r.Width,
		Height:             r.Height,
		Length:             r.Length,
		Weight:             r.Weight,
		ContentDescription: r.ContentDescription,
		Status:             r.Status,
		ShipmentID:         r.ShipmentID,
	}
}

func (r shipmentRow) toResponse() ShipmentResponse {
	return ShipmentResponse{
		ID:          r.ID,
		WaybillNum:  r.WaybillNum,
		WaybillDate: r.WaybillDate,
		Comment:     r.Comment,
		AuthorID:    r.AuthorID,
		CreatedAt:   r.CreatedAt,
		BoxIDs:      []uint64{},
	}
}

func (r eventRow) toResponse() EventResponse {
	return EventResponse{
		ID:       r.ID,
		Status:   r.Status,
		OrderID:  r.OrderID,
		Comments: r.Comments,
		AuthorID: r.AuthorID,
		At:       r.At,
	}
}
