package http

import (
	"github.com/oapi-codegen/runtime/types"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/model/box"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"
	"tracking/internal/core/domain/model/shipment"
	"tracking/internal/core/domain/model/tenant"
)

// Request bodies. Dates travel as "YYYY-MM-DD" and emails are validated on
// bind, both via the oapi-codegen runtime types.

type createOrderRequest struct {
	ClientTracking    string `json:"client_tracking"`
	RecipientOrderNum string `json:"recipient_order_num"`
	RecipientID       uint64 `json:"recipient_id"`

	ClientName string `json:"client_name"`

	ShippingDate    *types.Date `json:"shipping_date"`
	ShippingTime    string      `json:"shipping_time"`
	ShippingFrom    string      `json:"shipping_from"`
	ShippingCarType string      `json:"shipping_car_type"`
	ShippingMethod  string      `json:"shipping_method"`

	CargoDescription string   `json:"cargo_description"`
	CargoPallet      *int     `json:"cargo_pallet"`
	CargoQty         *int     `json:"cargo_qty"`
	CargoWeight      *float64 `json:"cargo_weight"`
	CargoPrice       string   `json:"cargo_price"`

	RecipientZip            string       `json:"recipient_zip"`
	RecipientCity           string       `json:"recipient_city"`
	RecipientEmail          *types.Email `json:"recipient_email"`
	RecipientArea           string       `json:"recipient_area"`
	RecipientAddress        string       `json:"recipient_address"`
	RecipientAddressComment string       `json:"recipient_address_comment"`
	RecipientPhone          string       `json:"recipient_phone"`
	RecipientName           string       `json:"recipient_name"`
	RecipientName2          string       `json:"recipient_name2"`

	Comments string `json:"comments"`
}

func (r createOrderRequest) details() order.Details {
	d := order.Details{
		ClientName:              r.ClientName,
		ShippingTime:            r.ShippingTime,
		ShippingFrom:            r.ShippingFrom,
		ShippingCarType:         r.ShippingCarType,
		ShippingMethod:          r.ShippingMethod,
		CargoDescription:        r.CargoDescription,
		CargoPallet:             r.CargoPallet,
		CargoQty:                r.CargoQty,
		CargoWeight:             r.CargoWeight,
		CargoPrice:              r.CargoPrice,
		RecipientZip:            r.RecipientZip,
		RecipientCity:           r.RecipientCity,
		RecipientArea:           r.RecipientArea,
		RecipientAddress:        r.RecipientAddress,
		RecipientAddressComment: r.RecipientAddressComment,
		RecipientPhone:          r.RecipientPhone,
		RecipientName:           r.RecipientName,
		RecipientName2:          r.RecipientName2,
		Comments:                r.Comments,
	}
	if r.ShippingDate != nil {
		d.ShippingDate = &r.ShippingDate.Time
	}
	if r.RecipientEmail != nil {
		d.RecipientEmail = string(*r.RecipientEmail)
	}
	return d
}

// updateOrderRequest is a partial update: absent fields keep their stored
// values, present fields replace them, empty strings included.
type updateOrderRequest struct {
	ClientTracking    *string `json:"client_tracking"`
	RecipientOrderNum *string `json:"recipient_order_num"`

	ClientName *string `json:"client_name"`

	ShippingDate    *types.Date `json:"shipping_date"`
	ShippingTime    *string     `json:"shipping_time"`
	ShippingFrom    *string     `json:"shipping_from"`
	ShippingCarType *string     `json:"shipping_car_type"`
	ShippingMethod  *string     `json:"shipping_method"`

	CargoDescription *string  `json:"cargo_description"`
	CargoPallet      *int     `json:"cargo_pallet"`
	CargoQty         *int     `json:"cargo_qty"`
	CargoWeight      *float64 `json:"cargo_weight"`
	CargoPrice       *string  `json:"cargo_price"`

	RecipientZip            *string      `json:"recipient_zip"`
	RecipientCity           *string      `json:"recipient_city"`
	RecipientEmail          *types.Email `json:"recipient_email"`
	RecipientArea           *string      `json:"recipient_area"`
	RecipientAddress        *string      `json:"recipient_address"`
	RecipientAddressComment *string      `json:"recipient_address_comment"`
	RecipientPhone          *string      `json:"recipient_phone"`
	RecipientName           *string      `json:"recipient_name"`
	RecipientName2          *string      `json:"recipient_name2"`

	Comments *string `json:"comments"`
}

func (r updateOrderRequest) patch() order.Patch {
	p := order.Patch{
		ClientTracking:          r.ClientTracking,
		RecipientOrderNum:       r.RecipientOrderNum,
		ClientName:              r.ClientName,
		ShippingTime:            r.ShippingTime,
		ShippingFrom:            r.ShippingFrom,
		ShippingCarType:         r.ShippingCarType,
		ShippingMethod:          r.ShippingMethod,
		CargoDescription:        r.CargoDescription,
		CargoPallet:             r.CargoPallet,
		CargoQty:                r.CargoQty,
		CargoWeight:             r.CargoWeight,
		CargoPrice:              r.CargoPrice,
		RecipientZip:            r.RecipientZip,
		RecipientCity:           r.RecipientCity,
		RecipientArea:           r.RecipientArea,
		RecipientAddress:        r.RecipientAddress,
		RecipientAddressComment: r.RecipientAddressComment,
		RecipientPhone:          r.RecipientPhone,
		RecipientName:           r.RecipientName,
		RecipientName2:          r.RecipientName2,
		Comments:                r.Comments,
	}
	if r.ShippingDate != nil {
		p.ShippingDate = &r.ShippingDate.Time
	}
	if r.RecipientEmail != nil {
		email := string(*r.RecipientEmail)
		p.RecipientEmail = &email
	}
	return p
}

type createBoxRequest struct {
	OrderID            uint64   `json:"order_id"`
	ClientCode         string   `json:"client_code"`
	Code               string   `json:"code"`
	Width              *float64 `json:"width"`
	Height             *float64 `json:"height"`
	Length             *float64 `json:"length"`
	Weight             *float64 `json:"weight"`
	ContentDescription string   `json:"content_description"`
}

func (r createBoxRequest) dimensions() (kernel.Dimensions, error) {
	return kernel.NewDimensions(r.Width, r.Height, r.Length, r.Weight)
}

// updateBoxRequest is a partial update of a box. The four dimension fields
// are replaced as a unit: when any of them is present, absent ones are
// cleared.
type updateBoxRequest struct {
	OrderID            *uint64  `json:"order_id"`
	ClientCode         *string  `json:"client_code"`
	Code               *string  `json:"code"`
	Width              *float64 `json:"width"`
	Height             *float64 `json:"height"`
	Length             *float64 `json:"length"`
	Weight             *float64 `json:"weight"`
	ContentDescription *string  `json:"content_description"`
}

func (r updateBoxRequest) patch() (commands.BoxPatch, error) {
	p := commands.BoxPatch{
		OrderID:            r.OrderID,
		ClientCode:         r.ClientCode,
		Code:               r.Code,
		ContentDescription: r.ContentDescription,
	}
	if r.Width != nil || r.Height != nil || r.Length != nil || r.Weight != nil {
		dims, err := kernel.NewDimensions(r.Width, r.Height, r.Length, r.Weight)
		if err != nil {
			return commands.BoxPatch{}, err
		}
		p.Dimensions = &dims
	}
	return p, nil
}

type createShipmentRequest struct {
	WaybillNum  string     `json:"waybill_num"`
	WaybillDate types.Date `json:"waybill_date"`
	Comment     string     `json:"comment"`
	BoxIDs      []uint64   `json:"boxes_ids"`
}

type registerUserRequest struct {
	Username  string      `json:"username"`
	Name      string      `json:"name"`
	Email     types.Email `json:"email"`
	Password  string      `json:"password"`
	CompanyID *uint64     `json:"company"`
}

type obtainTokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type registeredUserResponse struct {
	ID        uint64  `json:"id"`
	Username  string  `json:"username"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	CompanyID *uint64 `json:"company"`
	Token     string  `json:"token"`
}

func registeredUser(u *tenant.User) registeredUserResponse {
	return registeredUserResponse{
		ID:        u.ID(),
		Username:  u.Username(),
		Name:      u.Name(),
		Email:     u.Email(),
		CompanyID: u.CompanyID(),
		Token:     u.Token(),
	}
}

// orderBody renders a freshly written order aggregate in the read model's
// wire shape. A new order has no boxes yet, so the derived sets are empty.
func orderBody(o *order.Order) queries.OrderResponse {
	d := o.Details()
	return queries.OrderResponse{
		ID:                 o.ID(),
		LogisticTracking:   o.LogisticTracking().String(),
		ClientTracking:     o.ClientTracking(),
		ClientName:         d.ClientName,
		UserID:             o.UserID(),
		CompanyID:          o.CompanyID(),
		RecipientCompanyID: o.RecipientCompanyID(),
		RecipientOrderNum:  o.RecipientOrderNum(),
		Status:             []string{},
		BoxIDs:             []uint64{},
		ShippingDate:       d.ShippingDate,
		ShippingTime:       d.ShippingTime,
		ShippingFrom:       d.ShippingFrom,
		ShippingCarType:    d.ShippingCarType,
		ShippingMethod:     d.ShippingMethod,
		CargoDescription:   d.CargoDescription,
		CargoPallet:        d.CargoPallet,
		CargoQty:           d.CargoQty,
		CargoWeight:        d.CargoWeight,
		CargoPrice:         d.CargoPrice,
		RecipientZip:       d.RecipientZip,
		RecipientCity:      d.RecipientCity,
		RecipientEmail:     d.RecipientEmail,
		RecipientArea:      d.RecipientArea,
		RecipientAddress:   d.RecipientAddress,
		RecipientAddrNote:  d.RecipientAddressComment,
		RecipientPhone:     d.RecipientPhone,
		RecipientName:      d.RecipientName,
		RecipientName2:     d.RecipientName2,
		Comments:           d.Comments,
		UpdatedAt:          o.UpdatedAt(),
	}
}

func boxBody(b *box.Box) queries.BoxResponse {
	dims := b.Dimensions()
	return queries.BoxResponse{
		ID:                 b.ID(),
		OrderID:            b.OrderID(),
		ClientCode:         b.ClientCode(),
		Code:               b.Code(),
		Width:              dims.Width(),
		Height:             dims.Height(),
		Length:             dims.Length(),
		Weight:             dims.Weight(),
		ContentDescription: b.ContentDescription(),
		Status:             string(b.Status()),
		ShipmentID:         b.ShipmentID(),
	}
}

func shipmentBody(s *shipment.Shipment, boxes []*box.Box) queries.ShipmentResponse {
	ids := make([]uint64, 0, len(boxes))
	for _, b := range boxes {
		ids = append(ids, b.ID())
	}
	return queries.ShipmentResponse{
		ID:          s.ID(),
		WaybillNum:  s.WaybillNum(),
		WaybillDate: s.WaybillDate(),
		Comment:     s.Comment(),
		AuthorID:    s.AuthorID(),
		CreatedAt:   s.CreatedAt(),
		BoxIDs:      ids,
	}
}
