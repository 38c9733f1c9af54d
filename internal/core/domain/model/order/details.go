package order

import (
	"time"
)

// Details groups the descriptive attributes of an order: shipping logistics,
// cargo characteristics and the recipient's address block. All fields are
// optional and carry no invariants, so they are exposed as a plain value
// struct rather than guarded setters.
type Details struct {
	ClientName string

	ShippingDate    *time.Time
	ShippingTime    string
	ShippingFrom    string
	ShippingCarType string
	ShippingMethod  string

	CargoDescription string
	CargoPallet      *int
	CargoQty         *int
	CargoWeight      *float64
	CargoPrice       string

	RecipientZip            string
	RecipientCity           string
	RecipientEmail          string
	RecipientArea           string
	RecipientAddress        string
	RecipientAddressComment string
	RecipientPhone          string
	RecipientName           string
	RecipientName2          string

	Comments string
}

// Patch is a partial update of an order. A nil field means "leave as is";
// a non-nil field replaces the stored value, including replacement with an
// empty string. Identity fields that may not be rewritten (creator, owning
// company, logistic tracking) have no representation here.
type Patch struct {
	ClientTracking    *string
	RecipientOrderNum *string

	ClientName *string

	ShippingDate    *time.Time
	ShippingTime    *string
	ShippingFrom    *string
	ShippingCarType *string
	ShippingMethod  *string

	CargoDescription *string
	CargoPallet      *int
	CargoQty         *int
	CargoWeight      *float64
	CargoPrice       *string

	RecipientZip            *string
	RecipientCity           *string
	RecipientEmail          *string
	RecipientArea           *string
	RecipientAddress        *string
	RecipientAddressComment *string
	RecipientPhone          *string
	RecipientName           *string
	RecipientName2          *string

	Comments *string
}

// mergeInto overlays the patch onto existing details, keeping values for
// every absent field.
func (p Patch) mergeInto(d Details) Details {
	if p.ClientName != nil {
		d.ClientName = *p.ClientName
	}
	if p.ShippingDate != nil {
		d.ShippingDate = p.ShippingDate
	}
	if p.ShippingTime != nil {
		d.ShippingTime = *p.ShippingTime
	}
	if p.ShippingFrom != nil {
		d.ShippingFrom = *p.ShippingFrom
	}
	if p.ShippingCarType != nil {
		d.ShippingCarType = *p.ShippingCarType
	}
	if p.ShippingMethod != nil {
		d.ShippingMethod = *p.ShippingMethod
	}
	if p.CargoDescription != nil {
		d.CargoDescription = *p.CargoDescription
	}
	if p.CargoPallet != nil {
		d.CargoPallet = p.CargoPallet
	}
	if p.CargoQty != nil {
		d.CargoQty = p.CargoQty
	}
	if p.CargoWeight != nil {
		d.CargoWeight = p.CargoWeight
	}
	if p.CargoPrice != nil {
		d.CargoPrice = *p.CargoPrice
	}
	if p.RecipientZip != nil {
		d.RecipientZip = *p.RecipientZip
	}
	if p.RecipientCity != nil {
		d.RecipientCity = *p.RecipientCity
	}
	if p.RecipientEmail != nil {
		d.RecipientEmail = *p.RecipientEmail
	}
	if p.RecipientArea != nil {
		d.RecipientArea = *p.RecipientArea
	}
	if p.RecipientAddress != nil {
		d.RecipientAddress = *p.RecipientAddress
	}
	if p.RecipientAddressComment != nil {
		d.RecipientAddressComment = *p.RecipientAddressComment
	}
	if p.RecipientPhone != nil {
		d.RecipientPhone = *p.RecipientPhone
	}
	if p.RecipientName != nil {
		d.RecipientName = *p.RecipientName
	}
	if p.RecipientName2 != nil {
		d.RecipientName2 = *p.RecipientName2
	}
	if p.Comments != nil {
		d.Comments = *p.Comments
	}
	return d
}
