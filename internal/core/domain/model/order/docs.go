// Package order provides the Order aggregate root of the tracking domain.
//
// An order is a shipping request identified by two tracking numbers: the
// system-generated logistic tracking number (globally unique) and the
// sender's own client tracking number (unique within the owning company).
// The order itself has no stored status; its status is derived on read from
// the statuses of its boxes.
package order
