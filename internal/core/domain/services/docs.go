// Package services contains domain services that coordinate several
// aggregates within one business operation. ShipmentAssembler validates a
// batch of boxes against the attach rules and moves them onto a shipment.
package services
