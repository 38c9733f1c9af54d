// Package event provides the append-only Event record written alongside
// order and shipment workflow operations.
package event
