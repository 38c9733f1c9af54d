// Package shipment provides the Shipment aggregate: a waybill grouping
// boxes for transport. Creating a shipment is the operation that moves its
// boxes from NEW or READY_FOR_SHIPPING to SORTING.
package shipment
