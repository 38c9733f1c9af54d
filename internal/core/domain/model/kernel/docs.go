// Package kernel provides core domain primitives for the order-tracking system.
// It implements fundamental building blocks following Domain-Driven Design principles
// that are used throughout the domain model.
//
// The package includes:
//   - TrackingNumber: A value object for system-generated logistic tracking identifiers
//   - Dimensions: A value object describing the physical attributes of a box
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
