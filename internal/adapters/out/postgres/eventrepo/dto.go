// Package eventrepo provides data transfer objects and mapping functions for
// the append-only order event log.
package eventrepo

import (
	"time"

	"tracking/internal/core/domain/model/event"
)

// EventDTO represents the database structure for persisting events. The order
// reference is nullable: waybill events are not tied to a single order.
type EventDTO struct {
	ID       uint64  `gorm:"primaryKey;autoIncrement"`
	Status   string  `gorm:"size:32"`
	OrderID  *uint64 `gorm:"index"`
	Comments string
	AuthorID uint64 `gorm:"index"`
	At       time.Time
}

// TableName specifies the database table name for event entities.
func (EventDTO) TableName() string {
	return "events"
}

// fromDomain converts an event to its database representation.
func fromDomain(aggregate *event.Event) EventDTO {
	return EventDTO{
		ID:       aggregate.ID(),
		Status:   aggregate.Status(),
		OrderID:  aggregate.OrderID(),
		Comments: aggregate.Comments(),
		AuthorID: aggregate.AuthorID(),
		At:       aggregate.At(),
	}
}

// toDomain converts a database row back to an event.
func toDomain(dto EventDTO) (*event.Event, error) {
	return event.RestoreEvent(
		dto.ID,
		dto.Status,
		dto.OrderID,
		dto.Comments,
		dto.AuthorID,
		dto.At,
	)
}
