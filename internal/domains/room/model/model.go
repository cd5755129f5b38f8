package model

import (
	"github.com/lib/pq"

	"github.com/Ayy-man/spa-booking-v2-sub002/internal/scheduling"
	"github.com/Ayy-man/spa-booking-v2-sub002/shared/model"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID           = "id"
	FieldName         = "name"
	FieldCapacity     = "capacity"
	FieldCapabilities = "capabilities"
	FieldActive       = "active"
)

// Room ids are small serial integers; the couples room preference in config
// refers to them directly.
type Room struct {
	ID           int64          `db:"id"`
	Name         string         `db:"name"`
	Capacity     int            `db:"capacity"`
	Capabilities pq.StringArray `db:"capabilities"`
	Active       bool           `db:"active"`
	model.Metadata
}

// ToScheduling converts the row into the engine's room value.
func (r Room) ToScheduling() scheduling.Room {
	return scheduling.Room{
		ID:           int(r.ID),
		Name:         r.Name,
		Capacity:     r.Capacity,
		Capabilities: r.Capabilities,
		Active:       r.Active,
	}
}
