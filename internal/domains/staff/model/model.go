package model

import (
	"database/sql"

	"github.com/lib/pq"

	"github.com/Ayy-man/spa-booking-v2-sub002/internal/scheduling"
	"github.com/Ayy-man/spa-booking-v2-sub002/shared/model"
)

const (
	TableName  = "staff"
	EntityName = "staff"

	FieldID            = "id"
	FieldName          = "name"
	FieldCapabilities  = "capabilities"
	FieldExclusions    = "exclusions"
	FieldWorkDays      = "work_days"
	FieldDefaultRoomID = "default_room_id"
	FieldActive        = "active"
)

type Staff struct {
	ID           string         `db:"id"`
	Name         string         `db:"name"`
	Capabilities pq.StringArray `db:"capabilities"`
	Exclusions   pq.StringArray `db:"exclusions"`
	// WorkDays holds weekday numbers 0 (Sunday) through 6 (Saturday).
	WorkDays      pq.Int64Array `db:"work_days"`
	DefaultRoomID sql.NullInt64 `db:"default_room_id"`
	Active        bool          `db:"active"`
	model.Metadata
}

// ToScheduling converts the row into the engine's staff value.
func (s Staff) ToScheduling() scheduling.Staff {
	workDays := make([]int, len(s.WorkDays))
	for i, day := range s.WorkDays {
		workDays[i] = int(day)
	}

	var defaultRoom *int
	if s.DefaultRoomID.Valid {
		room := int(s.DefaultRoomID.Int64)
		defaultRoom = &room
	}

	return scheduling.Staff{
		ID:            s.ID,
		Name:          s.Name,
		Capabilities:  s.Capabilities,
		Exclusions:    s.Exclusions,
		WorkDays:      workDays,
		DefaultRoomID: defaultRoom,
		Active:        s.Active,
	}
}
