package model

import (
	"github.com/Ayy-man/spa-booking-v2-sub002/internal/scheduling"
	"github.com/Ayy-man/spa-booking-v2-sub002/shared/model"
)

const (
	TableName  = "services"
	EntityName = "service"

	FieldID                    = "id"
	FieldName                  = "name"
	FieldCategory              = "category"
	FieldDescription           = "description"
	FieldPriceCents            = "price_cents"
	FieldDurationMinutes       = "duration_minutes"
	FieldIsCouples             = "is_couples"
	FieldRequiresDedicatedRoom = "requires_dedicated_room"
	FieldActive                = "active"
)

type Service struct {
	ID                    string `db:"id"`
	Name                  string `db:"name"`
	Category              string `db:"category"`
	Description           string `db:"description"`
	PriceCents            int    `db:"price_cents"`
	DurationMinutes       int    `db:"duration_minutes"`
	IsCouples             bool   `db:"is_couples"`
	RequiresDedicatedRoom bool   `db:"requires_dedicated_room"`
	Active                bool   `db:"active"`
	model.Metadata
}

// ToScheduling converts the row into the engine's service value.
func (s Service) ToScheduling() scheduling.Service {
	return scheduling.Service{
		ID:                    s.ID,
		Name:                  s.Name,
		Category:              s.Category,
		Price:                 s.PriceCents,
		Duration:              s.DurationMinutes,
		IsCouples:             s.IsCouples,
		RequiresDedicatedRoom: s.RequiresDedicatedRoom,
	}
}
