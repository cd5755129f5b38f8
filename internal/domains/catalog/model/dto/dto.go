package dto

import (
	"github.com/google/uuid"

	"github.com/Ayy-man/spa-booking-v2-sub002/internal/domains/catalog/model"
	"github.com/Ayy-man/spa-booking-v2-sub002/shared"
	gDto "github.com/Ayy-man/spa-booking-v2-sub002/shared/dto"
	gModel "github.com/Ayy-man/spa-booking-v2-sub002/shared/model"
	"github.com/Ayy-man/spa-booking-v2-sub002/shared/timezone"
)

type CreateServiceRequest struct {
	Name                  string `json:"name"                    validate:"required,max=100"`
	Category              string `json:"category"                validate:"required,oneof=facial massage body_treatment body_scrub waxing package membership"`
	Description           string `json:"description"             validate:"omitempty,max=500"`
	PriceCents            int    `json:"price_cents"             validate:"required,min=0"`
	DurationMinutes       int    `json:"duration_minutes"        validate:"required,min=5,max=480"`
	IsCouples             bool   `json:"is_couples"              validate:"omitempty"`
	RequiresDedicatedRoom bool   `json:"requires_dedicated_room" validate:"omitempty"`
	Active                *bool  `json:"active"                  validate:"omitempty"`
}

func (c *CreateServiceRequest) ToModel(user string) model.Service {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Service{
		ID:                    uuid.NewString(),
		Name:                  c.Name,
		Category:              c.Category,
		Description:           c.Description,
		PriceCents:            c.PriceCents,
		DurationMinutes:       c.DurationMinutes,
		IsCouples:             c.IsCouples,
		RequiresDedicatedRoom: c.RequiresDedicatedRoom,
		Active:                active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateServiceRequest struct {
	Name                  string `db:"name"                    json:"name"                    validate:"omitempty,max=100"`
	Category              string `db:"category"                json:"category"                validate:"omitempty,oneof=facial massage body_treatment body_scrub waxing package membership"`
	Description           string `db:"description"             json:"description"             validate:"omitempty,max=500"`
	PriceCents            *int   `db:"price_cents"             json:"price_cents"             validate:"omitempty,min=0"`
	DurationMinutes       *int   `db:"duration_minutes"        json:"duration_minutes"        validate:"omitempty,min=5,max=480"`
	IsCouples             *bool  `db:"is_couples"              json:"is_couples"              validate:"omitempty"`
	RequiresDedicatedRoom *bool  `db:"requires_dedicated_room" json:"requires_dedicated_room" validate:"omitempty"`
	Active                *bool  `db:"active"                  json:"active"                  validate:"omitempty"`
}

type ServiceResponse struct {
	ID                    string `json:"id"`
	Name                  string `json:"name"`
	Category              string `json:"category"`
	Description           string `json:"description"`
	PriceCents            int    `json:"price_cents"`
	DurationMinutes       int    `json:"duration_minutes"`
	IsCouples             bool   `json:"is_couples"`
	RequiresDedicatedRoom bool   `json:"requires_dedicated_room"`
	Active                bool   `json:"active"`
	gDto.Metadata
}

func (r *ServiceResponse) FromModel(model model.Service) {
	r.ID = model.ID
	r.Name = model.Name
	r.Category = model.Category
	r.Description = model.Description
	r.PriceCents = model.PriceCents
	r.DurationMinutes = model.DurationMinutes
	r.IsCouples = model.IsCouples
	r.RequiresDedicatedRoom = model.RequiresDedicatedRoom
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetServicesResponse struct {
	Services  []ServiceResponse `json:"services"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetServicesResponse) FromModels(models []model.Service, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Services = make([]ServiceResponse, len(models))
	for i, mod := range models {
		r.Services[i].FromModel(mod)
	}
}
