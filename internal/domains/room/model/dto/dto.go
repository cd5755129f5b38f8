package dto

import (
	"github.com/lib/pq"

	"github.com/Ayy-man/spa-booking-v2-sub002/internal/domains/room/model"
	"github.com/Ayy-man/spa-booking-v2-sub002/shared"
	gDto "github.com/Ayy-man/spa-booking-v2-sub002/shared/dto"
	gModel "github.com/Ayy-man/spa-booking-v2-sub002/shared/model"
	"github.com/Ayy-man/spa-booking-v2-sub002/shared/timezone"
)

type CreateRoomRequest struct {
	Name         string   `json:"name"         validate:"required,max=100"`
	Capacity     int      `json:"capacity"     validate:"required,min=1,max=10"`
	Capabilities []string `json:"capabilities" validate:"required,min=1,dive,oneof=facial massage body_treatment body_scrub waxing package membership"`
	Active       *bool    `json:"active"       validate:"omitempty"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Room{
		Name:         c.Name,
		Capacity:     c.Capacity,
		Capabilities: c.Capabilities,
		Active:       active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	Name         string         `db:"name"         json:"name"         validate:"omitempty,max=100"`
	Capacity     *int           `db:"capacity"     json:"capacity"     validate:"omitempty,min=1,max=10"`
	Capabilities pq.StringArray `db:"capabilities" json:"capabilities" validate:"omitempty,min=1,dive,oneof=facial massage body_treatment body_scrub waxing package membership"`
	Active       *bool          `db:"active"       json:"active"       validate:"omitempty"`
}

type RoomResponse struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Capacity     int      `json:"capacity"`
	Capabilities []string `json:"capabilities"`
	Active       bool     `json:"active"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Name = model.Name
	r.Capacity = model.Capacity
	r.Capabilities = model.Capabilities
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
