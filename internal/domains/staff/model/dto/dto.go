package dto

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/Ayy-man/spa-booking-v2-sub002/internal/domains/staff/model"
	"github.com/Ayy-man/spa-booking-v2-sub002/shared"
	gDto "github.com/Ayy-man/spa-booking-v2-sub002/shared/dto"
	gModel "github.com/Ayy-man/spa-booking-v2-sub002/shared/model"
	"github.com/Ayy-man/spa-booking-v2-sub002/shared/timezone"
)

type CreateStaffRequest struct {
	Name          string   `json:"name"            validate:"required,max=100"`
	Capabilities  []string `json:"capabilities"    validate:"required,min=1,dive,oneof=facial massage body_treatment body_scrub waxing package membership"`
	Exclusions    []string `json:"exclusions"      validate:"omitempty,dive,max=100"`
	WorkDays      []int    `json:"work_days"       validate:"required,min=1,dive,min=0,max=6"`
	DefaultRoomID *int64   `json:"default_room_id" validate:"omitempty,min=1"`
	Active        *bool    `json:"active"          validate:"omitempty"`
}

func (c *CreateStaffRequest) ToModel(user string) model.Staff {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	workDays := make(pq.Int64Array, len(c.WorkDays))
	for i, day := range c.WorkDays {
		workDays[i] = int64(day)
	}

	var defaultRoom sql.NullInt64
	if c.DefaultRoomID != nil {
		defaultRoom = sql.NullInt64{Int64: *c.DefaultRoomID, Valid: true}
	}

	return model.Staff{
		ID:            uuid.NewString(),
		Name:          c.Name,
		Capabilities:  c.Capabilities,
		Exclusions:    c.Exclusions,
		WorkDays:      workDays,
		DefaultRoomID: defaultRoom,
		Active:        active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// Array fields use the pq wrappers directly so the update map renders
// straight into named query parameters.
type UpdateStaffRequest struct {
	Name          string         `db:"name"            json:"name"            validate:"omitempty,max=100"`
	Capabilities  pq.StringArray `db:"capabilities"    json:"capabilities"    validate:"omitempty,min=1,dive,oneof=facial massage body_treatment body_scrub waxing package membership"`
	Exclusions    pq.StringArray `db:"exclusions"      json:"exclusions"      validate:"omitempty,dive,max=100"`
	WorkDays      pq.Int64Array  `db:"work_days"       json:"work_days"       validate:"omitempty,min=1,dive,min=0,max=6"`
	DefaultRoomID *int64         `db:"default_room_id" json:"default_room_id" validate:"omitempty,min=1"`
	Active        *bool          `db:"active"          json:"active"          validate:"omitempty"`
}

type StaffResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Capabilities  []string `json:"capabilities"`
	Exclusions    []string `json:"exclusions"`
	WorkDays      []int    `json:"work_days"`
	DefaultRoomID *int64   `json:"default_room_id"`
	Active        bool     `json:"active"`
	gDto.Metadata
}

func (r *StaffResponse) FromModel(model model.Staff) {
	r.ID = model.ID
	r.Name = model.Name
	r.Capabilities = model.Capabilities
	r.Exclusions = model.Exclusions
	r.Active = model.Active

	r.WorkDays = make([]int, len(model.WorkDays))
	for i, day := range model.WorkDays {
		r.WorkDays[i] = int(day)
	}

	if model.DefaultRoomID.Valid {
		room := model.DefaultRoomID.Int64
		r.DefaultRoomID = &room
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetStaffResponse struct {
	Staff     []StaffResponse `json:"staff"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetStaffResponse) FromModels(models []model.Staff, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Staff = make([]StaffResponse, len(models))
	for i, mod := range models {
		r.Staff[i].FromModel(mod)
	}
}
