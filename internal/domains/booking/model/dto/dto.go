package dto

import (
	"github.com/Ayy-man/spa-booking-v2-sub002/internal/domains/booking/model"
	"github.com/Ayy-man/spa-booking-v2-sub002/shared"
	"github.com/Ayy-man/spa-booking-v2-sub002/shared/constant"
	gDto "github.com/Ayy-man/spa-booking-v2-sub002/shared/dto"
)

// GuestSelection picks a service and a staff member for one guest. StaffID
// is either a concrete staff id or the configured any-staff sentinel.
type GuestSelection struct {
	ServiceID string `json:"service_id" validate:"required"`
	StaffID   string `json:"staff_id"   validate:"required,max=100"`
}

type CreateBookingRequest struct {
	Date       string          `json:"date"        validate:"required,bookdate"`
	StartTime  string          `json:"start_time"  validate:"required,clock"`
	PartySize  int             `json:"party_size"  validate:"omitempty,min=1,max=2"`
	GuestName  string          `json:"guest_name"  validate:"required,max=100"`
	GuestEmail string          `json:"guest_email" validate:"omitempty,email,max=100"`
	GuestPhone string          `json:"guest_phone" validate:"omitempty,max=20"`
	Notes      string          `json:"notes"       validate:"omitempty,max=500"`
	Primary    GuestSelection  `json:"primary"     validate:"required"`
	Secondary  *GuestSelection `json:"secondary"   validate:"omitempty"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=cancelled completed no_show"`
}

type BookingMemberResponse struct {
	AppointmentID string `json:"appointment_id"`
	ServiceID     string `json:"service_id"`
	ServiceName   string `json:"service_name"`
	StaffID       string `json:"staff_id"`
	StaffName     string `json:"staff_name"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
}

type CreateBookingResponse struct {
	BookingGroupID string                  `json:"booking_group_id,omitempty"`
	Date           string                  `json:"date"`
	RoomID         int64                   `json:"room_id"`
	RoomReason     string                  `json:"room_reason"`
	Members        []BookingMemberResponse `json:"members"`
}

type AppointmentResponse struct {
	ID             string `json:"id"`
	ServiceID      string `json:"service_id"`
	StaffID        string `json:"staff_id"`
	RoomID         int64  `json:"room_id"`
	GuestName      string `json:"guest_name"`
	GuestEmail     string `json:"guest_email"`
	GuestPhone     string `json:"guest_phone"`
	Date           string `json:"date"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	Status         string `json:"status"`
	BookingGroupID string `json:"booking_group_id,omitempty"`
	Notes          string `json:"notes,omitempty"`
	gDto.Metadata
}

func (r *AppointmentResponse) FromModel(model model.Appointment) {
	r.ID = model.ID
	r.ServiceID = model.ServiceID
	r.StaffID = model.StaffID
	r.RoomID = model.RoomID
	r.GuestName = model.GuestName
	r.GuestEmail = model.GuestEmail
	r.GuestPhone = model.GuestPhone
	r.Date = model.BookingDate.Format(constant.BookingDateFmt)
	r.StartTime = model.StartTime
	r.EndTime = model.EndTime
	r.Status = model.Status
	r.BookingGroupID = model.BookingGroupID.String
	r.Notes = model.Notes
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []AppointmentResponse `json:"bookings"`
	TotalPage int                   `json:"total_page"`
	TotalData int                   `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Appointment, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]AppointmentResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type AvailabilityResponse struct {
	ServiceID string   `json:"service_id"`
	Date      string   `json:"date"`
	Slots     []string `json:"slots"`
}
