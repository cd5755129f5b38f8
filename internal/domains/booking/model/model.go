package model

import (
	"database/sql"
	"time"

	"github.com/Ayy-man/spa-booking-v2-sub002/internal/scheduling"
	"github.com/Ayy-man/spa-booking-v2-sub002/shared/constant"
	"github.com/Ayy-man/spa-booking-v2-sub002/shared/model"
)

const (
	TableName  = "appointments"
	EntityName = "appointment"

	FieldID             = "id"
	FieldServiceID      = "service_id"
	FieldStaffID        = "staff_id"
	FieldRoomID         = "room_id"
	FieldGuestName      = "guest_name"
	FieldGuestEmail     = "guest_email"
	FieldGuestPhone     = "guest_phone"
	FieldBookingDate    = "booking_date"
	FieldStartTime      = "start_time"
	FieldEndTime        = "end_time"
	FieldStatus         = "status"
	FieldBookingGroupID = "booking_group_id"
	FieldNotes          = "notes"
)

// Appointment is one guest's confirmed slot. A couples booking is two rows
// sharing a booking_group_id and a room. Start and end are stored as "HH:MM"
// clock strings, the engine's native format.
type Appointment struct {
	ID             string         `db:"id"`
	ServiceID      string         `db:"service_id"`
	StaffID        string         `db:"staff_id"`
	RoomID         int64          `db:"room_id"`
	GuestName      string         `db:"guest_name"`
	GuestEmail     string         `db:"guest_email"`
	GuestPhone     string         `db:"guest_phone"`
	BookingDate    time.Time      `db:"booking_date"`
	StartTime      string         `db:"start_time"`
	EndTime        string         `db:"end_time"`
	Status         string         `db:"status"`
	BookingGroupID sql.NullString `db:"booking_group_id"`
	Notes          string         `db:"notes"`
	model.Metadata
}

// ToScheduling converts the row into the engine's appointment value.
func (a Appointment) ToScheduling() scheduling.Appointment {
	return scheduling.Appointment{
		ID:             a.ID,
		ServiceID:      a.ServiceID,
		StaffID:        a.StaffID,
		RoomID:         int(a.RoomID),
		Date:           a.BookingDate.Format(constant.BookingDateFmt),
		Start:          a.StartTime,
		End:            a.EndTime,
		Status:         scheduling.AppointmentStatus(a.Status),
		BookingGroupID: a.BookingGroupID.String,
	}
}
