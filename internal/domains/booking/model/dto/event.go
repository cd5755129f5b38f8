package dto

import (
	"github.com/Ayy-man/spa-booking-v2-sub002/internal/domains/booking/model"
	"github.com/Ayy-man/spa-booking-v2-sub002/shared/constant"
	"github.com/Ayy-man/spa-booking-v2-sub002/shared/timezone"
)

// Booking lifecycle event types published to the booking events topic. The
// CRM bridge and other downstream consumers subscribe externally.
const (
	EventBookingCreated   = "booking.created"
	EventBookingCancelled = "booking.cancelled"
	EventBookingCompleted = "booking.completed"
	EventBookingNoShow    = "booking.no_show"
)

type BookingEvent struct {
	Type           string `json:"type"`
	AppointmentID  string `json:"appointment_id"`
	BookingGroupID string `json:"booking_group_id,omitempty"`
	ServiceID      string `json:"service_id"`
	StaffID        string `json:"staff_id"`
	RoomID         int64  `json:"room_id"`
	Date           string `json:"date"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	OccurredAt     string `json:"occurred_at"`
}

func NewBookingEvent(eventType string, appt model.Appointment) BookingEvent {
	return BookingEvent{
		Type:           eventType,
		AppointmentID:  appt.ID,
		BookingGroupID: appt.BookingGroupID.String,
		ServiceID:      appt.ServiceID,
		StaffID:        appt.StaffID,
		RoomID:         appt.RoomID,
		Date:           appt.BookingDate.Format(constant.BookingDateFmt),
		StartTime:      appt.StartTime,
		EndTime:        appt.EndTime,
		OccurredAt:     timezone.Format(timezone.Now(), constant.DateFormat),
	}
}
