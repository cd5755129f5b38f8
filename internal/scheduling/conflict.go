package scheduling

import (
	"fmt"
)

// CheckConflicts compares a candidate against the existing appointments and
// returns every staff and room collision found. When bufferEnabled is true
// each existing appointment is widened by the configured buffer on both
// sides before comparison; the candidate interval itself is never widened.
// Applied to every candidate in turn this asymmetric widening enforces a
// full buffer gap between any two appointments regardless of booking order.
//
// Cancelled appointments, appointments on other dates, the candidate's own
// row (matching ID, for update-in-place checks) and members of the
// candidate's own booking group (a couples pair sharing its room) are
// skipped. A candidate still carrying the any-staff sentinel is not checked
// for staff conflicts; sentinel ids never reach persisted rows.
func (e *Engine) CheckConflicts(candidate Candidate, existing []Appointment, bufferEnabled bool) ([]Conflict, error) {
	candStart, err := ToMinutes(candidate.Start)
	if err != nil {
		return nil, fmt.Errorf("candidate start: %w", err)
	}

	candEnd, err := ToMinutes(candidate.End)
	if err != nil {
		return nil, fmt.Errorf("candidate end: %w", err)
	}

	checkStaff := candidate.StaffID != "" && candidate.StaffID != e.cfg.AnyStaffID

	conflicts := []Conflict{}

	for _, appt := range existing {
		if appt.Status == StatusCancelled {
			continue
		}

		if candidate.ID != "" && appt.ID == candidate.ID {
			continue
		}

		if appt.Date != candidate.Date {
			continue
		}

		if candidate.BookingGroupID != "" && appt.BookingGroupID == candidate.BookingGroupID {
			continue
		}

		apptStart, err := ToMinutes(appt.Start)
		if err != nil {
			return nil, fmt.Errorf("appointment %s start: %w", appt.ID, err)
		}

		apptEnd, err := ToMinutes(appt.End)
		if err != nil {
			return nil, fmt.Errorf("appointment %s end: %w", appt.ID, err)
		}

		if bufferEnabled {
			apptStart -= e.cfg.BufferMinutes
			apptEnd += e.cfg.BufferMinutes
		}

		if !Overlaps(candStart, candEnd, apptStart, apptEnd) {
			continue
		}

		// A single appointment can clash on both resources; both findings
		// are reported.
		if checkStaff && appt.StaffID == candidate.StaffID {
			conflicts = append(conflicts, Conflict{
				Kind:          ConflictStaff,
				AppointmentID: appt.ID,
				Message:       fmt.Sprintf("staff is already booked %s-%s on %s", appt.Start, appt.End, appt.Date),
			})
		}

		if candidate.RoomID != 0 && appt.RoomID == candidate.RoomID {
			conflicts = append(conflicts, Conflict{
				Kind:          ConflictRoom,
				AppointmentID: appt.ID,
				Message:       fmt.Sprintf("room %d is already booked %s-%s on %s", appt.RoomID, appt.Start, appt.End, appt.Date),
			})
		}
	}

	return conflicts, nil
}
