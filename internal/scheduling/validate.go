package scheduling

import (
	"fmt"
)

// Member is one resolved guest of a validated booking: the staff member who
// will perform the service and the recomputed interval.
type Member struct {
	Staff   Staff
	Service Service
	Start   string
	End     string
}

// ValidationResult is the engine's verdict on a booking request. Errors
// aggregates the human-readable messages of every failed stage; Conflicts
// retains the raw detector findings so callers can tell which resource
// clashed. The engine never persists anything: a valid result only means the
// caller may now write the appointment rows.
type ValidationResult struct {
	Valid      bool       `json:"is_valid"`
	Errors     []string   `json:"errors"`
	Conflicts  []Conflict `json:"conflicts"`
	Members    []Member   `json:"-"`
	Room       Room       `json:"-"`
	RoomReason string     `json:"room_reason,omitempty"`
}

func invalid(messages ...string) ValidationResult {
	return ValidationResult{
		Valid:     false,
		Errors:    messages,
		Conflicts: []Conflict{},
	}
}

// isCouples reports whether the request books two guests.
func (r BookingRequest) isCouples() bool {
	return r.PartySize == 2 || r.Secondary != nil || r.Primary.Service.IsCouples
}

// secondarySelection returns the second guest's selection, defaulting to the
// primary service with the any-staff sentinel when the request left it out.
func (r BookingRequest) secondarySelection(anyStaffID string) Selection {
	if r.Secondary != nil {
		return *r.Secondary
	}

	return Selection{StaffID: anyStaffID, Service: r.Primary.Service}
}

// ValidateBooking runs the full go/no-go pipeline for a booking attempt:
// staff resolution, room assignment, conflict detection against the day's
// appointments, and the business-hours check. Resolution and assignment stop
// the pipeline on their first hard failure; the conflict detector and hours
// check always run to completion so the caller gets the complete finding
// list in one pass.
//
// End times are recomputed from the service durations; whatever the caller
// derived is never trusted.
func (e *Engine) ValidateBooking(req BookingRequest, snap Snapshot) ValidationResult {
	if req.isCouples() {
		return e.validateCouplesBooking(req, snap)
	}

	return e.validateSingleBooking(req, snap)
}

func (e *Engine) validateSingleBooking(req BookingRequest, snap Snapshot) ValidationResult {
	svc := req.Primary.Service

	end, err := AddMinutes(req.Start, svc.Duration)
	if err != nil {
		return invalid(err.Error())
	}

	member, err := e.ResolveStaff(req.Primary.StaffID, svc, req.Date, req.Start, snap)
	if err != nil {
		return invalid(err.Error())
	}

	assignment, err := e.AssignRoom(svc, member, req.Date, req.Start, snap)
	if err != nil {
		return invalid(err.Error())
	}

	result := ValidationResult{
		Conflicts: []Conflict{},
		Members: []Member{{
			Staff:   member,
			Service: svc,
			Start:   req.Start,
			End:     end,
		}},
		Room:       assignment.Room,
		RoomReason: assignment.Reason,
	}

	conflicts, err := e.CheckConflicts(Candidate{
		StaffID: member.ID,
		RoomID:  assignment.Room.ID,
		Date:    req.Date,
		Start:   req.Start,
		End:     end,
	}, snap.Appointments, true)
	if err != nil {
		return invalid(err.Error())
	}

	result.Conflicts = conflicts
	for _, conflict := range conflicts {
		result.Errors = append(result.Errors, conflict.Message)
	}

	e.appendHoursViolation(&result, req.Start, svc.Duration)

	result.Valid = len(result.Errors) == 0

	return result
}

func (e *Engine) validateCouplesBooking(req BookingRequest, snap Snapshot) ValidationResult {
	primary := req.Primary
	secondary := req.secondarySelection(e.cfg.AnyStaffID)

	primaryEnd, err := AddMinutes(req.Start, primary.Service.Duration)
	if err != nil {
		return invalid(err.Error())
	}

	secondaryEnd, err := AddMinutes(req.Start, secondary.Service.Duration)
	if err != nil {
		return invalid(err.Error())
	}

	pair, err := e.ResolveCouplesStaff(primary, secondary, req.Date, req.Start, snap)
	if err != nil {
		return invalid(err.Error())
	}

	assignment, err := e.OptimalCouplesRoom(req.Date, req.Start, primary.Service.Duration, secondary.Service.Duration, snap)
	if err != nil {
		return invalid(err.Error())
	}

	result := ValidationResult{
		Conflicts: []Conflict{},
		Members: []Member{
			{Staff: pair.Primary, Service: primary.Service, Start: req.Start, End: primaryEnd},
			{Staff: pair.Secondary, Service: secondary.Service, Start: req.Start, End: secondaryEnd},
		},
		Room:       assignment.Room,
		RoomReason: assignment.Reason,
	}

	for _, member := range result.Members {
		conflicts, err := e.CheckConflicts(Candidate{
			StaffID: member.Staff.ID,
			RoomID:  assignment.Room.ID,
			Date:    req.Date,
			Start:   member.Start,
			End:     member.End,
		}, snap.Appointments, true)
		if err != nil {
			return invalid(err.Error())
		}

		result.Conflicts = append(result.Conflicts, conflicts...)
		for _, conflict := range conflicts {
			result.Errors = append(result.Errors, conflict.Message)
		}
	}

	e.appendHoursViolation(&result, req.Start, primary.Service.Duration)

	if secondary.Service.Duration != primary.Service.Duration {
		e.appendHoursViolation(&result, req.Start, secondary.Service.Duration)
	}

	result.Valid = len(result.Errors) == 0

	return result
}

func (e *Engine) appendHoursViolation(result *ValidationResult, start string, durationMin int) {
	fits, err := e.CanAccommodate(start, durationMin, true)
	if err != nil {
		result.Errors = append(result.Errors, err.Error())

		return
	}

	if !fits {
		result.Errors = append(result.Errors, fmt.Sprintf(
			"a %d minute service at %s does not fit within business hours (%s-%s, including the %d minute buffer)",
			durationMin, start, e.cfg.OpenTime, e.cfg.CloseTime, e.cfg.BufferMinutes,
		))
	}
}
