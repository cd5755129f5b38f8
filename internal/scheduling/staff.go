package scheduling

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"
)

var (
	ErrStaffNotFound            = errors.New("staff not found")
	ErrCapabilityMismatch       = errors.New("staff cannot perform this service")
	ErrServiceExcluded          = errors.New("staff does not offer this service")
	ErrOffSchedule              = errors.New("staff does not work on this day")
	ErrNoStaffAvailable         = errors.New("no staff available for this slot")
	ErrDuplicateStaffForCouples = errors.New("couples bookings require two different staff members")
)

// categoryAliases maps the plural category spellings found in older roster
// records to the canonical singular forms.
var categoryAliases = map[string]string{
	"facials":         CategoryFacial,
	"massages":        CategoryMassage,
	"body_treatments": CategoryBodyTreatment,
	"body_scrubs":     CategoryBodyScrub,
	"packages":        CategoryPackage,
	"memberships":     CategoryMembership,
}

func normalizeCategory(category string) string {
	normalized := strings.ToLower(strings.TrimSpace(category))
	if canonical, ok := categoryAliases[normalized]; ok {
		return canonical
	}

	return normalized
}

// canPerform reports whether the staff member's capabilities cover the
// service category. A "package" capability covers package services; without
// it a package still qualifies when the member covers both component
// categories, since spa packages combine a facial with a massage.
func (s Staff) canPerform(svc Service) bool {
	category := normalizeCategory(svc.Category)

	caps := make([]string, 0, len(s.Capabilities))
	for _, capability := range s.Capabilities {
		caps = append(caps, normalizeCategory(capability))
	}

	if slices.Contains(caps, category) {
		return true
	}

	if category == CategoryPackage {
		return slices.Contains(caps, CategoryFacial) && slices.Contains(caps, CategoryMassage)
	}

	return false
}

// excludes reports whether one of the staff member's exclusion patterns
// matches the service name. Patterns match case-insensitively as substrings.
func (s Staff) excludes(svc Service) bool {
	name := strings.ToLower(svc.Name)

	for _, pattern := range s.Exclusions {
		pattern = strings.ToLower(strings.TrimSpace(pattern))
		if pattern != "" && strings.Contains(name, pattern) {
			return true
		}
	}

	return false
}

// worksOn reports whether the weekday (0=Sunday .. 6=Saturday) is one of the
// staff member's working days.
func (s Staff) worksOn(weekday int) bool {
	return slices.Contains(s.WorkDays, weekday)
}

func weekdayOf(date string) (int, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTime, date)
	}

	return int(day.Weekday()), nil
}

// ResolveStaff turns a staff selection (a concrete staff id or the any-staff
// sentinel) into one concrete, capability- and schedule-matched staff member
// for the proposed service and slot.
//
// For the sentinel, qualified staff already in conflict with an existing
// appointment over the proposed interval are excluded, and the remaining
// candidates are picked deterministically: the lowest staff id wins. The
// rule is arbitrary but stable, so repeated validation of the same snapshot
// always lands on the same member.
func (e *Engine) ResolveStaff(selection string, svc Service, date, start string, snap Snapshot) (Staff, error) {
	if selection == e.cfg.AnyStaffID {
		return e.resolveAnyStaff(svc, date, start, snap, "")
	}

	return e.resolveConcreteStaff(selection, svc, date, snap)
}

func (e *Engine) resolveConcreteStaff(staffID string, svc Service, date string, snap Snapshot) (Staff, error) {
	weekday, err := weekdayOf(date)
	if err != nil {
		return Staff{}, err
	}

	idx := slices.IndexFunc(snap.Staff, func(s Staff) bool { return s.ID == staffID })
	if idx == -1 || !snap.Staff[idx].Active {
		return Staff{}, fmt.Errorf("%w: %s", ErrStaffNotFound, staffID)
	}

	member := snap.Staff[idx]

	if !member.canPerform(svc) {
		return Staff{}, fmt.Errorf("%w: %s cannot perform %s", ErrCapabilityMismatch, member.Name, svc.Name)
	}

	if member.excludes(svc) {
		return Staff{}, fmt.Errorf("%w: %s does not offer %s", ErrServiceExcluded, member.Name, svc.Name)
	}

	if !member.worksOn(weekday) {
		return Staff{}, fmt.Errorf("%w: %s is not scheduled on %s", ErrOffSchedule, member.Name, date)
	}

	return member, nil
}

// resolveAnyStaff picks from the pool of qualified staff, excluding excludeID
// when set (the already-resolved other half of a couples booking).
func (e *Engine) resolveAnyStaff(svc Service, date, start string, snap Snapshot, excludeID string) (Staff, error) {
	weekday, err := weekdayOf(date)
	if err != nil {
		return Staff{}, err
	}

	end, err := AddMinutes(start, svc.Duration)
	if err != nil {
		return Staff{}, err
	}

	candidates := make([]Staff, 0, len(snap.Staff))

	for _, member := range snap.Staff {
		if !member.Active || member.ID == excludeID {
			continue
		}

		if !member.canPerform(svc) || member.excludes(svc) || !member.worksOn(weekday) {
			continue
		}

		conflicts, err := e.CheckConflicts(Candidate{
			StaffID: member.ID,
			Date:    date,
			Start:   start,
			End:     end,
		}, snap.Appointments, true)
		if err != nil {
			return Staff{}, err
		}

		if len(conflicts) == 0 {
			candidates = append(candidates, member)
		}
	}

	if len(candidates) == 0 {
		return Staff{}, fmt.Errorf("%w: %s at %s on %s", ErrNoStaffAvailable, svc.Name, start, date)
	}

	sort.Slice(candidates, func(i, j int) bool { return candidates[i].ID < candidates[j].ID })

	return candidates[0], nil
}

// CouplesAssignment is the pair of distinct staff members resolved for a
// couples booking.
type CouplesAssignment struct {
	Primary   Staff
	Secondary Staff
}

// ResolveCouplesStaff resolves both sides of a couples booking sharing one
// date and start time. The sides resolve independently, primary first; when
// one side is the any-staff sentinel its pool excludes the other side's
// member, whether already resolved or concretely requested. Two identical
// concrete choices fail rather than double-booking one member.
func (e *Engine) ResolveCouplesStaff(primary, secondary Selection, date, start string, snap Snapshot) (CouplesAssignment, error) {
	var assignment CouplesAssignment

	var first Staff
	var err error
	if primary.StaffID == e.cfg.AnyStaffID && secondary.StaffID != e.cfg.AnyStaffID {
		first, err = e.resolveAnyStaff(primary.Service, date, start, snap, secondary.StaffID)
	} else {
		first, err = e.ResolveStaff(primary.StaffID, primary.Service, date, start, snap)
	}

	if err != nil {
		return assignment, fmt.Errorf("primary guest: %w", err)
	}

	var second Staff
	if secondary.StaffID == e.cfg.AnyStaffID {
		second, err = e.resolveAnyStaff(secondary.Service, date, start, snap, first.ID)
	} else {
		second, err = e.resolveConcreteStaff(secondary.StaffID, secondary.Service, date, snap)
	}

	if err != nil {
		return assignment, fmt.Errorf("secondary guest: %w", err)
	}

	if first.ID == second.ID {
		return assignment, ErrDuplicateStaffForCouples
	}

	assignment.Primary = first
	assignment.Secondary = second

	return assignment, nil
}
