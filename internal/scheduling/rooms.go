package scheduling

import (
	"errors"
	"fmt"
	"slices"
	"sort"
)

var (
	ErrNoRoomAvailable        = errors.New("no room available for this slot")
	ErrNoCouplesRoomAvailable = errors.New("no couples rooms available")
)

// Assignment reasons, returned for observability so booking logs show why a
// particular room was chosen.
const (
	ReasonStaffDefaultRoom     = "staff default room"
	ReasonFirstAvailableRoom   = "first available room"
	ReasonDedicatedRoom        = "dedicated equipment room"
	ReasonPreferredCouplesRoom = "preferred couples room"
	ReasonFallbackRoom         = "fallback room"
)

// RoomAssignment is a chosen room plus the reason it won.
type RoomAssignment struct {
	Room   Room
	Reason string
}

func (r Room) supports(category string) bool {
	category = normalizeCategory(category)

	return slices.ContainsFunc(r.Capabilities, func(capability string) bool {
		return normalizeCategory(capability) == category
	})
}

// AssignRoom chooses a room for a single booking: the staff member's default
// room when set and eligible, then the remaining eligible rooms in ascending
// id order, first one free of room conflicts wins. Services requiring
// dedicated equipment ignore the default-room preference and only consider
// rooms carrying the service's capability tag.
func (e *Engine) AssignRoom(svc Service, staff Staff, date, start string, snap Snapshot) (RoomAssignment, error) {
	end, err := AddMinutes(start, svc.Duration)
	if err != nil {
		return RoomAssignment{}, err
	}

	eligible := make([]Room, 0, len(snap.Rooms))
	for _, room := range snap.Rooms {
		if room.Active && room.supports(svc.Category) {
			eligible = append(eligible, room)
		}
	}

	sort.Slice(eligible, func(i, j int) bool { return eligible[i].ID < eligible[j].ID })

	if !svc.RequiresDedicatedRoom && staff.DefaultRoomID != nil {
		idx := slices.IndexFunc(eligible, func(r Room) bool { return r.ID == *staff.DefaultRoomID })
		if idx > 0 {
			preferred := eligible[idx]
			eligible = append(eligible[:idx], eligible[idx+1:]...)
			eligible = append([]Room{preferred}, eligible...)
		}
	}

	for i, room := range eligible {
		conflicts, err := e.CheckConflicts(Candidate{
			StaffID: e.cfg.AnyStaffID, // staff clashes are not the room's concern
			RoomID:  room.ID,
			Date:    date,
			Start:   start,
			End:     end,
		}, snap.Appointments, true)
		if err != nil {
			return RoomAssignment{}, err
		}

		if len(conflicts) > 0 {
			continue
		}

		reason := ReasonFirstAvailableRoom

		switch {
		case svc.RequiresDedicatedRoom:
			reason = ReasonDedicatedRoom
		case i == 0 && staff.DefaultRoomID != nil && room.ID == *staff.DefaultRoomID:
			reason = ReasonStaffDefaultRoom
		}

		return RoomAssignment{Room: room, Reason: reason}, nil
	}

	return RoomAssignment{}, fmt.Errorf("%w: %s at %s on %s", ErrNoRoomAvailable, svc.Name, start, date)
}

// OptimalCouplesRoom chooses the room for a couples booking. Candidates are
// the configured preference list (most preferred first), restricted to
// active rooms with couples capacity; the first one free of conflicts
// against both member intervals wins. The two members share a start time but
// keep independently computed end times, so both are checked.
func (e *Engine) OptimalCouplesRoom(date, start string, primaryDuration, secondaryDuration int, snap Snapshot) (RoomAssignment, error) {
	primaryEnd, err := AddMinutes(start, primaryDuration)
	if err != nil {
		return RoomAssignment{}, err
	}

	secondaryEnd, err := AddMinutes(start, secondaryDuration)
	if err != nil {
		return RoomAssignment{}, err
	}

	for rank, roomID := range e.cfg.CouplesRoomPreference {
		idx := slices.IndexFunc(snap.Rooms, func(r Room) bool { return r.ID == roomID })
		if idx == -1 {
			continue
		}

		room := snap.Rooms[idx]
		if !room.Active || room.Capacity < e.cfg.CouplesRoomMinCapacity {
			continue
		}

		occupied := false

		for _, end := range []string{primaryEnd, secondaryEnd} {
			conflicts, err := e.CheckConflicts(Candidate{
				StaffID: e.cfg.AnyStaffID,
				RoomID:  room.ID,
				Date:    date,
				Start:   start,
				End:     end,
			}, snap.Appointments, true)
			if err != nil {
				return RoomAssignment{}, err
			}

			if len(conflicts) > 0 {
				occupied = true

				break
			}
		}

		if occupied {
			continue
		}

		reason := ReasonPreferredCouplesRoom
		if rank > 0 {
			reason = ReasonFallbackRoom
		}

		return RoomAssignment{Room: room, Reason: reason}, nil
	}

	return RoomAssignment{}, fmt.Errorf("%w: %s on %s", ErrNoCouplesRoomAvailable, start, date)
}
