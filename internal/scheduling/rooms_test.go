package scheduling_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ayy-man/spa-booking-v2-sub002/internal/scheduling"
)

func staffByID(t *testing.T, snap scheduling.Snapshot, id string) scheduling.Staff {
	t.Helper()

	for _, member := range snap.Staff {
		if member.ID == id {
			return member
		}
	}

	t.Fatalf("no staff %s in snapshot", id)

	return scheduling.Staff{}
}

func TestAssignRoom(t *testing.T) {
	engine := testEngine()

	t.Run("staff default room wins when free", func(t *testing.T) {
		snap := testSnapshot()

		assignment, err := engine.AssignRoom(svcFacial, staffByID(t, snap, "staff-amara"), monday, "10:00", snap)

		require.NoError(t, err)
		assert.Equal(t, 1, assignment.Room.ID)
		assert.Equal(t, scheduling.ReasonStaffDefaultRoom, assignment.Reason)
	})

	t.Run("occupied default room falls through to next eligible", func(t *testing.T) {
		snap := testSnapshot()
		snap.Appointments = []scheduling.Appointment{{
			ID:      "appt-1",
			StaffID: "staff-kehlani",
			RoomID:  1,
			Date:    monday,
			Start:   "10:00",
			End:     "11:00",
			Status:  scheduling.StatusConfirmed,
		}}

		assignment, err := engine.AssignRoom(svcFacial, staffByID(t, snap, "staff-amara"), monday, "10:30", snap)

		require.NoError(t, err)
		assert.Equal(t, 2, assignment.Room.ID)
		assert.Equal(t, scheduling.ReasonFirstAvailableRoom, assignment.Reason)
	})

	t.Run("no default room means lowest eligible id", func(t *testing.T) {
		snap := testSnapshot()

		assignment, err := engine.AssignRoom(svcFacial, staffByID(t, snap, "staff-rosa"), monday, "10:00", snap)

		require.NoError(t, err)
		assert.Equal(t, 1, assignment.Room.ID)
		assert.Equal(t, scheduling.ReasonFirstAvailableRoom, assignment.Reason)
	})

	t.Run("dedicated equipment overrides the default room", func(t *testing.T) {
		snap := testSnapshot()

		// Kehlani defaults to room 2, but only room 3 has the scrub shower.
		assignment, err := engine.AssignRoom(svcScrub, staffByID(t, snap, "staff-kehlani"), monday, "10:00", snap)

		require.NoError(t, err)
		assert.Equal(t, 3, assignment.Room.ID)
		assert.Equal(t, scheduling.ReasonDedicatedRoom, assignment.Reason)
	})

	t.Run("staff clashes elsewhere do not block the room", func(t *testing.T) {
		snap := testSnapshot()
		snap.Appointments = []scheduling.Appointment{{
			ID:      "appt-1",
			StaffID: "staff-amara",
			RoomID:  2,
			Date:    monday,
			Start:   "10:00",
			End:     "11:00",
			Status:  scheduling.StatusConfirmed,
		}}

		// The assignor only answers the room question; the double-booked
		// staff member is the conflict detector's finding.
		assignment, err := engine.AssignRoom(svcFacial, staffByID(t, snap, "staff-amara"), monday, "10:00", snap)

		require.NoError(t, err)
		assert.Equal(t, 1, assignment.Room.ID)
	})

	t.Run("every eligible room occupied", func(t *testing.T) {
		snap := testSnapshot()
		snap.Appointments = []scheduling.Appointment{
			{ID: "a1", StaffID: "staff-kehlani", RoomID: 3, Date: monday, Start: "10:00", End: "10:30", Status: scheduling.StatusConfirmed},
		}

		_, err := engine.AssignRoom(svcScrub, staffByID(t, snap, "staff-kehlani"), monday, "10:15", snap)

		assert.ErrorIs(t, err, scheduling.ErrNoRoomAvailable)
	})
}

func TestOptimalCouplesRoom(t *testing.T) {
	engine := testEngine()

	t.Run("preferred room when free", func(t *testing.T) {
		assignment, err := engine.OptimalCouplesRoom(monday, "10:00", 60, 60, testSnapshot())

		require.NoError(t, err)
		assert.Equal(t, 3, assignment.Room.ID)
		assert.Equal(t, scheduling.ReasonPreferredCouplesRoom, assignment.Reason)
	})

	t.Run("falls back when the preferred room is busy", func(t *testing.T) {
		snap := testSnapshot()
		snap.Appointments = []scheduling.Appointment{{
			ID: "appt-1", StaffID: "staff-kehlani", RoomID: 3,
			Date: monday, Start: "10:00", End: "11:00",
			Status: scheduling.StatusConfirmed,
		}}

		assignment, err := engine.OptimalCouplesRoom(monday, "10:30", 60, 60, snap)

		require.NoError(t, err)
		assert.Equal(t, 2, assignment.Room.ID)
		assert.Equal(t, scheduling.ReasonFallbackRoom, assignment.Reason)
	})

	t.Run("inactive preferred room is skipped", func(t *testing.T) {
		snap := testSnapshot()
		snap.Rooms[2].Active = false

		assignment, err := engine.OptimalCouplesRoom(monday, "10:00", 60, 60, snap)

		require.NoError(t, err)
		assert.Equal(t, 2, assignment.Room.ID)
		assert.Equal(t, scheduling.ReasonFallbackRoom, assignment.Reason)
	})

	t.Run("rooms below couples capacity are skipped", func(t *testing.T) {
		snap := testSnapshot()
		snap.Rooms[2].Capacity = 1

		assignment, err := engine.OptimalCouplesRoom(monday, "10:00", 60, 60, snap)

		require.NoError(t, err)
		assert.Equal(t, 2, assignment.Room.ID)
	})

	t.Run("longer member interval is checked too", func(t *testing.T) {
		snap := testSnapshot()
		snap.Appointments = []scheduling.Appointment{{
			ID: "appt-1", StaffID: "staff-kehlani", RoomID: 3,
			Date: monday, Start: "11:30", End: "12:30",
			Status: scheduling.StatusConfirmed,
		}}

		// At 10:00, a 60 minute service clears room 3's booking but the 90
		// minute one runs into its leading buffer.
		assignment, err := engine.OptimalCouplesRoom(monday, "10:00", 60, 90, snap)

		require.NoError(t, err)
		assert.Equal(t, 2, assignment.Room.ID)
		assert.Equal(t, scheduling.ReasonFallbackRoom, assignment.Reason)
	})

	t.Run("no couples room available", func(t *testing.T) {
		snap := testSnapshot()
		snap.Appointments = []scheduling.Appointment{
			{ID: "a1", StaffID: "staff-amara", RoomID: 3, Date: monday, Start: "10:00", End: "11:00", Status: scheduling.StatusConfirmed},
			{ID: "a2", StaffID: "staff-kehlani", RoomID: 2, Date: monday, Start: "10:00", End: "11:00", Status: scheduling.StatusConfirmed},
		}

		_, err := engine.OptimalCouplesRoom(monday, "10:30", 60, 60, snap)

		assert.ErrorIs(t, err, scheduling.ErrNoCouplesRoomAvailable)
	})
}
