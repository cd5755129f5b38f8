package scheduling_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ayy-man/spa-booking-v2-sub002/internal/scheduling"
)

func existingAppointment() scheduling.Appointment {
	return scheduling.Appointment{
		ID:        "appt-1",
		ServiceID: svcFacial.ID,
		StaffID:   "staff-amara",
		RoomID:    1,
		Date:      monday,
		Start:     "10:00",
		End:       "11:00",
		Status:    scheduling.StatusConfirmed,
	}
}

func TestCheckConflicts_Buffered(t *testing.T) {
	// The existing 10:00-11:00 appointment occupies 09:45-11:15 once widened
	// by the 15 minute buffer.
	tests := []struct {
		name       string
		start, end string
		wantKinds  []scheduling.ConflictKind
	}{
		{
			name:  "starts exactly one buffer after",
			start: "11:15", end: "12:15",
			wantKinds: nil,
		},
		{
			name:  "one minute inside the trailing buffer",
			start: "11:14", end: "12:14",
			wantKinds: []scheduling.ConflictKind{scheduling.ConflictStaff, scheduling.ConflictRoom},
		},
		{
			name:  "ends exactly one buffer before",
			start: "08:45", end: "09:45",
			wantKinds: nil,
		},
		{
			name:  "one minute into the leading buffer",
			start: "08:46", end: "09:46",
			wantKinds: []scheduling.ConflictKind{scheduling.ConflictStaff, scheduling.ConflictRoom},
		},
		{
			name:  "direct overlap",
			start: "10:30", end: "11:30",
			wantKinds: []scheduling.ConflictKind{scheduling.ConflictStaff, scheduling.ConflictRoom},
		},
	}

	engine := testEngine()
	existing := []scheduling.Appointment{existingAppointment()}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conflicts, err := engine.CheckConflicts(scheduling.Candidate{
				StaffID: "staff-amara",
				RoomID:  1,
				Date:    monday,
				Start:   tt.start,
				End:     tt.end,
			}, existing, true)

			require.NoError(t, err)
			require.Len(t, conflicts, len(tt.wantKinds))

			for i, kind := range tt.wantKinds {
				assert.Equal(t, kind, conflicts[i].Kind)
				assert.Equal(t, "appt-1", conflicts[i].AppointmentID)
				assert.NotEmpty(t, conflicts[i].Message)
			}
		})
	}
}

func TestCheckConflicts_Unbuffered(t *testing.T) {
	engine := testEngine()
	existing := []scheduling.Appointment{existingAppointment()}

	conflicts, err := engine.CheckConflicts(scheduling.Candidate{
		StaffID: "staff-amara",
		RoomID:  1,
		Date:    monday,
		Start:   "10:30",
		End:     "11:30",
	}, existing, false)
	require.NoError(t, err)
	assert.Len(t, conflicts, 2)

	// Back to back is fine without the buffer; the intervals are half-open.
	conflicts, err = engine.CheckConflicts(scheduling.Candidate{
		StaffID: "staff-amara",
		RoomID:  1,
		Date:    monday,
		Start:   "11:00",
		End:     "12:00",
	}, existing, false)
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestCheckConflicts_Skips(t *testing.T) {
	engine := testEngine()

	overlapping := scheduling.Candidate{
		StaffID: "staff-amara",
		RoomID:  1,
		Date:    monday,
		Start:   "10:00",
		End:     "11:00",
	}

	t.Run("cancelled appointments never conflict", func(t *testing.T) {
		appt := existingAppointment()
		appt.Status = scheduling.StatusCancelled

		conflicts, err := engine.CheckConflicts(overlapping, []scheduling.Appointment{appt}, true)
		require.NoError(t, err)
		assert.Empty(t, conflicts)
	})

	t.Run("other dates are ignored", func(t *testing.T) {
		appt := existingAppointment()
		appt.Date = sunday

		conflicts, err := engine.CheckConflicts(overlapping, []scheduling.Appointment{appt}, true)
		require.NoError(t, err)
		assert.Empty(t, conflicts)
	})

	t.Run("candidate skips its own row on update", func(t *testing.T) {
		candidate := overlapping
		candidate.ID = "appt-1"

		conflicts, err := engine.CheckConflicts(candidate, []scheduling.Appointment{existingAppointment()}, true)
		require.NoError(t, err)
		assert.Empty(t, conflicts)
	})

	t.Run("couples pair shares its room without conflicting", func(t *testing.T) {
		appt := existingAppointment()
		appt.BookingGroupID = "group-7"

		candidate := overlapping
		candidate.StaffID = "staff-kehlani"
		candidate.BookingGroupID = "group-7"

		conflicts, err := engine.CheckConflicts(candidate, []scheduling.Appointment{appt}, true)
		require.NoError(t, err)
		assert.Empty(t, conflicts)
	})

	t.Run("any-staff sentinel disables the staff check", func(t *testing.T) {
		candidate := overlapping
		candidate.StaffID = engine.Config().AnyStaffID
		candidate.RoomID = 2

		conflicts, err := engine.CheckConflicts(candidate, []scheduling.Appointment{existingAppointment()}, true)
		require.NoError(t, err)
		assert.Empty(t, conflicts)
	})

	t.Run("zero room id disables the room check", func(t *testing.T) {
		candidate := overlapping
		candidate.StaffID = "staff-kehlani"
		candidate.RoomID = 0

		conflicts, err := engine.CheckConflicts(candidate, []scheduling.Appointment{existingAppointment()}, true)
		require.NoError(t, err)
		assert.Empty(t, conflicts)
	})
}

func TestCheckConflicts_ReportsAllFindings(t *testing.T) {
	engine := testEngine()

	second := existingAppointment()
	second.ID = "appt-2"
	second.StaffID = "staff-kehlani"
	second.RoomID = 1
	second.Start = "11:30"
	second.End = "12:30"

	// Overlaps appt-1 on staff and room, and appt-2's leading buffer on room.
	conflicts, err := engine.CheckConflicts(scheduling.Candidate{
		StaffID: "staff-amara",
		RoomID:  1,
		Date:    monday,
		Start:   "10:30",
		End:     "11:20",
	}, []scheduling.Appointment{existingAppointment(), second}, true)

	require.NoError(t, err)
	require.Len(t, conflicts, 3)
	assert.Equal(t, scheduling.ConflictStaff, conflicts[0].Kind)
	assert.Equal(t, scheduling.ConflictRoom, conflicts[1].Kind)
	assert.Equal(t, "appt-2", conflicts[2].AppointmentID)
	assert.Equal(t, scheduling.ConflictRoom, conflicts[2].Kind)
}

func TestCheckConflicts_MalformedCandidate(t *testing.T) {
	engine := testEngine()

	_, err := engine.CheckConflicts(scheduling.Candidate{
		StaffID: "staff-amara",
		Date:    monday,
		Start:   "25:00",
		End:     "26:00",
	}, nil, true)

	assert.ErrorIs(t, err, scheduling.ErrMalformedTime)
}
