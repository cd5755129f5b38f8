package scheduling_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ayy-man/spa-booking-v2-sub002/internal/scheduling"
)

func TestResolveStaff_Concrete(t *testing.T) {
	tests := []struct {
		name      string
		staffID   string
		svc       scheduling.Service
		date      string
		wantStaff string
		wantErr   error
	}{
		{
			name:    "qualified and scheduled",
			staffID: "staff-amara", svc: svcFacial, date: monday,
			wantStaff: "staff-amara",
		},
		{
			name:    "plural capability spelling still matches",
			staffID: "staff-kehlani", svc: svcMassage, date: monday,
			wantStaff: "staff-kehlani",
		},
		{
			name:    "package covered by facial plus massage",
			staffID: "staff-amara", svc: svcPackage, date: monday,
			wantStaff: "staff-amara",
		},
		{
			name:    "unknown id",
			staffID: "staff-nobody", svc: svcFacial, date: monday,
			wantErr: scheduling.ErrStaffNotFound,
		},
		{
			name:    "category not covered",
			staffID: "staff-rosa", svc: svcMassage, date: monday,
			wantErr: scheduling.ErrCapabilityMismatch,
		},
		{
			name:    "package not covered without massage capability",
			staffID: "staff-rosa", svc: svcPackage, date: monday,
			wantErr: scheduling.ErrCapabilityMismatch,
		},
		{
			name:    "service name excluded",
			staffID: "staff-rosa", svc: svcDermaplaning, date: monday,
			wantErr: scheduling.ErrServiceExcluded,
		},
		{
			name:    "not scheduled that weekday",
			staffID: "staff-amara", svc: svcFacial, date: sunday,
			wantErr: scheduling.ErrOffSchedule,
		},
	}

	engine := testEngine()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			member, err := engine.ResolveStaff(tt.staffID, tt.svc, tt.date, "10:00", testSnapshot())

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantStaff, member.ID)
		})
	}
}

func TestResolveStaff_InactiveTreatedAsMissing(t *testing.T) {
	snap := testSnapshot()
	snap.Staff[0].Active = false

	_, err := testEngine().ResolveStaff("staff-amara", svcFacial, monday, "10:00", snap)
	assert.ErrorIs(t, err, scheduling.ErrStaffNotFound)
}

func TestResolveStaff_Any(t *testing.T) {
	engine := testEngine()

	t.Run("lowest id wins among the qualified", func(t *testing.T) {
		member, err := engine.ResolveStaff("any", svcMassage, monday, "10:00", testSnapshot())

		require.NoError(t, err)
		assert.Equal(t, "staff-amara", member.ID)
	})

	t.Run("busy staff are passed over", func(t *testing.T) {
		snap := testSnapshot()
		snap.Appointments = []scheduling.Appointment{{
			ID:      "appt-1",
			StaffID: "staff-amara",
			RoomID:  1,
			Date:    monday,
			Start:   "09:30",
			End:     "10:30",
			Status:  scheduling.StatusConfirmed,
		}}

		member, err := engine.ResolveStaff("any", svcMassage, monday, "10:00", snap)

		require.NoError(t, err)
		assert.Equal(t, "staff-kehlani", member.ID)
	})

	t.Run("buffer counts against availability", func(t *testing.T) {
		snap := testSnapshot()
		snap.Appointments = []scheduling.Appointment{{
			ID:      "appt-1",
			StaffID: "staff-amara",
			RoomID:  1,
			Date:    monday,
			Start:   "09:00",
			End:     "10:00",
			Status:  scheduling.StatusConfirmed,
		}}

		// 10:00 sits inside amara's trailing buffer; 10:15 does not.
		member, err := engine.ResolveStaff("any", svcMassage, monday, "10:00", snap)
		require.NoError(t, err)
		assert.Equal(t, "staff-kehlani", member.ID)

		member, err = engine.ResolveStaff("any", svcMassage, monday, "10:15", snap)
		require.NoError(t, err)
		assert.Equal(t, "staff-amara", member.ID)
	})

	t.Run("nobody qualified", func(t *testing.T) {
		// Only Rosa does waxing and she is off on Sundays.
		waxing := scheduling.Service{ID: "svc-wax", Name: "Brow Wax", Category: scheduling.CategoryWaxing, Duration: 15}

		_, err := engine.ResolveStaff("any", waxing, sunday, "10:00", testSnapshot())
		assert.ErrorIs(t, err, scheduling.ErrNoStaffAvailable)
	})
}

func TestResolveCouplesStaff(t *testing.T) {
	engine := testEngine()

	t.Run("two any selections resolve to distinct staff", func(t *testing.T) {
		pair, err := engine.ResolveCouplesStaff(
			scheduling.Selection{StaffID: "any", Service: svcMassage},
			scheduling.Selection{StaffID: "any", Service: svcMassage},
			monday, "10:00", testSnapshot(),
		)

		require.NoError(t, err)
		assert.Equal(t, "staff-amara", pair.Primary.ID)
		assert.Equal(t, "staff-kehlani", pair.Secondary.ID)
	})

	t.Run("secondary any pool excludes the resolved primary", func(t *testing.T) {
		pair, err := engine.ResolveCouplesStaff(
			scheduling.Selection{StaffID: "staff-amara", Service: svcMassage},
			scheduling.Selection{StaffID: "any", Service: svcMassage},
			monday, "10:00", testSnapshot(),
		)

		require.NoError(t, err)
		assert.Equal(t, "staff-kehlani", pair.Secondary.ID)
	})

	t.Run("primary any pool excludes the requested secondary", func(t *testing.T) {
		pair, err := engine.ResolveCouplesStaff(
			scheduling.Selection{StaffID: "any", Service: svcMassage},
			scheduling.Selection{StaffID: "staff-amara", Service: svcMassage},
			monday, "10:00", testSnapshot(),
		)

		require.NoError(t, err)
		assert.Equal(t, "staff-kehlani", pair.Primary.ID)
		assert.Equal(t, "staff-amara", pair.Secondary.ID)
	})

	t.Run("same concrete staff on both sides fails", func(t *testing.T) {
		_, err := engine.ResolveCouplesStaff(
			scheduling.Selection{StaffID: "staff-amara", Service: svcMassage},
			scheduling.Selection{StaffID: "staff-amara", Service: svcFacial},
			monday, "10:00", testSnapshot(),
		)

		assert.ErrorIs(t, err, scheduling.ErrDuplicateStaffForCouples)
	})

	t.Run("pool of one cannot serve both guests", func(t *testing.T) {
		waxing := scheduling.Service{ID: "svc-wax", Name: "Brow Wax", Category: scheduling.CategoryWaxing, Duration: 15}

		_, err := engine.ResolveCouplesStaff(
			scheduling.Selection{StaffID: "any", Service: waxing},
			scheduling.Selection{StaffID: "any", Service: waxing},
			monday, "10:00", testSnapshot(),
		)

		require.ErrorIs(t, err, scheduling.ErrNoStaffAvailable)
		assert.ErrorContains(t, err, "secondary guest")
	})

	t.Run("failed side names the guest", func(t *testing.T) {
		_, err := engine.ResolveCouplesStaff(
			scheduling.Selection{StaffID: "staff-rosa", Service: svcMassage},
			scheduling.Selection{StaffID: "any", Service: svcMassage},
			monday, "10:00", testSnapshot(),
		)

		require.ErrorIs(t, err, scheduling.ErrCapabilityMismatch)
		assert.ErrorContains(t, err, "primary guest")
	})
}
