package scheduling_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ayy-man/spa-booking-v2-sub002/internal/scheduling"
)

func TestCanAccommodate(t *testing.T) {
	// Default operating window is 09:00-19:00 with a 15 minute buffer.
	tests := []struct {
		name          string
		start         string
		duration      int
		includeBuffer bool
		want          bool
	}{
		{name: "fits comfortably", start: "10:00", duration: 60, includeBuffer: true, want: true},
		{name: "starts at opening", start: "09:00", duration: 60, includeBuffer: true, want: true},
		{name: "buffer spills past closing", start: "18:00", duration: 60, includeBuffer: true, want: false},
		{name: "same slot without buffer", start: "18:00", duration: 60, includeBuffer: false, want: true},
		{name: "service plus buffer ends at closing", start: "17:45", duration: 60, includeBuffer: true, want: true},
		{name: "service alone spills past closing", start: "18:30", duration: 60, includeBuffer: false, want: false},
		{name: "before opening", start: "08:45", duration: 30, includeBuffer: false, want: false},
		{name: "full day treatment too long", start: "09:00", duration: 600, includeBuffer: true, want: false},
	}

	engine := testEngine()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.CanAccommodate(tt.start, tt.duration, tt.includeBuffer)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanAccommodate_MalformedStart(t *testing.T) {
	_, err := testEngine().CanAccommodate("9am", 60, true)
	assert.ErrorIs(t, err, scheduling.ErrMalformedTime)
}
