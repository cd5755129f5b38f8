package validator_test

import (
	"strings"
	"testing"

	"github.com/Ayy-man/spa-booking-v2-sub002/shared/validator"
)

// bookingPayload mirrors the shape of a booking request body.
type bookingPayload struct {
	Date      string `validate:"required,bookdate" json:"date"`
	StartTime string `validate:"required,clock"    json:"start_time"`
	GuestName string `validate:"required,max=100"  json:"guest_name"`
	PartySize int    `validate:"omitempty,min=1,max=2" json:"party_size"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        bookingPayload
		expectError bool
	}{
		{
			name: "valid payload",
			data: bookingPayload{
				Date:      "2026-09-07",
				StartTime: "10:00",
				GuestName: "Leilani",
				PartySize: 2,
			},
			expectError: false,
		},
		{
			name: "missing required field",
			data: bookingPayload{
				Date:      "2026-09-07",
				StartTime: "10:00",
			},
			expectError: true,
		},
		{
			name: "malformed date",
			data: bookingPayload{
				Date:      "07-09-2026",
				StartTime: "10:00",
				GuestName: "Leilani",
			},
			expectError: true,
		},
		{
			name: "malformed clock time",
			data: bookingPayload{
				Date:      "2026-09-07",
				StartTime: "10:75",
				GuestName: "Leilani",
			},
			expectError: true,
		},
		{
			name: "party size out of range",
			data: bookingPayload{
				Date:      "2026-09-07",
				StartTime: "10:00",
				GuestName: "Leilani",
				PartySize: 3,
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if tt.expectError && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectError bool
	}{
		{
			name:        "valid body",
			body:        `{"date":"2026-09-07","start_time":"10:00","guest_name":"Leilani"}`,
			expectError: false,
		},
		{
			name:        "malformed json",
			body:        `{"date":`,
			expectError: true,
		},
		{
			name:        "valid json failing validation",
			body:        `{"date":"2026-09-07","start_time":"late","guest_name":"Leilani"}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var payload bookingPayload

			err := validator.Validate(strings.NewReader(tt.body), &payload)

			if tt.expectError && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("09:15", "clock"); err != nil {
		t.Errorf("expected no error for a valid clock value, got %v", err)
	}

	if err := validator.ValidateVar("9am", "clock"); err == nil {
		t.Error("expected error for a malformed clock value, got nil")
	}

	if err := validator.ValidateVar("2026-02-30", "bookdate"); err == nil {
		t.Error("expected error for an impossible calendar date, got nil")
	}
}
