package shared_test

import (
	"testing"

	"github.com/Ayy-man/spa-booking-v2-sub002/shared"
	"github.com/Ayy-man/spa-booking-v2-sub002/shared/constant"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "exact division", total: 20, limit: 10, expected: 2},
		{name: "with remainder", total: 21, limit: 10, expected: 3},
		{name: "zero total", total: 0, limit: 10, expected: 1},
		{name: "zero limit", total: 20, limit: 0, expected: 1},
		{name: "total below limit", total: 3, limit: 10, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.CalculateTotalPage(tt.total, tt.limit); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestTransformFields(t *testing.T) {
	type update struct {
		Name     string `db:"name"`
		Capacity int    `db:"capacity"`
		Internal string
	}

	fields := shared.TransformFields(update{Name: "Room 1", Internal: "skipped"}, "admin-1")

	if fields["name"] != "Room 1" {
		t.Errorf("expected name to be 'Room 1', got %v", fields["name"])
	}
	if _, ok := fields["capacity"]; ok {
		t.Error("expected zero-valued capacity to be skipped")
	}
	if _, ok := fields["Internal"]; ok {
		t.Error("expected untagged field to be skipped")
	}
	if fields[constant.FieldModifiedBy] != "admin-1" {
		t.Errorf("expected modified_by to be 'admin-1', got %v", fields[constant.FieldModifiedBy])
	}
	if _, ok := fields[constant.FieldModifiedAt]; !ok {
		t.Error("expected modified_at to be stamped")
	}
}

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		parts    []string
		expected string
	}{
		{name: "single part", parts: []string{"booking"}, expected: "booking"},
		{name: "multiple parts", parts: []string{"booking", "availability", "svc-1", "2026-09-07"}, expected: "booking:availability:svc-1:2026-09-07"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.BuildCacheKey(tt.parts...); got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	type filter struct {
		Status string `json:"status"`
	}

	first := shared.BuildCacheKeyWithQuery("booking:gets", filter{Status: "confirmed"})
	second := shared.BuildCacheKeyWithQuery("booking:gets", filter{Status: "cancelled"})

	if first == second {
		t.Error("expected distinct filters to produce distinct keys")
	}

	again := shared.BuildCacheKeyWithQuery("booking:gets", filter{Status: "confirmed"})
	if first != again {
		t.Error("expected the same filter to produce a stable key")
	}
}
