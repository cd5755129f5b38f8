package scheduling_test

import (
	"github.com/Ayy-man/spa-booking-v2-sub002/internal/scheduling"
)

// 2026-09-07 is a Monday, 2026-09-06 a Sunday.
const (
	monday = "2026-09-07"
	sunday = "2026-09-06"
)

func intPtr(v int) *int { return &v }

var (
	svcFacial = scheduling.Service{
		ID:       "svc-facial",
		Name:     "Signature Facial",
		Category: scheduling.CategoryFacial,
		Price:    9500,
		Duration: 60,
	}

	svcMassage = scheduling.Service{
		ID:       "svc-massage",
		Name:     "Deep Tissue Massage",
		Category: scheduling.CategoryMassage,
		Price:    12000,
		Duration: 90,
	}

	svcScrub = scheduling.Service{
		ID:                    "svc-scrub",
		Name:                  "Salt Body Scrub",
		Category:              scheduling.CategoryBodyScrub,
		Price:                 6500,
		Duration:              30,
		RequiresDedicatedRoom: true,
	}

	svcDermaplaning = scheduling.Service{
		ID:       "svc-dermaplaning",
		Name:     "Dermaplaning Facial",
		Category: scheduling.CategoryFacial,
		Price:    11000,
		Duration: 45,
	}

	svcCouples = scheduling.Service{
		ID:        "svc-couples-massage",
		Name:      "Couples Massage",
		Category:  scheduling.CategoryMassage,
		Price:     21000,
		Duration:  60,
		IsCouples: true,
	}

	svcPackage = scheduling.Service{
		ID:       "svc-package",
		Name:     "Relax and Glow Package",
		Category: scheduling.CategoryPackage,
		Price:    19000,
		Duration: 120,
	}
)

// staffAmara has the lowest id of the massage-capable pool, so the
// deterministic any-staff tie-break lands on her whenever she qualifies.
func testSnapshot() scheduling.Snapshot {
	return scheduling.Snapshot{
		Staff: []scheduling.Staff{
			{
				ID:            "staff-amara",
				Name:          "Amara",
				Capabilities:  []string{"facial", "massage"},
				WorkDays:      []int{1, 2, 3, 4, 5, 6},
				DefaultRoomID: intPtr(1),
				Active:        true,
			},
			{
				ID:            "staff-kehlani",
				Name:          "Kehlani",
				Capabilities:  []string{"massages", "body_treatments", "body_scrubs"},
				WorkDays:      []int{0, 1, 2, 3, 4, 5, 6},
				DefaultRoomID: intPtr(2),
				Active:        true,
			},
			{
				ID:           "staff-rosa",
				Name:         "Rosa",
				Capabilities: []string{"facial", "waxing"},
				Exclusions:   []string{"dermaplaning"},
				WorkDays:     []int{1, 3, 5},
				Active:       true,
			},
		},
		Rooms: []scheduling.Room{
			{ID: 1, Name: "Room 1", Capacity: 1, Capabilities: []string{"facial", "massage", "waxing"}, Active: true},
			{ID: 2, Name: "Room 2", Capacity: 2, Capabilities: []string{"facial", "massage", "body_treatment"}, Active: true},
			{ID: 3, Name: "Room 3", Capacity: 2, Capabilities: []string{"facial", "massage", "body_treatment", "body_scrub"}, Active: true},
		},
	}
}

func testEngine() *scheduling.Engine {
	return scheduling.NewEngine(scheduling.DefaultConfig())
}
