// Package scheduling implements the spa's conflict detection and resource
// assignment engine: deciding whether a proposed appointment may occupy a
// given staff member, room and time slot.
//
// The engine is pure. Every operation is a deterministic function of its
// inputs (the candidate request, a snapshot of existing appointments and
// reference data, and the engine configuration); nothing here performs I/O,
// blocks or mutates shared state. Serializing read-validate-write against
// concurrent booking attempts is the caller's responsibility.
package scheduling

// Service categories offered by the spa.
const (
	CategoryFacial        = "facial"
	CategoryMassage       = "massage"
	CategoryBodyTreatment = "body_treatment"
	CategoryBodyScrub     = "body_scrub"
	CategoryWaxing        = "waxing"
	CategoryPackage       = "package"
	CategoryMembership    = "membership"
)

// Service is immutable reference data describing a bookable treatment.
type Service struct {
	ID       string
	Name     string
	Category string
	// Price in the smallest currency unit.
	Price    int
	Duration int // minutes
	// IsCouples marks services booked for two guests side by side.
	IsCouples bool
	// RequiresDedicatedRoom restricts the service to rooms equipped for it,
	// e.g. body scrubs needing the scrub shower.
	RequiresDedicatedRoom bool
}

// Staff is a member of the roster.
type Staff struct {
	ID   string
	Name string
	// Capabilities holds the service categories the staff member performs.
	Capabilities []string
	// Exclusions are service-name patterns the member does not perform even
	// when the category matches.
	Exclusions []string
	// WorkDays holds weekday numbers 0 (Sunday) through 6 (Saturday).
	WorkDays      []int
	DefaultRoomID *int
	Active        bool
}

// Room is a treatment room.
type Room struct {
	ID       int
	Name     string
	Capacity int
	// Capabilities holds the service categories the room supports.
	Capabilities []string
	Active       bool
}

// AppointmentStatus is the lifecycle state of a persisted appointment.
type AppointmentStatus string

const (
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
	StatusNoShow    AppointmentStatus = "no_show"
)

// Appointment is the persisted unit the conflict detector compares against.
// Date is a plain calendar date ("2006-01-02"); Start and End are clock
// times ("15:04"). End always equals Start plus the service duration.
type Appointment struct {
	ID        string
	ServiceID string
	StaffID   string
	RoomID    int
	Date      string
	Start     string
	End       string
	Status    AppointmentStatus
	// BookingGroupID links the two member appointments of a couples booking.
	BookingGroupID string
}

// Candidate is a proposed occupation of a staff member and a room, checked
// against existing appointments before anything is persisted. ID is set only
// for update-in-place checks so the appointment does not conflict with
// itself.
type Candidate struct {
	ID             string
	StaffID        string
	RoomID         int
	Date           string
	Start          string
	End            string
	BookingGroupID string
}

// ConflictKind tags which resource a conflict is about.
type ConflictKind string

const (
	ConflictStaff ConflictKind = "staff"
	ConflictRoom  ConflictKind = "room"
)

// Conflict is a finding of the conflict detector. Conflicts are ordinary
// data, not errors: a candidate may collect several of them and the caller
// presents the full list.
type Conflict struct {
	Kind          ConflictKind `json:"kind"`
	AppointmentID string       `json:"appointment_id"`
	Message       string       `json:"message"`
}

// Selection pairs a requested service with a staff choice, which is either a
// concrete staff id or the configured any-staff sentinel.
type Selection struct {
	StaffID string
	Service Service
}

// BookingRequest is a transient booking attempt, not persisted until
// validated. PartySize 2 (or a couples service, or a non-nil Secondary)
// makes it a couples request; a couples request with no Secondary repeats
// the primary service with the any-staff sentinel.
type BookingRequest struct {
	Date      string
	Start     string
	PartySize int
	Primary   Selection
	Secondary *Selection
}

// Snapshot is the consistent read of reference data and the day's
// appointments the caller hands to the engine. Given the same snapshot the
// engine always produces the same decision.
type Snapshot struct {
	Staff        []Staff
	Rooms        []Room
	Appointments []Appointment
}

// Config carries the engine's policy knobs.
type Config struct {
	BufferMinutes          int
	SlotGranularityMinutes int
	OpenTime               string
	CloseTime              string
	// CouplesRoomPreference lists couples-capable room ids most preferred
	// first.
	CouplesRoomPreference  []int
	CouplesRoomMinCapacity int
	// AnyStaffID is the sentinel staff id meaning "any available staff". It
	// only ever appears in requests; the resolver replaces it with a
	// concrete id before anything is persisted.
	AnyStaffID string
}

// DefaultConfig returns the spa's standard booking policy.
func DefaultConfig() Config {
	return Config{
		BufferMinutes:          15,
		SlotGranularityMinutes: 15,
		OpenTime:               "09:00",
		CloseTime:              "19:00",
		CouplesRoomPreference:  []int{3, 2},
		CouplesRoomMinCapacity: 2,
		AnyStaffID:             "any",
	}
}

// Engine evaluates booking candidates against a snapshot.
type Engine struct {
	cfg Config
}

// NewEngine returns an engine with the given policy.
func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Config returns the engine's policy.
func (e *Engine) Config() Config {
	return e.cfg
}
