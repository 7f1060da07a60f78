package domain

// Default values applied by constructors. Defaults are filled once at
// construction time so read sites never carry fallback chains.
const (
	DefaultPartySize             = 1
	DefaultMaxConcurrentBookings = 1
	DefaultGenerationHorizonDays = 90
)

// Business validation constants
const (
	MinPartySize    = 1
	MaxPartySize    = 100
	MinSlotCapacity = 1
	MaxSlotCapacity = 500
	MaxNotesLength  = 500
)

// DateFormat is the wire format for calendar dates (YYYY-MM-DD).
const DateFormat = "2006-01-02"

// InactiveStatuses lists event statuses that do not occupy capacity.
// Used when counting concurrency and slot occupancy.
var InactiveStatuses = []EventStatus{
	StatusCancelled,
	StatusNoShow,
}

// ActiveStatuses lists event statuses that occupy capacity.
var ActiveStatuses = []EventStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}
