package domain

// SchedulingMode selects the scheduling philosophy of an entity.
type SchedulingMode string

const (
	// ModeDynamic is the staff-appointment model: availability is
	// bounded by shifts and a per-staff concurrency limit.
	ModeDynamic SchedulingMode = "dynamic"

	// ModeStatic is the class/slot model: a recurring template
	// produces dated slots with fixed capacity.
	ModeStatic SchedulingMode = "static"
)

// Staff represents a bookable staff member.
type Staff struct {
	ID                    string         `json:"id"`
	BranchID              string         `json:"branchId"`
	Name                  string         `json:"name"`
	MaxConcurrentBookings int            `json:"maxConcurrentBookings"`
	SchedulingMode        SchedulingMode `json:"schedulingMode"`
}

// ConcurrencyLimit returns the effective concurrent-booking cap.
func (s *Staff) ConcurrencyLimit() int {
	if s.MaxConcurrentBookings < 1 {
		return DefaultMaxConcurrentBookings
	}
	return s.MaxConcurrentBookings
}

// IsDynamic reports whether the staff member hosts ad-hoc appointments.
func (s *Staff) IsDynamic() bool {
	return s.SchedulingMode != ModeStatic
}

// Room represents a physical resource with the same scheduling shape
// as Staff; its mode determines whether it hosts ad-hoc appointments
// (dynamic) or fixed-capacity recurring slots (static).
type Room struct {
	ID                    string         `json:"id"`
	BranchID              string         `json:"branchId"`
	Name                  string         `json:"name"`
	MaxConcurrentBookings int            `json:"maxConcurrentBookings"`
	SchedulingMode        SchedulingMode `json:"schedulingMode"`
}

// ConcurrencyLimit returns the effective concurrent-booking cap.
func (r *Room) ConcurrencyLimit() int {
	if r.MaxConcurrentBookings < 1 {
		return DefaultMaxConcurrentBookings
	}
	return r.MaxConcurrentBookings
}
