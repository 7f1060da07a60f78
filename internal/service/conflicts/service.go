package conflicts

import (
	"fmt"
	"time"

	"github.com/KUL-Services/bookly-scheduling/internal/domain"
	"github.com/KUL-Services/bookly-scheduling/pkg/types"
)

// Service is the conflict validator: given a proposed booking it
// decides whether it may coexist with everything already on the
// calendar. Checks short-circuit on first failure, cheapest and most
// specific first. Pure reads; committing is the store's job.
type Service struct {
	blocks   BlockingSource
	events   EventSource
	slots    SlotSource
	staff    StaffSource
	resolver AvailabilityResolver
	recorder Recorder
	logger   Logger
}

// NewService creates the validator from its read-only collaborators.
// recorder may be nil.
func NewService(
	blocks BlockingSource,
	events EventSource,
	slots SlotSource,
	staff StaffSource,
	resolver AvailabilityResolver,
	recorder Recorder,
	logger Logger,
) *Service {
	return &Service{
		blocks:   blocks,
		events:   events,
		slots:    slots,
		staff:    staff,
		resolver: resolver,
		recorder: recorder,
		logger:   logger,
	}
}

// Validate runs the full check chain for a proposal. excludeEventID,
// when non-empty, removes the event being edited from its own conflict
// counts so updates do not collide with themselves.
func (s *Service) Validate(p Proposal, excludeEventID string) Result {
	result := s.validate(p, excludeEventID)
	if !result.OK {
		s.logger.Info("Validate: rejected check=%s reason=%q staff=%s slot=%v",
			result.Check, result.Reason, p.StaffID, p.SlotKey)
		if s.recorder != nil {
			s.recorder.RecordRejection(result.Check)
		}
	}
	return result
}

func (s *Service) validate(p Proposal, excludeEventID string) Result {
	// 1. Time sanity.
	if !p.End.After(p.Start) {
		return Reject(CheckTimeSanity, "end time must be after start time")
	}

	// 2. Staff-scoped checks: time off and reservations always; the
	// working-hours gate only for direct appointments, since a slot
	// booking is bounded by the slot's own time.
	if p.StaffID != "" {
		if r := s.checkStaff(p, p.SlotKey == nil); !r.OK {
			return r
		}
	}

	// 3. Static capacity when the target is slot-based.
	if p.SlotKey != nil {
		return s.checkSlotCapacity(p, excludeEventID)
	}

	// 4. Dynamic concurrency for staff appointments.
	if p.StaffID != "" {
		if r := s.checkStaffConcurrency(p, excludeEventID); !r.OK {
			return r
		}
	}

	// 5. Reservations and dynamic concurrency for a directly-assigned
	// room.
	if p.RoomID != "" {
		if r := s.checkRoom(p, excludeEventID); !r.OK {
			return r
		}
	}

	return Accept()
}

func (s *Service) checkStaff(p Proposal, gateWorkingHours bool) Result {
	if _, ok := s.staff.StaffByID(p.StaffID); !ok {
		return Reject(CheckStaffUnknown, fmt.Sprintf("unknown staff member %q", p.StaffID))
	}

	// Working-hours gate: the proposal must fall inside an effective
	// shift, clear of breaks. Resolver failures read as "not working".
	if gateWorkingHours && s.resolver != nil {
		effective, err := s.resolver.GetEffectiveShifts(p.StaffID, p.Start)
		if err != nil || !effective.CoversRange(proposalWindow(p)) {
			return Reject(CheckWorkingHours, "staff member is not working at the requested time")
		}
	}

	proposed := p.Range()

	// Approved time off is a hard conflict.
	for _, off := range s.blocks.TimeOffForStaff(p.StaffID) {
		if off.Approved && off.OverlapsRange(proposed) {
			return Reject(CheckTimeOff,
				fmt.Sprintf("staff member has time off (%s) during the requested time", off.Reason))
		}
	}

	// So is any reservation listing the staff member.
	for _, res := range s.blocks.ReservationsForStaff(p.StaffID) {
		if res.Range().Overlaps(proposed) {
			return Reject(CheckReservation,
				fmt.Sprintf("staff member is reserved (%s) during the requested time", res.Reason))
		}
	}

	return Accept()
}

func (s *Service) checkSlotCapacity(p Proposal, excludeEventID string) Result {
	slot, ok := s.slots.SlotByKey(*p.SlotKey)
	if !ok {
		return Reject(CheckSlotUnknown, "slot occurrence does not exist")
	}
	if slot.IsCancelled {
		return Reject(CheckSlotUnknown, "slot occurrence is cancelled")
	}

	occupied := s.occupiedCapacity(*p.SlotKey, excludeEventID)
	party := p.EffectivePartySize()
	if occupied+party > slot.Capacity {
		remaining := slot.Capacity - occupied
		if remaining < 0 {
			remaining = 0
		}
		return Reject(CheckSlotCapacity,
			fmt.Sprintf("slot is full: %d of %d spots taken, only %d remaining",
				occupied, slot.Capacity, remaining))
	}

	return Accept()
}

func (s *Service) checkStaffConcurrency(p Proposal, excludeEventID string) Result {
	staff, ok := s.staff.StaffByID(p.StaffID)
	if !ok {
		return Reject(CheckStaffUnknown, fmt.Sprintf("unknown staff member %q", p.StaffID))
	}

	count := countOverlapping(s.events.EventsForStaff(p.StaffID), p.Range(), excludeEventID)
	limit := staff.ConcurrencyLimit()
	if count >= limit {
		return Reject(CheckConcurrency,
			fmt.Sprintf("staff member already has %d of %d concurrent bookings", count, limit))
	}

	return Accept()
}

func (s *Service) checkRoom(p Proposal, excludeEventID string) Result {
	room, ok := s.staff.RoomByID(p.RoomID)
	if !ok {
		// Rooms are optional on dynamic bookings; an unknown id is an
		// input problem caught upstream, not a conflict.
		return Accept()
	}

	// Any reservation listing the room is a hard conflict.
	for _, res := range s.blocks.ReservationsForRoom(p.RoomID) {
		if res.Range().Overlaps(p.Range()) {
			return Reject(CheckReservation,
				fmt.Sprintf("room is reserved (%s) during the requested time", res.Reason))
		}
	}

	count := countOverlapping(s.events.EventsForRoom(p.RoomID), p.Range(), excludeEventID)
	limit := room.ConcurrencyLimit()
	if count >= limit {
		return Reject(CheckConcurrency,
			fmt.Sprintf("room already has %d of %d concurrent bookings", count, limit))
	}

	return Accept()
}

// IsSlotAvailable reports remaining static capacity for a slot key.
func (s *Service) IsSlotAvailable(key domain.SlotKey) SlotAvailability {
	slot, ok := s.slots.SlotByKey(key)
	if !ok || slot.IsCancelled {
		return SlotAvailability{}
	}

	occupied := s.occupiedCapacity(key, "")
	remaining := slot.Capacity - occupied
	if remaining < 0 {
		remaining = 0
	}

	return SlotAvailability{
		Available:         remaining > 0,
		RemainingCapacity: remaining,
		TotalCapacity:     slot.Capacity,
	}
}

// IsStaffAvailableForBooking reports dynamic concurrency headroom for
// a staff member over [start, end).
func (s *Service) IsStaffAvailableForBooking(staffID string, start, end time.Time, excludeEventID string) StaffAvailability {
	staff, ok := s.staff.StaffByID(staffID)
	if !ok {
		return StaffAvailability{}
	}

	count := countOverlapping(s.events.EventsForStaff(staffID),
		domain.TimeRange{Start: start, End: end}, excludeEventID)
	limit := staff.ConcurrencyLimit()

	return StaffAvailability{
		Available:    count < limit,
		CurrentCount: count,
		MaxAllowed:   limit,
	}
}

// occupiedCapacity recomputes the occupied spots of a slot: the sum of
// party sizes over all active events referencing the key, excluding
// the event being edited.
func (s *Service) occupiedCapacity(key domain.SlotKey, excludeEventID string) int {
	occupied := 0
	for _, e := range s.events.EventsForSlot(key) {
		if !e.IsActive() || e.ID == excludeEventID {
			continue
		}
		occupied += e.Details.PartySize
	}
	return occupied
}

// countOverlapping counts active events whose range strictly overlaps
// r, excluding excludeEventID. Back-to-back events do not count.
func countOverlapping(events []*domain.CalendarEvent, r domain.TimeRange, excludeEventID string) int {
	count := 0
	for _, e := range events {
		if !e.IsActive() || e.ID == excludeEventID {
			continue
		}
		if e.Range().Overlaps(r) {
			count++
		}
	}
	return count
}

func proposalWindow(p Proposal) domain.TimeWindow {
	return domain.TimeWindow{
		Start: types.NewTimeString(p.Start),
		End:   types.NewTimeString(p.End),
	}
}
