package calendar

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/KUL-Services/bookly-scheduling/internal/domain"
	"github.com/KUL-Services/bookly-scheduling/internal/service/conflicts"
	"github.com/KUL-Services/bookly-scheduling/internal/service/slots"
)

// Store is the calendar aggregate: the single mutation surface over
// events, directory data, templates and generated slots. Every booking
// mutation passes through the conflict validator before commit; a
// rejected mutation changes nothing and records its reason.
//
// Two locks: mutate serializes mutations across the validate-then-commit
// window, mu guards the data itself. The validator reads back through
// the store's provider methods, which take mu for reading only, so
// validation inside a mutation cannot deadlock.
type Store struct {
	logger    Logger
	persistor StatePersistor
	generator SlotGenerator
	clock     TimeProvider
	recorder  MetricsRecorder

	mutate sync.Mutex
	mu     sync.RWMutex

	validator ConflictValidator

	events       map[string]*domain.CalendarEvent
	branches     map[string]*domain.Branch
	staff        map[string]*domain.Staff
	rooms        map[string]*domain.Room
	schedules    map[string]*domain.EntitySchedule
	timeOff      map[string]*domain.TimeOff
	reservations map[string]*domain.TimeReservation
	templates    map[string]*domain.ScheduleTemplate
	slots        map[domain.SlotKey]*domain.StaticServiceSlot

	starred         map[string]struct{}
	selectedEventID string
	prefs           Preferences

	lastActionError string
}

// NewStore creates an empty calendar store. Call Load to hydrate it and
// SetValidator to attach the conflict validator before accepting
// mutations (the validator needs the store's providers, hence the
// two-phase wiring).
func NewStore(persistor StatePersistor, generator SlotGenerator, clock TimeProvider, recorder MetricsRecorder, logger Logger) *Store {
	return &Store{
		logger:       logger,
		persistor:    persistor,
		generator:    generator,
		clock:        clock,
		recorder:     recorder,
		events:       make(map[string]*domain.CalendarEvent),
		branches:     make(map[string]*domain.Branch),
		staff:        make(map[string]*domain.Staff),
		rooms:        make(map[string]*domain.Room),
		schedules:    make(map[string]*domain.EntitySchedule),
		timeOff:      make(map[string]*domain.TimeOff),
		reservations: make(map[string]*domain.TimeReservation),
		templates:    make(map[string]*domain.ScheduleTemplate),
		slots:        make(map[domain.SlotKey]*domain.StaticServiceSlot),
		starred:      make(map[string]struct{}),
		prefs:        DefaultPreferences(),
	}
}

// SetValidator attaches the conflict validator.
func (s *Store) SetValidator(v ConflictValidator) {
	s.mutate.Lock()
	defer s.mutate.Unlock()
	s.validator = v
}

// LastActionError returns the reason of the most recent rejected
// mutation, empty after a successful one.
func (s *Store) LastActionError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastActionError
}

// ClearLastActionError resets the rejection reason.
func (s *Store) ClearLastActionError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActionError = ""
}

// CreateEvent validates the event against the current calendar and
// commits it. The event must come from domain.NewCalendarEvent, so id
// and defaults are already set.
func (s *Store) CreateEvent(e *domain.CalendarEvent) error {
	s.mutate.Lock()
	defer s.mutate.Unlock()

	if s.validator == nil {
		return ErrNotReady
	}

	res := s.validator.Validate(proposalFor(e), "")
	if !res.OK {
		return s.reject("create_event", res)
	}

	now := s.clock.Now()
	stored := e.Clone()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	s.mu.Lock()
	s.events[stored.ID] = stored
	s.lastActionError = ""
	s.mu.Unlock()

	s.persistSection(sectionEvents, s.snapshotEvents)
	s.recordMutation("create_event", "success")
	s.logger.Info("CreateEvent: id=%s branch=%s start=%s", stored.ID, stored.BranchID, stored.Start.Format(time.RFC3339))
	return nil
}

// UpdateEvent replaces an existing event. Conflict validation runs only
// when a scheduling-relevant field changed (time, staff, room, slot,
// party size, or reactivation); pure detail edits commit directly.
// During validation the event's own occupancy is excluded, so moving an
// event within its current window never conflicts with itself.
func (s *Store) UpdateEvent(e *domain.CalendarEvent) error {
	s.mutate.Lock()
	defer s.mutate.Unlock()

	if s.validator == nil {
		return ErrNotReady
	}

	s.mu.RLock()
	prior, ok := s.events[e.ID]
	s.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrEventNotFound, e.ID)
	}

	if needsRevalidation(prior, e) {
		res := s.validator.Validate(proposalFor(e), e.ID)
		if !res.OK {
			return s.reject("update_event", res)
		}
	}

	stored := e.Clone()
	stored.CreatedAt = prior.CreatedAt
	stored.UpdatedAt = s.clock.Now()

	s.mu.Lock()
	s.events[stored.ID] = stored
	s.lastActionError = ""
	s.mu.Unlock()

	s.persistSection(sectionEvents, s.snapshotEvents)
	s.recordMutation("update_event", "success")
	return nil
}

// DeleteEvent removes an event unconditionally, clearing its starred
// flag and the selection when they reference it.
func (s *Store) DeleteEvent(eventID string) error {
	s.mutate.Lock()
	defer s.mutate.Unlock()

	s.mu.Lock()
	if _, ok := s.events[eventID]; !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrEventNotFound, eventID)
	}
	delete(s.events, eventID)
	_, wasStarred := s.starred[eventID]
	delete(s.starred, eventID)
	if s.selectedEventID == eventID {
		s.selectedEventID = ""
	}
	s.lastActionError = ""
	s.mu.Unlock()

	s.persistSection(sectionEvents, s.snapshotEvents)
	if wasStarred {
		s.persistSection(sectionStarred, s.snapshotStarred)
	}
	s.recordMutation("delete_event", "success")
	return nil
}

// StarEvent marks an event as starred.
func (s *Store) StarEvent(eventID string) error {
	s.mu.Lock()
	if _, ok := s.events[eventID]; !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrEventNotFound, eventID)
	}
	s.starred[eventID] = struct{}{}
	s.mu.Unlock()

	s.persistSection(sectionStarred, s.snapshotStarred)
	return nil
}

// UnstarEvent clears the starred flag; unstarring an unstarred event is
// a no-op.
func (s *Store) UnstarEvent(eventID string) error {
	s.mu.Lock()
	delete(s.starred, eventID)
	s.mu.Unlock()

	s.persistSection(sectionStarred, s.snapshotStarred)
	return nil
}

// SelectEvent sets the UI selection. Selection is runtime state and is
// not persisted.
func (s *Store) SelectEvent(eventID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.events[eventID]; !ok {
		return fmt.Errorf("%w: %s", ErrEventNotFound, eventID)
	}
	s.selectedEventID = eventID
	return nil
}

// ClearSelection drops the UI selection.
func (s *Store) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedEventID = ""
}

// SetViewMode stores the durable calendar view mode.
func (s *Store) SetViewMode(mode string) {
	s.mu.Lock()
	s.prefs.ViewMode = mode
	s.mu.Unlock()
	s.persistSection(sectionPrefs, s.snapshotPrefs)
}

// SetSchedulingMode stores the calendar-wide scheduling mode.
func (s *Store) SetSchedulingMode(mode domain.SchedulingMode) {
	s.mu.Lock()
	s.prefs.SchedulingMode = mode
	s.mu.Unlock()
	s.persistSection(sectionPrefs, s.snapshotPrefs)
}

// SetFilters stores the durable event filters.
func (s *Store) SetFilters(f EventFilters) {
	s.mu.Lock()
	s.prefs.Filters = f
	s.mu.Unlock()
	s.persistSection(sectionPrefs, s.snapshotPrefs)
}

// CreateTimeOff records a staff unavailability window.
func (s *Store) CreateTimeOff(t *domain.TimeOff) error {
	s.mutate.Lock()
	defer s.mutate.Unlock()

	if err := t.Range.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	s.mu.Lock()
	if _, ok := s.staff[t.StaffID]; !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: staff %s", ErrEntityNotFound, t.StaffID)
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	copied := *t
	s.timeOff[copied.ID] = &copied
	s.lastActionError = ""
	s.mu.Unlock()

	s.persistSection(sectionDirectory, s.snapshotDirectory)
	s.recordMutation("create_time_off", "success")
	return nil
}

// DeleteTimeOff removes a time-off record.
func (s *Store) DeleteTimeOff(id string) error {
	s.mutate.Lock()
	defer s.mutate.Unlock()

	s.mu.Lock()
	if _, ok := s.timeOff[id]; !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrTimeOffNotFound, id)
	}
	delete(s.timeOff, id)
	s.mu.Unlock()

	s.persistSection(sectionDirectory, s.snapshotDirectory)
	s.recordMutation("delete_time_off", "success")
	return nil
}

// CreateReservation records an ad-hoc block of staff and rooms. Two
// reservations sharing any entity must not overlap in time.
func (s *Store) CreateReservation(r *domain.TimeReservation) error {
	s.mutate.Lock()
	defer s.mutate.Unlock()

	if err := r.Range().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	s.mu.Lock()
	for _, existing := range s.reservations {
		if existing.SharesEntityWith(r) && existing.Range().Overlaps(r.Range()) {
			s.lastActionError = fmt.Sprintf("overlaps reservation %s (%s)", existing.ID, existing.Reason)
			s.mu.Unlock()
			s.recordMutation("create_reservation", "rejected")
			return fmt.Errorf("%w: %s", ErrReservationOverlap, existing.ID)
		}
	}
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	copied := *r
	s.reservations[copied.ID] = &copied
	s.lastActionError = ""
	s.mu.Unlock()

	s.persistSection(sectionDirectory, s.snapshotDirectory)
	s.recordMutation("create_reservation", "success")
	return nil
}

// DeleteReservation removes a reservation.
func (s *Store) DeleteReservation(id string) error {
	s.mutate.Lock()
	defer s.mutate.Unlock()

	s.mu.Lock()
	if _, ok := s.reservations[id]; !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrReservationNotFound, id)
	}
	delete(s.reservations, id)
	s.mu.Unlock()

	s.persistSection(sectionDirectory, s.snapshotDirectory)
	s.recordMutation("delete_reservation", "success")
	return nil
}

// SetWeeklyShifts replaces the recurring shift list of one weekday for
// a staff member or room. The list is checked for internal consistency
// before anything is stored.
func (s *Store) SetWeeklyShifts(entityID string, day time.Weekday, shifts []domain.Shift) error {
	s.mutate.Lock()
	defer s.mutate.Unlock()

	if err := domain.ValidateShiftList(shifts); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	s.mu.Lock()
	schedule, err := s.ensureScheduleLocked(entityID)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	if schedule.Weekly == nil {
		schedule.Weekly = make(map[time.Weekday][]domain.Shift)
	}
	schedule.Weekly[day] = append([]domain.Shift(nil), shifts...)
	s.mu.Unlock()

	s.persistSection(sectionDirectory, s.snapshotDirectory)
	s.recordMutation("set_weekly_shifts", "success")
	return nil
}

// SetShiftOverride replaces the shift list for one exact date. An empty
// list is an explicit day off; the override wins over the weekly
// pattern during resolution.
func (s *Store) SetShiftOverride(entityID string, date time.Time, shifts []domain.Shift) error {
	s.mutate.Lock()
	defer s.mutate.Unlock()

	if err := domain.ValidateShiftList(shifts); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	s.mu.Lock()
	schedule, err := s.ensureScheduleLocked(entityID)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	if schedule.Overrides == nil {
		schedule.Overrides = make(map[string][]domain.Shift)
	}
	schedule.Overrides[date.Format(domain.DateFormat)] = append([]domain.Shift(nil), shifts...)
	s.mu.Unlock()

	s.persistSection(sectionDirectory, s.snapshotDirectory)
	s.recordMutation("set_shift_override", "success")
	return nil
}

// AddSpecialDay attaches a branch-wide special-day rule.
func (s *Store) AddSpecialDay(branchID string, rule domain.SpecialDayRule) error {
	s.mutate.Lock()
	defer s.mutate.Unlock()

	if rule.Type == domain.SpecialDayCustom {
		if err := domain.ValidateShiftList(rule.Shifts); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}
	if rule.StartDate == "" || rule.EndDate == "" || rule.EndDate < rule.StartDate {
		return fmt.Errorf("%w: special day range %s..%s", ErrInvalidInput, rule.StartDate, rule.EndDate)
	}

	s.mu.Lock()
	branch, ok := s.branches[branchID]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrBranchNotFound, branchID)
	}
	if rule.ID == "" {
		rule.ID = uuid.NewString()
	}
	branch.SpecialDays = append(branch.SpecialDays, rule)
	s.mu.Unlock()

	s.persistSection(sectionDirectory, s.snapshotDirectory)
	s.recordMutation("add_special_day", "success")
	return nil
}

// SaveTemplate validates and stores a schedule template. An active
// template immediately materializes its slots over the generation
// horizon.
func (s *Store) SaveTemplate(tpl *domain.ScheduleTemplate) error {
	s.mutate.Lock()
	defer s.mutate.Unlock()

	if err := tpl.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if tpl.ID == "" {
		tpl.ID = uuid.NewString()
	}

	s.mu.Lock()
	copied := *tpl
	s.templates[copied.ID] = &copied
	s.mu.Unlock()
	s.persistSection(sectionTemplates, s.snapshotTemplates)

	if tpl.IsActive {
		if _, err := s.generateLocked(tpl); err != nil {
			return err
		}
	}
	s.recordMutation("save_template", "success")
	return nil
}

// ToggleTemplateActive flips a template's active flag. Activation
// materializes slots over the generation horizon; deactivation removes
// every slot the template produced, overrides included.
func (s *Store) ToggleTemplateActive(templateID string, active bool) error {
	s.mutate.Lock()
	defer s.mutate.Unlock()

	s.mu.Lock()
	tpl, ok := s.templates[templateID]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrTemplateNotFound, templateID)
	}
	tpl.IsActive = active
	if !active {
		s.dropTemplateSlotsLocked(templateID)
	}
	s.mu.Unlock()

	s.persistSection(sectionTemplates, s.snapshotTemplates)
	if active {
		if _, err := s.generateLocked(tpl); err != nil {
			return err
		}
	} else {
		s.persistSection(sectionSlots, s.snapshotSlots)
	}
	s.recordMutation("toggle_template", "success")
	return nil
}

// DeleteTemplate removes a template and every slot generated from it.
func (s *Store) DeleteTemplate(templateID string) error {
	s.mutate.Lock()
	defer s.mutate.Unlock()

	s.mu.Lock()
	if _, ok := s.templates[templateID]; !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrTemplateNotFound, templateID)
	}
	delete(s.templates, templateID)
	s.dropTemplateSlotsLocked(templateID)
	s.mu.Unlock()

	s.persistSection(sectionTemplates, s.snapshotTemplates)
	s.persistSection(sectionSlots, s.snapshotSlots)
	s.recordMutation("delete_template", "success")
	return nil
}

// GenerateSlots materializes slots for an explicit date range,
// extending past generations incrementally. Returns how many new slots
// were created.
func (s *Store) GenerateSlots(templateID string, from, to time.Time) (int, error) {
	s.mutate.Lock()
	defer s.mutate.Unlock()

	s.mu.RLock()
	tpl, ok := s.templates[templateID]
	s.mu.RUnlock()
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrTemplateNotFound, templateID)
	}
	if !tpl.IsActive {
		return 0, fmt.Errorf("%w: %s", ErrTemplateInactive, templateID)
	}

	created, err := s.generator.Generate(tpl, from, to, s)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	s.commitSlots(created)
	s.recordMutation("generate_slots", "success")
	return len(created), nil
}

// OverrideSlot customizes one dated occurrence of a template pattern.
// The override is recorded as an upsert, so it exists even before bulk
// generation reached the date and survives later regeneration.
func (s *Store) OverrideSlot(templateID string, date time.Time, patternID string, updates slots.SlotUpdates) (*domain.StaticServiceSlot, error) {
	s.mutate.Lock()
	defer s.mutate.Unlock()

	s.mu.RLock()
	tpl, ok := s.templates[templateID]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, templateID)
	}

	slot, err := s.generator.Override(tpl, date, patternID, updates, s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	s.commitSlots([]*domain.StaticServiceSlot{slot})
	s.recordMutation("override_slot", "success")
	return slot, nil
}

// CancelSlotOccurrence cancels one dated occurrence. The slot stays
// addressable but stops accepting bookings and is excluded from
// availability.
func (s *Store) CancelSlotOccurrence(templateID string, date time.Time, patternID string) (*domain.StaticServiceSlot, error) {
	s.mutate.Lock()
	defer s.mutate.Unlock()

	s.mu.RLock()
	tpl, ok := s.templates[templateID]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, templateID)
	}

	slot, err := s.generator.Cancel(tpl, date, patternID, s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	s.commitSlots([]*domain.StaticServiceSlot{slot})
	s.recordMutation("cancel_slot", "success")
	return slot, nil
}

// generateLocked runs horizon generation for an active template. Caller
// must hold mutate.
func (s *Store) generateLocked(tpl *domain.ScheduleTemplate) (int, error) {
	from, to := tpl.GenerationHorizon(s.clock.Now())
	created, err := s.generator.Generate(tpl, from, to, s)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	s.commitSlots(created)
	return len(created), nil
}

// commitSlots upserts generated slots and persists the slot section.
func (s *Store) commitSlots(created []*domain.StaticServiceSlot) {
	s.mu.Lock()
	for _, slot := range created {
		s.slots[slot.Key] = slot
	}
	s.mu.Unlock()

	s.persistSection(sectionSlots, s.snapshotSlots)
	if s.recorder != nil && len(created) > 0 {
		s.recorder.RecordSlotsGenerated(len(created))
	}
}

// dropTemplateSlotsLocked removes every slot of a template. Caller must
// hold mu for writing.
func (s *Store) dropTemplateSlotsLocked(templateID string) {
	for key := range s.slots {
		if key.TemplateID == templateID {
			delete(s.slots, key)
		}
	}
}

// ensureScheduleLocked returns the entity's schedule, creating an empty
// one when the entity is a known staff member or room. Caller must hold
// mu for writing.
func (s *Store) ensureScheduleLocked(entityID string) (*domain.EntitySchedule, error) {
	if schedule, ok := s.schedules[entityID]; ok {
		return schedule, nil
	}
	branchID := ""
	if st, ok := s.staff[entityID]; ok {
		branchID = st.BranchID
	} else if room, ok := s.rooms[entityID]; ok {
		branchID = room.BranchID
	} else {
		return nil, fmt.Errorf("%w: %s", ErrEntityNotFound, entityID)
	}
	schedule := &domain.EntitySchedule{EntityID: entityID, BranchID: branchID}
	s.schedules[entityID] = schedule
	return schedule, nil
}

// reject records a validator rejection: reason into lastActionError,
// metrics, and the wrapped error for the caller. Nothing is committed.
func (s *Store) reject(action string, res conflicts.Result) error {
	s.mu.Lock()
	s.lastActionError = res.Reason
	s.mu.Unlock()

	s.recordMutation(action, "rejected")
	s.logger.Warn("%s rejected: check=%s reason=%s", action, res.Check, res.Reason)
	return fmt.Errorf("%w: %s", ErrValidationFailed, res.Reason)
}

func (s *Store) recordMutation(action, result string) {
	if s.recorder != nil {
		s.recorder.RecordMutation(action, result)
	}
}

func proposalFor(e *domain.CalendarEvent) conflicts.Proposal {
	return conflicts.Proposal{
		StaffID:   e.Details.StaffID,
		RoomID:    e.Details.RoomID,
		SlotKey:   e.Details.SlotKey,
		Start:     e.Start,
		End:       e.End,
		PartySize: e.Details.PartySize,
	}
}

// needsRevalidation reports whether an update touches a field that can
// introduce a conflict.
func needsRevalidation(prior, next *domain.CalendarEvent) bool {
	if !prior.Start.Equal(next.Start) || !prior.End.Equal(next.End) {
		return true
	}
	if prior.Details.StaffID != next.Details.StaffID || prior.Details.RoomID != next.Details.RoomID {
		return true
	}
	if !slotKeysEqual(prior.Details.SlotKey, next.Details.SlotKey) {
		return true
	}
	if prior.Details.PartySize != next.Details.PartySize {
		return true
	}
	// Reactivating a cancelled or no-show event re-occupies capacity.
	if !prior.IsActive() && next.IsActive() {
		return true
	}
	return false
}

func slotKeysEqual(a, b *domain.SlotKey) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
