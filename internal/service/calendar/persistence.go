package calendar

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/KUL-Services/bookly-scheduling/internal/domain"
)

const snapshotTimeout = 5 * time.Second

// Load hydrates the store from the persistor, one named section at a
// time. A section that is missing or fails to decode falls back to the
// bundled default dataset, so a fresh install and a corrupted snapshot
// both produce a working calendar.
func (s *Store) Load(ctx context.Context) error {
	var dir directorySnapshot
	if err := s.persistor.Load(ctx, sectionDirectory, &dir); err != nil {
		s.logger.Warn("Load: directory snapshot unavailable, seeding defaults: %v", err)
		dir = DefaultDirectory()
	}

	var tpls templatesSnapshot
	if err := s.persistor.Load(ctx, sectionTemplates, &tpls); err != nil {
		s.logger.Warn("Load: templates snapshot unavailable, seeding defaults: %v", err)
		tpls = templatesSnapshot{Templates: DefaultTemplates(s.clock.Now())}
	}

	var slotSnap slotsSnapshot
	if err := s.persistor.Load(ctx, sectionSlots, &slotSnap); err != nil {
		s.logger.Warn("Load: slots snapshot unavailable, starting empty: %v", err)
		slotSnap = slotsSnapshot{}
	}

	var evs eventsSnapshot
	if err := s.persistor.Load(ctx, sectionEvents, &evs); err != nil {
		s.logger.Warn("Load: events snapshot unavailable, starting empty: %v", err)
		evs = eventsSnapshot{}
	}

	var prefs Preferences
	if err := s.persistor.Load(ctx, sectionPrefs, &prefs); err != nil {
		s.logger.Warn("Load: preferences snapshot unavailable, using defaults: %v", err)
		prefs = DefaultPreferences()
	}

	var starred starredSnapshot
	if err := s.persistor.Load(ctx, sectionStarred, &starred); err != nil {
		starred = starredSnapshot{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.branches = indexByID(dir.Branches, func(b *domain.Branch) string { return b.ID })
	s.staff = indexByID(dir.Staff, func(st *domain.Staff) string { return st.ID })
	s.rooms = indexByID(dir.Rooms, func(r *domain.Room) string { return r.ID })
	s.schedules = indexByID(dir.Schedules, func(es *domain.EntitySchedule) string { return es.EntityID })
	s.timeOff = indexByID(dir.TimeOff, func(t *domain.TimeOff) string { return t.ID })
	s.reservations = indexByID(dir.Reservations, func(r *domain.TimeReservation) string { return r.ID })
	s.templates = indexByID(tpls.Templates, func(t *domain.ScheduleTemplate) string { return t.ID })
	s.events = indexByID(evs.Events, func(e *domain.CalendarEvent) string { return e.ID })

	s.slots = make(map[domain.SlotKey]*domain.StaticServiceSlot, len(slotSnap.Slots))
	for _, slot := range slotSnap.Slots {
		s.slots[slot.Key] = slot
	}

	s.starred = make(map[string]struct{}, len(starred.EventIDs))
	for _, id := range starred.EventIDs {
		if _, ok := s.events[id]; ok {
			s.starred[id] = struct{}{}
		}
	}
	s.prefs = prefs

	s.logger.Info("Load: branches=%d staff=%d rooms=%d events=%d templates=%d slots=%d",
		len(s.branches), len(s.staff), len(s.rooms), len(s.events), len(s.templates), len(s.slots))
	return nil
}

// Flush saves every section synchronously. Used at shutdown so the
// fire-and-forget saves that may still be in flight are superseded by
// one final consistent write.
func (s *Store) Flush(ctx context.Context) error {
	sections := []struct {
		key  string
		snap func() (json.RawMessage, error)
	}{
		{sectionDirectory, s.snapshotDirectory},
		{sectionTemplates, s.snapshotTemplates},
		{sectionSlots, s.snapshotSlots},
		{sectionEvents, s.snapshotEvents},
		{sectionPrefs, s.snapshotPrefs},
		{sectionStarred, s.snapshotStarred},
	}

	var errs []error
	for _, sec := range sections {
		value, err := sec.snap()
		if err == nil {
			err = s.persistor.Save(ctx, sec.key, value)
		}
		if err != nil {
			errs = append(errs, err)
			s.logger.Error("Flush: section %s: %v", sec.key, err)
		}
	}
	return errors.Join(errs...)
}

// persistSection saves one named section in the background. The section
// is serialized under the read lock before the goroutine starts, so
// later mutations never leak into an in-flight save. Persistence is an
// outcome of mutations, never a precondition: a failed save is logged
// and counted but does not fail or roll back the mutation.
func (s *Store) persistSection(key string, snap func() (json.RawMessage, error)) {
	value, err := snap()
	if err != nil {
		s.logger.Error("persist %s: encode: %v", key, err)
		if s.recorder != nil {
			s.recorder.RecordSnapshotFailure()
		}
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), snapshotTimeout)
		defer cancel()
		if err := s.persistor.Save(ctx, key, value); err != nil {
			s.logger.Error("persist %s: %v", key, err)
			if s.recorder != nil {
				s.recorder.RecordSnapshotFailure()
			}
		}
	}()
}

func (s *Store) snapshotDirectory() (json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return json.Marshal(directorySnapshot{
		Branches:     mapValues(s.branches),
		Staff:        mapValues(s.staff),
		Rooms:        mapValues(s.rooms),
		Schedules:    mapValues(s.schedules),
		TimeOff:      mapValues(s.timeOff),
		Reservations: mapValues(s.reservations),
	})
}

func (s *Store) snapshotTemplates() (json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return json.Marshal(templatesSnapshot{Templates: mapValues(s.templates)})
}

func (s *Store) snapshotSlots() (json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.StaticServiceSlot, 0, len(s.slots))
	for _, slot := range s.slots {
		out = append(out, slot)
	}
	return json.Marshal(slotsSnapshot{Slots: out})
}

func (s *Store) snapshotEvents() (json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.CalendarEvent, 0, len(s.events))
	for _, e := range s.events {
		out = append(out, e)
	}
	return json.Marshal(eventsSnapshot{Events: out})
}

func (s *Store) snapshotPrefs() (json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return json.Marshal(s.prefs)
}

func (s *Store) snapshotStarred() (json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.starred))
	for id := range s.starred {
		ids = append(ids, id)
	}
	return json.Marshal(starredSnapshot{EventIDs: ids})
}

func indexByID[T any](items []*T, id func(*T) string) map[string]*T {
	out := make(map[string]*T, len(items))
	for _, item := range items {
		out[id(item)] = item
	}
	return out
}

func mapValues[K comparable, V any](m map[K]V) []V {
	out := make([]V, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	return out
}
