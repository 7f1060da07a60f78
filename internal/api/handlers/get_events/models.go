package get_events

import (
	"fmt"
	"net/url"
	"time"

	"github.com/KUL-Services/bookly-scheduling/internal/domain"
	"github.com/KUL-Services/bookly-scheduling/internal/service/calendar"
)

// EventsResponse is the listing payload.
type EventsResponse struct {
	Events []EventItem `json:"events"`
	Total  int         `json:"total"`
}

// EventItem wraps an event with its starred flag.
type EventItem struct {
	*domain.CalendarEvent
	Starred bool `json:"starred"`
}

// filtersFromQuery builds event filters from the query string. Every
// filter parameter is optional and repeatable.
func filtersFromQuery(q url.Values) (calendar.EventFilters, bool, error) {
	var f calendar.EventFilters

	if raw := q.Get("rangeStart"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return f, false, fmt.Errorf("parse rangeStart: %w", err)
		}
		f.RangeStart = &t
	}
	if raw := q.Get("rangeEnd"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return f, false, fmt.Errorf("parse rangeEnd: %w", err)
		}
		f.RangeEnd = &t
	}

	f.BranchIDs = q["branchId"]
	f.StaffIDs = q["staffId"]
	f.RoomIDs = q["roomId"]
	f.BookedBy = q["bookedBy"]
	for _, s := range q["status"] {
		f.Statuses = append(f.Statuses, domain.EventStatus(s))
	}
	for _, p := range q["payment"] {
		f.PaymentStatuses = append(f.PaymentStatuses, domain.PaymentStatus(p))
	}

	starredOnly := q.Get("starredOnly") == "true"
	return f, starredOnly, nil
}
