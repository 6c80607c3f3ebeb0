package repository

import (
	"context"
	"hydration-service/internal/domain/entity"
	"time"
)

// DailyTotal is the summed volume of one calendar day.
type DailyTotal struct {
	Date  string // entity.DateLayout
	Total int32
}

// EventRepository defines the interface for the append-only hydration event
// log. There is no update or delete: events are immutable.
//
// Every read degrades to an empty-equivalent result (zero, nil slice, empty
// map) when the store has not been opened; an unopened store is a degenerate
// but defined state, not an error.
type EventRepository interface {
	// Record appends a new event stamped with now and its derived calendar
	// day, returning the stored event including its assigned ID.
	Record(ctx context.Context, containerTypeID string, volume int32, now time.Time) (*entity.HydrationEvent, error)

	// EventsOnDate retrieves all events of one calendar day, newest first.
	EventsOnDate(ctx context.Context, date string) ([]*entity.HydrationEvent, error)

	// TotalOnDate returns the summed volume of one calendar day, 0 when the
	// day has no events.
	TotalOnDate(ctx context.Context, date string) (int32, error)

	// DailyTotals returns per-day sums over the inclusive date range. The
	// result is sparse: days without events are absent and callers fill
	// gaps with 0.
	DailyTotals(ctx context.Context, startDate, endDate string) (map[string]int32, error)

	// DailyTotalsAtOrAbove returns one entry per distinct day whose summed
	// volume meets the threshold, sorted by date descending.
	DailyTotalsAtOrAbove(ctx context.Context, threshold int32) ([]DailyTotal, error)

	// CountDaysAtOrAbove counts distinct days whose summed volume meets the
	// threshold.
	CountDaysAtOrAbove(ctx context.Context, threshold int32) (int32, error)
}
