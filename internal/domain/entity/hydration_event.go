package entity

import "time"

// DateLayout is the calendar-day format used as the grouping key for all
// aggregation ("YYYY-MM-DD" in local time).
const DateLayout = "2006-01-02"

// HydrationEvent is one logged drink. Events are immutable once created.
//
// Volume is copied from the container type at logging time, so later edits
// or deletion of the container type never change history. ContainerTypeID
// may therefore dangle; aggregation never needs to resolve it.
type HydrationEvent struct {
	ID              int64
	ContainerTypeID string
	Volume          int32
	Timestamp       time.Time
	Date            string // calendar-day projection of Timestamp, DateLayout
}

// DayOf returns the calendar day of t in t's location, formatted as the
// grouping key.
func DayOf(t time.Time) string {
	return t.Format(DateLayout)
}
