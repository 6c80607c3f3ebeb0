package entity

import "time"

// Profile represents the single user of the tracker. Storage keeps every row
// ever written, but the application treats the profile as a singleton: reads
// return the most recently created row and updates always target it.
type Profile struct {
	ID        int64
	Name      string
	Age       int32
	DailyGoal int32 // milliliters per day, always > 0
	CreatedAt time.Time
}
