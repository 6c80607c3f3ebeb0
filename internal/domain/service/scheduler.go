package service

// ReminderScheduler replaces the daily reminder set whenever the goal
// changes. Rescheduling is always full-replace: every existing reminder is
// removed before the new set is added, never patched incrementally.
type ReminderScheduler interface {
	Reschedule(dailyGoal int32) error
}
