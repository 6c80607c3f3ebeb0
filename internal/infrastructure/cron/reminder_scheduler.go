package cron

import (
	"fmt"
	"sync"

	"hydration-service/internal/infrastructure/notify"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// remindersPerDay reminders are spread over reminderStartHour..18:00.
const (
	remindersPerDay   = 8
	reminderStartHour = 8
)

// ReminderScheduler fires daily hydration reminders through a Notifier.
//
// Reschedule replaces the whole job set: every existing entry is removed
// before the new ones are added, so repeated calls are idempotent and the
// schedule is never patched incrementally.
type ReminderScheduler struct {
	cron     *cron.Cron
	notifier notify.Notifier
	log      *zap.Logger

	mu      sync.Mutex
	entries []cron.EntryID
}

// NewReminderScheduler creates a new reminder scheduler.
func NewReminderScheduler(notifier notify.Notifier, log *zap.Logger) *ReminderScheduler {
	return &ReminderScheduler{
		cron:     cron.New(),
		notifier: notifier,
		log:      log,
	}
}

// Start begins firing scheduled reminders.
func (s *ReminderScheduler) Start() {
	s.cron.Start()
	s.log.Info("reminder scheduler started")
}

// Stop stops the scheduler and waits for a running job to finish.
func (s *ReminderScheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info("reminder scheduler stopped")
}

// Reschedule cancels all reminders and adds a fresh daily set parameterized
// by the goal.
func (s *ReminderScheduler) Reschedule(dailyGoal int32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.entries {
		s.cron.Remove(id)
	}
	s.entries = s.entries[:0]

	body := fmt.Sprintf("Don't forget to drink water to reach your %dml goal", dailyGoal)

	for i := 0; i < remindersPerDay; i++ {
		// Spread reminders over the 10-hour window from 08:00 to 18:00.
		hour := reminderStartHour + i*5/4
		minute := (i * 15) % 60

		id, err := s.cron.AddFunc(fmt.Sprintf("%d %d * * *", minute, hour), func() {
			if err := s.notifier.Notify("Time to hydrate!", body); err != nil {
				s.log.Warn("failed to deliver reminder", zap.Error(err))
			}
		})
		if err != nil {
			return fmt.Errorf("failed to add reminder job: %w", err)
		}
		s.entries = append(s.entries, id)
	}

	s.log.Info("reminders rescheduled",
		zap.Int("count", remindersPerDay),
		zap.Int32("daily_goal", dailyGoal))

	return nil
}
