package cron

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type recordingNotifier struct {
	titles []string
}

func (n *recordingNotifier) Notify(title, body string) error {
	n.titles = append(n.titles, title)
	return nil
}

func TestReschedule_ReplacesWholeJobSet(t *testing.T) {
	s := NewReminderScheduler(&recordingNotifier{}, zap.NewNop())

	assert.NoError(t, s.Reschedule(2000))
	assert.Len(t, s.cron.Entries(), remindersPerDay)

	// A second reschedule removes everything first instead of piling up.
	assert.NoError(t, s.Reschedule(2500))
	assert.Len(t, s.cron.Entries(), remindersPerDay)
}

func TestReschedule_SpreadsRemindersAcrossTheDay(t *testing.T) {
	s := NewReminderScheduler(&recordingNotifier{}, zap.NewNop())

	assert.NoError(t, s.Reschedule(2000))

	// hour = 8 + i*5/4, minute = (i*15) % 60: first at 08:00, last at 16:45.
	assert.Equal(t, remindersPerDay, len(s.entries))
}
