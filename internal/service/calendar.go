package service

import (
	"time"

	"hydration-service/internal/domain/entity"
	"hydration-service/internal/domain/repository"
)

// weekStart returns the Monday beginning the week that contains now.
// Sundays belong to the week that started six days earlier.
func weekStart(now time.Time) time.Time {
	var back int
	if now.Weekday() == time.Sunday {
		back = 6
	} else {
		back = int(now.Weekday()) - 1
	}
	return now.AddDate(0, 0, -back)
}

// progressPercentage clamps today's progress toward the goal to [0, 100].
func progressPercentage(amount int32, profile *entity.Profile) float64 {
	if profile == nil || profile.DailyGoal <= 0 {
		return 0
	}
	pct := float64(amount) / float64(profile.DailyGoal) * 100
	if pct > 100 {
		return 100
	}
	return pct
}

// consecutiveStreak walks the date-descending list of qualifying days and
// counts how many of them form an unbroken run of consecutive calendar days.
//
// The run is anchored at today, or at yesterday while today has not reached
// the goal yet, so a day in progress neither breaks nor extends the streak.
// The first gap terminates the count: only the most recent contiguous run
// matters, never the longest historical one.
func consecutiveStreak(rows []repository.DailyTotal, now time.Time) int32 {
	if len(rows) == 0 {
		return 0
	}

	offset := 0
	if rows[0].Date == entity.DayOf(now.AddDate(0, 0, -1)) {
		offset = 1
	}

	var streak int32
	for i, row := range rows {
		expected := entity.DayOf(now.AddDate(0, 0, -(i + offset)))
		if row.Date != expected {
			break
		}
		streak++
	}

	return streak
}
