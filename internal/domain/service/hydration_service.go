package service

import (
	"context"
	"errors"
	"hydration-service/internal/domain/entity"
	"time"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned by operations that need an existing profile
// when onboarding has not happened yet.
var ErrProfileNotFound = errors.New("profile not found")

// ContainerInput carries raw container-definition inputs from the caller.
type ContainerInput struct {
	Name   string
	Volume int32
}

// LogResult is the outcome of a single intake log call. GoalReached is true
// exactly when this event moved the day's total from below the daily goal to
// at or above it; it is derived by comparing pre- and post-event totals and
// is never persisted.
type LogResult struct {
	Event       *entity.HydrationEvent
	NewTotal    int32
	GoalReached bool
}

// Summary bundles the derived metrics shown for the current day.
type Summary struct {
	CurrentAmount      int32
	DailyGoal          int32
	ProgressPercentage float64
	ConsecutiveStreak  int32
	LifetimeAchieved   int32
}

// HydrationService defines the business logic of the tracker: the pure
// aggregation rules over the event log plus profile and container type
// management.
//
// Every aggregation entry point takes the current instant explicitly so
// callers (and tests) control what "today" means; nothing reads the wall
// clock internally.
type HydrationService interface {
	// CompleteOnboarding creates the profile and its initial container types
	// in one transaction. An empty containers slice falls back to the
	// default presets.
	CompleteOnboarding(ctx context.Context, name string, age, dailyGoal int32, containers []ContainerInput, now time.Time) (*entity.Profile, []*entity.ContainerType, error)

	// GetProfile retrieves the current profile, nil when onboarding has not
	// happened yet.
	GetProfile(ctx context.Context) (*entity.Profile, error)

	// UpdateProfile rewrites the current profile in place.
	UpdateProfile(ctx context.Context, name string, age, dailyGoal int32) (*entity.Profile, error)

	// CreateContainerType adds a new container type.
	CreateContainerType(ctx context.Context, name string, volume int32) (*entity.ContainerType, error)

	// ListContainerTypes retrieves all container types.
	ListContainerTypes(ctx context.Context) ([]*entity.ContainerType, error)

	// DeleteContainerType removes a container type. Historical events keep
	// their dangling reference and still count toward every statistic.
	DeleteContainerType(ctx context.Context, id uuid.UUID) error

	// LogIntake appends a hydration event for the given container type.
	// When volume is 0 the container type's volume is copied; a dangling
	// container type id with an explicit volume is tolerated.
	LogIntake(ctx context.Context, containerTypeID string, volume int32, now time.Time) (*LogResult, error)

	// EventsToday retrieves today's events, newest first.
	EventsToday(ctx context.Context, now time.Time) ([]*entity.HydrationEvent, error)

	// CurrentAmount returns today's summed intake in milliliters.
	CurrentAmount(ctx context.Context, now time.Time) (int32, error)

	// ProgressPercentage returns today's progress toward the daily goal,
	// clamped to [0, 100].
	ProgressPercentage(ctx context.Context, now time.Time) (float64, error)

	// WeeklySeries returns exactly 7 daily totals for the current week,
	// Monday first, with 0 substituted for days without events.
	WeeklySeries(ctx context.Context, now time.Time) ([]int32, error)

	// ConsecutiveStreak counts consecutive days ending at today (or
	// yesterday, while today has not reached the goal yet) whose intake met
	// the daily goal. 0 when no profile exists.
	ConsecutiveStreak(ctx context.Context, now time.Time) (int32, error)

	// LifetimeAchievedCount counts every calendar day whose intake met the
	// daily goal. 0 when no profile exists.
	LifetimeAchievedCount(ctx context.Context) (int32, error)

	// GetSummary bundles current amount, progress, streak and lifetime
	// count in one call.
	GetSummary(ctx context.Context, now time.Time) (*Summary, error)
}
