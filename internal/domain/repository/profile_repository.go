package repository

import (
	"context"
	"hydration-service/internal/domain/entity"
	"time"
)

// ProfileRepository defines the interface for user profile persistence.
// Storage permits multiple rows; the latest-by-id row is the profile.
type ProfileRepository interface {
	// Create inserts a new profile row stamped with now.
	Create(ctx context.Context, name string, age, dailyGoal int32, now time.Time) (*entity.Profile, error)

	// GetLatest retrieves the most recently created profile, or nil when
	// none exists (or the store is unopened).
	GetLatest(ctx context.Context) (*entity.Profile, error)

	// UpdateLatest rewrites the fields of the most recently created profile
	// in place and returns the updated row, nil when none exists.
	UpdateLatest(ctx context.Context, name string, age, dailyGoal int32) (*entity.Profile, error)
}
