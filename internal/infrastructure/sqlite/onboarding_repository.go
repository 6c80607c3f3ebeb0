package sqlite

import (
	"context"
	"fmt"
	"time"

	"hydration-service/internal/domain/entity"
	"hydration-service/internal/domain/repository"
)

type onboardingRepository struct {
	store *Store
}

// NewOnboardingRepository creates a new SQLite onboarding repository.
func NewOnboardingRepository(store *Store) repository.OnboardingRepository {
	return &onboardingRepository{store: store}
}

// Onboard writes the profile and all container types in one transaction:
// either the full onboarding lands or none of it does.
func (r *onboardingRepository) Onboard(ctx context.Context, name string, age, dailyGoal int32, containers []*entity.ContainerType, now time.Time) (*entity.Profile, error) {
	if r.store.db == nil {
		return nil, nil
	}

	tx, err := r.store.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin onboarding transaction: %w", err)
	}
	defer tx.Rollback()

	profile, err := insertProfile(ctx, tx, name, age, dailyGoal, now)
	if err != nil {
		return nil, err
	}

	for _, containerType := range containers {
		if err := insertContainerType(ctx, tx, containerType); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit onboarding transaction: %w", err)
	}

	return profile, nil
}
