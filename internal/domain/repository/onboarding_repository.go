package repository

import (
	"context"
	"hydration-service/internal/domain/entity"
	"time"
)

// OnboardingRepository persists the initial profile together with its
// container types in a single transaction, so a crash mid-onboarding can
// never leave a profile with a partial container set.
type OnboardingRepository interface {
	Onboard(ctx context.Context, name string, age, dailyGoal int32, containers []*entity.ContainerType, now time.Time) (*entity.Profile, error)
}
