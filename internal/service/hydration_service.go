package service

import (
	"context"
	"fmt"
	"time"

	"hydration-service/internal/domain/entity"
	"hydration-service/internal/domain/repository"
	"hydration-service/internal/domain/service"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Default container presets offered when onboarding supplies none.
var defaultContainerPresets = []service.ContainerInput{
	{Name: "Small glass", Volume: 50},
	{Name: "Large glass", Volume: 100},
}

type hydrationService struct {
	profileRepo    repository.ProfileRepository
	containerRepo  repository.ContainerTypeRepository
	eventRepo      repository.EventRepository
	onboardingRepo repository.OnboardingRepository
	scheduler      service.ReminderScheduler
	log            *zap.Logger
}

// NewHydrationService creates a new hydration service. scheduler may be nil
// when reminders are disabled.
func NewHydrationService(
	profileRepo repository.ProfileRepository,
	containerRepo repository.ContainerTypeRepository,
	eventRepo repository.EventRepository,
	onboardingRepo repository.OnboardingRepository,
	scheduler service.ReminderScheduler,
	log *zap.Logger,
) service.HydrationService {
	return &hydrationService{
		profileRepo:    profileRepo,
		containerRepo:  containerRepo,
		eventRepo:      eventRepo,
		onboardingRepo: onboardingRepo,
		scheduler:      scheduler,
		log:            log,
	}
}

func validateProfileInput(name string, age, dailyGoal int32) error {
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if age <= 0 {
		return fmt.Errorf("age must be positive")
	}
	if dailyGoal <= 0 {
		return fmt.Errorf("daily goal must be positive")
	}
	return nil
}

func (s *hydrationService) CompleteOnboarding(ctx context.Context, name string, age, dailyGoal int32, containers []service.ContainerInput, now time.Time) (*entity.Profile, []*entity.ContainerType, error) {
	if err := validateProfileInput(name, age, dailyGoal); err != nil {
		return nil, nil, err
	}

	if len(containers) == 0 {
		containers = defaultContainerPresets
	}

	containerTypes := make([]*entity.ContainerType, 0, len(containers))
	for _, c := range containers {
		if c.Name == "" {
			return nil, nil, fmt.Errorf("container name is required")
		}
		if c.Volume <= 0 {
			return nil, nil, fmt.Errorf("container volume must be positive")
		}
		containerTypes = append(containerTypes, &entity.ContainerType{
			ID:     uuid.New(),
			Name:   c.Name,
			Volume: c.Volume,
		})
	}

	// Profile and container types are written in one transaction so a
	// failure mid-onboarding never leaves a partial container set behind.
	profile, err := s.onboardingRepo.Onboard(ctx, name, age, dailyGoal, containerTypes, now)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to complete onboarding: %w", err)
	}

	s.reschedule(dailyGoal)

	return profile, containerTypes, nil
}

func (s *hydrationService) GetProfile(ctx context.Context) (*entity.Profile, error) {
	return s.profileRepo.GetLatest(ctx)
}

func (s *hydrationService) UpdateProfile(ctx context.Context, name string, age, dailyGoal int32) (*entity.Profile, error) {
	if err := validateProfileInput(name, age, dailyGoal); err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.UpdateLatest(ctx, name, age, dailyGoal)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	if profile == nil {
		return nil, service.ErrProfileNotFound
	}

	s.reschedule(dailyGoal)

	return profile, nil
}

func (s *hydrationService) CreateContainerType(ctx context.Context, name string, volume int32) (*entity.ContainerType, error) {
	if name == "" {
		return nil, fmt.Errorf("container name is required")
	}
	if volume <= 0 {
		return nil, fmt.Errorf("container volume must be positive")
	}

	containerType := &entity.ContainerType{
		ID:     uuid.New(),
		Name:   name,
		Volume: volume,
	}

	if err := s.containerRepo.Create(ctx, containerType); err != nil {
		return nil, fmt.Errorf("failed to create container type: %w", err)
	}

	return containerType, nil
}

func (s *hydrationService) ListContainerTypes(ctx context.Context) ([]*entity.ContainerType, error) {
	return s.containerRepo.List(ctx)
}

func (s *hydrationService) DeleteContainerType(ctx context.Context, id uuid.UUID) error {
	// No reference check: events that point at this container type keep
	// their copied volume and still count toward every statistic.
	return s.containerRepo.Delete(ctx, id)
}

func (s *hydrationService) LogIntake(ctx context.Context, containerTypeID string, volume int32, now time.Time) (*service.LogResult, error) {
	if volume < 0 {
		return nil, fmt.Errorf("volume must be positive")
	}

	if volume == 0 {
		// Copy the volume from the container type at logging time.
		id, err := uuid.Parse(containerTypeID)
		if err != nil {
			return nil, fmt.Errorf("invalid container type id: %w", err)
		}
		containerType, err := s.containerRepo.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve container type: %w", err)
		}
		if containerType == nil {
			return nil, fmt.Errorf("unknown container type %s and no explicit volume", containerTypeID)
		}
		volume = containerType.Volume
	}

	today := entity.DayOf(now)

	previousTotal, err := s.eventRepo.TotalOnDate(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("failed to read current total: %w", err)
	}

	event, err := s.eventRepo.Record(ctx, containerTypeID, volume, now)
	if err != nil {
		return nil, fmt.Errorf("failed to record event: %w", err)
	}

	newTotal := previousTotal + volume

	// The goal-reached signal is a pure pre/post comparison within this
	// call; it is never stored.
	goalReached := false
	profile, err := s.profileRepo.GetLatest(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if profile != nil && profile.DailyGoal > 0 {
		goalReached = previousTotal < profile.DailyGoal && newTotal >= profile.DailyGoal
	}

	return &service.LogResult{
		Event:       event,
		NewTotal:    newTotal,
		GoalReached: goalReached,
	}, nil
}

func (s *hydrationService) EventsToday(ctx context.Context, now time.Time) ([]*entity.HydrationEvent, error) {
	return s.eventRepo.EventsOnDate(ctx, entity.DayOf(now))
}

func (s *hydrationService) CurrentAmount(ctx context.Context, now time.Time) (int32, error) {
	return s.eventRepo.TotalOnDate(ctx, entity.DayOf(now))
}

func (s *hydrationService) ProgressPercentage(ctx context.Context, now time.Time) (float64, error) {
	profile, err := s.profileRepo.GetLatest(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load profile: %w", err)
	}

	amount, err := s.CurrentAmount(ctx, now)
	if err != nil {
		return 0, err
	}

	return progressPercentage(amount, profile), nil
}

func (s *hydrationService) WeeklySeries(ctx context.Context, now time.Time) ([]int32, error) {
	monday := weekStart(now)
	sunday := monday.AddDate(0, 0, 6)

	totals, err := s.eventRepo.DailyTotals(ctx, entity.DayOf(monday), entity.DayOf(sunday))
	if err != nil {
		return nil, fmt.Errorf("failed to load weekly totals: %w", err)
	}

	// Exactly 7 values, Monday first; days without events become 0.
	series := make([]int32, 7)
	for i := 0; i < 7; i++ {
		series[i] = totals[entity.DayOf(monday.AddDate(0, 0, i))]
	}

	return series, nil
}

func (s *hydrationService) ConsecutiveStreak(ctx context.Context, now time.Time) (int32, error) {
	profile, err := s.profileRepo.GetLatest(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load profile: %w", err)
	}
	if profile == nil || profile.DailyGoal <= 0 {
		return 0, nil
	}

	rows, err := s.eventRepo.DailyTotalsAtOrAbove(ctx, profile.DailyGoal)
	if err != nil {
		return 0, fmt.Errorf("failed to load qualifying days: %w", err)
	}

	return consecutiveStreak(rows, now), nil
}

func (s *hydrationService) LifetimeAchievedCount(ctx context.Context) (int32, error) {
	profile, err := s.profileRepo.GetLatest(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load profile: %w", err)
	}
	if profile == nil || profile.DailyGoal <= 0 {
		return 0, nil
	}

	return s.eventRepo.CountDaysAtOrAbove(ctx, profile.DailyGoal)
}

func (s *hydrationService) GetSummary(ctx context.Context, now time.Time) (*service.Summary, error) {
	profile, err := s.profileRepo.GetLatest(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	amount, err := s.CurrentAmount(ctx, now)
	if err != nil {
		return nil, err
	}

	summary := &service.Summary{
		CurrentAmount:      amount,
		ProgressPercentage: progressPercentage(amount, profile),
	}

	if profile == nil || profile.DailyGoal <= 0 {
		return summary, nil
	}
	summary.DailyGoal = profile.DailyGoal

	rows, err := s.eventRepo.DailyTotalsAtOrAbove(ctx, profile.DailyGoal)
	if err != nil {
		return nil, fmt.Errorf("failed to load qualifying days: %w", err)
	}
	summary.ConsecutiveStreak = consecutiveStreak(rows, now)

	achieved, err := s.eventRepo.CountDaysAtOrAbove(ctx, profile.DailyGoal)
	if err != nil {
		return nil, fmt.Errorf("failed to count achieved days: %w", err)
	}
	summary.LifetimeAchieved = achieved

	return summary, nil
}

func (s *hydrationService) reschedule(dailyGoal int32) {
	if s.scheduler == nil {
		return
	}
	if err := s.scheduler.Reschedule(dailyGoal); err != nil {
		s.log.Warn("failed to reschedule reminders", zap.Error(err))
	}
}
