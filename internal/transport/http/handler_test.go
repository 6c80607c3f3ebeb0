package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hydration-service/internal/domain/entity"
	"hydration-service/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockHydrationService is a mock implementation of service.HydrationService
type MockHydrationService struct {
	mock.Mock
}

func (m *MockHydrationService) CompleteOnboarding(ctx context.Context, name string, age, dailyGoal int32, containers []service.ContainerInput, now time.Time) (*entity.Profile, []*entity.ContainerType, error) {
	args := m.Called(ctx, name, age, dailyGoal, containers, now)
	var profile *entity.Profile
	if args.Get(0) != nil {
		profile = args.Get(0).(*entity.Profile)
	}
	var cts []*entity.ContainerType
	if args.Get(1) != nil {
		cts = args.Get(1).([]*entity.ContainerType)
	}
	return profile, cts, args.Error(2)
}

func (m *MockHydrationService) GetProfile(ctx context.Context) (*entity.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Profile), args.Error(1)
}

func (m *MockHydrationService) UpdateProfile(ctx context.Context, name string, age, dailyGoal int32) (*entity.Profile, error) {
	args := m.Called(ctx, name, age, dailyGoal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Profile), args.Error(1)
}

func (m *MockHydrationService) CreateContainerType(ctx context.Context, name string, volume int32) (*entity.ContainerType, error) {
	args := m.Called(ctx, name, volume)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ContainerType), args.Error(1)
}

func (m *MockHydrationService) ListContainerTypes(ctx context.Context) ([]*entity.ContainerType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.ContainerType), args.Error(1)
}

func (m *MockHydrationService) DeleteContainerType(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockHydrationService) LogIntake(ctx context.Context, containerTypeID string, volume int32, now time.Time) (*service.LogResult, error) {
	args := m.Called(ctx, containerTypeID, volume, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.LogResult), args.Error(1)
}

func (m *MockHydrationService) EventsToday(ctx context.Context, now time.Time) ([]*entity.HydrationEvent, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.HydrationEvent), args.Error(1)
}

func (m *MockHydrationService) CurrentAmount(ctx context.Context, now time.Time) (int32, error) {
	args := m.Called(ctx, now)
	return int32(args.Int(0)), args.Error(1)
}

func (m *MockHydrationService) ProgressPercentage(ctx context.Context, now time.Time) (float64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockHydrationService) WeeklySeries(ctx context.Context, now time.Time) ([]int32, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int32), args.Error(1)
}

func (m *MockHydrationService) ConsecutiveStreak(ctx context.Context, now time.Time) (int32, error) {
	args := m.Called(ctx, now)
	return int32(args.Int(0)), args.Error(1)
}

func (m *MockHydrationService) LifetimeAchievedCount(ctx context.Context) (int32, error) {
	args := m.Called(ctx)
	return int32(args.Int(0)), args.Error(1)
}

func (m *MockHydrationService) GetSummary(ctx context.Context, now time.Time) (*service.Summary, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Summary), args.Error(1)
}

func TestLogIntake_RejectsMissingContainer(t *testing.T) {
	svc := new(MockHydrationService)
	handler := NewHydrationHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/intake/log", strings.NewReader(`{"volume": 250}`))
	rec := httptest.NewRecorder()

	handler.LogIntake(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "LogIntake", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestLogIntake_RejectsNegativeVolume(t *testing.T) {
	svc := new(MockHydrationService)
	handler := NewHydrationHandler(svc)

	body := `{"container_type_id": "` + uuid.New().String() + `", "volume": -10}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/intake/log", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.LogIntake(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogIntake_ReportsGoalReached(t *testing.T) {
	svc := new(MockHydrationService)
	handler := NewHydrationHandler(svc)
	containerID := uuid.New().String()

	svc.On("LogIntake", mock.Anything, containerID, int32(750), mock.Anything).
		Return(&service.LogResult{
			Event: &entity.HydrationEvent{
				ID:              3,
				ContainerTypeID: containerID,
				Volume:          750,
				Timestamp:       time.Now(),
				Date:            "2025-03-12",
			},
			NewTotal:    2250,
			GoalReached: true,
		}, nil)

	body := `{"container_type_id": "` + containerID + `", "volume": 750}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/intake/log", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.LogIntake(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		NewTotal    int32 `json:"new_total"`
		GoalReached bool  `json:"goal_reached"`
	}
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, int32(2250), resp.NewTotal)
	assert.True(t, resp.GoalReached)
}

func TestOnboarding_RejectsInvalidGoal(t *testing.T) {
	svc := new(MockHydrationService)
	handler := NewHydrationHandler(svc)

	body := `{"name": "Alex", "age": 30, "daily_goal": 0}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/onboarding/complete", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.CompleteOnboarding(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "CompleteOnboarding",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGetProfile_NotFound(t *testing.T) {
	svc := new(MockHydrationService)
	handler := NewHydrationHandler(svc)

	svc.On("GetProfile", mock.Anything).Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	rec := httptest.NewRecorder()

	handler.GetProfile(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetSummary(t *testing.T) {
	svc := new(MockHydrationService)
	handler := NewHydrationHandler(svc)

	svc.On("GetSummary", mock.Anything, mock.Anything).
		Return(&service.Summary{
			CurrentAmount:      1500,
			DailyGoal:          2000,
			ProgressPercentage: 75,
			ConsecutiveStreak:  3,
			LifetimeAchieved:   12,
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats/summary", nil)
	rec := httptest.NewRecorder()

	handler.GetSummary(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		CurrentAmount      int32   `json:"current_amount"`
		DailyGoal          int32   `json:"daily_goal"`
		ProgressPercentage float64 `json:"progress_percentage"`
		ConsecutiveStreak  int32   `json:"consecutive_streak"`
		LifetimeAchieved   int32   `json:"lifetime_achieved"`
	}
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, int32(3), resp.ConsecutiveStreak)
	assert.Equal(t, 75.0, resp.ProgressPercentage)
}
