package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"hydration-service/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store := NewStore()
	require.NoError(t, store.Open(context.Background(), filepath.Join(t.TempDir(), "test.db")))
	t.Cleanup(func() { store.Close() })

	return store
}

func TestUnopenedStoreDegradesToEmptyResults(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	events := NewEventRepository(store)
	profiles := NewProfileRepository(store)
	containers := NewContainerTypeRepository(store)

	total, err := events.TotalOnDate(ctx, "2025-03-12")
	assert.NoError(t, err)
	assert.Equal(t, int32(0), total)

	onDate, err := events.EventsOnDate(ctx, "2025-03-12")
	assert.NoError(t, err)
	assert.Empty(t, onDate)

	totals, err := events.DailyTotals(ctx, "2025-03-10", "2025-03-16")
	assert.NoError(t, err)
	assert.Empty(t, totals)

	count, err := events.CountDaysAtOrAbove(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, int32(0), count)

	profile, err := profiles.GetLatest(ctx)
	assert.NoError(t, err)
	assert.Nil(t, profile)

	list, err := containers.List(ctx)
	assert.NoError(t, err)
	assert.Empty(t, list)
}

func TestEventRepository_RecordAndTotals(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	events := NewEventRepository(store)
	containerID := uuid.New().String()

	first, err := events.Record(ctx, containerID, 250, baseTime)
	require.NoError(t, err)
	second, err := events.Record(ctx, containerID, 500, baseTime.Add(2*time.Hour))
	require.NoError(t, err)

	// IDs are assigned monotonically.
	assert.Greater(t, second.ID, first.ID)
	assert.Equal(t, "2025-03-12", first.Date)

	total, err := events.TotalOnDate(ctx, "2025-03-12")
	require.NoError(t, err)
	assert.Equal(t, int32(750), total)

	// A day without events sums to 0, not an error.
	empty, err := events.TotalOnDate(ctx, "2025-03-13")
	require.NoError(t, err)
	assert.Equal(t, int32(0), empty)

	// Newest first.
	onDate, err := events.EventsOnDate(ctx, "2025-03-12")
	require.NoError(t, err)
	require.Len(t, onDate, 2)
	assert.Equal(t, int32(500), onDate[0].Volume)
	assert.Equal(t, int32(250), onDate[1].Volume)
}

func TestEventRepository_OrderingSurvivesMixedTimestampPrecision(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	events := NewEventRepository(store)
	containerID := uuid.New().String()

	// RFC3339Nano drops trailing fractional zeros, so within one second a
	// whole-second timestamp string sorts after a fractional one. Ordering
	// must follow insertion, not the stored string.
	whole, err := events.Record(ctx, containerID, 100, baseTime)
	require.NoError(t, err)
	fractional, err := events.Record(ctx, containerID, 200, baseTime.Add(300*time.Millisecond))
	require.NoError(t, err)
	assert.Greater(t, fractional.ID, whole.ID)

	onDate, err := events.EventsOnDate(ctx, "2025-03-12")
	require.NoError(t, err)
	require.Len(t, onDate, 2)
	assert.Equal(t, fractional.ID, onDate[0].ID)
	assert.Equal(t, whole.ID, onDate[1].ID)
}

func TestEventRepository_DailyTotalsIsSparse(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	events := NewEventRepository(store)
	containerID := uuid.New().String()

	_, err := events.Record(ctx, containerID, 1200, baseTime)
	require.NoError(t, err)
	_, err = events.Record(ctx, containerID, 800, baseTime.AddDate(0, 0, 2))
	require.NoError(t, err)

	totals, err := events.DailyTotals(ctx, "2025-03-10", "2025-03-16")
	require.NoError(t, err)

	assert.Equal(t, map[string]int32{
		"2025-03-12": 1200,
		"2025-03-14": 800,
	}, totals)
}

func TestEventRepository_DailyTotalsAtOrAbove(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	events := NewEventRepository(store)
	containerID := uuid.New().String()

	// Two qualifying days (split across multiple events) and one below
	// the threshold.
	_, err := events.Record(ctx, containerID, 1500, baseTime.AddDate(0, 0, -2))
	require.NoError(t, err)
	_, err = events.Record(ctx, containerID, 600, baseTime.AddDate(0, 0, -2))
	require.NoError(t, err)
	_, err = events.Record(ctx, containerID, 900, baseTime.AddDate(0, 0, -1))
	require.NoError(t, err)
	_, err = events.Record(ctx, containerID, 2500, baseTime)
	require.NoError(t, err)

	rows, err := events.DailyTotalsAtOrAbove(ctx, 2000)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Sorted by date descending; per-day sums, each day exactly once.
	assert.Equal(t, "2025-03-12", rows[0].Date)
	assert.Equal(t, int32(2500), rows[0].Total)
	assert.Equal(t, "2025-03-10", rows[1].Date)
	assert.Equal(t, int32(2100), rows[1].Total)

	count, err := events.CountDaysAtOrAbove(ctx, 2000)
	require.NoError(t, err)
	assert.Equal(t, int32(2), count)

	none, err := events.CountDaysAtOrAbove(ctx, 5000)
	require.NoError(t, err)
	assert.Equal(t, int32(0), none)
}

func TestProfileRepository_LatestRowWins(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	profiles := NewProfileRepository(store)

	_, err := profiles.Create(ctx, "First", 25, 1800, baseTime)
	require.NoError(t, err)
	_, err = profiles.Create(ctx, "Second", 31, 2200, baseTime.Add(time.Hour))
	require.NoError(t, err)

	latest, err := profiles.GetLatest(ctx)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "Second", latest.Name)
	assert.Equal(t, int32(2200), latest.DailyGoal)

	// Update targets the latest row only.
	updated, err := profiles.UpdateLatest(ctx, "Second", 31, 2500)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, int32(2500), updated.DailyGoal)

	latest, err = profiles.GetLatest(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(2500), latest.DailyGoal)
}

func TestProfileRepository_UpdateWithoutProfile(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	profiles := NewProfileRepository(store)

	updated, err := profiles.UpdateLatest(ctx, "Nobody", 40, 2000)
	assert.NoError(t, err)
	assert.Nil(t, updated)
}

func TestOnboardingRepository_AllOrNothing(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	onboarding := NewOnboardingRepository(store)
	profiles := NewProfileRepository(store)
	containers := NewContainerTypeRepository(store)

	duplicate := uuid.New()

	// Second container reuses the first one's primary key, forcing the
	// transaction to fail after the profile insert.
	_, err := onboarding.Onboard(ctx, "Alex", 30, 2000, []*entity.ContainerType{
		{ID: duplicate, Name: "Cup", Volume: 200},
		{ID: duplicate, Name: "Bottle", Volume: 500},
	}, baseTime)
	require.Error(t, err)

	profile, err := profiles.GetLatest(ctx)
	require.NoError(t, err)
	assert.Nil(t, profile, "a failed onboarding must not leave a profile behind")

	list, err := containers.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	// A clean onboarding lands everything.
	profile, err = onboarding.Onboard(ctx, "Alex", 30, 2000, []*entity.ContainerType{
		{ID: uuid.New(), Name: "Cup", Volume: 200},
		{ID: uuid.New(), Name: "Bottle", Volume: 500},
	}, baseTime)
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, int32(2000), profile.DailyGoal)

	list, err = containers.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestContainerTypeDeletionKeepsHistory(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	containers := NewContainerTypeRepository(store)
	events := NewEventRepository(store)

	containerType := &entity.ContainerType{ID: uuid.New(), Name: "Mug", Volume: 300}
	require.NoError(t, containers.Create(ctx, containerType))

	_, err := events.Record(ctx, containerType.ID.String(), containerType.Volume, baseTime)
	require.NoError(t, err)

	require.NoError(t, containers.Delete(ctx, containerType.ID))

	got, err := containers.GetByID(ctx, containerType.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	// The event survives with its copied volume and still counts.
	total, err := events.TotalOnDate(ctx, "2025-03-12")
	require.NoError(t, err)
	assert.Equal(t, int32(300), total)

	onDate, err := events.EventsOnDate(ctx, "2025-03-12")
	require.NoError(t, err)
	require.Len(t, onDate, 1)
	assert.Equal(t, containerType.ID.String(), onDate[0].ContainerTypeID)
}
