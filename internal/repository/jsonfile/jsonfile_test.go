package jsonfile

import (
	"context"
	"testing"
	"time"

	"github.com/Amaan1001/fitflow-ai/internal/domain"
	"github.com/Amaan1001/fitflow-ai/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestProfileRepositoryUpsertAndGet(t *testing.T) {
	store := newTestStore(t)
	repo := NewProfileRepository(store)
	ctx := context.Background()

	_, err := repo.GetByUserID(ctx, "u1")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	profile := &domain.UserProfile{
		UserID:          "u1",
		Name:            "Alex",
		FitnessGoal:     domain.GoalMuscleGain,
		ExperienceLevel: domain.ExperienceBeginner,
		DaysPerWeek:     3,
		CreatedAt:       time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Upsert(ctx, profile))

	got, err := repo.GetByUserID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Alex", got.Name)

	profile.DaysPerWeek = 5
	require.NoError(t, repo.Upsert(ctx, profile))

	got, err = repo.GetByUserID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 5, got.DaysPerWeek)
}

func TestProfileRepositorySurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, NewProfileRepository(store).Upsert(ctx, &domain.UserProfile{UserID: "u1", Name: "Alex"}))

	reopened, err := NewStore(dir)
	require.NoError(t, err)
	got, err := NewProfileRepository(reopened).GetByUserID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Alex", got.Name)
}

func TestWorkoutLogRepositoryListsNewestFirst(t *testing.T) {
	store := newTestStore(t)
	repo := NewWorkoutLogRepository(store)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 8, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Append(ctx, &domain.WorkoutLog{LogID: "l1", UserID: "u1", Date: base}))
	require.NoError(t, repo.Append(ctx, &domain.WorkoutLog{LogID: "l2", UserID: "u1", Date: base.AddDate(0, 0, 2)}))
	require.NoError(t, repo.Append(ctx, &domain.WorkoutLog{LogID: "l3", UserID: "u2", Date: base.AddDate(0, 0, 1)}))

	logs, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "l2", logs[0].LogID)
	assert.Equal(t, "l1", logs[1].LogID)

	logs, err = repo.ListByUser(ctx, "u3")
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestStatsRepositoryRoundTrip(t *testing.T) {
	store := newTestStore(t)
	repo := NewStatsRepository(store)
	ctx := context.Background()

	_, err := repo.Get(ctx, "u1")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	stats := domain.NewUserStats("u1")
	stats.XP = 150
	stats.Level = 2
	stats.MuscleExercises["chest"] = 3
	require.NoError(t, repo.Save(ctx, stats))

	got, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 150, got.XP)
	assert.Equal(t, 2, got.Level)
	assert.Equal(t, 3, got.MuscleExercises["chest"])
}

func TestStatsRepositoryInitializesMuscleMap(t *testing.T) {
	store := newTestStore(t)
	repo := NewStatsRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &domain.UserStats{UserID: "u1", Level: 1}))

	got, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, got.MuscleExercises)
	got.MuscleExercises["back"]++ // must not panic
}

func TestIntensityRepositoryCapsHistory(t *testing.T) {
	store := newTestStore(t)
	repo := NewIntensityRepository(store)
	ctx := context.Background()

	total := repository.IntensityHistoryLimit + 5
	for i := 0; i < total; i++ {
		require.NoError(t, repo.Append(ctx, "u1", domain.WorkoutIntensity{TotalSets: i}))
	}

	history, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, history, repository.IntensityHistoryLimit)
	// The five oldest entries were dropped.
	assert.Equal(t, 5, history[0].TotalSets)
	assert.Equal(t, total-1, history[len(history)-1].TotalSets)
}

func TestIntensityRepositoryIsolatesUsers(t *testing.T) {
	store := newTestStore(t)
	repo := NewIntensityRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, "u1", domain.WorkoutIntensity{TotalSets: 1}))
	require.NoError(t, repo.Append(ctx, "u2", domain.WorkoutIntensity{TotalSets: 2}))

	history, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, 1, history[0].TotalSets)
}

func TestUnlockRepositoryRoundTrip(t *testing.T) {
	store := newTestStore(t)
	repo := NewUnlockRepository(store)
	ctx := context.Background()

	unlocked, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, unlocked)

	ts := time.Date(2026, 8, 15, 9, 30, 0, 0, time.UTC)
	require.NoError(t, repo.Save(ctx, "u1", map[string]time.Time{"first_workout": ts}))

	unlocked, err = repo.Get(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, unlocked, 1)
	assert.True(t, unlocked["first_workout"].Equal(ts))

	// Per-user documents stay independent.
	other, err := repo.Get(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, other)
}
