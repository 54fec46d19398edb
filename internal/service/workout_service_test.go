package service

import (
	"context"
	"testing"
	"time"

	"github.com/Amaan1001/fitflow-ai/internal/domain"
	"github.com/Amaan1001/fitflow-ai/internal/repository/jsonfile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type workoutFixture struct {
	workouts *workoutService
	profiles ProfileService
}

func newWorkoutFixture(t *testing.T, at time.Time) *workoutFixture {
	t.Helper()
	store, err := jsonfile.NewStore(t.TempDir())
	require.NoError(t, err)

	clock := func() time.Time { return at }
	profileRepo := jsonfile.NewProfileRepository(store)

	gamification := &gamificationService{
		statsRepo:  jsonfile.NewStatsRepository(store),
		unlockRepo: jsonfile.NewUnlockRepository(store),
		logger:     zap.NewNop(),
		now:        clock,
	}
	recovery := &recoveryService{
		intensityRepo: jsonfile.NewIntensityRepository(store),
		now:           clock,
	}
	workouts := &workoutService{
		profileRepo:  profileRepo,
		logRepo:      jsonfile.NewWorkoutLogRepository(store),
		gamification: gamification,
		recovery:     recovery,
		search:       planTestCatalog(),
		logger:       zap.NewNop(),
		now:          clock,
	}
	return &workoutFixture{
		workouts: workouts,
		profiles: &profileService{profileRepo: profileRepo, now: clock},
	}
}

func TestCompleteWorkoutUnknownProfile(t *testing.T) {
	fx := newWorkoutFixture(t, recoveryNow)

	_, err := fx.workouts.CompleteWorkout(context.Background(), CompleteWorkoutInput{UserID: "ghost"})
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestCompleteWorkoutRequiresUserID(t *testing.T) {
	fx := newWorkoutFixture(t, recoveryNow)

	_, err := fx.workouts.CompleteWorkout(context.Background(), CompleteWorkoutInput{})
	assert.Error(t, err)
}

func TestCompleteWorkoutFlow(t *testing.T) {
	fx := newWorkoutFixture(t, recoveryNow)
	ctx := context.Background()

	_, err := fx.profiles.SaveProfile(ctx, testProfile(3, domain.ExperienceBeginner, domain.GoalMuscleGain))
	require.NoError(t, err)

	outcome, err := fx.workouts.CompleteWorkout(ctx, CompleteWorkoutInput{
		UserID:               "u1",
		DayNumber:            1,
		CompletedExerciseIDs: []string{"chest_b0", "chest_b1", "arms_b0"},
		TotalExercises:       4,
		TotalSets:            15,
		TotalReps:            10,
		DurationMinutes:      45,
		CaloriesBurned:       300,
		Notes:                "solid session",
	})
	require.NoError(t, err)

	require.NotNil(t, outcome.Log)
	assert.NotEmpty(t, outcome.Log.LogID)
	assert.Equal(t, 1, outcome.Log.DayNumber)
	assert.Equal(t, []string{"chest_b0", "chest_b1", "arms_b0"}, outcome.Log.ExercisesCompleted)

	// Beginner multiplier on 15x10 volume, two muscle groups so no boost.
	assert.Equal(t, 105.0, outcome.Intensity.EstimatedVolume)
	assert.Equal(t, 4.2, outcome.Intensity.IntensityScore)
	assert.ElementsMatch(t, []string{domain.MuscleChest, domain.MuscleArms}, outcome.Intensity.MuscleGroups)

	stats := outcome.Gamification.Stats
	assert.Equal(t, 1, stats.TotalWorkouts)
	assert.Equal(t, 1, stats.CurrentStreak)
	assert.Equal(t, 2, stats.MuscleExercises[domain.MuscleChest])
	assert.Equal(t, 1, stats.MuscleExercises[domain.MuscleArms])

	profile, err := fx.profiles.GetProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, profile.TotalWorkouts)
	assert.Equal(t, 1, profile.CurrentStreak)
	assert.Equal(t, recoveryNow.Format(time.RFC3339), profile.LastWorkoutDate)

	history, err := fx.workouts.History(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, outcome.Log.LogID, history[0].LogID)
}

func TestCompleteWorkoutExplicitMuscleGroups(t *testing.T) {
	fx := newWorkoutFixture(t, recoveryNow)
	ctx := context.Background()

	_, err := fx.profiles.SaveProfile(ctx, testProfile(3, domain.ExperienceIntermediate, domain.GoalStrength))
	require.NoError(t, err)

	outcome, err := fx.workouts.CompleteWorkout(ctx, CompleteWorkoutInput{
		UserID:               "u1",
		DayNumber:            2,
		CompletedExerciseIDs: []string{"back_b0"},
		TotalSets:            10,
		TotalReps:            8,
		MuscleGroups:         []string{domain.MuscleBack, domain.MuscleShoulders},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{domain.MuscleBack, domain.MuscleShoulders}, outcome.Intensity.MuscleGroups)
}

func TestCompleteWorkoutSkipsUnknownExercises(t *testing.T) {
	fx := newWorkoutFixture(t, recoveryNow)
	ctx := context.Background()

	_, err := fx.profiles.SaveProfile(ctx, testProfile(3, domain.ExperienceBeginner, domain.GoalMuscleGain))
	require.NoError(t, err)

	outcome, err := fx.workouts.CompleteWorkout(ctx, CompleteWorkoutInput{
		UserID:               "u1",
		CompletedExerciseIDs: []string{"chest_b0", "made_up_id"},
		TotalSets:            6,
		TotalReps:            10,
	})
	require.NoError(t, err)

	stats := outcome.Gamification.Stats
	assert.Equal(t, 1, stats.MuscleExercises[domain.MuscleChest])
	assert.Len(t, stats.MuscleExercises, 1)
}
