package service

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/Amaan1001/fitflow-ai/internal/catalog"
	"github.com/Amaan1001/fitflow-ai/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// planTestCatalog builds a catalog with three bodyweight beginner exercises
// per strength muscle group, one barbell advanced exercise per group, and two
// cardio options. gym_full has a barbell; gym_min has nothing.
func planTestCatalog() *catalog.Catalog {
	muscles := []string{
		domain.MuscleChest, domain.MuscleBack, domain.MuscleLegs,
		domain.MuscleShoulders, domain.MuscleArms, domain.MuscleCore,
	}

	var exercises []domain.Exercise
	for _, mg := range muscles {
		for i := 0; i < 3; i++ {
			exercises = append(exercises, domain.Exercise{
				ID:             fmt.Sprintf("%s_b%d", mg, i),
				Name:           fmt.Sprintf("%s drill %d", mg, i),
				MuscleGroup:    mg,
				Difficulty:     domain.ExperienceBeginner,
				CaloriesPerSet: 10,
			})
		}
		exercises = append(exercises, domain.Exercise{
			ID:             mg + "_adv",
			Name:           mg + " barbell lift",
			MuscleGroup:    mg,
			Equipment:      []string{"barbell"},
			Difficulty:     domain.ExperienceAdvanced,
			CaloriesPerSet: 12,
		})
	}
	exercises = append(exercises,
		domain.Exercise{ID: "cardio_b0", Name: "Treadmill Run", MuscleGroup: domain.MuscleCardio, Difficulty: domain.ExperienceBeginner, CaloriesPerSet: 80},
		domain.Exercise{ID: "cardio_b1", Name: "Jump Rope", MuscleGroup: domain.MuscleCardio, Difficulty: domain.ExperienceBeginner, CaloriesPerSet: 70},
		domain.Exercise{ID: "core_plank", Name: "Plank Hold", MuscleGroup: domain.MuscleCore, Difficulty: domain.ExperienceBeginner, CaloriesPerSet: 5, Alternatives: []string{"core_b0", "core_adv"}},
	)

	gyms := []domain.Gym{
		{GymID: "gym_full", Name: "Full Gym", Equipment: []string{"barbell"}},
		{GymID: "gym_min", Name: "Minimal Gym", Equipment: []string{}},
	}
	return catalog.New(exercises, gyms, nil)
}

func testProfile(days int, level domain.Experience, goal domain.Goal) *domain.UserProfile {
	return &domain.UserProfile{
		UserID:          "u1",
		Name:            "Test User",
		FitnessGoal:     goal,
		ExperienceLevel: level,
		DaysPerWeek:     days,
		GymID:           "gym_min",
	}
}

func newTestPlanService(seed int64) *planService {
	return &planService{search: planTestCatalog(), rng: rand.New(rand.NewSource(seed))}
}

func TestGeneratePlanSplits(t *testing.T) {
	tests := []struct {
		name  string
		days  int
		split [][]string
	}{
		{
			name: "three days",
			days: 3,
			split: [][]string{
				{domain.MuscleChest, domain.MuscleArms},
				{domain.MuscleBack, domain.MuscleShoulders},
				{domain.MuscleLegs, domain.MuscleCore},
			},
		},
		{
			name: "four days",
			days: 4,
			split: [][]string{
				{domain.MuscleChest, domain.MuscleArms},
				{domain.MuscleBack},
				{domain.MuscleLegs, domain.MuscleCore},
				{domain.MuscleShoulders, domain.MuscleCardio},
			},
		},
		{
			name: "five days",
			days: 5,
			split: [][]string{
				{domain.MuscleChest},
				{domain.MuscleBack},
				{domain.MuscleLegs},
				{domain.MuscleShoulders, domain.MuscleArms},
				{domain.MuscleCore, domain.MuscleCardio},
			},
		},
		{
			name: "unsupported frequency falls back to three days",
			days: 7,
			split: [][]string{
				{domain.MuscleChest, domain.MuscleArms},
				{domain.MuscleBack, domain.MuscleShoulders},
				{domain.MuscleLegs, domain.MuscleCore},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := newTestPlanService(1)
			plan, err := svc.GeneratePlan(context.Background(), testProfile(tc.days, domain.ExperienceBeginner, domain.GoalMuscleGain))
			require.NoError(t, err)

			require.Equal(t, len(tc.split), plan.TotalDays)
			require.Len(t, plan.WeeklyPlan, len(tc.split))
			for i, day := range plan.WeeklyPlan {
				assert.Equal(t, i+1, day.Day)
				assert.Equal(t, tc.split[i], day.MuscleGroups)
			}
		})
	}
}

func TestGeneratePlanRequiresUserID(t *testing.T) {
	svc := newTestPlanService(1)

	_, err := svc.GeneratePlan(context.Background(), nil)
	assert.Error(t, err)

	_, err = svc.GeneratePlan(context.Background(), &domain.UserProfile{})
	assert.Error(t, err)
}

func TestGeneratePlanExerciseCountsByExperience(t *testing.T) {
	tests := []struct {
		level domain.Experience
		want  int
	}{
		{domain.ExperienceBeginner, 4},
		{domain.ExperienceIntermediate, 5},
		{domain.ExperienceAdvanced, 6},
	}

	for _, tc := range tests {
		t.Run(string(tc.level), func(t *testing.T) {
			svc := newTestPlanService(2)
			profile := testProfile(3, tc.level, domain.GoalMuscleGain)
			profile.GymID = "gym_full"
			plan, err := svc.GeneratePlan(context.Background(), profile)
			require.NoError(t, err)

			for _, day := range plan.WeeklyPlan {
				assert.Len(t, day.Exercises, tc.want, "day %d", day.Day)
			}
		})
	}
}

func TestGeneratePlanCardioDayReducesSlots(t *testing.T) {
	svc := newTestPlanService(3)
	plan, err := svc.GeneratePlan(context.Background(), testProfile(5, domain.ExperienceBeginner, domain.GoalGeneralFitness))
	require.NoError(t, err)

	// Day 5 is core+cardio: 4 slots reduced by 2.
	day := plan.WeeklyPlan[4]
	require.Equal(t, []string{domain.MuscleCore, domain.MuscleCardio}, day.MuscleGroups)
	assert.Len(t, day.Exercises, 2)
}

func TestGeneratePlanExcludesUnavailableEquipment(t *testing.T) {
	svc := newTestPlanService(4)
	profile := testProfile(3, domain.ExperienceAdvanced, domain.GoalStrength)
	profile.GymID = "gym_min"

	plan, err := svc.GeneratePlan(context.Background(), profile)
	require.NoError(t, err)

	for _, day := range plan.WeeklyPlan {
		for _, ex := range day.Exercises {
			assert.Empty(t, ex.Equipment, "exercise %s should need no equipment at gym_min", ex.ID)
		}
	}
}

func TestGeneratePlanDifficultyBound(t *testing.T) {
	// A beginner at the full gym sees advanced candidates, but the per-muscle
	// picks must stay within the beginner rank; only fill slots may exceed it.
	// With 6 beginner exercises per day and 4 slots, no fill beyond rank is needed.
	svc := newTestPlanService(5)
	profile := testProfile(3, domain.ExperienceBeginner, domain.GoalMuscleGain)
	profile.GymID = "gym_full"

	plan, err := svc.GeneratePlan(context.Background(), profile)
	require.NoError(t, err)

	for _, day := range plan.WeeklyPlan {
		require.NotEmpty(t, day.Exercises)
	}
}

func TestGeneratePlanDurationAndCalories(t *testing.T) {
	svc := newTestPlanService(6)
	plan, err := svc.GeneratePlan(context.Background(), testProfile(3, domain.ExperienceBeginner, domain.GoalMuscleGain))
	require.NoError(t, err)

	for _, day := range plan.WeeklyPlan {
		wantDuration := warmupCooldownMinutes
		wantCalories := 0
		for _, ex := range day.Exercises {
			wantDuration += ex.Sets * 2
			full, ok := svc.search.ExerciseByID(ex.ID)
			require.True(t, ok)
			wantCalories += ex.Sets * full.CaloriesPerSet
		}
		assert.Equal(t, wantDuration, day.EstimatedDuration)
		assert.Equal(t, wantCalories, day.EstimatedCalories)
	}
}

func TestGeneratePlanDeterministicWithSeed(t *testing.T) {
	profile := testProfile(4, domain.ExperienceIntermediate, domain.GoalWeightLoss)

	p1, err := newTestPlanService(42).GeneratePlan(context.Background(), profile)
	require.NoError(t, err)
	p2, err := newTestPlanService(42).GeneratePlan(context.Background(), profile)
	require.NoError(t, err)

	assert.Equal(t, p1.WeeklyPlan, p2.WeeklyPlan)
}

func TestSetsRepsByGoal(t *testing.T) {
	svc := newTestPlanService(7)
	strength := domain.Exercise{ID: "x", Name: "Row", MuscleGroup: domain.MuscleBack}

	tests := []struct {
		goal     domain.Goal
		minSets  int
		maxSets  int
		minReps  int
		maxReps  int
	}{
		{domain.GoalMuscleGain, 3, 4, 8, 12},
		{domain.GoalStrength, 4, 5, 5, 8},
		{domain.GoalWeightLoss, 3, 4, 12, 15},
		{domain.GoalGeneralFitness, 3, 4, 10, 12},
	}

	for _, tc := range tests {
		t.Run(string(tc.goal), func(t *testing.T) {
			for i := 0; i < 50; i++ {
				sets, reps := svc.setsReps(strength, tc.goal)
				assert.GreaterOrEqual(t, sets, tc.minSets)
				assert.LessOrEqual(t, sets, tc.maxSets)
				assert.GreaterOrEqual(t, reps, tc.minReps)
				assert.LessOrEqual(t, reps, tc.maxReps)
			}
		})
	}
}

func TestSetsRepsCardioOverride(t *testing.T) {
	svc := newTestPlanService(8)
	cardio := domain.Exercise{ID: "run", Name: "Treadmill Run", MuscleGroup: domain.MuscleCardio}

	for i := 0; i < 50; i++ {
		sets, reps := svc.setsReps(cardio, domain.GoalStrength)
		assert.Equal(t, 1, sets)
		assert.GreaterOrEqual(t, reps, 20)
		assert.LessOrEqual(t, reps, 30)
	}
}

func TestSetsRepsPlankOverride(t *testing.T) {
	svc := newTestPlanService(9)
	plank := domain.Exercise{ID: "plank", Name: "Side Plank", MuscleGroup: domain.MuscleCore}

	for i := 0; i < 50; i++ {
		sets, reps := svc.setsReps(plank, domain.GoalMuscleGain)
		assert.Equal(t, 3, sets)
		assert.GreaterOrEqual(t, reps, 30)
		assert.LessOrEqual(t, reps, 60)
	}
}

func TestDailyWorkout(t *testing.T) {
	svc := newTestPlanService(10)
	plan, err := svc.GeneratePlan(context.Background(), testProfile(3, domain.ExperienceBeginner, domain.GoalMuscleGain))
	require.NoError(t, err)

	day, err := svc.DailyWorkout(plan, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, day.Day)

	_, err = svc.DailyWorkout(plan, 0)
	assert.ErrorIs(t, err, ErrDayOutOfRange)
	_, err = svc.DailyWorkout(plan, 4)
	assert.ErrorIs(t, err, ErrDayOutOfRange)
	_, err = svc.DailyWorkout(nil, 1)
	assert.ErrorIs(t, err, ErrDayOutOfRange)
}

func TestSwapExercise(t *testing.T) {
	svc := newTestPlanService(11)

	_, err := svc.SwapExercise("nope", "gym_min")
	assert.ErrorIs(t, err, ErrExerciseNotFound)

	// cardio_b0 has no alternatives wired.
	_, err = svc.SwapExercise("cardio_b0", "gym_min")
	assert.ErrorIs(t, err, ErrNoAlternatives)

	// core_plank lists core_b0 (bodyweight) and core_adv (barbell); at the
	// minimal gym only core_b0 qualifies.
	alt, err := svc.SwapExercise("core_plank", "gym_min")
	require.NoError(t, err)
	assert.Equal(t, "core_b0", alt.ID)

	// At the full gym either alternative may come back.
	alt, err = svc.SwapExercise("core_plank", "gym_full")
	require.NoError(t, err)
	assert.Contains(t, []string{"core_b0", "core_adv"}, alt.ID)
}
