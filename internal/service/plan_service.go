package service

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"time"

	"github.com/Amaan1001/fitflow-ai/internal/catalog"
	"github.com/Amaan1001/fitflow-ai/internal/domain"
)

// --- Error Definitions ---
var (
	ErrProfileNotFound  = errors.New("user profile not found")
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrDayOutOfRange    = errors.New("day number outside the plan")
	ErrNoAlternatives   = errors.New("no alternatives available")
)

// ExerciseSearcher is the exercise-search collaborator contract consumed by
// the plan generator.
type ExerciseSearcher interface {
	Search(f catalog.SearchFilter) []domain.Exercise
	GymEquipment(gymID string) []string
	Alternatives(exerciseID, gymID string) []domain.Exercise
	ExerciseByID(id string) (domain.Exercise, bool)
}

// PlanService generates weekly workout plans.
type PlanService interface {
	GeneratePlan(ctx context.Context, profile *domain.UserProfile) (*domain.WorkoutPlan, error)
	DailyWorkout(plan *domain.WorkoutPlan, day int) (*domain.DayPlan, error)
	SwapExercise(exerciseID, gymID string) (*domain.Exercise, error)
}

// Candidate pool requested from the searcher per day.
const searchCandidates = 20

// Fixed per-day warm-up/cool-down overhead in minutes.
const warmupCooldownMinutes = 10

type planService struct {
	search ExerciseSearcher
	rng    *rand.Rand
}

// NewPlanService creates a plan service. The random source is injectable so
// callers needing reproducible plans can seed it; plan structure (split and
// slot counts) is deterministic regardless, exercise choice and set/rep
// values are not.
func NewPlanService(search ExerciseSearcher, rng *rand.Rand) PlanService {
	return &planService{search: search, rng: rng}
}

// GeneratePlan maps the profile to a weekly muscle split and fills each day
// with sampled exercises and computed sets/reps.
func (s *planService) GeneratePlan(ctx context.Context, profile *domain.UserProfile) (*domain.WorkoutPlan, error) {
	if profile == nil || profile.UserID == "" {
		return nil, errors.New("profile with user id is required")
	}

	split := muscleSplit(profile.DaysPerWeek)

	plan := &domain.WorkoutPlan{
		UserID:      profile.UserID,
		WeeklyPlan:  make([]domain.DayPlan, 0, len(split)),
		TotalDays:   len(split),
		GeneratedAt: time.Now(),
	}

	for i, groups := range split {
		plan.WeeklyPlan = append(plan.WeeklyPlan, s.generateDay(i+1, groups, profile))
	}
	return plan, nil
}

// muscleSplit returns the fixed weekly split for the training frequency.
// Any frequency outside 3-5 falls back to the 3-day split.
func muscleSplit(daysPerWeek int) [][]string {
	switch daysPerWeek {
	case 4:
		return [][]string{
			{domain.MuscleChest, domain.MuscleArms},
			{domain.MuscleBack},
			{domain.MuscleLegs, domain.MuscleCore},
			{domain.MuscleShoulders, domain.MuscleCardio},
		}
	case 5:
		return [][]string{
			{domain.MuscleChest},
			{domain.MuscleBack},
			{domain.MuscleLegs},
			{domain.MuscleShoulders, domain.MuscleArms},
			{domain.MuscleCore, domain.MuscleCardio},
		}
	default:
		return [][]string{
			{domain.MuscleChest, domain.MuscleArms},
			{domain.MuscleBack, domain.MuscleShoulders},
			{domain.MuscleLegs, domain.MuscleCore},
		}
	}
}

func (s *planService) generateDay(dayNumber int, muscleGroups []string, profile *domain.UserProfile) domain.DayPlan {
	query := strings.Join(muscleGroups, ", ") + " exercises for " + string(profile.ExperienceLevel) + " level"

	candidates := s.search.Search(catalog.SearchFilter{
		Query:        query,
		Equipment:    s.search.GymEquipment(profile.GymID),
		MuscleGroups: muscleGroups,
		Limit:        searchCandidates,
	})

	target := exerciseCount(profile.ExperienceLevel, muscleGroups)
	selected := s.selectExercises(candidates, target, profile.ExperienceLevel)

	day := domain.DayPlan{
		Day:          dayNumber,
		MuscleGroups: muscleGroups,
		Exercises:    make([]domain.PlannedExercise, 0, len(selected)),
	}

	totalDuration := 0
	totalCalories := 0
	for _, ex := range selected {
		sets, reps := s.setsReps(ex, profile.FitnessGoal)

		caloriesPerSet := ex.CaloriesPerSet
		if caloriesPerSet == 0 {
			caloriesPerSet = 10
		}
		totalDuration += sets * 2
		totalCalories += sets * caloriesPerSet

		day.Exercises = append(day.Exercises, domain.PlannedExercise{
			ID:           ex.ID,
			Name:         ex.Name,
			MuscleGroup:  ex.MuscleGroup,
			Sets:         sets,
			Reps:         reps,
			Instructions: ex.Instructions,
			VideoURL:     ex.VideoURL,
			GifURL:       ex.GifURL,
			Equipment:    ex.Equipment,
			Difficulty:   ex.Difficulty,
			Alternatives: ex.Alternatives,
		})
	}

	day.EstimatedDuration = totalDuration + warmupCooldownMinutes
	day.EstimatedCalories = totalCalories
	return day
}

// exerciseCount determines the slot count for a day: 4/5/6 by experience,
// reduced by 2 (floor 2) when the day includes cardio.
func exerciseCount(level domain.Experience, muscleGroups []string) int {
	count := 4
	switch level {
	case domain.ExperienceIntermediate:
		count = 5
	case domain.ExperienceAdvanced:
		count = 6
	}
	for _, mg := range muscleGroups {
		if mg == domain.MuscleCardio {
			count -= 2
			if count < 2 {
				count = 2
			}
			break
		}
	}
	return count
}

// selectExercises draws up to two difficulty-eligible exercises per muscle
// group, then fills remaining slots at random from the whole candidate pool.
// The result may be shorter than target when too few candidates exist.
func (s *planService) selectExercises(candidates []domain.Exercise, target int, level domain.Experience) []domain.Exercise {
	// Group by muscle in first-seen order so a seeded random source yields
	// the same selection every run.
	var muscleOrder []string
	byMuscle := make(map[string][]domain.Exercise)
	for _, ex := range candidates {
		if _, seen := byMuscle[ex.MuscleGroup]; !seen {
			muscleOrder = append(muscleOrder, ex.MuscleGroup)
		}
		byMuscle[ex.MuscleGroup] = append(byMuscle[ex.MuscleGroup], ex)
	}

	var selected []domain.Exercise
	taken := make(map[string]bool)

	for _, mg := range muscleOrder {
		var suitable []domain.Exercise
		for _, ex := range byMuscle[mg] {
			if ex.Difficulty.Rank() <= level.Rank() {
				suitable = append(suitable, ex)
			}
		}
		if len(suitable) == 0 {
			continue
		}
		n := 2
		if len(suitable) < n {
			n = len(suitable)
		}
		for _, idx := range s.rng.Perm(len(suitable))[:n] {
			selected = append(selected, suitable[idx])
			taken[suitable[idx].ID] = true
		}
	}

	// Fill remaining slots from any not-yet-selected candidate, eligible
	// or not, until the target is met or the pool is exhausted.
	for len(selected) < target {
		var remaining []domain.Exercise
		for _, ex := range candidates {
			if !taken[ex.ID] {
				remaining = append(remaining, ex)
			}
		}
		if len(remaining) == 0 {
			break
		}
		pick := remaining[s.rng.Intn(len(remaining))]
		selected = append(selected, pick)
		taken[pick.ID] = true
	}

	if len(selected) > target {
		selected = selected[:target]
	}
	return selected
}

// setsReps assigns sets and reps by fitness goal. Cardio exercises always
// get 1 set of 20-30 (minutes); plank holds always get 3 sets of 30-60
// (seconds held).
func (s *planService) setsReps(ex domain.Exercise, goal domain.Goal) (sets, reps int) {
	if ex.MuscleGroup == domain.MuscleCardio {
		return 1, s.randRange(20, 30)
	}
	if strings.Contains(strings.ToLower(ex.Name), "plank") {
		return 3, s.randRange(30, 60)
	}

	switch goal {
	case domain.GoalMuscleGain:
		return s.randRange(3, 4), s.randRange(8, 12)
	case domain.GoalStrength:
		return s.randRange(4, 5), s.randRange(5, 8)
	case domain.GoalWeightLoss:
		return s.randRange(3, 4), s.randRange(12, 15)
	default:
		return s.randRange(3, 4), s.randRange(10, 12)
	}
}

// randRange returns a uniform value in [lo, hi].
func (s *planService) randRange(lo, hi int) int {
	return lo + s.rng.Intn(hi-lo+1)
}

// DailyWorkout returns the plan's entry for a 1-based day number.
func (s *planService) DailyWorkout(plan *domain.WorkoutPlan, day int) (*domain.DayPlan, error) {
	if plan == nil || day < 1 || day > len(plan.WeeklyPlan) {
		return nil, ErrDayOutOfRange
	}
	d := plan.WeeklyPlan[day-1]
	return &d, nil
}

// SwapExercise picks a random alternative performable at the given gym.
func (s *planService) SwapExercise(exerciseID, gymID string) (*domain.Exercise, error) {
	if _, ok := s.search.ExerciseByID(exerciseID); !ok {
		return nil, ErrExerciseNotFound
	}
	alts := s.search.Alternatives(exerciseID, gymID)
	if len(alts) == 0 {
		return nil, ErrNoAlternatives
	}
	alt := alts[s.rng.Intn(len(alts))]
	return &alt, nil
}
