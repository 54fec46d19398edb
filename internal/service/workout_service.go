package service

import (
	"context"
	"errors"
	"time"

	"github.com/Amaan1001/fitflow-ai/internal/domain"
	"github.com/Amaan1001/fitflow-ai/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CompleteWorkoutInput describes one finished training day.
type CompleteWorkoutInput struct {
	UserID               string
	DayNumber            int
	CompletedExerciseIDs []string
	TotalExercises       int
	TotalSets            int
	TotalReps            int
	MuscleGroups         []string // the day's muscle groups; derived from exercises when empty
	DurationMinutes      int
	CaloriesBurned       int
	Notes                string
}

// CompletionOutcome bundles everything a completion produces.
type CompletionOutcome struct {
	Log          *domain.WorkoutLog      `json:"log"`
	Gamification *CompletionResult       `json:"gamification"`
	Intensity    domain.WorkoutIntensity `json:"intensity"`
}

// WorkoutService orchestrates the workout-completion flow across the log
// store, the profile, the gamification engine and the recovery analyzer.
type WorkoutService interface {
	CompleteWorkout(ctx context.Context, input CompleteWorkoutInput) (*CompletionOutcome, error)
	History(ctx context.Context, userID string) ([]domain.WorkoutLog, error)
}

type workoutService struct {
	profileRepo  repository.ProfileRepository
	logRepo      repository.WorkoutLogRepository
	gamification GamificationService
	recovery     RecoveryService
	search       ExerciseSearcher
	logger       *zap.Logger
	now          func() time.Time
}

// NewWorkoutService creates a workout completion service.
func NewWorkoutService(
	profileRepo repository.ProfileRepository,
	logRepo repository.WorkoutLogRepository,
	gamification GamificationService,
	recovery RecoveryService,
	search ExerciseSearcher,
	logger *zap.Logger,
) WorkoutService {
	return &workoutService{
		profileRepo:  profileRepo,
		logRepo:      logRepo,
		gamification: gamification,
		recovery:     recovery,
		search:       search,
		logger:       logger,
		now:          time.Now,
	}
}

// CompleteWorkout appends the log, updates the profile counters, runs the
// gamification transaction and records the session intensity.
func (s *workoutService) CompleteWorkout(ctx context.Context, input CompleteWorkoutInput) (*CompletionOutcome, error) {
	if input.UserID == "" {
		return nil, errors.New("user id is required")
	}

	profile, err := s.profileRepo.GetByUserID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	log := &domain.WorkoutLog{
		LogID:              uuid.NewString(),
		UserID:             input.UserID,
		Date:               s.now(),
		DayNumber:          input.DayNumber,
		ExercisesCompleted: input.CompletedExerciseIDs,
		TotalExercises:     input.TotalExercises,
		DurationMinutes:    input.DurationMinutes,
		CaloriesBurned:     input.CaloriesBurned,
		Notes:              input.Notes,
	}
	if err := s.logRepo.Append(ctx, log); err != nil {
		return nil, err
	}

	muscleCounts, muscleGroups := s.resolveMuscles(input)

	gamification, err := s.gamification.RecordCompletion(ctx, input.UserID,
		len(input.CompletedExerciseIDs), input.TotalSets, input.TotalReps, muscleCounts)
	if err != nil {
		return nil, err
	}

	profile.TotalWorkouts++
	profile.CurrentStreak = gamification.Stats.CurrentStreak
	profile.LastWorkoutDate = gamification.Stats.LastWorkoutDate
	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, err
	}

	intensity, err := s.recovery.RecordIntensity(ctx, input.UserID, WorkoutSummary{
		TotalSets:    input.TotalSets,
		TotalReps:    input.TotalReps,
		MuscleGroups: muscleGroups,
	}, profile.ExperienceLevel)
	if err != nil {
		return nil, err
	}

	s.logger.Info("workout completed",
		zap.String("user_id", input.UserID),
		zap.Int("day", input.DayNumber),
		zap.Int("exercises", len(input.CompletedExerciseIDs)),
		zap.Float64("intensity", intensity.IntensityScore))

	return &CompletionOutcome{
		Log:          log,
		Gamification: gamification,
		Intensity:    intensity,
	}, nil
}

// resolveMuscles counts completed exercises per muscle group via the catalog
// and determines the session's muscle groups. Unknown exercise ids are
// skipped rather than treated as errors.
func (s *workoutService) resolveMuscles(input CompleteWorkoutInput) (map[string]int, []string) {
	counts := make(map[string]int)
	for _, id := range input.CompletedExerciseIDs {
		if ex, ok := s.search.ExerciseByID(id); ok {
			counts[ex.MuscleGroup]++
		}
	}

	groups := input.MuscleGroups
	if len(groups) == 0 {
		for muscle := range counts {
			groups = append(groups, muscle)
		}
	}
	return counts, groups
}

// History returns the user's workout logs, newest first.
func (s *workoutService) History(ctx context.Context, userID string) ([]domain.WorkoutLog, error) {
	return s.logRepo.ListByUser(ctx, userID)
}
