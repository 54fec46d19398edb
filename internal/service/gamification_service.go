package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/Amaan1001/fitflow-ai/internal/domain"
	"github.com/Amaan1001/fitflow-ai/internal/repository"

	"go.uber.org/zap"
)

// Cumulative XP required to reach each level.
var xpRequirements = map[int]int{
	1: 0, 2: 100, 3: 250, 4: 500, 5: 850,
	6: 1300, 7: 1900, 8: 2600, 9: 3500, 10: 5000,
}

// XP awarded per event.
var xpRewards = map[string]int{
	"workout_complete":   50,
	"exercise_complete":  5,
	"streak_day":         10,
	"achievement_unlock": 100,
	"perfect_form":       25,
}

// Streak values that count as a milestone in the completion result.
var streakMilestones = map[int]bool{3: true, 7: true, 14: true, 30: true, 50: true, 100: true}

// defaultAchievements is the immutable achievement catalog.
var defaultAchievements = []domain.Achievement{
	{ID: "first_workout", Name: "First Step", Description: "Complete your first workout", Icon: "🎯", Category: domain.CategoryWorkout, Requirement: 1},
	{ID: "iron_beginner", Name: "Iron Beginner", Description: "Complete 10 workouts", Icon: "🏋️", Category: domain.CategoryWorkout, Requirement: 10},
	{ID: "fitness_warrior", Name: "Fitness Warrior", Description: "Complete 50 workouts", Icon: "💪", Category: domain.CategoryWorkout, Requirement: 50},
	{ID: "gym_legend", Name: "Gym Legend", Description: "Complete 100 workouts", Icon: "👑", Category: domain.CategoryWorkout, Requirement: 100},

	{ID: "streak_3", Name: "Getting Started", Description: "3-day workout streak", Icon: "🔥", Category: domain.CategoryStreak, Requirement: 3},
	{ID: "streak_7", Name: "Week Warrior", Description: "7-day workout streak", Icon: "⚡", Category: domain.CategoryStreak, Requirement: 7},
	{ID: "streak_30", Name: "Consistency King", Description: "30-day workout streak", Icon: "👑", Category: domain.CategoryStreak, Requirement: 30},
	{ID: "streak_100", Name: "Unstoppable", Description: "100-day workout streak", Icon: "🌟", Category: domain.CategoryStreak, Requirement: 100},

	{ID: "hundred_sets", Name: "Century Club", Description: "Complete 100 total sets", Icon: "💯", Category: domain.CategoryProgress, Requirement: 100},
	{ID: "thousand_reps", Name: "Rep Master", Description: "Complete 1000 total reps", Icon: "🔢", Category: domain.CategoryProgress, Requirement: 1000},

	{ID: "chest_champion", Name: "Chest Champion", Description: "Complete 20 chest exercises", Icon: "🦅", Category: domain.CategoryMuscle, Requirement: 20},
	{ID: "back_beast", Name: "Back Beast", Description: "Complete 20 back exercises", Icon: "🦁", Category: domain.CategoryMuscle, Requirement: 20},
	{ID: "leg_legend", Name: "Leg Legend", Description: "Complete 20 leg exercises", Icon: "🦵", Category: domain.CategoryMuscle, Requirement: 20},
}

// achievementMuscle maps a muscle-category achievement to the counter it
// reads from UserStats.MuscleExercises.
func achievementMuscle(id string) string {
	switch {
	case strings.HasPrefix(id, "chest"):
		return domain.MuscleChest
	case strings.HasPrefix(id, "back"):
		return domain.MuscleBack
	case strings.HasPrefix(id, "leg"):
		return domain.MuscleLegs
	}
	return ""
}

// XPResult describes one XP award and its effect on the level.
type XPResult struct {
	LeveledUp bool `json:"leveled_up"`
	OldLevel  int  `json:"old_level"`
	NewLevel  int  `json:"new_level"`
	XPGained  int  `json:"xp_gained"`
	TotalXP   int  `json:"total_xp"`
}

// LevelProgress describes how far the user is into the current level.
type LevelProgress struct {
	CurrentLevel       int     `json:"current_level"`
	CurrentXP          int     `json:"current_xp"`
	XPInLevel          int     `json:"xp_in_level"`
	XPForNextLevel     int     `json:"xp_for_next_level"`
	ProgressPercentage float64 `json:"progress_percentage"`
}

// CompletionResult is the outcome of recording a completed workout.
type CompletionResult struct {
	Stats           *domain.UserStats    `json:"stats"`
	XPResult        XPResult             `json:"xp_result"`
	NewlyUnlocked   []domain.Achievement `json:"newly_unlocked"`
	StreakMilestone bool                 `json:"streak_milestone"`
}

// GamificationService turns workout-completion events into XP, level,
// streak and achievement state.
type GamificationService interface {
	RecordCompletion(ctx context.Context, userID string, exercisesCompleted, totalSets, totalReps int, muscleCounts map[string]int) (*CompletionResult, error)
	Stats(ctx context.Context, userID string) (*domain.UserStats, error)
	Achievements(ctx context.Context, userID string) ([]domain.Achievement, error)
	LevelProgress(stats *domain.UserStats) LevelProgress
}

type gamificationService struct {
	statsRepo  repository.StatsRepository
	unlockRepo repository.UnlockRepository
	logger     *zap.Logger
	now        func() time.Time
}

// NewGamificationService creates a gamification service.
func NewGamificationService(statsRepo repository.StatsRepository, unlockRepo repository.UnlockRepository, logger *zap.Logger) GamificationService {
	return &gamificationService{
		statsRepo:  statsRepo,
		unlockRepo: unlockRepo,
		logger:     logger,
		now:        time.Now,
	}
}

// Stats returns the user's stats, or a fresh zero record for an unknown user.
func (s *gamificationService) Stats(ctx context.Context, userID string) (*domain.UserStats, error) {
	stats, err := s.statsRepo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.NewUserStats(userID), nil
		}
		return nil, err
	}
	return stats, nil
}

// RecordCompletion applies the full completion transaction: streak update,
// counter accumulation, workout XP, achievement unlock checks with their XP
// bonuses, and persistence of stats plus the unlock set.
func (s *gamificationService) RecordCompletion(ctx context.Context, userID string, exercisesCompleted, totalSets, totalReps int, muscleCounts map[string]int) (*CompletionResult, error) {
	stats, err := s.Stats(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	s.updateStreak(stats, now)
	stats.LastWorkoutDate = now.Format(time.RFC3339)

	stats.TotalWorkouts++
	stats.TotalSets += totalSets
	stats.TotalReps += totalReps
	if stats.MuscleExercises == nil {
		stats.MuscleExercises = make(map[string]int)
	}
	for muscle, n := range muscleCounts {
		stats.MuscleExercises[muscle] += n
	}

	xpResult := addXP(stats, xpRewards["workout_complete"])

	unlocked, err := s.unlockRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	newlyUnlocked := s.checkAchievements(stats, unlocked, now)

	// Each unlock bonus re-evaluates the level independently, in unlock order.
	for range newlyUnlocked {
		addXP(stats, xpRewards["achievement_unlock"])
	}
	stats.AchievementsUnlocked = len(unlocked)

	if err := s.statsRepo.Save(ctx, stats); err != nil {
		return nil, err
	}
	if len(newlyUnlocked) > 0 {
		if err := s.unlockRepo.Save(ctx, userID, unlocked); err != nil {
			return nil, err
		}
		for _, ach := range newlyUnlocked {
			s.logger.Info("achievement unlocked",
				zap.String("user_id", userID),
				zap.String("achievement", ach.ID))
		}
	}
	if xpResult.LeveledUp {
		s.logger.Info("level up",
			zap.String("user_id", userID),
			zap.Int("old_level", xpResult.OldLevel),
			zap.Int("new_level", xpResult.NewLevel))
	}

	return &CompletionResult{
		Stats:           stats,
		XPResult:        xpResult,
		NewlyUnlocked:   newlyUnlocked,
		StreakMilestone: streakMilestones[stats.CurrentStreak],
	}, nil
}

// updateStreak compares the calendar date of the completion to the last
// workout date. A one-day gap extends the streak, a longer gap resets it,
// and a second completion the same day leaves it untouched.
func (s *gamificationService) updateStreak(stats *domain.UserStats, now time.Time) {
	if stats.LastWorkoutDate == "" {
		stats.CurrentStreak = 1
	} else {
		last, err := time.Parse(time.RFC3339, stats.LastWorkoutDate)
		if err != nil {
			stats.CurrentStreak = 1
		} else {
			switch gap := calendarDaysBetween(last, now); {
			case gap == 1:
				stats.CurrentStreak++
			case gap > 1:
				stats.CurrentStreak = 1
			}
		}
	}
	if stats.CurrentStreak > stats.LongestStreak {
		stats.LongestStreak = stats.CurrentStreak
	}
}

// calendarDaysBetween counts whole calendar days from a to b, ignoring the
// time of day.
func calendarDaysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	aDay := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	bDay := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(bDay.Sub(aDay).Hours() / 24)
}

// checkAchievements unlocks every catalog entry whose counter now meets its
// requirement. The unlocked map is mutated in place.
func (s *gamificationService) checkAchievements(stats *domain.UserStats, unlocked map[string]time.Time, now time.Time) []domain.Achievement {
	var newly []domain.Achievement
	for _, ach := range defaultAchievements {
		if _, done := unlocked[ach.ID]; done {
			continue
		}

		met := false
		switch ach.Category {
		case domain.CategoryWorkout:
			met = stats.TotalWorkouts >= ach.Requirement
		case domain.CategoryStreak:
			met = stats.CurrentStreak >= ach.Requirement
		case domain.CategoryProgress:
			if strings.Contains(ach.ID, "sets") {
				met = stats.TotalSets >= ach.Requirement
			} else if strings.Contains(ach.ID, "reps") {
				met = stats.TotalReps >= ach.Requirement
			}
		case domain.CategoryMuscle:
			if muscle := achievementMuscle(ach.ID); muscle != "" {
				met = stats.MuscleExercises[muscle] >= ach.Requirement
			}
		}
		if !met {
			continue
		}

		unlocked[ach.ID] = now
		ach.Unlocked = true
		ach.UnlockedDate = now.Format(time.RFC3339)
		newly = append(newly, ach)
	}
	return newly
}

// Achievements returns the full catalog with the user's unlock state merged
// in, sorted catalog-first so the order is stable.
func (s *gamificationService) Achievements(ctx context.Context, userID string) ([]domain.Achievement, error) {
	unlocked, err := s.unlockRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	achievements := make([]domain.Achievement, len(defaultAchievements))
	copy(achievements, defaultAchievements)
	for i := range achievements {
		if t, ok := unlocked[achievements[i].ID]; ok {
			achievements[i].Unlocked = true
			achievements[i].UnlockedDate = t.Format(time.RFC3339)
		}
	}
	return achievements, nil
}

// LevelProgress reports how far into the current level the user is.
func (s *gamificationService) LevelProgress(stats *domain.UserStats) LevelProgress {
	currentLevelXP := xpRequirements[stats.Level]
	nextLevelXP, hasNext := xpRequirements[stats.Level+1]
	if !hasNext {
		nextLevelXP = currentLevelXP
	}

	xpInLevel := stats.XP - currentLevelXP
	xpForNext := nextLevelXP - currentLevelXP

	progress := 100.0
	if xpForNext > 0 {
		progress = float64(xpInLevel) / float64(xpForNext) * 100
		if progress > 100 {
			progress = 100
		}
	}

	return LevelProgress{
		CurrentLevel:       stats.Level,
		CurrentXP:          stats.XP,
		XPInLevel:          xpInLevel,
		XPForNextLevel:     xpForNext,
		ProgressPercentage: progress,
	}
}

// addXP adds XP to the stats and recomputes the level as the highest level
// whose threshold is within the new total. Levels never decrease.
func addXP(stats *domain.UserStats, amount int) XPResult {
	stats.XP += amount
	oldLevel := stats.Level
	stats.Level = levelForXP(stats.XP)

	return XPResult{
		LeveledUp: stats.Level > oldLevel,
		OldLevel:  oldLevel,
		NewLevel:  stats.Level,
		XPGained:  amount,
		TotalXP:   stats.XP,
	}
}

func levelForXP(xp int) int {
	levels := make([]int, 0, len(xpRequirements))
	for level := range xpRequirements {
		levels = append(levels, level)
	}
	sort.Ints(levels)

	result := 1
	for _, level := range levels {
		if xp >= xpRequirements[level] {
			result = level
		}
	}
	return result
}
