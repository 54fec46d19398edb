package domain

// UserStats holds gamification progress for one user. Counters are
// monotonically non-decreasing except CurrentStreak, which resets after a
// missed day.
type UserStats struct {
	UserID               string         `json:"user_id" bson:"user_id"`
	Level                int            `json:"level" bson:"level"`
	XP                   int            `json:"xp" bson:"xp"`
	TotalWorkouts        int            `json:"total_workouts" bson:"total_workouts"`
	CurrentStreak        int            `json:"current_streak" bson:"current_streak"`
	LongestStreak        int            `json:"longest_streak" bson:"longest_streak"`
	TotalSets            int            `json:"total_sets" bson:"total_sets"`
	TotalReps            int            `json:"total_reps" bson:"total_reps"`
	MuscleExercises      map[string]int `json:"muscle_exercises,omitempty" bson:"muscle_exercises,omitempty"`
	AchievementsUnlocked int            `json:"achievements_unlocked" bson:"achievements_unlocked"`
	LastWorkoutDate      string         `json:"last_workout_date,omitempty" bson:"last_workout_date,omitempty"` // RFC 3339
}

// NewUserStats returns fresh stats for a user with no history.
func NewUserStats(userID string) *UserStats {
	return &UserStats{
		UserID:          userID,
		Level:           1,
		MuscleExercises: make(map[string]int),
	}
}
