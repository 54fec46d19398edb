package domain

import "time"

// Goal is the user's primary training objective.
type Goal string

const (
	GoalMuscleGain     Goal = "muscle_gain"
	GoalWeightLoss     Goal = "weight_loss"
	GoalStrength       Goal = "strength"
	GoalGeneralFitness Goal = "general_fitness"
)

// Experience is the user's self-reported training level.
type Experience string

const (
	ExperienceBeginner     Experience = "beginner"
	ExperienceIntermediate Experience = "intermediate"
	ExperienceAdvanced     Experience = "advanced"
)

// Rank returns the ordinal position of the level (beginner < intermediate < advanced).
// Unknown values rank as beginner.
func (e Experience) Rank() int {
	switch e {
	case ExperienceIntermediate:
		return 1
	case ExperienceAdvanced:
		return 2
	default:
		return 0
	}
}

// UserProfile holds a user's fitness goals and preferences along with the
// lifetime counters the workout-completion flow maintains.
type UserProfile struct {
	UserID                string     `json:"user_id" bson:"user_id"`
	Name                  string     `json:"name" bson:"name"`
	FitnessGoal           Goal       `json:"fitness_goal" bson:"fitness_goal"`
	ExperienceLevel       Experience `json:"experience_level" bson:"experience_level"`
	DaysPerWeek           int        `json:"days_per_week" bson:"days_per_week"`
	SessionDuration       int        `json:"session_duration" bson:"session_duration"` // minutes
	InjuriesLimitations   string     `json:"injuries_limitations" bson:"injuries_limitations"`
	PreferredMuscleGroups []string   `json:"preferred_muscle_groups,omitempty" bson:"preferred_muscle_groups,omitempty"`
	GymID                 string     `json:"gym_id" bson:"gym_id"`
	CreatedAt             time.Time  `json:"created_at" bson:"created_at"`
	TotalWorkouts         int        `json:"total_workouts" bson:"total_workouts"`
	CurrentStreak         int        `json:"current_streak" bson:"current_streak"`
	LastWorkoutDate       string     `json:"last_workout_date,omitempty" bson:"last_workout_date,omitempty"` // RFC 3339
}
