package domain

import "time"

// WorkoutLog records one completed training day. Logs are append-only and
// never mutated after creation.
type WorkoutLog struct {
	LogID              string    `json:"log_id" bson:"log_id"`
	UserID             string    `json:"user_id" bson:"user_id"`
	Date               time.Time `json:"date" bson:"date"`
	DayNumber          int       `json:"day_number" bson:"day_number"`
	ExercisesCompleted []string  `json:"exercises_completed" bson:"exercises_completed"`
	TotalExercises     int       `json:"total_exercises" bson:"total_exercises"`
	DurationMinutes    int       `json:"duration_minutes" bson:"duration_minutes"`
	CaloriesBurned     int       `json:"calories_burned" bson:"calories_burned"`
	Notes              string    `json:"notes,omitempty" bson:"notes,omitempty"`
}
