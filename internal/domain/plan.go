package domain

import "time"

// PlannedExercise is one slot in a day plan with its assigned sets and reps.
// For cardio exercises Reps denotes minutes; for plank holds, seconds.
type PlannedExercise struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	MuscleGroup  string   `json:"muscle_group"`
	Sets         int      `json:"sets"`
	Reps         int      `json:"reps"`
	Instructions string   `json:"instructions"`
	VideoURL     string   `json:"video_url,omitempty"`
	GifURL       string   `json:"gif_url,omitempty"`
	Equipment    []string `json:"equipment"`
	Difficulty   Experience `json:"difficulty"`
	Alternatives []string `json:"alternatives,omitempty"`
}

// DayPlan is one training day of a weekly plan.
type DayPlan struct {
	Day               int               `json:"day"`
	MuscleGroups      []string          `json:"muscle_groups"`
	Exercises         []PlannedExercise `json:"exercises"`
	EstimatedDuration int               `json:"estimated_duration"` // minutes, includes warm-up/cool-down
	EstimatedCalories int               `json:"estimated_calories"`
}

// WorkoutPlan is a full weekly plan. Plans are regenerated wholesale on
// demand and never partially mutated.
type WorkoutPlan struct {
	UserID      string    `json:"user_id"`
	WeeklyPlan  []DayPlan `json:"weekly_plan"`
	TotalDays   int       `json:"total_days"`
	GeneratedAt time.Time `json:"generated_at"`
}
