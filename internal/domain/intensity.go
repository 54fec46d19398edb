package domain

// WorkoutIntensity is a derived per-completion training-load record.
// IntensityScore is nominally on a 0-10 scale; the compound multi-muscle
// boost is applied after the cap, so scores up to 11 can occur.
type WorkoutIntensity struct {
	Date            string   `json:"date" bson:"date"` // RFC 3339
	TotalSets       int      `json:"total_sets" bson:"total_sets"`
	TotalReps       int      `json:"total_reps" bson:"total_reps"`
	EstimatedVolume float64  `json:"estimated_volume" bson:"estimated_volume"`
	MuscleGroups    []string `json:"muscle_groups" bson:"muscle_groups"`
	IntensityScore  float64  `json:"intensity_score" bson:"intensity_score"`
}
