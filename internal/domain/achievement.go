package domain

// AchievementCategory groups achievements by the counter that unlocks them.
type AchievementCategory string

const (
	CategoryWorkout  AchievementCategory = "workout"
	CategoryStreak   AchievementCategory = "streak"
	CategoryProgress AchievementCategory = "progress"
	CategoryMuscle   AchievementCategory = "muscle"
)

// Achievement is a static catalog entry plus per-user unlock state. The
// catalog itself is immutable; only Unlocked and UnlockedDate vary per user.
type Achievement struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Description  string              `json:"description"`
	Icon         string              `json:"icon"`
	Category     AchievementCategory `json:"category"`
	Requirement  int                 `json:"requirement"`
	Unlocked     bool                `json:"unlocked"`
	UnlockedDate string              `json:"unlocked_date,omitempty"` // RFC 3339
}
