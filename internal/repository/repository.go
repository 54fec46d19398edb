package repository

import (
	"context"
	"time"

	"github.com/Amaan1001/fitflow-ai/internal/domain"
)

// Error constants for the repository layer.
var (
	ErrNotFound   = RepositoryError("not found")
	ErrSaveFailed = RepositoryError("save failed")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// IntensityHistoryLimit caps the per-user intensity history; the oldest
// entries are evicted first on append. Workout logs deliberately carry no
// such cap.
const IntensityHistoryLimit = 90

// ProfileRepository stores user profiles with upsert-by-user-id semantics.
type ProfileRepository interface {
	Upsert(ctx context.Context, profile *domain.UserProfile) error
	GetByUserID(ctx context.Context, userID string) (*domain.UserProfile, error)
}

// WorkoutLogRepository stores completed-workout records. Append-only.
type WorkoutLogRepository interface {
	Append(ctx context.Context, log *domain.WorkoutLog) error
	// ListByUser returns the user's logs sorted by date, newest first.
	ListByUser(ctx context.Context, userID string) ([]domain.WorkoutLog, error)
}

// StatsRepository stores gamification stats, one record per user.
type StatsRepository interface {
	// Get returns ErrNotFound for a user with no stats record yet.
	Get(ctx context.Context, userID string) (*domain.UserStats, error)
	Save(ctx context.Context, stats *domain.UserStats) error
}

// IntensityRepository stores per-user intensity history in recording order,
// truncated to the most recent IntensityHistoryLimit entries.
type IntensityRepository interface {
	Append(ctx context.Context, userID string, rec domain.WorkoutIntensity) error
	ListByUser(ctx context.Context, userID string) ([]domain.WorkoutIntensity, error)
}

// UnlockRepository stores the per-user set of unlocked achievement ids with
// their unlock timestamps. An id is unlocked at most once.
type UnlockRepository interface {
	// Get returns an empty map (not an error) for users with no unlocks.
	Get(ctx context.Context, userID string) (map[string]time.Time, error)
	Save(ctx context.Context, userID string, unlocked map[string]time.Time) error
}
