package jsonfile

import (
	"context"
	"sort"

	"github.com/Amaan1001/fitflow-ai/internal/domain"
	"github.com/Amaan1001/fitflow-ai/internal/repository"
)

const logsFile = "workout_logs.json"

// workoutLogRepository implements repository.WorkoutLogRepository over a
// single JSON array shared by all users. Logs are append-only and grow
// without bound.
type workoutLogRepository struct {
	store *Store
}

// NewWorkoutLogRepository creates a flat-file workout log repository.
func NewWorkoutLogRepository(store *Store) repository.WorkoutLogRepository {
	return &workoutLogRepository{store: store}
}

func (r *workoutLogRepository) Append(ctx context.Context, log *domain.WorkoutLog) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var logs []domain.WorkoutLog
	if _, err := r.store.readJSON(logsFile, &logs); err != nil {
		return err
	}
	logs = append(logs, *log)
	return r.store.writeJSON(logsFile, logs)
}

func (r *workoutLogRepository) ListByUser(ctx context.Context, userID string) ([]domain.WorkoutLog, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var logs []domain.WorkoutLog
	if _, err := r.store.readJSON(logsFile, &logs); err != nil {
		return nil, err
	}

	var mine []domain.WorkoutLog
	for _, l := range logs {
		if l.UserID == userID {
			mine = append(mine, l)
		}
	}
	sort.Slice(mine, func(i, j int) bool {
		return mine[i].Date.After(mine[j].Date)
	})
	return mine, nil
}
