package jsonfile

import (
	"context"

	"github.com/Amaan1001/fitflow-ai/internal/domain"
	"github.com/Amaan1001/fitflow-ai/internal/repository"
)

const intensityFile = "workout_intensity.json"

// intensityRepository implements repository.IntensityRepository over one
// JSON object mapping user id to an ordered history slice.
type intensityRepository struct {
	store *Store
}

// NewIntensityRepository creates a flat-file intensity repository.
func NewIntensityRepository(store *Store) repository.IntensityRepository {
	return &intensityRepository{store: store}
}

func (r *intensityRepository) Append(ctx context.Context, userID string, rec domain.WorkoutIntensity) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	all := make(map[string][]domain.WorkoutIntensity)
	if _, err := r.store.readJSON(intensityFile, &all); err != nil {
		return err
	}

	history := append(all[userID], rec)
	if len(history) > repository.IntensityHistoryLimit {
		history = history[len(history)-repository.IntensityHistoryLimit:]
	}
	all[userID] = history

	return r.store.writeJSON(intensityFile, all)
}

func (r *intensityRepository) ListByUser(ctx context.Context, userID string) ([]domain.WorkoutIntensity, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	all := make(map[string][]domain.WorkoutIntensity)
	if _, err := r.store.readJSON(intensityFile, &all); err != nil {
		return nil, err
	}
	return all[userID], nil
}
