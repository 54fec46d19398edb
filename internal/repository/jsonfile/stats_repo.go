package jsonfile

import (
	"context"

	"github.com/Amaan1001/fitflow-ai/internal/domain"
	"github.com/Amaan1001/fitflow-ai/internal/repository"
)

const statsFile = "user_stats.json"

// statsRepository implements repository.StatsRepository over one JSON
// object keyed by user id.
type statsRepository struct {
	store *Store
}

// NewStatsRepository creates a flat-file stats repository.
func NewStatsRepository(store *Store) repository.StatsRepository {
	return &statsRepository{store: store}
}

func (r *statsRepository) Get(ctx context.Context, userID string) (*domain.UserStats, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	all := make(map[string]domain.UserStats)
	if _, err := r.store.readJSON(statsFile, &all); err != nil {
		return nil, err
	}
	stats, ok := all[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if stats.MuscleExercises == nil {
		stats.MuscleExercises = make(map[string]int)
	}
	return &stats, nil
}

func (r *statsRepository) Save(ctx context.Context, stats *domain.UserStats) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	all := make(map[string]domain.UserStats)
	if _, err := r.store.readJSON(statsFile, &all); err != nil {
		return err
	}
	all[stats.UserID] = *stats
	return r.store.writeJSON(statsFile, all)
}
