package jsonfile

import (
	"context"
	"fmt"
	"time"

	"github.com/Amaan1001/fitflow-ai/internal/repository"
)

// unlockRepository implements repository.UnlockRepository with one
// unlocked_<user>.json document per user mapping achievement id to the
// unlock timestamp.
type unlockRepository struct {
	store *Store
}

// NewUnlockRepository creates a flat-file achievement-unlock repository.
func NewUnlockRepository(store *Store) repository.UnlockRepository {
	return &unlockRepository{store: store}
}

func unlockFile(userID string) string {
	return fmt.Sprintf("unlocked_%s.json", userID)
}

func (r *unlockRepository) Get(ctx context.Context, userID string) (map[string]time.Time, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	raw := make(map[string]string)
	if _, err := r.store.readJSON(unlockFile(userID), &raw); err != nil {
		return nil, err
	}

	unlocked := make(map[string]time.Time, len(raw))
	for id, ts := range raw {
		t, err := time.Parse(time.RFC3339, ts)
		if err != nil {
			return nil, fmt.Errorf("unlock date for %q: %w", id, err)
		}
		unlocked[id] = t
	}
	return unlocked, nil
}

func (r *unlockRepository) Save(ctx context.Context, userID string, unlocked map[string]time.Time) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	raw := make(map[string]string, len(unlocked))
	for id, t := range unlocked {
		raw[id] = t.Format(time.RFC3339)
	}
	return r.store.writeJSON(unlockFile(userID), raw)
}
