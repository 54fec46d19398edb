package jsonfile

import (
	"context"

	"github.com/Amaan1001/fitflow-ai/internal/domain"
	"github.com/Amaan1001/fitflow-ai/internal/repository"
)

const profilesFile = "user_profiles.json"

// profileRepository implements repository.ProfileRepository over a single
// JSON array document, one element per user.
type profileRepository struct {
	store *Store
}

// NewProfileRepository creates a flat-file profile repository.
func NewProfileRepository(store *Store) repository.ProfileRepository {
	return &profileRepository{store: store}
}

func (r *profileRepository) Upsert(ctx context.Context, profile *domain.UserProfile) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var profiles []domain.UserProfile
	if _, err := r.store.readJSON(profilesFile, &profiles); err != nil {
		return err
	}

	replaced := false
	for i := range profiles {
		if profiles[i].UserID == profile.UserID {
			profiles[i] = *profile
			replaced = true
			break
		}
	}
	if !replaced {
		profiles = append(profiles, *profile)
	}

	return r.store.writeJSON(profilesFile, profiles)
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var profiles []domain.UserProfile
	if _, err := r.store.readJSON(profilesFile, &profiles); err != nil {
		return nil, err
	}
	for i := range profiles {
		if profiles[i].UserID == userID {
			p := profiles[i]
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}
