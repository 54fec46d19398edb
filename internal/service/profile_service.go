package service

import (
	"context"
	"errors"
	"time"

	"github.com/Amaan1001/fitflow-ai/internal/domain"
	"github.com/Amaan1001/fitflow-ai/internal/repository"
)

// ErrValidationFailed signals a profile that cannot be saved as given.
var ErrValidationFailed = errors.New("profile validation failed")

// ProfileService manages user profiles. Lifetime counters on the profile are
// owned by the completion flow and survive profile edits.
type ProfileService interface {
	SaveProfile(ctx context.Context, profile *domain.UserProfile) (*domain.UserProfile, error)
	GetProfile(ctx context.Context, userID string) (*domain.UserProfile, error)
}

type profileService struct {
	profileRepo repository.ProfileRepository
	now         func() time.Time
}

// NewProfileService creates a profile service.
func NewProfileService(profileRepo repository.ProfileRepository) ProfileService {
	return &profileService{profileRepo: profileRepo, now: time.Now}
}

// SaveProfile upserts the profile. For an existing user the cumulative
// counters and creation time are carried over from the stored record.
func (s *profileService) SaveProfile(ctx context.Context, profile *domain.UserProfile) (*domain.UserProfile, error) {
	if profile.UserID == "" || profile.Name == "" {
		return nil, ErrValidationFailed
	}

	existing, err := s.profileRepo.GetByUserID(ctx, profile.UserID)
	switch {
	case err == nil:
		profile.CreatedAt = existing.CreatedAt
		profile.TotalWorkouts = existing.TotalWorkouts
		profile.CurrentStreak = existing.CurrentStreak
		profile.LastWorkoutDate = existing.LastWorkoutDate
	case errors.Is(err, repository.ErrNotFound):
		profile.CreatedAt = s.now()
	default:
		return nil, err
	}

	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *profileService) GetProfile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}
