package service

import (
	"context"
	"testing"
	"time"

	"github.com/Amaan1001/fitflow-ai/internal/catalog"
	"github.com/Amaan1001/fitflow-ai/internal/domain"
	"github.com/Amaan1001/fitflow-ai/internal/repository/jsonfile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// promptRecorder is a TextGenerator that captures the prompt it receives.
type promptRecorder struct {
	prompt string
	reply  string
	err    error
}

func (p *promptRecorder) Generate(ctx context.Context, prompt string) (string, error) {
	p.prompt = prompt
	return p.reply, p.err
}

func newCoachFixture(t *testing.T) (CoachService, *promptRecorder, ProfileService) {
	t.Helper()
	store, err := jsonfile.NewStore(t.TempDir())
	require.NoError(t, err)

	clock := func() time.Time { return recoveryNow }
	profiles := &profileService{profileRepo: jsonfile.NewProfileRepository(store), now: clock}
	stats := &gamificationService{
		statsRepo:  jsonfile.NewStatsRepository(store),
		unlockRepo: jsonfile.NewUnlockRepository(store),
		logger:     zap.NewNop(),
		now:        clock,
	}
	supplements := catalog.New(nil, nil, []domain.Supplement{
		{ID: "whey", Name: "Whey Protein", Description: "Supports muscle repair.", RecommendedFor: []domain.Goal{domain.GoalMuscleGain}},
	})

	recorder := &promptRecorder{reply: "coach says hi"}
	return NewCoachService(profiles, stats, supplements, recorder), recorder, profiles
}

func coachTestProfile() *domain.UserProfile {
	return &domain.UserProfile{
		UserID:          "u1",
		Name:            "Alex",
		FitnessGoal:     domain.GoalMuscleGain,
		ExperienceLevel: domain.ExperienceIntermediate,
		DaysPerWeek:     4,
		SessionDuration: 60,
	}
}

func TestChatIncludesUserContext(t *testing.T) {
	coach, recorder, profiles := newCoachFixture(t)
	ctx := context.Background()

	_, err := profiles.SaveProfile(ctx, coachTestProfile())
	require.NoError(t, err)

	reply, err := coach.Chat(ctx, "u1", "How much protein should I eat?")
	require.NoError(t, err)

	assert.Equal(t, "coach says hi", reply)
	assert.Contains(t, recorder.prompt, "Alex")
	assert.Contains(t, recorder.prompt, "muscle gain")
	assert.Contains(t, recorder.prompt, "How much protein should I eat?")
}

func TestChatUnknownUser(t *testing.T) {
	coach, _, _ := newCoachFixture(t)

	_, err := coach.Chat(context.Background(), "ghost", "hi")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestDietPlanPrompt(t *testing.T) {
	coach, recorder, profiles := newCoachFixture(t)
	ctx := context.Background()

	profile := coachTestProfile()
	profile.InjuriesLimitations = "bad knee"
	_, err := profiles.SaveProfile(ctx, profile)
	require.NoError(t, err)

	_, err = coach.DietPlan(ctx, "u1")
	require.NoError(t, err)

	assert.Contains(t, recorder.prompt, "muscle gain")
	assert.Contains(t, recorder.prompt, "4 days per week")
	assert.Contains(t, recorder.prompt, "bad knee")
}

func TestRecommendSupplementsListsCatalogMatches(t *testing.T) {
	coach, recorder, profiles := newCoachFixture(t)
	ctx := context.Background()

	_, err := profiles.SaveProfile(ctx, coachTestProfile())
	require.NoError(t, err)

	_, err = coach.RecommendSupplements(ctx, "u1")
	require.NoError(t, err)

	assert.Contains(t, recorder.prompt, "Whey Protein")
	assert.Contains(t, recorder.prompt, "Supports muscle repair.")
}

func TestRecommendSupplementsWithEmptyCatalog(t *testing.T) {
	store, err := jsonfile.NewStore(t.TempDir())
	require.NoError(t, err)

	profiles := &profileService{profileRepo: jsonfile.NewProfileRepository(store), now: time.Now}
	stats := &gamificationService{
		statsRepo:  jsonfile.NewStatsRepository(store),
		unlockRepo: jsonfile.NewUnlockRepository(store),
		logger:     zap.NewNop(),
		now:        time.Now,
	}
	recorder := &promptRecorder{reply: "nothing to suggest"}
	coach := NewCoachService(profiles, stats, catalog.New(nil, nil, nil), recorder)

	ctx := context.Background()
	_, err = profiles.SaveProfile(ctx, coachTestProfile())
	require.NoError(t, err)

	_, err = coach.RecommendSupplements(ctx, "u1")
	require.NoError(t, err)
	assert.Contains(t, recorder.prompt, "none on file")
}
