package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Amaan1001/fitflow-ai/internal/domain"
	"github.com/Amaan1001/fitflow-ai/internal/llm"
)

// SupplementSource is the catalog capability the coach needs.
type SupplementSource interface {
	SupplementsForGoal(goal domain.Goal) []domain.Supplement
}

// CoachService answers free-form questions and generates nutrition advice
// through the text-generation collaborator.
type CoachService interface {
	Chat(ctx context.Context, userID, message string) (string, error)
	DietPlan(ctx context.Context, userID string) (string, error)
	RecommendSupplements(ctx context.Context, userID string) (string, error)
}

type coachService struct {
	profiles    ProfileService
	stats       GamificationService
	supplements SupplementSource
	generator   llm.TextGenerator
}

// NewCoachService creates a coach service.
func NewCoachService(profiles ProfileService, stats GamificationService, supplements SupplementSource, generator llm.TextGenerator) CoachService {
	return &coachService{
		profiles:    profiles,
		stats:       stats,
		supplements: supplements,
		generator:   generator,
	}
}

// Chat answers a question with the user's profile and progress as context.
func (s *coachService) Chat(ctx context.Context, userID, message string) (string, error) {
	context, err := s.userContext(ctx, userID)
	if err != nil {
		return "", err
	}

	prompt := fmt.Sprintf(`You are FitFlow AI, an expert fitness concierge and certified personal trainer.

User Profile:
%s

Answer the question directly and practically. Do not mention this profile unless it is relevant to the question.

Question: %s`, context, message)

	return s.generator.Generate(ctx, prompt)
}

// DietPlan asks the collaborator for a one-day meal plan matched to the
// user's goal and training frequency.
func (s *coachService) DietPlan(ctx context.Context, userID string) (string, error) {
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return "", err
	}

	prompt := fmt.Sprintf(`You are a sports nutrition expert. Create a one-day meal plan.

Goal: %s
Experience: %s
Training frequency: %d days per week
Session duration: %d minutes
Limitations: %s

Provide breakfast, lunch, dinner and two snacks with approximate calories and protein per meal, plus a daily total.`,
		readable(string(profile.FitnessGoal)),
		readable(string(profile.ExperienceLevel)),
		profile.DaysPerWeek,
		profile.SessionDuration,
		orNone(profile.InjuriesLimitations))

	return s.generator.Generate(ctx, prompt)
}

// RecommendSupplements explains the catalog's picks for the user's goal.
func (s *coachService) RecommendSupplements(ctx context.Context, userID string) (string, error) {
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return "", err
	}

	matching := s.supplements.SupplementsForGoal(profile.FitnessGoal)
	var lines []string
	for _, supp := range matching {
		lines = append(lines, fmt.Sprintf("- %s: %s", supp.Name, supp.Description))
	}
	if len(lines) == 0 {
		lines = append(lines, "- none on file")
	}

	prompt := fmt.Sprintf(`You are a fitness nutrition expert.

Goal: %s

Available Supplements:
%s

List:
- Top 2-3 supplements
- Why each helps
- When/how to take them`,
		readable(string(profile.FitnessGoal)),
		strings.Join(lines, "\n"))

	return s.generator.Generate(ctx, prompt)
}

func (s *coachService) userContext(ctx context.Context, userID string) (string, error) {
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return "", err
	}
	stats, err := s.stats.Stats(ctx, userID)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(`- Name: %s
- Goal: %s
- Experience: %s
- Training Frequency: %d days per week
- Session Duration: %d minutes
- Limitations: %s
- Total Workouts: %d
- Current Streak: %d days
- Level: %d (%d XP)`,
		profile.Name,
		readable(string(profile.FitnessGoal)),
		readable(string(profile.ExperienceLevel)),
		profile.DaysPerWeek,
		profile.SessionDuration,
		orNone(profile.InjuriesLimitations),
		stats.TotalWorkouts,
		stats.CurrentStreak,
		stats.Level, stats.XP), nil
}

func readable(s string) string {
	return strings.ReplaceAll(s, "_", " ")
}

func orNone(s string) string {
	if s == "" {
		return "None"
	}
	return s
}
