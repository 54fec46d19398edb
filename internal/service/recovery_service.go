package service

import (
	"context"
	"math"
	"time"

	"github.com/Amaan1001/fitflow-ai/internal/domain"
	"github.com/Amaan1001/fitflow-ai/internal/repository"
)

// Difficulty multipliers applied to raw volume when scoring intensity.
var difficultyMultipliers = map[domain.Experience]float64{
	domain.ExperienceBeginner:     0.7,
	domain.ExperienceIntermediate: 1.0,
	domain.ExperienceAdvanced:     1.3,
}

// Ascending intensity thresholds for load classification.
const (
	thresholdLow      = 3.0
	thresholdModerate = 6.0
	thresholdHigh     = 8.0
	thresholdVeryHigh = 9.5
)

// WorkoutSummary is the per-session input to intensity scoring.
type WorkoutSummary struct {
	TotalSets    int
	TotalReps    int
	MuscleGroups []string
}

// MuscleRecovery classifies one muscle group by recency.
type MuscleRecovery struct {
	DaysSinceWorkout int    `json:"days_since_workout"`
	LastWorkout      string `json:"last_workout"`
	Status           string `json:"status"`
	Color            string `json:"color"`
}

// LoadReport summarizes the last seven days of training load.
type LoadReport struct {
	Status         string  `json:"status"`
	AvgIntensity   float64 `json:"avg_intensity,omitempty"`
	TotalVolume    float64 `json:"total_volume,omitempty"`
	WorkoutCount   int     `json:"workout_count,omitempty"`
	Recommendation string  `json:"recommendation"`
}

// DeloadPlan is the fixed deload-week template produced when a deload is due.
type DeloadPlan struct {
	Duration           string `json:"duration"`
	VolumeReduction    string `json:"volume_reduction"`
	IntensityReduction string `json:"intensity_reduction"`
	Focus              string `json:"focus"`
	Benefits           string `json:"benefits"`
}

// DeloadReport is the result of deload detection.
type DeloadReport struct {
	NeedsDeload       bool        `json:"needs_deload"`
	Reason            string      `json:"reason"`
	WeeklyIntensities []float64   `json:"weekly_intensities,omitempty"`
	DeloadPlan        *DeloadPlan `json:"deload_week_suggestion,omitempty"`
}

// RestDayReport is the result of the rest-day recommendation.
type RestDayReport struct {
	ShouldRest      bool    `json:"should_rest"`
	Reason          string  `json:"reason"`
	AvgIntensity    float64 `json:"avg_intensity,omitempty"`
	ConsecutiveDays int     `json:"consecutive_days,omitempty"`
}

// RecoveryService converts logged workouts into per-muscle recency state and
// load-based recommendations.
type RecoveryService interface {
	RecordIntensity(ctx context.Context, userID string, summary WorkoutSummary, level domain.Experience) (domain.WorkoutIntensity, error)
	MuscleStatus(ctx context.Context, userID string) (map[string]MuscleRecovery, error)
	WeeklyLoad(ctx context.Context, userID string) (*LoadReport, error)
	DeloadCheck(ctx context.Context, userID string) (*DeloadReport, error)
	RestDayCheck(ctx context.Context, userID string) (*RestDayReport, error)
}

type recoveryService struct {
	intensityRepo repository.IntensityRepository
	now           func() time.Time
}

// NewRecoveryService creates a recovery analyzer.
func NewRecoveryService(intensityRepo repository.IntensityRepository) RecoveryService {
	return &recoveryService{
		intensityRepo: intensityRepo,
		now:           time.Now,
	}
}

// RecordIntensity scores the session and appends it to the user's bounded
// intensity history.
func (s *recoveryService) RecordIntensity(ctx context.Context, userID string, summary WorkoutSummary, level domain.Experience) (domain.WorkoutIntensity, error) {
	rec := s.calculateIntensity(summary, level)
	if err := s.intensityRepo.Append(ctx, userID, rec); err != nil {
		return domain.WorkoutIntensity{}, err
	}
	return rec, nil
}

// calculateIntensity derives the intensity score: volume adjusted by the
// difficulty multiplier, scaled so ~150 adjusted reps is moderate, capped at
// 10, then boosted 10% for sessions spanning more than two muscle groups.
// The boost is applied after the cap, so the score can read slightly above 10.
func (s *recoveryService) calculateIntensity(summary WorkoutSummary, level domain.Experience) domain.WorkoutIntensity {
	volume := float64(summary.TotalSets * summary.TotalReps)

	mult, ok := difficultyMultipliers[level]
	if !ok {
		mult = 1.0
	}
	adjustedVolume := volume * mult

	score := math.Min(10.0, adjustedVolume/150*6.0)
	if len(summary.MuscleGroups) > 2 {
		score *= 1.1
	}

	return domain.WorkoutIntensity{
		Date:            s.now().Format(time.RFC3339),
		TotalSets:       summary.TotalSets,
		TotalReps:       summary.TotalReps,
		EstimatedVolume: adjustedVolume,
		MuscleGroups:    summary.MuscleGroups,
		IntensityScore:  round2(score),
	}
}

// recentIntensities returns history entries recorded within the last N days,
// preserving recording order.
func (s *recoveryService) recentIntensities(ctx context.Context, userID string, days int) ([]domain.WorkoutIntensity, error) {
	history, err := s.intensityRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	cutoff := s.now().AddDate(0, 0, -days)
	var recent []domain.WorkoutIntensity
	for _, rec := range history {
		t, err := time.Parse(time.RFC3339, rec.Date)
		if err != nil {
			continue
		}
		if !t.Before(cutoff) {
			recent = append(recent, rec)
		}
	}
	return recent, nil
}

// MuscleStatus classifies each muscle group worked in the last seven days by
// days elapsed since its most recent session. Groups absent from the window
// have no entry.
func (s *recoveryService) MuscleStatus(ctx context.Context, userID string) (map[string]MuscleRecovery, error) {
	recent, err := s.recentIntensities(ctx, userID, 7)
	if err != nil {
		return nil, err
	}

	lastWorked := make(map[string]time.Time)
	for _, rec := range recent {
		t, err := time.Parse(time.RFC3339, rec.Date)
		if err != nil {
			continue
		}
		for _, muscle := range rec.MuscleGroups {
			if prev, ok := lastWorked[muscle]; !ok || t.After(prev) {
				lastWorked[muscle] = t
			}
		}
	}

	status := make(map[string]MuscleRecovery, len(lastWorked))
	for muscle, last := range lastWorked {
		daysAgo := int(s.now().Sub(last).Hours() / 24)

		var state, color string
		switch {
		case daysAgo <= 2:
			state, color = "recently_worked", "red"
		case daysAgo <= 4:
			state, color = "recovering", "orange"
		case daysAgo <= 6:
			state, color = "ready", "yellow"
		default:
			state, color = "needs_attention", "blue"
		}

		status[muscle] = MuscleRecovery{
			DaysSinceWorkout: daysAgo,
			LastWorkout:      last.Format(time.RFC3339),
			Status:           state,
			Color:            color,
		}
	}
	return status, nil
}

// WeeklyLoad classifies the average intensity of the last seven days.
func (s *recoveryService) WeeklyLoad(ctx context.Context, userID string) (*LoadReport, error) {
	recent, err := s.recentIntensities(ctx, userID, 7)
	if err != nil {
		return nil, err
	}
	if len(recent) == 0 {
		return &LoadReport{
			Status:         "no_data",
			Recommendation: "Start tracking your workouts to get personalized recovery insights!",
		}, nil
	}

	var totalScore, totalVolume float64
	for _, rec := range recent {
		totalScore += rec.IntensityScore
		totalVolume += rec.EstimatedVolume
	}
	avg := totalScore / float64(len(recent))

	var status, recommendation string
	switch {
	case avg < thresholdModerate:
		status = "low_intensity"
		recommendation = "You have room to push harder! Consider increasing weight or volume."
	case avg < thresholdHigh:
		status = "optimal"
		recommendation = "Great balance of intensity and volume. Keep it up!"
	case avg < thresholdVeryHigh:
		status = "high_intensity"
		recommendation = "You're training hard! Make sure to get adequate rest and nutrition."
	default:
		status = "very_high_intensity"
		recommendation = "Very high intensity detected. Consider a deload week to prevent overtraining."
	}

	return &LoadReport{
		Status:         status,
		AvgIntensity:   round2(avg),
		TotalVolume:    math.Round(totalVolume),
		WorkoutCount:   len(recent),
		Recommendation: recommendation,
	}, nil
}

// DeloadCheck partitions up to 21 days of history into three consecutive
// 7-entry windows (most recent first) and flags a deload when intensity has
// stayed high across them. At least 6 entries are required to evaluate.
func (s *recoveryService) DeloadCheck(ctx context.Context, userID string) (*DeloadReport, error) {
	recent, err := s.recentIntensities(ctx, userID, 21)
	if err != nil {
		return nil, err
	}
	if len(recent) < 6 {
		return &DeloadReport{NeedsDeload: false, Reason: "Insufficient data"}, nil
	}

	n := len(recent)
	windows := [][]domain.WorkoutIntensity{recent[maxInt(0, n-7):]}
	if n >= 14 {
		windows = append(windows, recent[n-14:n-7])
	}
	if n >= 21 {
		windows = append(windows, recent[n-21:n-14])
	}

	weeklyAvgs := make([]float64, 0, len(windows))
	for _, window := range windows {
		var sum float64
		for _, rec := range window {
			sum += rec.IntensityScore
		}
		weeklyAvgs = append(weeklyAvgs, round2(sum/float64(len(window))))
	}

	highWeeks := 0
	for _, avg := range weeklyAvgs {
		if avg > thresholdHigh {
			highWeeks++
		}
	}

	report := &DeloadReport{WeeklyIntensities: weeklyAvgs}
	switch {
	case highWeeks >= 3:
		report.NeedsDeload = true
		report.Reason = "You've maintained high intensity for 3+ weeks. Time for a deload!"
	case highWeeks >= 2 && weeklyAvgs[0] > thresholdVeryHigh:
		report.NeedsDeload = true
		report.Reason = "Recent very high intensity after sustained hard training. Deload recommended."
	}
	if report.NeedsDeload {
		report.DeloadPlan = deloadPlan()
	}
	return report, nil
}

func deloadPlan() *DeloadPlan {
	return &DeloadPlan{
		Duration:           "1 week",
		VolumeReduction:    "40-50%",
		IntensityReduction: "Keep weight at 60-70% of normal",
		Focus:              "Active recovery, mobility work, and technique refinement",
		Benefits:           "Muscle repair, CNS recovery, prevent overtraining",
	}
}

// RestDayCheck recommends rest after three high-intensity entries in the
// last three days, or when their average exceeds the very-high threshold.
func (s *recoveryService) RestDayCheck(ctx context.Context, userID string) (*RestDayReport, error) {
	recent, err := s.recentIntensities(ctx, userID, 3)
	if err != nil {
		return nil, err
	}
	if len(recent) == 0 {
		return &RestDayReport{ShouldRest: false, Reason: "No recent workout data."}, nil
	}

	allHigh := true
	var sum float64
	for _, rec := range recent {
		if rec.IntensityScore <= thresholdHigh {
			allHigh = false
		}
		sum += rec.IntensityScore
	}
	avg := sum / float64(len(recent))

	report := &RestDayReport{
		AvgIntensity:    round2(avg),
		ConsecutiveDays: len(recent),
	}
	switch {
	case len(recent) >= 3 && allHigh:
		report.ShouldRest = true
		report.Reason = "3+ consecutive high-intensity days. Rest recommended for recovery."
	case avg > thresholdVeryHigh:
		report.ShouldRest = true
		report.Reason = "Very high recent intensity. A rest day will optimize gains."
	}
	return report, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
