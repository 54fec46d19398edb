package api

import (
	"errors"
	"net/http"

	"github.com/Amaan1001/fitflow-ai/internal/domain"
	"github.com/Amaan1001/fitflow-ai/internal/service"

	"github.com/gin-gonic/gin"
)

// ProfileHandler holds the profile service dependency.
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// SaveProfileRequest defines the expected JSON for creating or updating a profile.
type SaveProfileRequest struct {
	UserID              string   `json:"user_id" binding:"required"`
	Name                string   `json:"name" binding:"required"`
	FitnessGoal         string   `json:"fitness_goal" binding:"required,oneof=muscle_gain weight_loss strength general_fitness"`
	ExperienceLevel     string   `json:"experience_level" binding:"required,oneof=beginner intermediate advanced"`
	DaysPerWeek         int      `json:"days_per_week" binding:"required"`
	SessionDuration     int      `json:"session_duration"`
	InjuriesLimitations string   `json:"injuries_limitations"`
	PreferredMuscles    []string `json:"preferred_muscle_groups"`
	GymID               string   `json:"gym_id"`
}

// SaveProfile upserts a user profile. Counters on an existing profile are
// preserved server-side.
func (h *ProfileHandler) SaveProfile(c *gin.Context) {
	var req SaveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile := &domain.UserProfile{
		UserID:                req.UserID,
		Name:                  req.Name,
		FitnessGoal:           domain.Goal(req.FitnessGoal),
		ExperienceLevel:       domain.Experience(req.ExperienceLevel),
		DaysPerWeek:           req.DaysPerWeek,
		SessionDuration:       req.SessionDuration,
		InjuriesLimitations:   req.InjuriesLimitations,
		PreferredMuscleGroups: req.PreferredMuscles,
		GymID:                 req.GymID,
	}

	saved, err := h.profileService.SaveProfile(c.Request.Context(), profile)
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save profile"})
		return
	}
	c.JSON(http.StatusOK, saved)
}

// GetProfile returns a profile by user id.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.profileService.GetProfile(c.Request.Context(), c.Param("userID"))
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load profile"})
		return
	}
	c.JSON(http.StatusOK, profile)
}
