package api

import (
	"errors"
	"net/http"

	"github.com/Amaan1001/fitflow-ai/internal/service"

	"github.com/gin-gonic/gin"
)

// PlanHandler holds the plan and profile service dependencies.
type PlanHandler struct {
	planService    service.PlanService
	profileService service.ProfileService
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(planService service.PlanService, profileService service.ProfileService) *PlanHandler {
	return &PlanHandler{planService: planService, profileService: profileService}
}

// GeneratePlanRequest selects the profile to generate for.
type GeneratePlanRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

// GeneratePlan builds a fresh weekly plan for the user. Repeated calls may
// yield different exercise choices.
func (h *PlanHandler) GeneratePlan(c *gin.Context) {
	var req GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), req.UserID)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load profile"})
		return
	}

	plan, err := h.planService.GeneratePlan(c.Request.Context(), profile)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate plan"})
		return
	}
	c.JSON(http.StatusOK, plan)
}

// SwapExerciseRequest selects the gym whose equipment constrains the swap.
type SwapExerciseRequest struct {
	GymID string `json:"gym_id" binding:"required"`
}

// SwapExercise returns a random alternative for an exercise that can be
// performed at the given gym.
func (h *PlanHandler) SwapExercise(c *gin.Context) {
	var req SwapExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	alt, err := h.planService.SwapExercise(c.Param("id"), req.GymID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrExerciseNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "exercise not found"})
		case errors.Is(err, service.ErrNoAlternatives):
			c.JSON(http.StatusNotFound, gin.H{"error": "no alternatives available"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to swap exercise"})
		}
		return
	}
	c.JSON(http.StatusOK, alt)
}
