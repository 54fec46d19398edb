package api

import (
	"errors"
	"net/http"

	"github.com/Amaan1001/fitflow-ai/internal/service"

	"github.com/gin-gonic/gin"
)

// CoachHandler holds the coach service dependency.
type CoachHandler struct {
	coachService service.CoachService
}

// NewCoachHandler creates a new CoachHandler.
func NewCoachHandler(coachService service.CoachService) *CoachHandler {
	return &CoachHandler{coachService: coachService}
}

// ChatRequest defines the expected JSON for a coach question.
type ChatRequest struct {
	UserID  string `json:"user_id" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// Chat answers a free-form question through the text-generation collaborator.
// Collaborator failures surface as 502.
func (h *CoachHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	answer, err := h.coachService.Chat(c.Request.Context(), req.UserID, req.Message)
	if err != nil {
		h.writeCoachError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"answer": answer})
}

// DietRequest selects the user to generate a meal plan for.
type DietRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

// DietPlan generates a one-day meal plan matched to the user's goal.
func (h *CoachHandler) DietPlan(c *gin.Context) {
	var req DietRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := h.coachService.DietPlan(c.Request.Context(), req.UserID)
	if err != nil {
		h.writeCoachError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"diet_plan": plan})
}

// RecommendSupplements explains supplement picks for the user's goal.
func (h *CoachHandler) RecommendSupplements(c *gin.Context) {
	var req DietRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	advice, err := h.coachService.RecommendSupplements(c.Request.Context(), req.UserID)
	if err != nil {
		h.writeCoachError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommendation": advice})
}

func (h *CoachHandler) writeCoachError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrProfileNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}
	c.JSON(http.StatusBadGateway, gin.H{"error": "coach is unavailable"})
}
