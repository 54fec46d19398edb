package api

import (
	"errors"
	"net/http"

	"github.com/Amaan1001/fitflow-ai/internal/service"

	"github.com/gin-gonic/gin"
)

// WorkoutHandler holds the workout service dependency.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// CompleteWorkoutRequest defines the expected JSON for marking a day complete.
type CompleteWorkoutRequest struct {
	UserID               string   `json:"user_id" binding:"required"`
	DayNumber            int      `json:"day_number" binding:"required,min=1"`
	CompletedExerciseIDs []string `json:"completed_exercise_ids"`
	TotalExercises       int      `json:"total_exercises"`
	TotalSets            int      `json:"total_sets"`
	TotalReps            int      `json:"total_reps"`
	MuscleGroups         []string `json:"muscle_groups"`
	DurationMinutes      int      `json:"duration_minutes"`
	CaloriesBurned       int      `json:"calories_burned"`
	Notes                string   `json:"notes"`
}

// CompleteWorkout records a finished training day: log, profile counters,
// gamification and intensity in one call.
func (h *WorkoutHandler) CompleteWorkout(c *gin.Context) {
	var req CompleteWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	outcome, err := h.workoutService.CompleteWorkout(c.Request.Context(), service.CompleteWorkoutInput{
		UserID:               req.UserID,
		DayNumber:            req.DayNumber,
		CompletedExerciseIDs: req.CompletedExerciseIDs,
		TotalExercises:       req.TotalExercises,
		TotalSets:            req.TotalSets,
		TotalReps:            req.TotalReps,
		MuscleGroups:         req.MuscleGroups,
		DurationMinutes:      req.DurationMinutes,
		CaloriesBurned:       req.CaloriesBurned,
		Notes:                req.Notes,
	})
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record workout"})
		return
	}
	c.JSON(http.StatusOK, outcome)
}

// History returns the user's workout logs, newest first.
func (h *WorkoutHandler) History(c *gin.Context) {
	logs, err := h.workoutService.History(c.Request.Context(), c.Param("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load workout history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": logs})
}
