package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Amaan1001/fitflow-ai/internal/catalog"
	"github.com/Amaan1001/fitflow-ai/internal/domain"

	"github.com/gin-gonic/gin"
)

// ExerciseHandler exposes the exercise and supplement reference data.
type ExerciseHandler struct {
	catalog *catalog.Catalog
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(cat *catalog.Catalog) *ExerciseHandler {
	return &ExerciseHandler{catalog: cat}
}

// Search queries the catalog. Query parameters:
// q, gym_id, muscle_groups (comma separated), difficulty, limit.
// When gym_id is set, exercises needing equipment the gym lacks are excluded.
func (h *ExerciseHandler) Search(c *gin.Context) {
	var equipment []string
	if gymID := c.Query("gym_id"); gymID != "" {
		equipment = h.catalog.GymEquipment(gymID)
	}

	var muscleGroups []string
	if raw := c.Query("muscle_groups"); raw != "" {
		muscleGroups = strings.Split(raw, ",")
	}

	limit := 15
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	exercises := h.catalog.Search(catalog.SearchFilter{
		Query:        c.Query("q"),
		Equipment:    equipment,
		MuscleGroups: muscleGroups,
		Difficulty:   domain.Experience(c.Query("difficulty")),
		Limit:        limit,
	})
	c.JSON(http.StatusOK, gin.H{"exercises": exercises})
}

// GetExercise returns one exercise by id.
func (h *ExerciseHandler) GetExercise(c *gin.Context) {
	ex, ok := h.catalog.ExerciseByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "exercise not found"})
		return
	}
	c.JSON(http.StatusOK, ex)
}

// Alternatives returns the equipment-valid alternatives of an exercise for a
// gym. Unknown ids yield an empty list.
func (h *ExerciseHandler) Alternatives(c *gin.Context) {
	alts := h.catalog.Alternatives(c.Param("id"), c.Query("gym_id"))
	c.JSON(http.StatusOK, gin.H{"alternatives": alts})
}

// Supplements returns supplements recommended for a fitness goal.
func (h *ExerciseHandler) Supplements(c *gin.Context) {
	goal := domain.Goal(c.Query("goal"))
	c.JSON(http.StatusOK, gin.H{"supplements": h.catalog.SupplementsForGoal(goal)})
}
