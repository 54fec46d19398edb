package api

import (
	"net/http"

	"github.com/Amaan1001/fitflow-ai/internal/service"

	"github.com/gin-gonic/gin"
)

// StatsHandler holds the gamification service dependency.
type StatsHandler struct {
	gamificationService service.GamificationService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(gamificationService service.GamificationService) *StatsHandler {
	return &StatsHandler{gamificationService: gamificationService}
}

// GetStats returns the user's gamification stats. Users with no history get
// a fresh zero record, not an error.
func (h *StatsHandler) GetStats(c *gin.Context) {
	stats, err := h.gamificationService.Stats(c.Request.Context(), c.Param("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetAchievements returns the full catalog with the user's unlock state.
func (h *StatsHandler) GetAchievements(c *gin.Context) {
	achievements, err := h.gamificationService.Achievements(c.Request.Context(), c.Param("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load achievements"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"achievements": achievements})
}

// GetLevelProgress returns progress toward the next level.
func (h *StatsHandler) GetLevelProgress(c *gin.Context) {
	stats, err := h.gamificationService.Stats(c.Request.Context(), c.Param("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load stats"})
		return
	}
	c.JSON(http.StatusOK, h.gamificationService.LevelProgress(stats))
}
