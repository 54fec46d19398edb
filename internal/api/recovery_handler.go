package api

import (
	"net/http"

	"github.com/Amaan1001/fitflow-ai/internal/service"

	"github.com/gin-gonic/gin"
)

// RecoveryHandler holds the recovery service dependency.
type RecoveryHandler struct {
	recoveryService service.RecoveryService
}

// NewRecoveryHandler creates a new RecoveryHandler.
func NewRecoveryHandler(recoveryService service.RecoveryService) *RecoveryHandler {
	return &RecoveryHandler{recoveryService: recoveryService}
}

// MuscleStatus returns the per-muscle recovery classification for the last
// seven days. Muscles not worked in the window are absent from the map.
func (h *RecoveryHandler) MuscleStatus(c *gin.Context) {
	status, err := h.recoveryService.MuscleStatus(c.Request.Context(), c.Param("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load muscle status"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"muscle_status": status})
}

// WeeklyLoad classifies the average intensity over the last seven days.
func (h *RecoveryHandler) WeeklyLoad(c *gin.Context) {
	report, err := h.recoveryService.WeeklyLoad(c.Request.Context(), c.Param("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to analyze weekly load"})
		return
	}
	c.JSON(http.StatusOK, report)
}

// DeloadCheck reports whether a deload week is due.
func (h *RecoveryHandler) DeloadCheck(c *gin.Context) {
	report, err := h.recoveryService.DeloadCheck(c.Request.Context(), c.Param("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to run deload check"})
		return
	}
	c.JSON(http.StatusOK, report)
}

// RestDayCheck reports whether the user should rest today.
func (h *RecoveryHandler) RestDayCheck(c *gin.Context) {
	report, err := h.recoveryService.RestDayCheck(c.Request.Context(), c.Param("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to run rest day check"})
		return
	}
	c.JSON(http.StatusOK, report)
}
