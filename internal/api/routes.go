package api

import (
	"net/http"

	"github.com/Amaan1001/fitflow-ai/internal/catalog"
	"github.com/Amaan1001/fitflow-ai/internal/service"

	"github.com/gin-gonic/gin"
)

// SetupRoutes registers all API routes on the router.
func SetupRoutes(
	router *gin.Engine,
	profileService service.ProfileService,
	planService service.PlanService,
	workoutService service.WorkoutService,
	gamificationService service.GamificationService,
	recoveryService service.RecoveryService,
	coachService service.CoachService,
	cat *catalog.Catalog,
) {
	profileHandler := NewProfileHandler(profileService)
	planHandler := NewPlanHandler(planService, profileService)
	workoutHandler := NewWorkoutHandler(workoutService)
	statsHandler := NewStatsHandler(gamificationService)
	recoveryHandler := NewRecoveryHandler(recoveryService)
	exerciseHandler := NewExerciseHandler(cat)
	coachHandler := NewCoachHandler(coachService)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiV1 := router.Group("/api/v1")
	{
		apiV1.POST("/profiles", profileHandler.SaveProfile)
		apiV1.GET("/profiles/:userID", profileHandler.GetProfile)

		apiV1.POST("/plans", planHandler.GeneratePlan)

		apiV1.POST("/workouts/complete", workoutHandler.CompleteWorkout)

		users := apiV1.Group("/users/:userID")
		{
			users.GET("/logs", workoutHandler.History)
			users.GET("/stats", statsHandler.GetStats)
			users.GET("/achievements", statsHandler.GetAchievements)
			users.GET("/level", statsHandler.GetLevelProgress)

			recovery := users.Group("/recovery")
			{
				recovery.GET("/muscles", recoveryHandler.MuscleStatus)
				recovery.GET("/weekly-load", recoveryHandler.WeeklyLoad)
				recovery.GET("/deload", recoveryHandler.DeloadCheck)
				recovery.GET("/rest-day", recoveryHandler.RestDayCheck)
			}
		}

		exercises := apiV1.Group("/exercises")
		{
			exercises.GET("/search", exerciseHandler.Search)
			exercises.GET("/:id", exerciseHandler.GetExercise)
			exercises.GET("/:id/alternatives", exerciseHandler.Alternatives)
			exercises.POST("/:id/swap", planHandler.SwapExercise)
		}

		apiV1.GET("/supplements", exerciseHandler.Supplements)

		apiV1.POST("/chat", coachHandler.Chat)
		apiV1.POST("/diet", coachHandler.DietPlan)
		apiV1.POST("/supplements/recommend", coachHandler.RecommendSupplements)
	}
}
