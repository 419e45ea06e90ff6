package routes

import (
	"github.com/gloverronan/HealthOS/config"
	"github.com/gloverronan/HealthOS/controllers"
	"github.com/gloverronan/HealthOS/middlewares"
	"github.com/gloverronan/HealthOS/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter(rt *services.RealtimeHub) *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.POST("/onboarding", controllers.CompleteOnboarding)
	}

	food := r.Group("/food")
	food.Use(middlewares.AuthMiddleware())
	{
		food.GET("", controllers.ListFood)
		food.POST("", controllers.AddFood)
		food.PUT("/:id", controllers.UpdateFood)
		food.PATCH("/:id/quantity", controllers.AdjustFoodQuantity)
		food.PATCH("/:id/category", controllers.ReassignFoodCategory)
		food.DELETE("/:id", controllers.DeleteFood)
	}

	gym := r.Group("/gym")
	gym.Use(middlewares.AuthMiddleware())
	{
		gym.GET("", controllers.ListGymLogs)
		gym.POST("", controllers.CompleteWorkout)
		gym.DELETE("/:id", controllers.DeleteGymLog)
		gym.GET("/last", controllers.LastSession)
		gym.GET("/records", controllers.GetExerciseStats)
	}

	cardio := r.Group("/cardio")
	cardio.Use(middlewares.AuthMiddleware())
	{
		cardio.GET("", controllers.ListCardio)
		cardio.POST("", controllers.LogCardio)
		cardio.PUT("/:id", controllers.UpdateCardio)
		cardio.DELETE("/:id", controllers.DeleteCardio)
	}

	exercises := r.Group("/exercises")
	exercises.Use(middlewares.AuthMiddleware())
	{
		exercises.GET("", controllers.ListExercises)
		exercises.POST("", controllers.AddExercise)
		exercises.DELETE("/:name", controllers.DeleteExercise)
		exercises.POST("/rename", controllers.RenameExercise)
		exercises.GET("/settings", controllers.GetExerciseSettings)
		exercises.PUT("/settings", controllers.SaveExerciseSettings)
	}

	goals := r.Group("/goals")
	goals.Use(middlewares.AuthMiddleware())
	{
		goals.GET("", controllers.GetGoals)
		goals.PUT("", controllers.UpdateGoals)
	}

	templates := r.Group("/templates")
	templates.Use(middlewares.AuthMiddleware())
	{
		templates.GET("", controllers.GetWorkoutTemplates)
		templates.PUT("", controllers.SaveWorkoutTemplates)
	}

	summarySvc := services.NewSummaryService(config.DB)
	summaryCtl := controllers.NewSummaryController(summarySvc)
	summary := r.Group("/summary")
	summary.Use(middlewares.AuthMiddleware())
	{
		summary.GET("/day", summaryCtl.GetDaySummary)
		summary.GET("/weekly", summaryCtl.GetWeeklyOverview)
	}

	aiCtl := controllers.NewSuggestionController(services.NewGeminiService())
	ai := r.Group("/ai")
	ai.Use(middlewares.AuthMiddleware())
	{
		ai.POST("/macro-entry", aiCtl.AnalyzeFood)
		ai.POST("/meal-suggestions", aiCtl.SuggestMeals)
		ai.GET("/insight", aiCtl.DailyInsight)
		ai.POST("/macro-plan", aiCtl.GenerateMacroPlan)
	}

	cfg := r.Group("/config")
	cfg.Use(middlewares.AuthMiddleware())
	{
		cfg.GET("", controllers.GetSharedConfig)
		cfg.PUT("", controllers.SaveSharedConfig)
	}

	prefs := r.Group("/preferences")
	prefs.Use(middlewares.AuthMiddleware())
	{
		prefs.GET("/:key", controllers.GetPreference)
		prefs.PUT("/:key", controllers.SetPreference)
		prefs.DELETE("/:key", controllers.DeletePreference)
	}

	rtCtl := controllers.NewRealtimeController(rt)
	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("/sync", rtCtl.SyncWS)
	}

	return r
}
