package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gloverronan/HealthOS/config"
	"github.com/gloverronan/HealthOS/models"
	"github.com/gloverronan/HealthOS/services"
	"github.com/gloverronan/HealthOS/utils"

	"github.com/gin-gonic/gin"
)

type SuggestionController struct {
	AI *services.GeminiService
}

func NewSuggestionController(ai *services.GeminiService) *SuggestionController {
	return &SuggestionController{AI: ai}
}

func aiStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrMissingAIKey):
		return http.StatusPreconditionFailed
	case errors.Is(err, services.ErrBadAIReply),
		errors.Is(err, services.ErrEmptyAIReply),
		errors.Is(err, services.ErrNoSuggestions):
		return http.StatusBadGateway
	default:
		return http.StatusBadGateway
	}
}

// POST /ai/macro-entry  { "food": "two eggs and toast" }
func (h *SuggestionController) AnalyzeFood(c *gin.Context) {
	uid := c.GetUint("userID")

	var input struct {
		Food string `json:"food" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	apiKey, err := services.ResolveGeminiKey(uid)
	if err != nil {
		c.JSON(aiStatus(err), gin.H{"error": err.Error()})
		return
	}

	text, err := h.AI.GenerateContent(apiKey, services.MacroEntryPrompt(input.Food))
	if err != nil {
		c.JSON(aiStatus(err), gin.H{"error": err.Error()})
		return
	}

	entry, err := services.ParseMacroEntry(text)
	if err != nil {
		c.JSON(aiStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entry)
}

// POST /ai/meal-suggestions  { "keywords": "chicken, quick" }
func (h *SuggestionController) SuggestMeals(c *gin.Context) {
	uid := c.GetUint("userID")

	var input struct {
		Keywords string `json:"keywords"`
	}
	// body is optional
	_ = c.ShouldBindJSON(&input)

	now := time.Now()
	date := utils.LocalISODate(now)

	goals, err := services.GetGoals(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	foods, err := services.ListFoodLogsByDate(uid, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	totals := services.DailyTotals(foods, date)

	recentFoods := make([]string, 0, len(foods))
	for _, f := range foods {
		recentFoods = append(recentFoods, f.Name)
	}

	var gym []models.GymLog
	if err := config.DB.Where("user_id = ? AND date = ?", uid, date).Find(&gym).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	var cardio []models.CardioLog
	if err := config.DB.Where("user_id = ? AND date = ?", uid, date).Find(&cardio).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	apiKey, err := services.ResolveGeminiKey(uid)
	if err != nil {
		c.JSON(aiStatus(err), gin.H{"error": err.Error()})
		return
	}

	prompt := services.MealSuggestionPrompt(totals, *goals, gym, cardio, recentFoods, input.Keywords, now)
	text, err := h.AI.GenerateContent(apiKey, prompt)
	if err != nil {
		c.JSON(aiStatus(err), gin.H{"error": err.Error()})
		return
	}

	suggestions, err := services.ParseMealSuggestions(text)
	if err != nil {
		c.JSON(aiStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

// GET /ai/insight — cached for 3 hours while the day's data is unchanged.
func (h *SuggestionController) DailyInsight(c *gin.Context) {
	uid := c.GetUint("userID")

	text, err := services.GetDailyInsight(h.AI, uid, time.Now())
	if err != nil {
		c.JSON(aiStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"insight": text})
}

// POST /ai/macro-plan — generate starting goals from the user's profile.
func (h *SuggestionController) GenerateMacroPlan(c *gin.Context) {
	uid := c.GetUint("userID")

	user, err := services.FindUserByID(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if user.Age == 0 || user.WeightKg == 0 || user.HeightCm == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "complete your profile first"})
		return
	}

	apiKey, err := services.ResolveGeminiKey(uid)
	if err != nil {
		c.JSON(aiStatus(err), gin.H{"error": err.Error()})
		return
	}

	text, err := h.AI.GenerateContent(apiKey, services.MacroPlanPrompt(*user))
	if err != nil {
		c.JSON(aiStatus(err), gin.H{"error": err.Error()})
		return
	}

	plan, err := services.ParseMacroPlan(text)
	if err != nil {
		c.JSON(aiStatus(err), gin.H{"error": err.Error()})
		return
	}

	if err := services.UpsertGoals(uid, plan.Calories, plan.Protein, plan.Carbs, plan.Fat); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, plan)
}
