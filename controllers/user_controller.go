package controllers

import (
	"net/http"

	"github.com/gloverronan/HealthOS/config"
	"github.com/gloverronan/HealthOS/services"
	"github.com/gloverronan/HealthOS/utils"

	"github.com/gin-gonic/gin"
)

func GetProfile(c *gin.Context) {
	uid := c.GetUint("userID")

	user, err := services.FindUserByID(uid)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	out := gin.H{
		"id":             user.ID,
		"email":          user.Email,
		"full_name":      user.FullName,
		"gender":         user.Gender,
		"age":            user.Age,
		"weight_kg":      user.WeightKg,
		"height_cm":      user.HeightCm,
		"activity_level": user.ActivityLevel,
		"fitness_goal":   user.FitnessGoal,
		"onboarded":      user.Onboarded,
	}
	if bmi, err := utils.CalculateBMI(user.HeightCm, user.WeightKg); err == nil {
		out["bmi"] = bmi
		out["bmi_category"] = utils.BMICategory(bmi)
	}
	c.JSON(http.StatusOK, out)
}

type ProfileInput struct {
	FullName      string  `json:"full_name"`
	Gender        string  `json:"gender"`
	Age           int     `json:"age"`
	WeightKg      float64 `json:"weight_kg"`
	HeightCm      float64 `json:"height_cm"`
	ActivityLevel string  `json:"activity_level"`
	FitnessGoal   string  `json:"fitness_goal"`
}

func UpdateProfile(c *gin.Context) {
	uid := c.GetUint("userID")

	var input ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.FindUserByID(uid)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	if input.FullName != "" {
		user.FullName = input.FullName
	}
	if input.Gender != "" {
		user.Gender = input.Gender
	}
	if input.Age > 0 {
		user.Age = input.Age
	}
	if input.WeightKg > 0 {
		user.WeightKg = input.WeightKg
	}
	if input.HeightCm > 0 {
		user.HeightCm = input.HeightCm
	}
	if input.ActivityLevel != "" {
		user.ActivityLevel = input.ActivityLevel
	}
	if input.FitnessGoal != "" {
		user.FitnessGoal = input.FitnessGoal
	}

	if err := config.DB.Save(user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "profile updated"})
}

// POST /profile/onboarding — saves the full profile and marks the
// account onboarded. Goal generation is a separate AI call so a dead
// key doesn't block signup.
func CompleteOnboarding(c *gin.Context) {
	uid := c.GetUint("userID")

	var input struct {
		Gender        string  `json:"gender" binding:"required"`
		Age           int     `json:"age" binding:"required,gt=0"`
		WeightKg      float64 `json:"weight_kg" binding:"required,gt=0"`
		HeightCm      float64 `json:"height_cm" binding:"required,gt=0"`
		ActivityLevel string  `json:"activity_level" binding:"required"`
		FitnessGoal   string  `json:"fitness_goal" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.FindUserByID(uid)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	user.Gender = input.Gender
	user.Age = input.Age
	user.WeightKg = input.WeightKg
	user.HeightCm = input.HeightCm
	user.ActivityLevel = input.ActivityLevel
	user.FitnessGoal = input.FitnessGoal
	user.Onboarded = true

	if err := config.DB.Save(user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "onboarding complete"})
}
