package controllers

import (
	"net/http"

	"github.com/gloverronan/HealthOS/services"

	"github.com/gin-gonic/gin"
)

func GetGoals(c *gin.Context) {
	uid := c.GetUint("userID")

	goals, err := services.GetGoals(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, goals)
}

func UpdateGoals(c *gin.Context) {
	uid := c.GetUint("userID")

	var input struct {
		Calories float64 `json:"calories" binding:"required,gt=0"`
		Protein  float64 `json:"protein" binding:"required,gt=0"`
		Carbs    float64 `json:"carbs" binding:"required,gt=0"`
		Fat      float64 `json:"fat" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.UpsertGoals(uid, input.Calories, input.Protein, input.Carbs, input.Fat); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "goals updated"})
}
