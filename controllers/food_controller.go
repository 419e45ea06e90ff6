package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gloverronan/HealthOS/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// GET /food?date=2026-08-30
func ListFood(c *gin.Context) {
	uid := c.GetUint("userID")

	var (
		logs interface{}
		err  error
	)
	if date := c.Query("date"); date != "" {
		logs, err = services.ListFoodLogsByDate(uid, date)
	} else {
		logs, err = services.ListFoodLogs(uid)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, logs)
}

func AddFood(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.FoodLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := services.AddFoodLog(uid, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func UpdateFood(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input services.FoodLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := services.UpdateFoodLog(uid, id, input)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "food log not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entry)
}

// PATCH /food/:id/quantity  { "delta": 0.5 }
func AdjustFoodQuantity(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input struct {
		Delta float64 `json:"delta" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := services.AdjustFoodQuantity(uid, id, input.Delta)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "food log not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entry)
}

// PATCH /food/:id/category  { "category": "Dinner" }
func ReassignFoodCategory(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input struct {
		Category string `json:"category" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := services.ReassignFoodCategory(uid, id, input.Category)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "food log not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entry)
}

func DeleteFood(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := parseID(c)
	if !ok {
		return
	}

	err := services.DeleteFoodLog(uid, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "food log not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
