package controllers

import (
	"errors"
	"net/http"

	"github.com/gloverronan/HealthOS/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func ListCardio(c *gin.Context) {
	uid := c.GetUint("userID")

	logs, err := services.ListCardioLogs(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, logs)
}

func LogCardio(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.CardioInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := services.LogCardio(uid, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, log)
}

func UpdateCardio(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input services.CardioInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := services.UpdateCardioLog(uid, id, input)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "cardio log not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, log)
}

func DeleteCardio(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := parseID(c)
	if !ok {
		return
	}

	err := services.DeleteCardioLog(uid, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "cardio log not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
