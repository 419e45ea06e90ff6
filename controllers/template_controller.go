package controllers

import (
	"net/http"

	"github.com/gloverronan/HealthOS/models"
	"github.com/gloverronan/HealthOS/services"

	"github.com/gin-gonic/gin"
)

// GET /templates — stored templates merged over the built-in presets.
func GetWorkoutTemplates(c *gin.Context) {
	uid := c.GetUint("userID")

	templates, err := services.GetWorkoutTemplates(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, templates)
}

func SaveWorkoutTemplates(c *gin.Context) {
	uid := c.GetUint("userID")

	var input models.TemplateList
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.SaveWorkoutTemplates(uid, input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "templates saved"})
}
