package controllers

import (
	"errors"
	"net/http"

	"github.com/gloverronan/HealthOS/services"

	"github.com/gin-gonic/gin"
)

func ListExercises(c *gin.Context) {
	uid := c.GetUint("userID")

	exercises, err := services.ListExercises(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, exercises)
}

func AddExercise(c *gin.Context) {
	uid := c.GetUint("userID")

	var input struct {
		Name string `json:"name" binding:"required"`
		Type string `json:"type"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ex, err := services.AddExercise(uid, input.Name, input.Type)
	if errors.Is(err, services.ErrExerciseExists) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, ex)
}

// DELETE /exercises/:name — library entry only; logs keep their history.
func DeleteExercise(c *gin.Context) {
	uid := c.GetUint("userID")

	name := c.Param("name")
	err := services.DeleteExercise(uid, name)
	if errors.Is(err, services.ErrExerciseNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// POST /exercises/rename — propagates through every log and the stats
// map in one transaction.
func RenameExercise(c *gin.Context) {
	uid := c.GetUint("userID")

	var input struct {
		OldName string `json:"old_name" binding:"required"`
		NewName string `json:"new_name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := services.RenameExercise(uid, input.OldName, input.NewName)
	if errors.Is(err, services.ErrExerciseExists) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	if errors.Is(err, services.ErrExerciseNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "renamed"})
}

func GetExerciseSettings(c *gin.Context) {
	uid := c.GetUint("userID")

	settings, err := services.GetExerciseSettings(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, settings)
}

func SaveExerciseSettings(c *gin.Context) {
	uid := c.GetUint("userID")

	var input map[string]map[string]string
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.SaveExerciseSettings(uid, input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "saved"})
}
