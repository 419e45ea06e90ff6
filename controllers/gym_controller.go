package controllers

import (
	"errors"
	"net/http"

	"github.com/gloverronan/HealthOS/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func ListGymLogs(c *gin.Context) {
	uid := c.GetUint("userID")

	logs, err := services.ListGymLogs(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, logs)
}

// POST /gym  — a completed workout session. Personal records update in
// the same transaction.
func CompleteWorkout(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.WorkoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := services.CompleteWorkout(uid, input)
	if errors.Is(err, services.ErrNoSets) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, log)
}

func DeleteGymLog(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := parseID(c)
	if !ok {
		return
	}

	err := services.DeleteGymLog(uid, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "gym log not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// GET /gym/last?workout_id=push
func LastSession(c *gin.Context) {
	uid := c.GetUint("userID")

	workoutID := c.Query("workout_id")
	if workoutID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "workout_id is required"})
		return
	}

	log, err := services.LastSession(uid, workoutID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no previous session"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, log)
}

// GET /gym/records
func GetExerciseStats(c *gin.Context) {
	uid := c.GetUint("userID")

	records, err := services.GetExerciseStats(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": records})
}
