package controllers

import (
	"net/http"

	"github.com/gloverronan/HealthOS/services"

	"github.com/gin-gonic/gin"
)

// GET /preferences/:key — absent keys come back empty, not 404.
func GetPreference(c *gin.Context) {
	uid := c.GetUint("userID")

	key := c.Param("key")
	value := services.GetPreference(uid, key, "")
	c.JSON(http.StatusOK, gin.H{"key": key, "value": value})
}

func SetPreference(c *gin.Context) {
	uid := c.GetUint("userID")

	key := c.Param("key")
	var input struct {
		Value string `json:"value"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.SetPreference(uid, key, input.Value); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "saved"})
}

func DeletePreference(c *gin.Context) {
	uid := c.GetUint("userID")

	if err := services.DeletePreference(uid, c.Param("key")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
