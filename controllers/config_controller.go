package controllers

import (
	"errors"
	"net/http"

	"github.com/gloverronan/HealthOS/services"

	"github.com/gin-gonic/gin"
)

// GET /config — the shared key document, readable by anyone signed in.
func GetSharedConfig(c *gin.Context) {
	cfg, err := services.GetSharedConfig()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"gemini_key": cfg.GeminiKey,
		"admin_uid":  cfg.AdminUID,
		"updated_by": cfg.UpdatedBy,
		"updated_at": cfg.UpdatedAt,
	})
}

// PUT /config — first writer claims admin, then admin-only.
func SaveSharedConfig(c *gin.Context) {
	uid := c.GetUint("userID")
	email := c.GetString("email")

	var input struct {
		GeminiKey string `json:"gemini_key" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cfg, err := services.SaveSharedConfig(uid, email, input.GeminiKey)
	if errors.Is(err, services.ErrNotConfigAdmin) {
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin_uid": cfg.AdminUID, "updated_by": cfg.UpdatedBy})
}
