package services

import (
	"errors"

	"github.com/gloverronan/HealthOS/config"
	"github.com/gloverronan/HealthOS/models"
	"gorm.io/gorm"
)

// GetPreference reads a per-user preference, returning the fallback on
// any miss or error. Preferences are best-effort device state and never
// fail a request.
func GetPreference(userID uint, key, fallback string) string {
	var pref models.Preference
	if err := config.DB.Where("user_id = ? AND key = ?", userID, key).First(&pref).Error; err != nil {
		return fallback
	}
	return pref.Value
}

// SetPreference writes a per-user preference, creating it if needed.
func SetPreference(userID uint, key, value string) error {
	var pref models.Preference
	err := config.DB.Where("user_id = ? AND key = ?", userID, key).First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		pref = models.Preference{UserID: userID, Key: key, Value: value}
		return config.DB.Create(&pref).Error
	}
	if err != nil {
		return err
	}
	pref.Value = value
	return config.DB.Save(&pref).Error
}

// DeletePreference removes a stored preference; absent keys are fine.
func DeletePreference(userID uint, key string) error {
	return config.DB.Where("user_id = ? AND key = ?", userID, key).
		Delete(&models.Preference{}).Error
}
