package services

import (
	"errors"

	"github.com/gloverronan/HealthOS/config"
	"github.com/gloverronan/HealthOS/models"
	"gorm.io/gorm"
)

var ErrNotConfigAdmin = errors.New("only the config admin can update shared keys")

const geminiKeyPref = "gemini_api_key"

// GetSharedConfig loads the singleton shared document. A missing row
// means nobody has configured the app yet.
func GetSharedConfig() (models.SharedConfig, error) {
	var cfg models.SharedConfig
	err := config.DB.Where("key = ?", models.SharedConfigKey).First(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.SharedConfig{Key: models.SharedConfigKey}, nil
	}
	return cfg, err
}

// SaveSharedConfig updates the shared AI key. The first user to save
// claims the admin slot; afterwards only the admin can write. The check
// is application-level only.
func SaveSharedConfig(userID uint, email, geminiKey string) (models.SharedConfig, error) {
	var cfg models.SharedConfig
	err := config.DB.Where("key = ?", models.SharedConfigKey).First(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cfg = models.SharedConfig{
			Key:       models.SharedConfigKey,
			GeminiKey: geminiKey,
			AdminUID:  userID,
			UpdatedBy: email,
		}
		if err := config.DB.Create(&cfg).Error; err != nil {
			return cfg, err
		}
		SetPreference(userID, geminiKeyPref, geminiKey)
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if cfg.AdminUID != userID {
		return cfg, ErrNotConfigAdmin
	}
	cfg.GeminiKey = geminiKey
	cfg.UpdatedBy = email
	if err := config.DB.Save(&cfg).Error; err != nil {
		return cfg, err
	}
	SetPreference(userID, geminiKeyPref, geminiKey)
	return cfg, nil
}

// ResolveGeminiKey finds the AI key for a user: the shared document
// wins, a personal preference mirror is the fallback.
func ResolveGeminiKey(userID uint) (string, error) {
	cfg, err := GetSharedConfig()
	if err != nil {
		return "", err
	}
	if cfg.GeminiKey != "" {
		return cfg.GeminiKey, nil
	}
	if key := GetPreference(userID, geminiKeyPref, ""); key != "" {
		return key, nil
	}
	return "", ErrMissingAIKey
}
