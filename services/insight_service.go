package services

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gloverronan/HealthOS/config"
	"github.com/gloverronan/HealthOS/models"
	"github.com/gloverronan/HealthOS/utils"
)

const (
	insightPrefKey = "daily_insight"
	insightTTL     = 3 * time.Hour
)

// insightCache is the stored shape of a previously generated insight.
type insightCache struct {
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	DataHash  string    `json:"dataHash"`
}

// InsightHash fingerprints the inputs an insight was generated from so a
// cached one can be reused while the day's data is unchanged. Log counts
// plus the newest ids catch both additions and deletions.
func InsightHash(goals models.DailyGoal, totals Macros, gym []models.GymLog, cardio []models.CardioLog) string {
	var lastGym, lastCardio uint
	if len(gym) > 0 {
		lastGym = gym[0].ID
	}
	if len(cardio) > 0 {
		lastCardio = cardio[0].ID
	}
	raw := fmt.Sprintf("%.0f|%.0f|%.0f|%.0f|%.0f|%.0f|%.0f|%.0f|%d|%d|%d|%d",
		goals.Calories, goals.Protein, goals.Carbs, goals.Fat,
		totals.Cals, totals.Prot, totals.Carb, totals.Fat,
		len(gym), len(cardio), lastGym, lastCardio)
	sum := sha256.Sum256([]byte(raw))
	return fmt.Sprintf("%x", sum)
}

// InsightStale reports whether a cached insight can no longer be served.
func InsightStale(cached insightCache, hash string, now time.Time) bool {
	if cached.Text == "" {
		return true
	}
	if cached.DataHash != hash {
		return true
	}
	return now.Sub(cached.Timestamp) >= insightTTL
}

// GetDailyInsight returns a 2-sentence AI summary of today's data,
// serving a cached one while the underlying data and TTL allow.
func GetDailyInsight(ai *GeminiService, userID uint, now time.Time) (string, error) {
	date := utils.LocalISODate(now)

	goals, err := GetGoals(userID)
	if err != nil {
		return "", err
	}
	foods, err := ListFoodLogsByDate(userID, date)
	if err != nil {
		return "", err
	}
	totals := DailyTotals(foods, date)

	var gym []models.GymLog
	if err := config.DB.Where("user_id = ? AND date = ?", userID, date).
		Order("created_at DESC, id DESC").Find(&gym).Error; err != nil {
		return "", err
	}
	var cardio []models.CardioLog
	if err := config.DB.Where("user_id = ? AND date = ?", userID, date).
		Order("created_at DESC, id DESC").Find(&cardio).Error; err != nil {
		return "", err
	}

	hash := InsightHash(*goals, totals, gym, cardio)

	var cached insightCache
	if raw := GetPreference(userID, insightPrefKey, ""); raw != "" {
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			if !InsightStale(cached, hash, now) {
				return cached.Text, nil
			}
		}
	}

	apiKey, err := ResolveGeminiKey(userID)
	if err != nil {
		return "", err
	}
	text, err := ai.GenerateContent(apiKey, InsightPrompt(*goals, totals, gym, cardio, now))
	if err != nil {
		return "", err
	}

	entry := insightCache{Text: text, Timestamp: now, DataHash: hash}
	if b, err := json.Marshal(entry); err == nil {
		SetPreference(userID, insightPrefKey, string(b))
	}
	return text, nil
}
