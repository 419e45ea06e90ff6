package services

import (
	"testing"
	"time"

	"github.com/gloverronan/HealthOS/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func gormModel(id uint) gorm.Model { return gorm.Model{ID: id} }

func TestInsightHash(t *testing.T) {
	goals := models.DailyGoal{Calories: 2350, Protein: 180, Carbs: 250, Fat: 80}
	totals := Macros{Cals: 1200, Prot: 90, Carb: 120, Fat: 40}
	gym := []models.GymLog{{Model: gormModel(7), WorkoutName: "Push"}}
	cardio := []models.CardioLog{{Model: gormModel(3), Type: models.CardioRun, Calories: 500}}

	h1 := InsightHash(goals, totals, gym, cardio)
	h2 := InsightHash(goals, totals, gym, cardio)
	assert.Equal(t, h1, h2, "same inputs hash stably")

	t.Run("changed totals change the hash", func(t *testing.T) {
		other := totals
		other.Cals += 100
		assert.NotEqual(t, h1, InsightHash(goals, other, gym, cardio))
	})

	t.Run("a new log changes the hash", func(t *testing.T) {
		more := append([]models.GymLog{{Model: gormModel(9), WorkoutName: "Legs"}}, gym...)
		assert.NotEqual(t, h1, InsightHash(goals, totals, more, cardio))
	})

	t.Run("a deletion changes the hash", func(t *testing.T) {
		assert.NotEqual(t, h1, InsightHash(goals, totals, gym, nil))
	})
}

func TestInsightStale(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	hash := "abc"
	fresh := insightCache{Text: "nice work", Timestamp: now.Add(-time.Hour), DataHash: hash}

	assert.False(t, InsightStale(fresh, hash, now))

	t.Run("empty text is stale", func(t *testing.T) {
		assert.True(t, InsightStale(insightCache{}, hash, now))
	})

	t.Run("hash mismatch is stale", func(t *testing.T) {
		assert.True(t, InsightStale(fresh, "other", now))
	})

	t.Run("TTL expiry is stale", func(t *testing.T) {
		old := fresh
		old.Timestamp = now.Add(-3 * time.Hour)
		assert.True(t, InsightStale(old, hash, now))

		almost := fresh
		almost.Timestamp = now.Add(-3*time.Hour + time.Minute)
		assert.False(t, InsightStale(almost, hash, now))
	})
}
