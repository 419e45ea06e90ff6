package services

import (
	"testing"

	"github.com/gloverronan/HealthOS/models"

	"github.com/stretchr/testify/assert"
)

func TestCardioCalories(t *testing.T) {
	tests := []struct {
		name     string
		cType    string
		distance float64
		minutes  float64
		want     int
	}{
		{"run 5km", models.CardioRun, 5, 28, 500},
		{"cycle 20km", models.CardioCycle, 20, 50, 800},
		{"swim 1.5km", models.CardioSwim, 1.5, 40, 375},
		{"hike 8km", models.CardioHike, 8, 120, 560},
		{"class 45min", models.CardioClass, 0, 45, 360},
		{"fractional distance rounds", models.CardioRun, 5.255, 30, 526},
		{"unknown type", "rowing", 5, 30, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CardioCalories(tt.cType, tt.distance, tt.minutes))
		})
	}
}

func TestValidateCardio(t *testing.T) {
	t.Run("valid run", func(t *testing.T) {
		in := CardioInput{Date: "2026-08-30", Type: models.CardioRun, Distance: 5, Time: 28}
		assert.NoError(t, ValidateCardio(&in))
	})

	t.Run("class requires name and zeroes distance", func(t *testing.T) {
		in := CardioInput{Date: "2026-08-30", Type: models.CardioClass, Distance: 3, Time: 45, ClassName: "Spin"}
		assert.NoError(t, ValidateCardio(&in))
		assert.Equal(t, 0.0, in.Distance)

		in = CardioInput{Date: "2026-08-30", Type: models.CardioClass, Time: 45}
		assert.Error(t, ValidateCardio(&in))
	})

	t.Run("outdoor types require distance and drop class name", func(t *testing.T) {
		in := CardioInput{Date: "2026-08-30", Type: models.CardioCycle, Time: 30}
		assert.Error(t, ValidateCardio(&in))

		in = CardioInput{Date: "2026-08-30", Type: models.CardioCycle, Distance: 10, Time: 30, ClassName: "leftover"}
		assert.NoError(t, ValidateCardio(&in))
		assert.Empty(t, in.ClassName)
	})

	t.Run("duration always required", func(t *testing.T) {
		in := CardioInput{Date: "2026-08-30", Type: models.CardioRun, Distance: 5}
		assert.Error(t, ValidateCardio(&in))
	})

	t.Run("unknown type rejected", func(t *testing.T) {
		in := CardioInput{Date: "2026-08-30", Type: "rowing", Distance: 5, Time: 30}
		assert.Error(t, ValidateCardio(&in))
	})
}
