package services

import (
	"testing"

	"github.com/gloverronan/HealthOS/models"

	"github.com/stretchr/testify/assert"
)

func TestClampQuantity(t *testing.T) {
	assert.Equal(t, 0.5, ClampQuantity(0))
	assert.Equal(t, 0.5, ClampQuantity(0.25))
	assert.Equal(t, 0.5, ClampQuantity(-1))
	assert.Equal(t, 0.5, ClampQuantity(0.5))
	assert.Equal(t, 1.5, ClampQuantity(1.5))
}

func TestRescaleMacros(t *testing.T) {
	base := Macros{Cals: 200, Prot: 20, Carb: 30, Fat: 5}

	t.Run("doubling doubles each field", func(t *testing.T) {
		got := RescaleMacros(base, 1, 2)
		assert.Equal(t, Macros{Cals: 400, Prot: 40, Carb: 60, Fat: 10}, got)
	})

	t.Run("each field rounds to nearest integer", func(t *testing.T) {
		got := RescaleMacros(Macros{Cals: 95, Prot: 7, Carb: 11, Fat: 3}, 1, 1.5)
		// 142.5 -> 143, 10.5 -> 11, 16.5 -> 17, 4.5 -> 5
		assert.Equal(t, Macros{Cals: 143, Prot: 11, Carb: 17, Fat: 5}, got)
	})

	t.Run("repeated rescaling drifts from rounding", func(t *testing.T) {
		m := Macros{Cals: 95, Prot: 7, Carb: 11, Fat: 3}
		up := RescaleMacros(m, 1, 1.5)
		down := RescaleMacros(up, 1.5, 1)
		// 143/1.5 = 95.33 -> 95, 11/1.5 = 7.33 -> 7, 17/1.5 = 11.33 -> 11, 5/1.5 = 3.33 -> 3
		assert.Equal(t, Macros{Cals: 95, Prot: 7, Carb: 11, Fat: 3}, down)

		// but the drift is visible over an asymmetric round trip
		up = RescaleMacros(m, 1, 0.5)
		back := RescaleMacros(up, 0.5, 1)
		assert.Equal(t, Macros{Cals: 96, Prot: 8, Carb: 12, Fat: 4}, back)
	})

	t.Run("zero base quantity treated as one", func(t *testing.T) {
		got := RescaleMacros(base, 0, 2)
		assert.Equal(t, Macros{Cals: 400, Prot: 40, Carb: 60, Fat: 10}, got)
	})
}

func TestCategoryForTime(t *testing.T) {
	tests := []struct {
		time string
		want string
	}{
		{"05:00", models.CategoryBreakfast},
		{"06:30", models.CategoryBreakfast},
		{"10:59", models.CategoryBreakfast},
		{"11:00", models.CategoryLunch},
		{"12:00", models.CategoryLunch},
		{"14:59", models.CategoryLunch},
		{"15:00", models.CategoryDinner},
		{"18:00", models.CategoryDinner},
		{"21:59", models.CategoryDinner},
		{"22:00", models.CategorySnack},
		{"23:00", models.CategorySnack},
		{"04:59", models.CategorySnack},
		{"00:30", models.CategorySnack},
	}
	for _, tt := range tests {
		t.Run(tt.time, func(t *testing.T) {
			assert.Equal(t, tt.want, CategoryForTime(tt.time))
		})
	}

	t.Run("unparseable time falls back to snack", func(t *testing.T) {
		assert.Equal(t, models.CategorySnack, CategoryForTime(""))
		assert.Equal(t, models.CategorySnack, CategoryForTime("noon"))
	})
}

func TestDailyTotals(t *testing.T) {
	logs := []models.FoodLog{
		{Date: "2026-08-30", Cals: 500, Prot: 40, Carb: 50, Fat: 15},
		{Date: "2026-08-30", Cals: 300.5, Prot: 20.5, Carb: 30, Fat: 10},
		{Date: "2026-08-29", Cals: 900, Prot: 80, Carb: 90, Fat: 30},
	}

	got := DailyTotals(logs, "2026-08-30")
	assert.Equal(t, Macros{Cals: 800.5, Prot: 60.5, Carb: 80, Fat: 25}, got)

	assert.Equal(t, Macros{}, DailyTotals(logs, "2026-08-28"))
	assert.Equal(t, Macros{}, DailyTotals(nil, "2026-08-30"))
}

func TestFoodLogInputValidate(t *testing.T) {
	t.Run("defaults quantity and derives category", func(t *testing.T) {
		in := FoodLogInput{Date: "2026-08-30", Name: "Oats", Time: "07:15"}
		assert.NoError(t, in.validate())
		assert.Equal(t, 1.0, in.Quantity)
		assert.Equal(t, models.CategoryBreakfast, in.Category)
	})

	t.Run("explicit category wins over time", func(t *testing.T) {
		in := FoodLogInput{Date: "2026-08-30", Name: "Oats", Time: "07:15", Category: models.CategorySnack}
		assert.NoError(t, in.validate())
		assert.Equal(t, models.CategorySnack, in.Category)
	})

	t.Run("rejects negative macros", func(t *testing.T) {
		in := FoodLogInput{Date: "2026-08-30", Name: "Oats", Cals: -1}
		assert.Error(t, in.validate())
	})

	t.Run("rejects blank name", func(t *testing.T) {
		in := FoodLogInput{Date: "2026-08-30", Name: "  "}
		assert.Error(t, in.validate())
	})

	t.Run("clamps small quantity", func(t *testing.T) {
		in := FoodLogInput{Date: "2026-08-30", Name: "Oats", Quantity: 0.1}
		assert.NoError(t, in.validate())
		assert.Equal(t, 0.5, in.Quantity)
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		in := FoodLogInput{Date: "2026-08-30", Name: "Oats", Category: "Brunch"}
		assert.Error(t, in.validate())
	})
}
