package models

import "gorm.io/gorm"

// Meal categories for food log entries.
const (
	CategoryBreakfast = "Breakfast"
	CategoryLunch     = "Lunch"
	CategoryDinner    = "Dinner"
	CategorySnack     = "Snack"
)

// FoodLog is one logged food item. Macro values are totals for the
// stored quantity; the per-unit base is value/quantity.
type FoodLog struct {
	gorm.Model
	UserID   uint   `gorm:"index;not null"`
	Date     string `gorm:"size:10;index;not null"` // YYYY-MM-DD
	Name     string `gorm:"not null"`
	Quantity float64 `gorm:"default:1"`
	Cals     float64
	Prot     float64
	Carb     float64
	Fat      float64
	Time     string `gorm:"size:5"`  // HH:MM
	Category string `gorm:"size:12"` // Breakfast|Lunch|Dinner|Snack
}
