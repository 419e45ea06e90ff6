package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
	FullName string

	// Onboarding profile, used to generate a starting macro plan.
	Gender        string `gorm:"size:10"`
	Age           int
	WeightKg      float64
	HeightCm      float64
	ActivityLevel string `gorm:"size:16"` // sedentary|light|moderate|active|very_active
	FitnessGoal   string `gorm:"size:10"` // cut|maintain|bulk
	Onboarded     bool

	ResetToken    string
	ResetTokenExp time.Time
}
