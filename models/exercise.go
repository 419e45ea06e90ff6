package models

import "gorm.io/gorm"

// Exercise classification.
const (
	ExerciseWeighted   = "weighted"
	ExerciseBodyweight = "bodyweight"
)

// Exercise is a library entry. Deleting one leaves historical gym logs
// untouched, so removed exercises remain visible in history.
type Exercise struct {
	gorm.Model
	UserID uint   `gorm:"not null;uniqueIndex:idx_user_exercise"`
	Name   string `gorm:"not null;uniqueIndex:idx_user_exercise"`
	Type   string `gorm:"size:12;default:weighted"`
}
