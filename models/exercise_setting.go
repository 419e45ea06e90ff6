package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ExerciseSetting is the per-user document of session-added exercise
// metadata (name -> {"type": "weighted"|"bodyweight"}). Kept as an opaque
// JSON doc and merged on save, matching how clients write it.
type ExerciseSetting struct {
	gorm.Model
	UserID   uint           `gorm:"uniqueIndex;not null"`
	Settings datatypes.JSON `gorm:"type:jsonb"`
}
