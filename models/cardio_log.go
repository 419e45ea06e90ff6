package models

import "gorm.io/gorm"

// Cardio session types.
const (
	CardioRun   = "run"
	CardioCycle = "cycle"
	CardioSwim  = "swim"
	CardioHike  = "hike"
	CardioClass = "class"
)

type CardioLog struct {
	gorm.Model
	UserID    uint   `gorm:"index;not null"`
	Date      string `gorm:"size:10;index;not null"`
	Type      string `gorm:"size:8;not null"`
	Distance  float64 // km, zero for classes
	Time      float64 // minutes
	Calories  int     // derived from the per-type formula
	ClassName string  // set only for type=class
}
