package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"gorm.io/gorm"
)

type TemplateExercise struct {
	Name       string `json:"name"`
	Bodyweight bool   `json:"bodyweight"`
}

// WorkoutTemplate is a user-customizable workout preset.
type WorkoutTemplate struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Color     string             `json:"color"`
	Emoji     string             `json:"emoji"`
	Exercises []TemplateExercise `json:"exercises"`
}

type TemplateList []WorkoutTemplate

func (l TemplateList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *TemplateList) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		if s, ok := value.(string); ok {
			b = []byte(s)
		} else {
			return errors.New("unsupported type for TemplateList")
		}
	}
	return json.Unmarshal(b, l)
}

// WorkoutTemplateDoc is the per-user stored template list. Loading merges
// it over the code-defined defaults so new fields backfill without
// discarding customization.
type WorkoutTemplateDoc struct {
	gorm.Model
	UserID uint         `gorm:"uniqueIndex;not null"`
	List   TemplateList `gorm:"type:jsonb"`
}
