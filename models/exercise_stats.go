package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"gorm.io/gorm"
)

// PersonalRecord is the best recorded performance for one exercise:
// maximum weight, the reps achieved at that weight, and the date it
// was last set.
type PersonalRecord struct {
	W    float64 `json:"w"`
	R    int     `json:"r"`
	Date string  `json:"date"`
}

type RecordMap map[string]PersonalRecord

func (m RecordMap) Value() (driver.Value, error) {
	if m == nil {
		m = RecordMap{}
	}
	return json.Marshal(m)
}

func (m *RecordMap) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		if s, ok := value.(string); ok {
			b = []byte(s)
		} else {
			return errors.New("unsupported type for RecordMap")
		}
	}
	return json.Unmarshal(b, m)
}

// ExerciseStats is the per-user personal-record document, keyed by
// exercise name.
type ExerciseStats struct {
	gorm.Model
	UserID  uint      `gorm:"uniqueIndex;not null"`
	Records RecordMap `gorm:"type:jsonb"`
}
