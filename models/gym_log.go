package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"gorm.io/gorm"
)

// SetEntry is one set inside a workout exercise. ID is a client-generated
// identifier unique within the session, not a wall-clock key.
type SetEntry struct {
	ID     string  `json:"id"`
	Weight float64 `json:"weight"`
	Reps   int     `json:"reps"`
}

// ExerciseEntry pairs an exercise name with its ordered sets.
type ExerciseEntry struct {
	Exercise string     `json:"exercise"`
	Sets     []SetEntry `json:"sets"`
}

type ExerciseEntryList []ExerciseEntry

func (l ExerciseEntryList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *ExerciseEntryList) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		if s, ok := value.(string); ok {
			b = []byte(s)
		} else {
			return errors.New("unsupported type for ExerciseEntryList")
		}
	}
	return json.Unmarshal(b, l)
}

// GymLog is one completed workout. Logs are immutable after creation;
// the only mutation is deletion, which triggers a stats rebuild.
type GymLog struct {
	gorm.Model
	UserID      uint              `gorm:"index;not null"`
	Date        string            `gorm:"size:10;index;not null"`
	WorkoutID   string            `gorm:"size:64"`
	WorkoutName string
	Exercises   ExerciseEntryList `gorm:"type:jsonb"`
}
