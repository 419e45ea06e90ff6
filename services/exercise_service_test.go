package services

import (
	"testing"

	"github.com/gloverronan/HealthOS/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenameInExercises(t *testing.T) {
	list := models.ExerciseEntryList{
		{Exercise: "Bench Press", Sets: []models.SetEntry{{ID: "a", Weight: 80, Reps: 8}}},
		{Exercise: "Squat", Sets: []models.SetEntry{{ID: "b", Weight: 120, Reps: 5}}},
	}

	renamed, changed := RenameInExercises(list, "Bench Press", "Flat Bench")
	assert.True(t, changed)
	assert.Equal(t, "Flat Bench", renamed[0].Exercise)
	assert.Equal(t, "Squat", renamed[1].Exercise)

	// sets travel with the rename
	require.Len(t, renamed[0].Sets, 1)
	assert.Equal(t, 80.0, renamed[0].Sets[0].Weight)

	// original list untouched
	assert.Equal(t, "Bench Press", list[0].Exercise)

	_, changed = RenameInExercises(list, "Deadlift", "Conventional Deadlift")
	assert.False(t, changed)
}

func TestRenameRecordKey(t *testing.T) {
	records := models.RecordMap{
		"Bench Press": {W: 85, R: 5, Date: "2026-08-15"},
		"Squat":       {W: 120, R: 5, Date: "2026-08-01"},
	}

	got := RenameRecordKey(records, "Bench Press", "Flat Bench")
	assert.Equal(t, models.PersonalRecord{W: 85, R: 5, Date: "2026-08-15"}, got["Flat Bench"])
	_, ok := got["Bench Press"]
	assert.False(t, ok)
	assert.Equal(t, models.PersonalRecord{W: 120, R: 5, Date: "2026-08-01"}, got["Squat"])

	// absent key is a no-op
	same := RenameRecordKey(records, "Deadlift", "Conventional Deadlift")
	assert.Equal(t, records, same)
}

func TestDefaultExerciseLibrary(t *testing.T) {
	assert.Len(t, DefaultExercises, 15)

	bodyweight := 0
	for _, ex := range DefaultExercises {
		assert.NotEmpty(t, ex.Name)
		if ex.Type == models.ExerciseBodyweight {
			bodyweight++
		}
	}
	assert.Equal(t, 3, bodyweight)
}
