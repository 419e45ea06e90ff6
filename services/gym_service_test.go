package services

import (
	"testing"

	"github.com/gloverronan/HealthOS/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeExercises(t *testing.T) {
	in := []ExerciseInput{
		{Exercise: "Bench Press", Sets: []SetInput{
			{Weight: 80, Reps: 8},
			{}, // untouched row in the session UI
			{Weight: 85, Reps: 5},
		}},
		{Exercise: "", Sets: []SetInput{{Weight: 50, Reps: 10}}},
		{Exercise: "Squat", Sets: []SetInput{{}, {}}},
	}

	got := SanitizeExercises(in)
	require.Len(t, got, 1)
	assert.Equal(t, "Bench Press", got[0].Exercise)
	require.Len(t, got[0].Sets, 2)
	assert.Equal(t, 80.0, got[0].Sets[0].Weight)
	assert.Equal(t, 85.0, got[0].Sets[1].Weight)

	// every surviving set gets a distinct id
	assert.NotEmpty(t, got[0].Sets[0].ID)
	assert.NotEqual(t, got[0].Sets[0].ID, got[0].Sets[1].ID)

	// bodyweight sets (weight 0, reps > 0) survive
	got = SanitizeExercises([]ExerciseInput{
		{Exercise: "Pull-ups", Sets: []SetInput{{Reps: 12}}},
	})
	require.Len(t, got, 1)
	assert.Equal(t, 12, got[0].Sets[0].Reps)
}

func TestUpdateRecords(t *testing.T) {
	session := models.ExerciseEntryList{
		{Exercise: "Bench Press", Sets: []models.SetEntry{
			{ID: "a", Weight: 80, Reps: 8},
			{ID: "b", Weight: 85, Reps: 5},
			{ID: "c", Weight: 85, Reps: 3},
		}},
	}

	t.Run("new exercise gets a record with reps from the first max set", func(t *testing.T) {
		got := UpdateRecords(models.RecordMap{}, session, "2026-08-30")
		assert.Equal(t, models.PersonalRecord{W: 85, R: 5, Date: "2026-08-30"}, got["Bench Press"])
	})

	t.Run("equal weight does not replace", func(t *testing.T) {
		prev := models.RecordMap{"Bench Press": {W: 85, R: 2, Date: "2026-08-01"}}
		got := UpdateRecords(prev, session, "2026-08-30")
		assert.Equal(t, models.PersonalRecord{W: 85, R: 2, Date: "2026-08-01"}, got["Bench Press"])
	})

	t.Run("heavier weight replaces", func(t *testing.T) {
		prev := models.RecordMap{"Bench Press": {W: 82.5, R: 6, Date: "2026-08-01"}}
		got := UpdateRecords(prev, session, "2026-08-30")
		assert.Equal(t, models.PersonalRecord{W: 85, R: 5, Date: "2026-08-30"}, got["Bench Press"])
	})

	t.Run("input map is not mutated", func(t *testing.T) {
		prev := models.RecordMap{"Squat": {W: 100, R: 5, Date: "2026-08-01"}}
		_ = UpdateRecords(prev, session, "2026-08-30")
		assert.Len(t, prev, 1)
		_, ok := prev["Bench Press"]
		assert.False(t, ok)
	})

	t.Run("unrelated records carry over", func(t *testing.T) {
		prev := models.RecordMap{"Squat": {W: 100, R: 5, Date: "2026-08-01"}}
		got := UpdateRecords(prev, session, "2026-08-30")
		assert.Equal(t, models.PersonalRecord{W: 100, R: 5, Date: "2026-08-01"}, got["Squat"])
	})
}

func TestRebuildRecords(t *testing.T) {
	logs := []models.GymLog{
		{Date: "2026-08-01", Exercises: models.ExerciseEntryList{
			{Exercise: "Bench Press", Sets: []models.SetEntry{{Weight: 80, Reps: 8}}},
			{Exercise: "Squat", Sets: []models.SetEntry{{Weight: 120, Reps: 5}}},
		}},
		{Date: "2026-08-15", Exercises: models.ExerciseEntryList{
			{Exercise: "Bench Press", Sets: []models.SetEntry{{Weight: 85, Reps: 5}}},
		}},
	}

	got := RebuildRecords(logs)
	assert.Equal(t, models.PersonalRecord{W: 85, R: 5, Date: "2026-08-15"}, got["Bench Press"])
	assert.Equal(t, models.PersonalRecord{W: 120, R: 5, Date: "2026-08-01"}, got["Squat"])

	t.Run("record evaporates with its only source log", func(t *testing.T) {
		got := RebuildRecords(logs[:1])
		assert.Equal(t, models.PersonalRecord{W: 80, R: 8, Date: "2026-08-01"}, got["Bench Press"])

		got = RebuildRecords(nil)
		assert.Empty(t, got)
	})
}
