package services

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/gloverronan/HealthOS/config"
	"github.com/gloverronan/HealthOS/models"

	"gorm.io/gorm"
)

var (
	ErrExerciseExists   = errors.New("an exercise with that name already exists")
	ErrExerciseNotFound = errors.New("exercise not found")
)

// DefaultExercises seeds a new user's library.
var DefaultExercises = []models.Exercise{
	// Upper body, weighted
	{Name: "Bench Press", Type: models.ExerciseWeighted},
	{Name: "Incline Bench Press", Type: models.ExerciseWeighted},
	{Name: "Overhead Press", Type: models.ExerciseWeighted},
	{Name: "Dumbbell Row", Type: models.ExerciseWeighted},
	{Name: "Lat Pulldown", Type: models.ExerciseWeighted},
	{Name: "Barbell Curl", Type: models.ExerciseWeighted},
	{Name: "Tricep Extension", Type: models.ExerciseWeighted},

	// Lower body, weighted
	{Name: "Squat", Type: models.ExerciseWeighted},
	{Name: "Deadlift", Type: models.ExerciseWeighted},
	{Name: "Romanian Deadlift", Type: models.ExerciseWeighted},
	{Name: "Leg Press", Type: models.ExerciseWeighted},
	{Name: "Leg Curl", Type: models.ExerciseWeighted},

	// Bodyweight
	{Name: "Pull-ups", Type: models.ExerciseBodyweight},
	{Name: "Push-ups", Type: models.ExerciseBodyweight},
	{Name: "Dips", Type: models.ExerciseBodyweight},
}

// EnsureExerciseLibrary seeds the default library for users with no
// entries yet.
func EnsureExerciseLibrary(userID uint) error {
	var count int64
	if err := config.DB.Model(&models.Exercise{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seed := make([]models.Exercise, len(DefaultExercises))
	for i, ex := range DefaultExercises {
		seed[i] = models.Exercise{UserID: userID, Name: ex.Name, Type: ex.Type}
	}
	return config.DB.Create(&seed).Error
}

func ListExercises(userID uint) ([]models.Exercise, error) {
	if err := EnsureExerciseLibrary(userID); err != nil {
		return nil, err
	}
	var exercises []models.Exercise
	err := config.DB.
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&exercises).Error
	return exercises, err
}

func AddExercise(userID uint, name, exerciseType string) (*models.Exercise, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("exercise name is required")
	}
	if exerciseType != models.ExerciseBodyweight {
		exerciseType = models.ExerciseWeighted
	}

	var count int64
	if err := config.DB.Model(&models.Exercise{}).
		Where("user_id = ? AND name = ?", userID, name).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrExerciseExists
	}

	ex := &models.Exercise{UserID: userID, Name: name, Type: exerciseType}
	if err := config.DB.Create(ex).Error; err != nil {
		return nil, err
	}
	return ex, nil
}

// DeleteExercise removes only the library entry. Historical gym logs
// keep the name, so deleted exercises stay visible in history.
func DeleteExercise(userID uint, name string) error {
	res := config.DB.Where("user_id = ? AND name = ?", userID, name).Delete(&models.Exercise{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrExerciseNotFound
	}
	return nil
}

// RenameInExercises rewrites every matching exercise name in a log's
// exercise list, reporting whether anything changed.
func RenameInExercises(list models.ExerciseEntryList, oldName, newName string) (models.ExerciseEntryList, bool) {
	changed := false
	out := make(models.ExerciseEntryList, len(list))
	for i, ex := range list {
		if ex.Exercise == oldName {
			ex.Exercise = newName
			changed = true
		}
		out[i] = ex
	}
	return out, changed
}

// RenameRecordKey moves a personal record to a new exercise name,
// dropping the old key. No-op when the old key is absent.
func RenameRecordKey(records models.RecordMap, oldName, newName string) models.RecordMap {
	rec, ok := records[oldName]
	if !ok {
		return records
	}
	out := models.RecordMap{}
	for k, v := range records {
		if k == oldName {
			continue
		}
		out[k] = v
	}
	out[newName] = rec
	return out
}

// RenameExercise propagates a rename across the library entry, every
// gym log that references the exercise, and the personal-record key —
// in one transaction, so concurrent readers never observe a torn rename.
func RenameExercise(userID uint, oldName, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return errors.New("new exercise name is required")
	}
	if newName == oldName {
		return nil
	}

	logsChanged := false
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&models.Exercise{}).
			Where("user_id = ? AND name = ?", userID, newName).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrExerciseExists
		}

		res := tx.Model(&models.Exercise{}).
			Where("user_id = ? AND name = ?", userID, oldName).
			Update("name", newName)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrExerciseNotFound
		}

		var logs []models.GymLog
		if err := tx.Where("user_id = ?", userID).Find(&logs).Error; err != nil {
			return err
		}
		for i := range logs {
			renamed, changed := RenameInExercises(logs[i].Exercises, oldName, newName)
			if !changed {
				continue
			}
			if err := tx.Model(&logs[i]).Update("exercises", renamed).Error; err != nil {
				return err
			}
			logsChanged = true
		}

		stats, err := loadStats(tx, userID)
		if err != nil {
			return err
		}
		if _, ok := stats.Records[oldName]; ok {
			stats.Records = RenameRecordKey(stats.Records, oldName, newName)
			if err := tx.Save(stats).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	// Rewritten logs must reach connected devices like any other gym
	// mutation.
	if logsChanged {
		PublishSnapshot(userID, CollectionGym)
	}
	return nil
}

// GetExerciseSettings returns the per-user doc of session-added exercise
// metadata. Missing doc means no overrides yet.
func GetExerciseSettings(userID uint) (map[string]map[string]string, error) {
	var row models.ExerciseSetting
	err := config.DB.Where("user_id = ?", userID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return map[string]map[string]string{}, nil
	}
	if err != nil {
		return nil, err
	}
	out := map[string]map[string]string{}
	if len(row.Settings) > 0 {
		if err := json.Unmarshal(row.Settings, &out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// SaveExerciseSettings merges incoming entries over the stored doc, the
// way clients write partial updates.
func SaveExerciseSettings(userID uint, incoming map[string]map[string]string) error {
	current, err := GetExerciseSettings(userID)
	if err != nil {
		return err
	}
	for name, meta := range incoming {
		current[name] = meta
	}
	b, err := json.Marshal(current)
	if err != nil {
		return err
	}

	var row models.ExerciseSetting
	err = config.DB.Where("user_id = ?", userID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		row = models.ExerciseSetting{UserID: userID, Settings: b}
		return config.DB.Create(&row).Error
	}
	if err != nil {
		return err
	}
	row.Settings = b
	return config.DB.Save(&row).Error
}
