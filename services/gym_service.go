package services

import (
	"errors"

	"github.com/gloverronan/HealthOS/config"
	"github.com/gloverronan/HealthOS/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNoSets = errors.New("log at least one set")

type SetInput struct {
	Weight float64 `json:"weight"`
	Reps   int     `json:"reps"`
}

type ExerciseInput struct {
	Exercise string     `json:"exercise"`
	Sets     []SetInput `json:"sets"`
}

// SanitizeExercises drops empty sets, drops exercises left with no sets,
// and assigns each surviving set a stable local id.
func SanitizeExercises(in []ExerciseInput) models.ExerciseEntryList {
	out := make(models.ExerciseEntryList, 0, len(in))
	for _, ex := range in {
		if ex.Exercise == "" {
			continue
		}
		sets := make([]models.SetEntry, 0, len(ex.Sets))
		for _, s := range ex.Sets {
			if s.Weight == 0 && s.Reps == 0 {
				continue
			}
			sets = append(sets, models.SetEntry{ID: uuid.NewString(), Weight: s.Weight, Reps: s.Reps})
		}
		if len(sets) == 0 {
			continue
		}
		out = append(out, models.ExerciseEntry{Exercise: ex.Exercise, Sets: sets})
	}
	return out
}

// UpdateRecords merges a completed workout into the record map: for each
// exercise the max weight across its sets wins, with the reps taken from
// the first set achieving that weight. An existing record is replaced
// only when strictly beaten.
func UpdateRecords(records models.RecordMap, exercises models.ExerciseEntryList, date string) models.RecordMap {
	out := models.RecordMap{}
	for k, v := range records {
		out[k] = v
	}
	for _, ex := range exercises {
		if len(ex.Sets) == 0 {
			continue
		}
		best := ex.Sets[0]
		for _, s := range ex.Sets[1:] {
			if s.Weight > best.Weight {
				best = s
			}
		}
		rec, ok := out[ex.Exercise]
		if !ok || best.Weight > rec.W {
			out[ex.Exercise] = models.PersonalRecord{W: best.Weight, R: best.Reps, Date: date}
		}
	}
	return out
}

// RebuildRecords recomputes the record map from scratch over all
// remaining logs. Exercises absent from every log get no entry, so a
// record evaporates with its only source log.
func RebuildRecords(logs []models.GymLog) models.RecordMap {
	out := models.RecordMap{}
	for _, l := range logs {
		for _, ex := range l.Exercises {
			for _, s := range ex.Sets {
				rec, ok := out[ex.Exercise]
				if !ok || s.Weight > rec.W {
					out[ex.Exercise] = models.PersonalRecord{W: s.Weight, R: s.Reps, Date: l.Date}
				}
			}
		}
	}
	return out
}

type WorkoutInput struct {
	Date        string          `json:"date" binding:"required"`
	WorkoutID   string          `json:"workoutId" binding:"required"`
	WorkoutName string          `json:"workoutName" binding:"required"`
	Exercises   []ExerciseInput `json:"exercises"`
}

// CompleteWorkout persists a finished session and folds it into the
// personal-record map.
func CompleteWorkout(userID uint, in WorkoutInput) (*models.GymLog, error) {
	exercises := SanitizeExercises(in.Exercises)
	if len(exercises) == 0 {
		return nil, ErrNoSets
	}

	entry := &models.GymLog{
		UserID:      userID,
		Date:        in.Date,
		WorkoutID:   in.WorkoutID,
		WorkoutName: in.WorkoutName,
		Exercises:   exercises,
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(entry).Error; err != nil {
			return err
		}

		stats, err := loadStats(tx, userID)
		if err != nil {
			return err
		}
		stats.Records = UpdateRecords(stats.Records, exercises, in.Date)
		return tx.Save(stats).Error
	})
	if err != nil {
		return nil, err
	}

	PublishSnapshot(userID, CollectionGym)
	return entry, nil
}

// DeleteGymLog removes a workout and rebuilds the record map from the
// remaining logs so no stale record outlives its source.
func DeleteGymLog(userID, id uint) error {
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&models.GymLog{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		var remaining []models.GymLog
		if err := tx.Where("user_id = ?", userID).Find(&remaining).Error; err != nil {
			return err
		}

		stats, err := loadStats(tx, userID)
		if err != nil {
			return err
		}
		stats.Records = RebuildRecords(remaining)
		return tx.Save(stats).Error
	})
	if err != nil {
		return err
	}

	PublishSnapshot(userID, CollectionGym)
	return nil
}

func ListGymLogs(userID uint) ([]models.GymLog, error) {
	var logs []models.GymLog
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&logs).Error
	return logs, err
}

// LastSession returns the most recent log for a workout template, used
// to prefill a new session with the previous weights.
func LastSession(userID uint, workoutID string) (*models.GymLog, error) {
	var entry models.GymLog
	err := config.DB.
		Where("user_id = ? AND workout_id = ?", userID, workoutID).
		Order("created_at DESC, id DESC").
		First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func GetExerciseStats(userID uint) (models.RecordMap, error) {
	stats, err := loadStats(config.DB, userID)
	if err != nil {
		return nil, err
	}
	return stats.Records, nil
}

func loadStats(tx *gorm.DB, userID uint) (*models.ExerciseStats, error) {
	var stats models.ExerciseStats
	err := tx.Where("user_id = ?", userID).First(&stats).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.ExerciseStats{UserID: userID, Records: models.RecordMap{}}, nil
	}
	if err != nil {
		return nil, err
	}
	if stats.Records == nil {
		stats.Records = models.RecordMap{}
	}
	return &stats, nil
}
