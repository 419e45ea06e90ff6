package services

import (
	"errors"
	"fmt"
	"math"

	"github.com/gloverronan/HealthOS/config"
	"github.com/gloverronan/HealthOS/models"

	"gorm.io/gorm"
)

// CardioCalories estimates calories burned with the per-type linear
// formula: distance-based for outdoor types, duration-based for classes.
func CardioCalories(cardioType string, distanceKm, minutes float64) int {
	switch cardioType {
	case models.CardioRun:
		return int(math.Round(distanceKm * 100))
	case models.CardioCycle:
		return int(math.Round(distanceKm * 40))
	case models.CardioSwim:
		return int(math.Round(distanceKm * 250))
	case models.CardioHike:
		return int(math.Round(distanceKm * 70))
	case models.CardioClass:
		return int(math.Round(minutes * 8))
	}
	return 0
}

type CardioInput struct {
	Date      string  `json:"date" binding:"required"`
	Type      string  `json:"type" binding:"required"`
	Distance  float64 `json:"distance"`
	Time      float64 `json:"time"`
	ClassName string  `json:"className"`
}

// ValidateCardio rejects bad input before the calorie formula ever sees
// it: duration always required, distance for outdoor types, a class name
// for classes.
func ValidateCardio(in *CardioInput) error {
	switch in.Type {
	case models.CardioRun, models.CardioCycle, models.CardioSwim, models.CardioHike, models.CardioClass:
	default:
		return fmt.Errorf("unknown cardio type %q", in.Type)
	}
	if in.Time <= 0 {
		return errors.New("duration must be positive")
	}
	if in.Type == models.CardioClass {
		if in.ClassName == "" {
			return errors.New("class name is required")
		}
		in.Distance = 0
	} else {
		if in.Distance <= 0 {
			return errors.New("distance must be positive")
		}
		in.ClassName = ""
	}
	return nil
}

func LogCardio(userID uint, in CardioInput) (*models.CardioLog, error) {
	if err := ValidateCardio(&in); err != nil {
		return nil, err
	}

	entry := &models.CardioLog{
		UserID:    userID,
		Date:      in.Date,
		Type:      in.Type,
		Distance:  in.Distance,
		Time:      in.Time,
		Calories:  CardioCalories(in.Type, in.Distance, in.Time),
		ClassName: in.ClassName,
	}
	if err := config.DB.Create(entry).Error; err != nil {
		return nil, err
	}

	PublishSnapshot(userID, CollectionCardio)
	return entry, nil
}

// UpdateCardioLog edits a session in place; calories always recompute
// from the formula rather than trusting the client.
func UpdateCardioLog(userID, id uint, in CardioInput) (*models.CardioLog, error) {
	var entry models.CardioLog
	if err := config.DB.
		Where("id = ? AND user_id = ?", id, userID).
		First(&entry).Error; err != nil {
		return nil, err
	}

	if err := ValidateCardio(&in); err != nil {
		return nil, err
	}

	entry.Date = in.Date
	entry.Type = in.Type
	entry.Distance = in.Distance
	entry.Time = in.Time
	entry.Calories = CardioCalories(in.Type, in.Distance, in.Time)
	entry.ClassName = in.ClassName
	if err := config.DB.Save(&entry).Error; err != nil {
		return nil, err
	}

	PublishSnapshot(userID, CollectionCardio)
	return &entry, nil
}

func DeleteCardioLog(userID, id uint) error {
	res := config.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&models.CardioLog{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	PublishSnapshot(userID, CollectionCardio)
	return nil
}

func ListCardioLogs(userID uint) ([]models.CardioLog, error) {
	var logs []models.CardioLog
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&logs).Error
	return logs, err
}
