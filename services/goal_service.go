package services

import (
	"errors"

	"github.com/gloverronan/HealthOS/config"
	"github.com/gloverronan/HealthOS/models"

	"gorm.io/gorm"
)

// DefaultGoals are the targets applied before a user saves their own.
var DefaultGoals = models.DailyGoal{Calories: 2350, Protein: 180, Carbs: 250, Fat: 80}

func GetGoals(userID uint) (*models.DailyGoal, error) {
	var goal models.DailyGoal
	err := config.DB.Where("user_id = ?", userID).First(&goal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			defaults := DefaultGoals
			defaults.UserID = userID
			return &defaults, nil
		}
		return nil, err
	}
	return &goal, nil
}

func UpsertGoals(userID uint, calories, protein, carbs, fat float64) error {
	if calories <= 0 || protein < 0 || carbs < 0 || fat < 0 {
		return errors.New("goal values must be positive")
	}

	var goal models.DailyGoal
	err := config.DB.Where("user_id = ?", userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		goal = models.DailyGoal{
			UserID:   userID,
			Calories: calories,
			Protein:  protein,
			Carbs:    carbs,
			Fat:      fat,
		}
		return config.DB.Create(&goal).Error
	}
	if err != nil {
		return err
	}

	goal.Calories = calories
	goal.Protein = protein
	goal.Carbs = carbs
	goal.Fat = fat

	return config.DB.Save(&goal).Error
}
