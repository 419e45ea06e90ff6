package services

import (
	"errors"

	"github.com/gloverronan/HealthOS/config"
	"github.com/gloverronan/HealthOS/models"

	"gorm.io/gorm"
)

// DefaultWorkouts are the code-defined presets every user starts from.
var DefaultWorkouts = models.TemplateList{
	{
		ID:    "push",
		Name:  "Push",
		Color: "#ec4899",
		Emoji: "😤",
		Exercises: []models.TemplateExercise{
			{Name: "Bench Press"},
			{Name: "Overhead Press"},
			{Name: "Incline Dumbbell Press"},
			{Name: "Lateral Raises"},
			{Name: "Tricep Pushdowns"},
			{Name: "Skullcrushers"},
		},
	},
	{
		ID:    "legs",
		Name:  "Legs",
		Color: "#3b82f6",
		Emoji: "🍗",
		Exercises: []models.TemplateExercise{
			{Name: "Squat"},
			{Name: "Romanian Deadlift"},
			{Name: "Leg Press"},
			{Name: "Leg Extensions"},
			{Name: "Hamstring Curls"},
			{Name: "Calf Raises"},
		},
	},
	{
		ID:    "pull",
		Name:  "Pull",
		Color: "#10b981",
		Emoji: "🦍",
		Exercises: []models.TemplateExercise{
			{Name: "Pull-ups", Bodyweight: true},
			{Name: "Barbell Row"},
			{Name: "Lat Pulldowns"},
			{Name: "Face Pulls"},
			{Name: "Bicep Curls"},
			{Name: "Hammer Curls"},
		},
	},
}

// MergeTemplates overlays a stored template list onto the code defaults:
// for each stored template with a matching default id, stored fields win
// where present and default fields backfill what older saves lack (e.g.
// the emoji added after a user first customized). Templates the user
// created themselves pass through untouched. An empty stored list means
// the user never customized, so the defaults apply wholesale.
func MergeTemplates(stored models.TemplateList) models.TemplateList {
	if len(stored) == 0 {
		return append(models.TemplateList{}, DefaultWorkouts...)
	}

	defaults := map[string]models.WorkoutTemplate{}
	for _, d := range DefaultWorkouts {
		defaults[d.ID] = d
	}

	out := make(models.TemplateList, 0, len(stored))
	for _, w := range stored {
		def, ok := defaults[w.ID]
		if !ok {
			out = append(out, w)
			continue
		}
		merged := def
		if w.Name != "" {
			merged.Name = w.Name
		}
		if w.Color != "" {
			merged.Color = w.Color
		}
		if w.Emoji != "" {
			merged.Emoji = w.Emoji
		}
		if len(w.Exercises) > 0 {
			merged.Exercises = w.Exercises
		}
		out = append(out, merged)
	}
	return out
}

func GetWorkoutTemplates(userID uint) (models.TemplateList, error) {
	var doc models.WorkoutTemplateDoc
	err := config.DB.Where("user_id = ?", userID).First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return MergeTemplates(nil), nil
	}
	if err != nil {
		return nil, err
	}
	return MergeTemplates(doc.List), nil
}

func SaveWorkoutTemplates(userID uint, list models.TemplateList) error {
	for _, w := range list {
		if w.ID == "" || w.Name == "" {
			return errors.New("every template needs an id and a name")
		}
	}

	var doc models.WorkoutTemplateDoc
	err := config.DB.Where("user_id = ?", userID).First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		doc = models.WorkoutTemplateDoc{UserID: userID, List: list}
		return config.DB.Create(&doc).Error
	}
	if err != nil {
		return err
	}

	doc.List = list
	return config.DB.Save(&doc).Error
}
