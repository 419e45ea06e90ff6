package services

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gloverronan/HealthOS/config"
	"github.com/gloverronan/HealthOS/models"

	"gorm.io/gorm"
)

// MinQuantity is the floor every quantity edit clamps to.
const MinQuantity = 0.5

// Macros bundles the four tracked nutrient values.
type Macros struct {
	Cals float64 `json:"cals"`
	Prot float64 `json:"prot"`
	Carb float64 `json:"carb"`
	Fat  float64 `json:"fat"`
}

// ClampQuantity floors a requested quantity to MinQuantity.
func ClampQuantity(q float64) float64 {
	if q < MinQuantity {
		return MinQuantity
	}
	return q
}

// RescaleMacros recomputes macro totals for a new quantity from the
// per-unit base implied by the current values. Each field rounds to the
// nearest integer independently, so repeated rescaling is lossy.
func RescaleMacros(m Macros, oldQty, newQty float64) Macros {
	if oldQty <= 0 {
		oldQty = 1
	}
	return Macros{
		Cals: math.Round(m.Cals / oldQty * newQty),
		Prot: math.Round(m.Prot / oldQty * newQty),
		Carb: math.Round(m.Carb / oldQty * newQty),
		Fat:  math.Round(m.Fat / oldQty * newQty),
	}
}

// CategoryForTime classifies an HH:MM time into a meal category.
// Unparseable input falls through to Snack.
func CategoryForTime(hhmm string) string {
	h, _, ok := strings.Cut(hhmm, ":")
	if !ok {
		return models.CategorySnack
	}
	hour, err := strconv.Atoi(h)
	if err != nil {
		return models.CategorySnack
	}
	switch {
	case hour >= 5 && hour < 11:
		return models.CategoryBreakfast
	case hour >= 11 && hour < 15:
		return models.CategoryLunch
	case hour >= 15 && hour < 22:
		return models.CategoryDinner
	default:
		return models.CategorySnack
	}
}

// DailyTotals sums macros over the entries logged on one date.
func DailyTotals(logs []models.FoodLog, date string) Macros {
	var t Macros
	for _, l := range logs {
		if l.Date != date {
			continue
		}
		t.Cals += l.Cals
		t.Prot += l.Prot
		t.Carb += l.Carb
		t.Fat += l.Fat
	}
	return t
}

func validCategory(c string) bool {
	switch c {
	case models.CategoryBreakfast, models.CategoryLunch, models.CategoryDinner, models.CategorySnack:
		return true
	}
	return false
}

type FoodLogInput struct {
	Date     string  `json:"date" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	Quantity float64 `json:"quantity"`
	Cals     float64 `json:"cals"`
	Prot     float64 `json:"prot"`
	Carb     float64 `json:"carb"`
	Fat      float64 `json:"fat"`
	Time     string  `json:"time"`
	Category string  `json:"category"`
}

func (in *FoodLogInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return errors.New("name is required")
	}
	if in.Cals < 0 || in.Prot < 0 || in.Carb < 0 || in.Fat < 0 {
		return errors.New("macro values must be non-negative")
	}
	if in.Quantity == 0 {
		in.Quantity = 1
	}
	if in.Quantity < 0 {
		return errors.New("quantity must be positive")
	}
	in.Quantity = ClampQuantity(in.Quantity)
	if in.Category == "" {
		in.Category = CategoryForTime(in.Time)
	}
	if !validCategory(in.Category) {
		return fmt.Errorf("unknown category %q", in.Category)
	}
	return nil
}

func AddFoodLog(userID uint, in FoodLogInput) (*models.FoodLog, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	entry := &models.FoodLog{
		UserID:   userID,
		Date:     in.Date,
		Name:     in.Name,
		Quantity: in.Quantity,
		Cals:     in.Cals,
		Prot:     in.Prot,
		Carb:     in.Carb,
		Fat:      in.Fat,
		Time:     in.Time,
		Category: in.Category,
	}
	if err := config.DB.Create(entry).Error; err != nil {
		return nil, err
	}

	PublishSnapshot(userID, CollectionFood)
	return entry, nil
}

// UpdateFoodLog applies a direct field edit. Quantity changes from here
// do not rescale; use AdjustFoodQuantity for scaling edits.
func UpdateFoodLog(userID, id uint, in FoodLogInput) (*models.FoodLog, error) {
	var entry models.FoodLog
	if err := config.DB.
		Where("id = ? AND user_id = ?", id, userID).
		First(&entry).Error; err != nil {
		return nil, err
	}

	if in.Date == "" {
		in.Date = entry.Date
	}
	if in.Time == "" {
		in.Time = entry.Time
	}
	if in.Category == "" {
		in.Category = entry.Category
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	entry.Date = in.Date
	entry.Name = in.Name
	entry.Quantity = in.Quantity
	entry.Cals = in.Cals
	entry.Prot = in.Prot
	entry.Carb = in.Carb
	entry.Fat = in.Fat
	entry.Time = in.Time
	entry.Category = in.Category
	if err := config.DB.Save(&entry).Error; err != nil {
		return nil, err
	}

	PublishSnapshot(userID, CollectionFood)
	return &entry, nil
}

// AdjustFoodQuantity shifts an entry's quantity by delta (floored at
// MinQuantity) and rescales its macros from the stored per-unit base.
func AdjustFoodQuantity(userID, id uint, delta float64) (*models.FoodLog, error) {
	var entry models.FoodLog
	if err := config.DB.
		Where("id = ? AND user_id = ?", id, userID).
		First(&entry).Error; err != nil {
		return nil, err
	}

	oldQty := entry.Quantity
	if oldQty <= 0 {
		oldQty = 1
	}
	newQty := ClampQuantity(oldQty + delta)
	if newQty == oldQty {
		return &entry, nil
	}

	scaled := RescaleMacros(Macros{Cals: entry.Cals, Prot: entry.Prot, Carb: entry.Carb, Fat: entry.Fat}, oldQty, newQty)
	entry.Quantity = newQty
	entry.Cals = scaled.Cals
	entry.Prot = scaled.Prot
	entry.Carb = scaled.Carb
	entry.Fat = scaled.Fat
	if err := config.DB.Save(&entry).Error; err != nil {
		return nil, err
	}

	PublishSnapshot(userID, CollectionFood)
	return &entry, nil
}

// ReassignFoodCategory moves an entry to another meal category (the
// drag-reassignment operation).
func ReassignFoodCategory(userID, id uint, category string) (*models.FoodLog, error) {
	if !validCategory(category) {
		return nil, fmt.Errorf("unknown category %q", category)
	}
	var entry models.FoodLog
	if err := config.DB.
		Where("id = ? AND user_id = ?", id, userID).
		First(&entry).Error; err != nil {
		return nil, err
	}
	entry.Category = category
	if err := config.DB.Save(&entry).Error; err != nil {
		return nil, err
	}

	PublishSnapshot(userID, CollectionFood)
	return &entry, nil
}

func DeleteFoodLog(userID, id uint) error {
	res := config.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&models.FoodLog{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	PublishSnapshot(userID, CollectionFood)
	return nil
}

func ListFoodLogs(userID uint) ([]models.FoodLog, error) {
	var logs []models.FoodLog
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&logs).Error
	return logs, err
}

func ListFoodLogsByDate(userID uint, date string) ([]models.FoodLog, error) {
	var logs []models.FoodLog
	err := config.DB.
		Where("user_id = ? AND date = ?", userID, date).
		Order("created_at DESC, id DESC").
		Find(&logs).Error
	return logs, err
}
