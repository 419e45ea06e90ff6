package services

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/gloverronan/HealthOS/models"
	"github.com/gloverronan/HealthOS/utils"
	"gorm.io/gorm"
)

type SummaryService struct{ db *gorm.DB }

func NewSummaryService(db *gorm.DB) *SummaryService { return &SummaryService{db: db} }

// ---------- Daily ----------

type MacroProgress struct {
	Actual  float64 `json:"actual"`
	Target  float64 `json:"target"`
	Percent float64 `json:"percent"`
}

type WorkoutSummary struct {
	ID          uint   `json:"id"`
	WorkoutName string `json:"workout_name"`
	Exercises   int    `json:"exercises"`
	Sets        int    `json:"sets"`
}

type CardioSummary struct {
	ID       uint    `json:"id"`
	Type     string  `json:"type"`
	Distance float64 `json:"distance,omitempty"`
	Time     float64 `json:"time"`
	Calories int     `json:"calories"`
}

type DaySummary struct {
	Date string `json:"date"`

	Macros map[string]MacroProgress `json:"macros"` // calories, protein, carbs, fat

	Meals struct {
		Logged     int            `json:"logged"`
		ByCategory map[string]int `json:"by_category"`
	} `json:"meals"`

	Workouts     []WorkoutSummary `json:"workouts"`
	Cardio       []CardioSummary  `json:"cardio"`
	CardioBurned int              `json:"cardio_burned"`
	NetCalories  float64          `json:"net_calories"`
}

func (s *SummaryService) DaySummary(ctx context.Context, userID uint, date string) (*DaySummary, error) {
	if _, err := utils.ParseISODate(date); err != nil {
		return nil, errors.New("date must be YYYY-MM-DD")
	}

	var foods []models.FoodLog
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		Find(&foods).Error; err != nil {
		return nil, err
	}
	var gym []models.GymLog
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		Order("created_at DESC, id DESC").
		Find(&gym).Error; err != nil {
		return nil, err
	}
	var cardio []models.CardioLog
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		Order("created_at DESC, id DESC").
		Find(&cardio).Error; err != nil {
		return nil, err
	}

	goals, err := GetGoals(userID)
	if err != nil {
		return nil, err
	}
	totals := DailyTotals(foods, date)

	out := &DaySummary{Date: date}
	out.Macros = map[string]MacroProgress{
		"calories": {Actual: round2(totals.Cals), Target: round2(goals.Calories), Percent: pct(totals.Cals, goals.Calories)},
		"protein":  {Actual: round2(totals.Prot), Target: round2(goals.Protein), Percent: pct(totals.Prot, goals.Protein)},
		"carbs":    {Actual: round2(totals.Carb), Target: round2(goals.Carbs), Percent: pct(totals.Carb, goals.Carbs)},
		"fat":      {Actual: round2(totals.Fat), Target: round2(goals.Fat), Percent: pct(totals.Fat, goals.Fat)},
	}

	out.Meals.Logged = len(foods)
	out.Meals.ByCategory = map[string]int{}
	for _, f := range foods {
		out.Meals.ByCategory[f.Category]++
	}

	for _, g := range gym {
		sets := 0
		for _, ex := range g.Exercises {
			sets += len(ex.Sets)
		}
		out.Workouts = append(out.Workouts, WorkoutSummary{
			ID:          g.ID,
			WorkoutName: g.WorkoutName,
			Exercises:   len(g.Exercises),
			Sets:        sets,
		})
	}

	burned := 0
	for _, c := range cardio {
		out.Cardio = append(out.Cardio, CardioSummary{
			ID:       c.ID,
			Type:     c.Type,
			Distance: c.Distance,
			Time:     c.Time,
			Calories: c.Calories,
		})
		burned += c.Calories
	}
	out.CardioBurned = burned
	out.NetCalories = round2(totals.Cals - float64(burned))

	return out, nil
}

// ---------- Weekly ----------

type DayChart struct {
	Date        string             `json:"date"`
	Percentages map[string]float64 `json:"percentages"`
}

type DayDetailed struct {
	Date         string                   `json:"date"`
	Macros       map[string]MacroProgress `json:"macros"`
	MealsLogged  int                      `json:"meals_logged"`
	Workouts     int                      `json:"workouts"`
	CardioBurned int                      `json:"cardio_burned"`
}

type WeeklyOverviewResponse struct {
	WeekStart string      `json:"week_start"`
	Mode      string      `json:"mode"`
	Days      interface{} `json:"days"`
}

func (s *SummaryService) WeeklyOverview(
	ctx context.Context, userID uint, weekStart time.Time, mode string,
) (*WeeklyOverviewResponse, error) {

	if mode != "chart" && mode != "detailed" {
		return nil, errors.New("mode must be 'chart' or 'detailed'")
	}

	from := utils.LocalISODate(weekStart)
	to := utils.LocalISODate(weekStart.AddDate(0, 0, 6))

	var foods []models.FoodLog
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, from, to).
		Find(&foods).Error; err != nil {
		return nil, err
	}
	var gym []models.GymLog
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, from, to).
		Find(&gym).Error; err != nil {
		return nil, err
	}
	var cardio []models.CardioLog
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, from, to).
		Find(&cardio).Error; err != nil {
		return nil, err
	}

	goals, err := GetGoals(userID)
	if err != nil {
		return nil, err
	}

	// index per day
	foodIdx := map[string][]models.FoodLog{}
	for _, f := range foods {
		foodIdx[f.Date] = append(foodIdx[f.Date], f)
	}
	gymIdx := map[string]int{}
	for _, g := range gym {
		gymIdx[g.Date]++
	}
	burnIdx := map[string]int{}
	for _, c := range cardio {
		burnIdx[c.Date] += c.Calories
	}

	out := &WeeklyOverviewResponse{
		WeekStart: from,
		Mode:      mode,
	}

	if mode == "chart" {
		var days []DayChart
		for i := 0; i < 7; i++ {
			key := utils.LocalISODate(weekStart.AddDate(0, 0, i))
			totals := DailyTotals(foodIdx[key], key)
			days = append(days, DayChart{
				Date: key,
				Percentages: map[string]float64{
					"calories": pct(totals.Cals, goals.Calories),
					"protein":  pct(totals.Prot, goals.Protein),
					"carbs":    pct(totals.Carb, goals.Carbs),
					"fat":      pct(totals.Fat, goals.Fat),
				},
			})
		}
		out.Days = days
		return out, nil
	}

	var days []DayDetailed
	for i := 0; i < 7; i++ {
		key := utils.LocalISODate(weekStart.AddDate(0, 0, i))
		totals := DailyTotals(foodIdx[key], key)
		days = append(days, DayDetailed{
			Date: key,
			Macros: map[string]MacroProgress{
				"calories": {Actual: round2(totals.Cals), Target: round2(goals.Calories), Percent: pct(totals.Cals, goals.Calories)},
				"protein":  {Actual: round2(totals.Prot), Target: round2(goals.Protein), Percent: pct(totals.Prot, goals.Protein)},
				"carbs":    {Actual: round2(totals.Carb), Target: round2(goals.Carbs), Percent: pct(totals.Carb, goals.Carbs)},
				"fat":      {Actual: round2(totals.Fat), Target: round2(goals.Fat), Percent: pct(totals.Fat, goals.Fat)},
			},
			MealsLogged:  len(foodIdx[key]),
			Workouts:     gymIdx[key],
			CardioBurned: burnIdx[key],
		})
	}
	out.Days = days
	return out, nil
}

func pct(actual, goal float64) float64 {
	if goal <= 0 {
		if actual <= 0 {
			return 0
		}
		return 100
	}
	return round2((actual / goal) * 100.0)
}
func round2(v float64) float64 { return math.Round(v*100) / 100 }
