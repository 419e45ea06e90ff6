package controllers

import (
	"net/http"
	"time"

	"github.com/gloverronan/HealthOS/services"
	"github.com/gloverronan/HealthOS/utils"

	"github.com/gin-gonic/gin"
)

type SummaryController struct {
	Svc *services.SummaryService
}

func NewSummaryController(svc *services.SummaryService) *SummaryController {
	return &SummaryController{Svc: svc}
}

// GET /summary/day?date=2026-08-30 (defaults to today)
func (h *SummaryController) GetDaySummary(c *gin.Context) {
	uid := c.GetUint("userID")

	date := c.DefaultQuery("date", utils.LocalISODate(time.Now()))
	out, err := h.Svc.DaySummary(c.Request.Context(), uid, date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /summary/weekly?week_start=2026-08-24&mode=chart|detailed
func (h *SummaryController) GetWeeklyOverview(c *gin.Context) {
	uid := c.GetUint("userID")

	now := time.Now()
	weekStart := startOfWeek(now)
	if v := c.Query("week_start"); v != "" {
		ws, err := utils.ParseISODate(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid week_start"})
			return
		}
		weekStart = startOfWeek(ws)
	}
	mode := c.DefaultQuery("mode", "detailed")

	out, err := h.Svc.WeeklyOverview(c.Request.Context(), uid, weekStart, mode)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

func startOfWeek(t time.Time) time.Time {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7
	}
	tt := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return tt.AddDate(0, 0, -(wd - 1)) // Monday
}
