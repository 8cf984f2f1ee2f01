package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/roznerx/guater-sub000/services"
)

type SummaryController struct {
	Summaries *services.SummaryService
}

func NewSummaryController(summaries *services.SummaryService) *SummaryController {
	return &SummaryController{Summaries: summaries}
}

// Daily returns one day's aggregate; ?offset shifts whole civil days
// (0 today, -1 yesterday) in the user's timezone.
func (sc *SummaryController) Daily(c *gin.Context) {
	offset, err := dayOffset(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := sc.Summaries.Daily(c.Request.Context(), c.GetUint("userID"), offset)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// Monthly returns the calendar aggregate; ?offset shifts whole months.
func (sc *SummaryController) Monthly(c *gin.Context) {
	offset, err := dayOffset(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := sc.Summaries.Monthly(c.Request.Context(), c.GetUint("userID"), offset)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (sc *SummaryController) Streak(c *gin.Context) {
	streak, err := sc.Summaries.Streak(c.Request.Context(), c.GetUint("userID"))
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"streak_days": streak})
}
