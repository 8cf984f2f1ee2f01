package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/roznerx/guater-sub000/services"
)

type WaterLogController struct {
	Logs     *services.WaterLogService
	Profiles *services.ProfileService
}

func NewWaterLogController(logs *services.WaterLogService, profiles *services.ProfileService) *WaterLogController {
	return &WaterLogController{Logs: logs, Profiles: profiles}
}

type WaterLogInput struct {
	AmountML int    `json:"amount_ml" binding:"required"`
	Source   string `json:"source"`
	Note     string `json:"note"`
	LoggedAt string `json:"logged_at"` // RFC3339, defaults to now
}

func (wc *WaterLogController) Create(c *gin.Context) {
	var input WaterLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var loggedAt time.Time
	if input.LoggedAt != "" {
		var err error
		loggedAt, err = time.Parse(time.RFC3339, input.LoggedAt)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "logged_at must be RFC3339"})
			return
		}
	}

	entry, err := wc.Logs.Create(c.Request.Context(), c.GetUint("userID"), input.AmountML, input.Source, input.Note, loggedAt)
	if err != nil {
		if errors.Is(err, services.ErrInvalidAmount) || errors.Is(err, services.ErrInvalidSource) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// List returns one civil day of logs; ?offset shifts whole days from
// today in the user's timezone (0 today, -1 yesterday).
func (wc *WaterLogController) List(c *gin.Context) {
	offset, err := dayOffset(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tz, err := wc.userTimezone(c)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	logs, err := wc.Logs.ListDay(c.Request.Context(), c.GetUint("userID"), tz, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, logs)
}

func (wc *WaterLogController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid log id"})
		return
	}

	var input struct {
		AmountML int `json:"amount_ml" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err = wc.Logs.UpdateAmount(c.Request.Context(), c.GetUint("userID"), uint(id), input.AmountML)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrLogNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (wc *WaterLogController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid log id"})
		return
	}

	if err := wc.Logs.Delete(c.Request.Context(), c.GetUint("userID"), uint(id)); err != nil {
		if errors.Is(err, services.ErrLogNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// ClearDay wipes today's water and diuretic logs together.
func (wc *WaterLogController) ClearDay(c *gin.Context) {
	tz, err := wc.userTimezone(c)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	if err := wc.Logs.ClearDay(c.Request.Context(), c.GetUint("userID"), tz); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

func (wc *WaterLogController) userTimezone(c *gin.Context) (string, error) {
	profile, err := wc.Profiles.Get(c.GetUint("userID"))
	if err != nil {
		return "", err
	}
	tz, _ := profile["timezone"].(string)
	return tz, nil
}

func dayOffset(c *gin.Context) (int, error) {
	raw := c.DefaultQuery("offset", "0")
	offset, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New("offset must be an integer")
	}
	return offset, nil
}
