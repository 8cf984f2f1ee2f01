package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/roznerx/guater-sub000/services"
)

type DiureticLogController struct {
	Logs     *services.DiureticLogService
	Profiles *services.ProfileService
}

func NewDiureticLogController(logs *services.DiureticLogService, profiles *services.ProfileService) *DiureticLogController {
	return &DiureticLogController{Logs: logs, Profiles: profiles}
}

type DiureticLogInput struct {
	PresetID       *uint   `json:"preset_id"`
	Label          string  `json:"label"`
	AmountML       int     `json:"amount_ml"`
	DiureticFactor float64 `json:"diuretic_factor"`
	LoggedAt       string  `json:"logged_at"`
}

func (dc *DiureticLogController) Create(c *gin.Context) {
	var input DiureticLogInput
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

	entry, err := dc.Logs.Create(
		c.Request.Context(),
		c.GetUint("userID"),
		input.PresetID,
		input.Label,
		input.AmountML,
		input.DiureticFactor,
		loggedAt,
	)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidAmount), errors.Is(err, services.ErrInvalidFactor):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrPresetNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (dc *DiureticLogController) List(c *gin.Context) {
	offset, err := dayOffset(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := dc.Profiles.Get(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	tz, _ := profile["timezone"].(string)

	logs, err := dc.Logs.ListDay(c.Request.Context(), c.GetUint("userID"), tz, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, logs)
}

func (dc *DiureticLogController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid log id"})
		return
	}

	if err := dc.Logs.Delete(c.Request.Context(), c.GetUint("userID"), uint(id)); err != nil {
		if errors.Is(err, services.ErrLogNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
