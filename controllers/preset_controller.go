package controllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/roznerx/guater-sub000/services"
)

type PresetController struct {
	Presets *services.PresetService
}

func NewPresetController(presets *services.PresetService) *PresetController {
	return &PresetController{Presets: presets}
}

func (pc *PresetController) ListWater(c *gin.Context) {
	presets, err := pc.Presets.ListWater(c.Request.Context(), c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, presets)
}

func (pc *PresetController) CreateWater(c *gin.Context) {
	var input struct {
		Label    string `json:"label" binding:"required"`
		AmountML int    `json:"amount_ml" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	preset, err := pc.Presets.CreateWater(c.Request.Context(), c.GetUint("userID"), input.Label, input.AmountML)
	if err != nil {
		if errors.Is(err, services.ErrInvalidAmount) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, preset)
}

func (pc *PresetController) DeleteWater(c *gin.Context) {
	pc.delete(c, pc.Presets.DeleteWater)
}

func (pc *PresetController) ListDiuretic(c *gin.Context) {
	presets, err := pc.Presets.ListDiuretic(c.Request.Context(), c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, presets)
}

func (pc *PresetController) CreateDiuretic(c *gin.Context) {
	var input struct {
		Label          string  `json:"label" binding:"required"`
		AmountML       int     `json:"amount_ml" binding:"required"`
		DiureticFactor float64 `json:"diuretic_factor" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	preset, err := pc.Presets.CreateDiuretic(
		c.Request.Context(),
		c.GetUint("userID"),
		input.Label,
		input.AmountML,
		input.DiureticFactor,
	)
	if err != nil {
		if errors.Is(err, services.ErrInvalidAmount) || errors.Is(err, services.ErrInvalidFactor) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, preset)
}

func (pc *PresetController) DeleteDiuretic(c *gin.Context) {
	pc.delete(c, pc.Presets.DeleteDiuretic)
}

func (pc *PresetController) delete(c *gin.Context, del func(ctx context.Context, userID, presetID uint) error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid preset id"})
		return
	}

	if err := del(c.Request.Context(), c.GetUint("userID"), uint(id)); err != nil {
		if errors.Is(err, services.ErrPresetNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
