package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/roznerx/guater-sub000/services"
	"github.com/roznerx/guater-sub000/utils"
)

type ProfileController struct {
	Profiles *services.ProfileService
}

func NewProfileController(profiles *services.ProfileService) *ProfileController {
	return &ProfileController{Profiles: profiles}
}

func (pc *ProfileController) Get(c *gin.Context) {
	profile, err := pc.Profiles.Get(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (pc *ProfileController) Update(c *gin.Context) {
	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := pc.Profiles.Update(c.GetUint("userID"), input); err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, services.ErrUnsafeGoal),
			errors.Is(err, services.ErrInvalidUnit),
			errors.Is(err, services.ErrInvalidTimezone),
			errors.Is(err, services.ErrInvalidChoice):
			status = http.StatusBadRequest
		case errors.Is(err, services.ErrUserNotFound):
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "profile updated successfully"})
}

type OnboardingInput struct {
	DailyGoalML   int      `json:"daily_goal_ml" binding:"required"`
	Timezone      string   `json:"timezone" binding:"required"`
	WeightKg      *float64 `json:"weight_kg"`
	Age           *int     `json:"age"`
	ActivityLevel string   `json:"activity_level" binding:"required"`
	Climate       string   `json:"climate" binding:"required"`
}

func (pc *ProfileController) CompleteOnboarding(c *gin.Context) {
	var input OnboardingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := pc.Profiles.CompleteOnboarding(
		c.GetUint("userID"),
		input.DailyGoalML,
		input.Timezone,
		input.WeightKg,
		input.Age,
		input.ActivityLevel,
		input.Climate,
	)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, services.ErrUnsafeGoal),
			errors.Is(err, services.ErrInvalidTimezone),
			errors.Is(err, services.ErrInvalidChoice):
			status = http.StatusBadRequest
		case errors.Is(err, services.ErrUserNotFound):
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "onboarding complete"})
}

// Recommendation returns the formula-based daily intake. A profile with
// no usable weight/age gets {"recommended_ml": null} — the client hides
// the banner instead of erroring.
func (pc *ProfileController) Recommendation(c *gin.Context) {
	ml, err := pc.Profiles.Recommendation(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommended_ml": ml})
}

// CheckGoal grades a candidate goal without saving anything; onboarding
// screens call this as the user types.
func (pc *ProfileController) CheckGoal(c *gin.Context) {
	goalML, err := strconv.Atoi(c.Query("goal_ml"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "goal_ml must be an integer"})
		return
	}
	c.JSON(http.StatusOK, utils.AssessGoalHealth(goalML))
}
