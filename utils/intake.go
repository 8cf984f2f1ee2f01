package utils

import (
	"errors"
	"math"

	"github.com/roznerx/guater-sub000/models"
)

// Validation errors for the pure formulas. Callers are expected to
// validate before invoking; these functions never sanitize inputs.
var (
	ErrInvalidInput = errors.New("weight and age must be positive")
	ErrInvalidGoal  = errors.New("daily goal must be positive")
)

// Extra ml granted per activity level on top of the weight base.
var activityBonusML = map[string]int{
	models.ActivitySedentary:  0,
	models.ActivityModerate:   300,
	models.ActivityActive:     600,
	models.ActivityVeryActive: 1000,
}

// Climate adjustment in ml; cold climates reduce the recommendation.
var climateBonusML = map[string]int{
	models.ClimateCold:      -200,
	models.ClimateTemperate: 0,
	models.ClimateHot:       500,
}

// RecommendedIntake computes a daily water target in ml:
// weight x 35, plus activity and climate adjustments, reduced by 5%
// past age 55, rounded to the nearest 50 ml. Unknown activity/climate
// strings contribute nothing.
func RecommendedIntake(weightKg float64, age int, activityLevel, climate string) (int, error) {
	if weightKg <= 0 || age <= 0 {
		return 0, ErrInvalidInput
	}

	intake := weightKg*35 + float64(activityBonusML[activityLevel]) + float64(climateBonusML[climate])
	if age > 55 {
		intake *= 0.95
	}

	return int(math.Round(intake/50)) * 50, nil
}

// ProgressStats describes how a consumed amount stands against a goal.
type ProgressStats struct {
	Percentage  int `json:"percentage"` // capped at 100
	RemainingML int `json:"remaining_ml"`
	OverGoalML  int `json:"over_goal_ml"`
}

// Progress computes goal completion. Percentage is rounded and capped
// at 100; remaining and over-goal never go negative.
func Progress(consumedML, goalML int) (ProgressStats, error) {
	if goalML <= 0 {
		return ProgressStats{}, ErrInvalidGoal
	}

	pct := int(math.Round(float64(consumedML) / float64(goalML) * 100))
	if pct > 100 {
		pct = 100
	}

	stats := ProgressStats{Percentage: pct}
	if rem := goalML - consumedML; rem > 0 {
		stats.RemainingML = rem
	}
	if over := consumedML - goalML; over > 0 {
		stats.OverGoalML = over
	}
	return stats, nil
}

// DiureticNetLossML is the fluid cost of a diuretic drink:
// round(amount x factor).
func DiureticNetLossML(amountML int, factor float64) int {
	return int(math.Round(float64(amountML) * factor))
}
