package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/roznerx/guater-sub000/models"
	"github.com/roznerx/guater-sub000/utils"
)

var (
	ErrUnsafeGoal      = errors.New("daily goal outside the safe range")
	ErrInvalidUnit     = errors.New("preferred_unit must be ml or oz")
	ErrInvalidTimezone = errors.New("unknown timezone")
	ErrInvalidChoice   = errors.New("unknown activity level or climate")
)

type ProfileService struct{ db *gorm.DB }

func NewProfileService(db *gorm.DB) *ProfileService { return &ProfileService{db: db} }

// ProfileInput carries partial updates; nil fields are left untouched.
type ProfileInput struct {
	DisplayName      *string  `json:"display_name"`
	Timezone         *string  `json:"timezone"`
	DailyGoalML      *int     `json:"daily_goal_ml"`
	PreferredUnit    *string  `json:"preferred_unit"`
	WeightKg         *float64 `json:"weight_kg"`
	Age              *int     `json:"age"`
	ActivityLevel    *string  `json:"activity_level"`
	Climate          *string  `json:"climate"`
	Theme            *string  `json:"theme"`
	RemindersEnabled *bool    `json:"reminders_enabled"`
}

func (s *ProfileService) Get(userID uint) (map[string]interface{}, error) {
	var user models.User
	if err := s.db.Where("id = ? AND disabled = ?", userID, false).First(&user).Error; err != nil {
		return nil, ErrUserNotFound
	}

	return map[string]interface{}{
		"id":                   user.PublicID,
		"email":                user.Email,
		"display_name":         user.DisplayName,
		"timezone":             user.Timezone,
		"daily_goal_ml":        user.DailyGoalML,
		"preferred_unit":       user.PreferredUnit,
		"weight_kg":            user.WeightKg,
		"age":                  user.Age,
		"activity_level":       user.ActivityLevel,
		"climate":              user.Climate,
		"theme":                user.Theme,
		"onboarding_completed": user.OnboardingCompleted,
		"reminders_enabled":    user.RemindersEnabled,
	}, nil
}

// Update applies a partial profile change. A goal in the danger band is
// rejected outright; warnings are the caller's business to display.
func (s *ProfileService) Update(userID uint, input ProfileInput) error {
	var user models.User
	if err := s.db.Where("id = ? AND disabled = ?", userID, false).First(&user).Error; err != nil {
		return ErrUserNotFound
	}

	if input.DisplayName != nil {
		user.DisplayName = *input.DisplayName
	}
	if input.Timezone != nil {
		if _, err := time.LoadLocation(*input.Timezone); err != nil {
			return ErrInvalidTimezone
		}
		user.Timezone = *input.Timezone
	}
	if input.DailyGoalML != nil {
		if a := utils.AssessGoalHealth(*input.DailyGoalML); a.Level == utils.GoalLevelDanger {
			return fmt.Errorf("%w: %s", ErrUnsafeGoal, a.Message)
		}
		user.DailyGoalML = *input.DailyGoalML
	}
	if input.PreferredUnit != nil {
		if *input.PreferredUnit != "ml" && *input.PreferredUnit != "oz" {
			return ErrInvalidUnit
		}
		user.PreferredUnit = *input.PreferredUnit
	}
	if input.WeightKg != nil {
		user.WeightKg = input.WeightKg
	}
	if input.Age != nil {
		user.Age = input.Age
	}
	if input.ActivityLevel != nil {
		if !validActivity(*input.ActivityLevel) {
			return ErrInvalidChoice
		}
		user.ActivityLevel = *input.ActivityLevel
	}
	if input.Climate != nil {
		if !validClimate(*input.Climate) {
			return ErrInvalidChoice
		}
		user.Climate = *input.Climate
	}
	if input.Theme != nil {
		user.Theme = *input.Theme
	}
	if input.RemindersEnabled != nil {
		user.RemindersEnabled = *input.RemindersEnabled
	}

	return s.db.Save(&user).Error
}

// CompleteOnboarding records the initial profile in one shot and flips
// the onboarding flag.
func (s *ProfileService) CompleteOnboarding(
	userID uint,
	dailyGoalML int,
	timezone string,
	weightKg *float64,
	age *int,
	activityLevel, climate string,
) error {
	if a := utils.AssessGoalHealth(dailyGoalML); a.Level == utils.GoalLevelDanger {
		return fmt.Errorf("%w: %s", ErrUnsafeGoal, a.Message)
	}
	if _, err := time.LoadLocation(timezone); err != nil {
		return ErrInvalidTimezone
	}
	if !validActivity(activityLevel) || !validClimate(climate) {
		return ErrInvalidChoice
	}

	var user models.User
	if err := s.db.Where("id = ? AND disabled = ?", userID, false).First(&user).Error; err != nil {
		return ErrUserNotFound
	}

	user.DailyGoalML = dailyGoalML
	user.Timezone = timezone
	user.WeightKg = weightKg
	user.Age = age
	user.ActivityLevel = activityLevel
	user.Climate = climate
	user.OnboardingCompleted = true

	return s.db.Save(&user).Error
}

// Recommendation returns the formula-based daily intake, or nil when
// the profile lacks usable weight/age — the UI suppresses the banner
// instead of showing an error.
func (s *ProfileService) Recommendation(userID uint) (*int, error) {
	var user models.User
	if err := s.db.Where("id = ? AND disabled = ?", userID, false).First(&user).Error; err != nil {
		return nil, ErrUserNotFound
	}

	if user.WeightKg == nil || user.Age == nil {
		return nil, nil
	}

	ml, err := utils.RecommendedIntake(*user.WeightKg, *user.Age, user.ActivityLevel, user.Climate)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidInput) {
			return nil, nil // cannot compute, not a failure
		}
		return nil, err
	}
	return &ml, nil
}

func validActivity(level string) bool {
	switch level {
	case models.ActivitySedentary, models.ActivityModerate, models.ActivityActive, models.ActivityVeryActive:
		return true
	}
	return false
}

func validClimate(climate string) bool {
	switch climate {
	case models.ClimateCold, models.ClimateTemperate, models.ClimateHot:
		return true
	}
	return false
}
