package models

import (
	"time"

	"gorm.io/gorm"
)

// Activity levels and climates used for the recommended-intake formula.
const (
	ActivitySedentary  = "sedentary"
	ActivityModerate   = "moderate"
	ActivityActive     = "active"
	ActivityVeryActive = "very_active"

	ClimateCold      = "cold"
	ClimateTemperate = "temperate"
	ClimateHot       = "hot"
)

type User struct {
	gorm.Model
	PublicID            string `gorm:"uniqueIndex;size:36;not null"`
	Email               string `gorm:"uniqueIndex;not null"`
	Password            string `gorm:"not null"`
	DisplayName         string
	Timezone            string `gorm:"size:64;default:UTC"` // IANA name, falls back to UTC
	DailyGoalML         int    `gorm:"default:2000"`
	PreferredUnit       string `gorm:"size:2;default:ml"` // ml | oz
	WeightKg            *float64
	Age                 *int
	ActivityLevel       string `gorm:"size:16;default:moderate"`
	Climate             string `gorm:"size:16;default:temperate"`
	Theme               string `gorm:"size:8;default:light"`
	OnboardingCompleted bool
	RemindersEnabled    bool
	ResetToken          string
	ResetTokenExp       time.Time
	Disabled            bool
}
