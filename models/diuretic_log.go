package models

import (
	"time"

	"gorm.io/gorm"
)

// DiureticLog records a drink that costs fluid rather than adding it.
// Net loss is round(AmountML * DiureticFactor).
type DiureticLog struct {
	gorm.Model
	UserID         uint `gorm:"index;not null"`
	PresetID       *uint
	Label          string
	AmountML       int       `gorm:"not null"`
	DiureticFactor float64   `gorm:"not null"` // in (0, 1]
	LoggedAt       time.Time `gorm:"index;not null"`
}
