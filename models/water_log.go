package models

import (
	"time"

	"gorm.io/gorm"
)

// How a water log came to exist.
const (
	SourceManual   = "manual"
	SourceQuick    = "quick"
	SourceReminder = "reminder"
)

type WaterLog struct {
	gorm.Model
	UserID   uint      `gorm:"index;not null"`
	AmountML int       `gorm:"not null"`
	LoggedAt time.Time `gorm:"index;not null"`
	Source   string    `gorm:"size:10;default:manual"`
	Note     string
}
