package models

import (
	"gorm.io/gorm"
)

// QuickPreset is a one-tap water shortcut. Presets keep insertion order:
// a new preset always gets sort_order = max + 1.
type QuickPreset struct {
	gorm.Model
	UserID    uint   `gorm:"index;not null"`
	Label     string `gorm:"not null"`
	AmountML  int    `gorm:"not null"`
	SortOrder int    `gorm:"not null;default:0"`
}

// DiureticPreset is the same shortcut idea for diuretic drinks.
type DiureticPreset struct {
	gorm.Model
	UserID         uint   `gorm:"index;not null"`
	Label          string `gorm:"not null"`
	AmountML       int    `gorm:"not null"`
	DiureticFactor float64 `gorm:"not null"`
	SortOrder      int    `gorm:"not null;default:0"`
}
