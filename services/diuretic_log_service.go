package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/roznerx/guater-sub000/models"
	"github.com/roznerx/guater-sub000/utils"
)

var (
	ErrInvalidFactor  = errors.New("diuretic_factor must be in (0, 1]")
	ErrPresetNotFound = errors.New("preset not found")
)

type DiureticLogService struct{ db *gorm.DB }

func NewDiureticLogService(db *gorm.DB) *DiureticLogService {
	return &DiureticLogService{db: db}
}

// Create logs a diuretic drink. When presetID is given, label, amount
// and factor default from the preset; explicit values win.
func (s *DiureticLogService) Create(
	ctx context.Context,
	userID uint,
	presetID *uint,
	label string,
	amountML int,
	factor float64,
	loggedAt time.Time,
) (*models.DiureticLog, error) {
	if presetID != nil {
		var preset models.DiureticPreset
		if err := s.db.WithContext(ctx).
			Where("id = ? AND user_id = ?", *presetID, userID).
			First(&preset).Error; err != nil {
			return nil, ErrPresetNotFound
		}
		if label == "" {
			label = preset.Label
		}
		if amountML == 0 {
			amountML = preset.AmountML
		}
		if factor == 0 {
			factor = preset.DiureticFactor
		}
	}

	if amountML <= 0 {
		return nil, ErrInvalidAmount
	}
	if factor <= 0 || factor > 1 {
		return nil, ErrInvalidFactor
	}
	if loggedAt.IsZero() {
		loggedAt = time.Now()
	}

	entry := models.DiureticLog{
		UserID:         userID,
		PresetID:       presetID,
		Label:          label,
		AmountML:       amountML,
		DiureticFactor: factor,
		LoggedAt:       loggedAt,
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *DiureticLogService) ListDay(ctx context.Context, userID uint, tz string, offset int) ([]models.DiureticLog, error) {
	window := utils.DayRange(tz, offset)

	var logs []models.DiureticLog
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND logged_at BETWEEN ? AND ?", userID, window.Start, window.End).
		Order("logged_at ASC").
		Find(&logs).Error
	return logs, err
}

func (s *DiureticLogService) Delete(ctx context.Context, userID, logID uint) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", logID, userID).
		Delete(&models.DiureticLog{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrLogNotFound
	}
	return nil
}
