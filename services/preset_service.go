package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/roznerx/guater-sub000/models"
)

// PresetService covers both preset tables with one parametrized data
// path, instead of a near-identical service per table.
type PresetService struct{ db *gorm.DB }

func NewPresetService(db *gorm.DB) *PresetService { return &PresetService{db: db} }

// nextSortOrder keeps presets append-only ordered: max + 1.
func (s *PresetService) nextSortOrder(ctx context.Context, model interface{}, userID uint) (int, error) {
	var max int64
	err := s.db.WithContext(ctx).
		Model(model).
		Where("user_id = ?", userID).
		Select("COALESCE(MAX(sort_order), 0)").
		Scan(&max).Error
	return int(max) + 1, err
}

func (s *PresetService) ListWater(ctx context.Context, userID uint) ([]models.QuickPreset, error) {
	var presets []models.QuickPreset
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("sort_order ASC").
		Find(&presets).Error
	return presets, err
}

func (s *PresetService) CreateWater(ctx context.Context, userID uint, label string, amountML int) (*models.QuickPreset, error) {
	if amountML <= 0 {
		return nil, ErrInvalidAmount
	}

	order, err := s.nextSortOrder(ctx, &models.QuickPreset{}, userID)
	if err != nil {
		return nil, err
	}

	preset := models.QuickPreset{
		UserID:    userID,
		Label:     label,
		AmountML:  amountML,
		SortOrder: order,
	}
	if err := s.db.WithContext(ctx).Create(&preset).Error; err != nil {
		return nil, err
	}
	return &preset, nil
}

func (s *PresetService) DeleteWater(ctx context.Context, userID, presetID uint) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", presetID, userID).
		Delete(&models.QuickPreset{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrPresetNotFound
	}
	return nil
}

func (s *PresetService) ListDiuretic(ctx context.Context, userID uint) ([]models.DiureticPreset, error) {
	var presets []models.DiureticPreset
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("sort_order ASC").
		Find(&presets).Error
	return presets, err
}

func (s *PresetService) CreateDiuretic(
	ctx context.Context,
	userID uint,
	label string,
	amountML int,
	factor float64,
) (*models.DiureticPreset, error) {
	if amountML <= 0 {
		return nil, ErrInvalidAmount
	}
	if factor <= 0 || factor > 1 {
		return nil, ErrInvalidFactor
	}

	order, err := s.nextSortOrder(ctx, &models.DiureticPreset{}, userID)
	if err != nil {
		return nil, err
	}

	preset := models.DiureticPreset{
		UserID:         userID,
		Label:          label,
		AmountML:       amountML,
		DiureticFactor: factor,
		SortOrder:      order,
	}
	if err := s.db.WithContext(ctx).Create(&preset).Error; err != nil {
		return nil, err
	}
	return &preset, nil
}

func (s *PresetService) DeleteDiuretic(ctx context.Context, userID, presetID uint) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", presetID, userID).
		Delete(&models.DiureticPreset{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrPresetNotFound
	}
	return nil
}
