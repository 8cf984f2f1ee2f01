package services

import (
	"context"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/roznerx/guater-sub000/models"
)

type AccountService struct{ db *gorm.DB }

func NewAccountService(db *gorm.DB) *AccountService { return &AccountService{db: db} }

// DeleteAllData wipes every row the user owns — logs and presets — and
// resets the onboarding flag, all in a single transaction. The account
// itself survives; it is a data reset, not a deletion.
func (s *AccountService) DeleteAllData(ctx context.Context, userID uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		owned := []interface{}{
			&models.WaterLog{},
			&models.DiureticLog{},
			&models.QuickPreset{},
			&models.DiureticPreset{},
		}
		for _, m := range owned {
			if err := tx.Unscoped().Where("user_id = ?", userID).Delete(m).Error; err != nil {
				return err
			}
		}
		return tx.Model(&models.User{}).
			Where("id = ?", userID).
			Update("onboarding_completed", false).Error
	})
	if err != nil {
		return err
	}

	log.WithField("user_id", userID).Info("account data wiped")
	return nil
}

// Deactivate disables the account. Rows stay; every authenticated read
// filters on disabled = false, so the user simply stops existing to the
// API until support flips the flag back.
func (s *AccountService) Deactivate(ctx context.Context, userID uint) error {
	res := s.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ? AND disabled = ?", userID, false).
		Update("disabled", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}

	log.WithField("user_id", userID).Info("account deactivated")
	return nil
}
