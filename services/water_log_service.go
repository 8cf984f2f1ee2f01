package services

import (
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/roznerx/guater-sub000/models"
	"github.com/roznerx/guater-sub000/utils"
)

var (
	ErrInvalidAmount = errors.New("amount_ml must be positive")
	ErrInvalidSource = errors.New("unknown log source")
	ErrLogNotFound   = errors.New("log not found")
)

type WaterLogService struct {
	db  *gorm.DB
	hub *RealtimeHub
}

func NewWaterLogService(db *gorm.DB, hub *RealtimeHub) *WaterLogService {
	return &WaterLogService{db: db, hub: hub}
}

func (s *WaterLogService) Create(
	ctx context.Context,
	userID uint,
	amountML int,
	source, note string,
	loggedAt time.Time,
) (*models.WaterLog, error) {
	if amountML <= 0 {
		return nil, ErrInvalidAmount
	}
	switch source {
	case "":
		source = models.SourceManual
	case models.SourceManual, models.SourceQuick, models.SourceReminder:
	default:
		return nil, ErrInvalidSource
	}
	if loggedAt.IsZero() {
		loggedAt = time.Now()
	}

	entry := models.WaterLog{
		UserID:   userID,
		AmountML: amountML,
		LoggedAt: loggedAt,
		Source:   source,
		Note:     note,
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, err
	}

	s.notify(ctx, userID, &entry)
	return &entry, nil
}

// notify pushes log.created, and goal.met exactly once — on the log
// that carries the day's total across the goal line.
func (s *WaterLogService) notify(ctx context.Context, userID uint, entry *models.WaterLog) {
	if s.hub == nil {
		return
	}

	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		return
	}

	window := utils.DayRange(user.Timezone, 0)
	total, err := s.sumRange(ctx, userID, window.Start, window.End)
	if err != nil {
		log.Warnf("day total for user %d: %v", userID, err)
		return
	}

	s.hub.Broadcast(userID, EventLogCreated, map[string]any{
		"amount_ml": entry.AmountML,
		"total_ml":  total,
		"source":    entry.Source,
	})

	goal := user.DailyGoalML
	if goal > 0 && total >= goal && total-entry.AmountML < goal {
		s.hub.Broadcast(userID, EventGoalMet, map[string]any{
			"goal_ml":  goal,
			"total_ml": total,
		})
	}
}

func (s *WaterLogService) sumRange(ctx context.Context, userID uint, start, end time.Time) (int, error) {
	var total int64
	err := s.db.WithContext(ctx).
		Model(&models.WaterLog{}).
		Where("user_id = ? AND logged_at BETWEEN ? AND ?", userID, start, end).
		Select("COALESCE(SUM(amount_ml), 0)").
		Scan(&total).Error
	return int(total), err
}

// ListDay returns the logs of one civil day, offset whole days from
// today in the user's timezone.
func (s *WaterLogService) ListDay(ctx context.Context, userID uint, tz string, offset int) ([]models.WaterLog, error) {
	window := utils.DayRange(tz, offset)

	var logs []models.WaterLog
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND logged_at BETWEEN ? AND ?", userID, window.Start, window.End).
		Order("logged_at ASC").
		Find(&logs).Error
	return logs, err
}

// UpdateAmount is the only permitted edit on a water log.
func (s *WaterLogService) UpdateAmount(ctx context.Context, userID, logID uint, amountML int) error {
	if amountML <= 0 {
		return ErrInvalidAmount
	}

	res := s.db.WithContext(ctx).
		Model(&models.WaterLog{}).
		Where("id = ? AND user_id = ?", logID, userID).
		Update("amount_ml", amountML)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrLogNotFound
	}
	return nil
}

func (s *WaterLogService) Delete(ctx context.Context, userID, logID uint) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", logID, userID).
		Delete(&models.WaterLog{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrLogNotFound
	}
	return nil
}

// ClearDay wipes today's water and diuretic logs in one transaction, so
// a failure can never leave one table cleared and the other not.
func (s *WaterLogService) ClearDay(ctx context.Context, userID uint, tz string) error {
	window := utils.DayRange(tz, 0)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("user_id = ? AND logged_at BETWEEN ? AND ?", userID, window.Start, window.End).
			Delete(&models.WaterLog{}).Error; err != nil {
			return err
		}
		return tx.
			Where("user_id = ? AND logged_at BETWEEN ? AND ?", userID, window.Start, window.End).
			Delete(&models.DiureticLog{}).Error
	})
}
