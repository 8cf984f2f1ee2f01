package services

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/roznerx/guater-sub000/models"
	"github.com/roznerx/guater-sub000/utils"
)

// Nudges are only sent inside this local-hour band.
const (
	nudgeEarliestHour = 8
	nudgeLatestHour   = 21
)

// ReminderService nudges opted-in users who are behind on today's goal.
// Nudges go out over the realtime hub; a client that logs from one
// records the drink with source "reminder".
type ReminderService struct {
	db  *gorm.DB
	hub *RealtimeHub
}

func NewReminderService(db *gorm.DB, hub *RealtimeHub) *ReminderService {
	return &ReminderService{db: db, hub: hub}
}

// Start schedules the hourly sweep and returns the cron handle so the
// caller can stop it on shutdown.
func (s *ReminderService) Start() *cron.Cron {
	c := cron.New()
	if _, err := c.AddFunc("0 * * * *", s.RunSweep); err != nil {
		log.Fatalf("reminder cron: %v", err)
	}
	c.Start()
	return c
}

func (s *ReminderService) RunSweep() {
	ctx := context.Background()

	var users []models.User
	if err := s.db.WithContext(ctx).
		Where("reminders_enabled = ? AND disabled = ?", true, false).
		Find(&users).Error; err != nil {
		log.Errorf("reminder sweep: %v", err)
		return
	}

	now := time.Now()
	for _, u := range users {
		hour := now.In(utils.LoadLocationOrUTC(u.Timezone)).Hour()
		if hour < nudgeEarliestHour || hour > nudgeLatestHour {
			continue
		}
		if u.DailyGoalML <= 0 {
			continue
		}

		window := utils.DayRange(u.Timezone, 0)
		var total int64
		if err := s.db.WithContext(ctx).
			Model(&models.WaterLog{}).
			Where("user_id = ? AND logged_at BETWEEN ? AND ?", u.ID, window.Start, window.End).
			Select("COALESCE(SUM(amount_ml), 0)").
			Scan(&total).Error; err != nil {
			log.Warnf("reminder total for user %d: %v", u.ID, err)
			continue
		}
		if int(total) >= u.DailyGoalML {
			continue
		}

		s.hub.Broadcast(u.ID, EventReminderNudge, map[string]any{
			"goal_ml":      u.DailyGoalML,
			"total_ml":     int(total),
			"remaining_ml": u.DailyGoalML - int(total),
		})
	}
}
