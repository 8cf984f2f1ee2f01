package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/roznerx/guater-sub000/models"
	"github.com/roznerx/guater-sub000/utils"
)

type SummaryService struct {
	db  *gorm.DB
	now func() time.Time // overridable clock, pins "today" in tests
}

func NewSummaryService(db *gorm.DB) *SummaryService {
	return &SummaryService{db: db, now: time.Now}
}

type DailySummary struct {
	Date           string              `json:"date"`
	GoalML         int                 `json:"goal_ml"`
	TotalIntakeML  int                 `json:"total_intake_ml"`
	DiureticLossML int                 `json:"diuretic_loss_ml"`
	NetIntakeML    int                 `json:"net_intake_ml"`
	GoalMet        bool                `json:"goal_met"`
	Progress       utils.ProgressStats `json:"progress"`
	Logs           []models.WaterLog   `json:"logs"`
}

type MonthlyDay struct {
	Date          string `json:"date"`
	TotalIntakeML int    `json:"total_intake_ml"`
	GoalMet       bool   `json:"goal_met"`
}

type MonthlySummary struct {
	Label       string       `json:"label"`
	DaysInMonth int          `json:"days_in_month"`
	GoalML      int          `json:"goal_ml"`
	DaysGoalMet int          `json:"days_goal_met"`
	Days        []MonthlyDay `json:"days"`
}

// Daily aggregates one civil day (offset days from today, user's tz).
// Progress and goal-met are judged on gross water intake; the diuretic
// loss and net figure are reported alongside.
func (s *SummaryService) Daily(ctx context.Context, userID uint, offset int) (*DailySummary, error) {
	user, err := s.user(ctx, userID)
	if err != nil {
		return nil, err
	}

	window := utils.DayRangeAt(s.now(), user.Timezone, offset)

	var waterLogs []models.WaterLog
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND logged_at BETWEEN ? AND ?", userID, window.Start, window.End).
		Order("logged_at ASC").
		Find(&waterLogs).Error; err != nil {
		return nil, err
	}

	var diuretics []models.DiureticLog
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND logged_at BETWEEN ? AND ?", userID, window.Start, window.End).
		Find(&diuretics).Error; err != nil {
		return nil, err
	}

	total := 0
	for _, l := range waterLogs {
		total += l.AmountML
	}
	loss := 0
	for _, d := range diuretics {
		loss += utils.DiureticNetLossML(d.AmountML, d.DiureticFactor)
	}

	stats, err := utils.Progress(total, user.DailyGoalML)
	if err != nil {
		if !errors.Is(err, utils.ErrInvalidGoal) {
			return nil, err
		}
		stats = utils.ProgressStats{} // goalless account, zero progress
	}

	return &DailySummary{
		Date:           window.Date,
		GoalML:         user.DailyGoalML,
		TotalIntakeML:  total,
		DiureticLossML: loss,
		NetIntakeML:    total - loss,
		GoalMet:        user.DailyGoalML > 0 && total >= user.DailyGoalML,
		Progress:       stats,
		Logs:           waterLogs,
	}, nil
}

// Monthly buckets the month's logs by civil date and reports each day's
// total against the goal, plus the month shape for calendar rendering.
func (s *SummaryService) Monthly(ctx context.Context, userID uint, offset int) (*MonthlySummary, error) {
	user, err := s.user(ctx, userID)
	if err != nil {
		return nil, err
	}

	window := utils.MonthBoundsAt(s.now(), user.Timezone, offset)

	var logs []models.WaterLog
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND logged_at BETWEEN ? AND ?", userID, window.Start, window.End).
		Find(&logs).Error; err != nil {
		return nil, err
	}

	totals := make(map[string]int, window.DaysInMonth)
	for _, l := range logs {
		totals[utils.LocalDayKey(l.LoggedAt, user.Timezone)] += l.AmountML
	}

	out := &MonthlySummary{
		Label:       window.Label,
		DaysInMonth: window.DaysInMonth,
		GoalML:      user.DailyGoalML,
		Days:        make([]MonthlyDay, 0, window.DaysInMonth),
	}
	for d := 1; d <= window.DaysInMonth; d++ {
		date := time.Date(window.Year, window.Month, d, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
		total := totals[date]
		met := user.DailyGoalML > 0 && total >= user.DailyGoalML
		if met {
			out.DaysGoalMet++
		}
		out.Days = append(out.Days, MonthlyDay{Date: date, TotalIntakeML: total, GoalMet: met})
	}
	return out, nil
}

// Streak fetches the lookback window of logs and hands off to the pure
// streak counter.
func (s *SummaryService) Streak(ctx context.Context, userID uint) (int, error) {
	user, err := s.user(ctx, userID)
	if err != nil {
		return 0, err
	}

	anchor := s.now()
	from := utils.DayRangeAt(anchor, user.Timezone, -(utils.StreakLookbackDays - 1))
	to := utils.DayRangeAt(anchor, user.Timezone, 0)

	var logs []models.WaterLog
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND logged_at BETWEEN ? AND ?", userID, from.Start, to.End).
		Find(&logs).Error; err != nil {
		return 0, err
	}

	events := make([]utils.IntakeEvent, len(logs))
	for i, l := range logs {
		events[i] = utils.IntakeEvent{AmountML: l.AmountML, LoggedAt: l.LoggedAt}
	}

	return utils.CurrentStreak(events, user.DailyGoalML, user.Timezone, anchor), nil
}

func (s *SummaryService) user(ctx context.Context, userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).
		Where("id = ? AND disabled = ?", userID, false).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
