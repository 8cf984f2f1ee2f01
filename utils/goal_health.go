package utils

// Physiological bounds for a daily goal, in ml. Centralized here so
// onboarding and profile updates can't drift apart on the numbers.
const (
	MinSafeDailyGoalML  = 500
	WarnLowDailyGoalML  = 1200
	WarnHighDailyGoalML = 5000
	MaxSafeDailyGoalML  = 6000
)

const (
	GoalLevelOK      = "ok"
	GoalLevelWarning = "warning"
	GoalLevelDanger  = "danger"
)

// GoalAssessment grades a daily goal. Danger levels should block the
// save; warnings only caution the user.
type GoalAssessment struct {
	Level   string `json:"level"`
	Message string `json:"message,omitempty"`
}

func AssessGoalHealth(goalML int) GoalAssessment {
	switch {
	case goalML < MinSafeDailyGoalML:
		return GoalAssessment{
			Level:   GoalLevelDanger,
			Message: "A goal below 500 ml per day risks dehydration.",
		}
	case goalML > MaxSafeDailyGoalML:
		return GoalAssessment{
			Level:   GoalLevelDanger,
			Message: "A goal above 6000 ml per day risks water intoxication.",
		}
	case goalML < WarnLowDailyGoalML:
		return GoalAssessment{
			Level:   GoalLevelWarning,
			Message: "This goal is on the low side for most adults.",
		}
	case goalML > WarnHighDailyGoalML:
		return GoalAssessment{
			Level:   GoalLevelWarning,
			Message: "This goal is unusually high; make sure it fits your needs.",
		}
	default:
		return GoalAssessment{Level: GoalLevelOK}
	}
}
