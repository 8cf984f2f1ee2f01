package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roznerx/guater-sub000/models"
)

func expectProfileUser(mock sqlmock.Sqlmock, weightKg interface{}, age interface{}) {
	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "email", "timezone", "daily_goal_ml", "weight_kg", "age", "activity_level", "climate", "disabled",
		}).AddRow(1, "drinker@example.com", "UTC", 2000, weightKg, age, models.ActivityModerate, models.ClimateTemperate, false))
}

func TestRecommendationUsesProfileInputs(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewProfileService(db)

	expectProfileUser(mock, 70.0, 30)

	ml, err := svc.Recommendation(1)
	require.NoError(t, err)
	require.NotNil(t, ml)
	assert.Equal(t, 2750, *ml) // 70*35 + 300 moderate + 0 temperate

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecommendationNilWithoutWeightOrAge(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewProfileService(db)

	expectProfileUser(mock, nil, 30)

	ml, err := svc.Recommendation(1)
	require.NoError(t, err)
	assert.Nil(t, ml, "incomplete profile suppresses the recommendation")
}

func TestUpdateRejectsDangerGoal(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewProfileService(db)

	expectProfileUser(mock, 70.0, 30)

	goal := 400 // below the dehydration floor
	err := svc.Update(1, ProfileInput{DailyGoalML: &goal})
	assert.ErrorIs(t, err, ErrUnsafeGoal)
}

func TestUpdateRejectsUnknownTimezone(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewProfileService(db)

	expectProfileUser(mock, 70.0, 30)

	tz := "Mars/Olympus_Mons"
	err := svc.Update(1, ProfileInput{Timezone: &tz})
	assert.ErrorIs(t, err, ErrInvalidTimezone)
}

func TestUpdateRejectsBadUnitAndChoices(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewProfileService(db)

	unit := "pints"
	activity := "heroic"

	// each Update fetches the user first
	expectProfileUser(mock, 70.0, 30)
	assert.ErrorIs(t, svc.Update(1, ProfileInput{PreferredUnit: &unit}), ErrInvalidUnit)

	expectProfileUser(mock, 70.0, 30)
	assert.ErrorIs(t, svc.Update(1, ProfileInput{ActivityLevel: &activity}), ErrInvalidChoice)
}

func TestCompleteOnboardingValidatesBeforeFetching(t *testing.T) {
	db, _ := newMockDB(t) // no expectations: validation fails before any SQL
	svc := NewProfileService(db)

	weight := 70.0
	age := 30

	err := svc.CompleteOnboarding(1, 7000, "UTC", &weight, &age, models.ActivityModerate, models.ClimateTemperate)
	assert.ErrorIs(t, err, ErrUnsafeGoal)

	err = svc.CompleteOnboarding(1, 2000, "Nowhere/Z", &weight, &age, models.ActivityModerate, models.ClimateTemperate)
	assert.ErrorIs(t, err, ErrInvalidTimezone)

	err = svc.CompleteOnboarding(1, 2000, "UTC", &weight, &age, "heroic", models.ClimateTemperate)
	assert.ErrorIs(t, err, ErrInvalidChoice)
}
