package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func hashFor(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestAuthenticate(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	db, mock := newMockDB(t)
	svc := NewAuthService(db)

	hash := hashFor(t, "hunter2")
	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password", "disabled"}).
			AddRow(1, "drinker@example.com", hash, false))

	token, err := svc.Authenticate("drinker@example.com", "hunter2")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthenticateWrongPassword(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(db)

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password", "disabled"}).
			AddRow(1, "drinker@example.com", hashFor(t, "hunter2"), false))

	_, err := svc.Authenticate("drinker@example.com", "hunter3")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateUnknownEmail(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(db)

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnError(gorm.ErrRecordNotFound)

	_, err := svc.Authenticate("nobody@example.com", "hunter2")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterSetsHydrationDefaults(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(db)

	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	user, err := svc.Register("new@example.com", "hunter2", "New Drinker")
	require.NoError(t, err)

	assert.Equal(t, 2000, user.DailyGoalML)
	assert.Equal(t, "UTC", user.Timezone)
	assert.Equal(t, "ml", user.PreferredUnit)
	assert.NotEmpty(t, user.PublicID)
	assert.NotEqual(t, "hunter2", user.Password, "password must be stored hashed")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestForgotPasswordHidesUnknownEmails(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(db)

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnError(gorm.ErrRecordNotFound)

	// unknown address still succeeds so the endpoint can't probe accounts
	assert.NoError(t, svc.ForgotPassword("nobody@example.com"))
}

func TestResetPasswordExpiredToken(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(db)

	expired := time.Now().Add(-time.Hour)
	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "reset_token", "reset_token_exp"}).
			AddRow(1, "drinker@example.com", "123456", expired))

	err := svc.ResetPassword("123456", "newpass")
	assert.ErrorIs(t, err, ErrInvalidResetToken)
}
