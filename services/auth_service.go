package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/roznerx/guater-sub000/models"
	"github.com/roznerx/guater-sub000/utils"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found or disabled")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
)

const resetTokenTTL = 15 * time.Minute

type AuthService struct{ db *gorm.DB }

func NewAuthService(db *gorm.DB) *AuthService { return &AuthService{db: db} }

// Register creates an account with sane hydration defaults; the profile
// gets filled in during onboarding.
func (s *AuthService) Register(email, password, displayName string) (*models.User, error) {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		PublicID:      uuid.NewString(),
		Email:         email,
		Password:      hashed,
		DisplayName:   displayName,
		Timezone:      "UTC",
		DailyGoalML:   2000,
		PreferredUnit: "ml",
		ActivityLevel: models.ActivityModerate,
		Climate:       models.ClimateTemperate,
		Theme:         "light",
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *AuthService) Authenticate(email, password string) (string, error) {
	var user models.User
	if err := s.db.Where("email = ? AND disabled = ?", email, false).First(&user).Error; err != nil {
		return "", ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return "", ErrInvalidCredentials
	}
	return utils.GenerateJWT(user.ID, user.Email)
}

// ForgotPassword issues a short-lived reset code and mails it. Unknown
// emails return nil so the endpoint can't be used to probe accounts.
func (s *AuthService) ForgotPassword(email string) error {
	var user models.User
	if err := s.db.Where("email = ? AND disabled = ?", email, false).First(&user).Error; err != nil {
		return nil
	}

	code := utils.GenerateResetCode(6)
	user.ResetToken = code
	user.ResetTokenExp = time.Now().Add(resetTokenTTL)
	if err := s.db.Save(&user).Error; err != nil {
		return err
	}

	if err := utils.SendResetEmail(user.Email, code); err != nil {
		log.WithField("email", user.Email).Warnf("reset email failed: %v", err)
	}
	return nil
}

func (s *AuthService) ResetPassword(token, newPassword string) error {
	var user models.User
	if err := s.db.Where("reset_token = ? AND reset_token <> ''", token).First(&user).Error; err != nil {
		return ErrInvalidResetToken
	}
	if time.Now().After(user.ResetTokenExp) {
		return ErrInvalidResetToken
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	user.Password = hashed
	user.ResetToken = ""
	user.ResetTokenExp = time.Time{}
	return s.db.Save(&user).Error
}

// UpdatePassword changes the password of a signed-in user after
// re-checking the current one.
func (s *AuthService) UpdatePassword(userID uint, current, next string) error {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return ErrUserNotFound
	}
	if !utils.CheckPasswordHash(current, user.Password) {
		return ErrInvalidCredentials
	}

	hashed, err := utils.HashPassword(next)
	if err != nil {
		return err
	}
	user.Password = hashed
	return s.db.Save(&user).Error
}
