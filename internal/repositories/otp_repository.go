package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"tconnect_backend/internal/models"
)

var ErrOTPNotFound = errors.New("otp not found")

type OTPRepository interface {
	Create(db *gorm.DB, otp *models.OTP) error

	// FindLatestUnused returns the most recent unused code for the email.
	FindLatestUnused(db *gorm.DB, email string) (*models.OTP, error)

	MarkUsed(db *gorm.DB, otpID string) error
	DeleteByEmail(db *gorm.DB, email string) error
}

type otpRepository struct{}

func NewOTPRepository() OTPRepository {
	return &otpRepository{}
}

func (r *otpRepository) Create(db *gorm.DB, otp *models.OTP) error {
	return db.Create(otp).Error
}

func (r *otpRepository) FindLatestUnused(db *gorm.DB, email string) (*models.OTP, error) {
	var otp models.OTP
	err := db.Where("email = ? AND is_used = ?", email, false).
		Order("created_at DESC").
		First(&otp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOTPNotFound
		}
		return nil, err
	}
	return &otp, nil
}

func (r *otpRepository) MarkUsed(db *gorm.DB, otpID string) error {
	return db.Model(&models.OTP{}).Where("id = ?", otpID).Updates(map[string]interface{}{
		"is_used":    true,
		"updated_at": time.Now(),
	}).Error
}

func (r *otpRepository) DeleteByEmail(db *gorm.DB, email string) error {
	return db.Where("email = ?", email).Delete(&models.OTP{}).Error
}
