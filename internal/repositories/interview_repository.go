package repositories

import (
	"errors"

	"gorm.io/gorm"

	"tconnect_backend/internal/models"
)

var ErrInterviewNotFound = errors.New("mock interview not found")

type InterviewRepository interface {
	Create(db *gorm.DB, interview *models.MockInterview) error
	FindByID(db *gorm.DB, id string) (*models.MockInterview, error)
	FindByUser(db *gorm.DB, userID string) ([]models.MockInterview, error)
	Delete(db *gorm.DB, id string) error
}

type interviewRepository struct{}

func NewInterviewRepository() InterviewRepository {
	return &interviewRepository{}
}

func (r *interviewRepository) Create(db *gorm.DB, interview *models.MockInterview) error {
	return db.Create(interview).Error
}

func (r *interviewRepository) FindByID(db *gorm.DB, id string) (*models.MockInterview, error) {
	var interview models.MockInterview
	if err := db.First(&interview, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInterviewNotFound
		}
		return nil, err
	}
	return &interview, nil
}

func (r *interviewRepository) FindByUser(db *gorm.DB, userID string) ([]models.MockInterview, error) {
	var interviews []models.MockInterview
	err := db.Where("user_id = ?", userID).
		Order("scheduled_date ASC, scheduled_time ASC").
		Find(&interviews).Error
	return interviews, err
}

func (r *interviewRepository) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.MockInterview{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInterviewNotFound
	}
	return nil
}
