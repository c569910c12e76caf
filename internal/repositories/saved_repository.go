package repositories

import (
	"errors"

	"gorm.io/gorm"

	"tconnect_backend/internal/models"
)

var ErrSavedListingNotFound = errors.New("saved listing not found")

type SavedListingRepository interface {
	SaveJob(db *gorm.DB, userID, jobID string) (created bool, err error)
	UnsaveJob(db *gorm.DB, userID, jobID string) error
	FindSavedJobs(db *gorm.DB, userID string) ([]models.SavedJob, error)
	IsJobSaved(db *gorm.DB, userID, jobID string) (bool, error)

	SaveInternship(db *gorm.DB, userID, internshipID string) (created bool, err error)
	UnsaveInternship(db *gorm.DB, userID, internshipID string) error
	FindSavedInternships(db *gorm.DB, userID string) ([]models.SavedInternship, error)
	IsInternshipSaved(db *gorm.DB, userID, internshipID string) (bool, error)
}

type savedListingRepository struct{}

func NewSavedListingRepository() SavedListingRepository {
	return &savedListingRepository{}
}

// SaveJob is idempotent; a second save reports created=false.
func (r *savedListingRepository) SaveJob(db *gorm.DB, userID, jobID string) (bool, error) {
	var existing models.SavedJob
	err := db.Where("user_id = ? AND job_id = ?", userID, jobID).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	saved := &models.SavedJob{UserID: userID, JobID: jobID}
	if err := db.Create(saved).Error; err != nil {
		return false, err
	}
	return true, nil
}

func (r *savedListingRepository) UnsaveJob(db *gorm.DB, userID, jobID string) error {
	result := db.Where("user_id = ? AND job_id = ?", userID, jobID).Delete(&models.SavedJob{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSavedListingNotFound
	}
	return nil
}

func (r *savedListingRepository) FindSavedJobs(db *gorm.DB, userID string) ([]models.SavedJob, error) {
	var saved []models.SavedJob
	err := db.Preload("Job").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&saved).Error
	return saved, err
}

func (r *savedListingRepository) IsJobSaved(db *gorm.DB, userID, jobID string) (bool, error) {
	var count int64
	err := db.Model(&models.SavedJob{}).
		Where("user_id = ? AND job_id = ?", userID, jobID).
		Count(&count).Error
	return count > 0, err
}

func (r *savedListingRepository) SaveInternship(db *gorm.DB, userID, internshipID string) (bool, error) {
	var existing models.SavedInternship
	err := db.Where("user_id = ? AND internship_id = ?", userID, internshipID).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	saved := &models.SavedInternship{UserID: userID, InternshipID: internshipID}
	if err := db.Create(saved).Error; err != nil {
		return false, err
	}
	return true, nil
}

func (r *savedListingRepository) UnsaveInternship(db *gorm.DB, userID, internshipID string) error {
	result := db.Where("user_id = ? AND internship_id = ?", userID, internshipID).Delete(&models.SavedInternship{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSavedListingNotFound
	}
	return nil
}

func (r *savedListingRepository) FindSavedInternships(db *gorm.DB, userID string) ([]models.SavedInternship, error) {
	var saved []models.SavedInternship
	err := db.Preload("Internship").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&saved).Error
	return saved, err
}

func (r *savedListingRepository) IsInternshipSaved(db *gorm.DB, userID, internshipID string) (bool, error) {
	var count int64
	err := db.Model(&models.SavedInternship{}).
		Where("user_id = ? AND internship_id = ?", userID, internshipID).
		Count(&count).Error
	return count > 0, err
}
