package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"tconnect_backend/internal/models"
)

var (
	ErrApplicationNotFound  = errors.New("application not found")
	ErrDuplicateApplication = errors.New("application already exists")
)

type ApplicationRepository interface {
	// Job applications
	CreateJobApplication(db *gorm.DB, app *models.JobApplication) error
	FindJobApplicationByID(db *gorm.DB, id string) (*models.JobApplication, error)
	JobApplicationExists(db *gorm.DB, jobID, candidateID string) (bool, error)
	FindJobApplicationsByCandidate(db *gorm.DB, candidateID string) ([]models.JobApplication, error)
	FindJobApplicationsByJob(db *gorm.DB, jobID string) ([]models.JobApplication, error)
	UpdateJobApplicationStatus(db *gorm.DB, id string, status models.ApplicationStatus, notes string) error

	// Internship applications
	CreateInternshipApplication(db *gorm.DB, app *models.InternshipApplication) error
	FindInternshipApplicationByID(db *gorm.DB, id string) (*models.InternshipApplication, error)
	InternshipApplicationExists(db *gorm.DB, internshipID, candidateID string) (bool, error)
	FindInternshipApplicationsByCandidate(db *gorm.DB, candidateID string) ([]models.InternshipApplication, error)
	FindInternshipApplicationsByInternship(db *gorm.DB, internshipID string) ([]models.InternshipApplication, error)
	UpdateInternshipApplicationStatus(db *gorm.DB, id string, status models.ApplicationStatus, notes string) error
}

type applicationRepository struct{}

func NewApplicationRepository() ApplicationRepository {
	return &applicationRepository{}
}

func (r *applicationRepository) CreateJobApplication(db *gorm.DB, app *models.JobApplication) error {
	return db.Create(app).Error
}

func (r *applicationRepository) FindJobApplicationByID(db *gorm.DB, id string) (*models.JobApplication, error) {
	var app models.JobApplication
	if err := db.Preload("Job").First(&app, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepository) JobApplicationExists(db *gorm.DB, jobID, candidateID string) (bool, error) {
	var count int64
	err := db.Model(&models.JobApplication{}).
		Where("job_id = ? AND candidate_id = ?", jobID, candidateID).
		Count(&count).Error
	return count > 0, err
}

func (r *applicationRepository) FindJobApplicationsByCandidate(db *gorm.DB, candidateID string) ([]models.JobApplication, error) {
	var apps []models.JobApplication
	err := db.Preload("Job").
		Where("candidate_id = ?", candidateID).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *applicationRepository) FindJobApplicationsByJob(db *gorm.DB, jobID string) ([]models.JobApplication, error) {
	var apps []models.JobApplication
	err := db.Where("job_id = ?", jobID).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *applicationRepository) UpdateJobApplicationStatus(db *gorm.DB, id string, status models.ApplicationStatus, notes string) error {
	now := time.Now()
	updates := map[string]interface{}{
		"status":            status,
		"status_updated_at": &now,
		"updated_at":        now,
	}
	if notes != "" {
		updates["recruiter_notes"] = notes
	}
	result := db.Model(&models.JobApplication{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func (r *applicationRepository) CreateInternshipApplication(db *gorm.DB, app *models.InternshipApplication) error {
	return db.Create(app).Error
}

func (r *applicationRepository) FindInternshipApplicationByID(db *gorm.DB, id string) (*models.InternshipApplication, error) {
	var app models.InternshipApplication
	if err := db.Preload("Internship").First(&app, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepository) InternshipApplicationExists(db *gorm.DB, internshipID, candidateID string) (bool, error) {
	var count int64
	err := db.Model(&models.InternshipApplication{}).
		Where("internship_id = ? AND candidate_id = ?", internshipID, candidateID).
		Count(&count).Error
	return count > 0, err
}

func (r *applicationRepository) FindInternshipApplicationsByCandidate(db *gorm.DB, candidateID string) ([]models.InternshipApplication, error) {
	var apps []models.InternshipApplication
	err := db.Preload("Internship").
		Where("candidate_id = ?", candidateID).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *applicationRepository) FindInternshipApplicationsByInternship(db *gorm.DB, internshipID string) ([]models.InternshipApplication, error) {
	var apps []models.InternshipApplication
	err := db.Where("internship_id = ?", internshipID).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *applicationRepository) UpdateInternshipApplicationStatus(db *gorm.DB, id string, status models.ApplicationStatus, notes string) error {
	now := time.Now()
	updates := map[string]interface{}{
		"status":            status,
		"status_updated_at": &now,
		"updated_at":        now,
	}
	if notes != "" {
		updates["recruiter_notes"] = notes
	}
	result := db.Model(&models.InternshipApplication{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}
