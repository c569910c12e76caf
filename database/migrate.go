package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"tconnect_backend/internal/config"
	"tconnect_backend/internal/models"
)

var gormDB *gorm.DB

// ConnectGorm opens a GORM connection using the configured DSN.
func ConnectGorm() (*gorm.DB, error) {
	if gormDB != nil {
		return gormDB, nil
	}

	cfg := config.GetConfig()
	dsn := cfg.Database.DSN

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}

	gormDB = db
	return db, nil
}

// AutoMigrate migrates every model.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.OTP{},
		&models.Job{},
		&models.Internship{},
		&models.JobApplication{},
		&models.InternshipApplication{},
		&models.SavedJob{},
		&models.SavedInternship{},
		&models.CandidateProfile{},
		&models.RecruiterBasicProfile{},
		&models.CompanyProfile{},
		&models.FreelancerBasicInfo{},
		&models.FreelancerProfessionalDetails{},
		&models.FreelancerEducation{},
		&models.FreelancerAvailability{},
		&models.FreelancerPaymentMethod{},
		&models.FreelancerSocialLinks{},
		&models.Course{},
		&models.Module{},
		&models.Lesson{},
		&models.Assignment{},
		&models.AssignmentQuestion{},
		&models.Enrollment{},
		&models.LessonProgress{},
		&models.AssignmentSubmission{},
		&models.MockInterview{},
	)
}
