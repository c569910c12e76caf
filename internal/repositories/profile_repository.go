package repositories

import (
	"errors"

	"gorm.io/gorm"

	"tconnect_backend/internal/models"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepository interface {
	FindCandidateProfile(db *gorm.DB, userID string) (*models.CandidateProfile, error)
	UpsertCandidateProfile(db *gorm.DB, profile *models.CandidateProfile) error

	FindRecruiterProfile(db *gorm.DB, userID string) (*models.RecruiterBasicProfile, error)
	UpsertRecruiterProfile(db *gorm.DB, profile *models.RecruiterBasicProfile) error

	FindCompanyProfile(db *gorm.DB, userID string) (*models.CompanyProfile, error)
	UpsertCompanyProfile(db *gorm.DB, profile *models.CompanyProfile) error
}

type profileRepository struct{}

func NewProfileRepository() ProfileRepository {
	return &profileRepository{}
}

func (r *profileRepository) FindCandidateProfile(db *gorm.DB, userID string) (*models.CandidateProfile, error) {
	var profile models.CandidateProfile
	if err := db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// UpsertCandidateProfile updates the row keyed by UserID or inserts it.
func (r *profileRepository) UpsertCandidateProfile(db *gorm.DB, profile *models.CandidateProfile) error {
	var existing models.CandidateProfile
	err := db.Where("user_id = ?", profile.UserID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return db.Create(profile).Error
	}
	if err != nil {
		return err
	}

	profile.ID = existing.ID
	profile.CreatedAt = existing.CreatedAt
	return db.Save(profile).Error
}

func (r *profileRepository) FindRecruiterProfile(db *gorm.DB, userID string) (*models.RecruiterBasicProfile, error) {
	var profile models.RecruiterBasicProfile
	if err := db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) UpsertRecruiterProfile(db *gorm.DB, profile *models.RecruiterBasicProfile) error {
	var existing models.RecruiterBasicProfile
	err := db.Where("user_id = ?", profile.UserID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return db.Create(profile).Error
	}
	if err != nil {
		return err
	}

	profile.ID = existing.ID
	profile.CreatedAt = existing.CreatedAt
	return db.Save(profile).Error
}

func (r *profileRepository) FindCompanyProfile(db *gorm.DB, userID string) (*models.CompanyProfile, error) {
	var profile models.CompanyProfile
	if err := db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) UpsertCompanyProfile(db *gorm.DB, profile *models.CompanyProfile) error {
	var existing models.CompanyProfile
	err := db.Where("user_id = ?", profile.UserID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return db.Create(profile).Error
	}
	if err != nil {
		return err
	}

	profile.ID = existing.ID
	profile.CreatedAt = existing.CreatedAt
	return db.Save(profile).Error
}
