package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"tconnect_backend/internal/models"
)

var ErrInternshipNotFound = errors.New("internship not found")

type InternshipFilter struct {
	Search         string
	Location       string
	Category       string
	InternshipType models.InternshipType
	Limit          int
	Offset         int
}

type InternshipRepository interface {
	Create(db *gorm.DB, internship *models.Internship) error
	FindByID(db *gorm.DB, id string) (*models.Internship, error)
	FindActive(db *gorm.DB, filter InternshipFilter) ([]models.Internship, int64, error)
	FindByRecruiter(db *gorm.DB, recruiterID string) ([]models.Internship, error)
	Update(db *gorm.DB, internship *models.Internship) error
	Delete(db *gorm.DB, id string) error
}

type internshipRepository struct{}

func NewInternshipRepository() InternshipRepository {
	return &internshipRepository{}
}

func (r *internshipRepository) Create(db *gorm.DB, internship *models.Internship) error {
	return db.Create(internship).Error
}

func (r *internshipRepository) FindByID(db *gorm.DB, id string) (*models.Internship, error) {
	var internship models.Internship
	if err := db.First(&internship, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInternshipNotFound
		}
		return nil, err
	}
	return &internship, nil
}

func (r *internshipRepository) FindActive(db *gorm.DB, filter InternshipFilter) ([]models.Internship, int64, error) {
	query := db.Model(&models.Internship{}).Where("is_active = ?", true)

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			"LOWER(title) LIKE ? OR LOWER(company_name) LIKE ? OR LOWER(short_description) LIKE ?",
			pattern, pattern, pattern)
	}
	if filter.Location != "" {
		query = query.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(filter.Location)+"%")
	}
	if filter.Category != "" {
		query = query.Where("LOWER(category) LIKE ?", "%"+strings.ToLower(filter.Category)+"%")
	}
	if filter.InternshipType != "" {
		query = query.Where("internship_type = ?", filter.InternshipType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}

	var internships []models.Internship
	if err := query.Order("created_at DESC").Find(&internships).Error; err != nil {
		return nil, 0, err
	}
	return internships, total, nil
}

func (r *internshipRepository) FindByRecruiter(db *gorm.DB, recruiterID string) ([]models.Internship, error) {
	var internships []models.Internship
	err := db.Where("recruiter_id = ?", recruiterID).
		Order("created_at DESC").
		Find(&internships).Error
	return internships, err
}

func (r *internshipRepository) Update(db *gorm.DB, internship *models.Internship) error {
	result := db.Save(internship)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInternshipNotFound
	}
	return nil
}

func (r *internshipRepository) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Internship{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInternshipNotFound
	}
	return nil
}
