package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"tconnect_backend/internal/models"
)

var ErrJobNotFound = errors.New("job not found")

// JobFilter narrows public job listings. Zero values mean "no filter".
type JobFilter struct {
	Search         string
	Location       string
	Category       string
	EmploymentType models.EmploymentType
	Limit          int
	Offset         int
}

type JobRepository interface {
	Create(db *gorm.DB, job *models.Job) error
	FindByID(db *gorm.DB, id string) (*models.Job, error)
	FindActive(db *gorm.DB, filter JobFilter) ([]models.Job, int64, error)
	FindByRecruiter(db *gorm.DB, recruiterID string) ([]models.Job, error)
	Update(db *gorm.DB, job *models.Job) error
	Delete(db *gorm.DB, id string) error
}

type jobRepository struct{}

func NewJobRepository() JobRepository {
	return &jobRepository{}
}

func (r *jobRepository) Create(db *gorm.DB, job *models.Job) error {
	return db.Create(job).Error
}

func (r *jobRepository) FindByID(db *gorm.DB, id string) (*models.Job, error) {
	var job models.Job
	if err := db.First(&job, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) FindActive(db *gorm.DB, filter JobFilter) ([]models.Job, int64, error) {
	query := db.Model(&models.Job{}).Where("is_active = ?", true)

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
	if filter.EmploymentType != "" {
		query = query.Where("employment_type = ?", filter.EmploymentType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}

	var jobs []models.Job
	if err := query.Order("created_at DESC").Find(&jobs).Error; err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func (r *jobRepository) FindByRecruiter(db *gorm.DB, recruiterID string) ([]models.Job, error) {
	var jobs []models.Job
	err := db.Where("recruiter_id = ?", recruiterID).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *jobRepository) Update(db *gorm.DB, job *models.Job) error {
	result := db.Save(job)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *jobRepository) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Job{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}
