package repositories

import (
	"errors"

	"gorm.io/gorm"

	"tconnect_backend/internal/models"
)

var ErrFreelancerNotFound = errors.New("freelancer profile not found")

// FreelancerRepository manages the freelancer sub-profile tree. All child
// tables hang off FreelancerBasicInfo by its ID.
type FreelancerRepository interface {
	FindBasicInfoByUser(db *gorm.DB, userID string) (*models.FreelancerBasicInfo, error)
	FindBasicInfoByID(db *gorm.DB, id string) (*models.FreelancerBasicInfo, error)
	UpsertBasicInfo(db *gorm.DB, info *models.FreelancerBasicInfo) error
	SetPublished(db *gorm.DB, freelancerID string, published bool) error
	FindPublished(db *gorm.DB, limit, offset int) ([]models.FreelancerBasicInfo, int64, error)

	FindProfessionalDetails(db *gorm.DB, freelancerID string) (*models.FreelancerProfessionalDetails, error)
	UpsertProfessionalDetails(db *gorm.DB, details *models.FreelancerProfessionalDetails) error

	FindEducation(db *gorm.DB, freelancerID string) ([]models.FreelancerEducation, error)
	CreateEducation(db *gorm.DB, edu *models.FreelancerEducation) error
	UpdateEducation(db *gorm.DB, edu *models.FreelancerEducation) error
	DeleteEducation(db *gorm.DB, freelancerID, eduID string) error

	FindAvailability(db *gorm.DB, freelancerID string) (*models.FreelancerAvailability, error)
	UpsertAvailability(db *gorm.DB, availability *models.FreelancerAvailability) error

	FindPaymentMethods(db *gorm.DB, freelancerID string) ([]models.FreelancerPaymentMethod, error)
	CreatePaymentMethod(db *gorm.DB, method *models.FreelancerPaymentMethod) error
	DeletePaymentMethod(db *gorm.DB, freelancerID, methodID string) error

	FindSocialLinks(db *gorm.DB, freelancerID string) (*models.FreelancerSocialLinks, error)
	UpsertSocialLinks(db *gorm.DB, links *models.FreelancerSocialLinks) error
}

type freelancerRepository struct{}

func NewFreelancerRepository() FreelancerRepository {
	return &freelancerRepository{}
}

func (r *freelancerRepository) FindBasicInfoByUser(db *gorm.DB, userID string) (*models.FreelancerBasicInfo, error) {
	var info models.FreelancerBasicInfo
	if err := db.Where("user_id = ?", userID).First(&info).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFreelancerNotFound
		}
		return nil, err
	}
	return &info, nil
}

func (r *freelancerRepository) FindBasicInfoByID(db *gorm.DB, id string) (*models.FreelancerBasicInfo, error) {
	var info models.FreelancerBasicInfo
	if err := db.First(&info, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFreelancerNotFound
		}
		return nil, err
	}
	return &info, nil
}

func (r *freelancerRepository) UpsertBasicInfo(db *gorm.DB, info *models.FreelancerBasicInfo) error {
	var existing models.FreelancerBasicInfo
	err := db.Where("user_id = ?", info.UserID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return db.Create(info).Error
	}
	if err != nil {
		return err
	}

	info.ID = existing.ID
	info.CreatedAt = existing.CreatedAt
	info.IsPublished = existing.IsPublished
	return db.Save(info).Error
}

func (r *freelancerRepository) SetPublished(db *gorm.DB, freelancerID string, published bool) error {
	result := db.Model(&models.FreelancerBasicInfo{}).
		Where("id = ?", freelancerID).
		Update("is_published", published)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFreelancerNotFound
	}
	return nil
}

func (r *freelancerRepository) FindPublished(db *gorm.DB, limit, offset int) ([]models.FreelancerBasicInfo, int64, error) {
	query := db.Model(&models.FreelancerBasicInfo{}).Where("is_published = ?", true)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var infos []models.FreelancerBasicInfo
	if err := query.Order("created_at DESC").Find(&infos).Error; err != nil {
		return nil, 0, err
	}
	return infos, total, nil
}

func (r *freelancerRepository) FindProfessionalDetails(db *gorm.DB, freelancerID string) (*models.FreelancerProfessionalDetails, error) {
	var details models.FreelancerProfessionalDetails
	if err := db.Where("freelancer_id = ?", freelancerID).First(&details).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &details, nil
}

func (r *freelancerRepository) UpsertProfessionalDetails(db *gorm.DB, details *models.FreelancerProfessionalDetails) error {
	var existing models.FreelancerProfessionalDetails
	err := db.Where("freelancer_id = ?", details.FreelancerID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return db.Create(details).Error
	}
	if err != nil {
		return err
	}

	details.ID = existing.ID
	details.CreatedAt = existing.CreatedAt
	return db.Save(details).Error
}

func (r *freelancerRepository) FindEducation(db *gorm.DB, freelancerID string) ([]models.FreelancerEducation, error) {
	var entries []models.FreelancerEducation
	err := db.Where("freelancer_id = ?", freelancerID).
		Order("start_year DESC").
		Find(&entries).Error
	return entries, err
}

func (r *freelancerRepository) CreateEducation(db *gorm.DB, edu *models.FreelancerEducation) error {
	return db.Create(edu).Error
}

func (r *freelancerRepository) UpdateEducation(db *gorm.DB, edu *models.FreelancerEducation) error {
	result := db.Model(&models.FreelancerEducation{}).
		Where("id = ? AND freelancer_id = ?", edu.ID, edu.FreelancerID).
		Updates(map[string]interface{}{
			"degree":      edu.Degree,
			"institution": edu.Institution,
			"start_year":  edu.StartYear,
			"end_year":    edu.EndYear,
			"description": edu.Description,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *freelancerRepository) DeleteEducation(db *gorm.DB, freelancerID, eduID string) error {
	result := db.Where("id = ? AND freelancer_id = ?", eduID, freelancerID).
		Delete(&models.FreelancerEducation{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *freelancerRepository) FindAvailability(db *gorm.DB, freelancerID string) (*models.FreelancerAvailability, error) {
	var availability models.FreelancerAvailability
	if err := db.Where("freelancer_id = ?", freelancerID).First(&availability).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &availability, nil
}

func (r *freelancerRepository) UpsertAvailability(db *gorm.DB, availability *models.FreelancerAvailability) error {
	var existing models.FreelancerAvailability
	err := db.Where("freelancer_id = ?", availability.FreelancerID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return db.Create(availability).Error
	}
	if err != nil {
		return err
	}

	availability.ID = existing.ID
	availability.CreatedAt = existing.CreatedAt
	return db.Save(availability).Error
}

func (r *freelancerRepository) FindPaymentMethods(db *gorm.DB, freelancerID string) ([]models.FreelancerPaymentMethod, error) {
	var methods []models.FreelancerPaymentMethod
	err := db.Where("freelancer_id = ?", freelancerID).
		Order("created_at ASC").
		Find(&methods).Error
	return methods, err
}

func (r *freelancerRepository) CreatePaymentMethod(db *gorm.DB, method *models.FreelancerPaymentMethod) error {
	return db.Create(method).Error
}

func (r *freelancerRepository) DeletePaymentMethod(db *gorm.DB, freelancerID, methodID string) error {
	result := db.Where("id = ? AND freelancer_id = ?", methodID, freelancerID).
		Delete(&models.FreelancerPaymentMethod{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *freelancerRepository) FindSocialLinks(db *gorm.DB, freelancerID string) (*models.FreelancerSocialLinks, error) {
	var links models.FreelancerSocialLinks
	if err := db.Where("freelancer_id = ?", freelancerID).First(&links).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &links, nil
}

func (r *freelancerRepository) UpsertSocialLinks(db *gorm.DB, links *models.FreelancerSocialLinks) error {
	var existing models.FreelancerSocialLinks
	err := db.Where("freelancer_id = ?", links.FreelancerID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return db.Create(links).Error
	}
	if err != nil {
		return err
	}

	links.ID = existing.ID
	links.CreatedAt = existing.CreatedAt
	return db.Save(links).Error
}
