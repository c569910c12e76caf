package services

import (
	"gorm.io/gorm"

	"tconnect_backend/internal/models"
	"tconnect_backend/internal/repositories"
	"tconnect_backend/internal/services/dto"
	"tconnect_backend/pkg/apperrors"
)

type InternshipService interface {
	Create(db *gorm.DB, recruiterID string, req *dto.CreateInternshipRequest) (*models.Internship, error)
	Get(db *gorm.DB, id string) (*models.Internship, error)
	List(db *gorm.DB, query *dto.ListingQuery) (*dto.InternshipListResponse, error)
	ListMine(db *gorm.DB, recruiterID string) ([]models.Internship, error)
	Update(db *gorm.DB, recruiterID, id string, req *dto.UpdateInternshipRequest) (*models.Internship, error)
	Delete(db *gorm.DB, recruiterID, id string) error
}

type InternshipServiceImpl struct {
	internshipRepo repositories.InternshipRepository
}

func NewInternshipService(internshipRepo repositories.InternshipRepository) InternshipService {
	return &InternshipServiceImpl{internshipRepo: internshipRepo}
}

func (s *InternshipServiceImpl) Create(db *gorm.DB, recruiterID string, req *dto.CreateInternshipRequest) (*models.Internship, error) {
	internshipType := req.InternshipType
	if internshipType == "" {
		internshipType = models.InternshipTypeFullTime
	}

	internship := &models.Internship{
		RecruiterID:         recruiterID,
		Title:               req.Title,
		CompanyName:         req.CompanyName,
		Category:            req.Category,
		Location:            req.Location,
		Duration:            req.Duration,
		Stipend:             req.Stipend,
		InternshipType:      internshipType,
		ShortDescription:    req.ShortDescription,
		FullDescription:     req.FullDescription,
		Responsibilities:    toJSON(req.Responsibilities),
		Skills:              toJSON(req.Skills),
		Eligibility:         req.Eligibility,
		ApplicationDeadline: req.ApplicationDeadline,
		IsActive:            true,
	}

	if err := s.internshipRepo.Create(db, internship); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return internship, nil
}

func (s *InternshipServiceImpl) Get(db *gorm.DB, id string) (*models.Internship, error) {
	internship, err := s.internshipRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrInternshipNotFound) {
			return nil, apperrors.ErrListingNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if !internship.IsActive {
		return nil, apperrors.ErrListingNotFound
	}
	return internship, nil
}

func (s *InternshipServiceImpl) List(db *gorm.DB, query *dto.ListingQuery) (*dto.InternshipListResponse, error) {
	filter := repositories.InternshipFilter{
		Search:         query.Search,
		Location:       query.Location,
		Category:       query.Category,
		InternshipType: models.InternshipType(query.Type),
	}
	if query.PageSize > 0 {
		page := query.Page
		if page < 1 {
			page = 1
		}
		filter.Limit = query.PageSize
		filter.Offset = (page - 1) * query.PageSize
	}

	internships, total, err := s.internshipRepo.FindActive(db, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.InternshipListResponse{Items: internships, Total: total}, nil
}

func (s *InternshipServiceImpl) ListMine(db *gorm.DB, recruiterID string) ([]models.Internship, error) {
	internships, err := s.internshipRepo.FindByRecruiter(db, recruiterID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return internships, nil
}

func (s *InternshipServiceImpl) Update(db *gorm.DB, recruiterID, id string, req *dto.UpdateInternshipRequest) (*models.Internship, error) {
	internship, err := s.ownedInternship(db, recruiterID, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		internship.Title = *req.Title
	}
	if req.CompanyName != nil {
		internship.CompanyName = *req.CompanyName
	}
	if req.Category != nil {
		internship.Category = *req.Category
	}
	if req.Location != nil {
		internship.Location = *req.Location
	}
	if req.Duration != nil {
		internship.Duration = *req.Duration
	}
	if req.Stipend != nil {
		internship.Stipend = *req.Stipend
	}
	if req.InternshipType != nil {
		internship.InternshipType = *req.InternshipType
	}
	if req.ShortDescription != nil {
		internship.ShortDescription = *req.ShortDescription
	}
	if req.FullDescription != nil {
		internship.FullDescription = *req.FullDescription
	}
	if req.Responsibilities != nil {
		internship.Responsibilities = toJSON(*req.Responsibilities)
	}
	if req.Skills != nil {
		internship.Skills = toJSON(*req.Skills)
	}
	if req.Eligibility != nil {
		internship.Eligibility = *req.Eligibility
	}
	if req.ApplicationDeadline != nil {
		internship.ApplicationDeadline = req.ApplicationDeadline
	}
	if req.IsActive != nil {
		internship.IsActive = *req.IsActive
	}

	if err := s.internshipRepo.Update(db, internship); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return internship, nil
}

func (s *InternshipServiceImpl) Delete(db *gorm.DB, recruiterID, id string) error {
	if _, err := s.ownedInternship(db, recruiterID, id); err != nil {
		return err
	}
	if err := s.internshipRepo.Delete(db, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *InternshipServiceImpl) ownedInternship(db *gorm.DB, recruiterID, id string) (*models.Internship, error) {
	internship, err := s.internshipRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrInternshipNotFound) {
			return nil, apperrors.ErrListingNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if internship.RecruiterID != recruiterID {
		return nil, apperrors.ErrListingNotFound
	}
	return internship, nil
}
