package services

import (
	"gorm.io/gorm"

	"tconnect_backend/internal/models"
	"tconnect_backend/internal/repositories"
	"tconnect_backend/internal/services/dto"
	"tconnect_backend/pkg/apperrors"
)

type JobService interface {
	Create(db *gorm.DB, recruiterID string, req *dto.CreateJobRequest) (*models.Job, error)
	Get(db *gorm.DB, id string) (*models.Job, error)
	List(db *gorm.DB, query *dto.ListingQuery) (*dto.JobListResponse, error)
	ListMine(db *gorm.DB, recruiterID string) ([]models.Job, error)
	Update(db *gorm.DB, recruiterID, id string, req *dto.UpdateJobRequest) (*models.Job, error)
	Delete(db *gorm.DB, recruiterID, id string) error
}

type JobServiceImpl struct {
	jobRepo repositories.JobRepository
}

func NewJobService(jobRepo repositories.JobRepository) JobService {
	return &JobServiceImpl{jobRepo: jobRepo}
}

func (s *JobServiceImpl) Create(db *gorm.DB, recruiterID string, req *dto.CreateJobRequest) (*models.Job, error) {
	employmentType := req.EmploymentType
	if employmentType == "" {
		employmentType = models.EmploymentTypeFullTime
	}

	job := &models.Job{
		RecruiterID:         recruiterID,
		Title:               req.Title,
		CompanyName:         req.CompanyName,
		Location:            req.Location,
		ExperienceRange:     req.ExperienceRange,
		SalaryRange:         req.SalaryRange,
		EmploymentType:      employmentType,
		Category:            req.Category,
		ShortDescription:    req.ShortDescription,
		FullDescription:     req.FullDescription,
		Responsibilities:    toJSON(req.Responsibilities),
		Requirements:        toJSON(req.Requirements),
		Skills:              toJSON(req.Skills),
		EligibleDegrees:     toJSON(req.EligibleDegrees),
		ApplicationDeadline: req.ApplicationDeadline,
		IsActive:            true,
	}

	if err := s.jobRepo.Create(db, job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

// Get serves the public detail view; inactive listings are hidden.
func (s *JobServiceImpl) Get(db *gorm.DB, id string) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrListingNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if !job.IsActive {
		return nil, apperrors.ErrListingNotFound
	}
	return job, nil
}

func (s *JobServiceImpl) List(db *gorm.DB, query *dto.ListingQuery) (*dto.JobListResponse, error) {
	filter := repositories.JobFilter{
		Search:         query.Search,
		Location:       query.Location,
		Category:       query.Category,
		EmploymentType: models.EmploymentType(query.Type),
	}
	if query.PageSize > 0 {
		page := query.Page
		if page < 1 {
			page = 1
		}
		filter.Limit = query.PageSize
		filter.Offset = (page - 1) * query.PageSize
	}

	jobs, total, err := s.jobRepo.FindActive(db, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.JobListResponse{Items: jobs, Total: total}, nil
}

func (s *JobServiceImpl) ListMine(db *gorm.DB, recruiterID string) ([]models.Job, error) {
	jobs, err := s.jobRepo.FindByRecruiter(db, recruiterID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobs, nil
}

func (s *JobServiceImpl) Update(db *gorm.DB, recruiterID, id string, req *dto.UpdateJobRequest) (*models.Job, error) {
	job, err := s.ownedJob(db, recruiterID, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.CompanyName != nil {
		job.CompanyName = *req.CompanyName
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.ExperienceRange != nil {
		job.ExperienceRange = *req.ExperienceRange
	}
	if req.SalaryRange != nil {
		job.SalaryRange = *req.SalaryRange
	}
	if req.EmploymentType != nil {
		job.EmploymentType = *req.EmploymentType
	}
	if req.Category != nil {
		job.Category = *req.Category
	}
	if req.ShortDescription != nil {
		job.ShortDescription = *req.ShortDescription
	}
	if req.FullDescription != nil {
		job.FullDescription = *req.FullDescription
	}
	if req.Responsibilities != nil {
		job.Responsibilities = toJSON(*req.Responsibilities)
	}
	if req.Requirements != nil {
		job.Requirements = toJSON(*req.Requirements)
	}
	if req.Skills != nil {
		job.Skills = toJSON(*req.Skills)
	}
	if req.EligibleDegrees != nil {
		job.EligibleDegrees = toJSON(*req.EligibleDegrees)
	}
	if req.ApplicationDeadline != nil {
		job.ApplicationDeadline = req.ApplicationDeadline
	}
	if req.IsActive != nil {
		job.IsActive = *req.IsActive
	}

	if err := s.jobRepo.Update(db, job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) Delete(db *gorm.DB, recruiterID, id string) error {
	if _, err := s.ownedJob(db, recruiterID, id); err != nil {
		return err
	}
	if err := s.jobRepo.Delete(db, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// ownedJob resolves the listing and enforces recruiter ownership. A foreign
// listing reads as not found rather than forbidden, matching the public
// surface.
func (s *JobServiceImpl) ownedJob(db *gorm.DB, recruiterID, id string) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrListingNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if job.RecruiterID != recruiterID {
		return nil, apperrors.ErrListingNotFound
	}
	return job, nil
}
