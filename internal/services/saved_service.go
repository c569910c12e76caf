package services

import (
	"gorm.io/gorm"

	"tconnect_backend/internal/repositories"
	"tconnect_backend/internal/services/dto"
	"tconnect_backend/pkg/apperrors"
)

type SavedListingService interface {
	SaveJob(db *gorm.DB, userID, jobID string) (*dto.SaveResult, error)
	UnsaveJob(db *gorm.DB, userID, jobID string) error
	SavedJobs(db *gorm.DB, userID string) ([]dto.SavedListingResponse, error)

	SaveInternship(db *gorm.DB, userID, internshipID string) (*dto.SaveResult, error)
	UnsaveInternship(db *gorm.DB, userID, internshipID string) error
	SavedInternships(db *gorm.DB, userID string) ([]dto.SavedListingResponse, error)
}

type SavedListingServiceImpl struct {
	savedRepo      repositories.SavedListingRepository
	jobRepo        repositories.JobRepository
	internshipRepo repositories.InternshipRepository
}

func NewSavedListingService(
	savedRepo repositories.SavedListingRepository,
	jobRepo repositories.JobRepository,
	internshipRepo repositories.InternshipRepository,
) SavedListingService {
	return &SavedListingServiceImpl{
		savedRepo:      savedRepo,
		jobRepo:        jobRepo,
		internshipRepo: internshipRepo,
	}
}

// SaveJob is idempotent: saving twice returns the existing row.
func (s *SavedListingServiceImpl) SaveJob(db *gorm.DB, userID, jobID string) (*dto.SaveResult, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil || !job.IsActive {
		return nil, apperrors.ErrListingNotFound
	}

	created, err := s.savedRepo.SaveJob(db, userID, jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	saved, err := s.savedRepo.FindSavedJobs(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	for i := range saved {
		if saved[i].JobID == jobID {
			return &dto.SaveResult{
				Saved: dto.SavedListingResponse{
					ID: saved[i].ID,
					Listing: dto.ListingSummary{
						ID:          job.ID,
						Title:       job.Title,
						CompanyName: job.CompanyName,
						Location:    job.Location,
					},
					SavedOn: saved[i].CreatedAt,
				},
				Created: created,
			}, nil
		}
	}
	return nil, apperrors.InternalError(repositories.ErrSavedListingNotFound)
}

func (s *SavedListingServiceImpl) UnsaveJob(db *gorm.DB, userID, jobID string) error {
	if err := s.savedRepo.UnsaveJob(db, userID, jobID); err != nil {
		if apperrors.Is(err, repositories.ErrSavedListingNotFound) {
			return apperrors.NewNotFoundError("saved", "Saved listing not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *SavedListingServiceImpl) SavedJobs(db *gorm.DB, userID string) ([]dto.SavedListingResponse, error) {
	saved, err := s.savedRepo.FindSavedJobs(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]dto.SavedListingResponse, 0, len(saved))
	for i := range saved {
		resp := dto.SavedListingResponse{
			ID:      saved[i].ID,
			SavedOn: saved[i].CreatedAt,
			Listing: dto.ListingSummary{ID: saved[i].JobID},
		}
		if saved[i].Job != nil {
			resp.Listing = dto.ListingSummary{
				ID:          saved[i].Job.ID,
				Title:       saved[i].Job.Title,
				CompanyName: saved[i].Job.CompanyName,
				Location:    saved[i].Job.Location,
			}
		}
		out = append(out, resp)
	}
	return out, nil
}

func (s *SavedListingServiceImpl) SaveInternship(db *gorm.DB, userID, internshipID string) (*dto.SaveResult, error) {
	internship, err := s.internshipRepo.FindByID(db, internshipID)
	if err != nil || !internship.IsActive {
		return nil, apperrors.ErrListingNotFound
	}

	created, err := s.savedRepo.SaveInternship(db, userID, internshipID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	saved, err := s.savedRepo.FindSavedInternships(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	for i := range saved {
		if saved[i].InternshipID == internshipID {
			return &dto.SaveResult{
				Saved: dto.SavedListingResponse{
					ID: saved[i].ID,
					Listing: dto.ListingSummary{
						ID:          internship.ID,
						Title:       internship.Title,
						CompanyName: internship.CompanyName,
						Location:    internship.Location,
					},
					SavedOn: saved[i].CreatedAt,
				},
				Created: created,
			}, nil
		}
	}
	return nil, apperrors.InternalError(repositories.ErrSavedListingNotFound)
}

func (s *SavedListingServiceImpl) UnsaveInternship(db *gorm.DB, userID, internshipID string) error {
	if err := s.savedRepo.UnsaveInternship(db, userID, internshipID); err != nil {
		if apperrors.Is(err, repositories.ErrSavedListingNotFound) {
			return apperrors.NewNotFoundError("saved", "Saved listing not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *SavedListingServiceImpl) SavedInternships(db *gorm.DB, userID string) ([]dto.SavedListingResponse, error) {
	saved, err := s.savedRepo.FindSavedInternships(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]dto.SavedListingResponse, 0, len(saved))
	for i := range saved {
		resp := dto.SavedListingResponse{
			ID:      saved[i].ID,
			SavedOn: saved[i].CreatedAt,
			Listing: dto.ListingSummary{ID: saved[i].InternshipID},
		}
		if saved[i].Internship != nil {
			resp.Listing = dto.ListingSummary{
				ID:          saved[i].Internship.ID,
				Title:       saved[i].Internship.Title,
				CompanyName: saved[i].Internship.CompanyName,
				Location:    saved[i].Internship.Location,
			}
		}
		out = append(out, resp)
	}
	return out, nil
}
