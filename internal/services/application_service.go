package services

import (
	"time"

	"gorm.io/gorm"

	"tconnect_backend/internal/models"
	"tconnect_backend/internal/repositories"
	"tconnect_backend/internal/services/dto"
	"tconnect_backend/pkg/apperrors"
)

type ApplicationService interface {
	ApplyToJob(db *gorm.DB, candidateID, jobID string, req *dto.ApplyRequest) (*dto.ApplicationResponse, error)
	ApplyToInternship(db *gorm.DB, candidateID, internshipID string, req *dto.ApplyRequest) (*dto.ApplicationResponse, error)
	MyJobApplications(db *gorm.DB, candidateID string) ([]dto.ApplicationResponse, error)
	MyInternshipApplications(db *gorm.DB, candidateID string) ([]dto.ApplicationResponse, error)
	JobApplicants(db *gorm.DB, recruiterID, jobID string) ([]dto.ApplicantResponse, error)
	InternshipApplicants(db *gorm.DB, recruiterID, internshipID string) ([]dto.ApplicantResponse, error)
	UpdateJobApplicationStatus(db *gorm.DB, recruiterID, applicationID string, req *dto.UpdateApplicationStatusRequest) error
	UpdateInternshipApplicationStatus(db *gorm.DB, recruiterID, applicationID string, req *dto.UpdateApplicationStatusRequest) error
}

type ApplicationServiceImpl struct {
	applicationRepo repositories.ApplicationRepository
	jobRepo         repositories.JobRepository
	internshipRepo  repositories.InternshipRepository
	profileRepo     repositories.ProfileRepository
	userRepo        repositories.UserRepository
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	internshipRepo repositories.InternshipRepository,
	profileRepo repositories.ProfileRepository,
	userRepo repositories.UserRepository,
) ApplicationService {
	return &ApplicationServiceImpl{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		internshipRepo:  internshipRepo,
		profileRepo:     profileRepo,
		userRepo:        userRepo,
	}
}

// snapshot freezes the candidate's profile into the application. The copy is
// never refreshed afterwards.
func (s *ApplicationServiceImpl) snapshot(db *gorm.DB, candidateID string) (*models.CandidateSnapshot, error) {
	user, err := s.userRepo.FindByID(db, candidateID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	profile, err := s.profileRepo.FindCandidateProfile(db, candidateID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileIncomplete
		}
		return nil, apperrors.InternalError(err)
	}

	return &models.CandidateSnapshot{
		CandidateFullName:  user.FullName,
		CandidateEmail:     user.Email,
		CandidatePhone:     profile.PhoneNumber,
		CandidateLocation:  profile.Location,
		CandidateSkills:    profile.Skills,
		CandidateBio:       profile.Bio,
		CandidateResumeURL: profile.ResumeURL,
	}, nil
}

func (s *ApplicationServiceImpl) ApplyToJob(db *gorm.DB, candidateID, jobID string, req *dto.ApplyRequest) (*dto.ApplicationResponse, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil || !job.IsActive {
		return nil, apperrors.ErrListingNotFound
	}

	exists, err := s.applicationRepo.JobApplicationExists(db, jobID, candidateID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrAlreadyApplied
	}

	snap, err := s.snapshot(db, candidateID)
	if err != nil {
		return nil, err
	}

	app := &models.JobApplication{
		JobID:             jobID,
		CandidateID:       candidateID,
		CandidateSnapshot: *snap,
		CoverLetter:       req.CoverLetter,
		Status:            models.ApplicationStatusApplied,
	}
	if err := s.applicationRepo.CreateJobApplication(db, app); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := jobApplicationResponse(app, job)
	return &resp, nil
}

func (s *ApplicationServiceImpl) ApplyToInternship(db *gorm.DB, candidateID, internshipID string, req *dto.ApplyRequest) (*dto.ApplicationResponse, error) {
	internship, err := s.internshipRepo.FindByID(db, internshipID)
	if err != nil || !internship.IsActive {
		return nil, apperrors.ErrListingNotFound
	}

	exists, err := s.applicationRepo.InternshipApplicationExists(db, internshipID, candidateID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrAlreadyApplied
	}

	snap, err := s.snapshot(db, candidateID)
	if err != nil {
		return nil, err
	}

	app := &models.InternshipApplication{
		InternshipID:      internshipID,
		CandidateID:       candidateID,
		CandidateSnapshot: *snap,
		CoverLetter:       req.CoverLetter,
		Status:            models.ApplicationStatusApplied,
	}
	if err := s.applicationRepo.CreateInternshipApplication(db, app); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := internshipApplicationResponse(app, internship)
	return &resp, nil
}

func (s *ApplicationServiceImpl) MyJobApplications(db *gorm.DB, candidateID string) ([]dto.ApplicationResponse, error) {
	apps, err := s.applicationRepo.FindJobApplicationsByCandidate(db, candidateID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]dto.ApplicationResponse, 0, len(apps))
	for i := range apps {
		out = append(out, jobApplicationResponse(&apps[i], apps[i].Job))
	}
	return out, nil
}

func (s *ApplicationServiceImpl) MyInternshipApplications(db *gorm.DB, candidateID string) ([]dto.ApplicationResponse, error) {
	apps, err := s.applicationRepo.FindInternshipApplicationsByCandidate(db, candidateID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]dto.ApplicationResponse, 0, len(apps))
	for i := range apps {
		out = append(out, internshipApplicationResponse(&apps[i], apps[i].Internship))
	}
	return out, nil
}

// JobApplicants is recruiter-only and scoped to owned listings; a foreign
// listing reads as not found.
func (s *ApplicationServiceImpl) JobApplicants(db *gorm.DB, recruiterID, jobID string) ([]dto.ApplicantResponse, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil || job.RecruiterID != recruiterID {
		return nil, apperrors.ErrListingNotFound
	}

	apps, err := s.applicationRepo.FindJobApplicationsByJob(db, jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]dto.ApplicantResponse, 0, len(apps))
	for i := range apps {
		out = append(out, applicantResponse(apps[i].ID, apps[i].CandidateID, &apps[i].CandidateSnapshot,
			apps[i].CoverLetter, apps[i].RecruiterNotes, apps[i].Status, apps[i].CreatedAt, apps[i].StatusUpdatedAt))
	}
	return out, nil
}

func (s *ApplicationServiceImpl) InternshipApplicants(db *gorm.DB, recruiterID, internshipID string) ([]dto.ApplicantResponse, error) {
	internship, err := s.internshipRepo.FindByID(db, internshipID)
	if err != nil || internship.RecruiterID != recruiterID {
		return nil, apperrors.ErrListingNotFound
	}

	apps, err := s.applicationRepo.FindInternshipApplicationsByInternship(db, internshipID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]dto.ApplicantResponse, 0, len(apps))
	for i := range apps {
		out = append(out, applicantResponse(apps[i].ID, apps[i].CandidateID, &apps[i].CandidateSnapshot,
			apps[i].CoverLetter, apps[i].RecruiterNotes, apps[i].Status, apps[i].CreatedAt, apps[i].StatusUpdatedAt))
	}
	return out, nil
}

func (s *ApplicationServiceImpl) UpdateJobApplicationStatus(db *gorm.DB, recruiterID, applicationID string, req *dto.UpdateApplicationStatusRequest) error {
	if !models.ValidApplicationStatus(req.Status) {
		return apperrors.ErrInvalidApplicationStatus
	}

	app, err := s.applicationRepo.FindJobApplicationByID(db, applicationID)
	if err != nil {
		return apperrors.ErrNotFound(err)
	}
	if app.Job == nil || app.Job.RecruiterID != recruiterID {
		return apperrors.ErrNotFound(repositories.ErrApplicationNotFound)
	}

	if err := s.applicationRepo.UpdateJobApplicationStatus(db, applicationID, req.Status, req.RecruiterNotes); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ApplicationServiceImpl) UpdateInternshipApplicationStatus(db *gorm.DB, recruiterID, applicationID string, req *dto.UpdateApplicationStatusRequest) error {
	if !models.ValidApplicationStatus(req.Status) {
		return apperrors.ErrInvalidApplicationStatus
	}

	app, err := s.applicationRepo.FindInternshipApplicationByID(db, applicationID)
	if err != nil {
		return apperrors.ErrNotFound(err)
	}
	if app.Internship == nil || app.Internship.RecruiterID != recruiterID {
		return apperrors.ErrNotFound(repositories.ErrApplicationNotFound)
	}

	if err := s.applicationRepo.UpdateInternshipApplicationStatus(db, applicationID, req.Status, req.RecruiterNotes); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func jobApplicationResponse(app *models.JobApplication, job *models.Job) dto.ApplicationResponse {
	resp := dto.ApplicationResponse{
		ID:              app.ID,
		Status:          app.Status,
		CoverLetter:     app.CoverLetter,
		AppliedAt:       app.CreatedAt,
		StatusUpdatedAt: app.StatusUpdatedAt,
	}
	if job != nil {
		resp.Listing = dto.ListingSummary{
			ID:          job.ID,
			Title:       job.Title,
			CompanyName: job.CompanyName,
			Location:    job.Location,
		}
	} else {
		resp.Listing = dto.ListingSummary{ID: app.JobID}
	}
	return resp
}

func internshipApplicationResponse(app *models.InternshipApplication, internship *models.Internship) dto.ApplicationResponse {
	resp := dto.ApplicationResponse{
		ID:              app.ID,
		Status:          app.Status,
		CoverLetter:     app.CoverLetter,
		AppliedAt:       app.CreatedAt,
		StatusUpdatedAt: app.StatusUpdatedAt,
	}
	if internship != nil {
		resp.Listing = dto.ListingSummary{
			ID:          internship.ID,
			Title:       internship.Title,
			CompanyName: internship.CompanyName,
			Location:    internship.Location,
		}
	} else {
		resp.Listing = dto.ListingSummary{ID: app.InternshipID}
	}
	return resp
}

func applicantResponse(
	id, candidateID string,
	snap *models.CandidateSnapshot,
	coverLetter, notes string,
	status models.ApplicationStatus,
	appliedAt time.Time,
	statusUpdatedAt *time.Time,
) dto.ApplicantResponse {
	return dto.ApplicantResponse{
		ID:              id,
		CandidateID:     candidateID,
		FullName:        snap.CandidateFullName,
		Email:           snap.CandidateEmail,
		Phone:           snap.CandidatePhone,
		Location:        snap.CandidateLocation,
		Skills:          snap.CandidateSkills,
		Bio:             snap.CandidateBio,
		ResumeURL:       snap.CandidateResumeURL,
		CoverLetter:     coverLetter,
		RecruiterNotes:  notes,
		Status:          status,
		AppliedAt:       appliedAt,
		StatusUpdatedAt: statusUpdatedAt,
	}
}
