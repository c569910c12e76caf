package services

import (
	"gorm.io/gorm"

	"tconnect_backend/internal/models"
	"tconnect_backend/internal/repositories"
	"tconnect_backend/internal/services/dto"
	"tconnect_backend/pkg/apperrors"
)

// ProfileService covers the role-scoped profile records. Each one is
// get-or-create on first read so PATCH always has a row to work on.
type ProfileService interface {
	GetCandidateProfile(db *gorm.DB, userID string) (*models.CandidateProfile, error)
	UpdateCandidateProfile(db *gorm.DB, userID string, req *dto.UpdateCandidateProfileRequest) (*models.CandidateProfile, error)

	GetRecruiterProfile(db *gorm.DB, userID string) (*models.RecruiterBasicProfile, error)
	UpdateRecruiterProfile(db *gorm.DB, userID string, req *dto.UpdateRecruiterProfileRequest) (*models.RecruiterBasicProfile, error)

	GetCompanyProfile(db *gorm.DB, userID string) (*models.CompanyProfile, error)
	UpdateCompanyProfile(db *gorm.DB, userID string, req *dto.UpdateCompanyProfileRequest) (*models.CompanyProfile, error)
	PublicCompanyProfile(db *gorm.DB, recruiterID string) (*models.CompanyProfile, error)
}

type ProfileServiceImpl struct {
	profileRepo repositories.ProfileRepository
	userRepo    repositories.UserRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository, userRepo repositories.UserRepository) ProfileService {
	return &ProfileServiceImpl{profileRepo: profileRepo, userRepo: userRepo}
}

func (s *ProfileServiceImpl) GetCandidateProfile(db *gorm.DB, userID string) (*models.CandidateProfile, error) {
	profile, err := s.profileRepo.FindCandidateProfile(db, userID)
	if apperrors.Is(err, repositories.ErrProfileNotFound) {
		profile = &models.CandidateProfile{UserID: userID, Skills: toJSON([]string{})}
		if err := s.profileRepo.UpsertCandidateProfile(db, profile); err != nil {
			return nil, apperrors.InternalError(err)
		}
		return profile, nil
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *ProfileServiceImpl) UpdateCandidateProfile(db *gorm.DB, userID string, req *dto.UpdateCandidateProfileRequest) (*models.CandidateProfile, error) {
	profile, err := s.GetCandidateProfile(db, userID)
	if err != nil {
		return nil, err
	}

	if req.PhoneNumber != nil {
		profile.PhoneNumber = *req.PhoneNumber
	}
	if req.Location != nil {
		profile.Location = *req.Location
	}
	if req.ExperienceLevel != nil {
		profile.ExperienceLevel = *req.ExperienceLevel
	}
	if req.Skills != nil {
		profile.Skills = toJSON(*req.Skills)
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.ResumeURL != nil {
		profile.ResumeURL = *req.ResumeURL
	}
	if req.PictureURL != nil {
		profile.PictureURL = *req.PictureURL
	}

	if err := s.profileRepo.UpsertCandidateProfile(db, profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *ProfileServiceImpl) GetRecruiterProfile(db *gorm.DB, userID string) (*models.RecruiterBasicProfile, error) {
	profile, err := s.profileRepo.FindRecruiterProfile(db, userID)
	if apperrors.Is(err, repositories.ErrProfileNotFound) {
		user, uerr := s.userRepo.FindByID(db, userID)
		if uerr != nil {
			return nil, apperrors.InternalError(uerr)
		}
		profile = &models.RecruiterBasicProfile{UserID: userID, FullName: user.FullName}
		if err := s.profileRepo.UpsertRecruiterProfile(db, profile); err != nil {
			return nil, apperrors.InternalError(err)
		}
		return profile, nil
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *ProfileServiceImpl) UpdateRecruiterProfile(db *gorm.DB, userID string, req *dto.UpdateRecruiterProfileRequest) (*models.RecruiterBasicProfile, error) {
	profile, err := s.GetRecruiterProfile(db, userID)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		profile.FullName = *req.FullName
	}
	if req.CompanyEmail != nil {
		profile.CompanyEmail = *req.CompanyEmail
	}
	if req.PhoneNumber != nil {
		profile.PhoneNumber = *req.PhoneNumber
	}
	if req.PositionInCompany != nil {
		profile.PositionInCompany = *req.PositionInCompany
	}
	if req.LinkedinProfile != nil {
		profile.LinkedinProfile = *req.LinkedinProfile
	}

	if err := s.profileRepo.UpsertRecruiterProfile(db, profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *ProfileServiceImpl) GetCompanyProfile(db *gorm.DB, userID string) (*models.CompanyProfile, error) {
	profile, err := s.profileRepo.FindCompanyProfile(db, userID)
	if apperrors.Is(err, repositories.ErrProfileNotFound) {
		profile = &models.CompanyProfile{UserID: userID}
		if err := s.profileRepo.UpsertCompanyProfile(db, profile); err != nil {
			return nil, apperrors.InternalError(err)
		}
		return profile, nil
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *ProfileServiceImpl) UpdateCompanyProfile(db *gorm.DB, userID string, req *dto.UpdateCompanyProfileRequest) (*models.CompanyProfile, error) {
	profile, err := s.GetCompanyProfile(db, userID)
	if err != nil {
		return nil, err
	}

	if req.CompanyName != nil {
		profile.CompanyName = *req.CompanyName
	}
	if req.IndustryCategory != nil {
		profile.IndustryCategory = *req.IndustryCategory
	}
	if req.CompanySize != nil {
		profile.CompanySize = *req.CompanySize
	}
	if req.CompanyLocation != nil {
		profile.CompanyLocation = *req.CompanyLocation
	}
	if req.CompanyWebsite != nil {
		profile.CompanyWebsite = *req.CompanyWebsite
	}
	if req.AboutCompany != nil {
		profile.AboutCompany = *req.AboutCompany
	}

	if err := s.profileRepo.UpsertCompanyProfile(db, profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

// PublicCompanyProfile never creates; absent rows are a plain 404.
func (s *ProfileServiceImpl) PublicCompanyProfile(db *gorm.DB, recruiterID string) (*models.CompanyProfile, error) {
	profile, err := s.profileRepo.FindCompanyProfile(db, recruiterID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.NewNotFoundError("profiles", "Company profile not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}
