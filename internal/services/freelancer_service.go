package services

import (
	"gorm.io/gorm"

	"tconnect_backend/internal/models"
	"tconnect_backend/internal/repositories"
	"tconnect_backend/internal/services/dto"
	"tconnect_backend/pkg/apperrors"
)

// FreelancerService manages the candidate's freelancer sub-profile tree.
// Every candidate owns at most one tree, rooted at FreelancerBasicInfo.
type FreelancerService interface {
	GetBasicInfo(db *gorm.DB, userID string) (*models.FreelancerBasicInfo, error)
	UpdateBasicInfo(db *gorm.DB, userID string, req *dto.UpdateFreelancerBasicInfoRequest) (*models.FreelancerBasicInfo, error)

	GetProfessionalDetails(db *gorm.DB, userID string) (*models.FreelancerProfessionalDetails, error)
	UpdateProfessionalDetails(db *gorm.DB, userID string, req *dto.UpdateFreelancerProfessionalRequest) (*models.FreelancerProfessionalDetails, error)

	ListEducation(db *gorm.DB, userID string) ([]models.FreelancerEducation, error)
	AddEducation(db *gorm.DB, userID string, req *dto.FreelancerEducationRequest) (*models.FreelancerEducation, error)
	UpdateEducation(db *gorm.DB, userID, eduID string, req *dto.UpdateFreelancerEducationRequest) (*models.FreelancerEducation, error)
	DeleteEducation(db *gorm.DB, userID, eduID string) error

	GetAvailability(db *gorm.DB, userID string) (*models.FreelancerAvailability, error)
	UpdateAvailability(db *gorm.DB, userID string, req *dto.UpdateFreelancerAvailabilityRequest) (*models.FreelancerAvailability, error)

	ListPaymentMethods(db *gorm.DB, userID string) ([]models.FreelancerPaymentMethod, error)
	AddPaymentMethod(db *gorm.DB, userID string, req *dto.FreelancerPaymentMethodRequest) (*models.FreelancerPaymentMethod, error)
	DeletePaymentMethod(db *gorm.DB, userID, methodID string) error

	GetSocialLinks(db *gorm.DB, userID string) (*models.FreelancerSocialLinks, error)
	UpdateSocialLinks(db *gorm.DB, userID string, req *dto.UpdateFreelancerSocialLinksRequest) (*models.FreelancerSocialLinks, error)

	Preview(db *gorm.DB, userID string) (*dto.FreelancerProfileView, error)
	Publish(db *gorm.DB, userID string) (*models.FreelancerBasicInfo, error)

	PublicList(db *gorm.DB, page, pageSize int) (*dto.FreelancerListResponse, error)
	PublicDetail(db *gorm.DB, freelancerID string) (*dto.FreelancerProfileView, error)
}

type FreelancerServiceImpl struct {
	freelancerRepo repositories.FreelancerRepository
	userRepo       repositories.UserRepository
}

func NewFreelancerService(freelancerRepo repositories.FreelancerRepository, userRepo repositories.UserRepository) FreelancerService {
	return &FreelancerServiceImpl{freelancerRepo: freelancerRepo, userRepo: userRepo}
}

// root get-or-creates the caller's BasicInfo row; every other section hangs
// off its ID.
func (s *FreelancerServiceImpl) root(db *gorm.DB, userID string) (*models.FreelancerBasicInfo, error) {
	info, err := s.freelancerRepo.FindBasicInfoByUser(db, userID)
	if apperrors.Is(err, repositories.ErrFreelancerNotFound) {
		user, uerr := s.userRepo.FindByID(db, userID)
		if uerr != nil {
			return nil, apperrors.InternalError(uerr)
		}
		info = &models.FreelancerBasicInfo{
			UserID:         userID,
			FullName:       user.FullName,
			LanguagesKnown: toJSON([]string{}),
		}
		if err := s.freelancerRepo.UpsertBasicInfo(db, info); err != nil {
			return nil, apperrors.InternalError(err)
		}
		return info, nil
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return info, nil
}

func (s *FreelancerServiceImpl) GetBasicInfo(db *gorm.DB, userID string) (*models.FreelancerBasicInfo, error) {
	return s.root(db, userID)
}

func (s *FreelancerServiceImpl) UpdateBasicInfo(db *gorm.DB, userID string, req *dto.UpdateFreelancerBasicInfoRequest) (*models.FreelancerBasicInfo, error) {
	info, err := s.root(db, userID)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		info.FullName = *req.FullName
	}
	if req.PhoneNumber != nil {
		info.PhoneNumber = *req.PhoneNumber
	}
	if req.Location != nil {
		info.Location = *req.Location
	}
	if req.LanguagesKnown != nil {
		info.LanguagesKnown = toJSON(*req.LanguagesKnown)
	}
	if req.PictureURL != nil {
		info.PictureURL = *req.PictureURL
	}

	if err := s.freelancerRepo.UpsertBasicInfo(db, info); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return info, nil
}

func (s *FreelancerServiceImpl) GetProfessionalDetails(db *gorm.DB, userID string) (*models.FreelancerProfessionalDetails, error) {
	info, err := s.root(db, userID)
	if err != nil {
		return nil, err
	}

	details, err := s.freelancerRepo.FindProfessionalDetails(db, info.ID)
	if apperrors.Is(err, repositories.ErrProfileNotFound) {
		details = &models.FreelancerProfessionalDetails{FreelancerID: info.ID}
		if err := s.freelancerRepo.UpsertProfessionalDetails(db, details); err != nil {
			return nil, apperrors.InternalError(err)
		}
		return details, nil
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return details, nil
}

func (s *FreelancerServiceImpl) UpdateProfessionalDetails(db *gorm.DB, userID string, req *dto.UpdateFreelancerProfessionalRequest) (*models.FreelancerProfessionalDetails, error) {
	details, err := s.GetProfessionalDetails(db, userID)
	if err != nil {
		return nil, err
	}

	if req.AreaOfExpertise != nil {
		details.AreaOfExpertise = *req.AreaOfExpertise
	}
	if req.YearsOfExperience != nil {
		details.YearsOfExperience = *req.YearsOfExperience
	}
	if req.JobCategory != nil {
		details.JobCategory = *req.JobCategory
	}
	if req.ProfessionalBio != nil {
		details.ProfessionalBio = *req.ProfessionalBio
	}

	if err := s.freelancerRepo.UpsertProfessionalDetails(db, details); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return details, nil
}

func (s *FreelancerServiceImpl) ListEducation(db *gorm.DB, userID string) ([]models.FreelancerEducation, error) {
	info, err := s.root(db, userID)
	if err != nil {
		return nil, err
	}
	entries, err := s.freelancerRepo.FindEducation(db, info.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return entries, nil
}

func (s *FreelancerServiceImpl) AddEducation(db *gorm.DB, userID string, req *dto.FreelancerEducationRequest) (*models.FreelancerEducation, error) {
	info, err := s.root(db, userID)
	if err != nil {
		return nil, err
	}

	edu := &models.FreelancerEducation{
		FreelancerID: info.ID,
		Degree:       req.Degree,
		Institution:  req.Institution,
		StartYear:    req.StartYear,
		EndYear:      req.EndYear,
		Description:  req.Description,
	}
	if err := s.freelancerRepo.CreateEducation(db, edu); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return edu, nil
}

func (s *FreelancerServiceImpl) UpdateEducation(db *gorm.DB, userID, eduID string, req *dto.UpdateFreelancerEducationRequest) (*models.FreelancerEducation, error) {
	info, err := s.root(db, userID)
	if err != nil {
		return nil, err
	}

	entries, err := s.freelancerRepo.FindEducation(db, info.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	var edu *models.FreelancerEducation
	for i := range entries {
		if entries[i].ID == eduID {
			edu = &entries[i]
			break
		}
	}
	if edu == nil {
		return nil, apperrors.NewNotFoundError("freelancer", "Education entry not found")
	}

	if req.Degree != nil {
		edu.Degree = *req.Degree
	}
	if req.Institution != nil {
		edu.Institution = *req.Institution
	}
	if req.StartYear != nil {
		edu.StartYear = *req.StartYear
	}
	if req.EndYear != nil {
		edu.EndYear = *req.EndYear
	}
	if req.Description != nil {
		edu.Description = *req.Description
	}

	if err := s.freelancerRepo.UpdateEducation(db, edu); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return edu, nil
}

func (s *FreelancerServiceImpl) DeleteEducation(db *gorm.DB, userID, eduID string) error {
	info, err := s.root(db, userID)
	if err != nil {
		return err
	}
	if err := s.freelancerRepo.DeleteEducation(db, info.ID, eduID); err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return apperrors.NewNotFoundError("freelancer", "Education entry not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *FreelancerServiceImpl) GetAvailability(db *gorm.DB, userID string) (*models.FreelancerAvailability, error) {
	info, err := s.root(db, userID)
	if err != nil {
		return nil, err
	}

	availability, err := s.freelancerRepo.FindAvailability(db, info.ID)
	if apperrors.Is(err, repositories.ErrProfileNotFound) {
		availability = &models.FreelancerAvailability{
			FreelancerID:  info.ID,
			IsAvailable:   true,
			AvailableDays: toJSON([]string{}),
		}
		if err := s.freelancerRepo.UpsertAvailability(db, availability); err != nil {
			return nil, apperrors.InternalError(err)
		}
		return availability, nil
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return availability, nil
}

func (s *FreelancerServiceImpl) UpdateAvailability(db *gorm.DB, userID string, req *dto.UpdateFreelancerAvailabilityRequest) (*models.FreelancerAvailability, error) {
	availability, err := s.GetAvailability(db, userID)
	if err != nil {
		return nil, err
	}

	if req.IsAvailable != nil {
		availability.IsAvailable = *req.IsAvailable
	}
	if req.IsOccupied != nil {
		availability.IsOccupied = *req.IsOccupied
	}
	if req.AvailableFrom != nil {
		availability.AvailableFrom = *req.AvailableFrom
	}
	if req.AvailableTo != nil {
		availability.AvailableTo = *req.AvailableTo
	}
	if req.TimeZone != nil {
		availability.TimeZone = *req.TimeZone
	}
	if req.AvailableDays != nil {
		availability.AvailableDays = toJSON(*req.AvailableDays)
	}

	if err := s.freelancerRepo.UpsertAvailability(db, availability); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return availability, nil
}

func (s *FreelancerServiceImpl) ListPaymentMethods(db *gorm.DB, userID string) ([]models.FreelancerPaymentMethod, error) {
	info, err := s.root(db, userID)
	if err != nil {
		return nil, err
	}
	methods, err := s.freelancerRepo.FindPaymentMethods(db, info.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return methods, nil
}

func (s *FreelancerServiceImpl) AddPaymentMethod(db *gorm.DB, userID string, req *dto.FreelancerPaymentMethodRequest) (*models.FreelancerPaymentMethod, error) {
	info, err := s.root(db, userID)
	if err != nil {
		return nil, err
	}

	method := &models.FreelancerPaymentMethod{
		FreelancerID:  info.ID,
		PaymentType:   req.PaymentType,
		UpiID:         req.UpiID,
		AccountNumber: req.AccountNumber,
		IfscCode:      req.IfscCode,
		BankName:      req.BankName,
	}
	if err := s.freelancerRepo.CreatePaymentMethod(db, method); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return method, nil
}

func (s *FreelancerServiceImpl) DeletePaymentMethod(db *gorm.DB, userID, methodID string) error {
	info, err := s.root(db, userID)
	if err != nil {
		return err
	}
	if err := s.freelancerRepo.DeletePaymentMethod(db, info.ID, methodID); err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return apperrors.NewNotFoundError("freelancer", "Payment method not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *FreelancerServiceImpl) GetSocialLinks(db *gorm.DB, userID string) (*models.FreelancerSocialLinks, error) {
	info, err := s.root(db, userID)
	if err != nil {
		return nil, err
	}

	links, err := s.freelancerRepo.FindSocialLinks(db, info.ID)
	if apperrors.Is(err, repositories.ErrProfileNotFound) {
		links = &models.FreelancerSocialLinks{FreelancerID: info.ID}
		if err := s.freelancerRepo.UpsertSocialLinks(db, links); err != nil {
			return nil, apperrors.InternalError(err)
		}
		return links, nil
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return links, nil
}

func (s *FreelancerServiceImpl) UpdateSocialLinks(db *gorm.DB, userID string, req *dto.UpdateFreelancerSocialLinksRequest) (*models.FreelancerSocialLinks, error) {
	links, err := s.GetSocialLinks(db, userID)
	if err != nil {
		return nil, err
	}

	if req.LinkedinURL != nil {
		links.LinkedinURL = *req.LinkedinURL
	}
	if req.GithubURL != nil {
		links.GithubURL = *req.GithubURL
	}
	if req.PortfolioURL != nil {
		links.PortfolioURL = *req.PortfolioURL
	}

	if err := s.freelancerRepo.UpsertSocialLinks(db, links); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return links, nil
}

func (s *FreelancerServiceImpl) Preview(db *gorm.DB, userID string) (*dto.FreelancerProfileView, error) {
	info, err := s.root(db, userID)
	if err != nil {
		return nil, err
	}
	return s.assemble(db, info, true)
}

func (s *FreelancerServiceImpl) Publish(db *gorm.DB, userID string) (*models.FreelancerBasicInfo, error) {
	info, err := s.root(db, userID)
	if err != nil {
		return nil, err
	}
	if err := s.freelancerRepo.SetPublished(db, info.ID, true); err != nil {
		return nil, apperrors.InternalError(err)
	}
	info.IsPublished = true
	return info, nil
}

func (s *FreelancerServiceImpl) PublicList(db *gorm.DB, page, pageSize int) (*dto.FreelancerListResponse, error) {
	limit, offset := 0, 0
	if pageSize > 0 {
		if page < 1 {
			page = 1
		}
		limit = pageSize
		offset = (page - 1) * pageSize
	}

	infos, total, err := s.freelancerRepo.FindPublished(db, limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.FreelancerListResponse{Items: infos, Total: total}, nil
}

// PublicDetail only serves published profiles and omits payment methods.
func (s *FreelancerServiceImpl) PublicDetail(db *gorm.DB, freelancerID string) (*dto.FreelancerProfileView, error) {
	info, err := s.freelancerRepo.FindBasicInfoByID(db, freelancerID)
	if err != nil || !info.IsPublished {
		return nil, apperrors.NewNotFoundError("freelancer", "Freelancer profile not found")
	}
	return s.assemble(db, info, false)
}

func (s *FreelancerServiceImpl) assemble(db *gorm.DB, info *models.FreelancerBasicInfo, includePayment bool) (*dto.FreelancerProfileView, error) {
	view := &dto.FreelancerProfileView{BasicInfo: *info}

	if details, err := s.freelancerRepo.FindProfessionalDetails(db, info.ID); err == nil {
		view.ProfessionalDetails = details
	}
	if availability, err := s.freelancerRepo.FindAvailability(db, info.ID); err == nil {
		view.Availability = availability
	}
	if links, err := s.freelancerRepo.FindSocialLinks(db, info.ID); err == nil {
		view.SocialLinks = links
	}

	education, err := s.freelancerRepo.FindEducation(db, info.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	view.Education = education

	if includePayment {
		methods, err := s.freelancerRepo.FindPaymentMethods(db, info.ID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		view.PaymentMethods = methods
	}

	return view, nil
}
