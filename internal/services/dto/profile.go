package dto

import "tconnect_backend/internal/models"

type UpdateCandidateProfileRequest struct {
	PhoneNumber     *string                 `json:"phone_number"`
	Location        *string                 `json:"location"`
	ExperienceLevel *models.ExperienceLevel `json:"experience_level" validate:"omitempty,is-experience-level"`
	Skills          *[]string               `json:"skills"`
	Bio             *string                 `json:"bio"`
	ResumeURL       *string                 `json:"resume_url"`
	PictureURL      *string                 `json:"picture_url"`
}

type UpdateRecruiterProfileRequest struct {
	FullName          *string `json:"full_name"`
	CompanyEmail      *string `json:"company_email" validate:"omitempty,email"`
	PhoneNumber       *string `json:"phone_number"`
	PositionInCompany *string `json:"position_in_company"`
	LinkedinProfile   *string `json:"linkedin_profile"`
}

type UpdateCompanyProfileRequest struct {
	CompanyName      *string `json:"company_name"`
	IndustryCategory *string `json:"industry_category"`
	CompanySize      *string `json:"company_size"`
	CompanyLocation  *string `json:"company_location"`
	CompanyWebsite   *string `json:"company_website"`
	AboutCompany     *string `json:"about_company"`
}
