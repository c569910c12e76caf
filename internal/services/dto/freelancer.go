package dto

import "tconnect_backend/internal/models"

type UpdateFreelancerBasicInfoRequest struct {
	FullName       *string   `json:"full_name"`
	PhoneNumber    *string   `json:"phone_number"`
	Location       *string   `json:"location"`
	LanguagesKnown *[]string `json:"languages_known"`
	PictureURL     *string   `json:"picture_url"`
}

type UpdateFreelancerProfessionalRequest struct {
	AreaOfExpertise   *string `json:"area_of_expertise"`
	YearsOfExperience *int    `json:"years_of_experience" validate:"omitempty,min=0"`
	JobCategory       *string `json:"job_category"`
	ProfessionalBio   *string `json:"professional_bio"`
}

type FreelancerEducationRequest struct {
	Degree      string `json:"degree" validate:"required"`
	Institution string `json:"institution" validate:"required"`
	StartYear   int    `json:"start_year" validate:"omitempty,min=1950"`
	EndYear     int    `json:"end_year"`
	Description string `json:"description"`
}

type UpdateFreelancerEducationRequest struct {
	Degree      *string `json:"degree"`
	Institution *string `json:"institution"`
	StartYear   *int    `json:"start_year"`
	EndYear     *int    `json:"end_year"`
	Description *string `json:"description"`
}

type UpdateFreelancerAvailabilityRequest struct {
	IsAvailable   *bool     `json:"is_available"`
	IsOccupied    *bool     `json:"is_occupied"`
	AvailableFrom *string   `json:"available_from"`
	AvailableTo   *string   `json:"available_to"`
	TimeZone      *string   `json:"time_zone"`
	AvailableDays *[]string `json:"available_days"`
}

type FreelancerPaymentMethodRequest struct {
	PaymentType   string `json:"payment_type" validate:"required,oneof=upi bank_account"`
	UpiID         string `json:"upi_id"`
	AccountNumber string `json:"account_number"`
	IfscCode      string `json:"ifsc_code"`
	BankName      string `json:"bank_name"`
}

type UpdateFreelancerSocialLinksRequest struct {
	LinkedinURL  *string `json:"linkedin_url" validate:"omitempty,url"`
	GithubURL    *string `json:"github_url" validate:"omitempty,url"`
	PortfolioURL *string `json:"portfolio_url" validate:"omitempty,url"`
}

// FreelancerProfileView is the assembled composite used by the preview and
// public detail endpoints.
type FreelancerProfileView struct {
	BasicInfo           models.FreelancerBasicInfo            `json:"basic_info"`
	ProfessionalDetails *models.FreelancerProfessionalDetails `json:"professional_details,omitempty"`
	Education           []models.FreelancerEducation          `json:"education"`
	Availability        *models.FreelancerAvailability        `json:"availability,omitempty"`
	PaymentMethods      []models.FreelancerPaymentMethod      `json:"payment_methods,omitempty"`
	SocialLinks         *models.FreelancerSocialLinks         `json:"social_links,omitempty"`
}

type FreelancerListResponse struct {
	Items []models.FreelancerBasicInfo `json:"items"`
	Total int64                        `json:"total"`
}
