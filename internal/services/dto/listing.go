package dto

import (
	"time"

	"tconnect_backend/internal/models"
)

type CreateJobRequest struct {
	Title            string                `json:"title" validate:"required"`
	CompanyName      string                `json:"company_name" validate:"required"`
	Location         string                `json:"location"`
	ExperienceRange  string                `json:"experience_range"`
	SalaryRange      string                `json:"salary_range"`
	EmploymentType   models.EmploymentType `json:"employment_type" validate:"omitempty,is-employment-type"`
	Category         string                `json:"category"`
	ShortDescription string                `json:"short_description"`
	FullDescription  string                `json:"full_description"`

	// Array fields must arrive as JSON arrays; a bare string fails binding.
	Responsibilities []string `json:"responsibilities"`
	Requirements     []string `json:"requirements"`
	Skills           []string `json:"skills"`
	EligibleDegrees  []string `json:"eligible_degrees"`

	ApplicationDeadline *time.Time `json:"application_deadline"`
}

type UpdateJobRequest struct {
	Title            *string                `json:"title"`
	CompanyName      *string                `json:"company_name"`
	Location         *string                `json:"location"`
	ExperienceRange  *string                `json:"experience_range"`
	SalaryRange      *string                `json:"salary_range"`
	EmploymentType   *models.EmploymentType `json:"employment_type" validate:"omitempty,is-employment-type"`
	Category         *string                `json:"category"`
	ShortDescription *string                `json:"short_description"`
	FullDescription  *string                `json:"full_description"`

	Responsibilities *[]string `json:"responsibilities"`
	Requirements     *[]string `json:"requirements"`
	Skills           *[]string `json:"skills"`
	EligibleDegrees  *[]string `json:"eligible_degrees"`

	ApplicationDeadline *time.Time `json:"application_deadline"`
	IsActive            *bool      `json:"is_active"`
}

type CreateInternshipRequest struct {
	Title            string                `json:"title" validate:"required"`
	CompanyName      string                `json:"company_name" validate:"required"`
	Category         string                `json:"category"`
	Location         string                `json:"location"`
	Duration         string                `json:"duration"`
	Stipend          string                `json:"stipend"`
	InternshipType   models.InternshipType `json:"internship_type" validate:"omitempty,is-internship-type"`
	ShortDescription string                `json:"short_description"`
	FullDescription  string                `json:"full_description"`

	Responsibilities []string `json:"responsibilities"`
	Skills           []string `json:"skills"`
	Eligibility      string   `json:"eligibility"`

	ApplicationDeadline *time.Time `json:"application_deadline"`
}

type UpdateInternshipRequest struct {
	Title            *string                `json:"title"`
	CompanyName      *string                `json:"company_name"`
	Category         *string                `json:"category"`
	Location         *string                `json:"location"`
	Duration         *string                `json:"duration"`
	Stipend          *string                `json:"stipend"`
	InternshipType   *models.InternshipType `json:"internship_type" validate:"omitempty,is-internship-type"`
	ShortDescription *string                `json:"short_description"`
	FullDescription  *string                `json:"full_description"`

	Responsibilities *[]string `json:"responsibilities"`
	Skills           *[]string `json:"skills"`
	Eligibility      *string   `json:"eligibility"`

	ApplicationDeadline *time.Time `json:"application_deadline"`
	IsActive            *bool      `json:"is_active"`
}

type ListingQuery struct {
	Search   string `form:"search"`
	Location string `form:"location"`
	Category string `form:"category"`
	Type     string `form:"type"`
	Page     int    `form:"page" validate:"omitempty,min=1"`
	PageSize int    `form:"page_size" validate:"omitempty,min=1,max=100"`
}

type JobListResponse struct {
	Items []models.Job `json:"items"`
	Total int64        `json:"total"`
}

type InternshipListResponse struct {
	Items []models.Internship `json:"items"`
	Total int64               `json:"total"`
}
