package dto

import (
	"time"

	"gorm.io/datatypes"

	"tconnect_backend/internal/models"
)

type ApplyRequest struct {
	CoverLetter string `json:"cover_letter"`
}

type UpdateApplicationStatusRequest struct {
	Status         models.ApplicationStatus `json:"status" validate:"required,is-application-status"`
	RecruiterNotes string                   `json:"recruiter_notes"`
}

// ListingSummary is the embedded listing block on application rows.
type ListingSummary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	CompanyName string `json:"company_name"`
	Location    string `json:"location,omitempty"`
}

type ApplicationResponse struct {
	ID              string                   `json:"id"`
	Listing         ListingSummary           `json:"listing"`
	Status          models.ApplicationStatus `json:"status"`
	CoverLetter     string                   `json:"cover_letter,omitempty"`
	AppliedAt       time.Time                `json:"applied_at"`
	StatusUpdatedAt *time.Time               `json:"status_updated_at,omitempty"`
}

// ApplicantResponse is the recruiter-facing view, exposing the frozen
// candidate snapshot and recruiter notes.
type ApplicantResponse struct {
	ID              string                   `json:"id"`
	CandidateID     string                   `json:"candidate_id"`
	FullName        string                   `json:"candidate_full_name"`
	Email           string                   `json:"candidate_email"`
	Phone           string                   `json:"candidate_phone,omitempty"`
	Location        string                   `json:"candidate_location,omitempty"`
	Skills          datatypes.JSON           `json:"candidate_skills,omitempty"`
	Bio             string                   `json:"candidate_bio,omitempty"`
	ResumeURL       string                   `json:"candidate_resume_url,omitempty"`
	CoverLetter     string                   `json:"cover_letter,omitempty"`
	RecruiterNotes  string                   `json:"recruiter_notes,omitempty"`
	Status          models.ApplicationStatus `json:"status"`
	AppliedAt       time.Time                `json:"applied_at"`
	StatusUpdatedAt *time.Time               `json:"status_updated_at,omitempty"`
}
