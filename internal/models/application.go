package models

import (
	"time"

	"gorm.io/datatypes"
)

// CandidateSnapshot is the profile copy frozen into an application at
// submission time. It is never refreshed after creation.
type CandidateSnapshot struct {
	CandidateFullName  string         `json:"candidate_full_name"`
	CandidateEmail     string         `json:"candidate_email"`
	CandidatePhone     string         `json:"candidate_phone"`
	CandidateLocation  string         `json:"candidate_location"`
	CandidateSkills    datatypes.JSON `json:"candidate_skills"`
	CandidateBio       string         `gorm:"type:text" json:"candidate_bio"`
	CandidateResumeURL string         `json:"candidate_resume_url"`
}

type JobApplication struct {
	BaseModel
	JobID       string `gorm:"not null;index;uniqueIndex:idx_job_candidate" json:"job_id"`
	CandidateID string `gorm:"not null;index;uniqueIndex:idx_job_candidate" json:"candidate_id"`

	CandidateSnapshot

	CoverLetter     string            `gorm:"type:text" json:"cover_letter"`
	RecruiterNotes  string            `gorm:"type:text" json:"-"`
	Status          ApplicationStatus `gorm:"type:varchar(32);default:'applied';index" json:"status"`
	StatusUpdatedAt *time.Time        `json:"status_updated_at"`

	Job       *Job  `gorm:"foreignKey:JobID" json:"-"`
	Candidate *User `gorm:"foreignKey:CandidateID" json:"-"`
}

type InternshipApplication struct {
	BaseModel
	InternshipID string `gorm:"not null;index;uniqueIndex:idx_internship_candidate" json:"internship_id"`
	CandidateID  string `gorm:"not null;index;uniqueIndex:idx_internship_candidate" json:"candidate_id"`

	CandidateSnapshot

	CoverLetter     string            `gorm:"type:text" json:"cover_letter"`
	RecruiterNotes  string            `gorm:"type:text" json:"-"`
	Status          ApplicationStatus `gorm:"type:varchar(32);default:'applied';index" json:"status"`
	StatusUpdatedAt *time.Time        `json:"status_updated_at"`

	Internship *Internship `gorm:"foreignKey:InternshipID" json:"-"`
	Candidate  *User       `gorm:"foreignKey:CandidateID" json:"-"`
}
