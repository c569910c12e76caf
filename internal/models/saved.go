package models

type SavedJob struct {
	BaseModel
	UserID string `gorm:"not null;index;uniqueIndex:idx_user_saved_job" json:"user_id"`
	JobID  string `gorm:"not null;index;uniqueIndex:idx_user_saved_job" json:"job_id"`

	Job *Job `gorm:"foreignKey:JobID" json:"job,omitempty"`
}

type SavedInternship struct {
	BaseModel
	UserID       string `gorm:"not null;index;uniqueIndex:idx_user_saved_internship" json:"user_id"`
	InternshipID string `gorm:"not null;index;uniqueIndex:idx_user_saved_internship" json:"internship_id"`

	Internship *Internship `gorm:"foreignKey:InternshipID" json:"internship,omitempty"`
}
