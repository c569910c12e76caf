package models

import (
	"time"

	"gorm.io/datatypes"
)

type Job struct {
	BaseModel
	RecruiterID string `gorm:"not null;index" json:"recruiter_id"`

	Title           string         `gorm:"not null;index" json:"title"`
	CompanyName     string         `gorm:"not null" json:"company_name"`
	Location        string         `gorm:"index" json:"location"`
	ExperienceRange string         `json:"experience_range"`
	SalaryRange     string         `json:"salary_range"`
	EmploymentType  EmploymentType `gorm:"type:varchar(50);default:'full_time';index" json:"employment_type"`
	Category        string         `gorm:"index" json:"category"`

	ShortDescription string `gorm:"type:text" json:"short_description"`
	FullDescription  string `gorm:"type:text" json:"full_description"`

	Responsibilities datatypes.JSON `json:"responsibilities"`
	Requirements     datatypes.JSON `json:"requirements"`
	Skills           datatypes.JSON `json:"skills"`
	EligibleDegrees  datatypes.JSON `json:"eligible_degrees"`

	ApplicationDeadline *time.Time `json:"application_deadline"`
	IsActive            bool       `gorm:"default:true" json:"is_active"`

	Recruiter *User `gorm:"foreignKey:RecruiterID" json:"-"`
}
