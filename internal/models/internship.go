package models

import (
	"time"

	"gorm.io/datatypes"
)

type Internship struct {
	BaseModel
	RecruiterID string `gorm:"not null;index" json:"recruiter_id"`

	Title          string         `gorm:"not null;index" json:"title"`
	CompanyName    string         `gorm:"not null" json:"company_name"`
	Category       string         `gorm:"index" json:"category"`
	Location       string         `gorm:"index" json:"location"`
	Duration       string         `json:"duration"`
	Stipend        string         `json:"stipend"`
	InternshipType InternshipType `gorm:"type:varchar(50);default:'full_time';index" json:"internship_type"`

	ShortDescription string `gorm:"type:text" json:"short_description"`
	FullDescription  string `gorm:"type:text" json:"full_description"`

	Responsibilities datatypes.JSON `json:"responsibilities"`
	Skills           datatypes.JSON `json:"skills"`
	Eligibility      string         `gorm:"type:text" json:"eligibility"`

	ApplicationDeadline *time.Time `json:"application_deadline"`
	IsActive            bool       `gorm:"default:true" json:"is_active"`

	Recruiter *User `gorm:"foreignKey:RecruiterID" json:"-"`
}
