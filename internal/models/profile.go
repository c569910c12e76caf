package models

import "gorm.io/datatypes"

type CandidateProfile struct {
	BaseModel
	UserID          string          `gorm:"not null;uniqueIndex" json:"user_id"`
	PhoneNumber     string          `json:"phone_number"`
	Location        string          `json:"location"`
	ExperienceLevel ExperienceLevel `gorm:"type:varchar(20);default:'fresher'" json:"experience_level"`
	Skills          datatypes.JSON  `json:"skills"`
	Bio             string          `gorm:"type:text" json:"bio"`
	ResumeURL       string          `json:"resume_url"`
	PictureURL      string          `json:"picture_url"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

type RecruiterBasicProfile struct {
	BaseModel
	UserID            string `gorm:"not null;uniqueIndex" json:"user_id"`
	FullName          string `json:"full_name"`
	CompanyEmail      string `json:"company_email"`
	PhoneNumber       string `json:"phone_number"`
	PositionInCompany string `json:"position_in_company"`
	LinkedinProfile   string `json:"linkedin_profile"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

type CompanyProfile struct {
	BaseModel
	UserID           string `gorm:"not null;uniqueIndex" json:"user_id"`
	CompanyName      string `json:"company_name"`
	IndustryCategory string `json:"industry_category"`
	CompanySize      string `json:"company_size"`
	CompanyLocation  string `json:"company_location"`
	CompanyWebsite   string `json:"company_website"`
	AboutCompany     string `gorm:"type:text" json:"about_company"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}
