package models

import "gorm.io/datatypes"

// FreelancerBasicInfo is the root of the freelancer sub-profile tree.
// IsPublished gates visibility in the public directory.
type FreelancerBasicInfo struct {
	BaseModel
	UserID         string         `gorm:"not null;uniqueIndex" json:"user_id"`
	FullName       string         `json:"full_name"`
	PhoneNumber    string         `json:"phone_number"`
	Location       string         `json:"location"`
	LanguagesKnown datatypes.JSON `json:"languages_known"`
	PictureURL     string         `json:"picture_url"`
	IsPublished    bool           `gorm:"default:false;index" json:"is_published"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

type FreelancerProfessionalDetails struct {
	BaseModel
	FreelancerID      string `gorm:"not null;uniqueIndex" json:"freelancer_id"`
	AreaOfExpertise   string `json:"area_of_expertise"`
	YearsOfExperience int    `json:"years_of_experience"`
	JobCategory       string `json:"job_category"`
	ProfessionalBio   string `gorm:"type:text" json:"professional_bio"`

	Freelancer *FreelancerBasicInfo `gorm:"foreignKey:FreelancerID" json:"-"`
}

type FreelancerEducation struct {
	BaseModel
	FreelancerID string `gorm:"not null;index" json:"freelancer_id"`
	Degree       string `gorm:"not null" json:"degree"`
	Institution  string `gorm:"not null" json:"institution"`
	StartYear    int    `json:"start_year"`
	EndYear      int    `json:"end_year"`
	Description  string `gorm:"type:text" json:"description"`

	Freelancer *FreelancerBasicInfo `gorm:"foreignKey:FreelancerID" json:"-"`
}

type FreelancerAvailability struct {
	BaseModel
	FreelancerID  string         `gorm:"not null;uniqueIndex" json:"freelancer_id"`
	IsAvailable   bool           `gorm:"default:true" json:"is_available"`
	IsOccupied    bool           `gorm:"default:false" json:"is_occupied"`
	AvailableFrom string         `json:"available_from"`
	AvailableTo   string         `json:"available_to"`
	TimeZone      string         `json:"time_zone"`
	AvailableDays datatypes.JSON `json:"available_days"`

	Freelancer *FreelancerBasicInfo `gorm:"foreignKey:FreelancerID" json:"-"`
}

type FreelancerPaymentMethod struct {
	BaseModel
	FreelancerID  string `gorm:"not null;index" json:"freelancer_id"`
	PaymentType   string `gorm:"type:varchar(50)" json:"payment_type"`
	UpiID         string `json:"upi_id"`
	AccountNumber string `json:"account_number"`
	IfscCode      string `json:"ifsc_code"`
	BankName      string `json:"bank_name"`

	Freelancer *FreelancerBasicInfo `gorm:"foreignKey:FreelancerID" json:"-"`
}

type FreelancerSocialLinks struct {
	BaseModel
	FreelancerID string         `gorm:"not null;uniqueIndex" json:"freelancer_id"`
	LinkedinURL  string         `json:"linkedin_url"`
	GithubURL    string         `json:"github_url"`
	PortfolioURL string         `json:"portfolio_url"`
	Rating       float64        `json:"rating"`
	Ratings      datatypes.JSON `json:"ratings"`
	Badges       datatypes.JSON `json:"badges"`

	Freelancer *FreelancerBasicInfo `gorm:"foreignKey:FreelancerID" json:"-"`
}
