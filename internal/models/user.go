package models

import "time"

type User struct {
	BaseModel
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	FullName     string   `json:"full_name"`
	PasswordHash string   `json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null;default:'candidate'" json:"role"`
	IsActive     bool     `gorm:"default:true" json:"is_active"`
	IsVerified   bool     `gorm:"default:false" json:"is_verified"`

	// Relations
	CandidateProfile *CandidateProfile      `gorm:"foreignKey:UserID" json:"-"`
	RecruiterProfile *RecruiterBasicProfile `gorm:"foreignKey:UserID" json:"-"`
	CompanyProfile   *CompanyProfile        `gorm:"foreignKey:UserID" json:"-"`
	RefreshTokens    []RefreshToken         `gorm:"foreignKey:UserID" json:"-"`
}

type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"not null;index" json:"user_id"`
	Token     string    `gorm:"not null;uniqueIndex" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
}

// OTP is a short-lived numeric login code bound to an email. Only the
// latest unused row for an email is authoritative.
type OTP struct {
	BaseModel
	Email  string `gorm:"index;not null" json:"email"`
	Code   string `gorm:"type:varchar(6);not null" json:"-"`
	IsUsed bool   `gorm:"default:false" json:"is_used"`
}

// TTL for OTP codes, in seconds.
const OTPTTLSeconds = 600

func (o *OTP) Expired(now time.Time) bool {
	return now.Sub(o.CreatedAt).Seconds() > OTPTTLSeconds
}
