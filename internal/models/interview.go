package models

import "time"

// MockInterview is a future-dated booking. ScheduledDate is a calendar day
// and ScheduledTime an "HH:MM" wall-clock string, kept separate as the
// clients submit them.
type MockInterview struct {
	BaseModel
	UserID                string    `gorm:"not null;index" json:"user_id"`
	JobRole               string    `gorm:"not null" json:"job_role"`
	Experience            string    `json:"experience"`
	ScheduledDate         time.Time `gorm:"not null" json:"scheduled_date"`
	ScheduledTime         string    `gorm:"type:varchar(5);not null" json:"scheduled_time"`
	Email                 string    `gorm:"not null" json:"email"`
	InterviewerPreference string    `json:"interviewer_preference"`
	SpecialRequests       string    `gorm:"type:text" json:"special_requests"`
	MeetingLink           string    `json:"meeting_link"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}
