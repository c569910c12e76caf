package dto

type ScheduleInterviewRequest struct {
	JobRole               string `json:"job_role" validate:"required"`
	Experience            string `json:"experience"`
	ScheduledDate         string `json:"scheduled_date" validate:"required"` // YYYY-MM-DD
	ScheduledTime         string `json:"scheduled_time" validate:"required"` // HH:MM
	Email                 string `json:"email" validate:"required,email"`
	InterviewerPreference string `json:"interviewer_preference"`
	SpecialRequests       string `json:"special_requests"`
	MeetingLink           string `json:"meeting_link" validate:"omitempty,url"`
}
