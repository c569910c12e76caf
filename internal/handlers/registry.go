package handlers

import (
	"tconnect_backend/internal/services"
	"tconnect_backend/internal/validator"
)

// AppHandlers holds every handler of the application.
type AppHandlers struct {
	AuthHandler        *AuthHandler
	JobHandler         *JobHandler
	InternshipHandler  *InternshipHandler
	ApplicationHandler *ApplicationHandler
	SavedHandler       *SavedHandler
	ProfileHandler     *ProfileHandler
	FreelancerHandler  *FreelancerHandler
	CourseHandler      *CourseHandler
	InterviewHandler   *InterviewHandler
}

func NewAppHandlers(svc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		AuthHandler:        NewAuthHandler(base, svc.AuthService),
		JobHandler:         NewJobHandler(base, svc.JobService, svc.ApplicationService, svc.SavedService),
		InternshipHandler:  NewInternshipHandler(base, svc.InternshipService, svc.ApplicationService, svc.SavedService),
		ApplicationHandler: NewApplicationHandler(base, svc.ApplicationService),
		SavedHandler:       NewSavedHandler(base, svc.SavedService),
		ProfileHandler:     NewProfileHandler(base, svc.ProfileService),
		FreelancerHandler:  NewFreelancerHandler(base, svc.FreelancerService),
		CourseHandler:      NewCourseHandler(base, svc.CourseService),
		InterviewHandler:   NewInterviewHandler(base, svc.InterviewService),
	}
}
