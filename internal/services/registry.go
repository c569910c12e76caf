package services

import (
	"tconnect_backend/internal/email"
	"tconnect_backend/internal/oauth"
	"tconnect_backend/internal/repositories"
)

// ServiceContainer holds every application service.
type ServiceContainer struct {
	AuthService        AuthService
	JobService         JobService
	InternshipService  InternshipService
	ApplicationService ApplicationService
	SavedService       SavedListingService
	ProfileService     ProfileService
	FreelancerService  FreelancerService
	CourseService      CourseService
	InterviewService   InterviewService
}

// NewServiceContainer wires repositories into services. The email provider
// and token verifier are injected so tests can fake them.
func NewServiceContainer(emailProvider email.Provider, tokenVerifier oauth.TokenVerifier) *ServiceContainer {
	userRepo := repositories.NewUserRepository()
	otpRepo := repositories.NewOTPRepository()
	refreshTokenRepo := repositories.NewRefreshTokenRepository()
	jobRepo := repositories.NewJobRepository()
	internshipRepo := repositories.NewInternshipRepository()
	applicationRepo := repositories.NewApplicationRepository()
	savedRepo := repositories.NewSavedListingRepository()
	profileRepo := repositories.NewProfileRepository()
	freelancerRepo := repositories.NewFreelancerRepository()
	courseRepo := repositories.NewCourseRepository()
	interviewRepo := repositories.NewInterviewRepository()

	return &ServiceContainer{
		AuthService:        NewAuthService(userRepo, otpRepo, refreshTokenRepo, emailProvider, tokenVerifier),
		JobService:         NewJobService(jobRepo),
		InternshipService:  NewInternshipService(internshipRepo),
		ApplicationService: NewApplicationService(applicationRepo, jobRepo, internshipRepo, profileRepo, userRepo),
		SavedService:       NewSavedListingService(savedRepo, jobRepo, internshipRepo),
		ProfileService:     NewProfileService(profileRepo, userRepo),
		FreelancerService:  NewFreelancerService(freelancerRepo, userRepo),
		CourseService:      NewCourseService(courseRepo),
		InterviewService:   NewInterviewService(interviewRepo),
	}
}
