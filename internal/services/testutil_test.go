package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"tconnect_backend/database"
	"tconnect_backend/internal/auth"
	"tconnect_backend/internal/config"
	"tconnect_backend/internal/email"
	"tconnect_backend/internal/models"
	"tconnect_backend/internal/oauth"
	"tconnect_backend/internal/repositories"
)

func init() {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.AccessTTL = 60
	cfg.JWT.RefreshTTL = 7
	config.AppConfig = cfg
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

// fakeEmailProvider records sent messages; err makes every Send fail.
type fakeEmailProvider struct {
	sent []*email.Message
	err  error
}

func (p *fakeEmailProvider) Send(msg *email.Message) error {
	if p.err != nil {
		return p.err
	}
	p.sent = append(p.sent, msg)
	return nil
}

func (p *fakeEmailProvider) Validate() error { return nil }

type fakeTokenVerifier struct {
	payload *oauth.GoogleUser
	err     error
}

func (v *fakeTokenVerifier) Verify(ctx context.Context, idToken string) (*oauth.GoogleUser, error) {
	return v.payload, v.err
}

func newTestAuthService(provider email.Provider, verifier oauth.TokenVerifier) AuthService {
	return NewAuthService(
		repositories.NewUserRepository(),
		repositories.NewOTPRepository(),
		repositories.NewRefreshTokenRepository(),
		provider,
		verifier,
	)
}

func createTestUser(t *testing.T, db *gorm.DB, emailAddr string, role models.UserRole) *models.User {
	t.Helper()
	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)
	user := &models.User{
		Email:        emailAddr,
		FullName:     "Test User",
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestCandidateProfile(t *testing.T, db *gorm.DB, userID string) *models.CandidateProfile {
	t.Helper()
	profile := &models.CandidateProfile{
		UserID:      userID,
		PhoneNumber: "+77001234567",
		Location:    "Almaty",
		Skills:      []byte(`["Go","SQL"]`),
		Bio:         "Backend developer",
		ResumeURL:   "https://example.com/resume.pdf",
	}
	require.NoError(t, db.Create(profile).Error)
	return profile
}

func createTestJob(t *testing.T, db *gorm.DB, recruiterID, title string) *models.Job {
	t.Helper()
	job := &models.Job{
		RecruiterID:    recruiterID,
		Title:          title,
		CompanyName:    "Acme Corp",
		Location:       "Almaty",
		EmploymentType: models.EmploymentTypeFullTime,
		Category:       "Engineering",
		IsActive:       true,
	}
	require.NoError(t, db.Create(job).Error)
	return job
}

func createTestInternship(t *testing.T, db *gorm.DB, recruiterID, title string) *models.Internship {
	t.Helper()
	internship := &models.Internship{
		RecruiterID:    recruiterID,
		Title:          title,
		CompanyName:    "Acme Corp",
		Location:       "Almaty",
		InternshipType: models.InternshipTypeFullTime,
		IsActive:       true,
	}
	require.NoError(t, db.Create(internship).Error)
	return internship
}

// createTestCourse builds one course with a single module holding two
// lessons and a two-question assignment.
func createTestCourse(t *testing.T, db *gorm.DB, slug string) *models.Course {
	t.Helper()
	course := &models.Course{Title: "Go Fundamentals", Slug: slug}
	require.NoError(t, db.Create(course).Error)

	module := &models.Module{CourseID: course.ID, Title: "Basics", Order: 1}
	require.NoError(t, db.Create(module).Error)

	lessons := []models.Lesson{
		{ModuleID: module.ID, Title: "Variables", Order: 1},
		{ModuleID: module.ID, Title: "Functions", Order: 2},
	}
	require.NoError(t, db.Create(&lessons).Error)

	assignment := &models.Assignment{ModuleID: module.ID, Title: "Quiz"}
	require.NoError(t, db.Create(assignment).Error)

	questions := []models.AssignmentQuestion{
		{AssignmentID: assignment.ID, Question: "What declares a variable?", Options: []byte(`["var","if"]`), CorrectAnswer: "var"},
		{AssignmentID: assignment.ID, Question: "What declares a function?", Options: []byte(`["func","def"]`), CorrectAnswer: "func"},
	}
	require.NoError(t, db.Create(&questions).Error)

	return course
}
