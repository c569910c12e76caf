package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tconnect_backend/internal/models"
	"tconnect_backend/internal/repositories"
	"tconnect_backend/pkg/apperrors"
)

func newTestSavedService() SavedListingService {
	return NewSavedListingService(
		repositories.NewSavedListingRepository(),
		repositories.NewJobRepository(),
		repositories.NewInternshipRepository(),
	)
}

func TestSaveJobIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := newTestSavedService()

	recruiter := createTestUser(t, db, "hr@acme.io", models.UserRoleRecruiter)
	job := createTestJob(t, db, recruiter.ID, "Backend Engineer")
	candidate := createTestUser(t, db, "dev@example.com", models.UserRoleCandidate)

	result, err := svc.SaveJob(db, candidate.ID, job.ID)
	require.NoError(t, err)
	assert.True(t, result.Created)
	assert.Equal(t, job.ID, result.Saved.Listing.ID)

	again, err := svc.SaveJob(db, candidate.ID, job.ID)
	require.NoError(t, err)
	assert.False(t, again.Created)
	assert.Equal(t, result.Saved.ID, again.Saved.ID)

	saved, err := svc.SavedJobs(db, candidate.ID)
	require.NoError(t, err)
	assert.Len(t, saved, 1)
}

func TestSaveInactiveJob(t *testing.T) {
	db := newTestDB(t)
	svc := newTestSavedService()

	recruiter := createTestUser(t, db, "hr@acme.io", models.UserRoleRecruiter)
	job := createTestJob(t, db, recruiter.ID, "Backend Engineer")
	require.NoError(t, db.Model(job).Update("is_active", false).Error)
	candidate := createTestUser(t, db, "dev@example.com", models.UserRoleCandidate)

	_, err := svc.SaveJob(db, candidate.ID, job.ID)
	assert.True(t, apperrors.Is(err, apperrors.ErrListingNotFound))
}

func TestUnsaveJob(t *testing.T) {
	db := newTestDB(t)
	svc := newTestSavedService()

	recruiter := createTestUser(t, db, "hr@acme.io", models.UserRoleRecruiter)
	job := createTestJob(t, db, recruiter.ID, "Backend Engineer")
	candidate := createTestUser(t, db, "dev@example.com", models.UserRoleCandidate)

	_, err := svc.SaveJob(db, candidate.ID, job.ID)
	require.NoError(t, err)
	require.NoError(t, svc.UnsaveJob(db, candidate.ID, job.ID))

	err = svc.UnsaveJob(db, candidate.ID, job.ID)
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestSaveInternshipIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := newTestSavedService()

	recruiter := createTestUser(t, db, "hr@acme.io", models.UserRoleRecruiter)
	internship := createTestInternship(t, db, recruiter.ID, "Summer Intern")
	candidate := createTestUser(t, db, "dev@example.com", models.UserRoleCandidate)

	result, err := svc.SaveInternship(db, candidate.ID, internship.ID)
	require.NoError(t, err)
	assert.True(t, result.Created)

	again, err := svc.SaveInternship(db, candidate.ID, internship.ID)
	require.NoError(t, err)
	assert.False(t, again.Created)

	saved, err := svc.SavedInternships(db, candidate.ID)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, "Summer Intern", saved[0].Listing.Title)
}
