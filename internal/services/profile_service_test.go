package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tconnect_backend/internal/models"
	"tconnect_backend/internal/repositories"
	"tconnect_backend/internal/services/dto"
	"tconnect_backend/pkg/apperrors"
)

func newTestProfileService() ProfileService {
	return NewProfileService(repositories.NewProfileRepository(), repositories.NewUserRepository())
}

func TestCandidateProfileGetOrCreate(t *testing.T) {
	db := newTestDB(t)
	svc := newTestProfileService()
	user := createTestUser(t, db, "dev@example.com", models.UserRoleCandidate)

	profile, err := svc.GetCandidateProfile(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, profile.UserID)
	assert.JSONEq(t, `[]`, string(profile.Skills))

	phone := "+77001234567"
	skills := []string{"Go", "PostgreSQL"}
	updated, err := svc.UpdateCandidateProfile(db, user.ID, &dto.UpdateCandidateProfileRequest{
		PhoneNumber: &phone,
		Skills:      &skills,
	})
	require.NoError(t, err)
	assert.Equal(t, phone, updated.PhoneNumber)
	assert.JSONEq(t, `["Go","PostgreSQL"]`, string(updated.Skills))

	// Re-read merges on the same row.
	again, err := svc.GetCandidateProfile(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, profile.ID, again.ID)
	assert.Equal(t, phone, again.PhoneNumber)
}

func TestRecruiterProfileSeedsFullName(t *testing.T) {
	db := newTestDB(t)
	svc := newTestProfileService()
	user := createTestUser(t, db, "hr@acme.io", models.UserRoleRecruiter)

	profile, err := svc.GetRecruiterProfile(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Test User", profile.FullName)

	position := "Head of Talent"
	updated, err := svc.UpdateRecruiterProfile(db, user.ID, &dto.UpdateRecruiterProfileRequest{
		PositionInCompany: &position,
	})
	require.NoError(t, err)
	assert.Equal(t, position, updated.PositionInCompany)
	assert.Equal(t, "Test User", updated.FullName)
}

func TestPublicCompanyProfileNeverCreates(t *testing.T) {
	db := newTestDB(t)
	svc := newTestProfileService()
	user := createTestUser(t, db, "hr@acme.io", models.UserRoleRecruiter)

	_, err := svc.PublicCompanyProfile(db, user.ID)
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 404, appErr.HTTPCode)

	name := "Acme Corp"
	_, err = svc.UpdateCompanyProfile(db, user.ID, &dto.UpdateCompanyProfileRequest{CompanyName: &name})
	require.NoError(t, err)

	public, err := svc.PublicCompanyProfile(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", public.CompanyName)
}
