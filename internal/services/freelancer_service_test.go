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

func newTestFreelancerService() FreelancerService {
	return NewFreelancerService(repositories.NewFreelancerRepository(), repositories.NewUserRepository())
}

func TestFreelancerBasicInfoGetOrCreate(t *testing.T) {
	db := newTestDB(t)
	svc := newTestFreelancerService()
	user := createTestUser(t, db, "dev@example.com", models.UserRoleCandidate)

	info, err := svc.GetBasicInfo(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Test User", info.FullName)
	assert.False(t, info.IsPublished)

	// Second read returns the same row.
	again, err := svc.GetBasicInfo(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, info.ID, again.ID)

	location := "Almaty"
	updated, err := svc.UpdateBasicInfo(db, user.ID, &dto.UpdateFreelancerBasicInfoRequest{Location: &location})
	require.NoError(t, err)
	assert.Equal(t, "Almaty", updated.Location)
	assert.Equal(t, "Test User", updated.FullName)
}

func TestFreelancerEducationLifecycle(t *testing.T) {
	db := newTestDB(t)
	svc := newTestFreelancerService()
	user := createTestUser(t, db, "dev@example.com", models.UserRoleCandidate)

	edu, err := svc.AddEducation(db, user.ID, &dto.FreelancerEducationRequest{
		Degree:      "BSc Computer Science",
		Institution: "KBTU",
		StartYear:   2018,
		EndYear:     2022,
	})
	require.NoError(t, err)

	degree := "MSc Computer Science"
	updated, err := svc.UpdateEducation(db, user.ID, edu.ID, &dto.UpdateFreelancerEducationRequest{Degree: &degree})
	require.NoError(t, err)
	assert.Equal(t, "MSc Computer Science", updated.Degree)
	assert.Equal(t, "KBTU", updated.Institution)

	// Entries of another user are invisible.
	other := createTestUser(t, db, "other@example.com", models.UserRoleCandidate)
	_, err = svc.UpdateEducation(db, other.ID, edu.ID, &dto.UpdateFreelancerEducationRequest{Degree: &degree})
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 404, appErr.HTTPCode)

	require.NoError(t, svc.DeleteEducation(db, user.ID, edu.ID))

	entries, err := svc.ListEducation(db, user.ID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFreelancerPublishFlow(t *testing.T) {
	db := newTestDB(t)
	svc := newTestFreelancerService()
	user := createTestUser(t, db, "dev@example.com", models.UserRoleCandidate)

	info, err := svc.GetBasicInfo(db, user.ID)
	require.NoError(t, err)

	_, err = svc.AddPaymentMethod(db, user.ID, &dto.FreelancerPaymentMethodRequest{
		PaymentType: "upi",
		UpiID:       "dev@upi",
	})
	require.NoError(t, err)

	// Unpublished profiles are not publicly visible.
	_, err = svc.PublicDetail(db, info.ID)
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 404, appErr.HTTPCode)

	published, err := svc.Publish(db, user.ID)
	require.NoError(t, err)
	assert.True(t, published.IsPublished)

	view, err := svc.PublicDetail(db, info.ID)
	require.NoError(t, err)
	assert.Equal(t, info.ID, view.BasicInfo.ID)
	assert.Empty(t, view.PaymentMethods)

	// The owner's preview still carries payment methods.
	preview, err := svc.Preview(db, user.ID)
	require.NoError(t, err)
	assert.Len(t, preview.PaymentMethods, 1)
}

func TestFreelancerPublicListOnlyPublished(t *testing.T) {
	db := newTestDB(t)
	svc := newTestFreelancerService()

	published := createTestUser(t, db, "pub@example.com", models.UserRoleCandidate)
	hidden := createTestUser(t, db, "hidden@example.com", models.UserRoleCandidate)

	_, err := svc.GetBasicInfo(db, published.ID)
	require.NoError(t, err)
	_, err = svc.GetBasicInfo(db, hidden.ID)
	require.NoError(t, err)

	_, err = svc.Publish(db, published.ID)
	require.NoError(t, err)

	resp, err := svc.PublicList(db, 1, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 1, resp.Total)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, published.ID, resp.Items[0].UserID)
}

func TestFreelancerUpdateKeepsPublishedFlag(t *testing.T) {
	db := newTestDB(t)
	svc := newTestFreelancerService()
	user := createTestUser(t, db, "dev@example.com", models.UserRoleCandidate)

	_, err := svc.GetBasicInfo(db, user.ID)
	require.NoError(t, err)
	_, err = svc.Publish(db, user.ID)
	require.NoError(t, err)

	bio := "Distributed systems"
	_, err = svc.UpdateProfessionalDetails(db, user.ID, &dto.UpdateFreelancerProfessionalRequest{ProfessionalBio: &bio})
	require.NoError(t, err)

	location := "Astana"
	info, err := svc.UpdateBasicInfo(db, user.ID, &dto.UpdateFreelancerBasicInfoRequest{Location: &location})
	require.NoError(t, err)
	assert.True(t, info.IsPublished)
}
