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

func TestJobCreateDefaultsEmploymentType(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(repositories.NewJobRepository())
	recruiter := createTestUser(t, db, "hr@acme.io", models.UserRoleRecruiter)

	job, err := svc.Create(db, recruiter.ID, &dto.CreateJobRequest{
		Title:       "Backend Engineer",
		CompanyName: "Acme Corp",
		Skills:      []string{"Go"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.EmploymentTypeFullTime, job.EmploymentType)
	assert.True(t, job.IsActive)
	assert.JSONEq(t, `["Go"]`, string(job.Skills))
}

func TestJobGetHidesInactive(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(repositories.NewJobRepository())
	recruiter := createTestUser(t, db, "hr@acme.io", models.UserRoleRecruiter)
	job := createTestJob(t, db, recruiter.ID, "Backend Engineer")

	got, err := svc.Get(db, job.ID)
	require.NoError(t, err)
	assert.Equal(t, job.ID, got.ID)

	require.NoError(t, db.Model(job).Update("is_active", false).Error)

	_, err = svc.Get(db, job.ID)
	assert.True(t, apperrors.Is(err, apperrors.ErrListingNotFound))
}

func TestJobListFiltersAndPaginates(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(repositories.NewJobRepository())
	recruiter := createTestUser(t, db, "hr@acme.io", models.UserRoleRecruiter)

	createTestJob(t, db, recruiter.ID, "Senior Go Developer")
	createTestJob(t, db, recruiter.ID, "Junior Go Developer")
	createTestJob(t, db, recruiter.ID, "Product Designer")

	inactive := createTestJob(t, db, recruiter.ID, "Go Architect")
	require.NoError(t, db.Model(inactive).Update("is_active", false).Error)

	resp, err := svc.List(db, &dto.ListingQuery{Search: "go developer"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, resp.Total)
	assert.Len(t, resp.Items, 2)

	resp, err = svc.List(db, &dto.ListingQuery{Search: "go developer", Page: 2, PageSize: 1})
	require.NoError(t, err)
	assert.EqualValues(t, 2, resp.Total)
	assert.Len(t, resp.Items, 1)

	resp, err = svc.List(db, &dto.ListingQuery{})
	require.NoError(t, err)
	assert.EqualValues(t, 3, resp.Total)
}

func TestJobSearchMatchesShortDescription(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(repositories.NewJobRepository())
	recruiter := createTestUser(t, db, "hr@acme.io", models.UserRoleRecruiter)

	job := createTestJob(t, db, recruiter.ID, "Platform Engineer")
	require.NoError(t, db.Model(job).Update("short_description", "Run our Kubernetes fleet").Error)
	createTestJob(t, db, recruiter.ID, "Product Designer")

	resp, err := svc.List(db, &dto.ListingQuery{Search: "kubernetes"})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, job.ID, resp.Items[0].ID)
}

func TestJobCategoryFilterMatchesSubstring(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(repositories.NewJobRepository())
	recruiter := createTestUser(t, db, "hr@acme.io", models.UserRoleRecruiter)

	job := createTestJob(t, db, recruiter.ID, "Risk Analyst")
	require.NoError(t, db.Model(job).Update("category", "Risk Management").Error)
	createTestJob(t, db, recruiter.ID, "Backend Engineer")

	resp, err := svc.List(db, &dto.ListingQuery{Category: "risk"})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, job.ID, resp.Items[0].ID)
}

func TestInternshipSearchAndCategoryFilters(t *testing.T) {
	db := newTestDB(t)
	svc := NewInternshipService(repositories.NewInternshipRepository())
	recruiter := createTestUser(t, db, "hr@acme.io", models.UserRoleRecruiter)

	internship := createTestInternship(t, db, recruiter.ID, "Data Intern")
	require.NoError(t, db.Model(internship).Updates(map[string]interface{}{
		"short_description": "Build Kubernetes tooling",
		"category":          "Risk Management",
	}).Error)
	createTestInternship(t, db, recruiter.ID, "Design Intern")

	resp, err := svc.List(db, &dto.ListingQuery{Search: "kubernetes"})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, internship.ID, resp.Items[0].ID)

	resp, err = svc.List(db, &dto.ListingQuery{Category: "risk"})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, internship.ID, resp.Items[0].ID)
}

func TestJobUpdateMergesOnlyGivenFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(repositories.NewJobRepository())
	recruiter := createTestUser(t, db, "hr@acme.io", models.UserRoleRecruiter)
	job := createTestJob(t, db, recruiter.ID, "Backend Engineer")

	newTitle := "Staff Backend Engineer"
	updated, err := svc.Update(db, recruiter.ID, job.ID, &dto.UpdateJobRequest{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "Staff Backend Engineer", updated.Title)
	assert.Equal(t, "Acme Corp", updated.CompanyName)
	assert.Equal(t, "Almaty", updated.Location)
}

func TestJobOwnershipReadsAsNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(repositories.NewJobRepository())
	owner := createTestUser(t, db, "owner@acme.io", models.UserRoleRecruiter)
	other := createTestUser(t, db, "other@corp.io", models.UserRoleRecruiter)
	job := createTestJob(t, db, owner.ID, "Backend Engineer")

	title := "Hijacked"
	_, err := svc.Update(db, other.ID, job.ID, &dto.UpdateJobRequest{Title: &title})
	assert.True(t, apperrors.Is(err, apperrors.ErrListingNotFound))

	err = svc.Delete(db, other.ID, job.ID)
	assert.True(t, apperrors.Is(err, apperrors.ErrListingNotFound))

	require.NoError(t, svc.Delete(db, owner.ID, job.ID))
}

func TestJobListMine(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(repositories.NewJobRepository())
	a := createTestUser(t, db, "a@acme.io", models.UserRoleRecruiter)
	b := createTestUser(t, db, "b@corp.io", models.UserRoleRecruiter)

	createTestJob(t, db, a.ID, "Role A1")
	createTestJob(t, db, a.ID, "Role A2")
	createTestJob(t, db, b.ID, "Role B1")

	mine, err := svc.ListMine(db, a.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}
