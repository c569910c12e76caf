package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tconnect_backend/internal/models"
	"tconnect_backend/internal/repositories"
	"tconnect_backend/internal/services/dto"
	"tconnect_backend/pkg/apperrors"
)

func scheduleRequest(when time.Time) *dto.ScheduleInterviewRequest {
	return &dto.ScheduleInterviewRequest{
		JobRole:       "Backend Engineer",
		Experience:    "2 years",
		ScheduledDate: when.Format("2006-01-02"),
		ScheduledTime: when.Format("15:04"),
		Email:         "dev@example.com",
	}
}

func TestScheduleInterviewGeneratesMeetingLink(t *testing.T) {
	db := newTestDB(t)
	svc := NewInterviewService(repositories.NewInterviewRepository())
	user := createTestUser(t, db, "dev@example.com", models.UserRoleCandidate)

	interview, err := svc.Schedule(db, user.ID, scheduleRequest(time.Now().Add(48*time.Hour)))
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(interview.MeetingLink, "https://meet.example.com/"))
	token := strings.TrimPrefix(interview.MeetingLink, "https://meet.example.com/")
	assert.Len(t, token, 10)
	assert.NotContains(t, token, "-")
}

func TestScheduleInterviewKeepsProvidedLink(t *testing.T) {
	db := newTestDB(t)
	svc := NewInterviewService(repositories.NewInterviewRepository())
	user := createTestUser(t, db, "dev@example.com", models.UserRoleCandidate)

	req := scheduleRequest(time.Now().Add(48 * time.Hour))
	req.MeetingLink = "https://zoom.example.com/j/123"

	interview, err := svc.Schedule(db, user.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "https://zoom.example.com/j/123", interview.MeetingLink)
}

func TestScheduleInterviewRejectsPastSlot(t *testing.T) {
	db := newTestDB(t)
	svc := NewInterviewService(repositories.NewInterviewRepository())
	user := createTestUser(t, db, "dev@example.com", models.UserRoleCandidate)

	_, err := svc.Schedule(db, user.ID, scheduleRequest(time.Now().Add(-2*time.Hour)))
	assert.True(t, apperrors.Is(err, apperrors.ErrInterviewInPast))
}

func TestScheduleInterviewRejectsMalformedSlot(t *testing.T) {
	db := newTestDB(t)
	svc := NewInterviewService(repositories.NewInterviewRepository())
	user := createTestUser(t, db, "dev@example.com", models.UserRoleCandidate)

	req := scheduleRequest(time.Now().Add(48 * time.Hour))
	req.ScheduledTime = "25:99"

	_, err := svc.Schedule(db, user.ID, req)
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 400, appErr.HTTPCode)
}

func TestListUpcomingFiltersPast(t *testing.T) {
	db := newTestDB(t)
	svc := NewInterviewService(repositories.NewInterviewRepository())
	user := createTestUser(t, db, "dev@example.com", models.UserRoleCandidate)

	future, err := svc.Schedule(db, user.ID, scheduleRequest(time.Now().Add(48*time.Hour)))
	require.NoError(t, err)

	// A row whose slot has since passed is filtered at read time.
	past := time.Now().Add(-48 * time.Hour)
	require.NoError(t, db.Create(&models.MockInterview{
		UserID:        user.ID,
		JobRole:       "Old Booking",
		ScheduledDate: time.Date(past.Year(), past.Month(), past.Day(), 0, 0, 0, 0, time.Local),
		ScheduledTime: past.Format("15:04"),
		Email:         "dev@example.com",
		MeetingLink:   "https://meet.example.com/old0000000",
	}).Error)

	upcoming, err := svc.ListUpcoming(db, user.ID)
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, future.ID, upcoming[0].ID)
}

func TestCancelInterviewOwnership(t *testing.T) {
	db := newTestDB(t)
	svc := NewInterviewService(repositories.NewInterviewRepository())
	owner := createTestUser(t, db, "dev@example.com", models.UserRoleCandidate)
	other := createTestUser(t, db, "other@example.com", models.UserRoleCandidate)

	interview, err := svc.Schedule(db, owner.ID, scheduleRequest(time.Now().Add(48*time.Hour)))
	require.NoError(t, err)

	err = svc.Cancel(db, other.ID, interview.ID)
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 404, appErr.HTTPCode)

	require.NoError(t, svc.Cancel(db, owner.ID, interview.ID))

	var count int64
	require.NoError(t, db.Model(&models.MockInterview{}).Count(&count).Error)
	assert.Zero(t, count)
}
