package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tconnect_backend/internal/models"
	"tconnect_backend/internal/repositories"
	"tconnect_backend/internal/services/dto"
	"tconnect_backend/pkg/apperrors"
)

const meetingLinkBase = "https://meet.example.com/"

type InterviewService interface {
	Schedule(db *gorm.DB, userID string, req *dto.ScheduleInterviewRequest) (*models.MockInterview, error)
	ListUpcoming(db *gorm.DB, userID string) ([]models.MockInterview, error)
	Cancel(db *gorm.DB, userID, interviewID string) error
}

type InterviewServiceImpl struct {
	interviewRepo repositories.InterviewRepository
}

func NewInterviewService(interviewRepo repositories.InterviewRepository) InterviewService {
	return &InterviewServiceImpl{interviewRepo: interviewRepo}
}

// Schedule rejects slots that are not strictly in the future. The check
// happens at creation only; rows are never re-validated later.
func (s *InterviewServiceImpl) Schedule(db *gorm.DB, userID string, req *dto.ScheduleInterviewRequest) (*models.MockInterview, error) {
	scheduledAt, date, err := parseSlot(req.ScheduledDate, req.ScheduledTime)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid scheduled date or time: " + err.Error())
	}

	if !scheduledAt.After(time.Now()) {
		return nil, apperrors.ErrInterviewInPast
	}

	meetingLink := req.MeetingLink
	if meetingLink == "" {
		token := strings.ReplaceAll(uuid.NewString(), "-", "")[:10]
		meetingLink = meetingLinkBase + token
	}

	interview := &models.MockInterview{
		UserID:                userID,
		JobRole:               req.JobRole,
		Experience:            req.Experience,
		ScheduledDate:         date,
		ScheduledTime:         req.ScheduledTime,
		Email:                 req.Email,
		InterviewerPreference: req.InterviewerPreference,
		SpecialRequests:       req.SpecialRequests,
		MeetingLink:           meetingLink,
	}
	if err := s.interviewRepo.Create(db, interview); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return interview, nil
}

// ListUpcoming returns the caller's bookings at or after now, soonest first.
func (s *InterviewServiceImpl) ListUpcoming(db *gorm.DB, userID string) ([]models.MockInterview, error) {
	interviews, err := s.interviewRepo.FindByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	now := time.Now()
	out := make([]models.MockInterview, 0, len(interviews))
	for _, iv := range interviews {
		slot, _, err := parseSlot(iv.ScheduledDate.Format("2006-01-02"), iv.ScheduledTime)
		if err != nil {
			continue
		}
		if !slot.Before(now) {
			out = append(out, iv)
		}
	}
	return out, nil
}

func (s *InterviewServiceImpl) Cancel(db *gorm.DB, userID, interviewID string) error {
	interview, err := s.interviewRepo.FindByID(db, interviewID)
	if err != nil || interview.UserID != userID {
		return apperrors.NewNotFoundError("mockinterview", "Mock interview not found")
	}
	if err := s.interviewRepo.Delete(db, interviewID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// parseSlot combines YYYY-MM-DD and HH:MM into a local timestamp.
func parseSlot(dateStr, timeStr string) (time.Time, time.Time, error) {
	date, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("bad date %q: %w", dateStr, err)
	}
	clock, err := time.Parse("15:04", timeStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("bad time %q: %w", timeStr, err)
	}
	slot := time.Date(date.Year(), date.Month(), date.Day(), clock.Hour(), clock.Minute(), 0, 0, time.Local)
	return slot, date, nil
}
