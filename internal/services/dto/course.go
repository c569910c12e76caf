package dto

import (
	"gorm.io/datatypes"

	"tconnect_backend/internal/models"
)

type CompleteLessonRequest struct {
	LessonID  string `json:"lesson_id" validate:"required"`
	Completed *bool  `json:"completed"`
}

// SubmitAssignmentRequest answers map question id to the chosen option.
type SubmitAssignmentRequest struct {
	Answers map[string]string `json:"answers" validate:"required"`
}

type SubmissionResult struct {
	AssignmentID string  `json:"assignment_id"`
	Score        float64 `json:"score"`
	Correct      int     `json:"correct"`
	Total        int     `json:"total"`
}

// LearnPayload is the authenticated course view: full content plus the
// caller's enrollment state and progress.
type LearnPayload struct {
	Course         models.Course               `json:"course"`
	Enrolled       bool                        `json:"enrolled"`
	LessonProgress map[string]bool             `json:"lesson_progress"`
	Submissions    map[string]SubmissionDigest `json:"submissions"`
}

type SubmissionDigest struct {
	Score   float64        `json:"score"`
	Answers datatypes.JSON `json:"answers"`
}

type EnrolledCourseResponse struct {
	Course          models.Course `json:"course"`
	TotalLessons    int64         `json:"total_lessons"`
	LessonsComplete int64         `json:"lessons_complete"`
	PercentComplete int           `json:"percent_complete"`
	Status          string        `json:"status"`
}
