package services

import (
	"encoding/json"

	"gorm.io/gorm"

	"tconnect_backend/internal/models"
	"tconnect_backend/internal/repositories"
	"tconnect_backend/internal/services/dto"
	"tconnect_backend/pkg/apperrors"
)

type CourseService interface {
	List(db *gorm.DB) ([]models.Course, error)
	Detail(db *gorm.DB, slugOrID string) (*models.Course, error)
	Learn(db *gorm.DB, userID, slugOrID string) (*dto.LearnPayload, error)
	Enroll(db *gorm.DB, userID, slugOrID string) (enrollment *models.Enrollment, created bool, err error)
	CompleteLesson(db *gorm.DB, userID, slugOrID string, req *dto.CompleteLessonRequest) error
	SubmitAssignment(db *gorm.DB, userID, slugOrID, assignmentID string, req *dto.SubmitAssignmentRequest) (*dto.SubmissionResult, error)
	MyCourses(db *gorm.DB, userID string) ([]dto.EnrolledCourseResponse, error)
}

type CourseServiceImpl struct {
	courseRepo repositories.CourseRepository
}

func NewCourseService(courseRepo repositories.CourseRepository) CourseService {
	return &CourseServiceImpl{courseRepo: courseRepo}
}

func (s *CourseServiceImpl) List(db *gorm.DB) ([]models.Course, error) {
	courses, err := s.courseRepo.FindAllCourses(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return courses, nil
}

func (s *CourseServiceImpl) Detail(db *gorm.DB, slugOrID string) (*models.Course, error) {
	course, err := s.courseRepo.FindCourseWithContent(db, slugOrID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCourseNotFound) {
			return nil, apperrors.NewNotFoundError("courses", "Course not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return course, nil
}

// Learn is the authenticated course view: content plus the caller's
// enrollment, per-lesson completion and per-assignment submissions.
func (s *CourseServiceImpl) Learn(db *gorm.DB, userID, slugOrID string) (*dto.LearnPayload, error) {
	course, err := s.Detail(db, slugOrID)
	if err != nil {
		return nil, err
	}

	payload := &dto.LearnPayload{
		Course:         *course,
		LessonProgress: map[string]bool{},
		Submissions:    map[string]dto.SubmissionDigest{},
	}

	if _, err := s.courseRepo.FindEnrollment(db, userID, course.ID); err == nil {
		payload.Enrolled = true
	}

	for mi := range course.Modules {
		for li := range course.Modules[mi].Lessons {
			lesson := &course.Modules[mi].Lessons[li]
			payload.LessonProgress[lesson.ID] = false
		}
		if a := course.Modules[mi].Assignment; a != nil {
			if sub, err := s.courseRepo.FindSubmission(db, userID, a.ID); err == nil {
				payload.Submissions[a.ID] = dto.SubmissionDigest{Score: sub.Score, Answers: sub.Answers}
			}
		}
	}

	completed, err := s.completedLessonSet(db, userID, course.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	for id := range completed {
		if _, ok := payload.LessonProgress[id]; ok {
			payload.LessonProgress[id] = true
		}
	}

	return payload, nil
}

func (s *CourseServiceImpl) completedLessonSet(db *gorm.DB, userID, courseID string) (map[string]bool, error) {
	var ids []string
	err := db.Model(&models.LessonProgress{}).
		Joins("JOIN lessons ON lessons.id = lesson_progresses.lesson_id").
		Joins("JOIN modules ON modules.id = lessons.module_id").
		Where("modules.course_id = ? AND lesson_progresses.user_id = ? AND lesson_progresses.completed = ?",
			courseID, userID, true).
		Pluck("lesson_progresses.lesson_id", &ids).Error
	if err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

// Enroll is idempotent; an existing enrollment is returned as created=false.
func (s *CourseServiceImpl) Enroll(db *gorm.DB, userID, slugOrID string) (*models.Enrollment, bool, error) {
	course, err := s.courseRepo.FindCourse(db, slugOrID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCourseNotFound) {
			return nil, false, apperrors.NewNotFoundError("courses", "Course not found")
		}
		return nil, false, apperrors.InternalError(err)
	}

	existing, err := s.courseRepo.FindEnrollment(db, userID, course.ID)
	if err == nil {
		return existing, false, nil
	}
	if !apperrors.Is(err, repositories.ErrEnrollmentNotFound) {
		return nil, false, apperrors.InternalError(err)
	}

	enrollment := &models.Enrollment{UserID: userID, CourseID: course.ID}
	if err := s.courseRepo.CreateEnrollment(db, enrollment); err != nil {
		return nil, false, apperrors.InternalError(err)
	}
	return enrollment, true, nil
}

func (s *CourseServiceImpl) CompleteLesson(db *gorm.DB, userID, slugOrID string, req *dto.CompleteLessonRequest) error {
	course, err := s.courseRepo.FindCourse(db, slugOrID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCourseNotFound) {
			return apperrors.NewNotFoundError("courses", "Course not found")
		}
		return apperrors.InternalError(err)
	}

	if _, err := s.courseRepo.FindEnrollment(db, userID, course.ID); err != nil {
		if apperrors.Is(err, repositories.ErrEnrollmentNotFound) {
			return apperrors.ErrNotEnrolled
		}
		return apperrors.InternalError(err)
	}

	// The lesson must belong to the course being addressed.
	var count int64
	err = db.Model(&models.Lesson{}).
		Joins("JOIN modules ON modules.id = lessons.module_id").
		Where("lessons.id = ? AND modules.course_id = ?", req.LessonID, course.ID).
		Count(&count).Error
	if err != nil {
		return apperrors.InternalError(err)
	}
	if count == 0 {
		return apperrors.NewNotFoundError("courses", "Lesson not found")
	}

	completed := true
	if req.Completed != nil {
		completed = *req.Completed
	}
	if err := s.courseRepo.UpsertLessonProgress(db, userID, req.LessonID, completed); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// SubmitAssignment grades the MCQ answers and upserts the submission in one
// transaction. Score is correct/total*100; an assignment with no questions
// scores 0.
func (s *CourseServiceImpl) SubmitAssignment(db *gorm.DB, userID, slugOrID, assignmentID string, req *dto.SubmitAssignmentRequest) (*dto.SubmissionResult, error) {
	course, err := s.courseRepo.FindCourse(db, slugOrID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCourseNotFound) {
			return nil, apperrors.NewNotFoundError("courses", "Course not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if _, err := s.courseRepo.FindEnrollment(db, userID, course.ID); err != nil {
		if apperrors.Is(err, repositories.ErrEnrollmentNotFound) {
			return nil, apperrors.ErrNotEnrolled
		}
		return nil, apperrors.InternalError(err)
	}

	assignment, err := s.courseRepo.FindAssignmentWithQuestions(db, assignmentID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAssignmentNotFound) {
			return nil, apperrors.NewNotFoundError("courses", "Assignment not found")
		}
		return nil, apperrors.InternalError(err)
	}

	// Assignment must live in the addressed course.
	var count int64
	err = db.Model(&models.Module{}).
		Where("id = ? AND course_id = ?", assignment.ModuleID, course.ID).
		Count(&count).Error
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if count == 0 {
		return nil, apperrors.NewNotFoundError("courses", "Assignment not found")
	}

	correct := 0
	total := len(assignment.Questions)
	for _, q := range assignment.Questions {
		if answer, ok := req.Answers[q.ID]; ok && answer == q.CorrectAnswer {
			correct++
		}
	}

	score := 0.0
	if total > 0 {
		score = float64(correct) / float64(total) * 100
	}

	answersJSON, err := json.Marshal(req.Answers)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		submission := &models.AssignmentSubmission{
			UserID:       userID,
			AssignmentID: assignmentID,
			Answers:      answersJSON,
			Score:        score,
		}
		return s.courseRepo.UpsertSubmission(tx, submission)
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.SubmissionResult{
		AssignmentID: assignmentID,
		Score:        score,
		Correct:      correct,
		Total:        total,
	}, nil
}

// MyCourses reports floor-percentage progress; 100% flips status to
// Completed.
func (s *CourseServiceImpl) MyCourses(db *gorm.DB, userID string) ([]dto.EnrolledCourseResponse, error) {
	enrollments, err := s.courseRepo.FindEnrollmentsByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]dto.EnrolledCourseResponse, 0, len(enrollments))
	for i := range enrollments {
		if enrollments[i].Course == nil {
			continue
		}
		course := *enrollments[i].Course

		totalLessons, err := s.courseRepo.CountLessons(db, course.ID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		completedLessons, err := s.courseRepo.CountCompletedLessons(db, userID, course.ID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}

		percent := 0
		if totalLessons > 0 {
			percent = int(completedLessons * 100 / totalLessons)
		}
		status := "In Progress"
		if percent >= 100 {
			status = "Completed"
		}

		out = append(out, dto.EnrolledCourseResponse{
			Course:          course,
			TotalLessons:    totalLessons,
			LessonsComplete: completedLessons,
			PercentComplete: percent,
			Status:          status,
		})
	}
	return out, nil
}
