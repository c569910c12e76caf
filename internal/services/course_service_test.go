package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"tconnect_backend/internal/models"
	"tconnect_backend/internal/repositories"
	"tconnect_backend/internal/services/dto"
	"tconnect_backend/pkg/apperrors"
)

func courseLessons(t *testing.T, db *gorm.DB, courseID string) []models.Lesson {
	t.Helper()
	var lessons []models.Lesson
	require.NoError(t, db.
		Joins("JOIN modules ON modules.id = lessons.module_id").
		Where("modules.course_id = ?", courseID).
		Order("lessons.\"order\"").
		Find(&lessons).Error)
	return lessons
}

func courseAssignment(t *testing.T, db *gorm.DB, courseID string) *models.Assignment {
	t.Helper()
	var assignment models.Assignment
	require.NoError(t, db.
		Joins("JOIN modules ON modules.id = assignments.module_id").
		Where("modules.course_id = ?", courseID).
		First(&assignment).Error)
	return &assignment
}

func TestEnrollIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewCourseService(repositories.NewCourseRepository())
	user := createTestUser(t, db, "student@example.com", models.UserRoleCandidate)
	course := createTestCourse(t, db, "go-fundamentals")

	enrollment, created, err := svc.Enroll(db, user.ID, "go-fundamentals")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, course.ID, enrollment.CourseID)

	same, created, err := svc.Enroll(db, user.ID, "go-fundamentals")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, enrollment.ID, same.ID)
}

func TestCompleteLessonRequiresEnrollment(t *testing.T) {
	db := newTestDB(t)
	svc := NewCourseService(repositories.NewCourseRepository())
	user := createTestUser(t, db, "student@example.com", models.UserRoleCandidate)
	course := createTestCourse(t, db, "go-fundamentals")
	lessons := courseLessons(t, db, course.ID)

	err := svc.CompleteLesson(db, user.ID, course.Slug, &dto.CompleteLessonRequest{LessonID: lessons[0].ID})
	assert.True(t, apperrors.Is(err, apperrors.ErrNotEnrolled))
}

func TestCompleteLessonRejectsForeignLesson(t *testing.T) {
	db := newTestDB(t)
	svc := NewCourseService(repositories.NewCourseRepository())
	user := createTestUser(t, db, "student@example.com", models.UserRoleCandidate)
	course := createTestCourse(t, db, "go-fundamentals")
	other := createTestCourse(t, db, "sql-basics")
	otherLessons := courseLessons(t, db, other.ID)

	_, _, err := svc.Enroll(db, user.ID, course.Slug)
	require.NoError(t, err)

	err = svc.CompleteLesson(db, user.ID, course.Slug, &dto.CompleteLessonRequest{LessonID: otherLessons[0].ID})
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestLearnTracksProgress(t *testing.T) {
	db := newTestDB(t)
	svc := NewCourseService(repositories.NewCourseRepository())
	user := createTestUser(t, db, "student@example.com", models.UserRoleCandidate)
	course := createTestCourse(t, db, "go-fundamentals")
	lessons := courseLessons(t, db, course.ID)

	_, _, err := svc.Enroll(db, user.ID, course.Slug)
	require.NoError(t, err)

	require.NoError(t, svc.CompleteLesson(db, user.ID, course.Slug,
		&dto.CompleteLessonRequest{LessonID: lessons[0].ID}))

	payload, err := svc.Learn(db, user.ID, course.Slug)
	require.NoError(t, err)
	assert.True(t, payload.Enrolled)
	assert.True(t, payload.LessonProgress[lessons[0].ID])
	assert.False(t, payload.LessonProgress[lessons[1].ID])

	// Un-completing flips the flag back.
	done := false
	require.NoError(t, svc.CompleteLesson(db, user.ID, course.Slug,
		&dto.CompleteLessonRequest{LessonID: lessons[0].ID, Completed: &done}))

	payload, err = svc.Learn(db, user.ID, course.Slug)
	require.NoError(t, err)
	assert.False(t, payload.LessonProgress[lessons[0].ID])
}

func TestSubmitAssignmentGradesAndUpserts(t *testing.T) {
	db := newTestDB(t)
	svc := NewCourseService(repositories.NewCourseRepository())
	user := createTestUser(t, db, "student@example.com", models.UserRoleCandidate)
	course := createTestCourse(t, db, "go-fundamentals")
	assignment := courseAssignment(t, db, course.ID)

	var questions []models.AssignmentQuestion
	require.NoError(t, db.Where("assignment_id = ?", assignment.ID).Find(&questions).Error)
	require.Len(t, questions, 2)

	_, _, err := svc.Enroll(db, user.ID, course.Slug)
	require.NoError(t, err)

	result, err := svc.SubmitAssignment(db, user.ID, course.Slug, assignment.ID, &dto.SubmitAssignmentRequest{
		Answers: map[string]string{
			questions[0].ID: questions[0].CorrectAnswer,
			questions[1].ID: "wrong",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Correct)
	assert.Equal(t, 2, result.Total)
	assert.InDelta(t, 50.0, result.Score, 0.001)

	// Resubmission replaces the stored row instead of adding a second one.
	result, err = svc.SubmitAssignment(db, user.ID, course.Slug, assignment.ID, &dto.SubmitAssignmentRequest{
		Answers: map[string]string{
			questions[0].ID: questions[0].CorrectAnswer,
			questions[1].ID: questions[1].CorrectAnswer,
		},
	})
	require.NoError(t, err)
	assert.InDelta(t, 100.0, result.Score, 0.001)

	var count int64
	require.NoError(t, db.Model(&models.AssignmentSubmission{}).
		Where("user_id = ? AND assignment_id = ?", user.ID, assignment.ID).
		Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSubmitAssignmentWithoutQuestionsScoresZero(t *testing.T) {
	db := newTestDB(t)
	svc := NewCourseService(repositories.NewCourseRepository())
	user := createTestUser(t, db, "student@example.com", models.UserRoleCandidate)

	course := &models.Course{Title: "Empty", Slug: "empty"}
	require.NoError(t, db.Create(course).Error)
	module := &models.Module{CourseID: course.ID, Title: "M1", Order: 1}
	require.NoError(t, db.Create(module).Error)
	assignment := &models.Assignment{ModuleID: module.ID, Title: "Quiz"}
	require.NoError(t, db.Create(assignment).Error)

	_, _, err := svc.Enroll(db, user.ID, "empty")
	require.NoError(t, err)

	result, err := svc.SubmitAssignment(db, user.ID, "empty", assignment.ID, &dto.SubmitAssignmentRequest{
		Answers: map[string]string{},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Total)
	assert.Zero(t, result.Score)
}

func TestSubmitAssignmentRequiresEnrollment(t *testing.T) {
	db := newTestDB(t)
	svc := NewCourseService(repositories.NewCourseRepository())
	user := createTestUser(t, db, "student@example.com", models.UserRoleCandidate)
	course := createTestCourse(t, db, "go-fundamentals")
	assignment := courseAssignment(t, db, course.ID)

	_, err := svc.SubmitAssignment(db, user.ID, course.Slug, assignment.ID, &dto.SubmitAssignmentRequest{
		Answers: map[string]string{},
	})
	assert.True(t, apperrors.Is(err, apperrors.ErrNotEnrolled))
}

func TestMyCoursesProgress(t *testing.T) {
	db := newTestDB(t)
	svc := NewCourseService(repositories.NewCourseRepository())
	user := createTestUser(t, db, "student@example.com", models.UserRoleCandidate)
	course := createTestCourse(t, db, "go-fundamentals")
	lessons := courseLessons(t, db, course.ID)
	require.Len(t, lessons, 2)

	_, _, err := svc.Enroll(db, user.ID, course.Slug)
	require.NoError(t, err)

	my, err := svc.MyCourses(db, user.ID)
	require.NoError(t, err)
	require.Len(t, my, 1)
	assert.Equal(t, 0, my[0].PercentComplete)
	assert.Equal(t, "In Progress", my[0].Status)

	require.NoError(t, svc.CompleteLesson(db, user.ID, course.Slug,
		&dto.CompleteLessonRequest{LessonID: lessons[0].ID}))

	my, err = svc.MyCourses(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, my[0].PercentComplete)
	assert.Equal(t, "In Progress", my[0].Status)

	require.NoError(t, svc.CompleteLesson(db, user.ID, course.Slug,
		&dto.CompleteLessonRequest{LessonID: lessons[1].ID}))

	my, err = svc.MyCourses(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, my[0].PercentComplete)
	assert.Equal(t, "Completed", my[0].Status)
}

func TestCourseContentSortedByOrder(t *testing.T) {
	db := newTestDB(t)
	svc := NewCourseService(repositories.NewCourseRepository())

	course := &models.Course{Title: "Databases", Slug: "databases"}
	require.NoError(t, db.Create(course).Error)

	second := &models.Module{CourseID: course.ID, Title: "Indexes", Order: 2}
	require.NoError(t, db.Create(second).Error)
	first := &models.Module{CourseID: course.ID, Title: "Tables", Order: 1}
	require.NoError(t, db.Create(first).Error)

	require.NoError(t, db.Create(&models.Lesson{ModuleID: first.ID, Title: "Joins", Order: 2}).Error)
	require.NoError(t, db.Create(&models.Lesson{ModuleID: first.ID, Title: "Schemas", Order: 1}).Error)

	detail, err := svc.Detail(db, "databases")
	require.NoError(t, err)
	require.Len(t, detail.Modules, 2)
	assert.Equal(t, "Tables", detail.Modules[0].Title)
	assert.Equal(t, "Indexes", detail.Modules[1].Title)

	require.Len(t, detail.Modules[0].Lessons, 2)
	assert.Equal(t, "Schemas", detail.Modules[0].Lessons[0].Title)
	assert.Equal(t, "Joins", detail.Modules[0].Lessons[1].Title)
}

func TestCourseDetailBySlugOrID(t *testing.T) {
	db := newTestDB(t)
	svc := NewCourseService(repositories.NewCourseRepository())
	course := createTestCourse(t, db, "go-fundamentals")

	bySlug, err := svc.Detail(db, "go-fundamentals")
	require.NoError(t, err)
	assert.Equal(t, course.ID, bySlug.ID)
	require.Len(t, bySlug.Modules, 1)
	assert.Len(t, bySlug.Modules[0].Lessons, 2)
	require.NotNil(t, bySlug.Modules[0].Assignment)

	byID, err := svc.Detail(db, course.ID)
	require.NoError(t, err)
	assert.Equal(t, course.ID, byID.ID)

	_, err = svc.Detail(db, "missing-course")
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 404, appErr.HTTPCode)
}
