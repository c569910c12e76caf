package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tconnect_backend/internal/models"
)

var (
	ErrCourseNotFound     = errors.New("course not found")
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrEnrollmentNotFound = errors.New("enrollment not found")
)

type CourseRepository interface {
	FindAllCourses(db *gorm.DB) ([]models.Course, error)

	// FindCourse resolves by slug first, falling back to primary key.
	FindCourse(db *gorm.DB, slugOrID string) (*models.Course, error)
	FindCourseWithContent(db *gorm.DB, slugOrID string) (*models.Course, error)

	CreateEnrollment(db *gorm.DB, enrollment *models.Enrollment) error
	FindEnrollment(db *gorm.DB, userID, courseID string) (*models.Enrollment, error)
	FindEnrollmentsByUser(db *gorm.DB, userID string) ([]models.Enrollment, error)

	UpsertLessonProgress(db *gorm.DB, userID, lessonID string, completed bool) error
	CountLessons(db *gorm.DB, courseID string) (int64, error)
	CountCompletedLessons(db *gorm.DB, userID, courseID string) (int64, error)

	FindAssignmentWithQuestions(db *gorm.DB, assignmentID string) (*models.Assignment, error)
	UpsertSubmission(db *gorm.DB, submission *models.AssignmentSubmission) error
	FindSubmission(db *gorm.DB, userID, assignmentID string) (*models.AssignmentSubmission, error)
}

type courseRepository struct{}

func NewCourseRepository() CourseRepository {
	return &courseRepository{}
}

func (r *courseRepository) FindAllCourses(db *gorm.DB) ([]models.Course, error) {
	var courses []models.Course
	err := db.Order("created_at DESC").Find(&courses).Error
	return courses, err
}

func (r *courseRepository) FindCourse(db *gorm.DB, slugOrID string) (*models.Course, error) {
	var course models.Course
	err := db.Where("slug = ?", slugOrID).First(&course).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = db.First(&course, "id = ?", slugOrID).Error
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) FindCourseWithContent(db *gorm.DB, slugOrID string) (*models.Course, error) {
	preloaded := db.
		Preload("Modules", func(db *gorm.DB) *gorm.DB {
			// "order" is a reserved word, so it has to go through the clause builder.
			return db.Order(clause.OrderByColumn{Column: clause.Column{Table: "modules", Name: "order"}})
		}).
		Preload("Modules.Lessons", func(db *gorm.DB) *gorm.DB {
			return db.Order(clause.OrderByColumn{Column: clause.Column{Table: "lessons", Name: "order"}})
		}).
		Preload("Modules.Assignment").
		Preload("Modules.Assignment.Questions")

	var course models.Course
	err := preloaded.Where("slug = ?", slugOrID).First(&course).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = preloaded.First(&course, "id = ?", slugOrID).Error
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) CreateEnrollment(db *gorm.DB, enrollment *models.Enrollment) error {
	return db.Create(enrollment).Error
}

func (r *courseRepository) FindEnrollment(db *gorm.DB, userID, courseID string) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	err := db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEnrollmentNotFound
		}
		return nil, err
	}
	return &enrollment, nil
}

func (r *courseRepository) FindEnrollmentsByUser(db *gorm.DB, userID string) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	err := db.Preload("Course").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&enrollments).Error
	return enrollments, err
}

func (r *courseRepository) UpsertLessonProgress(db *gorm.DB, userID, lessonID string, completed bool) error {
	var progress models.LessonProgress
	err := db.Where("user_id = ? AND lesson_id = ?", userID, lessonID).First(&progress).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		progress = models.LessonProgress{
			UserID:    userID,
			LessonID:  lessonID,
			Completed: completed,
		}
		if completed {
			now := time.Now()
			progress.CompletedAt = &now
		}
		return db.Create(&progress).Error
	}
	if err != nil {
		return err
	}

	updates := map[string]interface{}{
		"completed":  completed,
		"updated_at": time.Now(),
	}
	if completed && progress.CompletedAt == nil {
		now := time.Now()
		updates["completed_at"] = &now
	}
	if !completed {
		updates["completed_at"] = nil
	}
	return db.Model(&progress).Updates(updates).Error
}

func (r *courseRepository) CountLessons(db *gorm.DB, courseID string) (int64, error) {
	var count int64
	err := db.Model(&models.Lesson{}).
		Joins("JOIN modules ON modules.id = lessons.module_id").
		Where("modules.course_id = ?", courseID).
		Count(&count).Error
	return count, err
}

func (r *courseRepository) CountCompletedLessons(db *gorm.DB, userID, courseID string) (int64, error) {
	var count int64
	err := db.Model(&models.LessonProgress{}).
		Joins("JOIN lessons ON lessons.id = lesson_progresses.lesson_id").
		Joins("JOIN modules ON modules.id = lessons.module_id").
		Where("modules.course_id = ? AND lesson_progresses.user_id = ? AND lesson_progresses.completed = ?",
			courseID, userID, true).
		Count(&count).Error
	return count, err
}

func (r *courseRepository) FindAssignmentWithQuestions(db *gorm.DB, assignmentID string) (*models.Assignment, error) {
	var assignment models.Assignment
	err := db.Preload("Questions").First(&assignment, "id = ?", assignmentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		return nil, err
	}
	return &assignment, nil
}

// UpsertSubmission keeps one row per user and assignment; resubmission
// replaces answers and score.
func (r *courseRepository) UpsertSubmission(db *gorm.DB, submission *models.AssignmentSubmission) error {
	var existing models.AssignmentSubmission
	err := db.Where("user_id = ? AND assignment_id = ?", submission.UserID, submission.AssignmentID).
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return db.Create(submission).Error
	}
	if err != nil {
		return err
	}

	submission.ID = existing.ID
	submission.CreatedAt = existing.CreatedAt
	return db.Save(submission).Error
}

func (r *courseRepository) FindSubmission(db *gorm.DB, userID, assignmentID string) (*models.AssignmentSubmission, error) {
	var submission models.AssignmentSubmission
	err := db.Where("user_id = ? AND assignment_id = ?", userID, assignmentID).First(&submission).Error
	if err != nil {
		return nil, err
	}
	return &submission, nil
}
