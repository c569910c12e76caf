package models

import (
	"time"

	"gorm.io/datatypes"
)

type Course struct {
	BaseModel
	Title       string  `gorm:"not null" json:"title"`
	Slug        string  `gorm:"index;not null" json:"slug"`
	Instructor  string  `json:"instructor"`
	Description string  `gorm:"type:text" json:"description"`
	Price       string  `gorm:"default:'FREE'" json:"price"`
	Rating      float64 `gorm:"default:0" json:"rating"`
	Language    string  `gorm:"default:'English'" json:"language"`
	Thumbnail   string  `json:"thumbnail"`
	Level       string  `json:"level"`

	WhatYouWillLearn datatypes.JSON `json:"what_you_will_learn"`
	Requirements     datatypes.JSON `json:"requirements"`
	CourseIncludes   datatypes.JSON `json:"course_includes"`

	Modules []Module `gorm:"foreignKey:CourseID" json:"modules,omitempty"`
}

type Module struct {
	BaseModel
	CourseID string `gorm:"not null;index;uniqueIndex:idx_course_module_order" json:"course_id"`
	Title    string `gorm:"not null" json:"title"`
	Order    int    `gorm:"uniqueIndex:idx_course_module_order" json:"order"`

	Lessons    []Lesson    `gorm:"foreignKey:ModuleID" json:"lessons,omitempty"`
	Assignment *Assignment `gorm:"foreignKey:ModuleID" json:"assignment,omitempty"`
}

type Lesson struct {
	BaseModel
	ModuleID  string `gorm:"not null;index;uniqueIndex:idx_module_lesson_order" json:"module_id"`
	Title     string `gorm:"not null" json:"title"`
	VideoURL  string `json:"video_url"`
	Duration  string `json:"duration"`
	IsPreview bool   `gorm:"default:false" json:"is_preview"`
	Order     int    `gorm:"uniqueIndex:idx_module_lesson_order" json:"order"`
}

type Assignment struct {
	BaseModel
	ModuleID string `gorm:"not null;uniqueIndex" json:"module_id"`
	Title    string `gorm:"not null" json:"title"`

	Questions []AssignmentQuestion `gorm:"foreignKey:AssignmentID" json:"questions,omitempty"`
}

type AssignmentQuestion struct {
	BaseModel
	AssignmentID  string         `gorm:"not null;index" json:"assignment_id"`
	Question      string         `gorm:"type:text;not null" json:"question"`
	Options       datatypes.JSON `json:"options"`
	CorrectAnswer string         `gorm:"not null" json:"-"`
}

type Enrollment struct {
	BaseModel
	UserID   string `gorm:"not null;index;uniqueIndex:idx_user_course" json:"user_id"`
	CourseID string `gorm:"not null;index;uniqueIndex:idx_user_course" json:"course_id"`

	Course *Course `gorm:"foreignKey:CourseID" json:"course,omitempty"`
}

type LessonProgress struct {
	BaseModel
	UserID      string     `gorm:"not null;index;uniqueIndex:idx_user_lesson" json:"user_id"`
	LessonID    string     `gorm:"not null;index;uniqueIndex:idx_user_lesson" json:"lesson_id"`
	Completed   bool       `gorm:"default:false" json:"completed"`
	CompletedAt *time.Time `json:"completed_at"`
}

type AssignmentSubmission struct {
	BaseModel
	UserID       string         `gorm:"not null;index;uniqueIndex:idx_user_assignment" json:"user_id"`
	AssignmentID string         `gorm:"not null;index;uniqueIndex:idx_user_assignment" json:"assignment_id"`
	Answers      datatypes.JSON `json:"answers"`
	Score        float64        `gorm:"default:0" json:"score"`
}
