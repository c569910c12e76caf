package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tconnect_backend/internal/middleware"
	"tconnect_backend/internal/services"
	"tconnect_backend/internal/services/dto"
)

type CourseHandler struct {
	*BaseHandler
	courseService services.CourseService
}

func NewCourseHandler(base *BaseHandler, courseService services.CourseService) *CourseHandler {
	return &CourseHandler{
		BaseHandler:   base,
		courseService: courseService,
	}
}

func (h *CourseHandler) RegisterRoutes(rg *gin.RouterGroup) {
	courses := rg.Group("/courses")
	{
		courses.GET("", h.List)
		courses.GET("/:slug", h.Detail)

		authed := courses.Group("", middleware.AuthMiddleware())
		{
			authed.GET("/:slug/learn", h.Learn)
			authed.POST("/:slug/enroll", h.Enroll)
			authed.POST("/:slug/lessons/complete", h.CompleteLesson)
			authed.POST("/:slug/assignments/:assignment_id/submit", h.SubmitAssignment)
		}
	}

	rg.GET("/my-courses", middleware.AuthMiddleware(), h.MyCourses)
}

func (h *CourseHandler) List(c *gin.Context) {
	db := h.GetDB(c)

	courses, err := h.courseService.List(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, courses)
}

func (h *CourseHandler) Detail(c *gin.Context) {
	db := h.GetDB(c)

	course, err := h.courseService.Detail(db, c.Param("slug"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, course)
}

func (h *CourseHandler) Learn(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	payload, err := h.courseService.Learn(db, userID, c.Param("slug"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, payload)
}

func (h *CourseHandler) Enroll(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	enrollment, created, err := h.courseService.Enroll(db, userID, c.Param("slug"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, enrollment)
}

func (h *CourseHandler) CompleteLesson(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CompleteLessonRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	if err := h.courseService.CompleteLesson(db, userID, c.Param("slug"), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Lesson progress saved"})
}

func (h *CourseHandler) SubmitAssignment(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SubmitAssignmentRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	result, err := h.courseService.SubmitAssignment(db, userID, c.Param("slug"), c.Param("assignment_id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *CourseHandler) MyCourses(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	courses, err := h.courseService.MyCourses(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, courses)
}
