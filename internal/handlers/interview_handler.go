package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tconnect_backend/internal/middleware"
	"tconnect_backend/internal/services"
	"tconnect_backend/internal/services/dto"
)

type InterviewHandler struct {
	*BaseHandler
	interviewService services.InterviewService
}

func NewInterviewHandler(base *BaseHandler, interviewService services.InterviewService) *InterviewHandler {
	return &InterviewHandler{
		BaseHandler:      base,
		interviewService: interviewService,
	}
}

func (h *InterviewHandler) RegisterRoutes(rg *gin.RouterGroup) {
	interviews := rg.Group("/mock-interviews", middleware.AuthMiddleware())
	{
		interviews.POST("", h.Schedule)
		interviews.GET("/upcoming", h.ListUpcoming)
		interviews.DELETE("/:id", h.Cancel)
	}
}

func (h *InterviewHandler) Schedule(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ScheduleInterviewRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	interview, err := h.interviewService.Schedule(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, interview)
}

func (h *InterviewHandler) ListUpcoming(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	interviews, err := h.interviewService.ListUpcoming(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, interviews)
}

func (h *InterviewHandler) Cancel(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.interviewService.Cancel(db, userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
