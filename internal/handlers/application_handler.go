package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tconnect_backend/internal/middleware"
	"tconnect_backend/internal/models"
	"tconnect_backend/internal/services"
	"tconnect_backend/internal/services/dto"
)

// ApplicationHandler serves the candidate's own applications and the
// recruiter's status updates. Applying lives on the listing handlers.
type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	applications := rg.Group("/applications", middleware.AuthMiddleware())
	{
		candidate := applications.Group("", middleware.RequireRoles(models.UserRoleCandidate))
		{
			candidate.GET("/jobs", h.MyJobApplications)
			candidate.GET("/internships", h.MyInternshipApplications)
		}

		recruiter := applications.Group("", middleware.RequireRoles(models.UserRoleRecruiter))
		{
			recruiter.PATCH("/jobs/:id/status", h.UpdateJobApplicationStatus)
			recruiter.PATCH("/internships/:id/status", h.UpdateInternshipApplicationStatus)
		}
	}
}

func (h *ApplicationHandler) MyJobApplications(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	apps, err := h.applicationService.MyJobApplications(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, apps)
}

func (h *ApplicationHandler) MyInternshipApplications(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	apps, err := h.applicationService.MyInternshipApplications(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, apps)
}

func (h *ApplicationHandler) UpdateJobApplicationStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	if err := h.applicationService.UpdateJobApplicationStatus(db, userID, c.Param("id"), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Application status updated",
	})
}

func (h *ApplicationHandler) UpdateInternshipApplicationStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	if err := h.applicationService.UpdateInternshipApplicationStatus(db, userID, c.Param("id"), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Application status updated",
	})
}
