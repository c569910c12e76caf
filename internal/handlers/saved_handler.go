package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tconnect_backend/internal/middleware"
	"tconnect_backend/internal/services"
)

// SavedHandler lists saved listings; saving/unsaving lives on the listing
// handlers.
type SavedHandler struct {
	*BaseHandler
	savedListingService services.SavedListingService
}

func NewSavedHandler(base *BaseHandler, savedListingService services.SavedListingService) *SavedHandler {
	return &SavedHandler{
		BaseHandler:         base,
		savedListingService: savedListingService,
	}
}

func (h *SavedHandler) RegisterRoutes(rg *gin.RouterGroup) {
	saved := rg.Group("/saved", middleware.AuthMiddleware())
	{
		saved.GET("/jobs", h.SavedJobs)
		saved.GET("/internships", h.SavedInternships)
	}
}

func (h *SavedHandler) SavedJobs(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	saved, err := h.savedListingService.SavedJobs(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, saved)
}

func (h *SavedHandler) SavedInternships(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	saved, err := h.savedListingService.SavedInternships(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, saved)
}
