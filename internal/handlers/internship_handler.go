package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tconnect_backend/internal/middleware"
	"tconnect_backend/internal/models"
	"tconnect_backend/internal/services"
	"tconnect_backend/internal/services/dto"
)

type InternshipHandler struct {
	*BaseHandler
	internshipService   services.InternshipService
	applicationService  services.ApplicationService
	savedListingService services.SavedListingService
}

func NewInternshipHandler(
	base *BaseHandler,
	internshipService services.InternshipService,
	applicationService services.ApplicationService,
	savedListingService services.SavedListingService,
) *InternshipHandler {
	return &InternshipHandler{
		BaseHandler:         base,
		internshipService:   internshipService,
		applicationService:  applicationService,
		savedListingService: savedListingService,
	}
}

func (h *InternshipHandler) RegisterRoutes(rg *gin.RouterGroup) {
	internships := rg.Group("/internships")
	{
		internships.GET("", h.List)

		recruiter := internships.Group("", middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleRecruiter))
		{
			recruiter.POST("", h.Create)
			recruiter.GET("/mine", h.ListMine)
			recruiter.PATCH("/:id", h.Update)
			recruiter.DELETE("/:id", h.Delete)
			recruiter.GET("/:id/applicants", h.Applicants)
		}

		candidate := internships.Group("", middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleCandidate))
		{
			candidate.POST("/:id/apply", h.Apply)
			candidate.POST("/:id/save", h.Save)
			candidate.DELETE("/:id/save", h.Unsave)
		}

		internships.GET("/:id", h.Get)
	}
}

func (h *InternshipHandler) List(c *gin.Context) {
	var query dto.ListingQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}
	if query.PageSize == 0 {
		query.Page, query.PageSize = h.ParsePagination(c)
	}

	db := h.GetDB(c)

	resp, err := h.internshipService.List(db, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *InternshipHandler) Get(c *gin.Context) {
	db := h.GetDB(c)

	internship, err := h.internshipService.Get(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, internship)
}

func (h *InternshipHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateInternshipRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	internship, err := h.internshipService.Create(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, internship)
}

func (h *InternshipHandler) ListMine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	internships, err := h.internshipService.ListMine(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, internships)
}

func (h *InternshipHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateInternshipRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	internship, err := h.internshipService.Update(db, userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, internship)
}

func (h *InternshipHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.internshipService.Delete(db, userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *InternshipHandler) Apply(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ApplyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	resp, err := h.applicationService.ApplyToInternship(db, userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *InternshipHandler) Applicants(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	applicants, err := h.applicationService.InternshipApplicants(db, userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, applicants)
}

func (h *InternshipHandler) Save(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	result, err := h.savedListingService.SaveInternship(db, userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	c.JSON(status, result.Saved)
}

func (h *InternshipHandler) Unsave(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.savedListingService.UnsaveInternship(db, userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
