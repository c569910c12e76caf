package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tconnect_backend/internal/middleware"
	"tconnect_backend/internal/models"
	"tconnect_backend/internal/services"
	"tconnect_backend/internal/services/dto"
)

type JobHandler struct {
	*BaseHandler
	jobService          services.JobService
	applicationService  services.ApplicationService
	savedListingService services.SavedListingService
}

func NewJobHandler(
	base *BaseHandler,
	jobService services.JobService,
	applicationService services.ApplicationService,
	savedListingService services.SavedListingService,
) *JobHandler {
	return &JobHandler{
		BaseHandler:         base,
		jobService:          jobService,
		applicationService:  applicationService,
		savedListingService: savedListingService,
	}
}

func (h *JobHandler) RegisterRoutes(rg *gin.RouterGroup) {
	jobs := rg.Group("/jobs")
	{
		jobs.GET("", h.List)

		recruiter := jobs.Group("", middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleRecruiter))
		{
			recruiter.POST("", h.Create)
			recruiter.GET("/mine", h.ListMine)
			recruiter.PATCH("/:id", h.Update)
			recruiter.DELETE("/:id", h.Delete)
			recruiter.GET("/:id/applicants", h.Applicants)
		}

		candidate := jobs.Group("", middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleCandidate))
		{
			candidate.POST("/:id/apply", h.Apply)
			candidate.POST("/:id/save", h.Save)
			candidate.DELETE("/:id/save", h.Unsave)
		}

		jobs.GET("/:id", h.Get)
	}
}

func (h *JobHandler) List(c *gin.Context) {
	var query dto.ListingQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}
	if query.PageSize == 0 {
		query.Page, query.PageSize = h.ParsePagination(c)
	}

	db := h.GetDB(c)

	resp, err := h.jobService.List(db, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *JobHandler) Get(c *gin.Context) {
	db := h.GetDB(c)

	job, err := h.jobService.Get(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	job, err := h.jobService.Create(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, job)
}

func (h *JobHandler) ListMine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	jobs, err := h.jobService.ListMine(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, jobs)
}

func (h *JobHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	job, err := h.jobService.Update(db, userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.jobService.Delete(db, userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *JobHandler) Apply(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ApplyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	resp, err := h.applicationService.ApplyToJob(db, userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *JobHandler) Applicants(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	applicants, err := h.applicationService.JobApplicants(db, userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, applicants)
}

// Save is idempotent: 201 on first save, 200 on repeats.
func (h *JobHandler) Save(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	result, err := h.savedListingService.SaveJob(db, userID, c.Param("id"))
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

func (h *JobHandler) Unsave(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.savedListingService.UnsaveJob(db, userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
