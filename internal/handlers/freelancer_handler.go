package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tconnect_backend/internal/middleware"
	"tconnect_backend/internal/models"
	"tconnect_backend/internal/services"
	"tconnect_backend/internal/services/dto"
)

type FreelancerHandler struct {
	*BaseHandler
	freelancerService services.FreelancerService
}

func NewFreelancerHandler(base *BaseHandler, freelancerService services.FreelancerService) *FreelancerHandler {
	return &FreelancerHandler{
		BaseHandler:       base,
		freelancerService: freelancerService,
	}
}

func (h *FreelancerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	// Owner surface: candidate-gated, every candidate owns one tree.
	freelancer := rg.Group("/freelancer", middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleCandidate))
	{
		freelancer.GET("/basic-info", h.GetBasicInfo)
		freelancer.PATCH("/basic-info", h.UpdateBasicInfo)

		freelancer.GET("/professional-details", h.GetProfessionalDetails)
		freelancer.PATCH("/professional-details", h.UpdateProfessionalDetails)

		freelancer.GET("/education", h.ListEducation)
		freelancer.POST("/education", h.AddEducation)
		freelancer.PATCH("/education/:id", h.UpdateEducation)
		freelancer.DELETE("/education/:id", h.DeleteEducation)

		freelancer.GET("/availability", h.GetAvailability)
		freelancer.PATCH("/availability", h.UpdateAvailability)

		freelancer.GET("/payment-methods", h.ListPaymentMethods)
		freelancer.POST("/payment-methods", h.AddPaymentMethod)
		freelancer.DELETE("/payment-methods/:id", h.DeletePaymentMethod)

		freelancer.GET("/social-links", h.GetSocialLinks)
		freelancer.PATCH("/social-links", h.UpdateSocialLinks)

		freelancer.GET("/preview", h.Preview)
		freelancer.POST("/publish", h.Publish)
	}

	// Public directory, published profiles only.
	rg.GET("/freelancers", h.PublicList)
	rg.GET("/freelancers/:id", h.PublicDetail)
}

func (h *FreelancerHandler) GetBasicInfo(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	info, err := h.freelancerService.GetBasicInfo(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, info)
}

func (h *FreelancerHandler) UpdateBasicInfo(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateFreelancerBasicInfoRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	info, err := h.freelancerService.UpdateBasicInfo(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, info)
}

func (h *FreelancerHandler) GetProfessionalDetails(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	details, err := h.freelancerService.GetProfessionalDetails(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, details)
}

func (h *FreelancerHandler) UpdateProfessionalDetails(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateFreelancerProfessionalRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	details, err := h.freelancerService.UpdateProfessionalDetails(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, details)
}

func (h *FreelancerHandler) ListEducation(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	entries, err := h.freelancerService.ListEducation(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

func (h *FreelancerHandler) AddEducation(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.FreelancerEducationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	edu, err := h.freelancerService.AddEducation(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, edu)
}

func (h *FreelancerHandler) UpdateEducation(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateFreelancerEducationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	edu, err := h.freelancerService.UpdateEducation(db, userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, edu)
}

func (h *FreelancerHandler) DeleteEducation(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.freelancerService.DeleteEducation(db, userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *FreelancerHandler) GetAvailability(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	availability, err := h.freelancerService.GetAvailability(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, availability)
}

func (h *FreelancerHandler) UpdateAvailability(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateFreelancerAvailabilityRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	availability, err := h.freelancerService.UpdateAvailability(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, availability)
}

func (h *FreelancerHandler) ListPaymentMethods(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	methods, err := h.freelancerService.ListPaymentMethods(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, methods)
}

func (h *FreelancerHandler) AddPaymentMethod(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.FreelancerPaymentMethodRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	method, err := h.freelancerService.AddPaymentMethod(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, method)
}

func (h *FreelancerHandler) DeletePaymentMethod(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.freelancerService.DeletePaymentMethod(db, userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *FreelancerHandler) GetSocialLinks(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	links, err := h.freelancerService.GetSocialLinks(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, links)
}

func (h *FreelancerHandler) UpdateSocialLinks(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateFreelancerSocialLinksRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	links, err := h.freelancerService.UpdateSocialLinks(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, links)
}

func (h *FreelancerHandler) Preview(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	view, err := h.freelancerService.Preview(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *FreelancerHandler) Publish(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	info, err := h.freelancerService.Publish(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, info)
}

func (h *FreelancerHandler) PublicList(c *gin.Context) {
	page, pageSize := h.ParsePagination(c)

	db := h.GetDB(c)

	resp, err := h.freelancerService.PublicList(db, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *FreelancerHandler) PublicDetail(c *gin.Context) {
	db := h.GetDB(c)

	view, err := h.freelancerService.PublicDetail(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}
