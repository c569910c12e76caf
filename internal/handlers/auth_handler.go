package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tconnect_backend/internal/auth"
	"tconnect_backend/internal/middleware"
	"tconnect_backend/internal/services"
	"tconnect_backend/internal/services/dto"
	"tconnect_backend/pkg/apperrors"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.POST("/send-otp", h.SendOTP)
		authGroup.POST("/verify-otp", h.VerifyOTP)
		authGroup.POST("/google", h.GoogleLogin)
		authGroup.POST("/refresh", h.Refresh)
		authGroup.POST("/logout", h.Logout)
		authGroup.GET("/me", middleware.AuthMiddleware(), h.Me)
	}
}

// Register creates the account and logs the caller in immediately; the
// account stays unverified until an OTP round-trip.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	resp, err := h.authService.Register(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	auth.SetAuthCookies(c, resp.AccessToken, resp.RefreshToken)
	c.JSON(http.StatusCreated, resp)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	resp, err := h.authService.Login(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	auth.SetAuthCookies(c, resp.AccessToken, resp.RefreshToken)
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) SendOTP(c *gin.Context) {
	var req dto.SendOTPRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	if err := h.authService.SendOTP(db, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "OTP sent to your email",
	})
}

func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req dto.VerifyOTPRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	resp, err := h.authService.VerifyOTP(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	auth.SetAuthCookies(c, resp.AccessToken, resp.RefreshToken)
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	var req dto.GoogleLoginRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	resp, err := h.authService.GoogleLogin(c.Request.Context(), db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	auth.SetAuthCookies(c, resp.AccessToken, resp.RefreshToken)
	c.JSON(http.StatusOK, resp)
}

// Refresh rotates the refresh token. The token comes from the cookie, with
// a JSON body fallback for header-based clients.
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken, _ := c.Cookie(auth.RefreshCookieName)
	if refreshToken == "" {
		var body struct {
			RefreshToken string `json:"refresh_token"`
		}
		if err := c.ShouldBindJSON(&body); err == nil {
			refreshToken = body.RefreshToken
		}
	}
	if refreshToken == "" {
		h.HandleServiceError(c, apperrors.NewUnauthorizedError("Refresh token missing"))
		return
	}

	db := h.GetDB(c)

	resp, err := h.authService.Refresh(db, refreshToken)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	auth.SetAuthCookies(c, resp.AccessToken, resp.RefreshToken)
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	refreshToken, _ := c.Cookie(auth.RefreshCookieName)

	db := h.GetDB(c)

	if err := h.authService.Logout(db, refreshToken); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	auth.ClearAuthCookies(c)
	c.JSON(http.StatusOK, gin.H{
		"message": "Successfully logged out",
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	user, err := h.authService.Me(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
