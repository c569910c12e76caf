package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"gorm.io/gorm"

	"tconnect_backend/internal/auth"
	"tconnect_backend/internal/config"
	"tconnect_backend/internal/email"
	"tconnect_backend/internal/logger"
	"tconnect_backend/internal/models"
	"tconnect_backend/internal/oauth"
	"tconnect_backend/internal/repositories"
	"tconnect_backend/internal/services/dto"
	"tconnect_backend/pkg/apperrors"
)

// personalEmailDomains blocks consumer providers for recruiter accounts.
var personalEmailDomains = map[string]bool{
	"gmail.com":      true,
	"yahoo.com":      true,
	"hotmail.com":    true,
	"outlook.com":    true,
	"aol.com":        true,
	"icloud.com":     true,
	"mail.com":       true,
	"protonmail.com": true,
}

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error)
	SendOTP(db *gorm.DB, req *dto.SendOTPRequest) error
	VerifyOTP(db *gorm.DB, req *dto.VerifyOTPRequest) (*dto.AuthResponse, error)
	GoogleLogin(ctx context.Context, db *gorm.DB, req *dto.GoogleLoginRequest) (*dto.AuthResponse, error)
	Refresh(db *gorm.DB, refreshToken string) (*dto.AuthResponse, error)
	Logout(db *gorm.DB, refreshToken string) error
	Me(db *gorm.DB, userID string) (*dto.UserDTO, error)
}

type AuthServiceImpl struct {
	userRepo         repositories.UserRepository
	otpRepo          repositories.OTPRepository
	refreshTokenRepo repositories.RefreshTokenRepository
	emailProvider    email.Provider
	tokenVerifier    oauth.TokenVerifier
}

func NewAuthService(
	userRepo repositories.UserRepository,
	otpRepo repositories.OTPRepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
	emailProvider email.Provider,
	tokenVerifier oauth.TokenVerifier,
) AuthService {
	return &AuthServiceImpl{
		userRepo:         userRepo,
		otpRepo:          otpRepo,
		refreshTokenRepo: refreshTokenRepo,
		emailProvider:    emailProvider,
		tokenVerifier:    tokenVerifier,
	}
}

// Register creates the account and logs it in immediately. The user stays
// unverified until an OTP round-trip completes.
func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	if req.Role != models.UserRoleCandidate && req.Role != models.UserRoleRecruiter {
		return nil, apperrors.ErrInvalidUserRole
	}

	if req.Role == models.UserRoleRecruiter && isPersonalEmail(req.Email) {
		return nil, apperrors.ErrPersonalEmailDomain
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		FullName:     req.FullName,
		PasswordHash: hash,
		Role:         req.Role,
		IsActive:     true,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	return s.issueTokens(db, user, false)
}

func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(db, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if req.Role != "" && user.Role != req.Role {
		return nil, apperrors.ErrRoleMismatch(string(req.Role))
	}

	return s.issueTokens(db, user, false)
}

// SendOTP issues a fresh 6-digit code for a known account. Delivery failure
// fails the request; a code the user can never receive is useless.
func (s *AuthServiceImpl) SendOTP(db *gorm.DB, req *dto.SendOTPRequest) error {
	normalized := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.FindByEmail(db, normalized)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrInvalidCredentials
		}
		return apperrors.InternalError(err)
	}

	if req.Role != "" && user.Role != req.Role {
		return apperrors.ErrRoleMismatch(string(req.Role))
	}

	code, err := generateOTPCode()
	if err != nil {
		return apperrors.InternalError(err)
	}

	otp := &models.OTP{Email: normalized, Code: code}
	if err := s.otpRepo.Create(db, otp); err != nil {
		return apperrors.InternalError(err)
	}

	if err := email.SendOTP(s.emailProvider, normalized, code); err != nil {
		logger.Error("OTP delivery failed", "email", normalized, "error", err)
		return apperrors.ErrOTPDeliveryFailed
	}

	return nil
}

// VerifyOTP checks the latest unused code, marks the account verified and
// logs it in. Stale codes for the email are removed afterwards.
func (s *AuthServiceImpl) VerifyOTP(db *gorm.DB, req *dto.VerifyOTPRequest) (*dto.AuthResponse, error) {
	normalized := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.FindByEmail(db, normalized)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Role != "" && user.Role != req.Role {
		return nil, apperrors.ErrRoleMismatch(string(req.Role))
	}

	otp, err := s.otpRepo.FindLatestUnused(db, normalized)
	if err != nil {
		if apperrors.Is(err, repositories.ErrOTPNotFound) {
			return nil, apperrors.ErrInvalidOTP
		}
		return nil, apperrors.InternalError(err)
	}

	if otp.Expired(time.Now()) {
		return nil, apperrors.ErrOTPExpired
	}

	if otp.Code != req.Code {
		return nil, apperrors.ErrInvalidOTP
	}

	if err := s.otpRepo.MarkUsed(db, otp.ID); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if !user.IsVerified {
		if err := s.userRepo.MarkVerified(db, user.ID); err != nil {
			return nil, apperrors.InternalError(err)
		}
		user.IsVerified = true
	}

	if err := s.otpRepo.DeleteByEmail(db, normalized); err != nil {
		logger.Warn("failed to clean up OTP rows", "email", normalized, "error", err)
	}

	return s.issueTokens(db, user, false)
}

// GoogleLogin verifies the ID token and gets or creates the account.
// Google-created accounts are verified from the start.
func (s *AuthServiceImpl) GoogleLogin(ctx context.Context, db *gorm.DB, req *dto.GoogleLoginRequest) (*dto.AuthResponse, error) {
	payload, err := s.tokenVerifier.Verify(ctx, req.IDToken)
	if err != nil {
		logger.Warn("google token verification failed", "error", err)
		return nil, apperrors.ErrInvalidToken
	}

	role := req.Role
	if role == "" {
		role = models.UserRoleCandidate
	}

	normalized := strings.ToLower(strings.TrimSpace(payload.Email))

	user, err := s.userRepo.FindByEmail(db, normalized)
	if err != nil && !apperrors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.InternalError(err)
	}

	if user != nil {
		if user.Role != role {
			return nil, apperrors.ErrRoleMismatch(string(role))
		}
		return s.issueTokens(db, user, false)
	}

	if role == models.UserRoleRecruiter && isPersonalEmail(normalized) {
		return nil, apperrors.ErrPersonalEmailDomain
	}

	user = &models.User{
		Email:      normalized,
		FullName:   payload.Name,
		Role:       role,
		IsActive:   true,
		IsVerified: true,
	}
	if err := s.userRepo.Create(db, user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.issueTokens(db, user, true)
}

// Refresh rotates the refresh token and reissues the access token.
func (s *AuthServiceImpl) Refresh(db *gorm.DB, refreshToken string) (*dto.AuthResponse, error) {
	stored, err := s.refreshTokenRepo.FindByToken(db, refreshToken)
	if err != nil {
		if apperrors.Is(err, repositories.ErrRefreshTokenNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.InternalError(err)
	}

	if time.Now().After(stored.ExpiresAt) {
		_ = s.refreshTokenRepo.DeleteByToken(db, refreshToken)
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(db, stored.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if err := s.refreshTokenRepo.DeleteByToken(db, refreshToken); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.issueTokens(db, user, false)
}

// Logout is best-effort: an unknown token still clears the session.
func (s *AuthServiceImpl) Logout(db *gorm.DB, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	if err := s.refreshTokenRepo.DeleteByToken(db, refreshToken); err != nil {
		logger.Warn("failed to delete refresh token on logout", "error", err)
	}
	return nil
}

func (s *AuthServiceImpl) Me(db *gorm.DB, userID string) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("auth", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}
	userDTO := dto.NewUserDTO(user)
	return &userDTO, nil
}

func (s *AuthServiceImpl) issueTokens(db *gorm.DB, user *models.User, isNewUser bool) (*dto.AuthResponse, error) {
	accessToken, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	cfg := config.GetConfig()
	refreshToken := &models.RefreshToken{
		UserID:    user.ID,
		Token:     auth.GenerateOpaqueToken(),
		ExpiresAt: time.Now().Add(time.Duration(cfg.JWT.RefreshTTL) * 24 * time.Hour),
	}
	if err := s.refreshTokenRepo.Create(db, refreshToken); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken.Token,
		User:         dto.NewUserDTO(user),
		IsNewUser:    isNewUser,
	}, nil
}

func isPersonalEmail(emailAddr string) bool {
	at := strings.LastIndex(emailAddr, "@")
	if at < 0 {
		return false
	}
	return personalEmailDomains[strings.ToLower(emailAddr[at+1:])]
}

func generateOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
