package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"tconnect_backend/internal/models"
	"tconnect_backend/internal/oauth"
	"tconnect_backend/internal/services/dto"
	"tconnect_backend/pkg/apperrors"
)

func latestOTPCode(t *testing.T, db *gorm.DB, email string) string {
	t.Helper()
	var otp models.OTP
	require.NoError(t, db.Where("email = ? AND is_used = ?", email, false).
		Order("created_at DESC").First(&otp).Error)
	return otp.Code
}

func TestRegisterLogsInImmediately(t *testing.T) {
	db := newTestDB(t)
	svc := newTestAuthService(&fakeEmailProvider{}, &fakeTokenVerifier{})

	resp, err := svc.Register(db, &dto.RegisterRequest{
		Email:    "Jane.Doe@Example.com",
		Password: "password123",
		FullName: "Jane Doe",
		Role:     models.UserRoleCandidate,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "jane.doe@example.com", resp.User.Email)
	assert.False(t, resp.User.IsVerified)

	var count int64
	require.NoError(t, db.Model(&models.RefreshToken{}).
		Where("user_id = ?", resp.User.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	_, err = svc.Register(db, &dto.RegisterRequest{
		Email:    "jane.doe@example.com",
		Password: "password123",
		FullName: "Jane Doe",
		Role:     models.UserRoleCandidate,
	})
	assert.True(t, apperrors.Is(err, apperrors.ErrEmailAlreadyExists))
}

func TestRegisterRecruiterRejectsPersonalEmail(t *testing.T) {
	db := newTestDB(t)
	svc := newTestAuthService(&fakeEmailProvider{}, &fakeTokenVerifier{})

	_, err := svc.Register(db, &dto.RegisterRequest{
		Email:    "recruiter@gmail.com",
		Password: "password123",
		FullName: "R",
		Role:     models.UserRoleRecruiter,
	})
	assert.True(t, apperrors.Is(err, apperrors.ErrPersonalEmailDomain))

	// Candidates may use consumer domains.
	_, err = svc.Register(db, &dto.RegisterRequest{
		Email:    "candidate@gmail.com",
		Password: "password123",
		FullName: "C",
		Role:     models.UserRoleCandidate,
	})
	assert.NoError(t, err)
}

func TestLoginChecksCredentialsAndRole(t *testing.T) {
	db := newTestDB(t)
	svc := newTestAuthService(&fakeEmailProvider{}, &fakeTokenVerifier{})
	createTestUser(t, db, "user@example.com", models.UserRoleCandidate)

	_, err := svc.Login(db, &dto.LoginRequest{Email: "user@example.com", Password: "wrong-pass"})
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidCredentials))

	_, err = svc.Login(db, &dto.LoginRequest{Email: "nobody@example.com", Password: "password123"})
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidCredentials))

	_, err = svc.Login(db, &dto.LoginRequest{
		Email:    "user@example.com",
		Password: "password123",
		Role:     models.UserRoleRecruiter,
	})
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 403, appErr.HTTPCode)

	resp, err := svc.Login(db, &dto.LoginRequest{Email: "user@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestVerifyOTPLatestCodeWins(t *testing.T) {
	db := newTestDB(t)
	svc := newTestAuthService(&fakeEmailProvider{}, &fakeTokenVerifier{})
	createTestUser(t, db, "otp@example.com", models.UserRoleCandidate)

	require.NoError(t, svc.SendOTP(db, &dto.SendOTPRequest{Email: "otp@example.com"}))
	first := latestOTPCode(t, db, "otp@example.com")

	require.NoError(t, svc.SendOTP(db, &dto.SendOTPRequest{Email: "otp@example.com"}))
	second := latestOTPCode(t, db, "otp@example.com")

	if first != second {
		_, err := svc.VerifyOTP(db, &dto.VerifyOTPRequest{Email: "otp@example.com", Code: first})
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidOTP))
	}

	resp, err := svc.VerifyOTP(db, &dto.VerifyOTPRequest{Email: "otp@example.com", Code: second})
	require.NoError(t, err)
	assert.True(t, resp.User.IsVerified)
}

func TestVerifyOTPSingleUse(t *testing.T) {
	db := newTestDB(t)
	svc := newTestAuthService(&fakeEmailProvider{}, &fakeTokenVerifier{})
	createTestUser(t, db, "once@example.com", models.UserRoleCandidate)

	require.NoError(t, svc.SendOTP(db, &dto.SendOTPRequest{Email: "once@example.com"}))
	code := latestOTPCode(t, db, "once@example.com")

	_, err := svc.VerifyOTP(db, &dto.VerifyOTPRequest{Email: "once@example.com", Code: code})
	require.NoError(t, err)

	_, err = svc.VerifyOTP(db, &dto.VerifyOTPRequest{Email: "once@example.com", Code: code})
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidOTP))
}

func TestVerifyOTPExpired(t *testing.T) {
	db := newTestDB(t)
	svc := newTestAuthService(&fakeEmailProvider{}, &fakeTokenVerifier{})
	createTestUser(t, db, "stale@example.com", models.UserRoleCandidate)

	require.NoError(t, svc.SendOTP(db, &dto.SendOTPRequest{Email: "stale@example.com"}))
	code := latestOTPCode(t, db, "stale@example.com")

	stale := time.Now().Add(-11 * time.Minute)
	require.NoError(t, db.Model(&models.OTP{}).
		Where("email = ?", "stale@example.com").
		Update("created_at", stale).Error)

	_, err := svc.VerifyOTP(db, &dto.VerifyOTPRequest{Email: "stale@example.com", Code: code})
	assert.True(t, apperrors.Is(err, apperrors.ErrOTPExpired))
}

func TestSendOTPDeliveryFailure(t *testing.T) {
	db := newTestDB(t)
	svc := newTestAuthService(&fakeEmailProvider{err: errors.New("smtp down")}, &fakeTokenVerifier{})
	createTestUser(t, db, "down@example.com", models.UserRoleCandidate)

	err := svc.SendOTP(db, &dto.SendOTPRequest{Email: "down@example.com"})
	assert.True(t, apperrors.Is(err, apperrors.ErrOTPDeliveryFailed))
}

func TestSendOTPUnknownEmail(t *testing.T) {
	db := newTestDB(t)
	svc := newTestAuthService(&fakeEmailProvider{}, &fakeTokenVerifier{})

	err := svc.SendOTP(db, &dto.SendOTPRequest{Email: "ghost@example.com"})
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidCredentials))
}

func TestGoogleLoginCreatesVerifiedUser(t *testing.T) {
	db := newTestDB(t)
	verifier := &fakeTokenVerifier{payload: &oauth.GoogleUser{
		Email:         "google@example.com",
		Name:          "Google User",
		EmailVerified: true,
	}}
	svc := newTestAuthService(&fakeEmailProvider{}, verifier)

	resp, err := svc.GoogleLogin(context.Background(), db, &dto.GoogleLoginRequest{IDToken: "tok"})
	require.NoError(t, err)
	assert.True(t, resp.IsNewUser)
	assert.True(t, resp.User.IsVerified)
	assert.Equal(t, models.UserRoleCandidate, resp.User.Role)

	// Same token again is a plain login.
	resp, err = svc.GoogleLogin(context.Background(), db, &dto.GoogleLoginRequest{IDToken: "tok"})
	require.NoError(t, err)
	assert.False(t, resp.IsNewUser)

	// Existing candidate cannot come back as a recruiter.
	_, err = svc.GoogleLogin(context.Background(), db, &dto.GoogleLoginRequest{
		IDToken: "tok",
		Role:    models.UserRoleRecruiter,
	})
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 403, appErr.HTTPCode)
}

func TestGoogleLoginRejectsBadToken(t *testing.T) {
	db := newTestDB(t)
	verifier := &fakeTokenVerifier{err: errors.New("aud mismatch")}
	svc := newTestAuthService(&fakeEmailProvider{}, verifier)

	_, err := svc.GoogleLogin(context.Background(), db, &dto.GoogleLoginRequest{IDToken: "bad"})
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidToken))
}

func TestRefreshRotatesToken(t *testing.T) {
	db := newTestDB(t)
	svc := newTestAuthService(&fakeEmailProvider{}, &fakeTokenVerifier{})

	resp, err := svc.Register(db, &dto.RegisterRequest{
		Email:    "rotate@example.com",
		Password: "password123",
		FullName: "R",
		Role:     models.UserRoleCandidate,
	})
	require.NoError(t, err)

	rotated, err := svc.Refresh(db, resp.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, resp.RefreshToken, rotated.RefreshToken)

	// The consumed token is gone.
	_, err = svc.Refresh(db, resp.RefreshToken)
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidToken))
}

func TestRefreshExpiredToken(t *testing.T) {
	db := newTestDB(t)
	svc := newTestAuthService(&fakeEmailProvider{}, &fakeTokenVerifier{})

	resp, err := svc.Register(db, &dto.RegisterRequest{
		Email:    "expired@example.com",
		Password: "password123",
		FullName: "E",
		Role:     models.UserRoleCandidate,
	})
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.RefreshToken{}).
		Where("token = ?", resp.RefreshToken).
		Update("expires_at", time.Now().Add(-time.Hour)).Error)

	_, err = svc.Refresh(db, resp.RefreshToken)
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidToken))
}

func TestLogoutIsBestEffort(t *testing.T) {
	db := newTestDB(t)
	svc := newTestAuthService(&fakeEmailProvider{}, &fakeTokenVerifier{})

	assert.NoError(t, svc.Logout(db, ""))
	assert.NoError(t, svc.Logout(db, "never-issued"))
}
