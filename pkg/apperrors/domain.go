package apperrors

import (
	"net/http"
)

// Predefined domain errors. Static errors are vars so services can return
// them directly and handlers can compare with Is.

// --- Auth ---

var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password is too weak. Minimum 8 characters required.",
	http.StatusBadRequest,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"User with this email already exists",
	http.StatusBadRequest,
)

var ErrPersonalEmailDomain = New(
	CodeValidationFailed,
	"auth",
	"Recruiters must use a company email",
	http.StatusBadRequest,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"auth",
	"Invalid user role for this operation",
	http.StatusBadRequest,
)

// ErrRoleMismatch is returned when a login names a role the account does
// not have.
func ErrRoleMismatch(role string) *AppError {
	return New(CodeForbidden, "auth", "This account is not registered as a "+role, http.StatusForbidden)
}

// --- OTP ---

var ErrInvalidOTP = New(
	CodeInvalidToken,
	"otp",
	"Invalid or expired OTP",
	http.StatusBadRequest,
)

var ErrOTPExpired = New(
	CodeTokenExpired,
	"otp",
	"OTP expired",
	http.StatusBadRequest,
)

var ErrOTPDeliveryFailed = New(
	CodeExternalServiceError,
	"otp",
	"Failed to send OTP email",
	http.StatusServiceUnavailable,
)

// --- Listings ---

var ErrListingNotFound = New(
	CodeNotFound,
	"listing",
	"Listing not found",
	http.StatusNotFound,
)

// --- Applications ---

var ErrAlreadyApplied = New(
	CodeAlreadyExists,
	"application",
	"You have already applied to this listing",
	http.StatusBadRequest,
)

var ErrProfileIncomplete = New(
	CodeInvalidOperation,
	"application",
	"Candidate profile not found. Complete your profile first.",
	http.StatusBadRequest,
)

var ErrInvalidApplicationStatus = New(
	CodeInvalidStatus,
	"application",
	"Invalid application status",
	http.StatusBadRequest,
)

// --- Courses ---

var ErrNotEnrolled = New(
	CodeForbidden,
	"course",
	"Enroll to access this course content",
	http.StatusForbidden,
)

// --- Mock interviews ---

var ErrInterviewInPast = New(
	CodeInvalidOperation,
	"interview",
	"Interview must be scheduled in the future",
	http.StatusBadRequest,
)

// --- Generic factories ---

func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}
