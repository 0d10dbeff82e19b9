package apperrors

import (
	"net/http"
)

// Factories used to translate repository errors into AppErrors.

// ErrNotFound converts a repository miss (e.g. gorm.ErrRecordNotFound)
// into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// ErrInvalidStateTransition signals a lifecycle rule violation, e.g. editing
// a sitting request that already left the pending state.
func ErrInvalidStateTransition(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusConflict)
}

// Predeclared errors for the frequent static cases.

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Admin access required",
	http.StatusForbidden,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"User already exists",
	http.StatusConflict,
)

// ErrInvalidCredentials deliberately does not distinguish "no such email"
// from "wrong password".
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid credentials",
	http.StatusBadRequest,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password must be at least 6 characters long",
	http.StatusBadRequest,
)

var ErrNotResourceOwner = New(
	CodeForbidden,
	"auth",
	"Not authorized",
	http.StatusForbidden,
)

var ErrAlreadyApplied = New(
	CodeConflict,
	"sitting",
	"You have already applied to this request",
	http.StatusConflict,
)

var ErrRequestNotPending = New(
	CodeInvalidStatus,
	"sitting",
	"This request is no longer available",
	http.StatusConflict,
)

var ErrOwnRequest = New(
	CodeInvalidOperation,
	"sitting",
	"You cannot apply to your own request",
	http.StatusBadRequest,
)
