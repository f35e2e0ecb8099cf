package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches any BaseError carrying the same error code, so detailed copies
// made by WithDetails still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == other.errorCode
}

// Predefined error types
var (
	// Session and input errors
	ErrInvalidInput = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		"input is not valid for the current step",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"request validation failed",
		"",
	)

	ErrDuplicateSubmission = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_SUBMISSION",
		"already submitted",
		"",
	)

	// Identity and account errors
	ErrIdentityNotFound = NewBaseError(
		http.StatusNotFound,
		"IDENTITY_NOT_FOUND",
		"identity not found",
		"",
	)

	ErrAccountNotFound = NewBaseError(
		http.StatusNotFound,
		"ACCOUNT_NOT_FOUND",
		"account not found",
		"",
	)

	ErrAccountEmailTaken = NewBaseError(
		http.StatusConflict,
		"ACCOUNT_EMAIL_TAKEN",
		"email already belongs to another account",
		"",
	)

	// Link token errors
	ErrTokenNotFound = NewBaseError(
		http.StatusNotFound,
		"TOKEN_NOT_FOUND",
		"link token not found",
		"",
	)

	ErrTokenExpired = NewBaseError(
		http.StatusGone,
		"TOKEN_EXPIRED",
		"link token has expired",
		"",
	)

	ErrTokenConsumed = NewBaseError(
		http.StatusConflict,
		"TOKEN_CONSUMED",
		"link token was already used or replaced",
		"",
	)

	ErrAttemptsExceeded = NewBaseError(
		http.StatusTooManyRequests,
		"ATTEMPTS_EXCEEDED",
		"too many failed attempts, request a new code",
		"",
	)

	ErrInvalidOTP = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_OTP",
		"one-time code does not match",
		"",
	)

	ErrAccountAlreadyLinked = NewBaseError(
		http.StatusConflict,
		"ACCOUNT_ALREADY_LINKED",
		"account is already linked to a chat identity",
		"",
	)

	ErrIdentityAlreadyLinked = NewBaseError(
		http.StatusConflict,
		"IDENTITY_ALREADY_LINKED",
		"chat identity is already linked to another account",
		"",
	)

	// Ledger errors
	ErrInvalidAward = NewBaseError(
		http.StatusBadRequest,
		"INVALID_AWARD",
		"award is not valid",
		"",
	)

	ErrReferralCodeNotFound = NewBaseError(
		http.StatusNotFound,
		"REFERRAL_CODE_NOT_FOUND",
		"referral code not found",
		"",
	)

	ErrSelfReferral = NewBaseError(
		http.StatusBadRequest,
		"SELF_REFERRAL",
		"cannot refer yourself",
		"",
	)

	ErrAlreadyReferred = NewBaseError(
		http.StatusConflict,
		"ALREADY_REFERRED",
		"identity was already referred",
		"",
	)

	ErrTaskNotFound = NewBaseError(
		http.StatusNotFound,
		"TASK_NOT_FOUND",
		"task not found",
		"",
	)

	ErrVerificationFailed = NewBaseError(
		http.StatusUnprocessableEntity,
		"VERIFICATION_FAILED",
		"task completion could not be verified",
		"",
	)

	ErrVerificationUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"VERIFICATION_UNAVAILABLE",
		"task verification is not available",
		"",
	)

	// Moderation errors
	ErrUnauthorized = NewBaseError(
		http.StatusForbidden,
		"UNAUTHORIZED",
		"not allowed to perform this action",
		"",
	)

	ErrNotPending = NewBaseError(
		http.StatusConflict,
		"NOT_PENDING",
		"identity has no pending application",
		"",
	)

	// Authentication errors
	ErrAuthTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"AUTH_TOKEN_INVALID",
		"missing or invalid session token",
		"",
	)

	ErrBotSecretInvalid = NewBaseError(
		http.StatusUnauthorized,
		"BOT_SECRET_INVALID",
		"invalid bot secret",
		"",
	)

	// General errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"database transaction failed",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the underlying driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
