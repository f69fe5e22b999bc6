package authenticating

import (
	"errors"
	"fmt"
)

// Authentication error values
var (
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrUserDisabled          = errors.New("user disabled")
	ErrUserNotFound          = errors.New("user not found")
	ErrUserLocked            = errors.New("user temporarily locked")
	ErrPasswordExpired       = errors.New("password expired")
	ErrInvalidToken          = errors.New("invalid token")
	ErrExpiredToken          = errors.New("expired token")
	ErrInsufficientPrivilege = errors.New("insufficient privileges")
	ErrUserAlreadyExists     = errors.New("user already exists")

	// Validation errors
	ErrInvalidRequest      = errors.New("malformed request")
	ErrMissingRequiredData = errors.New("required data missing")
	ErrInvalidFormat       = errors.New("invalid data format")

	// Password errors
	ErrWeakPassword      = errors.New("weak password")
	ErrPasswordMismatch  = errors.New("passwords do not match")
	ErrSamePassword      = errors.New("new password must differ from the current one")
	ErrNoAdminPrivileges = errors.New("only administrators can perform this action")

	// Database errors
	ErrDatabaseOperation = errors.New("database operation failed")
)

// AuthError carries additional context for authentication failures
type AuthError struct {
	Err     error  // base error
	Code    string // API error code
	UserID  int    // user involved (when applicable)
	Details string // additional details
}

func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// IsCredentialsError reports whether the error relates to invalid credentials
func IsCredentialsError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrUserDisabled) ||
		errors.Is(err, ErrUserLocked) ||
		errors.Is(err, ErrPasswordExpired)
}

// IsAuthorizationError reports whether the error relates to authorization
func IsAuthorizationError(err error) bool {
	return errors.Is(err, ErrInsufficientPrivilege) ||
		errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrExpiredToken) ||
		errors.Is(err, ErrNoAdminPrivileges)
}

// NewAuthError builds an authentication error
func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

// NewUserAuthError builds an authentication error with user context
func NewUserAuthError(baseErr error, code string, userID int, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		UserID:  userID,
		Details: details,
	}
}
