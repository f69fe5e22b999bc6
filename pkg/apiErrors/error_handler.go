package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Stable error codes returned to API clients
const (
	// Authentication errors
	ErrInvalidCredentials    = "AUTH_001" // invalid credentials
	ErrUserDisabled          = "AUTH_002" // user disabled
	ErrUserNotFound          = "AUTH_003" // user not found
	ErrUserLocked            = "AUTH_004" // user temporarily locked
	ErrPasswordExpired       = "AUTH_005" // password expired
	ErrInvalidToken          = "AUTH_006" // invalid token
	ErrExpiredToken          = "AUTH_007" // expired token
	ErrInsufficientPrivilege = "AUTH_008" // insufficient privileges
	ErrUserAlreadyExists     = "AUTH_009" // user already exists

	// Validation errors
	ErrInvalidRequest      = "VAL_001" // malformed request
	ErrMissingRequiredData = "VAL_002" // required data missing
	ErrInvalidFormat       = "VAL_003" // invalid data format

	// Resource errors
	ErrColleagueNotFound = "RES_001" // colleague not present in the dataset
	ErrMetricNotFound    = "RES_002" // unknown metric name
	ErrSessionNotFound   = "RES_003" // unknown chat session
	ErrTeamNotFound      = "RES_004" // team not present in the dataset

	// Server errors
	ErrInternalServer     = "SRV_001" // internal server error
	ErrDatabaseOperation  = "SRV_002" // database operation failed
	ErrExternalService    = "SRV_003" // external service failure
	ErrDatasetUnavailable = "SRV_004" // dataset not loaded
)

// HTTP status associated with each error code
var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrUserDisabled:          http.StatusForbidden,
	ErrUserNotFound:          http.StatusNotFound,
	ErrUserLocked:            http.StatusForbidden,
	ErrPasswordExpired:       http.StatusUnauthorized,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrUserAlreadyExists:     http.StatusBadRequest,
	ErrColleagueNotFound:     http.StatusNotFound,
	ErrMetricNotFound:        http.StatusNotFound,
	ErrSessionNotFound:       http.StatusNotFound,
	ErrTeamNotFound:          http.StatusNotFound,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrExternalService:       http.StatusBadGateway,
	ErrDatasetUnavailable:    http.StatusServiceUnavailable,
}

// APIError is the standard error payload of the API
type APIError struct {
	Code    string `json:"code"`              // stable error code for the client
	Message string `json:"message,omitempty"` // human readable message (optional)
	Details any    `json:"details,omitempty"` // additional details (optional)
}

// WriteError writes the standard error payload to the HTTP response
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError wraps an existing Go error into an APIError
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "unknown error",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
