package surveymonkey

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Common errors. API errors unwrap to one of these based on the SurveyMonkey
// error code, so callers can classify failures with errors.Is.
var (
	// ErrBadRequest indicates a malformed or unprocessable request
	ErrBadRequest = errors.New("bad request")
	// ErrAuthorization indicates a missing, invalid or revoked access token
	ErrAuthorization = errors.New("authorization failed")
	// ErrPermission indicates the token lacks the required scope
	ErrPermission = errors.New("permission denied")
	// ErrNotFound indicates the requested resource does not exist
	ErrNotFound = errors.New("resource not found")
	// ErrConflict indicates the request conflicts with resource state
	ErrConflict = errors.New("resource conflict")
	// ErrEntityTooLarge indicates the request body exceeded the size limit
	ErrEntityTooLarge = errors.New("request entity too large")
	// ErrRateLimited indicates the API rate limit was reached
	ErrRateLimited = errors.New("rate limit reached")
	// ErrInternal indicates a server-side failure
	ErrInternal = errors.New("internal server error")
	// ErrUserSoftDeleted indicates the account is soft deleted
	ErrUserSoftDeleted = errors.New("user soft deleted")
	// ErrUserDeleted indicates the account is deleted
	ErrUserDeleted = errors.New("user deleted")
)

// errorCodes maps SurveyMonkey numeric error codes to classification errors.
var errorCodes = map[string]error{
	"1000": ErrBadRequest,
	"1001": ErrBadRequest,
	"1002": ErrBadRequest,
	"1003": ErrBadRequest,
	"1004": ErrBadRequest,
	"1010": ErrAuthorization,
	"1011": ErrAuthorization,
	"1012": ErrAuthorization,
	"1013": ErrAuthorization,
	"1014": ErrPermission,
	"1015": ErrPermission,
	"1016": ErrPermission,
	"1017": ErrPermission,
	"1018": ErrPermission,
	"1020": ErrNotFound,
	"1025": ErrConflict,
	"1026": ErrConflict,
	"1030": ErrEntityTooLarge,
	"1040": ErrRateLimited,
	"1050": ErrInternal,
	"1051": ErrInternal,
	"1052": ErrUserSoftDeleted,
	"1053": ErrUserDeleted,
}

// APIError represents a SurveyMonkey API error response.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Body       string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("surveymonkey API error %s: %s (status %d)", e.Code, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("surveymonkey API error: status %d: %s", e.StatusCode, e.Body)
}

// Unwrap maps the error code onto one of the classification errors.
func (e *APIError) Unwrap() error {
	if err, ok := errorCodes[e.Code]; ok {
		return err
	}
	return nil
}

// IsNotFound checks if the error indicates a missing resource.
func (e *APIError) IsNotFound() bool {
	return errors.Is(e, ErrNotFound) || e.StatusCode == 404
}

// IsAuthError checks if the error indicates an authentication or permission failure.
func (e *APIError) IsAuthError() bool {
	return errors.Is(e, ErrAuthorization) || errors.Is(e, ErrPermission) ||
		e.StatusCode == 401 || e.StatusCode == 403
}

// IsRateLimited checks if the error indicates the API rate limit was reached.
func (e *APIError) IsRateLimited() bool {
	return errors.Is(e, ErrRateLimited) || e.StatusCode == 429
}

// parseAPIError builds an APIError from a non-2xx response. SurveyMonkey error
// bodies carry a numeric code under "error" and a human message under "message".
func parseAPIError(statusCode int, raw []byte) error {
	apiErr := &APIError{
		StatusCode: statusCode,
		Body:       string(raw),
	}

	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Error != "" {
		apiErr.Code = body.Error
		apiErr.Message = body.Message
	}

	return apiErr
}
