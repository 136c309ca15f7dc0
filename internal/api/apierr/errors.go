package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/whyvineet/orthoplay-go/internal/model"
	"github.com/whyvineet/orthoplay-go/internal/services/auth"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest        = "INVALID_REQUEST"
	CodeSessionNotFound       = "SESSION_NOT_FOUND"
	CodeGameNotCompleted      = "GAME_NOT_COMPLETED"
	CodeDemoSession           = "DEMO_SESSION"
	CodeInvalidUsername       = "INVALID_USERNAME"
	CodeInvalidCompletionTime = "INVALID_COMPLETION_TIME"
	CodeNoWordsForDifficulty  = "NO_WORDS_FOR_DIFFICULTY"
	CodeUserNotFound          = "USER_NOT_FOUND"
	CodeUnauthorized          = "UNAUTHORIZED"
	CodeUsernameExists        = "USERNAME_EXISTS"
	CodeInvalidCredentials    = "INVALID_CREDENTIALS"
	CodeStorageError          = "STORAGE_ERROR"
	CodeInternalError         = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrSessionNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeSessionNotFound, "Game session not found"}}
	case errors.Is(err, model.ErrGameNotCompleted):
		return &httpError{http.StatusBadRequest, APIError{CodeGameNotCompleted, "Game not completed yet"}}
	case errors.Is(err, model.ErrDemoSession):
		return &httpError{http.StatusBadRequest, APIError{CodeDemoSession, "Demo games cannot submit scores"}}
	case errors.Is(err, model.ErrInvalidUsername):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidUsername, "Username must be 3-20 characters, letters, digits and underscores"}}
	case errors.Is(err, model.ErrInvalidCompletionTime):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidCompletionTime, "Completion time must be positive"}}
	case errors.Is(err, model.ErrNoWordsForDifficulty):
		return &httpError{http.StatusNotFound, APIError{CodeNoWordsForDifficulty, "No words found for that difficulty"}}
	case errors.Is(err, model.ErrUserNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeUserNotFound, "User not found"}}
	case errors.Is(err, model.ErrLeaderboardStorage):
		return &httpError{http.StatusInternalServerError, APIError{CodeStorageError, "Failed to save score"}}

	// Auth collaborator errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, APIError{CodeInvalidCredentials, "Invalid username or password"}}
	case errors.Is(err, auth.ErrInvalidSession):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Invalid or expired session"}}
	case errors.Is(err, auth.ErrUsernameExists):
		return &httpError{http.StatusConflict, APIError{CodeUsernameExists, "Username already exists"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
