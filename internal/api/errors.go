package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/phrazzld/tasks-api/internal/api/shared"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/store"
)

// MissingFieldsError reports a create request that lacks one or more
// required fields. Field names keep the order they hold in the task payload
// so the client message is stable.
type MissingFieldsError struct {
	Fields []string
}

// Error implements the error interface. The text doubles as the
// client-facing message.
func (e *MissingFieldsError) Error() string {
	return "Missing required fields: " + strings.Join(e.Fields, ", ")
}

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var missingFields *MissingFieldsError

	switch {
	// Not found errors
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Bad request errors. Every field-validation sentinel wraps
	// domain.ErrValidation, so one check covers the whole family.
	case errors.As(err, &missingFields),
		errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	// Handle nil error
	if err == nil {
		return "An unexpected error occurred"
	}

	var missingFields *MissingFieldsError

	// Map specific error types to user-friendly messages
	switch {
	// Not found errors
	case errors.Is(err, store.ErrTaskNotFound):
		return "Task not found"

	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"

	// Bad request errors
	case errors.As(err, &missingFields):
		return missingFields.Error()

	case errors.Is(err, domain.ErrTitleEmpty):
		return "Title cannot be empty"

	case errors.Is(err, domain.ErrDescriptionEmpty):
		return "Description cannot be empty"

	case errors.Is(err, domain.ErrDueDateEmpty),
		errors.Is(err, domain.ErrDueDateFormat):
		return "Invalid date format. Use YYYY-MM-DD"

	case errors.Is(err, domain.ErrStatusInvalid):
		return "Invalid status. Must be one of: " + joinValidStatuses()

	case errors.Is(err, domain.ErrEmptyUpdate):
		return "No fields provided for update"

	// Default case for unknown errors
	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError maps the error to a status code and sanitized message and
// writes the JSON error response. When fallbackMessage is non-empty it
// replaces the derived message for server errors, letting handlers report
// operation-specific failures without exposing internals.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string) {
	statusCode := MapErrorToStatusCode(err)
	safeMessage := GetSafeErrorMessage(err)

	if fallbackMessage != "" && statusCode == http.StatusInternalServerError {
		safeMessage = fallbackMessage
	}

	// Log the full error details but only send the sanitized message to the client
	shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
}

// joinValidStatuses renders the status enumeration for client messages.
func joinValidStatuses() string {
	statuses := domain.ValidTaskStatuses()
	names := make([]string, len(statuses))
	for i, s := range statuses {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}
