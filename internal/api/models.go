package api

import (
	"bytes"
	"encoding/json"

	"github.com/phrazzld/tasks-api/internal/api/shared"
	"github.com/phrazzld/tasks-api/internal/domain"
)

// Common request/response structures

// Validation rules shared by create and update payloads. The length rule
// insists on the zero-padded YYYY-MM-DD form; date parsing alone would also
// accept unpadded dates like 2026-1-1.
const (
	dueDateRule = "len=10,datetime=2006-01-02"
	statusRule  = "oneof='Pending' 'In Progress' 'Completed'"
)

// OptionalString is a JSON string field that records whether its key was
// present in the request body, distinguishing an absent field from an
// explicit null and from a provided value.
type OptionalString struct {
	Set   bool
	Value *string
}

// UnmarshalJSON implements json.Unmarshaler. The decoder only invokes it
// for keys present in the body, so Set marks field presence; a JSON null
// leaves Value nil.
func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, []byte("null")) {
		o.Value = nil
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// blank reports whether the field is absent, null, or an empty string.
func (o OptionalString) blank() bool {
	return !o.Set || o.Value == nil || *o.Value == ""
}

// CreateTaskRequest defines the payload for the task creation endpoint.
type CreateTaskRequest struct {
	Title       OptionalString `json:"title"`
	Description OptionalString `json:"description"`
	DueDate     OptionalString `json:"due_date"`
	Status      OptionalString `json:"status"`
}

// IsEmpty reports whether no recognized field was present in the body.
func (r CreateTaskRequest) IsEmpty() bool {
	return !r.Title.Set && !r.Description.Set && !r.DueDate.Set && !r.Status.Set
}

// Validate checks the request against the task creation rules. Checks run
// in a fixed order: required fields first, then the due date format, then
// the status enumeration, so a payload with several problems reports the
// same error every time.
func (r CreateTaskRequest) Validate() error {
	var missing []string
	if r.Title.blank() {
		missing = append(missing, "title")
	}
	if r.Description.blank() {
		missing = append(missing, "description")
	}
	if r.DueDate.blank() {
		missing = append(missing, "due_date")
	}
	if len(missing) > 0 {
		return &MissingFieldsError{Fields: missing}
	}

	if err := shared.Validate.Var(*r.DueDate.Value, dueDateRule); err != nil {
		return domain.ErrDueDateFormat
	}

	if r.Status.Set {
		if r.Status.Value == nil {
			return domain.ErrStatusInvalid
		}
		if err := shared.Validate.Var(*r.Status.Value, statusRule); err != nil {
			return domain.ErrStatusInvalid
		}
	}

	return nil
}

// EffectiveStatus returns the requested status, or the empty string when
// the field was omitted so the store applies the Pending default.
func (r CreateTaskRequest) EffectiveStatus() domain.TaskStatus {
	if !r.Status.Set || r.Status.Value == nil {
		return ""
	}
	return domain.TaskStatus(*r.Status.Value)
}

// UpdateTaskRequest defines the payload for the partial task update
// endpoint. Every field is optional; a present field must satisfy the same
// rules as task creation.
type UpdateTaskRequest struct {
	Title       OptionalString `json:"title"`
	Description OptionalString `json:"description"`
	DueDate     OptionalString `json:"due_date"`
	Status      OptionalString `json:"status"`
}

// IsEmpty reports whether no recognized field was present in the body.
func (r UpdateTaskRequest) IsEmpty() bool {
	return !r.Title.Set && !r.Description.Set && !r.DueDate.Set && !r.Status.Set
}

// Validate checks every present field against the task field rules.
func (r UpdateTaskRequest) Validate() error {
	if r.Title.Set && (r.Title.Value == nil || *r.Title.Value == "") {
		return domain.ErrTitleEmpty
	}
	if r.Description.Set && (r.Description.Value == nil || *r.Description.Value == "") {
		return domain.ErrDescriptionEmpty
	}
	if r.DueDate.Set {
		if r.DueDate.Value == nil {
			return domain.ErrDueDateFormat
		}
		if err := shared.Validate.Var(*r.DueDate.Value, dueDateRule); err != nil {
			return domain.ErrDueDateFormat
		}
	}
	if r.Status.Set {
		if r.Status.Value == nil {
			return domain.ErrStatusInvalid
		}
		if err := shared.Validate.Var(*r.Status.Value, statusRule); err != nil {
			return domain.ErrStatusInvalid
		}
	}
	return nil
}

// ToDomainUpdate converts a validated request into a domain update.
func (r UpdateTaskRequest) ToDomainUpdate() domain.TaskUpdate {
	update := domain.TaskUpdate{
		Title:       r.Title.Value,
		Description: r.Description.Value,
		DueDate:     r.DueDate.Value,
	}
	if r.Status.Set && r.Status.Value != nil {
		status := domain.TaskStatus(*r.Status.Value)
		update.Status = &status
	}
	return update
}

// TaskResponse defines the response data for a task.
type TaskResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	Status      string `json:"status"`
}

// MessageResponse carries a plain confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ServiceInfoResponse describes the API for the root endpoint.
type ServiceInfoResponse struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}
