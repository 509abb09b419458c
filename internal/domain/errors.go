package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is the root of all field-validation failures. Each
	// specific validation error wraps it, so callers can match the whole
	// family with errors.Is(err, ErrValidation).
	ErrValidation = errors.New("validation failed")

	// ErrInvalidTaskID is returned when a task ID is not a positive integer.
	// IDs are store-assigned, so a bad one is an internal fault rather than
	// a member of the ErrValidation family.
	ErrInvalidTaskID = errors.New("task ID must be a positive integer")

	// ErrTitleEmpty is returned when a task title is missing or empty.
	ErrTitleEmpty = fmt.Errorf("%w: title cannot be empty", ErrValidation)

	// ErrDescriptionEmpty is returned when a task description is missing or empty.
	ErrDescriptionEmpty = fmt.Errorf("%w: description cannot be empty", ErrValidation)

	// ErrDueDateEmpty is returned when a task due date is missing or empty.
	ErrDueDateEmpty = fmt.Errorf("%w: due date cannot be empty", ErrValidation)

	// ErrDueDateFormat is returned when a due date is not a real calendar
	// date in YYYY-MM-DD form.
	ErrDueDateFormat = fmt.Errorf("%w: due date must be a valid YYYY-MM-DD date", ErrValidation)

	// ErrStatusInvalid is returned when a status is not a member of the
	// fixed enumeration.
	ErrStatusInvalid = fmt.Errorf("%w: invalid task status", ErrValidation)

	// ErrEmptyUpdate is returned when a partial update carries no fields.
	ErrEmptyUpdate = fmt.Errorf("%w: no fields provided for update", ErrValidation)
)
