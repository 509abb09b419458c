package domain

import (
	"time"
)

// TaskStatus represents the completion state of a task.
type TaskStatus string

// Possible task status values. These are the only values the store will
// ever persist; the exact casing is part of the API contract.
const (
	TaskStatusPending    TaskStatus = "Pending"
	TaskStatusInProgress TaskStatus = "In Progress"
	TaskStatusCompleted  TaskStatus = "Completed"
)

// DueDateLayout is the calendar-date layout task due dates must use.
const DueDateLayout = "2006-01-02"

// ValidTaskStatuses returns the fixed set of allowed status values in
// display order. Callers may use it to build user-facing error messages.
func ValidTaskStatuses() []TaskStatus {
	return []TaskStatus{TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted}
}

// IsValid reports whether the status is a member of the fixed enumeration.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	default:
		return false
	}
}

// ValidateDueDate checks that the value is a zero-padded YYYY-MM-DD string
// naming a real calendar date. time.Parse alone accepts unpadded components
// like "2026-1-1", so the length is checked as well.
func ValidateDueDate(value string) error {
	if value == "" {
		return ErrDueDateEmpty
	}
	if len(value) != len(DueDateLayout) {
		return ErrDueDateFormat
	}
	if _, err := time.Parse(DueDateLayout, value); err != nil {
		return ErrDueDateFormat
	}
	return nil
}

// Task represents a single to-do record. The ID is assigned by the store at
// creation time and never changes; every other field may be replaced by a
// partial update. CreatedAt/UpdatedAt are internal bookkeeping and are not
// part of the API wire format.
type Task struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     string     `json:"due_date"`
	Status      TaskStatus `json:"status"`
	CreatedAt   time.Time  `json:"-"`
	UpdatedAt   time.Time  `json:"-"`
}

// NewTask creates a new Task with the given store-assigned ID and field
// values. An empty status defaults to Pending, matching creation bodies
// that omit the field. Returns an error if validation fails.
func NewTask(id int64, title, description, dueDate string, status TaskStatus) (*Task, error) {
	if status == "" {
		status = TaskStatusPending
	}

	now := time.Now().UTC()
	task := &Task{
		ID:          id,
		Title:       title,
		Description: description,
		DueDate:     dueDate,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if t.ID <= 0 {
		return ErrInvalidTaskID
	}

	if t.Title == "" {
		return ErrTitleEmpty
	}

	if t.Description == "" {
		return ErrDescriptionEmpty
	}

	if err := ValidateDueDate(t.DueDate); err != nil {
		return err
	}

	if !t.Status.IsValid() {
		return ErrStatusInvalid
	}

	return nil
}

// TaskUpdate is a partial update to a Task. Nil fields are left untouched,
// distinguishing "field absent" from "field provided" in PUT bodies. A JSON
// null is decoded to a nil pointer and therefore behaves like an absent
// field.
type TaskUpdate struct {
	Title       *string
	Description *string
	DueDate     *string
	Status      *TaskStatus
}

// IsEmpty reports whether the update carries no fields at all.
func (u TaskUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.DueDate == nil && u.Status == nil
}

// Validate checks every provided field with the same rules applied at
// creation. An update with no fields at all fails with ErrEmptyUpdate.
func (u TaskUpdate) Validate() error {
	if u.IsEmpty() {
		return ErrEmptyUpdate
	}

	if u.Title != nil && *u.Title == "" {
		return ErrTitleEmpty
	}

	if u.Description != nil && *u.Description == "" {
		return ErrDescriptionEmpty
	}

	if u.DueDate != nil {
		if err := ValidateDueDate(*u.DueDate); err != nil {
			return err
		}
	}

	if u.Status != nil && !u.Status.IsValid() {
		return ErrStatusInvalid
	}

	return nil
}

// Apply replaces only the fields supplied in the update and touches
// UpdatedAt. The task ID is never changed. The update should be validated
// before it is applied.
func (t *Task) Apply(update TaskUpdate) {
	if update.Title != nil {
		t.Title = *update.Title
	}
	if update.Description != nil {
		t.Description = *update.Description
	}
	if update.DueDate != nil {
		t.DueDate = *update.DueDate
	}
	if update.Status != nil {
		t.Status = *update.Status
	}
	t.UpdatedAt = time.Now().UTC()
}
