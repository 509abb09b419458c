package store

import (
	"context"

	"github.com/phrazzld/tasks-api/internal/domain"
)

// TaskStore defines the interface for task data access.
// Version: 1.0
type TaskStore interface {
	// Create assigns the next task ID and saves a new task to the store.
	// ID assignment and insertion happen atomically, so concurrent creates
	// never observe the same ID and IDs are never reused, even after deletes.
	// The status defaults to domain.TaskStatusPending when empty.
	// Returns validation errors from the domain Task if data is invalid.
	Create(
		ctx context.Context,
		title, description, dueDate string,
		status domain.TaskStatus,
	) (*domain.Task, error)

	// List retrieves all tasks in insertion order (ascending ID).
	// Returns an empty slice when the store holds no tasks.
	List(ctx context.Context) ([]*domain.Task, error)

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Task, error)

	// Update applies the provided partial update to an existing task and
	// returns the updated task. Existence is checked before the update is
	// validated, so ErrTaskNotFound takes precedence over validation errors.
	// Returns validation errors from the domain TaskUpdate if data is invalid.
	Update(ctx context.Context, id int64, update domain.TaskUpdate) (*domain.Task, error)

	// Delete removes a task from the store.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id int64) error
}
