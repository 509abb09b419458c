package memory

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/store"
)

// MemoryTaskStore implements the store.TaskStore interface using an
// in-process map as the storage backend. A single mutex guards both the
// task map and the ID counter so ID assignment and insertion are atomic.
type MemoryTaskStore struct {
	mu     sync.RWMutex
	tasks  map[int64]*domain.Task
	nextID int64
	logger *slog.Logger
}

// NewMemoryTaskStore creates a new in-memory implementation of the TaskStore interface.
// The store starts empty and assigns IDs from 1 upwards.
// If logger is nil, a default logger will be used.
func NewMemoryTaskStore(logger *slog.Logger) *MemoryTaskStore {
	// Use provided logger or create default
	if logger == nil {
		logger = slog.Default()
	}

	return &MemoryTaskStore{
		tasks:  make(map[int64]*domain.Task),
		nextID: 1,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure MemoryTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*MemoryTaskStore)(nil)

// Create implements store.TaskStore.Create
// It assigns the next ID and saves a new task, handling domain validation.
// The counter only advances when the task is actually inserted, so a
// rejected payload never burns an ID.
func (s *MemoryTaskStore) Create(
	ctx context.Context,
	title, description, dueDate string,
	status domain.TaskStatus,
) (*domain.Task, error) {
	// Get the logger from context or use default
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.mu.Lock()
	defer s.mu.Unlock()

	task, err := domain.NewTask(s.nextID, title, description, dueDate, status)
	if err != nil {
		log.Warn("task validation failed during create",
			slog.String("error", err.Error()))
		return nil, err
	}

	s.tasks[task.ID] = task
	s.nextID++

	log.Info("task created successfully",
		slog.Int64("task_id", task.ID),
		slog.String("status", string(task.Status)))

	result := *task
	return &result, nil
}

// List implements store.TaskStore.List
// It retrieves all tasks sorted by ascending ID, which matches insertion
// order because IDs are assigned monotonically.
func (s *MemoryTaskStore) List(ctx context.Context) ([]*domain.Task, error) {
	// Get the logger from context or use default
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int64, 0, len(s.tasks))
	for id := range s.tasks {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	tasks := make([]*domain.Task, 0, len(ids))
	for _, id := range ids {
		result := *s.tasks[id]
		tasks = append(tasks, &result)
	}

	log.Debug("tasks listed", slog.Int("count", len(tasks)))
	return tasks, nil
}

// GetByID implements store.TaskStore.GetByID
// It retrieves a task by its unique ID.
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *MemoryTaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	// Get the logger from context or use default
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving task by ID", slog.Int64("task_id", id))

	s.mu.RLock()
	defer s.mu.RUnlock()

	task, ok := s.tasks[id]
	if !ok {
		log.Debug("task not found", slog.Int64("task_id", id))
		return nil, store.ErrTaskNotFound
	}

	result := *task
	return &result, nil
}

// Update implements store.TaskStore.Update
// It applies a partial update to an existing task and returns the result.
// Returns store.ErrTaskNotFound if the task does not exist; existence is
// checked before the update is validated.
// Returns validation errors if the update data is invalid.
func (s *MemoryTaskStore) Update(
	ctx context.Context,
	id int64,
	update domain.TaskUpdate,
) (*domain.Task, error) {
	// Get the logger from context or use default
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok {
		log.Debug("task not found for update", slog.Int64("task_id", id))
		return nil, store.ErrTaskNotFound
	}

	if err := update.Validate(); err != nil {
		log.Warn("task validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		return nil, err
	}

	// Apply to a copy and commit only after it succeeds, so the stored
	// task is never observed half-updated.
	updated := *task
	updated.Apply(update)
	s.tasks[id] = &updated

	log.Info("task updated successfully",
		slog.Int64("task_id", id),
		slog.String("status", string(updated.Status)))

	result := updated
	return &result, nil
}

// Delete implements store.TaskStore.Delete
// It removes a task from the store. The ID counter never rewinds, so a
// deleted task's ID is not reused by later creates.
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *MemoryTaskStore) Delete(ctx context.Context, id int64) error {
	// Get the logger from context or use default
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		log.Debug("task not found for delete", slog.Int64("task_id", id))
		return store.ErrTaskNotFound
	}

	delete(s.tasks, id)

	log.Info("task deleted successfully", slog.Int64("task_id", id))
	return nil
}
