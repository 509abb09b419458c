package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/store"
)

// MockTaskStore implements store.TaskStore for testing
type MockTaskStore struct {
	// Custom behavior functions
	CreateFn  func(ctx context.Context, title, description, dueDate string, status domain.TaskStatus) (*domain.Task, error)
	ListFn    func(ctx context.Context) ([]*domain.Task, error)
	GetByIDFn func(ctx context.Context, id int64) (*domain.Task, error)
	UpdateFn  func(ctx context.Context, id int64, update domain.TaskUpdate) (*domain.Task, error)
	DeleteFn  func(ctx context.Context, id int64) error

	// Default response values
	Task  *domain.Task
	Tasks []*domain.Task
	Err   error

	// Call tracking for verification
	CreateCalls struct {
		mu     sync.Mutex
		Count  int
		Titles []string
	}

	GetByIDCalls struct {
		mu    sync.Mutex
		Count int
		IDs   []int64
	}

	UpdateCalls struct {
		mu      sync.Mutex
		Count   int
		IDs     []int64
		Updates []domain.TaskUpdate
	}

	DeleteCalls struct {
		mu    sync.Mutex
		Count int
		IDs   []int64
	}
}

// Verify interface compliance
var _ store.TaskStore = (*MockTaskStore)(nil)

// Create implements the store.TaskStore interface
func (m *MockTaskStore) Create(
	ctx context.Context,
	title, description, dueDate string,
	status domain.TaskStatus,
) (*domain.Task, error) {
	// Track call details for verification
	m.CreateCalls.mu.Lock()
	m.CreateCalls.Count++
	m.CreateCalls.Titles = append(m.CreateCalls.Titles, title)
	m.CreateCalls.mu.Unlock()

	// Use custom function if provided
	if m.CreateFn != nil {
		return m.CreateFn(ctx, title, description, dueDate, status)
	}

	// Return default values
	return m.Task, m.Err
}

// List implements the store.TaskStore interface
func (m *MockTaskStore) List(ctx context.Context) ([]*domain.Task, error) {
	// Use custom function if provided
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	// Return default values
	return m.Tasks, m.Err
}

// GetByID implements the store.TaskStore interface
func (m *MockTaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	// Track call details for verification
	m.GetByIDCalls.mu.Lock()
	m.GetByIDCalls.Count++
	m.GetByIDCalls.IDs = append(m.GetByIDCalls.IDs, id)
	m.GetByIDCalls.mu.Unlock()

	// Use custom function if provided
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	// Return default values
	return m.Task, m.Err
}

// Update implements the store.TaskStore interface
func (m *MockTaskStore) Update(
	ctx context.Context,
	id int64,
	update domain.TaskUpdate,
) (*domain.Task, error) {
	// Track call details for verification
	m.UpdateCalls.mu.Lock()
	m.UpdateCalls.Count++
	m.UpdateCalls.IDs = append(m.UpdateCalls.IDs, id)
	m.UpdateCalls.Updates = append(m.UpdateCalls.Updates, update)
	m.UpdateCalls.mu.Unlock()

	// Use custom function if provided
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, update)
	}

	// Return default values
	return m.Task, m.Err
}

// Delete implements the store.TaskStore interface
func (m *MockTaskStore) Delete(ctx context.Context, id int64) error {
	// Track call details for verification
	m.DeleteCalls.mu.Lock()
	m.DeleteCalls.Count++
	m.DeleteCalls.IDs = append(m.DeleteCalls.IDs, id)
	m.DeleteCalls.mu.Unlock()

	// Use custom function if provided
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	// Return default values
	return m.Err
}
