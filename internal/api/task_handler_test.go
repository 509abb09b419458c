package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/mocks"
	"github.com/phrazzld/tasks-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestTaskHandler builds a handler whose logs go nowhere.
func newTestTaskHandler(taskStore store.TaskStore) *TaskHandler {
	logger := slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), nil))
	return NewTaskHandler(taskStore, logger)
}

// withTaskID attaches a chi route context carrying the id path parameter.
func withTaskID(req *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func sampleTask() *domain.Task {
	return &domain.Task{
		ID:          1,
		Title:       "Buy milk",
		Description: "2 liters of whole milk",
		DueDate:     "2026-09-01",
		Status:      domain.TaskStatusPending,
	}
}

func TestTaskHandler_CreateTask(t *testing.T) {
	tests := []struct {
		name                string
		requestBody         string
		setupMock           func(*mocks.MockTaskStore)
		expectedStatus      int
		expectedErrMsg      string
		expectedCreateCalls int
	}{
		{
			name:        "successful_creation",
			requestBody: `{"title": "Buy milk", "description": "2 liters of whole milk", "due_date": "2026-09-01", "status": "In Progress"}`,
			setupMock: func(ms *mocks.MockTaskStore) {
				ms.CreateFn = func(ctx context.Context, title, description, dueDate string, status domain.TaskStatus) (*domain.Task, error) {
					assert.Equal(t, "Buy milk", title)
					assert.Equal(t, "2 liters of whole milk", description)
					assert.Equal(t, "2026-09-01", dueDate)
					assert.Equal(t, domain.TaskStatusInProgress, status)
					return &domain.Task{
						ID:          1,
						Title:       title,
						Description: description,
						DueDate:     dueDate,
						Status:      status,
					}, nil
				}
			},
			expectedStatus:      http.StatusCreated,
			expectedCreateCalls: 1,
		},
		{
			name:        "omitted_status_reaches_store_empty",
			requestBody: `{"title": "Buy milk", "description": "2 liters of whole milk", "due_date": "2026-09-01"}`,
			setupMock: func(ms *mocks.MockTaskStore) {
				ms.CreateFn = func(ctx context.Context, title, description, dueDate string, status domain.TaskStatus) (*domain.Task, error) {
					assert.Equal(t, domain.TaskStatus(""), status)
					return &domain.Task{
						ID:          1,
						Title:       title,
						Description: description,
						DueDate:     dueDate,
						Status:      domain.TaskStatusPending,
					}, nil
				}
			},
			expectedStatus:      http.StatusCreated,
			expectedCreateCalls: 1,
		},
		{
			name:           "empty_body",
			requestBody:    ``,
			setupMock:      func(ms *mocks.MockTaskStore) {},
			expectedStatus: http.StatusBadRequest,
			expectedErrMsg: "No data provided",
		},
		{
			name:           "empty_object_body",
			requestBody:    `{}`,
			setupMock:      func(ms *mocks.MockTaskStore) {},
			expectedStatus: http.StatusBadRequest,
			expectedErrMsg: "No data provided",
		},
		{
			name:           "null_body",
			requestBody:    `null`,
			setupMock:      func(ms *mocks.MockTaskStore) {},
			expectedStatus: http.StatusBadRequest,
			expectedErrMsg: "No data provided",
		},
		{
			name:           "malformed_json",
			requestBody:    `{"title": "Buy milk"`,
			setupMock:      func(ms *mocks.MockTaskStore) {},
			expectedStatus: http.StatusBadRequest,
			expectedErrMsg: "Invalid request format",
		},
		{
			name:           "unknown_field_rejected",
			requestBody:    `{"title": "Buy milk", "description": "x", "due_date": "2026-09-01", "priority": "high"}`,
			setupMock:      func(ms *mocks.MockTaskStore) {},
			expectedStatus: http.StatusBadRequest,
			expectedErrMsg: "Invalid request format",
		},
		{
			name:           "missing_required_fields",
			requestBody:    `{"status": "Pending"}`,
			setupMock:      func(ms *mocks.MockTaskStore) {},
			expectedStatus: http.StatusBadRequest,
			expectedErrMsg: "Missing required fields: title, description, due_date",
		},
		{
			name:           "missing_title_only",
			requestBody:    `{"description": "2 liters", "due_date": "2026-09-01"}`,
			setupMock:      func(ms *mocks.MockTaskStore) {},
			expectedStatus: http.StatusBadRequest,
			expectedErrMsg: "Missing required fields: title",
		},
		{
			name:           "malformed_due_date",
			requestBody:    `{"title": "Buy milk", "description": "2 liters", "due_date": "01-09-2026"}`,
			setupMock:      func(ms *mocks.MockTaskStore) {},
			expectedStatus: http.StatusBadRequest,
			expectedErrMsg: "Invalid date format. Use YYYY-MM-DD",
		},
		{
			name:           "invalid_status",
			requestBody:    `{"title": "Buy milk", "description": "2 liters", "due_date": "2026-09-01", "status": "Archived"}`,
			setupMock:      func(ms *mocks.MockTaskStore) {},
			expectedStatus: http.StatusBadRequest,
			expectedErrMsg: "Invalid status. Must be one of: Pending, In Progress, Completed",
		},
		{
			name:        "store_error",
			requestBody: `{"title": "Buy milk", "description": "2 liters", "due_date": "2026-09-01"}`,
			setupMock: func(ms *mocks.MockTaskStore) {
				ms.CreateFn = func(ctx context.Context, title, description, dueDate string, status domain.TaskStatus) (*domain.Task, error) {
					return nil, errors.New("unexpected store error")
				}
			},
			expectedStatus:      http.StatusInternalServerError,
			expectedErrMsg:      "Failed to create task",
			expectedCreateCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStore := &mocks.MockTaskStore{}
			tt.setupMock(mockStore)
			handler := newTestTaskHandler(mockStore)

			req := httptest.NewRequest(http.MethodPost, "/tasks", bytes.NewBufferString(tt.requestBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.CreateTask(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var respBody map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &respBody)
			require.NoError(t, err)

			if tt.expectedErrMsg != "" {
				assert.Equal(t, tt.expectedErrMsg, respBody["error"])
			} else {
				assert.Equal(t, float64(1), respBody["id"])
				assert.Equal(t, "Buy milk", respBody["title"])
				assert.Equal(t, "2026-09-01", respBody["due_date"])
				assert.NotContains(t, respBody, "error")
			}

			// Rejected requests must never reach the store
			assert.Equal(t, tt.expectedCreateCalls, mockStore.CreateCalls.Count)
		})
	}
}

func TestTaskHandler_ListTasks(t *testing.T) {
	t.Run("empty_store_returns_empty_array", func(t *testing.T) {
		mockStore := &mocks.MockTaskStore{
			ListFn: func(ctx context.Context) ([]*domain.Task, error) {
				return []*domain.Task{}, nil
			},
		}
		handler := newTestTaskHandler(mockStore)

		req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
		w := httptest.NewRecorder()

		handler.ListTasks(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		// The body must be a JSON array, never null
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("returns_tasks_in_store_order", func(t *testing.T) {
		mockStore := &mocks.MockTaskStore{
			ListFn: func(ctx context.Context) ([]*domain.Task, error) {
				return []*domain.Task{
					{ID: 1, Title: "first", Description: "a", DueDate: "2026-09-01", Status: domain.TaskStatusPending},
					{ID: 3, Title: "third", Description: "c", DueDate: "2026-09-03", Status: domain.TaskStatusCompleted},
				}, nil
			},
		}
		handler := newTestTaskHandler(mockStore)

		req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
		w := httptest.NewRecorder()

		handler.ListTasks(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var respBody []map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &respBody))
		require.Len(t, respBody, 2)
		assert.Equal(t, float64(1), respBody[0]["id"])
		assert.Equal(t, "first", respBody[0]["title"])
		assert.Equal(t, float64(3), respBody[1]["id"])
		assert.Equal(t, "Completed", respBody[1]["status"])
	})

	t.Run("store_error", func(t *testing.T) {
		mockStore := &mocks.MockTaskStore{
			ListFn: func(ctx context.Context) ([]*domain.Task, error) {
				return nil, errors.New("unexpected store error")
			},
		}
		handler := newTestTaskHandler(mockStore)

		req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
		w := httptest.NewRecorder()

		handler.ListTasks(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var respBody map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &respBody))
		assert.Equal(t, "Failed to list tasks", respBody["error"])
	})
}

func TestTaskHandler_GetTask(t *testing.T) {
	tests := []struct {
		name             string
		pathID           string
		setupMock        func(*mocks.MockTaskStore)
		expectedStatus   int
		expectedErrMsg   string
		expectedGetCalls int
	}{
		{
			name:   "found",
			pathID: "1",
			setupMock: func(ms *mocks.MockTaskStore) {
				ms.GetByIDFn = func(ctx context.Context, id int64) (*domain.Task, error) {
					assert.Equal(t, int64(1), id)
					return sampleTask(), nil
				}
			},
			expectedStatus:   http.StatusOK,
			expectedGetCalls: 1,
		},
		{
			name:   "not_found",
			pathID: "99",
			setupMock: func(ms *mocks.MockTaskStore) {
				ms.GetByIDFn = func(ctx context.Context, id int64) (*domain.Task, error) {
					return nil, store.ErrTaskNotFound
				}
			},
			expectedStatus:   http.StatusNotFound,
			expectedErrMsg:   "Task not found",
			expectedGetCalls: 1,
		},
		{
			name:           "non_numeric_id",
			pathID:         "abc",
			setupMock:      func(ms *mocks.MockTaskStore) {},
			expectedStatus: http.StatusNotFound,
			expectedErrMsg: "Task not found",
		},
		{
			name:           "zero_id",
			pathID:         "0",
			setupMock:      func(ms *mocks.MockTaskStore) {},
			expectedStatus: http.StatusNotFound,
			expectedErrMsg: "Task not found",
		},
		{
			name:           "negative_id",
			pathID:         "-1",
			setupMock:      func(ms *mocks.MockTaskStore) {},
			expectedStatus: http.StatusNotFound,
			expectedErrMsg: "Task not found",
		},
		{
			name:   "store_error",
			pathID: "1",
			setupMock: func(ms *mocks.MockTaskStore) {
				ms.GetByIDFn = func(ctx context.Context, id int64) (*domain.Task, error) {
					return nil, errors.New("unexpected store error")
				}
			},
			expectedStatus:   http.StatusInternalServerError,
			expectedErrMsg:   "Failed to get task",
			expectedGetCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStore := &mocks.MockTaskStore{}
			tt.setupMock(mockStore)
			handler := newTestTaskHandler(mockStore)

			req := httptest.NewRequest(http.MethodGet, "/tasks/"+tt.pathID, nil)
			req = withTaskID(req, tt.pathID)
			w := httptest.NewRecorder()

			handler.GetTask(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var respBody map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &respBody))

			if tt.expectedErrMsg != "" {
				assert.Equal(t, tt.expectedErrMsg, respBody["error"])
			} else {
				assert.Equal(t, float64(1), respBody["id"])
				assert.Equal(t, "Buy milk", respBody["title"])
				assert.Equal(t, "2 liters of whole milk", respBody["description"])
				assert.Equal(t, "2026-09-01", respBody["due_date"])
				assert.Equal(t, "Pending", respBody["status"])
			}

			// Unparsable IDs are rejected before the store is consulted
			assert.Equal(t, tt.expectedGetCalls, mockStore.GetByIDCalls.Count)
		})
	}
}

func TestTaskHandler_UpdateTask(t *testing.T) {
	tests := []struct {
		name                string
		pathID              string
		requestBody         string
		setupMock           func(*mocks.MockTaskStore)
		expectedStatus      int
		expectedErrMsg      string
		expectedGetCalls    int
		expectedUpdateCalls int
	}{
		{
			name:        "successful_partial_update",
			pathID:      "1",
			requestBody: `{"status": "Completed"}`,
			setupMock: func(ms *mocks.MockTaskStore) {
				ms.GetByIDFn = func(ctx context.Context, id int64) (*domain.Task, error) {
					return sampleTask(), nil
				}
				ms.UpdateFn = func(ctx context.Context, id int64, update domain.TaskUpdate) (*domain.Task, error) {
					assert.Equal(t, int64(1), id)
					assert.Nil(t, update.Title)
					require.NotNil(t, update.Status)
					assert.Equal(t, domain.TaskStatusCompleted, *update.Status)

					task := sampleTask()
					task.Status = domain.TaskStatusCompleted
					return task, nil
				}
			},
			expectedStatus:      http.StatusOK,
			expectedGetCalls:    1,
			expectedUpdateCalls: 1,
		},
		{
			name:           "empty_body_rejected_before_lookup",
			pathID:         "99",
			requestBody:    ``,
			setupMock:      func(ms *mocks.MockTaskStore) {},
			expectedStatus: http.StatusBadRequest,
			expectedErrMsg: "No data provided",
		},
		{
			name:           "empty_object_rejected_before_lookup",
			pathID:         "99",
			requestBody:    `{}`,
			setupMock:      func(ms *mocks.MockTaskStore) {},
			expectedStatus: http.StatusBadRequest,
			expectedErrMsg: "No data provided",
		},
		{
			name:           "malformed_json",
			pathID:         "1",
			requestBody:    `{"status": }`,
			setupMock:      func(ms *mocks.MockTaskStore) {},
			expectedStatus: http.StatusBadRequest,
			expectedErrMsg: "Invalid request format",
		},
		{
			name:           "unknown_field_rejected",
			pathID:         "1",
			requestBody:    `{"status": "Completed", "priority": "high"}`,
			setupMock:      func(ms *mocks.MockTaskStore) {},
			expectedStatus: http.StatusBadRequest,
			expectedErrMsg: "Invalid request format",
		},
		{
			name:        "unknown_id_reported_before_field_validation",
			pathID:      "99",
			requestBody: `{"title": ""}`,
			setupMock: func(ms *mocks.MockTaskStore) {
				ms.GetByIDFn = func(ctx context.Context, id int64) (*domain.Task, error) {
					return nil, store.ErrTaskNotFound
				}
			},
			expectedStatus:   http.StatusNotFound,
			expectedErrMsg:   "Task not found",
			expectedGetCalls: 1,
		},
		{
			name:           "non_numeric_id",
			pathID:         "abc",
			requestBody:    `{"status": "Completed"}`,
			setupMock:      func(ms *mocks.MockTaskStore) {},
			expectedStatus: http.StatusNotFound,
			expectedErrMsg: "Task not found",
		},
		{
			name:        "empty_title_rejected",
			pathID:      "1",
			requestBody: `{"title": ""}`,
			setupMock: func(ms *mocks.MockTaskStore) {
				ms.GetByIDFn = func(ctx context.Context, id int64) (*domain.Task, error) {
					return sampleTask(), nil
				}
			},
			expectedStatus:   http.StatusBadRequest,
			expectedErrMsg:   "Title cannot be empty",
			expectedGetCalls: 1,
		},
		{
			name:        "malformed_due_date",
			pathID:      "1",
			requestBody: `{"due_date": "15-10-2026"}`,
			setupMock: func(ms *mocks.MockTaskStore) {
				ms.GetByIDFn = func(ctx context.Context, id int64) (*domain.Task, error) {
					return sampleTask(), nil
				}
			},
			expectedStatus:   http.StatusBadRequest,
			expectedErrMsg:   "Invalid date format. Use YYYY-MM-DD",
			expectedGetCalls: 1,
		},
		{
			name:        "invalid_status",
			pathID:      "1",
			requestBody: `{"status": "Done"}`,
			setupMock: func(ms *mocks.MockTaskStore) {
				ms.GetByIDFn = func(ctx context.Context, id int64) (*domain.Task, error) {
					return sampleTask(), nil
				}
			},
			expectedStatus:   http.StatusBadRequest,
			expectedErrMsg:   "Invalid status. Must be one of: Pending, In Progress, Completed",
			expectedGetCalls: 1,
		},
		{
			name:        "task_deleted_between_lookup_and_update",
			pathID:      "1",
			requestBody: `{"status": "Completed"}`,
			setupMock: func(ms *mocks.MockTaskStore) {
				ms.GetByIDFn = func(ctx context.Context, id int64) (*domain.Task, error) {
					return sampleTask(), nil
				}
				ms.UpdateFn = func(ctx context.Context, id int64, update domain.TaskUpdate) (*domain.Task, error) {
					return nil, store.ErrTaskNotFound
				}
			},
			expectedStatus:      http.StatusNotFound,
			expectedErrMsg:      "Task not found",
			expectedGetCalls:    1,
			expectedUpdateCalls: 1,
		},
		{
			name:        "store_error",
			pathID:      "1",
			requestBody: `{"status": "Completed"}`,
			setupMock: func(ms *mocks.MockTaskStore) {
				ms.GetByIDFn = func(ctx context.Context, id int64) (*domain.Task, error) {
					return sampleTask(), nil
				}
				ms.UpdateFn = func(ctx context.Context, id int64, update domain.TaskUpdate) (*domain.Task, error) {
					return nil, errors.New("unexpected store error")
				}
			},
			expectedStatus:      http.StatusInternalServerError,
			expectedErrMsg:      "Failed to update task",
			expectedGetCalls:    1,
			expectedUpdateCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStore := &mocks.MockTaskStore{}
			tt.setupMock(mockStore)
			handler := newTestTaskHandler(mockStore)

			req := httptest.NewRequest(
				http.MethodPut,
				"/tasks/"+tt.pathID,
				bytes.NewBufferString(tt.requestBody),
			)
			req.Header.Set("Content-Type", "application/json")
			req = withTaskID(req, tt.pathID)
			w := httptest.NewRecorder()

			handler.UpdateTask(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var respBody map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &respBody))

			if tt.expectedErrMsg != "" {
				assert.Equal(t, tt.expectedErrMsg, respBody["error"])
			} else {
				assert.Equal(t, float64(1), respBody["id"])
				assert.Equal(t, "Completed", respBody["status"])
				// Untouched fields survive the partial update
				assert.Equal(t, "Buy milk", respBody["title"])
			}

			assert.Equal(t, tt.expectedGetCalls, mockStore.GetByIDCalls.Count)
			assert.Equal(t, tt.expectedUpdateCalls, mockStore.UpdateCalls.Count)
		})
	}
}

func TestTaskHandler_DeleteTask(t *testing.T) {
	tests := []struct {
		name                string
		pathID              string
		setupMock           func(*mocks.MockTaskStore)
		expectedStatus      int
		expectedErrMsg      string
		expectedMessage     string
		expectedDeleteCalls int
	}{
		{
			name:   "successful_deletion",
			pathID: "1",
			setupMock: func(ms *mocks.MockTaskStore) {
				ms.DeleteFn = func(ctx context.Context, id int64) error {
					assert.Equal(t, int64(1), id)
					return nil
				}
			},
			expectedStatus:      http.StatusOK,
			expectedMessage:     "Task deleted successfully",
			expectedDeleteCalls: 1,
		},
		{
			name:   "not_found",
			pathID: "99",
			setupMock: func(ms *mocks.MockTaskStore) {
				ms.DeleteFn = func(ctx context.Context, id int64) error {
					return store.ErrTaskNotFound
				}
			},
			expectedStatus:      http.StatusNotFound,
			expectedErrMsg:      "Task not found",
			expectedDeleteCalls: 1,
		},
		{
			name:           "non_numeric_id",
			pathID:         "abc",
			setupMock:      func(ms *mocks.MockTaskStore) {},
			expectedStatus: http.StatusNotFound,
			expectedErrMsg: "Task not found",
		},
		{
			name:   "store_error",
			pathID: "1",
			setupMock: func(ms *mocks.MockTaskStore) {
				ms.DeleteFn = func(ctx context.Context, id int64) error {
					return errors.New("unexpected store error")
				}
			},
			expectedStatus:      http.StatusInternalServerError,
			expectedErrMsg:      "Failed to delete task",
			expectedDeleteCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStore := &mocks.MockTaskStore{}
			tt.setupMock(mockStore)
			handler := newTestTaskHandler(mockStore)

			req := httptest.NewRequest(http.MethodDelete, "/tasks/"+tt.pathID, nil)
			req = withTaskID(req, tt.pathID)
			w := httptest.NewRecorder()

			handler.DeleteTask(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var respBody map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &respBody))

			if tt.expectedErrMsg != "" {
				assert.Equal(t, tt.expectedErrMsg, respBody["error"])
			} else {
				assert.Equal(t, tt.expectedMessage, respBody["message"])
			}

			assert.Equal(t, tt.expectedDeleteCalls, mockStore.DeleteCalls.Count)
		})
	}
}

func TestTaskHandler_TaskToResponse(t *testing.T) {
	task := &domain.Task{
		ID:          7,
		Title:       "Water plants",
		Description: "Including the balcony",
		DueDate:     "2026-08-30",
		Status:      domain.TaskStatusInProgress,
	}

	response := taskToResponse(task)

	assert.Equal(t, int64(7), response.ID)
	assert.Equal(t, "Water plants", response.Title)
	assert.Equal(t, "Including the balcony", response.Description)
	assert.Equal(t, "2026-08-30", response.DueDate)
	assert.Equal(t, "In Progress", response.Status)
}

func TestTaskHandler_NewTaskHandler(t *testing.T) {
	mockStore := &mocks.MockTaskStore{}

	t.Run("with_logger", func(t *testing.T) {
		logger := slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), nil))
		handler := NewTaskHandler(mockStore, logger)

		assert.NotNil(t, handler)
		assert.Equal(t, mockStore, handler.taskStore)
		assert.NotNil(t, handler.logger)
	})

	t.Run("without_logger", func(t *testing.T) {
		// Test for panic with nil logger
		assert.Panics(t, func() {
			NewTaskHandler(mockStore, nil)
		})
	})
}
