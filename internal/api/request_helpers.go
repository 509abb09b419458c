package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/tasks-api/internal/store"
)

// getPathTaskID extracts the numeric task ID from the URL path parameters.
// A missing, non-numeric, or non-positive value is reported as
// store.ErrTaskNotFound: such a value can never name a stored task, and the
// route contract answers unknown IDs with 404.
//
// Returns:
//   - (id, nil): The parsed ID if it is a positive integer
//   - (0, store.ErrTaskNotFound): If the parameter cannot name a task
func getPathTaskID(r *http.Request) (int64, error) {
	pathParam := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil || id < 1 {
		return 0, store.ErrTaskNotFound
	}

	return id, nil
}
