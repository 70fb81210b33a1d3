package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/tasks-api/internal/domain"
)

// taskIDParam is the chi URL parameter holding the task ID.
const taskIDParam = "id"

// getPathTaskID extracts the task ID from the URL path. The whole segment
// must be a base-10 integer; a numeric prefix such as "12abc" is rejected
// rather than read as 12. Failures are reported as domain.ErrInvalidID.
func getPathTaskID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, taskIDParam)
	if raw == "" {
		return 0, domain.NewValidationError(taskIDParam, "is required", domain.ErrInvalidID)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domain.NewValidationError(taskIDParam, "has invalid format", domain.ErrInvalidID)
	}

	return id, nil
}
