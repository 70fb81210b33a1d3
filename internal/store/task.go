package store

import (
	"context"

	"github.com/phrazzld/tasks-api/internal/domain"
)

// TaskStore defines the persistence operations for tasks.
// Implementations must be safe for concurrent use; they impose no locking of
// their own beyond what the database provides.
type TaskStore interface {
	// List returns every task ordered by ascending ID.
	// An empty store yields an empty, non-nil slice.
	List(ctx context.Context) ([]domain.Task, error)

	// Create inserts a new task and sets its ID to the store-assigned value.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID returns the task with the given ID.
	// Returns ErrTaskNotFound if no such task exists.
	GetByID(ctx context.Context, id int64) (*domain.Task, error)

	// Update overwrites title, color and completed of the task with task.ID
	// and returns the stored row.
	// Returns ErrTaskNotFound if no such task exists.
	Update(ctx context.Context, task *domain.Task) (*domain.Task, error)

	// Delete removes the task with the given ID.
	// Returns ErrTaskNotFound if no such task exists.
	Delete(ctx context.Context, id int64) error

	// Ping verifies that the underlying database is reachable.
	Ping(ctx context.Context) error

	// Close releases the underlying database resources.
	Close() error
}
