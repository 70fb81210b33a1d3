package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/store"
)

// TaskStore implements the store.TaskStore interface using PostgreSQL
type TaskStore struct {
	db    store.DBTX
	close func() error
	ping  func(ctx context.Context) error
}

// Compile-time check to ensure TaskStore implements store.TaskStore
var _ store.TaskStore = (*TaskStore)(nil)

// NewTaskStore creates a new TaskStore. When db is a *sql.DB the store also
// owns its lifecycle: Close closes the pool.
func NewTaskStore(db store.DBTX) (*TaskStore, error) {
	if db == nil {
		return nil, errors.New("db is required")
	}

	s := &TaskStore{
		db:    db,
		close: func() error { return nil },
		ping:  func(context.Context) error { return nil },
	}
	if pool, ok := db.(*sql.DB); ok {
		s.close = pool.Close
		s.ping = pool.PingContext
	}
	return s, nil
}

// List implements store.TaskStore.List
func (s *TaskStore) List(ctx context.Context) ([]domain.Task, error) {
	query := `
		SELECT id, title, color, completed
		FROM tasks
		ORDER BY id ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, wrapStoreError("list", err)
	}
	defer func() { _ = rows.Close() }()

	tasks := make([]domain.Task, 0)
	for rows.Next() {
		var task domain.Task
		if err := rows.Scan(&task.ID, &task.Title, &task.Color, &task.Completed); err != nil {
			return nil, wrapStoreError("list", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStoreError("list", err)
	}

	return tasks, nil
}

// Create implements store.TaskStore.Create
func (s *TaskStore) Create(ctx context.Context, task *domain.Task) error {
	query := `
		INSERT INTO tasks (title, color, completed)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query, task.Title, task.Color, task.Completed).Scan(&task.ID)
	if err != nil {
		// RETURNING always yields a row on success, so ErrNoRows is not a
		// not-found condition here.
		return store.NewStoreError("task", "create", "postgres query failed", MapError(err))
	}
	return nil
}

// GetByID implements store.TaskStore.GetByID
func (s *TaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	query := `
		SELECT id, title, color, completed
		FROM tasks
		WHERE id = $1
	`

	var task domain.Task
	err := s.db.QueryRowContext(ctx, query, id).
		Scan(&task.ID, &task.Title, &task.Color, &task.Completed)
	if err != nil {
		return nil, wrapStoreError("get", err)
	}
	return &task, nil
}

// Update implements store.TaskStore.Update
func (s *TaskStore) Update(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	query := `
		UPDATE tasks
		SET title = $1, color = $2, completed = $3
		WHERE id = $4
		RETURNING id, title, color, completed
	`

	var updated domain.Task
	err := s.db.QueryRowContext(ctx, query, task.Title, task.Color, task.Completed, task.ID).
		Scan(&updated.ID, &updated.Title, &updated.Color, &updated.Completed)
	if err != nil {
		return nil, wrapStoreError("update", err)
	}
	return &updated, nil
}

// Delete implements store.TaskStore.Delete
func (s *TaskStore) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return wrapStoreError("delete", err)
	}
	return CheckRowsAffected(result)
}

// Ping implements store.TaskStore.Ping
func (s *TaskStore) Ping(ctx context.Context) error {
	if err := s.ping(ctx); err != nil {
		return store.NewStoreError("task", "ping", "postgres ping failed", err)
	}
	return nil
}

// Close implements store.TaskStore.Close
func (s *TaskStore) Close() error {
	return s.close()
}
