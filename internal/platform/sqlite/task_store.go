package sqlite

import (
	"context"
	"errors"
	"fmt"

	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/store"
	"gorm.io/gorm"
)

// taskRow is the gorm model for the tasks table. The schema itself is owned
// by the goose files in /migrations.
type taskRow struct {
	ID        int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Title     string `gorm:"column:title"`
	Color     string `gorm:"column:color"`
	Completed bool   `gorm:"column:completed"`
}

// TableName implements gorm's tabler interface.
func (taskRow) TableName() string {
	return "tasks"
}

func (r taskRow) toDomain() domain.Task {
	return domain.Task{
		ID:        r.ID,
		Title:     r.Title,
		Color:     r.Color,
		Completed: r.Completed,
	}
}

// TaskStore implements store.TaskStore using gorm.
type TaskStore struct {
	db *gorm.DB
}

// Compile-time check to ensure TaskStore implements store.TaskStore
var _ store.TaskStore = (*TaskStore)(nil)

// NewTaskStore creates a new gorm-backed TaskStore.
func NewTaskStore(db *gorm.DB) (*TaskStore, error) {
	if db == nil {
		return nil, errors.New("db is required")
	}
	return &TaskStore{db: db}, nil
}

// List implements store.TaskStore.List
func (s *TaskStore) List(ctx context.Context) ([]domain.Task, error) {
	var rows []taskRow
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, mapError("list", err)
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, row.toDomain())
	}
	return tasks, nil
}

// Create implements store.TaskStore.Create
func (s *TaskStore) Create(ctx context.Context, task *domain.Task) error {
	row := taskRow{
		Title:     task.Title,
		Color:     task.Color,
		Completed: task.Completed,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return mapError("create", err)
	}

	task.ID = row.ID
	return nil
}

// GetByID implements store.TaskStore.GetByID
func (s *TaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	var row taskRow
	if err := s.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error; err != nil {
		return nil, mapError("get", err)
	}

	task := row.toDomain()
	return &task, nil
}

// Update implements store.TaskStore.Update
// The three mutable columns are always written, including zero values, so an
// update is a full replacement.
func (s *TaskStore) Update(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	var row taskRow
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&taskRow{}).
			Where("id = ?", task.ID).
			Updates(map[string]interface{}{
				"title":     task.Title,
				"color":     task.Color,
				"completed": task.Completed,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return store.ErrTaskNotFound
		}
		return tx.Where("id = ?", task.ID).Take(&row).Error
	})
	if err != nil {
		return nil, mapError("update", err)
	}

	updated := row.toDomain()
	return &updated, nil
}

// Delete implements store.TaskStore.Delete
func (s *TaskStore) Delete(ctx context.Context, id int64) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&taskRow{})
	if result.Error != nil {
		return mapError("delete", result.Error)
	}
	if result.RowsAffected == 0 {
		return store.ErrTaskNotFound
	}
	return nil
}

// Ping implements store.TaskStore.Ping
func (s *TaskStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return mapError("ping", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return mapError("ping", err)
	}
	return nil
}

// Close implements store.TaskStore.Close
func (s *TaskStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to access sqlite connection pool: %w", err)
	}
	return sqlDB.Close()
}

// mapError converts gorm errors into store errors. Not-found conditions become
// store.ErrTaskNotFound; everything else is wrapped in a StoreError.
func mapError(operation string, err error) error {
	switch {
	case errors.Is(err, store.ErrTaskNotFound):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return store.ErrTaskNotFound
	default:
		return store.NewStoreError("task", operation, "sqlite query failed", err)
	}
}
