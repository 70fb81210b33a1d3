package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/store"
)

// MockTaskStore implements store.TaskStore for testing.
// Each method delegates to its function field when set and otherwise
// returns the default response values.
type MockTaskStore struct {
	// Custom behavior functions
	ListFn    func(ctx context.Context) ([]domain.Task, error)
	CreateFn  func(ctx context.Context, task *domain.Task) error
	GetByIDFn func(ctx context.Context, id int64) (*domain.Task, error)
	UpdateFn  func(ctx context.Context, task *domain.Task) (*domain.Task, error)
	DeleteFn  func(ctx context.Context, id int64) error
	PingFn    func(ctx context.Context) error
	CloseFn   func() error

	// Default response values
	Tasks []domain.Task
	Task  *domain.Task
	Err   error

	mu    sync.Mutex
	calls map[string]int
	ids   []int64
}

// Compile-time check to ensure MockTaskStore implements store.TaskStore
var _ store.TaskStore = (*MockTaskStore)(nil)

func (m *MockTaskStore) record(method string, id int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.calls == nil {
		m.calls = make(map[string]int)
	}
	m.calls[method]++
	if id != 0 {
		m.ids = append(m.ids, id)
	}
}

// Calls returns how many times method was invoked.
func (m *MockTaskStore) Calls(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[method]
}

// IDs returns the task IDs passed to GetByID, Update and Delete, in call order.
func (m *MockTaskStore) IDs() []int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]int64(nil), m.ids...)
}

// List implements store.TaskStore.List
func (m *MockTaskStore) List(ctx context.Context) ([]domain.Task, error) {
	m.record("List", 0)
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return m.Tasks, m.Err
}

// Create implements store.TaskStore.Create
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	m.record("Create", 0)
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}
	return m.Err
}

// GetByID implements store.TaskStore.GetByID
func (m *MockTaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	m.record("GetByID", id)
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return m.Task, m.Err
}

// Update implements store.TaskStore.Update
func (m *MockTaskStore) Update(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	m.record("Update", task.ID)
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, task)
	}
	return m.Task, m.Err
}

// Delete implements store.TaskStore.Delete
func (m *MockTaskStore) Delete(ctx context.Context, id int64) error {
	m.record("Delete", id)
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.Err
}

// Ping implements store.TaskStore.Ping
func (m *MockTaskStore) Ping(ctx context.Context) error {
	m.record("Ping", 0)
	if m.PingFn != nil {
		return m.PingFn(ctx)
	}
	return m.Err
}

// Close implements store.TaskStore.Close
func (m *MockTaskStore) Close() error {
	m.record("Close", 0)
	if m.CloseFn != nil {
		return m.CloseFn()
	}
	return nil
}
