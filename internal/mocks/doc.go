// Package mocks provides centralized mock implementations for testing.
//
// Two styles are available:
//
//   - Function-field mocks (MockTaskStore) with call tracking, for tests that
//     need to script behaviour per method or inspect the arguments passed.
//   - testify/mock mocks (TestifyMockTaskService), for tests that declare
//     expectations with On(...).Return(...) and verify them with
//     AssertExpectations.
//
// Usage:
//
//	mockStore := &mocks.MockTaskStore{
//	    GetByIDFn: func(ctx context.Context, id int64) (*domain.Task, error) {
//	        return nil, store.ErrTaskNotFound
//	    },
//	}
//
// When adding a new mock to this package, create a new file named after the
// interface being mocked.
package mocks
