// Package service contains the application use cases for tasks. It sits
// between the HTTP handlers in internal/api and the persistence interfaces
// in internal/store.
//
// Each operation performs exactly one store call. Errors are classified
// before they leave the package:
//
//   - ErrTaskNotFound when the task does not exist
//   - *TaskServiceError for every other failure, with the operation name
//
// Callers use errors.Is/errors.As to pick a response; the API layer maps
// these to HTTP status codes.
package service
