// Package store defines the persistence contract for tasks and the errors
// shared by every implementation. The HTTP and service layers depend only on
// these interfaces, never on a particular database or mapper.
package store
