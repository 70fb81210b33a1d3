// Package domain contains the core business entities of the task service and
// the errors used to report malformed input, independent of the HTTP layer and
// of any particular database.
package domain
