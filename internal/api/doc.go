// Package api handles incoming HTTP requests for tasks: request decoding
// and path parsing, dispatch to the task service, and the response envelope. It
// acts as an adapter between external clients and internal/service,
// translating HTTP concerns to business operations and service errors back
// to status codes.
package api
