package api

// CreateTaskRequest represents the request body for creating a new task.
// A client-supplied completed flag is ignored; new tasks start incomplete.
// Missing fields decode as empty strings and are stored as such.
type CreateTaskRequest struct {
	Title string `json:"title"`
	Color string `json:"color"`
}

// UpdateTaskRequest represents the request body for replacing a task.
// The update is a full replace: any omitted field overwrites the stored
// value with its zero value.
type UpdateTaskRequest struct {
	Title     string `json:"title"`
	Color     string `json:"color"`
	Completed bool   `json:"completed"`
}
