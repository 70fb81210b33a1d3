package domain

// Task is the single entity tracked by the service. ID is assigned by the
// store on creation and never changes afterwards.
//
// Title and color are free-form: empty and arbitrarily long values are
// stored as given.
type Task struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Color     string `json:"color"`
	Completed bool   `json:"completed"`
}

// NewTask creates a Task that has not been persisted yet.
// New tasks always start out incomplete.
func NewTask(title, color string) *Task {
	return &Task{
		Title:     title,
		Color:     color,
		Completed: false,
	}
}

// Replace overwrites every mutable field of the task. Updates are full
// replacements, never partial merges.
func (t *Task) Replace(title, color string, completed bool) {
	t.Title = title
	t.Color = color
	t.Completed = completed
}
