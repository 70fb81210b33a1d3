package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	tests := []struct {
		name  string
		title string
		color string
	}{
		{name: "valid task", title: "Buy milk", color: "blue"},
		{name: "hex color", title: "Water plants", color: "#00ff00"},
		{name: "empty title", title: "", color: "blue"},
		{name: "empty color", title: "Buy milk", color: ""},
		{name: "long title", title: strings.Repeat("a", 300), color: "blue"},
		{name: "multi-byte text", title: strings.Repeat("é", 500), color: "vert"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := NewTask(tt.title, tt.color)

			require.NotNil(t, task)
			assert.Zero(t, task.ID, "unsaved task should have no ID")
			assert.Equal(t, tt.title, task.Title)
			assert.Equal(t, tt.color, task.Color)
			assert.False(t, task.Completed, "new tasks start incomplete")
		})
	}
}

func TestTaskReplace(t *testing.T) {
	task := &Task{ID: 7, Title: "Buy milk", Color: "blue"}

	task.Replace("Buy bread", "green", true)
	assert.Equal(t, Task{ID: 7, Title: "Buy bread", Color: "green", Completed: true}, *task)

	// Omitted fields arrive as zero values and overwrite the stored ones.
	task.Replace("", "", false)
	assert.Equal(t, Task{ID: 7}, *task)
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("id", "has invalid format", ErrInvalidID)

	assert.Equal(t, "id has invalid format", err.Error())
	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, err, ErrInvalidID)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "id", ve.Field)
}
