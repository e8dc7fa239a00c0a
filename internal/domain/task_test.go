package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	created := NewDate(2025, time.August, 24)
	task := NewTask("write report", created)

	assert.Equal(t, "write report", task.Name)
	assert.True(t, created.Equal(task.CreationDate))
	assert.Nil(t, task.DueDate)
	assert.Nil(t, task.Color)
	assert.Equal(t, "", task.Note)
}

func TestTask_HasNote(t *testing.T) {
	task := NewTask("test", NewDate(2025, time.August, 24))
	assert.False(t, task.HasNote())

	task.Note = "line one"
	assert.True(t, task.HasNote())
}

func TestTask_IsOverdue(t *testing.T) {
	today := NewDate(2025, time.August, 24)

	tests := []struct {
		name     string
		dueDate  *Date
		expected bool
	}{
		{
			name:     "no due date is never overdue",
			dueDate:  nil,
			expected: false,
		},
		{
			name:     "past due date is overdue",
			dueDate:  datePtr(NewDate(2025, time.August, 23)),
			expected: true,
		},
		{
			name:     "due today is not overdue",
			dueDate:  datePtr(today),
			expected: false,
		},
		{
			name:     "future due date is not overdue",
			dueDate:  datePtr(NewDate(2025, time.September, 1)),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := NewTask("test", today)
			task.DueDate = tt.dueDate
			assert.Equal(t, tt.expected, task.IsOverdue(today))
		})
	}
}

func TestTask_JSONOmitsUnsetOptionals(t *testing.T) {
	task := NewTask("bare", NewDate(2025, time.August, 24))

	data, err := json.Marshal(task)
	require.NoError(t, err)

	assert.JSONEq(t, `{"name":"bare","creation_date":"2025-08-24","note":""}`, string(data))
	assert.NotContains(t, string(data), "due_date")
	assert.NotContains(t, string(data), "color")
}

func TestTask_JSONRoundTrip(t *testing.T) {
	due := NewDate(2025, time.December, 31)
	color := ColorBlue
	task := Task{
		Name:         "full task",
		CreationDate: NewDate(2025, time.August, 24),
		DueDate:      &due,
		Color:        &color,
		Note:         "first line\nsecond line",
	}

	data, err := json.Marshal(task)
	require.NoError(t, err)

	var decoded Task
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, task.Name, decoded.Name)
	assert.True(t, task.CreationDate.Equal(decoded.CreationDate))
	require.NotNil(t, decoded.DueDate)
	assert.True(t, due.Equal(*decoded.DueDate))
	require.NotNil(t, decoded.Color)
	assert.Equal(t, ColorBlue, *decoded.Color)
	assert.Equal(t, "first line\nsecond line", decoded.Note)
}

func datePtr(d Date) *Date {
	return &d
}
