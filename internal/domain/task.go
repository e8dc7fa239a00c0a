package domain

// Task represents a single tracked task in the domain model.
// The persisted field names and date formats are stable across versions;
// optional fields round-trip their absence exactly.
type Task struct {
	Name         string `json:"name"`
	CreationDate Date   `json:"creation_date"`
	DueDate      *Date  `json:"due_date,omitempty"`
	Color        *Color `json:"color,omitempty"`
	Note         string `json:"note"`
}

// NewTask creates a task with the given name and creation date. Due date
// and color start unset and the note starts empty.
func NewTask(name string, creationDate Date) Task {
	return Task{
		Name:         name,
		CreationDate: creationDate,
	}
}

// HasNote reports whether the task carries a note.
func (t Task) HasNote() bool {
	return t.Note != ""
}

// IsOverdue reports whether the task has a due date earlier than today.
func (t Task) IsOverdue(today Date) bool {
	return t.DueDate != nil && t.DueDate.Before(today)
}

// String returns the task name for display purposes.
func (t Task) String() string {
	return t.Name
}
