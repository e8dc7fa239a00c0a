package tasks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo/internal/domain"
	"todo/internal/errors"
)

func fixedNow(t *testing.T, year int, month time.Month, day int) {
	t.Helper()
	orig := timeNow
	timeNow = func() time.Time {
		return time.Date(year, month, day, 12, 0, 0, 0, time.Local)
	}
	t.Cleanup(func() { timeNow = orig })
}

func makeTask(name string, color *domain.Color, due *domain.Date) domain.Task {
	task := domain.NewTask(name, domain.NewDate(2024, time.January, 1))
	task.Color = color
	task.DueDate = due
	return task
}

func colorPtr(c domain.Color) *domain.Color {
	return &c
}

func datePtr(d domain.Date) *domain.Date {
	return &d
}

func TestList_Create(t *testing.T) {
	fixedNow(t, 2025, time.August, 24)

	tests := []struct {
		name         string
		args         []string
		expectedName string
		wantErr      bool
	}{
		{
			name:         "creates task from single token",
			args:         []string{"test"},
			expectedName: "test",
		},
		{
			name:         "joins multiple tokens into the name",
			args:         []string{"test", "2"},
			expectedName: "test 2",
		},
		{
			name:    "rejects missing name",
			args:    []string{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := List{}
			id, err := list.Create(tt.args)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeMissingArgument))
				assert.Len(t, list, 0)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, id)
			require.Len(t, list, 1)
			assert.Equal(t, tt.expectedName, list[0].Name)
			assert.Equal(t, "2025-08-24", list[0].CreationDate.String())
			assert.Nil(t, list[0].DueDate)
			assert.Nil(t, list[0].Color)
			assert.Equal(t, "", list[0].Note)
		})
	}
}

func TestList_CreateReturnsNewID(t *testing.T) {
	fixedNow(t, 2025, time.August, 24)

	list := List{makeTask("existing", nil, nil)}
	id, err := list.Create([]string{"second"})
	require.NoError(t, err)
	assert.Equal(t, 2, id)
	assert.Len(t, list, 2)
}

func TestList_Rename(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		expectedType errors.ErrorType
		wantErr      bool
	}{
		{
			name: "renames task",
			args: []string{"1", "test", "renamed"},
		},
		{
			name:         "id out of range",
			args:         []string{"2", "new name"},
			wantErr:      true,
			expectedType: errors.ErrorTypeTaskNotFound,
		},
		{
			name:         "non-numeric id",
			args:         []string{"foobar"},
			wantErr:      true,
			expectedType: errors.ErrorTypeInvalidTaskID,
		},
		{
			name:         "missing id",
			args:         []string{},
			wantErr:      true,
			expectedType: errors.ErrorTypeMissingArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := List{makeTask("test", nil, nil)}
			oldName, err := list.Rename(tt.args)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorType(err, tt.expectedType))
				assert.Equal(t, "test", list[0].Name)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "test", oldName)
			assert.Equal(t, "test renamed", list[0].Name)
		})
	}
}

func TestList_RenameToEmptyIsAllowed(t *testing.T) {
	list := List{makeTask("test", nil, nil)}
	oldName, err := list.Rename([]string{"1"})
	require.NoError(t, err)
	assert.Equal(t, "test", oldName)
	assert.Equal(t, "", list[0].Name)
}

func TestList_Delete(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		expectedType errors.ErrorType
		wantErr      bool
	}{
		{
			name: "deletes task",
			args: []string{"1"},
		},
		{
			name:         "id out of range",
			args:         []string{"2"},
			wantErr:      true,
			expectedType: errors.ErrorTypeTaskNotFound,
		},
		{
			name:         "non-numeric id",
			args:         []string{"foobar"},
			wantErr:      true,
			expectedType: errors.ErrorTypeInvalidTaskID,
		},
		{
			name:         "trailing arguments",
			args:         []string{"1", "more"},
			wantErr:      true,
			expectedType: errors.ErrorTypeTooManyArguments,
		},
		{
			name:         "missing id",
			args:         []string{},
			wantErr:      true,
			expectedType: errors.ErrorTypeMissingArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := List{makeTask("test", nil, nil)}
			name, err := list.Delete(tt.args)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorType(err, tt.expectedType))
				assert.Len(t, list, 1)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "test", name)
			assert.Len(t, list, 0)
		})
	}
}

func TestList_DeleteShiftsLaterIDs(t *testing.T) {
	list := List{
		makeTask("first", nil, nil),
		makeTask("second", nil, nil),
		makeTask("third", nil, nil),
	}

	name, err := list.Delete([]string{"2"})
	require.NoError(t, err)
	assert.Equal(t, "second", name)

	require.Len(t, list, 2)
	assert.Equal(t, "first", list[0].Name)
	assert.Equal(t, "third", list[1].Name)
}

func TestList_SetColor(t *testing.T) {
	tests := []struct {
		name          string
		args          []string
		expectedColor *domain.Color
		expectedType  errors.ErrorType
		wantErr       bool
	}{
		{
			name:          "sets red",
			args:          []string{"1", "red"},
			expectedColor: colorPtr(domain.ColorRed),
		},
		{
			name:          "sets yellow",
			args:          []string{"1", "yellow"},
			expectedColor: colorPtr(domain.ColorYellow),
		},
		{
			name:          "sets green",
			args:          []string{"1", "green"},
			expectedColor: colorPtr(domain.ColorGreen),
		},
		{
			name:          "sets blue",
			args:          []string{"1", "blue"},
			expectedColor: colorPtr(domain.ColorBlue),
		},
		{
			name:          "sets purple",
			args:          []string{"1", "purple"},
			expectedColor: colorPtr(domain.ColorPurple),
		},
		{
			name:          "clear unsets the color",
			args:          []string{"1", "clear"},
			expectedColor: nil,
		},
		{
			name:         "unknown color",
			args:         []string{"1", "orange"},
			wantErr:      true,
			expectedType: errors.ErrorTypeInvalidColor,
		},
		{
			name:         "id out of range",
			args:         []string{"2", "red"},
			wantErr:      true,
			expectedType: errors.ErrorTypeTaskNotFound,
		},
		{
			name:         "non-numeric id",
			args:         []string{"foobar", "red"},
			wantErr:      true,
			expectedType: errors.ErrorTypeInvalidTaskID,
		},
		{
			name:         "trailing arguments",
			args:         []string{"1", "red", "more"},
			wantErr:      true,
			expectedType: errors.ErrorTypeTooManyArguments,
		},
		{
			name:         "missing color token",
			args:         []string{"1"},
			wantErr:      true,
			expectedType: errors.ErrorTypeMissingArgument,
		},
		{
			name:         "missing id",
			args:         []string{},
			wantErr:      true,
			expectedType: errors.ErrorTypeMissingArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			initial := domain.ColorGreen
			list := List{makeTask("test", &initial, nil)}
			name, color, err := list.SetColor(tt.args)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorType(err, tt.expectedType))
				require.NotNil(t, list[0].Color)
				assert.Equal(t, domain.ColorGreen, *list[0].Color)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "test", name)
			assert.Equal(t, tt.expectedColor, color)
			assert.Equal(t, tt.expectedColor, list[0].Color)
		})
	}
}

func TestList_SetDueDate(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		expectedType errors.ErrorType
		wantErr      bool
	}{
		{
			name: "sets due date",
			args: []string{"1", "2025-12-12"},
		},
		{
			name:         "rejects malformed date",
			args:         []string{"1", "20251212"},
			wantErr:      true,
			expectedType: errors.ErrorTypeInvalidDate,
		},
		{
			name:         "id out of range",
			args:         []string{"2", "2025-12-12"},
			wantErr:      true,
			expectedType: errors.ErrorTypeTaskNotFound,
		},
		{
			name:         "non-numeric id",
			args:         []string{"foobar", "2025-12-12"},
			wantErr:      true,
			expectedType: errors.ErrorTypeInvalidTaskID,
		},
		{
			name:         "trailing arguments",
			args:         []string{"1", "2025-12-12", "more"},
			wantErr:      true,
			expectedType: errors.ErrorTypeTooManyArguments,
		},
		{
			name:         "missing date token",
			args:         []string{"1"},
			wantErr:      true,
			expectedType: errors.ErrorTypeMissingArgument,
		},
		{
			name:         "missing id",
			args:         []string{},
			wantErr:      true,
			expectedType: errors.ErrorTypeMissingArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := List{makeTask("test", nil, nil)}
			name, err := list.SetDueDate(tt.args)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorType(err, tt.expectedType))
				assert.Nil(t, list[0].DueDate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "test", name)
			require.NotNil(t, list[0].DueDate)
			assert.Equal(t, "2025-12-12", list[0].DueDate.String())
		})
	}
}

func TestList_AppendNote(t *testing.T) {
	list := List{makeTask("test", nil, nil)}

	err := list.AppendNote([]string{"2", "red"})
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeTaskNotFound))

	require.NoError(t, list.AppendNote([]string{"1", "Line1"}))
	assert.Equal(t, "Line1", list[0].Note)

	// Notes accumulate line by line; they are never overwritten.
	require.NoError(t, list.AppendNote([]string{"1", "Line2"}))
	assert.Equal(t, "Line1\nLine2", list[0].Note)

	require.NoError(t, list.AppendNote([]string{"1", "clear"}))
	assert.Equal(t, "", list[0].Note)
}

func TestList_AppendNoteClearAlwaysEmpties(t *testing.T) {
	list := List{makeTask("test", nil, nil)}
	require.NoError(t, list.AppendNote([]string{"1", "clear"}))
	assert.Equal(t, "", list[0].Note)
}

func TestList_Get(t *testing.T) {
	list := List{
		makeTask("first", nil, nil),
		makeTask("second", nil, nil),
	}

	id, task, err := list.Get([]string{"2"})
	require.NoError(t, err)
	assert.Equal(t, 2, id)
	assert.Equal(t, "second", task.Name)

	_, _, err = list.Get([]string{"3"})
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeTaskNotFound))

	_, _, err = list.Get([]string{"1", "more"})
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeTooManyArguments))
}

func TestList_Sort(t *testing.T) {
	list := List{
		makeTask("Task green 1", colorPtr(domain.ColorGreen), datePtr(domain.NewDate(2025, time.August, 9))),
		makeTask("Task purple 1", colorPtr(domain.ColorPurple), nil),
		makeTask("Task green 2", colorPtr(domain.ColorGreen), datePtr(domain.NewDate(2025, time.June, 1))),
		makeTask("Task blue 1", colorPtr(domain.ColorBlue), datePtr(domain.NewDate(2025, time.June, 1))),
		makeTask("Task plain 1", nil, nil),
		makeTask("Task green 3", colorPtr(domain.ColorGreen), datePtr(domain.NewDate(2024, time.September, 8))),
		makeTask("Task red 1", colorPtr(domain.ColorRed), nil),
		makeTask("Task plain 2", nil, datePtr(domain.NewDate(2025, time.June, 1))),
		makeTask("Task green 4", colorPtr(domain.ColorGreen), nil),
		makeTask("Task green 5", colorPtr(domain.ColorGreen), datePtr(domain.NewDate(2025, time.January, 7))),
		makeTask("Task red 2", colorPtr(domain.ColorRed), datePtr(domain.NewDate(2025, time.March, 9))),
	}

	err := list.Sort([]string{"foo"})
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeTooManyArguments))

	require.NoError(t, list.Sort(nil))

	expectedOrder := []string{
		"Task red 2",
		"Task red 1",
		"Task green 3",
		"Task green 5",
		"Task green 2",
		"Task green 1",
		"Task green 4",
		"Task blue 1",
		"Task purple 1",
		"Task plain 2",
		"Task plain 1",
	}
	require.Len(t, list, len(expectedOrder))
	for i, name := range expectedOrder {
		assert.Equal(t, name, list[i].Name, "position %d", i+1)
	}
}

func TestList_SortIsIdempotent(t *testing.T) {
	list := List{
		makeTask("Task red", colorPtr(domain.ColorRed), datePtr(domain.NewDate(2025, time.March, 9))),
		makeTask("Task blue", colorPtr(domain.ColorBlue), nil),
		makeTask("Task plain dated", nil, datePtr(domain.NewDate(2025, time.June, 1))),
		makeTask("Task plain", nil, nil),
	}

	require.NoError(t, list.Sort(nil))
	first := make([]string, len(list))
	for i, task := range list {
		first[i] = task.Name
	}

	require.NoError(t, list.Sort(nil))
	for i, task := range list {
		assert.Equal(t, first[i], task.Name)
	}
}

func TestList_SortKeepsTieOrder(t *testing.T) {
	due := domain.NewDate(2025, time.June, 1)
	list := List{
		makeTask("tie 1", colorPtr(domain.ColorRed), datePtr(due)),
		makeTask("tie 2", colorPtr(domain.ColorRed), datePtr(due)),
		makeTask("tie 3", colorPtr(domain.ColorRed), datePtr(due)),
	}

	require.NoError(t, list.Sort(nil))

	assert.Equal(t, "tie 1", list[0].Name)
	assert.Equal(t, "tie 2", list[1].Name)
	assert.Equal(t, "tie 3", list[2].Name)
}
