// Package tasks implements the ordered task collection and its operations.
// Tasks are addressed by 1-based position; positions are only stable until
// the next structural mutation and are recomputed from the persisted order
// on every load. Operations validate all arguments before touching the
// collection, so a failed operation never leaves a partial mutation.
package tasks

import (
	"sort"
	"strings"
	"time"

	"todo/internal/domain"
	"todo/internal/validation"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// List is an ordered collection of tasks.
type List []domain.Task

// Create appends a new task named by the joined argument tokens and
// returns its 1-based id. The creation date is set to the current local
// date and is never changed afterwards.
func (l *List) Create(args []string) (int, error) {
	name, err := validation.JoinedArg(args, "task name")
	if err != nil {
		return 0, err
	}

	*l = append(*l, domain.NewTask(name, domain.DateOf(timeNow())))
	return len(*l), nil
}

// Rename replaces the task's name with the joined remaining tokens and
// returns the previous name. Unlike Create there is no non-empty check:
// renaming to the empty string is allowed.
func (l *List) Rename(args []string) (string, error) {
	index, rest, err := validation.TaskID(args, len(*l))
	if err != nil {
		return "", err
	}

	oldName := (*l)[index].Name
	(*l)[index].Name = strings.Join(rest, " ")
	return oldName, nil
}

// Delete removes the task at the given id and returns its name. All later
// ids shift down by one.
func (l *List) Delete(args []string) (string, error) {
	index, rest, err := validation.TaskID(args, len(*l))
	if err != nil {
		return "", err
	}
	if err := validation.NoMoreArgs(rest); err != nil {
		return "", err
	}

	name := (*l)[index].Name
	*l = append((*l)[:index], (*l)[index+1:]...)
	return name, nil
}

// SetColor sets or clears the task's color tag from a token out of the
// five tag names, or "clear". It returns the task name and the applied
// color (nil when cleared) for reporting.
func (l *List) SetColor(args []string) (string, *domain.Color, error) {
	index, rest, err := validation.TaskID(args, len(*l))
	if err != nil {
		return "", nil, err
	}
	token, rest, err := validation.RequiredArg(rest, "color")
	if err != nil {
		return "", nil, err
	}
	color, err := validation.Color(token)
	if err != nil {
		return "", nil, err
	}
	if err := validation.NoMoreArgs(rest); err != nil {
		return "", nil, err
	}

	(*l)[index].Color = color
	return (*l)[index].Name, color, nil
}

// SetDueDate sets the task's due date from a YYYY-MM-DD token and returns
// the task name for reporting.
func (l *List) SetDueDate(args []string) (string, error) {
	index, rest, err := validation.TaskID(args, len(*l))
	if err != nil {
		return "", err
	}
	raw, rest, err := validation.RequiredArg(rest, "due date")
	if err != nil {
		return "", err
	}
	date, err := validation.DueDate(raw)
	if err != nil {
		return "", err
	}
	if err := validation.NoMoreArgs(rest); err != nil {
		return "", err
	}

	(*l)[index].DueDate = &date
	return (*l)[index].Name, nil
}

// AppendNote appends the joined remaining tokens to the task's note as a
// new line. Notes accumulate; the exact text "clear" resets the note to
// empty instead.
func (l *List) AppendNote(args []string) error {
	index, rest, err := validation.TaskID(args, len(*l))
	if err != nil {
		return err
	}

	text := strings.Join(rest, " ")
	if text == "clear" {
		(*l)[index].Note = ""
		return nil
	}

	if (*l)[index].Note != "" {
		(*l)[index].Note += "\n"
	}
	(*l)[index].Note += text
	return nil
}

// Sort reorders the collection in place by the composite key: colored
// tasks before uncolored, then color ordinal ascending, then dated tasks
// before undated, then due date ascending. The sort is stable, so ties
// keep their prior relative order. No other operation reorders the
// collection.
func (l *List) Sort(args []string) error {
	if err := validation.NoMoreArgs(args); err != nil {
		return err
	}

	sort.SliceStable(*l, func(i, j int) bool {
		return lessTasks((*l)[i], (*l)[j])
	})
	return nil
}

// Get resolves a task id for display and returns the 1-based id together
// with the task.
func (l *List) Get(args []string) (int, domain.Task, error) {
	index, rest, err := validation.TaskID(args, len(*l))
	if err != nil {
		return 0, domain.Task{}, err
	}
	if err := validation.NoMoreArgs(rest); err != nil {
		return 0, domain.Task{}, err
	}

	return index + 1, (*l)[index], nil
}

// lessTasks is the composite sort key. "Absent sorts after present" is
// coded explicitly for both color and due date; it is not the natural
// ordering of the pointer types.
func lessTasks(a, b domain.Task) bool {
	switch {
	case a.Color != nil && b.Color == nil:
		return true
	case a.Color == nil && b.Color != nil:
		return false
	case a.Color != nil && b.Color != nil && *a.Color != *b.Color:
		return a.Color.Ordinal() < b.Color.Ordinal()
	}

	switch {
	case a.DueDate != nil && b.DueDate == nil:
		return true
	case a.DueDate == nil && b.DueDate != nil:
		return false
	case a.DueDate != nil && b.DueDate != nil:
		return a.DueDate.Before(*b.DueDate)
	}

	return false
}
