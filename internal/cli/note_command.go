package cli

import (
	"context"

	"todo/internal/tasks"
)

// NoteCommand handles the note command
type NoteCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewNoteCommand creates a new note command handler
func NewNoteCommand(app *App) *NoteCommand {
	return &NoteCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the note command. Text accumulates line by line; the exact
// text "clear" resets the note instead. A successful append prints
// nothing.
func (c *NoteCommand) Execute(ctx context.Context, args []string) error {
	err := c.app.mutate(func(list *tasks.List) error {
		return list.AppendNote(args)
	})
	if err != nil {
		return c.errorHandler.Handle("add note", err)
	}
	return nil
}
