package cli

import (
	"context"

	"todo/internal/validation"
)

// UndoCommand handles the undo command
type UndoCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewUndoCommand creates a new undo command handler
func NewUndoCommand(app *App) *UndoCommand {
	return &UndoCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the undo command. Each invocation rolls the tasks file back
// one backup generation; repeated undo walks further into history until
// the chain is exhausted.
func (c *UndoCommand) Execute(ctx context.Context, args []string) error {
	if err := validation.NoMoreArgs(args); err != nil {
		return c.errorHandler.Handle("undo", err)
	}
	if err := c.app.undo(); err != nil {
		return c.errorHandler.Handle("undo", err)
	}
	return nil
}
