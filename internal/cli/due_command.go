package cli

import (
	"context"

	"todo/internal/tasks"
)

// DueCommand handles the due command
type DueCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewDueCommand creates a new due command handler
func NewDueCommand(app *App) *DueCommand {
	return &DueCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the due command. A successful set prints nothing; the new
// date shows up in list and show output.
func (c *DueCommand) Execute(ctx context.Context, args []string) error {
	err := c.app.mutate(func(list *tasks.List) error {
		_, err := list.SetDueDate(args)
		return err
	})
	if err != nil {
		return c.errorHandler.Handle("set due date", err)
	}
	return nil
}
