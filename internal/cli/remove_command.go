package cli

import (
	"context"
	"fmt"

	"todo/internal/tasks"
)

// RemoveCommand handles the remove command
type RemoveCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewRemoveCommand creates a new remove command handler
func NewRemoveCommand(app *App) *RemoveCommand {
	return &RemoveCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the remove command
func (c *RemoveCommand) Execute(ctx context.Context, args []string) error {
	var name string
	err := c.app.mutate(func(list *tasks.List) error {
		var err error
		name, err = list.Delete(args)
		return err
	})
	if err != nil {
		return c.errorHandler.Handle("remove task", err)
	}

	fmt.Fprintf(c.app.out, "Removed task '%s'\n", name)
	return nil
}
