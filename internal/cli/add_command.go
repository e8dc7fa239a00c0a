package cli

import (
	"context"
	"fmt"

	"todo/internal/tasks"
)

// AddCommand handles the add command
type AddCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the add command
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	var id int
	err := c.app.mutate(func(list *tasks.List) error {
		var err error
		id, err = list.Create(args)
		return err
	})
	if err != nil {
		return c.errorHandler.Handle("create task", err)
	}

	fmt.Fprintf(c.app.out, "Task created with ID %d\n", id)
	return nil
}
