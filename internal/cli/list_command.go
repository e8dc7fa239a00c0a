package cli

import (
	"context"

	"todo/internal/domain"
	"todo/internal/tasks"
	"todo/internal/validation"
)

// ListCommand handles the list command
type ListCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	err := c.app.view(func(list tasks.List) error {
		if err := validation.NoMoreArgs(args); err != nil {
			return err
		}
		c.app.renderer().RenderList(c.app.out, list, domain.DateOf(timeNow()))
		return nil
	})
	if err != nil {
		return c.errorHandler.Handle("list tasks", err)
	}
	return nil
}
