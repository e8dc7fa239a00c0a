package cli

import (
	"context"

	"todo/internal/domain"
	"todo/internal/tasks"
)

// ShowCommand handles the show command
type ShowCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewShowCommand creates a new show command handler
func NewShowCommand(app *App) *ShowCommand {
	return &ShowCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the show command
func (c *ShowCommand) Execute(ctx context.Context, args []string) error {
	err := c.app.view(func(list tasks.List) error {
		id, task, err := list.Get(args)
		if err != nil {
			return err
		}
		c.app.renderer().RenderShow(c.app.out, id, task, domain.DateOf(timeNow()))
		return nil
	})
	if err != nil {
		return c.errorHandler.Handle("show task", err)
	}
	return nil
}
