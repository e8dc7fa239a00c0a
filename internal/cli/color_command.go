package cli

import (
	"context"
	"fmt"

	"todo/internal/domain"
	"todo/internal/tasks"
)

// ColorCommand handles the color command
type ColorCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewColorCommand creates a new color command handler
func NewColorCommand(app *App) *ColorCommand {
	return &ColorCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the color command
func (c *ColorCommand) Execute(ctx context.Context, args []string) error {
	var name string
	var color *domain.Color
	err := c.app.mutate(func(list *tasks.List) error {
		var err error
		name, color, err = list.SetColor(args)
		return err
	})
	if err != nil {
		return c.errorHandler.Handle("set task color", err)
	}

	if color == nil {
		fmt.Fprintf(c.app.out, "Color removed for task '%s'\n", name)
	} else {
		fmt.Fprintf(c.app.out, "Color for task '%s' was set to %s\n", name, color)
	}
	return nil
}
