package cli

import (
	"context"
	"fmt"

	"todo/internal/validation"
)

// Build metadata, overridable at link time with -ldflags.
var (
	appName    = "todo"
	appVersion = "dev"
)

// InfoCommand handles the info command
type InfoCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewInfoCommand creates a new info command handler
func NewInfoCommand(app *App) *InfoCommand {
	return &InfoCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the info command
func (c *InfoCommand) Execute(ctx context.Context, args []string) error {
	if err := validation.NoMoreArgs(args); err != nil {
		return c.errorHandler.Handle("show info", err)
	}

	fmt.Fprintf(c.app.out, "%s version %s\n", appName, appVersion)
	fmt.Fprintf(c.app.out, "tasks file: %s\n", c.app.store.Path())
	return nil
}
