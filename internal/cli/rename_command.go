package cli

import (
	"context"
	"fmt"
	"strings"

	"todo/internal/tasks"
)

// RenameCommand handles the rename command
type RenameCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewRenameCommand creates a new rename command handler
func NewRenameCommand(app *App) *RenameCommand {
	return &RenameCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the rename command
func (c *RenameCommand) Execute(ctx context.Context, args []string) error {
	var oldName string
	err := c.app.mutate(func(list *tasks.List) error {
		var err error
		oldName, err = list.Rename(args)
		return err
	})
	if err != nil {
		return c.errorHandler.Handle("rename task", err)
	}

	newName := strings.Join(args[1:], " ")
	fmt.Fprintf(c.app.out, "Renamed task '%s' to '%s'\n", oldName, newName)
	return nil
}
