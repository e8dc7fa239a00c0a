package cli

import (
	"context"

	"todo/internal/tasks"
)

// SortCommand handles the sort command
type SortCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewSortCommand creates a new sort command handler
func NewSortCommand(app *App) *SortCommand {
	return &SortCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the sort command. The reordered collection is persisted, so
// sorting is undoable like any other mutation.
func (c *SortCommand) Execute(ctx context.Context, args []string) error {
	err := c.app.mutate(func(list *tasks.List) error {
		return list.Sort(args)
	})
	if err != nil {
		return c.errorHandler.Handle("sort tasks", err)
	}
	return nil
}
