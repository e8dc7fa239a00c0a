package cli

import (
	"github.com/spf13/cobra"

	"todo/internal/config"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd *cobra.Command
	app *App
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(app *App) *RootCommand {
	root := &RootCommand{
		app: app,
	}

	root.cmd = &cobra.Command{
		Use:   "todo",
		Short: "A command-line task tracker",
		Long: `todo is a command-line application for keeping a small list of tasks.

Tasks are addressed by the position shown in 'todo list'. Every change is
written straight to a JSON file and the previous state is kept as a backup,
so any change can be reverted with 'todo undo', up to eleven steps back.

EXAMPLES:
  todo add Buy more coffee                 # Create a task
  todo list                                # List all tasks with their IDs
  todo due 1 2026-03-01                    # Give task 1 a due date
  todo color 1 red                         # Tag task 1 red
  todo note 1 ask about discounts          # Append a note line to task 1
  todo show 1                              # Show task 1 in full
  todo sort                                # Order by color, then due date
  todo remove 1                            # Delete task 1
  todo undo                                # Revert the last change

CONFIGURATION:
  Configuration follows this priority order: command-line flags >
  environment variables > config file > defaults

  TODO_DATA_DIR                            Data directory (default: ~/.todo)
  TODO_DATA_FILENAME                       Tasks filename (default: tasks.json)
  TODO_DISPLAY_WIDTH                       Display width (default: 75)
  TODO_DISPLAY_COLOR                       Enable ANSI colors (default: true)
  TODO_VERBOSE                             Enable verbose output (default: false)
  TODO_DEBUG                               Enable debug traces

  A TOML config file is read from <data dir>/config.toml when present.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Apply configuration overrides from flags before any command runs
			return root.getConfigFromFlags()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("data-dir", "", "Data directory (overrides TODO_DATA_DIR)")
	flags.String("filename", "", "Tasks filename (overrides TODO_DATA_FILENAME)")
	flags.Int("width", 0, "Display width (overrides TODO_DISPLAY_WIDTH)")
	flags.Bool("no-color", false, "Disable ANSI colors (overrides TODO_DISPLAY_COLOR)")
	flags.Bool("verbose", false, "Enable verbose output (overrides TODO_VERBOSE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	addCmd := &cobra.Command{
		Use:   "add [task name]",
		Short: "Create a new task",
		Long:  "Create a new task from the given words and print its ID. The creation date is set to today and never changes.",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewAddCommand(r.app).Execute(cmd.Context(), args)
		},
	}

	renameCmd := &cobra.Command{
		Use:   "rename [id] [new name]",
		Short: "Rename a task",
		Long:  "Replace the name of the task with the given ID. The creation date is kept.",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewRenameCommand(r.app).Execute(cmd.Context(), args)
		},
	}

	removeCmd := &cobra.Command{
		Use:   "remove [id]",
		Short: "Delete a task",
		Long:  "Delete the task with the given ID. Later tasks shift down by one position; use 'todo undo' to get a removed task back.",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewRemoveCommand(r.app).Execute(cmd.Context(), args)
		},
	}

	dueCmd := &cobra.Command{
		Use:   "due [id] [date]",
		Short: "Set a task's due date",
		Long:  "Set the due date of the task with the given ID. The date must be in YYYY-MM-DD format.",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewDueCommand(r.app).Execute(cmd.Context(), args)
		},
	}

	noteCmd := &cobra.Command{
		Use:   "note [id] [text]",
		Short: "Append a note line to a task",
		Long:  "Append the given text to the task's note as a new line. Use 'todo note [id] clear' to erase the note.",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewNoteCommand(r.app).Execute(cmd.Context(), args)
		},
	}

	colorCmd := &cobra.Command{
		Use:   "color [id] [color]",
		Short: "Set or clear a task's color tag",
		Long:  "Tag the task with one of: red, yellow, green, blue, purple. Use 'todo color [id] clear' to remove the tag.",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewColorCommand(r.app).Execute(cmd.Context(), args)
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all tasks",
		Long:  "List all tasks with their IDs, dates, color tags and a check mark for tasks that carry a note.",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewListCommand(r.app).Execute(cmd.Context(), args)
		},
	}

	showCmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show one task in full",
		Long:  "Show every field of the task with the given ID, including the full word-wrapped note.",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewShowCommand(r.app).Execute(cmd.Context(), args)
		},
	}

	sortCmd := &cobra.Command{
		Use:   "sort",
		Short: "Sort tasks by color and due date",
		Long:  "Reorder the collection: colored tasks first in color order, then by due date with undated tasks last. Ties keep their current order.",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewSortCommand(r.app).Execute(cmd.Context(), args)
		},
	}

	undoCmd := &cobra.Command{
		Use:   "undo",
		Short: "Revert the last change",
		Long:  "Restore the tasks file from its newest backup. Repeating the command walks further back, up to eleven generations.",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewUndoCommand(r.app).Execute(cmd.Context(), args)
		},
	}

	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "Show version and data location",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewInfoCommand(r.app).Execute(cmd.Context(), args)
		},
	}

	r.cmd.AddCommand(
		addCmd,
		renameCmd,
		removeCmd,
		dueCmd,
		noteCmd,
		colorCmd,
		listCmd,
		showCmd,
		sortCmd,
		undoCmd,
		infoCmd,
	)
}

// getConfigFromFlags updates the configuration with values from
// command-line flags. The store is rebuilt afterwards since the flags can
// redirect the tasks file.
func (r *RootCommand) getConfigFromFlags() error {
	flags := r.cmd.PersistentFlags()

	if dataDir, _ := flags.GetString("data-dir"); dataDir != "" {
		r.app.config.Storage.Dir = dataDir
	}
	if filename, _ := flags.GetString("filename"); filename != "" {
		r.app.config.Storage.Filename = filename
	}
	if width, _ := flags.GetInt("width"); width > 0 {
		r.app.config.Display.Width = width
	}
	if noColor, _ := flags.GetBool("no-color"); noColor {
		r.app.config.Display.Color = false
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		r.app.config.Application.Verbose = verbose
	}

	if err := r.app.config.Validate(); err != nil {
		return err
	}

	r.app.store = config.CreateStore(r.app.config)
	return nil
}
