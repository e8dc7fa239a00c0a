package cli

import (
	"io"
	"os"
	"time"

	"todo/internal/config"
	"todo/internal/storage"
	"todo/internal/tasks"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// App represents the main CLI application
type App struct {
	config *config.Config
	store  *storage.Store
	out    io.Writer
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(cfg *config.Config, store *storage.Store) *App {
	return &App{
		config: cfg,
		store:  store,
		out:    os.Stdout,
	}
}

// NewAppWithDefaultStore creates a new CLI application instance with the
// store resolved from the cascading configuration. This is used for
// production.
func NewAppWithDefaultStore() (*App, error) {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		return nil, err
	}
	return NewApp(cfg, config.CreateStore(cfg)), nil
}

// mutate runs a collection mutation under the store's advisory lock: load,
// apply, save. The save is skipped when the mutation fails, so an invalid
// command never burns a backup generation.
func (a *App) mutate(fn func(*tasks.List) error) error {
	if err := a.store.Lock(); err != nil {
		return err
	}
	defer a.store.Unlock()

	list, err := a.store.Load()
	if err != nil {
		return err
	}
	if err := fn(&list); err != nil {
		return err
	}
	return a.store.Save(list)
}

// view runs a read-only operation against the loaded collection. Nothing
// is written back, so no backup generation is created.
func (a *App) view(fn func(tasks.List) error) error {
	list, err := a.store.Load()
	if err != nil {
		return err
	}
	return fn(list)
}

// undo rolls the store back one backup generation under the lock.
func (a *App) undo() error {
	if err := a.store.Lock(); err != nil {
		return err
	}
	defer a.store.Unlock()

	return a.store.Rollback()
}

// renderer builds a renderer from the display configuration.
func (a *App) renderer() *Renderer {
	return NewRenderer(a.config.Display.Width, a.config.Display.Color)
}
