package app

import (
	"context"
	"log"
	"sync"
)

// AppContext carries the process-wide context and the shutdown hooks of a
// long-running subcommand.
type AppContext struct {
	Context context.Context
	Cancel  context.CancelFunc
	Cleanup sync.Once

	mu      sync.Mutex
	closers []closer
}

type closer struct {
	name string
	fn   func(context.Context) error
}

func NewAppContext(parentCtx context.Context) *AppContext {
	ctx, cancel := context.WithCancel(parentCtx)
	return &AppContext{
		Context: ctx,
		Cancel:  cancel,
	}
}

// OnShutdown registers fn to run during PerformCleanup. Hooks run in
// reverse registration order.
func (app *AppContext) OnShutdown(name string, fn func(context.Context) error) {
	app.mu.Lock()
	defer app.mu.Unlock()
	app.closers = append(app.closers, closer{name: name, fn: fn})
}

func (app *AppContext) PerformCleanup(ctx context.Context) {
	app.Cleanup.Do(func() {
		log.Println("Starting shutdown...")
		app.Cancel()

		app.mu.Lock()
		closers := app.closers
		app.closers = nil
		app.mu.Unlock()

		for i := len(closers) - 1; i >= 0; i-- {
			c := closers[i]
			log.Printf("Shutting down %s...", c.name)
			if err := c.fn(ctx); err != nil {
				log.Printf("Error shutting down %s: %v", c.name, err)
			}
		}

		log.Println("Graceful shutdown completed")
	})
}
