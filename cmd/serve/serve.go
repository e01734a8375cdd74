package serve

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/google/subcommands"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/nrtkbb/comicshelf/api"
	"github.com/nrtkbb/comicshelf/app"
	"github.com/nrtkbb/comicshelf/scanner"
)

type Command struct {
	rootDir string
	port    string
	noCORS  bool
}

func (*Command) Name() string     { return "serve" }
func (*Command) Synopsis() string { return "Start HTTP server to serve the comic library API" }
func (*Command) Usage() string {
	return `serve [-root <directory>] [-port <port>] [-no-cors]:
  Start an HTTP server that lists comics and serves their pages.
  -root defaults to $COMICS_DIR, -port to $PORT.
`
}

func (c *Command) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.rootDir, "root", app.ComicsDirFromEnv(), "comics directory")
	f.StringVar(&c.port, "port", app.PortFromEnv(), "port to listen on")
	f.BoolVar(&c.noCORS, "no-cors", false, "disable CORS headers")
}

func (c *Command) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.rootDir == "" || c.port == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	appCtx := app.NewAppContext(ctx)
	defer appCtx.PerformCleanup(context.Background())

	setupSignalHandling(appCtx)

	if info, err := os.Stat(c.rootDir); err != nil || !info.IsDir() {
		// an empty catalog is served until the directory appears
		log.Printf("Warning: comics directory %s is not readable: %v", c.rootDir, err)
	}

	library := app.NewLibrary(c.rootDir, scanner.New(scanner.Options{}))

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	if !c.noCORS {
		e.Use(middleware.CORS())
	}

	api.Register(e, api.NewHandler(library))

	appCtx.OnShutdown("http server", e.Shutdown)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Serving %s on port %s...", library.Root(), c.port)
		errCh <- e.Start(":" + c.port)
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			log.Printf("Failed to start server: %v", err)
			return subcommands.ExitFailure
		}
	case <-appCtx.Context.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		appCtx.PerformCleanup(shutdownCtx)
	}

	return subcommands.ExitSuccess
}

func setupSignalHandling(app *app.AppContext) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Force quit flag
	var forceQuit atomic.Bool

	go func() {
		for sig := range sigChan {
			log.Printf("Received signal: %v", sig)
			if forceQuit.Load() {
				log.Println("Forcing immediate shutdown...")
				os.Exit(1)
			}

			forceQuit.Store(true)
			log.Println("Press Ctrl+C again to force quit. Wait for normal shutdown to complete...")
			app.Cancel()

			// Reset forceQuit flag after 5 seconds
			go func() {
				time.Sleep(5 * time.Second)
				forceQuit.Store(false)
			}()
		}
	}()
}
