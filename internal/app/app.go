// Package app wires the editing engine, key dispatch, view and configuration
// into an interactive terminal program.
package app

import (
	"context"
	"io"
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/codearea/internal/config"
	"github.com/dshills/codearea/internal/config/watcher"
	"github.com/dshills/codearea/internal/engine"
	"github.com/dshills/codearea/internal/input"
	"github.com/dshills/codearea/internal/logging"
	"github.com/dshills/codearea/internal/view"
)

// Options configures the application.
type Options struct {
	// ConfigPath is the path to a TOML or YAML configuration file.
	ConfigPath string

	// LogLevel overrides the configured level when non-empty.
	LogLevel string

	// LogOutput receives log records. Nil discards them, since the
	// terminal is owned by the screen.
	LogOutput io.Writer

	// Content is the initial text.
	Content string

	// Watch reloads syntax and log settings when the config file changes.
	Watch bool
}

// Application owns one engine and drives it from terminal events.
type Application struct {
	mu     sync.Mutex
	screen tcell.Screen

	opts    Options
	log     *logging.Logger
	engine  *engine.Engine
	input   *input.Handler
	view    *view.View
	watcher *watcher.Watcher

	running      atomic.Bool
	shutdownOnce sync.Once
}

// quitSignal is posted as interrupt data to end the event loop.
type quitSignal struct{}

// undoBound is posted as interrupt data so the event loop, which owns the
// engine, applies a reloaded undo bound.
type undoBound int

// New loads configuration and builds the components.
func New(opts Options) (*Application, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, &InitError{Component: "config", Err: err}
	}

	log, err := newLogger(cfg, opts)
	if err != nil {
		return nil, &InitError{Component: "logger", Err: err}
	}

	hl, err := cfg.BuildSyntax()
	if err != nil {
		return nil, &InitError{Component: "syntax", Err: err}
	}

	engineOpts := append(cfg.EngineOptions(),
		engine.WithContent(opts.Content),
		engine.WithLogger(log),
	)
	eng := engine.New(engineOpts...)

	app := &Application{
		opts:   opts,
		log:    log.WithComponent("app"),
		engine: eng,
		input:  input.NewHandler(eng, input.WithLogger(log)),
		view:   view.New(view.WithSyntax(hl)),
	}

	if opts.Watch && opts.ConfigPath != "" {
		w, err := watcher.New(watcher.WithLogger(log))
		if err != nil {
			return nil, &InitError{Component: "watcher", Err: err}
		}
		if err := w.Watch(opts.ConfigPath); err != nil {
			_ = w.Close()
			return nil, &InitError{Component: "watcher", Err: err}
		}
		w.OnChange(app.reload)
		app.watcher = w
	}

	app.log.Info("initialized",
		"engine", eng.ID().String(),
		"tab_width", eng.TabWidth(),
		"config", opts.ConfigPath,
	)
	return app, nil
}

func newLogger(cfg *config.Config, opts Options) (*logging.Logger, error) {
	lc := cfg.LoggerConfig()
	if opts.LogLevel != "" {
		level, err := logging.ParseLevel(opts.LogLevel)
		if err != nil {
			return nil, err
		}
		lc.Level = level
	}
	if opts.LogOutput == nil {
		return logging.Discard(), nil
	}
	lc.Output = opts.LogOutput
	return logging.New(lc), nil
}

// Engine returns the editing engine.
func (app *Application) Engine() *engine.Engine {
	return app.engine
}

// View returns the view.
func (app *Application) View() *view.View {
	return app.view
}

// SetScreen sets the screen to draw on. The screen must already be
// initialised; the caller remains responsible for Fini.
func (app *Application) SetScreen(s tcell.Screen) error {
	if app.running.Load() {
		return ErrAlreadyRunning
	}
	app.mu.Lock()
	defer app.mu.Unlock()
	app.screen = s
	return nil
}

// Run processes terminal events until Ctrl+Q or Shutdown.
func (app *Application) Run() error {
	app.mu.Lock()
	screen := app.screen
	app.mu.Unlock()
	if screen == nil {
		return ErrNoScreen
	}

	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if app.watcher != nil {
		if err := app.watcher.Start(ctx); err != nil {
			return &InitError{Component: "watcher", Err: err}
		}
		defer app.watcher.Stop()
	}

	app.log.Debug("event loop started")
	defer app.log.Debug("event loop stopped")

	for {
		app.draw(screen)

		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventKey:
			if isQuit(ev) {
				return nil
			}
			app.input.HandleTcell(ev)
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventInterrupt:
			switch data := ev.Data().(type) {
			case quitSignal:
				return nil
			case undoBound:
				app.engine.SetMaxUndoEntries(int(data))
			}
		}
	}
}

func (app *Application) draw(screen tcell.Screen) {
	app.view.Draw(screen, app.engine)
	screen.Show()
}

func isQuit(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlQ {
		return true
	}
	return ev.Key() == tcell.KeyRune && ev.Rune() == 'q' && ev.Modifiers()&tcell.ModCtrl != 0
}

// reload re-reads the config file and applies the settings that can change
// while running: syntax colors, log level and the undo bound. Tab width
// and the disabled flag need a restart.
func (app *Application) reload(ev watcher.Event) {
	if ev.Op == watcher.OpRemove || ev.Op == watcher.OpRename {
		app.log.Warn("config file removed, keeping current settings", "path", ev.Path)
		return
	}

	cfg, err := config.Load(app.opts.ConfigPath)
	if err != nil {
		app.log.Warn("config reload failed", "path", ev.Path, "error", err)
		return
	}

	hl, err := cfg.BuildSyntax()
	if err != nil {
		app.log.Warn("config reload failed", "path", ev.Path, "error", err)
		return
	}
	app.view.SetSyntax(hl)

	if app.opts.LogLevel == "" {
		app.log.SetLevel(cfg.LoggerConfig().Level)
	}

	app.log.Info("config reloaded", "path", ev.Path)
	app.post(tcell.NewEventInterrupt(undoBound(cfg.Editor.MaxUndoEntries)))
}

func (app *Application) post(ev tcell.Event) {
	app.mu.Lock()
	screen := app.screen
	app.mu.Unlock()
	if screen != nil {
		_ = screen.PostEvent(ev) // best-effort; a full queue still redraws on the next key
	}
}

// Shutdown ends Run and releases the config watcher.
func (app *Application) Shutdown() {
	app.shutdownOnce.Do(func() {
		app.post(tcell.NewEventInterrupt(quitSignal{}))
		if app.watcher != nil {
			if err := app.watcher.Close(); err != nil {
				app.log.Warn("closing watcher", "error", err)
			}
		}
	})
}
