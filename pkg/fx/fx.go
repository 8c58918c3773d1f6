// Package fx wires the directory browser to the local filesystem and a tview application.
package fx

import (
	"fmt"

	"github.com/filetug/fx/pkg/browser"
	"github.com/filetug/fx/pkg/display"
	"github.com/filetug/fx/pkg/files"
	"github.com/filetug/fx/pkg/files/osfile"
	"go.uber.org/zap"
)

var (
	newStore        = func() files.FS { return osfile.NewStore() }
	workingDir      = osfile.WorkingDir
	currentIdentity = osfile.CurrentIdentity
)

type Config struct {
	Debug          bool
	SkipUnreadable bool
	Colors         display.ColorNames
	Logger         *zap.Logger
	Stats          browser.Stats
}

// Result is how a session ended.
type Result struct {
	Outcome browser.Outcome
	// Path is the directory shown when the session ended.
	Path string
}

// Session is one browser bound to an application.
type Session struct {
	app     App
	log     *zap.Logger
	browser *browser.Browser
	view    *display.View
	outcome browser.Outcome
	err     error
}

// SetupApp opens the working directory and installs the browser view as the app root.
func SetupApp(app App, cfg Config) (*Session, error) {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	wd, err := workingDir()
	if err != nil {
		return nil, err
	}
	id := currentIdentity()

	opts := []browser.Option{
		browser.WithIdentity(id.UID, id.GID),
		browser.WithPalette(display.AllocatePalette(cfg.Colors)),
		browser.WithDebug(cfg.Debug),
		browser.WithSkipUnreadable(cfg.SkipUnreadable),
		browser.WithLogger(log),
	}
	if cfg.Stats != nil {
		opts = append(opts, browser.WithStats(cfg.Stats))
	}

	surface := display.NewSurface()
	b, err := browser.New(newStore(), surface, wd, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", wd, err)
	}

	s := &Session{app: app, log: log, browser: b}
	s.view = display.NewView(surface, b, s.finish)
	app.EnableMouse(true)
	app.SetRoot(s.view, true)
	return s, nil
}

func (s *Session) finish(outcome browser.Outcome, err error) {
	s.outcome = outcome
	s.err = err
	s.app.Stop()
}

// Close releases the directory the browser holds open.
func (s *Session) Close() {
	if err := s.browser.Close(); err != nil {
		s.log.Warn("failed to close directory", zap.String("path", s.browser.Path()), zap.Error(err))
	}
}

func (s *Session) Result() (Result, error) {
	return Result{Outcome: s.outcome, Path: s.browser.Path()}, s.err
}

// Run sets up a session on app and blocks until the browser quits or fails.
func Run(app App, cfg Config) (Result, error) {
	s, err := SetupApp(app, cfg)
	if err != nil {
		return Result{}, err
	}
	defer s.Close()
	if err = app.Run(); err != nil {
		return Result{}, err
	}
	return s.Result()
}
