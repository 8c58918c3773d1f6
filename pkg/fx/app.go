package fx

import (
	"github.com/rivo/tview"
)

// App is the part of *tview.Application a session drives.
type App interface {
	Run() error
	SetRoot(root tview.Primitive, fullscreen bool)
	Stop()
	EnableMouse(bool)
}

var _ App = (*Terminal)(nil)

// Terminal adapts a *tview.Application to App.
// Hooks replace single calls so a session can be driven without a terminal;
// calls with neither an application nor a hook do nothing.
type Terminal struct {
	run         func() error
	stop        func()
	setRoot     func(root tview.Primitive, fullscreen bool)
	enableMouse func(on bool)
}

type TerminalHook func(t *Terminal)

func NewTerminal(app *tview.Application, hooks ...TerminalHook) *Terminal {
	t := &Terminal{
		run:         func() error { return nil },
		stop:        func() {},
		setRoot:     func(tview.Primitive, bool) {},
		enableMouse: func(bool) {},
	}
	if app != nil {
		t.run = app.Run
		t.stop = app.Stop
		t.setRoot = func(root tview.Primitive, fullscreen bool) {
			app.SetRoot(root, fullscreen)
		}
		t.enableMouse = func(on bool) {
			app.EnableMouse(on)
		}
	}
	for _, hook := range hooks {
		hook(t)
	}
	return t
}

// OnRun replaces the blocking event loop.
func OnRun(run func() error) TerminalHook {
	return func(t *Terminal) {
		t.run = run
	}
}

func OnStop(stop func()) TerminalHook {
	return func(t *Terminal) {
		t.stop = stop
	}
}

func OnSetRoot(setRoot func(root tview.Primitive, fullscreen bool)) TerminalHook {
	return func(t *Terminal) {
		t.setRoot = setRoot
	}
}

func OnEnableMouse(enableMouse func(on bool)) TerminalHook {
	return func(t *Terminal) {
		t.enableMouse = enableMouse
	}
}

func (t *Terminal) Run() error {
	return t.run()
}

func (t *Terminal) Stop() {
	t.stop()
}

func (t *Terminal) SetRoot(root tview.Primitive, fullscreen bool) {
	t.setRoot(root, fullscreen)
}

func (t *Terminal) EnableMouse(on bool) {
	t.enableMouse(on)
}
