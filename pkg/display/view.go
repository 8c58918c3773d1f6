package display

import (
	"github.com/filetug/fx/pkg/browser"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// Handler consumes browser events. *browser.Browser implements it.
type Handler interface {
	Handle(ev browser.Event) (browser.Outcome, error)
}

// View is a tview primitive that feeds terminal input to a Handler
// and shows the Surface the handler paints on.
type View struct {
	*tview.Box
	surface *Surface
	handler Handler
	size    browser.Size
	done    bool
	onDone  func(outcome browser.Outcome, err error)
}

// NewView creates a view. onDone is called once, with the first terminal outcome or error.
func NewView(surface *Surface, handler Handler, onDone func(outcome browser.Outcome, err error)) *View {
	return &View{
		Box:     tview.NewBox(),
		surface: surface,
		handler: handler,
		onDone:  onDone,
	}
}

// Done reports whether the handler has asked to stop.
func (v *View) Done() bool {
	return v.done
}

func (v *View) dispatch(ev browser.Event) {
	if v.done {
		return
	}
	outcome, err := v.handler.Handle(ev)
	if err == nil && !outcome.Terminal() {
		return
	}
	v.done = true
	if v.onDone != nil {
		v.onDone(outcome, err)
	}
}

// Draw sends a resize when the inner rectangle changed and then copies the surface to the screen.
func (v *View) Draw(screen tcell.Screen) {
	v.DrawForSubclass(screen, v)
	x, y, width, height := v.GetInnerRect()
	size := browser.Size{Width: width, Height: height}
	if size != v.size {
		v.size = size
		v.dispatch(browser.ResizeEvent{Size: size})
	}
	v.surface.Composite(screen, x, y)
}

func (v *View) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return v.WrapInputHandler(func(event *tcell.EventKey, _ func(p tview.Primitive)) {
		if isRepaint(event) {
			v.dispatch(browser.ExposeEvent{})
			return
		}
		if key := TranslateKey(event); key != browser.KeyNone {
			v.dispatch(browser.KeyEvent{Key: key})
		}
	})
}

func (v *View) MouseHandler() func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
	return v.WrapMouseHandler(func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
		x, y := event.Position()
		if !v.InRect(x, y) {
			return false, nil
		}
		left, top, _, _ := v.GetInnerRect()
		ev, ok := TranslateMouse(action, x-left, y-top)
		if !ok {
			return false, nil
		}
		if action == tview.MouseLeftDown {
			setFocus(v)
		}
		v.dispatch(ev)
		return true, nil
	})
}

// isRepaint reports Ctrl-L, the usual terminal request to repaint the screen.
func isRepaint(event *tcell.EventKey) bool {
	if event.Key() == tcell.KeyCtrlL {
		return true
	}
	return event.Key() == tcell.KeyRune && event.Rune() == 'l' && event.Modifiers()&tcell.ModCtrl != 0
}
