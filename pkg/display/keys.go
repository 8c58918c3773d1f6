package display

import (
	"github.com/filetug/fx/pkg/browser"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// TranslateKey maps a terminal key press to the browser's symbolic keys.
func TranslateKey(ev *tcell.EventKey) browser.Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return browser.KeyScrollUp
	case tcell.KeyDown:
		return browser.KeyScrollDown
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'd':
			return browser.KeyToggleDebug
		case 'q':
			return browser.KeyQuit
		case 'h', '?':
			return browser.KeyToggleHelp
		case 'c':
			return browser.KeyChangeDir
		}
	}
	return browser.KeyNone
}

// TranslateMouse maps a mouse action at view-relative x, y to a browser event.
// Actions the browser has no use for report false.
func TranslateMouse(action tview.MouseAction, x, y int) (browser.Event, bool) {
	switch action {
	case tview.MouseLeftDown:
		return browser.ButtonEvent{Button: browser.ButtonPrimary, X: x, Y: y}, true
	case tview.MouseScrollUp:
		return browser.ButtonEvent{Button: browser.ButtonScrollUp, X: x, Y: y}, true
	case tview.MouseScrollDown:
		return browser.ButtonEvent{Button: browser.ButtonScrollDown, X: x, Y: y}, true
	case tview.MouseMove:
		return browser.MotionEvent{X: x, Y: y}, true
	default:
		return nil, false
	}
}
