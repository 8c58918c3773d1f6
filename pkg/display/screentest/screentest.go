// Package screentest helps tests read back what was drawn on a tcell simulation screen.
package screentest

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

// ReadLine reads a full line from the screen
func ReadLine(screen tcell.Screen, y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		str, _, _ := screen.Get(x, y)
		if str == "" {
			b.WriteRune(' ')
			continue
		}
		b.WriteString(str)
	}
	return strings.TrimRight(b.String(), " ")
}

// Background returns the background color drawn at x, y.
func Background(screen tcell.Screen, x, y int) tcell.Color {
	_, style, _ := screen.Get(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

// Foreground returns the foreground color drawn at x, y.
func Foreground(screen tcell.Screen, x, y int) tcell.Color {
	_, style, _ := screen.Get(x, y)
	fg, _, _ := style.Decompose()
	return fg
}

// NewSimScreen creates a new simulation screen for testing
func NewSimScreen(t testing.TB, width, height int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("failed to init simulation screen: %v", err)
	}
	s.SetSize(width, height)
	return s
}
