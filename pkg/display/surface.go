package display

import (
	"unicode/utf8"

	"github.com/filetug/fx/pkg/browser"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/tview"
	"golang.org/x/text/unicode/norm"
)

var _ browser.Canvas = (*Surface)(nil)

type cell struct {
	r    rune
	fg   tcell.Color
	bg   tcell.Color
	tail bool // second half of a wide rune
}

// Surface is the offscreen cell grid the browser paints on.
// Its allocation follows browser.NextBackingSize, so it may be larger than the viewport.
type Surface struct {
	allocated browser.Size
	viewport  browser.Size
	cells     []cell
	presented int
}

func NewSurface() *Surface {
	return &Surface{}
}

func (s *Surface) Resize(viewport browser.Size) bool {
	s.viewport = viewport
	next, ok := browser.NextBackingSize(s.allocated, viewport)
	if !ok {
		return false
	}
	s.allocated = next
	s.cells = make([]cell, next.Area())
	return true
}

func (s *Surface) Allocated() browser.Size {
	return s.allocated
}

// Presented counts finished frames.
func (s *Surface) Presented() int {
	return s.presented
}

func (s *Surface) at(x, y int) *cell {
	if x < 0 || y < 0 || x >= s.viewport.Width || y >= s.viewport.Height ||
		x >= s.allocated.Width || y >= s.allocated.Height {
		return nil
	}
	return &s.cells[y*s.allocated.Width+x]
}

// Cell returns what was painted at x, y. Unpainted and out of range cells are blank.
func (s *Surface) Cell(x, y int) (r rune, fg, bg tcell.Color) {
	c := s.at(x, y)
	if c == nil || c.r == 0 {
		if c != nil {
			return ' ', c.fg, c.bg
		}
		return ' ', tcell.ColorDefault, tcell.ColorDefault
	}
	return c.r, c.fg, c.bg
}

func (s *Surface) Clear(bg tcell.Color) {
	for y := 0; y < s.viewport.Height; y++ {
		for x := 0; x < s.viewport.Width; x++ {
			if c := s.at(x, y); c != nil {
				*c = cell{r: ' ', fg: tcell.ColorDefault, bg: bg}
			}
		}
	}
}

func (s *Surface) FillRect(x, y, width, height int, color tcell.Color) {
	for row := y; row < y+height; row++ {
		for col := x; col < x+width; col++ {
			if c := s.at(col, row); c != nil {
				*c = cell{r: ' ', fg: c.fg, bg: color}
			}
		}
	}
}

func (s *Surface) put(x, y int, r rune, fg tcell.Color) {
	if c := s.at(x, y); c != nil {
		c.r = r
		c.fg = fg
		c.tail = false
	}
}

// DrawRect outlines the rectangle. A one line high rectangle gets only its side bars.
func (s *Surface) DrawRect(x, y, width, height int, color tcell.Color) {
	if width <= 0 || height <= 0 {
		return
	}
	right, bottom := x+width-1, y+height-1
	if height == 1 {
		s.put(x, y, tview.BoxDrawingsLightVertical, color)
		s.put(right, y, tview.BoxDrawingsLightVertical, color)
		return
	}
	for col := x + 1; col < right; col++ {
		s.put(col, y, tview.BoxDrawingsLightHorizontal, color)
		s.put(col, bottom, tview.BoxDrawingsLightHorizontal, color)
	}
	for row := y + 1; row < bottom; row++ {
		s.put(x, row, tview.BoxDrawingsLightVertical, color)
		s.put(right, row, tview.BoxDrawingsLightVertical, color)
	}
	s.put(x, y, tview.BoxDrawingsLightDownAndRight, color)
	s.put(right, y, tview.BoxDrawingsLightDownAndLeft, color)
	s.put(x, bottom, tview.BoxDrawingsLightUpAndRight, color)
	s.put(right, bottom, tview.BoxDrawingsLightUpAndLeft, color)
}

func (s *Surface) DrawLine(x1, y1, x2, y2 int, color tcell.Color) {
	switch {
	case y1 == y2:
		for x := min(x1, x2); x <= max(x1, x2); x++ {
			s.put(x, y1, tview.BoxDrawingsLightHorizontal, color)
		}
	case x1 == x2:
		for y := min(y1, y2); y <= max(y1, y2); y++ {
			s.put(x1, y, tview.BoxDrawingsLightVertical, color)
		}
	default:
		s.drawDiagonal(x1, y1, x2, y2, color)
	}
}

// drawDiagonal is Bresenham's line algorithm.
func (s *Surface) drawDiagonal(x1, y1, x2, y2 int, color tcell.Color) {
	dx, dy := abs(x2-x1), -abs(y2-y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	e := dx + dy
	for {
		s.put(x1, y1, '·', color)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x1 += sx
		}
		if e2 <= dx {
			e += dx
			y1 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// DrawText draws NFC-normalized text from column x. Bytes that are not UTF-8 show as '?'.
func (s *Surface) DrawText(x, y int, text string, color tcell.Color) {
	text = norm.NFC.String(text)
	for len(text) > 0 && x < s.viewport.Width {
		r, size := utf8.DecodeRuneInString(text)
		text = text[size:]
		if r == utf8.RuneError && size <= 1 {
			r = '?'
		}
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > s.viewport.Width {
			return
		}
		s.put(x, y, r, color)
		if w == 2 {
			if c := s.at(x+1, y); c != nil {
				c.r = 0
				c.fg = color
				c.tail = true
			}
		}
		x += w
	}
}

func (s *Surface) Present() {
	s.presented++
}

// Composite copies the visible part of the surface onto screen with its top-left corner at x0, y0.
func (s *Surface) Composite(screen tcell.Screen, x0, y0 int) {
	for y := 0; y < s.viewport.Height; y++ {
		for x := 0; x < s.viewport.Width; x++ {
			c := s.at(x, y)
			if c == nil || c.tail {
				continue
			}
			r := c.r
			if r == 0 {
				r = ' '
			}
			style := tcell.StyleDefault.Foreground(c.fg).Background(c.bg)
			screen.SetContent(x0+x, y0+y, r, nil, style)
		}
	}
}
