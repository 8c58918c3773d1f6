package browser

import (
	"fmt"

	"github.com/filetug/fx/pkg/files"
	"github.com/gdamore/tcell/v2"
)

// Canvas is the backing surface the browser paints on.
// Coordinates are in the units of the active Metrics.
type Canvas interface {
	// Resize tells the surface the visible window size.
	// It reports whether the backing storage was reallocated.
	Resize(viewport Size) bool
	Clear(bg tcell.Color)
	FillRect(x, y, width, height int, color tcell.Color)
	DrawRect(x, y, width, height int, color tcell.Color)
	DrawLine(x1, y1, x2, y2 int, color tcell.Color)
	// DrawText draws left-aligned text with its baseline on line y.
	DrawText(x, y int, text string, color tcell.Color)
	// Present composites the finished surface to the visible window.
	Present()
}

// Palette holds one color per drawing role.
type Palette struct {
	Background   tcell.Color
	Text         tcell.Color
	FileType     tcell.Color
	DirType      tcell.Color
	Debug        tcell.Color
	Hover        tcell.Color
	NoPermission tcell.Color
	Status       tcell.Color
}

var DefaultPalette = Palette{
	Background:   tcell.ColorBlack,
	Text:         tcell.ColorSlateBlue,
	FileType:     tcell.ColorSlateGray,
	DirType:      tcell.ColorYellow,
	Debug:        tcell.ColorRed,
	Hover:        tcell.ColorSilver,
	NoPermission: tcell.ColorRed,
	Status:       tcell.ColorGreen,
}

var helpLines = []string{
	"fx - keys",
	"",
	"click   open directory",
	"wheel   scroll",
	"up/down scroll",
	"d       debug overlay",
	"h ?     this help",
	"c       quit and cd",
	"q       quit",
}

// Redraw paints the whole state onto the canvas and presents it.
func (b *Browser) Redraw() {
	m := b.o.metrics
	p := b.o.palette
	c := b.canvas
	vp := b.viewport
	l := b.layout()

	c.Clear(p.Background)
	c.DrawText(0, m.HeaderHeight-1, b.path, p.Text)
	if b.debug {
		info := fmt.Sprintf("scroll %d/%d", b.scroll, l.MaxScroll)
		c.DrawText(vp.Width-len(info), m.HeaderHeight-1, info, p.Debug)
	}

	entries := b.snapshot.Entries()
	for i := range entries {
		entries[i].YBottom = 0
	}
	for _, row := range l.Rows {
		e := &entries[row.Index]
		b.paintRow(e, row)
	}
	b.maxY = l.ListBottom

	sepY := m.SeparatorY(vp.Height)
	c.DrawLine(0, sepY, vp.Width-1, sepY, p.Text)
	if b.status != "" {
		c.DrawText(0, vp.Height-1, b.status, p.Status)
	}

	if b.help {
		b.paintHelp()
	}

	c.Present()
	b.o.stats.Redraw()
}

func (b *Browser) paintRow(e *files.DirEntry, row Row) {
	m := b.o.metrics
	p := b.o.palette
	c := b.canvas
	width := b.viewport.Width
	baseline := row.Bottom - 1

	if !files.IsAccessible(*e, b.uid, b.gid) {
		c.FillRect(0, row.Top, width, m.RowHeight, p.NoPermission)
	}
	if row.Contains(b.mouseY) {
		c.FillRect(0, row.Top, width, m.RowHeight, p.Hover)
	}

	glyphColor := p.FileType
	if e.IsDir() {
		glyphColor = p.DirType
	}
	c.DrawText(m.GlyphX, baseline, e.TypeGlyph(), glyphColor)
	c.DrawText(m.NameX, baseline, e.Name(), p.Text)

	if b.debug {
		c.DrawRect(0, row.Top, width, m.RowHeight, p.Debug)
	}
	e.YBottom = row.Bottom
}

func (b *Browser) paintHelp() {
	p := b.o.palette
	c := b.canvas

	w := 0
	for _, line := range helpLines {
		w = max(w, len(line))
	}
	w += 4
	h := len(helpLines) + 2
	x := max(0, (b.viewport.Width-w)/2)
	y := max(0, (b.viewport.Height-h)/2)

	c.FillRect(x, y, w, h, p.Background)
	c.DrawRect(x, y, w, h, p.Text)
	for i, line := range helpLines {
		c.DrawText(x+2, y+1+i, line, p.Text)
	}
}
