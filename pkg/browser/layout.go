package browser

type Size struct {
	Width  int
	Height int
}

func (s Size) Area() int {
	return s.Width * s.Height
}

// Metrics is the fixed geometry of the listing, in backend units.
type Metrics struct {
	HeaderHeight int // path line(s) above the first row
	RowHeight    int
	FooterHeight int // status separator and status text below the last row
	GlyphX       int
	NameX        int
}

// CellMetrics is the geometry used on a terminal, one line per row.
var CellMetrics = Metrics{
	HeaderHeight: 1,
	RowHeight:    1,
	FooterHeight: 2,
	GlyphX:       1,
	NameX:        3,
}

// RowsThatFit is how many whole rows fit between header and footer.
func (m Metrics) RowsThatFit(height int) int {
	n := (height - m.HeaderHeight - m.FooterHeight) / m.RowHeight
	if n < 0 {
		return 0
	}
	return n
}

// RowIndex is the screen row under y, counted from the first listing row.
// Lines in the header give negative values.
func (m Metrics) RowIndex(y int) int {
	d := y - m.HeaderHeight
	if d < 0 {
		return (d - m.RowHeight + 1) / m.RowHeight
	}
	return d / m.RowHeight
}

// SeparatorY is the line between the listing and the status text.
func (m Metrics) SeparatorY(height int) int {
	return height - m.FooterHeight
}

// Row is the geometry of one painted entry. Top is inclusive, Bottom exclusive.
type Row struct {
	Index  int // index into the snapshot
	Top    int
	Bottom int
}

func (r Row) Contains(y int) bool {
	return y >= r.Top && y < r.Bottom
}

// Layout is the pure mapping of scroll offset and entry count to row geometry.
type Layout struct {
	Rows        []Row
	RowsThatFit int
	MaxScroll   int
	CanScroll   bool
	ListBottom  int // bottom of the last painted row, or the header bottom when none is
}

func ComputeLayout(m Metrics, viewport Size, scroll, count int) Layout {
	l := Layout{
		RowsThatFit: m.RowsThatFit(viewport.Height),
		ListBottom:  m.HeaderHeight,
	}
	l.CanScroll = count >= l.RowsThatFit
	l.MaxScroll = MaxScroll(count, l.RowsThatFit)

	limit := m.SeparatorY(viewport.Height)
	top := m.HeaderHeight
	for i := scroll; i >= 0 && i < count; i++ {
		bottom := top + m.RowHeight
		if bottom > limit {
			break
		}
		l.Rows = append(l.Rows, Row{Index: i, Top: top, Bottom: bottom})
		l.ListBottom = bottom
		top = bottom
	}
	return l
}

// MaxScroll leaves a two row margin past the last entry.
func MaxScroll(count, rowsThatFit int) int {
	if n := count - rowsThatFit + 2; n > 0 {
		return n
	}
	return 0
}

// RowAt returns the painted row containing y.
func (l Layout) RowAt(y int) (Row, bool) {
	for _, r := range l.Rows {
		if r.Contains(y) {
			return r, true
		}
	}
	return Row{}, false
}

// NextBackingSize applies the backing surface resize policy.
// The surface grows as soon as the viewport exceeds it in either dimension,
// and shrinks only once the viewport area is at most a quarter of the allocated area.
func NextBackingSize(allocated, viewport Size) (Size, bool) {
	if viewport == allocated {
		return allocated, false
	}
	if viewport.Width > allocated.Width || viewport.Height > allocated.Height {
		return viewport, true
	}
	if viewport.Area()*4 <= allocated.Area() {
		return viewport, true
	}
	return allocated, false
}
