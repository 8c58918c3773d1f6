package browser

import (
	"io/fs"
	"path"
	"time"

	"github.com/filetug/fx/pkg/files"
	"github.com/gdamore/tcell/v2"
	"golang.org/x/sys/unix"
)

const (
	testUID = 1000
	testGID = 1000
)

var (
	openDir    = files.Metadata{Mode: unix.S_IFDIR | 0o755}
	closedDir  = files.Metadata{Mode: unix.S_IFDIR}
	plainFile  = files.Metadata{Mode: unix.S_IFREG | 0o644}
	testColors = Palette{
		Background:   tcell.ColorBlack,
		Text:         tcell.ColorWhite,
		FileType:     tcell.ColorGray,
		DirType:      tcell.ColorYellow,
		Debug:        tcell.ColorRed,
		Hover:        tcell.ColorSilver,
		NoPermission: tcell.ColorMaroon,
		Status:       tcell.ColorGreen,
	}
)

// memFS is an in-memory tree. ReadNames reports "." and ".." like the OS store does.
type memFS struct {
	nodes    map[string]files.Metadata
	children map[string][]string
	openErr  map[string]error
	closeErr error
	open     int
}

func newMemFS() *memFS {
	m := &memFS{
		nodes:    map[string]files.Metadata{"/": openDir},
		children: map[string][]string{"/": nil},
		openErr:  map[string]error{},
	}
	return m
}

func (m *memFS) add(p string, md files.Metadata) *memFS {
	m.nodes[p] = md
	if md.Mode&unix.S_IFMT == unix.S_IFDIR {
		if _, ok := m.children[p]; !ok {
			m.children[p] = nil
		}
	}
	dir := path.Dir(p)
	m.children[dir] = append(m.children[dir], path.Base(p))
	return m
}

func (m *memFS) OpenDir(p string) (files.Dir, error) {
	if err := m.openErr[p]; err != nil {
		return nil, err
	}
	names, ok := m.children[p]
	if !ok {
		return nil, fs.ErrNotExist
	}
	m.open++
	return &memDir{fs: m, names: append([]string{".", ".."}, names...)}, nil
}

func (m *memFS) Stat(p string) (files.Metadata, error) {
	md, ok := m.nodes[p]
	if !ok {
		return files.Metadata{}, fs.ErrNotExist
	}
	return md, nil
}

type memDir struct {
	fs     *memFS
	names  []string
	closed bool
}

func (d *memDir) ReadNames() ([]string, error) {
	return d.names, nil
}

func (d *memDir) Close() error {
	if !d.closed {
		d.closed = true
		d.fs.open--
	}
	return d.fs.closeErr
}

type paintOp struct {
	kind       string
	x, y, w, h int
	text       string
	color      tcell.Color
}

// recordingCanvas keeps the paint plan of the last frame.
type recordingCanvas struct {
	allocated Size
	reallocs  int
	frames    int
	ops       []paintOp
}

func (c *recordingCanvas) Resize(viewport Size) bool {
	next, ok := NextBackingSize(c.allocated, viewport)
	if ok {
		c.allocated = next
		c.reallocs++
	}
	return ok
}

func (c *recordingCanvas) Clear(bg tcell.Color) {
	c.ops = []paintOp{{kind: "clear", color: bg}}
}

func (c *recordingCanvas) FillRect(x, y, w, h int, color tcell.Color) {
	c.ops = append(c.ops, paintOp{kind: "fill", x: x, y: y, w: w, h: h, color: color})
}

func (c *recordingCanvas) DrawRect(x, y, w, h int, color tcell.Color) {
	c.ops = append(c.ops, paintOp{kind: "rect", x: x, y: y, w: w, h: h, color: color})
}

func (c *recordingCanvas) DrawLine(x1, y1, x2, y2 int, color tcell.Color) {
	c.ops = append(c.ops, paintOp{kind: "line", x: x1, y: y1, w: x2 - x1, h: y2 - y1, color: color})
}

func (c *recordingCanvas) DrawText(x, y int, text string, color tcell.Color) {
	c.ops = append(c.ops, paintOp{kind: "text", x: x, y: y, text: text, color: color})
}

func (c *recordingCanvas) Present() {
	c.ops = append(c.ops, paintOp{kind: "present"})
	c.frames++
}

func (c *recordingCanvas) find(kind string, y int) []paintOp {
	var result []paintOp
	for _, op := range c.ops {
		if op.kind == kind && op.y == y {
			result = append(result, op)
		}
	}
	return result
}

func (c *recordingCanvas) kinds() []string {
	var result []string
	for _, op := range c.ops {
		result = append(result, op.kind)
	}
	return result
}

type countingStats struct {
	redraws, loads, navigations, denials int
	entries, dropped                     int
}

func (s *countingStats) Redraw() {
	s.redraws++
}

func (s *countingStats) Loaded(_ time.Duration, entries, dropped int) {
	s.loads++
	s.entries = entries
	s.dropped += dropped
}

func (s *countingStats) Navigation() {
	s.navigations++
}

func (s *countingStats) PermissionDenied() {
	s.denials++
}

// newTestBrowser lays out a 40x13 terminal: one header line, ten rows, two footer lines.
func newTestBrowser(t testingT, fsys files.FS, p string, o ...Option) (*Browser, *recordingCanvas) {
	t.Helper()
	canvas := &recordingCanvas{}
	o = append([]Option{WithIdentity(testUID, testGID), WithPalette(testColors)}, o...)
	b, err := New(fsys, canvas, p, o...)
	if err != nil {
		t.Fatalf("New(%q): %v", p, err)
	}
	if _, err = b.Handle(ResizeEvent{Size: Size{Width: 40, Height: 13}}); err != nil {
		t.Fatalf("resize: %v", err)
	}
	return b, canvas
}

type testingT interface {
	Helper()
	Fatalf(format string, args ...any)
}

func snapshotNames(s *files.Snapshot) []string {
	var result []string
	for _, e := range s.Entries() {
		result = append(result, e.Name())
	}
	return result
}
