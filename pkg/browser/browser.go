// Package browser holds the state of the directory browser and the controller
// that turns input events into state changes and redraws.
//
// The controller has a single implicit state, browsing, with two independent
// overlay flags: debug and help. Only the quit and change-directory keys end it.
package browser

import (
	"math"
	"time"

	"github.com/filetug/fx/pkg/files"
	"go.uber.org/zap"
)

// MaxStatusLen bounds the status line, in bytes.
const MaxStatusLen = 255

// Browser owns all mutable application state. It is not safe for concurrent use:
// the event loop is its only owner.
type Browser struct {
	fsys   files.FS
	canvas Canvas
	o      options

	uid, gid uint32

	path     string
	dir      files.Dir
	snapshot *files.Snapshot

	viewport Size
	scroll   int
	mouseY   int
	maxY     int
	status   string
	debug    bool
	help     bool
}

// New opens the directory at path and loads its first snapshot.
// The canvas is not painted until the first resize or expose event.
func New(fsys files.FS, canvas Canvas, path string, o ...Option) (*Browser, error) {
	b := &Browser{
		fsys:   fsys,
		canvas: canvas,
		path:   path,
		o: options{
			metrics: CellMetrics,
			palette: DefaultPalette,
			log:     zap.NewNop(),
			stats:   nopStats{},
		},
		maxY: math.MaxInt,
	}
	for _, option := range o {
		option(&b.o)
	}
	b.uid, b.gid = b.o.uid, b.o.gid
	b.debug = b.o.debug

	started := time.Now()
	dir, snapshot, err := b.open(path)
	if err != nil {
		return nil, err
	}
	b.dir = dir
	b.snapshot = snapshot
	b.o.stats.Loaded(time.Since(started), snapshot.Len(), snapshot.Dropped())
	b.o.log.Debug("browser started",
		zap.String("path", path),
		zap.Int("entries", snapshot.Len()),
		zap.Uint32("uid", b.uid),
		zap.Uint32("gid", b.gid))
	return b, nil
}

func (b *Browser) open(path string) (files.Dir, *files.Snapshot, error) {
	dir, err := files.Open(b.fsys, path)
	if err != nil {
		return nil, nil, err
	}
	snapshot, err := files.Read(b.fsys, dir, path,
		files.SkipUnreadable(b.o.skipUnreadable),
		files.WithLogger(b.o.log))
	if err != nil {
		_ = dir.Close()
		return nil, nil, err
	}
	return dir, snapshot, nil
}

// Close releases the open directory handle.
func (b *Browser) Close() error {
	if b.dir == nil {
		return nil
	}
	err := b.dir.Close()
	b.dir = nil
	return err
}

func (b *Browser) Path() string              { return b.path }
func (b *Browser) Snapshot() *files.Snapshot { return b.snapshot }
func (b *Browser) Scroll() int               { return b.scroll }
func (b *Browser) MouseY() int               { return b.mouseY }
func (b *Browser) Status() string            { return b.status }
func (b *Browser) Debug() bool               { return b.debug }
func (b *Browser) Help() bool                { return b.help }
func (b *Browser) Viewport() Size            { return b.viewport }

// Layout is the row geometry for the current scroll offset and viewport.
func (b *Browser) Layout() Layout {
	return b.layout()
}

func (b *Browser) layout() Layout {
	return ComputeLayout(b.o.metrics, b.viewport, b.scroll, b.snapshot.Len())
}

func (b *Browser) setStatus(text string) {
	if len(text) > MaxStatusLen {
		text = text[:MaxStatusLen]
	}
	b.status = text
}
