package browser

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/filetug/fx/pkg/files"
	"github.com/filetug/fx/pkg/fsutils"
	"go.uber.org/zap"
)

const (
	statusNoPermission = "No permission"
	statusPathTooLong  = "Path too long"
)

// Handle processes one event to completion, including any redraw.
// A non-nil error is fatal: the browser could not keep a directory open.
func (b *Browser) Handle(ev Event) (Outcome, error) {
	switch ev := ev.(type) {
	case ResizeEvent:
		b.onResize(ev.Size)
	case ExposeEvent:
		b.Redraw()
	case ButtonEvent:
		return OutcomeContinue, b.onButton(ev)
	case KeyEvent:
		return b.onKey(ev.Key), nil
	case MotionEvent:
		b.onMotion(ev.Y)
	}
	return OutcomeContinue, nil
}

func (b *Browser) onResize(size Size) {
	b.viewport = size
	if b.canvas.Resize(size) {
		b.o.log.Debug("backing surface reallocated",
			zap.Int("width", size.Width),
			zap.Int("height", size.Height))
	}
	if maxScroll := b.layout().MaxScroll; b.scroll > maxScroll {
		b.scroll = maxScroll
	}
	b.Redraw()
}

func (b *Browser) onButton(ev ButtonEvent) error {
	switch ev.Button {
	case ButtonPrimary:
		return b.onPrimary(ev.Y)
	case ButtonScrollUp:
		b.scrollBy(-1)
	case ButtonScrollDown:
		b.scrollBy(1)
	}
	return nil
}

func (b *Browser) onPrimary(y int) error {
	row, ok := b.layout().RowAt(y)
	if !ok {
		return nil
	}
	entry := b.snapshot.At(row.Index)
	if !files.IsAccessible(*entry, b.uid, b.gid) {
		b.o.log.Info("no permission", zap.String("dir", b.path), zap.String("name", entry.Name()))
		b.o.stats.PermissionDenied()
		b.setStatus(statusNoPermission)
		b.Redraw()
		return nil
	}
	b.setStatus("")
	if entry.IsDir() {
		if err := b.navigate(entry.Name()); err != nil {
			return err
		}
	}
	b.Redraw()
	return nil
}

// scrollBy is ignored while every entry fits.
func (b *Browser) scrollBy(delta int) {
	l := b.layout()
	if !l.CanScroll {
		return
	}
	b.scroll = min(max(b.scroll+delta, 0), l.MaxScroll)
	b.Redraw()
}

func (b *Browser) onKey(key Key) Outcome {
	switch key {
	case KeyToggleDebug:
		b.debug = !b.debug
		b.Redraw()
	case KeyToggleHelp:
		b.help = !b.help
		b.Redraw()
	case KeyScrollUp:
		b.scrollBy(-1)
	case KeyScrollDown:
		b.scrollBy(1)
	case KeyQuit:
		return OutcomeQuit
	case KeyChangeDir:
		return OutcomeChangeDir
	}
	return OutcomeContinue
}

func (b *Browser) onMotion(y int) {
	m := b.o.metrics
	curr := m.RowIndex(b.mouseY)
	next := m.RowIndex(y)
	b.mouseY = y
	if y <= b.maxY && curr != next {
		b.Redraw()
	}
}

// navigate replaces path, handle and snapshot with those of the child segment.
// Failures that leave the previous directory usable are reported in the status line.
func (b *Browser) navigate(segment string) error {
	target, err := fsutils.Join(b.path, segment)
	if err != nil {
		b.setStatus(statusPathTooLong)
		return nil
	}

	started := time.Now()
	if err = b.Close(); err != nil {
		b.o.log.Warn("failed to close directory", zap.String("path", b.path), zap.Error(err))
	}

	dir, snapshot, err := b.open(target)
	if err != nil {
		b.reportOpenError(segment, err)
		if b.dir, err = files.Open(b.fsys, b.path); err != nil {
			return fmt.Errorf("failed to reopen %s: %w", b.path, err)
		}
		return nil
	}

	b.o.log.Debug("navigated",
		zap.String("from", b.path),
		zap.String("to", target),
		zap.Int("entries", snapshot.Len()))
	b.path = target
	b.dir = dir
	b.snapshot = snapshot
	b.scroll = 0
	b.o.stats.Loaded(time.Since(started), snapshot.Len(), snapshot.Dropped())
	b.o.stats.Navigation()
	return nil
}

func (b *Browser) reportOpenError(segment string, err error) {
	b.o.log.Warn("failed to open directory",
		zap.String("dir", b.path),
		zap.String("name", segment),
		zap.Error(err))
	if errors.Is(err, fs.ErrPermission) {
		b.o.stats.PermissionDenied()
		b.setStatus(statusNoPermission)
		return
	}
	b.setStatus(fmt.Sprintf("Cannot open %s: %v", segment, rootCause(err)))
}

func rootCause(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}
