package browser

import (
	"time"

	"go.uber.org/zap"
)

// Stats receives counters about what the browser does.
type Stats interface {
	Redraw()
	// Loaded reports every snapshot that became current, the first one included.
	Loaded(took time.Duration, entries, dropped int)
	Navigation()
	PermissionDenied()
}

type nopStats struct{}

func (nopStats) Redraw()                        {}
func (nopStats) Loaded(time.Duration, int, int) {}
func (nopStats) Navigation()                    {}
func (nopStats) PermissionDenied()              {}

type options struct {
	uid, gid       uint32
	metrics        Metrics
	palette        Palette
	debug          bool
	skipUnreadable bool
	log            *zap.Logger
	stats          Stats
}

type Option func(o *options)

// WithIdentity sets the uid/gid used by the permission heuristic.
// The caller reads the process identity once and passes it here.
func WithIdentity(uid, gid uint32) Option {
	return func(o *options) {
		o.uid = uid
		o.gid = gid
	}
}

func WithPalette(p Palette) Option {
	return func(o *options) {
		o.palette = p
	}
}

// WithDebug starts with the debug overlay on.
func WithDebug(enabled bool) Option {
	return func(o *options) {
		o.debug = enabled
	}
}

// WithSkipUnreadable makes a failed stat of one child skip it instead of failing the listing.
func WithSkipUnreadable(skip bool) Option {
	return func(o *options) {
		o.skipUnreadable = skip
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

func WithStats(s Stats) Option {
	return func(o *options) {
		o.stats = s
	}
}
