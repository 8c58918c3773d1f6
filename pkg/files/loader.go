package files

import (
	"github.com/filetug/fx/pkg/fsutils"
	"go.uber.org/zap"
)

type LoadOption func(o *loadOptions)

type loadOptions struct {
	skipUnreadable bool
	log            *zap.Logger
}

// SkipUnreadable makes a failed stat of one child skip that child instead of failing the load.
func SkipUnreadable(v bool) LoadOption {
	return func(o *loadOptions) {
		o.skipUnreadable = v
	}
}

func WithLogger(log *zap.Logger) LoadOption {
	return func(o *loadOptions) {
		o.log = log
	}
}

// Open opens the directory at path.
func Open(fsys FS, path string) (Dir, error) {
	dir, err := fsys.OpenDir(path)
	if err != nil {
		return nil, &DirectoryAccessError{Path: path, Op: "open", Err: err}
	}
	return dir, nil
}

// Read lists the open directory dir, which must be the directory at path,
// and stats every child through fsys.
// Once MaxEntries children are collected the rest are counted as dropped without a stat.
func Read(fsys FS, dir Dir, path string, o ...LoadOption) (*Snapshot, error) {
	opts := loadOptions{log: zap.NewNop()}
	for _, option := range o {
		option(&opts)
	}

	names, err := dir.ReadNames()
	if err != nil {
		return nil, &DirectoryAccessError{Path: path, Op: "read", Err: err}
	}

	entries := make([]DirEntry, 0, min(len(names), MaxEntries))
	dropped := 0
	for i, name := range names {
		if len(entries) == MaxEntries {
			dropped = len(names) - i
			break
		}
		name = boundName(name)
		var md Metadata
		probe, err := fsutils.Join(path, name)
		if err == nil {
			md, err = fsys.Stat(probe)
		} else {
			probe = path + fsutils.Separator + name
		}
		if err != nil {
			if !opts.skipUnreadable {
				return nil, &EntryMetadataError{Path: probe, Err: err}
			}
			opts.log.Warn("skipping unreadable entry",
				zap.String("dir", path),
				zap.String("name", name),
				zap.Error(err))
			continue
		}
		entries = append(entries, DirEntry{name: name, Metadata: md})
	}
	s := newSnapshot(path, entries, dropped)

	if s.dropped > 0 {
		opts.log.Info("directory listing truncated",
			zap.String("dir", path),
			zap.Int("kept", len(s.entries)),
			zap.Int("dropped", s.dropped))
	}
	return s, nil
}
