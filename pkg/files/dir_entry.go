package files

import (
	"strings"

	"golang.org/x/sys/unix"
)

// MaxNameLen is the longest entry name kept, in bytes. Longer names are truncated.
const MaxNameLen = 255

// DirEntry is one child of the displayed directory.
// Everything except YBottom is fixed once the entry is created.
type DirEntry struct {
	name string
	Metadata

	// YBottom is the exclusive bottom line of the row the entry was last painted at, 0 if not painted.
	YBottom int
}

func NewDirEntry(name string, md Metadata) DirEntry {
	return DirEntry{
		name:     boundName(name),
		Metadata: md,
	}
}

func boundName(name string) string {
	if i := strings.IndexByte(name, 0); i >= 0 {
		name = name[:i]
	}
	if len(name) > MaxNameLen {
		name = name[:MaxNameLen]
	}
	return name
}

func (e DirEntry) Name() string { return e.name }

// Len is the byte length of the name.
func (e DirEntry) Len() int { return len(e.name) }

func (e DirEntry) IsDir() bool {
	return e.Mode&unix.S_IFMT == unix.S_IFDIR
}

// TypeGlyph is the single character shown in front of the name.
func (e DirEntry) TypeGlyph() string {
	if e.IsDir() {
		return "d"
	}
	return "f"
}
