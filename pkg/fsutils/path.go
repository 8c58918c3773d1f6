package fsutils

import (
	"errors"
	"strings"
)

const (
	Separator = "/"
	Root      = "/"

	// MaxPathLen is the longest working path Join produces, in bytes (Linux PATH_MAX).
	MaxPathLen = 4096
)

var ErrPathTooLong = errors.New("path too long")

// Join applies one path segment to an absolute working path without touching the filesystem.
//
//   - "." leaves the path as is
//   - ".." drops the last component, and is a no-op at the root
//   - anything else is appended after a single separator
func Join(wd, segment string) (string, error) {
	var result string
	switch {
	case segment == ".":
		result = wd
	case segment == "..":
		result = parent(wd)
	case wd == Root:
		result = Root + segment
	default:
		result = wd + Separator + segment
	}
	if len(result) > MaxPathLen {
		return wd, ErrPathTooLong
	}
	return result, nil
}

func parent(wd string) string {
	if wd == Root {
		return wd
	}
	i := strings.LastIndex(wd, Separator)
	if i <= 0 {
		// The last separator is the root one, keep it.
		return Root
	}
	return wd[:i]
}
