package files

import "fmt"

// DirectoryAccessError reports a failure to open or read a directory.
type DirectoryAccessError struct {
	Path string
	Op   string
	Err  error
}

func (e *DirectoryAccessError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *DirectoryAccessError) Unwrap() error {
	return e.Err
}

// EntryMetadataError reports a failed stat of one child while loading a snapshot.
type EntryMetadataError struct {
	Path string
	Err  error
}

func (e *EntryMetadataError) Error() string {
	return fmt.Sprintf("stat %s: %v", e.Path, e.Err)
}

func (e *EntryMetadataError) Unwrap() error {
	return e.Err
}
