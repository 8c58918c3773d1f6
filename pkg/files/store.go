package files

// Metadata is the subset of stat(2) the browser needs for an entry.
type Metadata struct {
	Mode uint32 // st_mode: file type and permission bits
	UID  uint32
	GID  uint32
}

// FS is the filesystem seam used by the snapshot loader and the browser.
type FS interface {
	OpenDir(path string) (Dir, error)
	Stat(path string) (Metadata, error)
}

// Dir is an open directory handle.
// ReadNames reports every child name including "." and "..", in the order the OS returns them.
type Dir interface {
	ReadNames() ([]string, error)
	Close() error
}
