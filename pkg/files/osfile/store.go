package osfile

import (
	"fmt"
	"os"

	"github.com/filetug/fx/pkg/files"
	"golang.org/x/sys/unix"
)

var osOpen = os.Open
var unixStat = unix.Stat
var unixGetwd = unix.Getwd
var unixGetuid = unix.Getuid
var unixGetgid = unix.Getgid

var _ files.FS = (*Store)(nil)

// Store is the local filesystem.
type Store struct{}

func NewStore() *Store {
	return &Store{}
}

func (s Store) OpenDir(path string) (files.Dir, error) {
	f, err := osOpen(path)
	if err != nil {
		return nil, err
	}
	return &dirHandle{f: f}, nil
}

// Stat follows symlinks, like the listing does when it decides whether an entry is a directory.
func (s Store) Stat(path string) (files.Metadata, error) {
	var st unix.Stat_t
	if err := unixStat(path, &st); err != nil {
		return files.Metadata{}, &os.PathError{Op: "stat", Path: path, Err: err}
	}
	return files.Metadata{
		Mode: uint32(st.Mode),
		UID:  st.Uid,
		GID:  st.Gid,
	}, nil
}

type dirHandle struct {
	f *os.File
}

// ReadNames returns "." and ".." followed by the names os.File reports.
// The os package hides the two dot entries; they are how the user walks up.
func (d *dirHandle) ReadNames() ([]string, error) {
	names, err := d.f.Readdirnames(-1)
	if err != nil {
		return nil, err
	}
	return append([]string{".", ".."}, names...), nil
}

func (d *dirHandle) Close() error {
	return d.f.Close()
}

// Identity is the real uid/gid of the process.
type Identity struct {
	UID uint32
	GID uint32
}

// CurrentIdentity reads the process identity. Callers capture it once.
func CurrentIdentity() Identity {
	return Identity{
		UID: uint32(unixGetuid()),
		GID: uint32(unixGetgid()),
	}
}

// WorkingDir returns the absolute working directory of the process.
func WorkingDir() (string, error) {
	wd, err := unixGetwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return wd, nil
}
