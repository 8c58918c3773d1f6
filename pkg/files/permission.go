package files

import "golang.org/x/sys/unix"

// IsAccessible guesses whether the given identity may enter a directory or read a file.
// Supplementary groups and superuser bypass are ignored; the OS still decides on open.
func IsAccessible(e DirEntry, uid, gid uint32) bool {
	m := e.Mode
	if e.IsDir() {
		return m&unix.S_IXOTH != 0 ||
			(m&unix.S_IXUSR != 0 && e.UID == uid) ||
			(m&unix.S_IXGRP != 0 && e.GID == gid)
	}
	return m&unix.S_IROTH != 0 ||
		(m&unix.S_IRUSR != 0 && e.UID == uid) ||
		(m&unix.S_IRGRP != 0 && e.GID == gid)
}
