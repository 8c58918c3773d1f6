package files

// MaxEntries is the capacity of a snapshot. Children past it are dropped.
const MaxEntries = 1024

// Snapshot is the sorted, bounded listing of one directory.
// It is replaced as a whole on navigation and never patched.
type Snapshot struct {
	path    string
	entries []DirEntry
	dropped int
}

// newSnapshot keeps at most MaxEntries of entries, in arrival order, and sorts them.
// dropped counts children already left out by the caller.
func newSnapshot(path string, entries []DirEntry, dropped int) *Snapshot {
	s := &Snapshot{path: path, dropped: dropped}
	if len(entries) > MaxEntries {
		s.dropped += len(entries) - MaxEntries
		entries = entries[:MaxEntries]
	}
	s.entries = entries
	Sort(s.entries)
	return s
}

func (s *Snapshot) Path() string {
	return s.path
}

// Len is the number of valid entries.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

// At returns the i-th entry, or nil past the end of the valid entries.
func (s *Snapshot) At(i int) *DirEntry {
	if s == nil || i < 0 || i >= len(s.entries) {
		return nil
	}
	return &s.entries[i]
}

// Entries returns the valid entries. The slice aliases the snapshot.
func (s *Snapshot) Entries() []DirEntry {
	if s == nil {
		return nil
	}
	return s.entries
}

// Dropped is the number of children discarded because the snapshot was full.
func (s *Snapshot) Dropped() int {
	if s == nil {
		return 0
	}
	return s.dropped
}
