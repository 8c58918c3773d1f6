package files

// Compare orders two names byte by byte using unsigned byte values.
// When one name is a prefix of the other the shorter one sorts first.
func Compare(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] < b[i] {
			return -1
		} else if a[i] > b[i] {
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	// Two children of one directory never compare equal.
	return 0
}

// Sort orders entries by name in place.
// It is a quicksort with Hoare partitioning around the first element of each subrange,
// not stable, which does not matter for names unique within a directory.
func Sort(entries []DirEntry) {
	quicksort(entries, 0, len(entries)-1)
}

func quicksort(a []DirEntry, lo, hi int) {
	if lo >= 0 && hi >= 0 && lo < hi {
		p := partition(a, lo, hi)
		quicksort(a, lo, p)
		quicksort(a, p+1, hi)
	}
}

func partition(a []DirEntry, lo, hi int) int {
	pivot := a[lo].name
	i, j := lo-1, hi+1
	for {
		for {
			i++
			if Compare(a[i].name, pivot) >= 0 {
				break
			}
		}
		for {
			j--
			if Compare(a[j].name, pivot) <= 0 {
				break
			}
		}
		if i >= j {
			return j
		}
		a[i], a[j] = a[j], a[i]
	}
}
