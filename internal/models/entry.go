package models

import (
	"path/filepath"
	"slices"
)

// Kind tells whether an entry is a file or a directory
type Kind uint8

const (
	KindFile Kind = iota
	KindDirectory
)

// String returns a human-readable representation of the kind
func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "dir"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind by name
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Entry is one immediate child of a listed directory.
//
// For a directory, Count is the line total of every matching file beneath it.
// For a file, Count is its own line count. Use NewFileEntry or NewDirEntry to
// build one.
type Entry struct {
	Path  string `json:"path"`  // Full path of the child
	Name  string `json:"name"`  // Base name, used for display
	Kind  Kind   `json:"kind"`  // File or directory
	Count int64  `json:"count"` // Line total
}

// NewFileEntry creates an entry for a matching file
func NewFileEntry(path string, lines int64) Entry {
	return newEntry(path, KindFile, lines)
}

// NewDirEntry creates an entry for a directory with its aggregated line total
func NewDirEntry(path string, lines int64) Entry {
	return newEntry(path, KindDirectory, lines)
}

func newEntry(path string, kind Kind, count int64) Entry {
	if count < 0 {
		count = 0
	}
	return Entry{
		Path:  path,
		Name:  filepath.Base(path),
		Kind:  kind,
		Count: count,
	}
}

// IsDir returns true for directory entries
func (e Entry) IsDir() bool {
	return e.Kind == KindDirectory
}

// Listing is the ordered set of entries for one directory
type Listing []Entry

// SortByCount orders the listing by count, largest first. Ties keep their
// enumeration order.
func (l Listing) SortByCount() {
	slices.SortStableFunc(l, func(a, b Entry) int {
		switch {
		case a.Count > b.Count:
			return -1
		case a.Count < b.Count:
			return 1
		default:
			return 0
		}
	})
}

// Total returns the sum of all entry counts
func (l Listing) Total() int64 {
	var total int64
	for _, e := range l {
		total += e.Count
	}
	return total
}

// Share returns count as a percentage of total
func Share(count, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}

// At returns the entry at index i, or false when i is out of range
func (l Listing) At(i int) (Entry, bool) {
	if i < 0 || i >= len(l) {
		return Entry{}, false
	}
	return l[i], true
}

// Names returns the entry names in listing order
func (l Listing) Names() []string {
	names := make([]string, len(l))
	for i, e := range l {
		names[i] = e.Name
	}
	return names
}
