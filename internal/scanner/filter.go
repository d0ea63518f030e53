package scanner

import (
	"path/filepath"
	"sort"
	"strings"
)

// ExtensionFilter decides which files contribute to line counts.
// An empty filter accepts every file.
type ExtensionFilter struct {
	exts map[string]struct{}
}

// ParseExtensions splits a comma separated extension list. Entries are
// trimmed, a single leading dot is dropped, and empty entries are skipped.
func ParseExtensions(list string) []string {
	var exts []string
	for _, part := range strings.Split(list, ",") {
		ext := strings.TrimPrefix(strings.TrimSpace(part), ".")
		if ext == "" {
			continue
		}
		exts = append(exts, ext)
	}
	return exts
}

// NewExtensionFilter creates a filter over the given extensions (without dots)
func NewExtensionFilter(exts []string) *ExtensionFilter {
	f := &ExtensionFilter{exts: make(map[string]struct{}, len(exts))}
	for _, ext := range exts {
		ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
		if ext != "" {
			f.exts[ext] = struct{}{}
		}
	}
	return f
}

// MatchAll returns true when the filter accepts every file
func (f *ExtensionFilter) MatchAll() bool {
	return f == nil || len(f.exts) == 0
}

// Matches reports whether the file at path qualifies. Comparison is case-sensitive.
func (f *ExtensionFilter) Matches(path string) bool {
	if f.MatchAll() {
		return true
	}
	ext, ok := Extension(path)
	if !ok {
		return false
	}
	_, found := f.exts[ext]
	return found
}

// Extensions returns the accepted extensions in sorted order
func (f *ExtensionFilter) Extensions() []string {
	if f == nil {
		return nil
	}
	exts := make([]string, 0, len(f.exts))
	for ext := range f.exts {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Extension returns the extension of path without its leading dot.
// Dotfiles such as ".bashrc" have no extension.
func Extension(path string) (string, bool) {
	name := filepath.Base(path)
	ext := filepath.Ext(name)
	if ext == "" || ext == name {
		return "", false
	}
	return ext[1:], true
}
