package scanner

import (
	"bytes"
	"unicode/utf8"

	"github.com/cheerioskun/codevol/internal/utils"
	"github.com/spf13/afero"
)

// LineCounter counts lines in files on an afero filesystem
type LineCounter struct {
	fs afero.Fs
}

// NewLineCounter creates a new line counter
func NewLineCounter(fs afero.Fs) *LineCounter {
	return &LineCounter{fs: fs}
}

// Count returns the number of lines in the file at path.
// Unreadable or non-UTF-8 content counts as zero; it never fails.
func (lc *LineCounter) Count(path string) int64 {
	data, err := afero.ReadFile(lc.fs, path)
	if err != nil {
		utils.Warning("failed to read %s, counting 0 lines: %v", path, err)
		return 0
	}
	if !utf8.Valid(data) {
		utils.Debug("%s is not text, counting 0 lines", path)
		return 0
	}
	return CountLines(data)
}

// CountLines counts newline-terminated lines, plus a trailing line without a
// terminator
func CountLines(data []byte) int64 {
	if len(data) == 0 {
		return 0
	}
	lines := int64(bytes.Count(data, []byte{'\n'}))
	if data[len(data)-1] != '\n' {
		lines++
	}
	return lines
}
