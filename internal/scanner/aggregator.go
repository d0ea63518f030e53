package scanner

import (
	"errors"
	"fmt"
	"os"

	"github.com/cheerioskun/codevol/internal/models"
	"github.com/cheerioskun/codevol/internal/utils"
	"github.com/spf13/afero"
)

// ErrNotDirectory is returned when a listed path exists but is not a directory
var ErrNotDirectory = errors.New("not a directory")

// Aggregator builds line-count listings for directories
type Aggregator struct {
	fs      afero.Fs
	filter  *ExtensionFilter
	walker  *Walker
	counter *LineCounter
}

// NewAggregator creates an aggregator. filter and exclude may be nil, which
// accepts every file and excludes nothing.
func NewAggregator(fs afero.Fs, filter *ExtensionFilter, exclude *Excluder) *Aggregator {
	return &Aggregator{
		fs:      fs,
		filter:  filter,
		walker:  NewWalker(fs, exclude),
		counter: NewLineCounter(fs),
	}
}

// Filter returns the active extension filter
func (a *Aggregator) Filter() *ExtensionFilter {
	return a.filter
}

// ListChildren lists the immediate children of dir, largest line total first.
//
// Directories carry the total of every matching file beneath them and are
// listed even when that total is zero. Files are listed only when they match
// the filter. Failing to open dir itself is an error; problems with single
// entries are logged and skipped.
func (a *Aggregator) ListChildren(dir string) (models.Listing, error) {
	info, err := a.fs.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to access directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", dir, ErrNotDirectory)
	}

	children, err := a.walker.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	listing := make(models.Listing, 0, len(children))
	for _, child := range children {
		info := child.Info
		if info.Mode()&os.ModeSymlink != 0 {
			target, err := a.fs.Stat(child.Path)
			if err != nil {
				utils.Warning("skipping dangling link %s: %v", child.Path, err)
				continue
			}
			info = target
		}

		switch {
		case info.IsDir():
			listing = append(listing, models.NewDirEntry(child.Path, a.SubtreeLines(child.Path)))
		case info.Mode().IsRegular() && a.filter.Matches(child.Path):
			listing = append(listing, models.NewFileEntry(child.Path, a.counter.Count(child.Path)))
		}
	}

	listing.SortByCount()
	utils.Debug("listed %s: %d entries, %d lines", dir, len(listing), listing.Total())
	return listing, nil
}

// SubtreeLines sums the line counts of every matching regular file under dir
func (a *Aggregator) SubtreeLines(dir string) int64 {
	var total int64
	for node := range a.walker.Walk(dir) {
		if !node.Info.Mode().IsRegular() {
			continue
		}
		if a.filter.Matches(node.Path) {
			total += a.counter.Count(node.Path)
		}
	}
	return total
}
