package scanner

import (
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"sort"

	"github.com/cheerioskun/codevol/internal/utils"
	"github.com/spf13/afero"
)

// Node is one filesystem entry produced by a walk
type Node struct {
	Path string
	Info os.FileInfo
}

// Walker enumerates directory trees on an afero filesystem
type Walker struct {
	fs      afero.Fs
	exclude *Excluder
}

// NewWalker creates a walker. exclude may be nil.
func NewWalker(fs afero.Fs, exclude *Excluder) *Walker {
	return &Walker{fs: fs, exclude: exclude}
}

// Walk yields root and every entry beneath it, depth first, in name order
// within each directory. Every call starts a fresh traversal.
//
// The root is resolved through symlinks; entries below it are not, so a walk
// never leaves the tree through a link. Directories that cannot be read are
// logged and skipped.
func (w *Walker) Walk(root string) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		info, err := w.fs.Stat(root)
		if err != nil {
			utils.Warning("failed to access %s: %v", root, err)
			return
		}

		stack := []Node{{Path: root, Info: info}}
		for len(stack) > 0 {
			node := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if !yield(node) {
				return
			}
			if !node.Info.IsDir() {
				continue
			}

			children, err := w.ReadDir(node.Path)
			if err != nil {
				utils.Warning("failed to scan directory %s: %v", node.Path, err)
				continue
			}
			// Reverse push keeps name order on pop
			for i := len(children) - 1; i >= 0; i-- {
				stack = append(stack, children[i])
			}
		}
	}
}

// ReadDir returns the immediate entries of dir sorted by name, without
// following symlinks. Entries that vanish or cannot be stat'ed are skipped.
func (w *Walker) ReadDir(dir string) ([]Node, error) {
	f, err := w.fs.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open directory %s: %w", dir, err)
	}
	names, err := f.Readdirnames(-1)
	f.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}
	sort.Strings(names)

	nodes := make([]Node, 0, len(names))
	for _, name := range names {
		if w.exclude.Excluded(name) {
			continue
		}
		path := filepath.Join(dir, name)
		info, err := w.lstat(path)
		if err != nil {
			utils.Warning("failed to stat %s: %v", path, err)
			continue
		}
		nodes = append(nodes, Node{Path: path, Info: info})
	}
	return nodes, nil
}

func (w *Walker) lstat(path string) (os.FileInfo, error) {
	if lst, ok := w.fs.(afero.Lstater); ok {
		info, _, err := lst.LstatIfPossible(path)
		return info, err
	}
	return w.fs.Stat(path)
}
