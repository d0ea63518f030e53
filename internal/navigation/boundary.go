package navigation

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Resolver turns paths into the canonical form used for boundary checks
type Resolver struct {
	followLinks bool
}

// NewResolver creates a resolver for fs. Symlinks are resolved only on the
// OS filesystem; other afero backends have none.
func NewResolver(fs afero.Fs) *Resolver {
	_, isOs := fs.(*afero.OsFs)
	return &Resolver{followLinks: isOs}
}

// Canonical returns the absolute, symlink-resolved form of path. When
// resolution fails the cleaned absolute path is returned.
func (r *Resolver) Canonical(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = filepath.Clean(path)
	}
	if r.followLinks {
		if resolved, err := filepath.EvalSymlinks(abs); err == nil {
			return resolved
		}
	}
	return abs
}

// IsWithin reports whether path equals root or lies beneath it. Both must
// already be canonical. Comparison is by path components, so "/p2" is not
// within "/p".
func IsWithin(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	if rel == "." {
		return true
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
