package scanner

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

// Excluder skips entries whose base name matches one of its glob patterns
type Excluder struct {
	patterns []string
	globs    []glob.Glob
}

// NewExcluder compiles the given patterns. Blank patterns are ignored.
func NewExcluder(patterns []string) (*Excluder, error) {
	ex := &Excluder{}
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", p, err)
		}
		ex.patterns = append(ex.patterns, p)
		ex.globs = append(ex.globs, g)
	}
	return ex, nil
}

// Excluded reports whether name matches any pattern
func (ex *Excluder) Excluded(name string) bool {
	if ex == nil {
		return false
	}
	for _, g := range ex.globs {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// Patterns returns the compiled pattern sources
func (ex *Excluder) Patterns() []string {
	if ex == nil {
		return nil
	}
	return ex.patterns
}
