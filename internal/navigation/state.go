// Package navigation tracks the position of an interactive session inside a
// directory tree that it may never leave.
package navigation

import (
	"fmt"
	"path/filepath"

	"github.com/cheerioskun/codevol/internal/models"
	"github.com/cheerioskun/codevol/internal/utils"
)

// Command is one navigation request
type Command int

const (
	SelectPrev Command = iota
	SelectNext
	MoveToParent
	MoveToChild
	Exit
)

// String returns a human-readable representation of the command
func (c Command) String() string {
	switch c {
	case SelectPrev:
		return "SelectPrev"
	case SelectNext:
		return "SelectNext"
	case MoveToParent:
		return "MoveToParent"
	case MoveToChild:
		return "MoveToChild"
	case Exit:
		return "Exit"
	default:
		return fmt.Sprintf("Command(%d)", int(c))
	}
}

// Lister builds the listing for a directory
type Lister interface {
	ListChildren(dir string) (models.Listing, error)
}

// State is the navigation state of one session: where it is, the boundary it
// may not cross, and what is selected.
//
// The current path is always the root or a descendant of it, compared in
// canonical form. The selection is -1 exactly when the listing is empty.
type State struct {
	lister   Lister
	resolver *Resolver

	root          string
	canonicalRoot string
	current       string
	listing       models.Listing
	selected      int
	exited        bool
}

// New creates a state positioned at root. Failing to list root is fatal.
func New(lister Lister, resolver *Resolver, root string) (*State, error) {
	root = filepath.Clean(root)
	listing, err := lister.ListChildren(root)
	if err != nil {
		return nil, err
	}

	return &State{
		lister:        lister,
		resolver:      resolver,
		root:          root,
		canonicalRoot: resolver.Canonical(root),
		current:       root,
		listing:       listing,
		selected:      firstIndex(listing),
	}, nil
}

func firstIndex(l models.Listing) int {
	if len(l) == 0 {
		return -1
	}
	return 0
}

// Root returns the boundary directory
func (s *State) Root() string { return s.root }

// Current returns the directory being shown
func (s *State) Current() string { return s.current }

// Listing returns the entries of the current directory
func (s *State) Listing() models.Listing { return s.listing }

// Exited returns true once Exit has been applied
func (s *State) Exited() bool { return s.exited }

// Selected returns the selection index, or false when the listing is empty
func (s *State) Selected() (int, bool) {
	return s.selected, s.selected >= 0
}

// SelectedEntry returns the entry under the selection
func (s *State) SelectedEntry() (models.Entry, bool) {
	return s.listing.At(s.selected)
}

// AtRoot reports whether the current directory is canonically the root
func (s *State) AtRoot() bool {
	return s.resolver.Canonical(s.current) == s.canonicalRoot
}

// Apply runs cmd and reports whether the state changed. Refused commands are
// silent no-ops. An error means a move was refused because the target could
// not be listed; the state is unchanged in that case too.
func (s *State) Apply(cmd Command) (bool, error) {
	if s.exited {
		return false, nil
	}

	var (
		changed bool
		err     error
	)
	switch cmd {
	case SelectPrev:
		changed = s.SelectPrev()
	case SelectNext:
		changed = s.SelectNext()
	case MoveToParent:
		changed, err = s.MoveToParent()
	case MoveToChild:
		changed, err = s.MoveToChild()
	case Exit:
		s.exited = true
		changed = true
	default:
		return false, fmt.Errorf("unknown command %v", cmd)
	}

	utils.Debug("%v at %s: changed=%t", cmd, s.current, changed)
	return changed, err
}

// SelectPrev moves the selection up one row, stopping at the first
func (s *State) SelectPrev() bool {
	if s.selected <= 0 {
		return false
	}
	s.selected--
	return true
}

// SelectNext moves the selection down one row, stopping at the last
func (s *State) SelectNext() bool {
	if s.selected < 0 || s.selected >= len(s.listing)-1 {
		return false
	}
	s.selected++
	return true
}

// MoveToChild enters the selected directory. Files, an empty selection and
// directories that resolve outside the root are ignored.
func (s *State) MoveToChild() (bool, error) {
	entry, ok := s.SelectedEntry()
	if !ok || !entry.IsDir() {
		return false, nil
	}
	if !s.contains(entry.Path) {
		utils.Debug("refusing to enter %s: outside %s", entry.Path, s.canonicalRoot)
		return false, nil
	}
	return s.moveTo(entry.Path)
}

// MoveToParent goes up one level unless that would leave the root
func (s *State) MoveToParent() (bool, error) {
	if s.AtRoot() {
		return false, nil
	}
	parent := filepath.Dir(s.current)
	if parent == s.current || !s.contains(parent) {
		utils.Debug("refusing to leave %s for %s", s.canonicalRoot, parent)
		return false, nil
	}
	return s.moveTo(parent)
}

func (s *State) contains(path string) bool {
	return IsWithin(s.canonicalRoot, s.resolver.Canonical(path))
}

func (s *State) moveTo(dir string) (bool, error) {
	listing, err := s.lister.ListChildren(dir)
	if err != nil {
		return false, fmt.Errorf("failed to open %s: %w", dir, err)
	}
	s.current = dir
	s.listing = listing
	s.selected = firstIndex(listing)
	return true, nil
}
