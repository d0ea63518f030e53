package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/cheerioskun/codevol/internal/models"
	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"
)

// Format selects how a report is rendered
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat validates a format name
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatText, FormatJSON:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown report format %q (want text or json)", name)
	}
}

// Report is a snapshot of one directory listing
type Report struct {
	Path       string         `json:"path"`
	Extensions []string       `json:"extensions"`
	Total      int64          `json:"total"`
	Entries    models.Listing `json:"entries"`
}

// New creates a report for the listing of dir
func New(dir string, extensions []string, listing models.Listing) *Report {
	if extensions == nil {
		extensions = []string{}
	}
	if listing == nil {
		listing = models.Listing{}
	}
	return &Report{
		Path:       dir,
		Extensions: extensions,
		Total:      listing.Total(),
		Entries:    listing,
	}
}

// Service writes reports to writers or files
type Service struct {
	fs afero.Fs
}

// NewService creates a new report service
func NewService(fs afero.Fs) *Service {
	return &Service{fs: fs}
}

// Write renders r to w in the given format
func (s *Service) Write(w io.Writer, r *Report, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		return nil
	case FormatText, "":
		_, err := io.WriteString(w, renderText(r))
		return err
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

// WriteFile renders r into the file at path, creating parent directories.
// An existing file is only replaced when overwrite is set.
func (s *Service) WriteFile(path string, r *Report, format Format, overwrite bool) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := s.fs.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	if !overwrite {
		if exists, err := afero.Exists(s.fs, path); err != nil {
			return fmt.Errorf("failed to check if destination exists: %w", err)
		} else if exists {
			return fmt.Errorf("destination file exists and overwrite is disabled: %s", path)
		}
	}

	f, err := s.fs.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	return s.Write(f, r, format)
}

func renderText(r *Report) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("LINES", "SHARE", "KIND", "NAME")

	for _, e := range r.Entries {
		name := e.Name
		if e.IsDir() {
			name += "/"
		}
		t.Row(
			humanize.Comma(e.Count),
			fmt.Sprintf("%.1f%%", models.Share(e.Count, r.Total)),
			e.Kind.String(),
			name,
		)
	}

	filter := "all files"
	if len(r.Extensions) > 0 {
		filter = strings.Join(r.Extensions, ",")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Code Volume - %s\n", r.Path)
	fmt.Fprintf(&b, "Filter: %s\n", filter)
	b.WriteString(t.Render())
	fmt.Fprintf(&b, "\nTotal: %s lines in %d entries\n", humanize.Comma(r.Total), len(r.Entries))
	return b.String()
}
