package cmd

import (
	"fmt"
	"io"

	"github.com/cheerioskun/codevol/internal/config"
	"github.com/cheerioskun/codevol/internal/report"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	scanJSON   bool
	scanOutput string
	scanForce  bool
)

// scanCmd prints one listing without starting the browser
var scanCmd = &cobra.Command{
	Use:   "scan [root]",
	Short: "Print the line counts of a directory's children",
	Long: `Print the listing the browser would show for a directory.

Entries are ordered largest first. Directories show the total of every
matching file beneath them.

Examples:
  codevol scan
  codevol scan ./internal -e go
  codevol scan . --json -o report.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

// scanOptions controls how a scan is written
type scanOptions struct {
	format report.Format
	output string
	force  bool
}

func init() {
	rootCmd.AddCommand(scanCmd)

	// Scan-specific flags
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "write JSON instead of a table")
	scanCmd.Flags().StringVarP(&scanOutput, "output", "o", "", "write the report to a file")
	scanCmd.Flags().BoolVar(&scanForce, "force", false, "overwrite an existing output file")
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	root, err := rootArg(args, defaultRoot)
	if err != nil {
		return err
	}

	opts := scanOptions{format: report.FormatText, output: scanOutput, force: scanForce}
	if scanJSON {
		opts.format = report.FormatJSON
	}
	return scan(cmd.OutOrStdout(), afero.NewOsFs(), cfg, root, opts)
}

func scan(w io.Writer, fs afero.Fs, cfg *config.Config, root string, opts scanOptions) error {
	agg, err := newAggregator(fs, cfg)
	if err != nil {
		return err
	}

	listing, err := agg.ListChildren(root)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	r := report.New(root, cfg.Extensions, listing)
	svc := report.NewService(fs)

	if opts.output == "" {
		return svc.Write(w, r, opts.format)
	}

	if err := svc.WriteFile(opts.output, r, opts.format, opts.force); err != nil {
		return err
	}
	fmt.Fprintf(w, "Report written to: %s\n", opts.output)
	return nil
}
