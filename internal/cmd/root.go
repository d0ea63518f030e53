package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cheerioskun/codevol/internal/config"
	"github.com/cheerioskun/codevol/internal/navigation"
	"github.com/cheerioskun/codevol/internal/scanner"
	"github.com/cheerioskun/codevol/internal/utils"
	"github.com/cheerioskun/codevol/ui"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const defaultRoot = "src"

var (
	cfgFile string
	initErr error
)

// rootCmd starts the interactive browser
var rootCmd = &cobra.Command{
	Use:   "codevol [root]",
	Short: "Browse line counts by directory",
	Long: `Browse how many lines of code live under each directory.

The browser lists the immediate children of a directory, largest first, with
each directory showing the line total of every matching file beneath it.
Navigation never leaves the starting directory.

Keys:
  up/k, down/j     move the selection
  right/l          enter the selected directory
  left/h           go to the parent directory
  q, esc           quit

Examples:
  codevol
  codevol ./internal --ext go
  codevol . -e ts,tsx -x node_modules -x '*.min.js'`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runBrowse,
}

// Execute runs the command tree
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is ./"+config.FileName+" or $HOME/"+config.FileName+")")
	pf.StringP(config.KeyExt, "e", "", "comma-separated extensions to count (default all files)")
	pf.StringSliceP(config.KeyExclude, "x", nil, "glob of file or directory names to skip (repeatable)")
	pf.String(config.KeyLogFile, utils.DefaultLogPath(), "log file path")
	pf.BoolP(config.KeyVerbose, "v", false, "verbose logging")

	// Bind flags to viper
	for _, key := range []string{config.KeyExt, config.KeyExclude, config.KeyLogFile, config.KeyVerbose} {
		viper.BindPFlag(key, pf.Lookup(key))
	}
}

func initConfig() {
	initErr = config.Init(viper.GetViper(), cfgFile)
}

// loadConfig resolves settings and points the logger at the configured file
func loadConfig() (*config.Config, error) {
	if initErr != nil {
		return nil, initErr
	}
	cfg, err := config.FromViper(viper.GetViper())
	if err != nil {
		return nil, err
	}
	if err := utils.Configure(cfg.LogFile, cfg.Verbose); err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return cfg, nil
}

// rootArg returns the directory argument as an absolute path
func rootArg(args []string, fallback string) (string, error) {
	root := fallback
	if len(args) > 0 {
		root = args[0]
	}
	absPath, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("failed to resolve absolute path: %w", err)
	}
	return absPath, nil
}

func newAggregator(fs afero.Fs, cfg *config.Config) (*scanner.Aggregator, error) {
	exclude, err := cfg.Excluder()
	if err != nil {
		return nil, err
	}
	return scanner.NewAggregator(fs, cfg.Filter(), exclude), nil
}

// openSession builds the navigation state at root. The initial listing is
// the only fatal filesystem failure.
func openSession(fs afero.Fs, cfg *config.Config, root string) (*navigation.State, error) {
	agg, err := newAggregator(fs, cfg)
	if err != nil {
		return nil, err
	}
	state, err := navigation.New(agg, navigation.NewResolver(fs), root)
	if err != nil {
		return nil, fmt.Errorf("failed to open root: %w", err)
	}
	return state, nil
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	root, err := rootArg(args, defaultRoot)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		fmt.Fprintf(os.Stderr, "Opening: %s\n", root)
		fmt.Fprintf(os.Stderr, "Logging to: %s\n", cfg.LogFile)
	}
	utils.Info("starting browser at %s (extensions %v, exclude %v)", root, cfg.Extensions, cfg.Exclude)

	state, err := openSession(afero.NewOsFs(), cfg, root)
	if err != nil {
		return err
	}

	program := tea.NewProgram(ui.NewAppModel(state), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
