package cmd

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/cheerioskun/codevol/internal/config"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var initForce bool

// initCmd writes the resolved settings into a config file
var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write a " + config.FileName + " with the current settings",
	Long: `Save the extension filter and exclude patterns to a config file so later
runs from that directory pick them up.

Examples:
  codevol init -e go
  codevol init ./web -e ts,tsx -x node_modules
  codevol init --force -e py`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config file")
}

func runInit(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dir, err := rootArg(args, ".")
	if err != nil {
		return err
	}

	return writeConfig(cmd.OutOrStdout(), afero.NewOsFs(), dir, cfg, initForce)
}

// writeConfig saves the filter settings of cfg to dir/FileName
func writeConfig(w io.Writer, fs afero.Fs, dir string, cfg *config.Config, force bool) error {
	path := filepath.Join(dir, config.FileName)

	if err := fs.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetFs(fs)
	v.Set(config.KeyExt, nonNil(cfg.Extensions))
	v.Set(config.KeyExclude, nonNil(cfg.Exclude))

	var err error
	if force {
		err = v.WriteConfigAs(path)
	} else {
		err = v.SafeWriteConfigAs(path)
	}
	if err != nil {
		var exists viper.ConfigFileAlreadyExistsError
		if errors.As(err, &exists) {
			return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
		}
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	fmt.Fprintf(w, "Configuration saved to: %s\n", path)
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
