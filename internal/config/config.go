package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cheerioskun/codevol/internal/scanner"
	"github.com/cheerioskun/codevol/internal/utils"
	"github.com/spf13/viper"
)

// Configuration keys shared by flags, environment and config files
const (
	KeyExt     = "ext"
	KeyExclude = "exclude"
	KeyLogFile = "log-file"
	KeyVerbose = "verbose"

	// FileName is the config file searched for when --config is not given
	FileName = ".codevol.yaml"

	EnvPrefix = "CODEVOL"
)

// Config holds the resolved settings for one run
type Config struct {
	Extensions []string // Accepted extensions without dots; empty accepts all
	Exclude    []string // Glob patterns matched against base names
	LogFile    string
	Verbose    bool
}

// SetDefaults registers default values on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyExt, "")
	v.SetDefault(KeyExclude, []string{})
	v.SetDefault(KeyLogFile, utils.DefaultLogPath())
	v.SetDefault(KeyVerbose, false)
}

// Init wires environment lookup and reads the config file into v.
// cfgFile takes precedence; otherwise FileName is searched in the working
// directory and then the home directory. A missing file is not an error.
func Init(v *viper.Viper, cfgFile string) error {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(strings.TrimSuffix(FileName, filepath.Ext(FileName)))
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// FromViper resolves a Config from v. The ext key may hold a comma separated
// string or a list.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Extensions: scanner.ParseExtensions(strings.Join(v.GetStringSlice(KeyExt), ",")),
		LogFile:    v.GetString(KeyLogFile),
		Verbose:    v.GetBool(KeyVerbose),
	}

	for _, p := range v.GetStringSlice(KeyExclude) {
		if p = strings.TrimSpace(p); p != "" {
			cfg.Exclude = append(cfg.Exclude, p)
		}
	}

	// Validate patterns up front so a bad one fails before the UI starts
	if _, err := scanner.NewExcluder(cfg.Exclude); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Filter builds the extension filter for this config
func (c *Config) Filter() *scanner.ExtensionFilter {
	return scanner.NewExtensionFilter(c.Extensions)
}

// Excluder builds the exclude matcher for this config
func (c *Config) Excluder() (*scanner.Excluder, error) {
	return scanner.NewExcluder(c.Exclude)
}
