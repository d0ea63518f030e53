package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViperDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := FromViper(v)
	require.NoError(t, err)
	assert.Empty(t, cfg.Extensions)
	assert.Empty(t, cfg.Exclude)
	assert.False(t, cfg.Verbose)
	assert.NotEmpty(t, cfg.LogFile)
	assert.True(t, cfg.Filter().MatchAll())
}

func TestFromViperExtensions(t *testing.T) {
	t.Run("comma_string", func(t *testing.T) {
		v := viper.New()
		v.Set(KeyExt, " ts, tsx,,")
		cfg, err := FromViper(v)
		require.NoError(t, err)
		assert.Equal(t, []string{"ts", "tsx"}, cfg.Extensions)
	})

	t.Run("list", func(t *testing.T) {
		v := viper.New()
		v.Set(KeyExt, []string{"go", ".rs"})
		cfg, err := FromViper(v)
		require.NoError(t, err)
		assert.Equal(t, []string{"go", "rs"}, cfg.Extensions)
		assert.True(t, cfg.Filter().Matches("main.rs"))
	})
}

func TestFromViperRejectsBadExclude(t *testing.T) {
	v := viper.New()
	v.Set(KeyExclude, []string{"[oops"})
	_, err := FromViper(v)
	assert.Error(t, err)
}

func TestInitReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte("ext: [go, md]\nexclude:\n  - vendor\nverbose: true\n"), 0644))

	v := viper.New()
	require.NoError(t, Init(v, path))

	cfg, err := FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "md"}, cfg.Extensions)
	assert.Equal(t, []string{"vendor"}, cfg.Exclude)
	assert.True(t, cfg.Verbose)

	ex, err := cfg.Excluder()
	require.NoError(t, err)
	assert.True(t, ex.Excluded("vendor"))
}

func TestInitEnvironment(t *testing.T) {
	t.Setenv("CODEVOL_EXT", "py")
	t.Setenv("CODEVOL_LOG_FILE", "/tmp/x.log")

	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("ext: go\n"), 0644))

	v := viper.New()
	require.NoError(t, Init(v, path))

	cfg, err := FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, []string{"py"}, cfg.Extensions, "environment overrides the file")
	assert.Equal(t, "/tmp/x.log", cfg.LogFile)
}

func TestInitExplicitMissingFile(t *testing.T) {
	err := Init(viper.New(), filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestInitMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ext: [unterminated\n"), 0644))

	err := Init(viper.New(), path)
	assert.Error(t, err)
}
