package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("termcheck", pflag.ContinueOnError)
	fs.String("format", DefaultFormat, "")
	fs.String("out", "", "")
	fs.String("patch-out", "", "")
	fs.Bool("verbose", false, "")
	fs.String("config", "", "")
	require.NoError(t, fs.Parse(args))
	return fs
}

// isolate runs the test from an empty directory with no TERMCHECK_ env.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	chdirForTest(t, dir)
	for _, k := range []string{"FORMAT", "OUT", "PATCH_OUT", "VERBOSE"} {
		t.Setenv(EnvPrefix+k, "")
		os.Unsetenv(EnvPrefix + k)
	}
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultFormat, cfg.Format)
	assert.Empty(t, cfg.Out)
	assert.Empty(t, cfg.PatchOut)
	assert.False(t, cfg.Verbose)
	assert.Empty(t, cfg.File)
}

func TestLoad_DefaultFile(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFile), []byte("format: json\nverbose: true\n"), 0o644))

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Format)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, DefaultFile, cfg.File)
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	isolate(t)

	_, err := Load("nope.yaml", nil)
	assert.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFile), []byte("format: json\n"), 0o644))
	t.Setenv("TERMCHECK_FORMAT", "md")
	t.Setenv("TERMCHECK_PATCH_OUT", "suggest.txt")

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "md", cfg.Format)
	assert.Equal(t, "suggest.txt", cfg.PatchOut)
}

func TestLoad_ChangedFlagsWin(t *testing.T) {
	isolate(t)
	t.Setenv("TERMCHECK_FORMAT", "md")
	t.Setenv("TERMCHECK_OUT", "env.out")

	cfg, err := Load("", newFlags(t, "--format", "json", "--patch-out", "p.txt"))
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "p.txt", cfg.PatchOut)
	// --out was not set, so the env value survives.
	assert.Equal(t, "env.out", cfg.Out)
}

func TestLoad_UnchangedFlagsIgnored(t *testing.T) {
	isolate(t)
	t.Setenv("TERMCHECK_FORMAT", "md")

	cfg, err := Load("", newFlags(t))
	require.NoError(t, err)
	assert.Equal(t, "md", cfg.Format)
}

func TestLoad_InvalidFormat(t *testing.T) {
	isolate(t)

	_, err := Load("", newFlags(t, "--format", "xml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xml")
}

// chdirForTest mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdirForTest(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
