// Package config resolves presentation settings for a run. Settings come
// from, lowest to highest priority: built-in defaults, an optional YAML
// file, TERMCHECK_* environment variables, and explicitly set flags.
//
// None of these settings change what is scanned: the term table, the
// search root and the file pattern are fixed.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

const (
	// EnvPrefix is stripped from environment variable names.
	EnvPrefix = "TERMCHECK_"
	// DefaultFile is read from the working directory when present.
	DefaultFile = ".termcheck.yaml"
	// DefaultFormat is the output format when nothing else is set.
	DefaultFormat = "text"
)

// Config holds the resolved settings.
type Config struct {
	Format   string `koanf:"format"`
	Out      string `koanf:"out"`
	PatchOut string `koanf:"patch_out"`
	Verbose  bool   `koanf:"verbose"`

	// File is the config file that was read, or "" if none.
	File string `koanf:"-"`
}

// Load resolves configuration. cfgFile, when non-empty, must exist; when
// empty, DefaultFile is used if it exists. Only flags marked Changed
// override lower layers.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"format":    DefaultFormat,
		"out":       "",
		"patch_out": "",
		"verbose":   false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	used, err := findConfigFile(cfgFile)
	if err != nil {
		return nil, err
	}
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	// TERMCHECK_PATCH_OUT -> patch_out
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed || f.Name == "config" {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.File = used

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate returns an error if any setting is out of range.
func (c *Config) Validate() error {
	switch c.Format {
	case "text", "json", "md":
	default:
		return fmt.Errorf("format must be text, json or md, got %q", c.Format)
	}
	return nil
}

// findConfigFile returns the config file to read.
// Priority: explicit path > DefaultFile > none.
func findConfigFile(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file %s: %w", explicit, err)
		}
		return explicit, nil
	}
	if _, err := os.Stat(DefaultFile); err == nil {
		return DefaultFile, nil
	}
	return "", nil
}
