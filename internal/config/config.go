// Package config loads vtreectl configuration with koanf, layering
// defaults, an optional YAML file, VTREECTL_* environment variables,
// and command-line flags, in increasing precedence.
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

// Config holds vtreectl settings.
type Config struct {
	// Addr is the listen address of the serve command.
	Addr string `koanf:"addr"`

	// Title is the page title of the served document.
	Title string `koanf:"title"`

	// Pretty enables indented HTML output.
	Pretty bool `koanf:"pretty"`

	// StrictKeys makes diffs fail on duplicate sibling keys.
	StrictKeys bool `koanf:"strict_keys"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `koanf:"log_level"`
}

const envPrefix = "VTREECTL_"

// Load builds the configuration. configFile may be empty, in which
// case vtreectl.yaml in the working directory is used when present.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"addr":        ":8464",
		"title":       "viewtree preview",
		"pretty":      false,
		"strict_keys": false,
		"log_level":   "info",
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("config: defaults: %w", err)
	}

	path := configFile
	if path == "" {
		if _, err := os.Stat("vtreectl.yaml"); err == nil {
			path = "vtreectl.yaml"
		}
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: load %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("config: environment: %w", err)
	}

	if flags != nil {
		// Flag names use hyphens; config keys use underscores.
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("config: flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	return &cfg, nil
}
