package main

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/nlstn/go-rexp"
)

// envPrefix marks environment variables read as configuration,
// e.g. REXPR_OUTPUT=yaml or REXPR_CACHE_SIZE=0.
const envPrefix = "REXPR_"

// config holds the settings shared by all subcommands.
type config struct {
	Output    string `koanf:"output"`
	Verbose   bool   `koanf:"verbose"`
	CacheSize int    `koanf:"cache_size"`
}

// loadConfig merges configuration sources.
// Precedence (highest to lowest): flags > env vars > config file > defaults
func loadConfig(path string, flags *pflag.FlagSet) (*config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"output":     formatText,
		"verbose":    false,
		"cache_size": rexp.DefaultCacheSize,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	// REXPR_CACHE_SIZE -> cache_size
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			// Only flags that were explicitly set override the other sources
			if !f.Changed || f.Name == "config" {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if _, ok := formats[cfg.Output]; !ok {
		return nil, fmt.Errorf("unknown output format %q (want text, yaml or json)", cfg.Output)
	}

	return &cfg, nil
}
