// File: discovery.go
// Title: Configuration File Discovery
// Description: Finds the first configuration file along a list of search
//              directories and base names, and builds configurations from
//              the process environment alone.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file discovery
// - 2026-10-14 v0.2.0: Discovery over afero filesystems, extx default paths
// - 2026-10-15 v0.3.0: Candidate listing and environment loading reworked

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/afero"

	mdwerror "github.com/msto63/extx/core/error"
)

// DefaultEnvPrefix is the environment prefix used by the extx tools.
const DefaultEnvPrefix = "EXTX"

// DiscoveryOptions lists where to look. Candidates are tried path by
// path, then name by name, then extension by extension.
type DiscoveryOptions struct {
	Paths      []string // default: the working directory
	Filenames  []string // base names without extension, default: config
	Extensions []string // default: .toml, .yaml, .yml
	EnvPrefix  string
	Required   bool // fail with MISSING_CONFIG when nothing is found
	Fs         afero.Fs
}

// DefaultDiscoveryOptions searches ./, ~/.config/extx and /etc/extx for
// extx.* and config.* with the EXTX environment prefix.
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "extx"))
	}
	return DiscoveryOptions{
		Paths:     append(paths, "/etc/extx"),
		Filenames: []string{"extx", "config"},
		EnvPrefix: DefaultEnvPrefix,
	}
}

func (o DiscoveryOptions) withDefaults() DiscoveryOptions {
	if len(o.Paths) == 0 {
		o.Paths = []string{"."}
	}
	if len(o.Filenames) == 0 {
		o.Filenames = []string{"config"}
	}
	if len(o.Extensions) == 0 {
		o.Extensions = []string{".toml", ".yaml", ".yml"}
	}
	if o.Fs == nil {
		o.Fs = afero.NewOsFs()
	}
	return o
}

// Discover loads the first file FindConfigFile reports. Without a file the
// result is an empty configuration that still sees environment overrides.
func Discover(options DiscoveryOptions) (*Config, error) {
	options = options.withDefaults()

	path, err := FindConfigFile(options)
	if err != nil {
		if options.Required {
			candidates := ListPossibleConfigFiles(options)
			return nil, mdwerror.New("no configuration file found in: "+strings.Join(candidates, ", ")).
				WithCode(mdwerror.CodeMissingConfig).
				WithOperation("config.Discover").
				WithDetail("searchPaths", candidates)
		}
		return Empty(LoadOptions{EnvPrefix: options.EnvPrefix}), nil
	}

	cfg, err := LoadWithOptions(path, LoadOptions{
		Format:    FormatAuto,
		EnvPrefix: options.EnvPrefix,
		Fs:        options.Fs,
	})
	if err != nil {
		return nil, mdwerror.Wrap(err, fmt.Sprintf("cannot load discovered config file %s", path)).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Discover").
			WithDetail("configPath", path)
	}
	return cfg, nil
}

// FindConfigFile returns the first candidate that exists as a regular file.
func FindConfigFile(options DiscoveryOptions) (string, error) {
	options = options.withDefaults()
	for _, candidate := range ListPossibleConfigFiles(options) {
		if info, err := options.Fs.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", mdwerror.New("configuration file not found").
		WithCode(mdwerror.CodeNotFound).
		WithOperation("config.FindConfigFile")
}

// ListPossibleConfigFiles returns the candidates in search order. Options
// are used as given, without defaults.
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	var candidates []string
	for _, dir := range options.Paths {
		for _, name := range options.Filenames {
			for _, ext := range options.Extensions {
				candidates = append(candidates, filepath.Join(dir, name+ext))
			}
		}
	}
	return candidates
}

// LoadFromEnv builds a configuration from the variables carrying envPrefix:
// EXTX_LOG_LEVEL=debug becomes log.level. An empty prefix takes every
// variable.
func LoadFromEnv(envPrefix string) *Config {
	return loadFromEnviron(envPrefix, os.Environ())
}

func loadFromEnviron(envPrefix string, environ []string) *Config {
	prefix := ""
	if envPrefix != "" {
		prefix = strings.ToUpper(envPrefix) + "_"
	}

	data := map[string]interface{}{}
	for _, entry := range environ {
		name, value, ok := strings.Cut(entry, "=")
		if !ok || !strings.HasPrefix(name, prefix) {
			continue
		}
		key := strings.ToLower(strings.ReplaceAll(strings.TrimPrefix(name, prefix), "_", "."))
		setNestedValue(data, key, envScalar(value))
	}

	return newConfig(data, FormatAuto, LoadOptions{
		EnvPrefix: envPrefix,
		Getenv:    func(string) (string, bool) { return "", false },
	})
}

// envScalar types a variable as bool, int or float where it parses as one.
func envScalar(value string) interface{} {
	if value == "" {
		return value
	}
	if value == "true" || value == "false" {
		return value == "true"
	}
	if n, err := strconv.Atoi(value); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return f
	}
	return value
}
