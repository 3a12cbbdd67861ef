// File: config.go
// Title: Configuration Loading
// Description: The Config type and the loaders that read TOML or YAML from an
//              afero filesystem or a string. Values resolve through dotted
//              keys, and environment variables override file values.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-13 v0.2.0: afero filesystems, enum-typed values, injectable
//                       environment lookup; file watching removed
// - 2026-10-15 v0.3.0: Typed getters moved to values.go, path cache dropped,
//                       FormatAuto as the zero format

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/extx/core/error"
	"github.com/msto63/extx/utils/enumx"
	mdwstringx "github.com/msto63/extx/utils/stringx"
)

// Format selects the parser for configuration content.
type Format int

const (
	// FormatAuto picks the parser from the file extension. It is the zero
	// value, so LoadOptions{} detects the format.
	FormatAuto Format = iota
	FormatTOML
	FormatYAML
)

// EnumDefinition makes Format resolvable through enumx, so "yml" or "YAML"
// on a command line select FormatYAML.
func (Format) EnumDefinition() enumx.Definition[Format] {
	return enumx.Values(
		enumx.Member[Format]{Name: "toml", Value: FormatTOML},
		enumx.Member[Format]{Name: "yaml", Value: FormatYAML},
		enumx.Member[Format]{Name: "yml", Value: FormatYAML},
		enumx.Member[Format]{Name: "auto", Value: FormatAuto},
	)
}

func (f Format) String() string {
	if !enumx.IsDefined(f) {
		return "unknown"
	}
	return enumx.GetDescription(f)
}

// ParseFormat resolves a format name, ignoring case.
func ParseFormat(name string) (Format, error) {
	f, ok := enumx.TryToEnum[Format](name)
	if !ok {
		return FormatAuto, mdwerror.New(fmt.Sprintf("unknown config format: %s", name)).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("config.ParseFormat").
			WithDetail("format", name)
	}
	return f, nil
}

// DetectFormat maps a file extension to a format. Unknown extensions are
// read as TOML.
func DetectFormat(filePath string) Format {
	ext := strings.TrimPrefix(filepath.Ext(filePath), ".")
	if f, ok := enumx.TryToEnum[Format](ext); ok && f != FormatAuto {
		return f
	}
	return FormatTOML
}

// Config is a parsed configuration. It is safe for concurrent use.
type Config struct {
	mu        sync.RWMutex
	data      map[string]interface{}
	filePath  string
	format    Format
	envPrefix string
	getenv    func(string) (string, bool)
}

// LoadOptions controls how a configuration is read.
type LoadOptions struct {
	Format    Format                      // FormatAuto detects from the extension
	EnvPrefix string                      // EXTX turns log.level into EXTX_LOG_LEVEL
	Defaults  map[string]interface{}      // merged below the file values
	Fs        afero.Fs                    // default: OS filesystem
	Getenv    func(string) (string, bool) // default: os.LookupEnv
}

// Load reads filePath with the format taken from its extension.
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{Format: FormatAuto})
}

func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	const op = "config.LoadWithOptions"

	if mdwstringx.IsBlank(filePath) {
		return nil, mdwerror.New("config file path cannot be empty").
			WithCode(mdwerror.CodeValidationFailed).
			WithOperation(op)
	}

	fs := options.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	content, err := afero.ReadFile(fs, filePath)
	switch {
	case os.IsNotExist(err):
		return nil, mdwerror.New(fmt.Sprintf("config file not found: %s", filePath)).
			WithCode(mdwerror.CodeNotFound).
			WithOperation(op).
			WithDetail("filePath", filePath)
	case err != nil:
		return nil, mdwerror.Wrap(err, "failed to read config file").
			WithCode(mdwerror.CodeIOError).
			WithOperation(op).
			WithDetail("filePath", filePath)
	}

	format := options.Format
	if format == FormatAuto {
		format = DetectFormat(filePath)
	}

	data, err := parse(content, format)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config file").
			WithCode(mdwerror.CodeParseError).
			WithOperation(op).
			WithDetail("filePath", filePath)
	}

	c := newConfig(data, format, options)
	c.filePath = filePath
	return c, nil
}

// LoadFromString parses content. FormatAuto is read as TOML.
func LoadFromString(content string, format Format) (*Config, error) {
	return LoadFromStringWithOptions(content, LoadOptions{Format: format})
}

// LoadFromStringWithOptions ignores options.Fs.
func LoadFromStringWithOptions(content string, options LoadOptions) (*Config, error) {
	format := options.Format
	if format == FormatAuto {
		format = FormatTOML
	}

	data, err := parse([]byte(content), format)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config from string").
			WithCode(mdwerror.CodeParseError).
			WithOperation("config.LoadFromString")
	}
	return newConfig(data, format, options), nil
}

// Empty returns a configuration holding only the defaults. Environment
// overrides still apply.
func Empty(options LoadOptions) *Config {
	format := options.Format
	if format == FormatAuto {
		format = FormatTOML
	}
	return newConfig(nil, format, options)
}

func newConfig(data map[string]interface{}, format Format, options LoadOptions) *Config {
	if data == nil {
		data = map[string]interface{}{}
	}
	if options.Defaults != nil {
		data = mergeDefaults(data, options.Defaults)
	}
	getenv := options.Getenv
	if getenv == nil {
		getenv = os.LookupEnv
	}
	return &Config{
		data:      data,
		format:    format,
		envPrefix: options.EnvPrefix,
		getenv:    getenv,
	}
}

func parse(content []byte, format Format) (map[string]interface{}, error) {
	data := map[string]interface{}{}
	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(content, &data)
	case FormatYAML:
		err = yaml.Unmarshal(content, &data)
	default:
		return nil, mdwerror.New(fmt.Sprintf("unsupported format: %s", format)).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("config.parse")
	}
	if err != nil {
		return nil, mdwerror.Wrap(err, format.String()+" parse error").
			WithCode(mdwerror.CodeParseError).
			WithOperation("config.parse")
	}
	return data, nil
}

// mergeDefaults returns defaults overlaid with data. Sections present on
// both sides merge key by key.
func mergeDefaults(data, defaults map[string]interface{}) map[string]interface{} {
	merged := deepCopyMap(defaults)
	for k, v := range data {
		dv, dOK := merged[k].(map[string]interface{})
		mv, mOK := v.(map[string]interface{})
		if dOK && mOK {
			merged[k] = mergeDefaults(mv, dv)
			continue
		}
		merged[k] = v
	}
	return merged
}

// Has reports whether key is set in the loaded data. Environment
// variables are not consulted.
func (c *Config) Has(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lookup(key) != nil
}

// Set stores value under key for the lifetime of c.
func (c *Config) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	setNestedValue(c.data, key, value)
}

// GetAll returns a deep copy of the loaded data.
func (c *Config) GetAll() map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return deepCopyMap(c.data)
}

// FilePath is empty for configurations not read from a file.
func (c *Config) FilePath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

func (c *Config) Format() Format {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.format
}

// lookup walks a dotted key. Callers hold c.mu.
func (c *Config) lookup(key string) interface{} {
	node := interface{}(c.data)
	for _, part := range strings.Split(key, ".") {
		section, ok := node.(map[string]interface{})
		if !ok {
			return nil
		}
		node = section[part]
	}
	return node
}

// envValue returns the non-empty override for key.
func (c *Config) envValue(key string) (string, bool) {
	name := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	if c.envPrefix != "" {
		name = strings.ToUpper(c.envPrefix) + "_" + name
	}
	value, ok := c.getenv(name)
	return value, ok && value != ""
}

func deepCopyMap(src map[string]interface{}) map[string]interface{} {
	dst := make(map[string]interface{}, len(src))
	for k, v := range src {
		switch val := v.(type) {
		case map[string]interface{}:
			dst[k] = deepCopyMap(val)
		case []interface{}:
			dst[k] = append([]interface{}(nil), val...)
		default:
			dst[k] = v
		}
	}
	return dst
}

func setNestedValue(data map[string]interface{}, key string, value interface{}) {
	parts := strings.Split(key, ".")
	section := data
	for _, part := range parts[:len(parts)-1] {
		next, ok := section[part].(map[string]interface{})
		if !ok {
			next = map[string]interface{}{}
			section[part] = next
		}
		section = next
	}
	section[parts[len(parts)-1]] = value
}
