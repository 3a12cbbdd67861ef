// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config provides configuration management for the extx
//              tools with support for TOML and YAML formats. Features include
//              file discovery, environment variable injection, validation,
//              struct binding and enum-typed values.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-14 v0.2.0: afero filesystems, GetEnum, hot-reloading removed
// - 2026-10-15 v0.3.0: cast conversions, mapstructure binding

/*
Package config provides configuration management for the extx tools.

Key Features:
  • Multi-format support (TOML, YAML) with automatic detection
  • Environment variable overrides with optional prefix
  • Reads through any afero.Fs, so tests run on in-memory filesystems
  • Enum-typed values resolved through enumx
  • Configuration validation with structured rules
  • Thread-safe concurrent access

# Basic Configuration Loading

	cfg, err := mdwconfig.Load("extx.toml")
	if err != nil {
		return err
	}

	catalog := cfg.GetString("catalog.path", "enums.toml")
	strict := cfg.GetBool("catalog.strict", false)

# Loading Options

	cfg, err := mdwconfig.LoadWithOptions("extx.yaml", mdwconfig.LoadOptions{
		EnvPrefix: "EXTX",
		Defaults: map[string]interface{}{
			"log": map[string]interface{}{"level": "warn"},
		},
		Fs: afero.NewReadOnlyFs(afero.NewOsFs()),
	})

# Environment Variable Integration

Keys map to upper-case variables with dots replaced by underscores. With
the prefix EXTX the key log.level is overridden by EXTX_LOG_LEVEL. Empty
variables do not override.

# Enum Values

Any integer type known to enumx can be read directly. Names and labels
match case-insensitively and flag values may combine several names:

	level := mdwconfig.GetEnum(cfg, "log.level", mdwlog.LevelWarn)
	format := mdwconfig.GetEnum(cfg, "output.format", mdwconfig.FormatTOML)

Values that match no member yield the supplied default.

# Discovery

	cfg, err := mdwconfig.Discover(mdwconfig.DiscoveryOptions{
		Paths:     []string{".", "/etc/extx"},
		Filenames: []string{"extx"},
	})

DefaultDiscoveryOptions searches the working directory, ~/.config/extx and
/etc/extx for extx.toml, extx.yaml and extx.yml. A missing file yields an
empty configuration unless Required is set.

# Validation and Binding

	result := cfg.Validate(mdwconfig.ValidationRules{
		"server.port":  {Required: true, Type: mdwconfig.TypeInt, Min: 1, Max: 65535},
		"enum.catalog": {Type: mdwconfig.TypeString, Pattern: `\.(toml|ya?ml)$`},
	})
	if err := result.Err(); err != nil {
		return err // INVALID_CONFIG listing every failed key
	}

	var settings struct {
		Path    string        `config:"path" validate:"required"`
		Timeout time.Duration `config:"timeout"`
		Tags    []string      `config:"tags"`
	}
	err = cfg.BindToStruct("catalog", &settings)

Getters convert with spf13/cast and binding decodes with mapstructure in
weak mode, so "30s" fills a time.Duration and "a,b" fills a []string.
Environment overrides apply to both, field by field.

# Error Handling

Errors are *mdwerror.Error values: NOT_FOUND for missing files, IO_ERROR
for read failures, PARSE_ERROR for malformed content and MISSING_CONFIG
when discovery requires a file that does not exist.
*/
package config
