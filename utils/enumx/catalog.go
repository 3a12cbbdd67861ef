// File: catalog.go
// Title: File-Defined Enum Catalogs
// Description: Loads named enum definitions from TOML, YAML or JSON files into
//              caches, for tools that work with enums that have no Go type of
//              their own.
// Author: msto63
// Version: v0.2.1
// Created: 2026-10-13
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation
// - 2026-10-15 v0.1.1: Catalog loads are timed
// - 2026-10-15 v0.2.0: JSON catalogs, checked for the enums property
// - 2026-10-15 v0.2.1: Load timer stopped on failures

package enumx

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/msto63/extx/core/errors"
	mdwlog "github.com/msto63/extx/core/log"
	"github.com/msto63/extx/utils/jsonx"
)

// CatalogFormat selects the decoder for catalog content.
type CatalogFormat int

const (
	CatalogTOML CatalogFormat = iota
	CatalogYAML
	CatalogJSON
)

// catalogFile is the on-disk layout:
//
//	[[enums]]
//	name  = "permission"
//	flags = true
//	  [[enums.members]]
//	  name  = "Read"
//	  value = 1
type catalogFile struct {
	Enums []catalogEnum `toml:"enums" yaml:"enums" json:"enums" extx:"required"`
}

type catalogEnum struct {
	Name    string          `toml:"name" yaml:"name" json:"name"`
	Flags   bool            `toml:"flags" yaml:"flags" json:"flags"`
	Members []Member[int64] `toml:"members" yaml:"members" json:"members"`
}

// Catalog is a named set of enum caches.
type Catalog struct {
	caches map[string]*Cache[int64]
	names  []string
}

// LoadCatalog reads a catalog file from fs. The format follows the file
// extension: .toml, .yaml, .yml or .json.
func LoadCatalog(fs afero.Fs, path string) (*Catalog, error) {
	var format CatalogFormat
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		format = CatalogTOML
	case ".yaml", ".yml":
		format = CatalogYAML
	case ".json":
		format = CatalogJSON
	default:
		return nil, errors.InvalidFormat(errors.ModuleEnumx, path, "catalog file with .toml, .yaml, .yml or .json extension")
	}

	timer := mdwlog.GetDefault().StartTimer("enum catalog load").WithField("path", path)
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		err = errors.OperationFailed(errors.ModuleEnumx, "load_catalog", err)
		timer.StopWithError(err)
		return nil, err
	}
	c, err := ParseCatalog(data, format)
	if err != nil {
		timer.StopWithError(err)
		return nil, err
	}
	timer.WithField("enums", c.Len()).Stop()
	return c, nil
}

// ParseCatalog decodes catalog content. Enum names must be unique,
// ignoring case. JSON catalogs must carry an enums property.
func ParseCatalog(data []byte, format CatalogFormat) (*Catalog, error) {
	var file catalogFile
	switch format {
	case CatalogTOML:
		if _, err := toml.Decode(string(data), &file); err != nil {
			return nil, invalidCatalog(err)
		}
	case CatalogYAML:
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, invalidCatalog(err)
		}
	case CatalogJSON:
		if err := jsonx.ValidateRequired(data, catalogFile{}); err != nil {
			return nil, invalidCatalog(err)
		}
		decoded, err := jsonx.Unmarshal[catalogFile](data)
		if err != nil {
			return nil, invalidCatalog(err)
		}
		file = decoded
	default:
		return nil, errors.InvalidInput(errors.ModuleEnumx, "parse_catalog", format, "CatalogTOML, CatalogYAML or CatalogJSON")
	}

	c := &Catalog{caches: make(map[string]*Cache[int64], len(file.Enums))}
	for i, e := range file.Enums {
		key := foldKey(e.Name)
		if key == "" {
			return nil, errors.ValidationFailed(errors.ModuleEnumx, fmt.Sprintf("enums[%d].name", i), e.Name, "cannot be empty")
		}
		if _, exists := c.caches[key]; exists {
			return nil, errors.EnumxDuplicateType(e.Name)
		}
		c.caches[key] = NewCache(Definition[int64]{Flags: e.Flags, Members: e.Members})
		c.names = append(c.names, e.Name)
	}
	return c, nil
}

func invalidCatalog(cause error) error {
	return errors.NewErrorBuilder(errors.ModuleEnumx).
		Operation("parse_catalog").
		Message("enum catalog could not be decoded").
		Cause(cause).
		Code(errors.CodeEnumxInvalidCatalog).
		Build()
}

// Get returns the cache of the named enum, ignoring case.
func (c *Catalog) Get(name string) (*Cache[int64], bool) {
	cache, ok := c.caches[foldKey(name)]
	return cache, ok
}

// Names returns the enum names in file order.
func (c *Catalog) Names() []string {
	return slices.Clone(c.names)
}

// Len returns the number of enums in the catalog.
func (c *Catalog) Len() int {
	return len(c.names)
}
