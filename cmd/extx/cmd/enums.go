package cmd

import (
	"reflect"
	"strings"

	"github.com/msto63/extx/core/config"
	"github.com/msto63/extx/core/errors"
	mdwlog "github.com/msto63/extx/core/log"
	"github.com/msto63/extx/utils/enumx"
	"github.com/msto63/extx/utils/hashx"
	"github.com/msto63/extx/utils/mapx"
	"github.com/msto63/extx/utils/slicex"
)

// Log levels and formats are resolved from config values, so the tool
// registers them here. core/log itself does not depend on enumx.
var (
	_ = enumx.MustRegister(enumx.Values(
		enumx.Member[mdwlog.Level]{Name: "trace", Value: mdwlog.LevelTrace},
		enumx.Member[mdwlog.Level]{Name: "debug", Value: mdwlog.LevelDebug},
		enumx.Member[mdwlog.Level]{Name: "info", Value: mdwlog.LevelInfo},
		enumx.Member[mdwlog.Level]{Name: "warn", Value: mdwlog.LevelWarn},
		enumx.Member[mdwlog.Level]{Name: "warning", Value: mdwlog.LevelWarn, Label: "warn"},
		enumx.Member[mdwlog.Level]{Name: "error", Value: mdwlog.LevelError},
		enumx.Member[mdwlog.Level]{Name: "fatal", Value: mdwlog.LevelFatal},
		enumx.Member[mdwlog.Level]{Name: "audit", Value: mdwlog.LevelAudit},
	))
	_ = enumx.MustRegister(enumx.Values(
		enumx.Member[mdwlog.Format]{Name: "json", Value: mdwlog.FormatJSON, Label: "JSON"},
		enumx.Member[mdwlog.Format]{Name: "text", Value: mdwlog.FormatText, Label: "Text"},
		enumx.Member[mdwlog.Format]{Name: "console", Value: mdwlog.FormatConsole, Label: "Console"},
		enumx.Member[mdwlog.Format]{Name: "logfmt", Value: mdwlog.FormatLogfmt, Label: "logfmt"},
	))
)

// enumRow is one member as the commands print it.
type enumRow struct {
	Name  string
	Value int64
	Label string
}

// enumView gives the commands one shape over typed caches and catalog
// caches.
type enumView interface {
	Flags() bool
	Parse(text, separators string) (int64, bool)
	Describe(value int64, delimiter string) (string, error)
	Rows() []enumRow
}

type typedEnum[T enumx.Integer] struct {
	cache *enumx.Cache[T]
}

func (e typedEnum[T]) Flags() bool {
	return e.cache.IsFlags()
}

func (e typedEnum[T]) Parse(text, separators string) (int64, bool) {
	v, ok := e.cache.TryParseWith(text, separators)
	return int64(v), ok
}

// Describe rejects values that do not fit T instead of letting the
// conversion wrap them onto another member.
func (e typedEnum[T]) Describe(value int64, delimiter string) (string, error) {
	v := T(value)
	if int64(v) != value || (v < 0) != (value < 0) {
		lo, hi := bounds[T]()
		return "", errors.OutOfRange(errors.ModuleEnumx, "describe", value, lo, hi)
	}
	return e.cache.Describe(v, delimiter), nil
}

// bounds returns the smallest and largest value of T.
func bounds[T enumx.Integer]() (T, T) {
	var zero T
	if ^zero > 0 {
		return 0, ^zero
	}
	lo := T(1) << (reflect.TypeOf(zero).Bits() - 1)
	return lo, ^lo
}

func (e typedEnum[T]) Rows() []enumRow {
	return slicex.Map(e.cache.Members(), func(m enumx.Member[T]) enumRow {
		return enumRow{Name: m.Name, Value: int64(m.Value), Label: m.DisplayLabel()}
	})
}

func viewOf[T enumx.Integer]() enumView {
	return typedEnum[T]{cache: enumx.MustCacheOf[T](enumx.Default())}
}

var builtinEnums = map[string]func() enumView{
	"log.level":      viewOf[mdwlog.Level],
	"log.format":     viewOf[mdwlog.Format],
	"config.format":  viewOf[config.Format],
	"hash.algorithm": viewOf[hashx.Algorithm],
}

// lookupEnum finds name in the loaded catalog first, then among the
// built-in enums. Both ignore case.
func lookupEnum(name string) (enumView, error) {
	if current.catalog != nil {
		if cache, ok := current.catalog.Get(name); ok {
			return typedEnum[int64]{cache: cache}, nil
		}
	}
	if build, ok := builtinEnums[strings.ToLower(strings.TrimSpace(name))]; ok {
		return build(), nil
	}
	return nil, errors.EnumxNotEnum(name)
}

// enumNames lists catalog enums in file order followed by the built-ins.
func enumNames() []string {
	var names []string
	if current.catalog != nil {
		names = current.catalog.Names()
	}
	return append(names, mapx.SortedKeys(builtinEnums)...)
}
