// File: registry.go
// Title: Process-Wide Enum Registry
// Description: Maps enum types to their lazily built caches. Each type owns
//              one slot whose cache is constructed exactly once, on first use,
//              from either an explicit registration or the type's Definer
//              method. Reads after construction take no locks.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-12
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation
// - 2026-10-15 v0.1.1: Cache builds are timed

package enumx

import (
	"reflect"
	"sync"

	"github.com/msto63/extx/core/errors"
	mdwlog "github.com/msto63/extx/core/log"
)

// Registry owns the caches of all enum types it has seen.
type Registry struct {
	slots  sync.Map // reflect.Type -> *slot
	logger *mdwlog.Logger
}

// slot guards the one-time construction of a single type's cache.
type slot struct {
	once  sync.Once
	build func() any
	cache any
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger that records cache construction.
func WithLogger(logger *mdwlog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(options ...Option) *Registry {
	r := &Registry{}
	for _, option := range options {
		option(r)
	}
	return r
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry used by the package-level
// functions.
func Default() *Registry {
	return defaultRegistry
}

func (r *Registry) log() *mdwlog.Logger {
	if r.logger != nil {
		return r.logger
	}
	return mdwlog.GetDefault()
}

// Register adds def for T to the default registry.
func Register[T Integer](def Definition[T]) error {
	return RegisterIn(defaultRegistry, def)
}

// MustRegister is Register that panics on error. It returns true so it can
// be used in package-level var declarations.
func MustRegister[T Integer](def Definition[T]) bool {
	if err := Register(def); err != nil {
		panic(err)
	}
	return true
}

// RegisterIn adds def for T to r. The cache is built on first use. A type
// can be registered once; registering it again, or after its Definer has
// already been used, is an error.
func RegisterIn[T Integer](r *Registry, def Definition[T]) error {
	t := reflect.TypeFor[T]()
	s := &slot{build: builder(r, t, def)}
	if _, loaded := r.slots.LoadOrStore(t, s); loaded {
		return errors.EnumxDuplicateType(t.String())
	}
	return nil
}

// CacheOf returns the cache for T from r, building it on first use. Types
// that were neither registered nor implement Definer are not enum types
// and produce an error.
func CacheOf[T Integer](r *Registry) (*Cache[T], error) {
	t := reflect.TypeFor[T]()

	v, ok := r.slots.Load(t)
	if !ok {
		var zero T
		definer, isDefiner := any(zero).(Definer[T])
		if !isDefiner {
			return nil, errors.EnumxNotEnum(t.String())
		}
		v, _ = r.slots.LoadOrStore(t, &slot{
			build: func() any {
				return builder(r, t, definer.EnumDefinition())()
			},
		})
	}

	s := v.(*slot)
	s.once.Do(func() {
		s.cache = s.build()
	})
	return s.cache.(*Cache[T]), nil
}

// MustCacheOf is CacheOf that panics when T is not an enum type.
func MustCacheOf[T Integer](r *Registry) *Cache[T] {
	c, err := CacheOf[T](r)
	if err != nil {
		panic(err)
	}
	return c
}

// Registered reports whether a cache slot exists for T in r.
func Registered[T Integer](r *Registry) bool {
	_, ok := r.slots.Load(reflect.TypeFor[T]())
	return ok
}

func builder[T Integer](r *Registry, t reflect.Type, def Definition[T]) func() any {
	return func() any {
		timer := r.log().StartTimer("enum cache build").WithField("type", t.String())
		c := NewCache(def)
		timer.WithFields(mdwlog.Fields{
			"members": len(def.Members),
			"flags":   c.flags,
			"entries": len(c.entries),
		}).Stop()
		return c
	}
}
