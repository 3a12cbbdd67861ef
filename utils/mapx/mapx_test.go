// File: mapx_test.go
// Title: Map Utilities Tests
// Description: Tests for map utility functions including transformation,
//              lookup with defaults, lazy insertion and closing of values.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2026-10-14 v0.2.0: Tests for the dictionary operations

package mapx

import (
	stderrors "errors"
	"strings"
	"testing"

	mdwerror "github.com/msto63/extx/core/error"
	"github.com/msto63/extx/core/errors"
)

func TestKeys(t *testing.T) {
	tests := []struct {
		name     string
		input    map[string]int
		expected int
	}{
		{name: "nil map", input: nil, expected: 0},
		{name: "empty map", input: map[string]int{}, expected: 0},
		{name: "single key", input: map[string]int{"a": 1}, expected: 1},
		{name: "multiple keys", input: map[string]int{"a": 1, "b": 2, "c": 3}, expected: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys := Keys(tt.input)
			if len(keys) != tt.expected {
				t.Errorf("Keys() length = %d, want %d", len(keys), tt.expected)
			}
			for _, k := range keys {
				if _, ok := tt.input[k]; !ok {
					t.Errorf("Keys() returned unknown key %q", k)
				}
			}
			if len(Values(tt.input)) != tt.expected {
				t.Errorf("Values() length mismatch")
			}
		})
	}
}

func TestSortedKeys(t *testing.T) {
	got := SortedKeys(map[string]int{"c": 3, "a": 1, "b": 2})
	if strings.Join(got, ",") != "a,b,c" {
		t.Errorf("SortedKeys() = %v", got)
	}
	if got := SortedKeys[string, int](nil); len(got) != 0 {
		t.Errorf("SortedKeys(nil) = %v", got)
	}
}

func TestCloneAndMerge(t *testing.T) {
	original := map[string]int{"a": 1, "b": 2}
	clone := Clone(original)
	clone["a"] = 100
	if original["a"] != 1 {
		t.Error("Clone() shares storage with the original")
	}
	if Clone[string, int](nil) != nil {
		t.Error("Clone(nil) should return nil")
	}

	merged := Merge(map[string]int{"a": 1, "b": 2}, nil, map[string]int{"b": 20, "c": 3})
	want := map[string]int{"a": 1, "b": 20, "c": 3}
	if len(merged) != len(want) {
		t.Fatalf("Merge() = %v, want %v", merged, want)
	}
	for k, v := range want {
		if merged[k] != v {
			t.Errorf("Merge()[%q] = %d, want %d", k, merged[k], v)
		}
	}
}

func TestFilterAndInvert(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2, "c": 3, "d": 4}
	even := Filter(m, func(_ string, v int) bool { return v%2 == 0 })
	if len(even) != 2 || even["b"] != 2 || even["d"] != 4 {
		t.Errorf("Filter() = %v", even)
	}

	inverted := Invert(map[string]int{"one": 1, "two": 2})
	if inverted[1] != "one" || inverted[2] != "two" {
		t.Errorf("Invert() = %v", inverted)
	}
}

func TestAddOrUpdate(t *testing.T) {
	m := map[string]int{"a": 1}

	if added := AddOrUpdate(m, "b", 2); !added {
		t.Error("AddOrUpdate() should report a new key")
	}
	if added := AddOrUpdate(m, "a", 10); added {
		t.Error("AddOrUpdate() should report an update for an existing key")
	}
	if m["a"] != 10 || m["b"] != 2 {
		t.Errorf("map after AddOrUpdate = %v", m)
	}
}

func TestGetOrAdd(t *testing.T) {
	m := map[string]int{"existing": 1}
	calls := 0
	factory := func(key string) int {
		calls++
		return len(key)
	}

	if got := GetOrAdd(m, "existing", factory); got != 1 {
		t.Errorf("GetOrAdd(existing) = %d, want 1", got)
	}
	if calls != 0 {
		t.Errorf("factory called %d times for an existing key", calls)
	}

	if got := GetOrAdd(m, "four", factory); got != 4 {
		t.Errorf("GetOrAdd(new) = %d, want 4", got)
	}
	if got := GetOrAdd(m, "four", factory); got != 4 {
		t.Errorf("GetOrAdd(second) = %d, want 4", got)
	}
	if calls != 1 {
		t.Errorf("factory called %d times, want 1", calls)
	}
	if m["four"] != 4 {
		t.Error("GetOrAdd() should store the created value")
	}
}

func TestLookups(t *testing.T) {
	m := map[string]string{"host": "localhost", "empty": ""}

	tests := []struct {
		key      string
		wantVal  string
		wantOK   bool
		fallback string
	}{
		{"host", "localhost", true, "localhost"},
		{"empty", "", true, ""},
		{"missing", "", false, "default"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			v, ok := TryGet(m, tt.key)
			if v != tt.wantVal || ok != tt.wantOK {
				t.Errorf("TryGet(%q) = %q, %v", tt.key, v, ok)
			}
			if got := GetOrDefault(m, tt.key, "default"); got != tt.fallback {
				t.Errorf("GetOrDefault(%q) = %q, want %q", tt.key, got, tt.fallback)
			}
		})
	}

	var nilMap map[string]int
	if v, ok := TryGet(nilMap, "x"); v != 0 || ok {
		t.Error("TryGet(nil) should return the zero value")
	}
}

func TestMustGet(t *testing.T) {
	m := map[int]string{1: "one"}
	if v, err := MustGet(m, 1); err != nil || v != "one" {
		t.Errorf("MustGet(1) = %q, %v", v, err)
	}

	_, err := MustGet(m, 2)
	var mdwErr *mdwerror.Error
	if !stderrors.As(err, &mdwErr) || string(mdwErr.Code()) != errors.CodeMapxKeyNotFound {
		t.Errorf("MustGet(2) error = %v", err)
	}
	if mdwErr.Details()["key"] != "2" {
		t.Errorf("key detail = %v", mdwErr.Details()["key"])
	}
}

func TestRemoveIfExists(t *testing.T) {
	m := map[string]int{"a": 1}
	if !RemoveIfExists(m, "a") {
		t.Error("RemoveIfExists() should report removal")
	}
	if RemoveIfExists(m, "a") {
		t.Error("RemoveIfExists() should report a missing key")
	}
	if len(m) != 0 {
		t.Errorf("map = %v, want empty", m)
	}
}

type closer struct {
	closed bool
	err    error
}

func (c *closer) Close() error {
	c.closed = true
	return c.err
}

func TestClearAndClose(t *testing.T) {
	t.Run("all succeed", func(t *testing.T) {
		a, b := &closer{}, &closer{}
		m := map[string]any{"a": a, "b": b, "plain": 42}

		if err := ClearAndClose(m); err != nil {
			t.Fatalf("ClearAndClose() error = %v", err)
		}
		if !a.closed || !b.closed {
			t.Error("every closer should be closed")
		}
		if len(m) != 0 {
			t.Errorf("map = %v, want empty", m)
		}
	})

	t.Run("failures are joined", func(t *testing.T) {
		errA := stderrors.New("disk gone")
		errB := stderrors.New("socket reset")
		ok := &closer{}
		m := map[string]*closer{"a": {err: errA}, "b": {err: errB}, "ok": ok}

		err := ClearAndClose(m)
		if err == nil {
			t.Fatal("ClearAndClose() should fail")
		}
		if !stderrors.Is(err, errA) || !stderrors.Is(err, errB) {
			t.Errorf("error %v should wrap both failures", err)
		}
		if !ok.closed {
			t.Error("successful closers should still be closed")
		}
		if len(m) != 0 {
			t.Error("map should be cleared even on failure")
		}
		if !errors.IsModuleError(err, errors.ModuleMapx) {
			t.Errorf("expected a mapx error, got %v", err)
		}
	})

	t.Run("nil map", func(t *testing.T) {
		if err := ClearAndClose[string, *closer](nil); err != nil {
			t.Errorf("ClearAndClose(nil) = %v", err)
		}
	})
}
