// File: urlx.go
// Title: URL Query and Path Helpers
// Description: Adds, updates and removes query parameters and fills
//              {token} placeholders in URL paths without mutating the
//              URL passed in.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package urlx

import (
	"net/url"
	"strings"

	"github.com/msto63/extx/core/errors"
	mdwstringx "github.com/msto63/extx/utils/stringx"
)

// Parse parses raw into a URL, reporting failures as URLX_INVALID_URL.
func Parse(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, errors.NewErrorBuilder(errors.ModuleUrlx).
			Operation("parse").
			Message("invalid URL").
			Cause(err).
			Code(errors.CodeUrlxInvalidURL).
			Detail("url", raw).
			Build()
	}
	return u, nil
}

// SetQueryParam returns u with the query parameter key set to value. When
// the parameter already has exactly that value, u itself is returned.
// Otherwise the result is a copy and u is left untouched.
func SetQueryParam(u *url.URL, key, value string) (*url.URL, error) {
	if err := checkArgs("set_query_param", u, key); err != nil {
		return nil, err
	}

	query := u.Query()
	if values, ok := query[key]; ok && len(values) == 1 && values[0] == value {
		return u, nil
	}
	query.Set(key, value)
	return withQuery(u, query), nil
}

// RemoveQueryParam returns u without the query parameter key. A missing
// parameter returns u itself.
func RemoveQueryParam(u *url.URL, key string) (*url.URL, error) {
	if err := checkArgs("remove_query_param", u, key); err != nil {
		return nil, err
	}
	return RemoveQueryParams(u, key), nil
}

// RemoveQueryParams returns u without any of the named parameters. Empty
// keys are skipped. When nothing is removed, u itself is returned.
func RemoveQueryParams(u *url.URL, keys ...string) *url.URL {
	if u == nil || len(keys) == 0 || u.RawQuery == "" {
		return u
	}

	query := u.Query()
	removed := false
	for _, key := range keys {
		if _, ok := query[key]; key != "" && ok {
			query.Del(key)
			removed = true
		}
	}
	if !removed {
		return u
	}
	return withQuery(u, query)
}

// ReplacePathTokens returns a copy of u whose path has every {name}
// placeholder replaced from tokens. Names match regardless of case and
// unknown placeholders are kept. Values are escaped as path segments, so a
// value containing "/" does not add a path level.
func ReplacePathTokens(u *url.URL, tokens map[string]string) *url.URL {
	if u == nil || len(tokens) == 0 || !strings.Contains(u.Path, "{") {
		return u
	}

	segments := strings.Split(u.Path, "/")
	escaped := make([]string, len(segments))
	for i, segment := range segments {
		segments[i] = mdwstringx.ReplaceTokens(segment, '{', '}', tokens, true)
		escaped[i] = url.PathEscape(segments[i])
	}

	clone := *u
	clone.Path = strings.Join(segments, "/")
	clone.RawPath = strings.Join(escaped, "/")
	return &clone
}

func withQuery(u *url.URL, query url.Values) *url.URL {
	clone := *u
	clone.RawQuery = query.Encode()
	if clone.RawQuery == "" {
		clone.ForceQuery = false
	}
	return &clone
}

func checkArgs(operation string, u *url.URL, key string) error {
	if u == nil {
		return errors.InvalidInput(errors.ModuleUrlx, operation, nil, "non-nil URL")
	}
	if key == "" {
		return errors.InvalidInput(errors.ModuleUrlx, operation, key, "non-empty parameter key")
	}
	return nil
}
