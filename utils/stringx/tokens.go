// File: tokens.go
// Title: Token Replacement and Regex Helpers
// Description: Replaces delimited placeholders such as {name} with values
//              from a lookup, and wraps regular expression replacement with
//              structured errors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package stringx

import (
	"regexp"
	"strings"
	"sync"

	"github.com/msto63/extx/core/errors"
	"golang.org/x/text/cases"
)

// ReplaceTokensFunc replaces every token delimited by open and close with
// the result of lookup. Tokens lookup does not know are kept verbatim,
// delimiters included. An opener without a matching closer is copied
// through unchanged.
func ReplaceTokensFunc(s string, open, close rune, lookup func(name string) (string, bool)) string {
	if s == "" || lookup == nil || !strings.ContainsRune(s, open) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	openLen, closeLen := len(string(open)), len(string(close))

	for {
		start := strings.IndexRune(s, open)
		if start < 0 {
			break
		}
		end := strings.IndexRune(s[start+openLen:], close)
		if end < 0 {
			break
		}
		end += start + openLen

		b.WriteString(s[:start])
		if value, ok := lookup(s[start+openLen : end]); ok {
			b.WriteString(value)
		} else {
			b.WriteString(s[start : end+closeLen])
		}
		s = s[end+closeLen:]
	}

	b.WriteString(s)
	return b.String()
}

// ReplaceTokens replaces tokens delimited by open and close with values
// from tokens. With ignoreCase, token names match regardless of case.
func ReplaceTokens(s string, open, close rune, tokens map[string]string, ignoreCase bool) string {
	if len(tokens) == 0 {
		return s
	}
	if !ignoreCase {
		return ReplaceTokensFunc(s, open, close, func(name string) (string, bool) {
			v, ok := tokens[name]
			return v, ok
		})
	}

	fold := cases.Fold()
	folded := make(map[string]string, len(tokens))
	for k, v := range tokens {
		key := fold.String(k)
		if _, exists := folded[key]; !exists {
			folded[key] = v
		}
	}
	return ReplaceTokensFunc(s, open, close, func(name string) (string, bool) {
		v, ok := folded[fold.String(name)]
		return v, ok
	})
}

// ReplaceTokensDefault replaces {name} tokens, matching names exactly.
func ReplaceTokensDefault(s string, tokens map[string]string) string {
	return ReplaceTokens(s, '{', '}', tokens, false)
}

var regexCache sync.Map // pattern -> *regexp.Regexp

// RegexReplace replaces every match of pattern in s with replacement,
// which may reference groups as $1 or ${name}. Compiled patterns are cached.
func RegexReplace(s, pattern, replacement string) (string, error) {
	var re *regexp.Regexp
	if cached, ok := regexCache.Load(pattern); ok {
		re = cached.(*regexp.Regexp)
	} else {
		compiled, err := regexp.Compile(pattern)
		if err != nil {
			return "", errors.NewErrorBuilder(errors.ModuleStringx).
				Operation("regex_replace").
				Message("invalid regular expression").
				Cause(err).
				Code(errors.CodeStringxInvalidPattern).
				Detail("pattern", pattern).
				Build()
		}
		actual, _ := regexCache.LoadOrStore(pattern, compiled)
		re = actual.(*regexp.Regexp)
	}
	return re.ReplaceAllString(s, replacement), nil
}
