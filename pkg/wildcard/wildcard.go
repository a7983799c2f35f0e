// Package wildcard compiles robots.txt path patterns into regular
// expressions. A pattern is literal text where "*" matches any substring
// (including the empty one) and a trailing "$" anchors the pattern to the
// end of the candidate; without "$" a prefix match suffices.
package wildcard

import (
	"regexp"
	"strings"
	"sync"
)

// cache memoizes compiled patterns by their source string. The key space
// is bounded by the directive count of the documents in play, so an
// unbounded map is fine. sync.Map keeps concurrent queries lock-free.
var cache sync.Map

// Compile translates a robots.txt path pattern into a regular expression.
func Compile(pattern string) (*regexp.Regexp, error) {
	anchored := strings.HasSuffix(pattern, "$")
	if anchored {
		pattern = strings.TrimSuffix(pattern, "$")
	}

	var sb strings.Builder
	sb.WriteString("^")

	start := 0
	inRun := false
	for i := 0; i < len(pattern); i++ {
		if pattern[i] == '*' {
			if !inRun {
				sb.WriteString(regexp.QuoteMeta(pattern[start:i]))
				sb.WriteString(".*")
				inRun = true
			}
			start = i + 1
			continue
		}
		inRun = false
	}
	sb.WriteString(regexp.QuoteMeta(pattern[start:]))

	if anchored {
		sb.WriteString("$")
	}

	return regexp.Compile(sb.String())
}

// Match reports whether candidate matches pattern, compiling through the
// package cache. The same pattern string is only ever compiled once.
func Match(pattern, candidate string) (bool, error) {
	if re, ok := cache.Load(pattern); ok {
		return re.(*regexp.Regexp).MatchString(candidate), nil
	}

	re, err := Compile(pattern)
	if err != nil {
		return false, err
	}
	cache.Store(pattern, re)

	return re.MatchString(candidate), nil
}
