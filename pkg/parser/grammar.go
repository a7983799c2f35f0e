package parser

import (
	"strings"
	"unicode"

	"github.com/isker/robots/pkg/types"
)

// ParseLine recognizes at most one directive on a single line of text.
// It returns ok=false for anything it cannot recognize: blank lines,
// comment lines, unknown directives, and path values that do not start
// with "/". Recognition failure is never an error.
func ParseLine(line int, text string) (types.ParsedLine, bool) {
	text = strings.TrimSuffix(text, "\r")
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return types.ParsedLine{}, false
	}

	key, rest, found := strings.Cut(trimmed, ":")
	if !found {
		return types.ParsedLine{}, false
	}

	switch strings.ToLower(strings.TrimSpace(key)) {
	case "user-agent":
		token := agentToken(rest)
		if token == "" {
			return types.ParsedLine{}, false
		}
		return types.ParsedLine{Type: types.DirectiveUserAgent, Value: token, Line: line}, true

	case "allow":
		return pathDirective(types.DirectiveAllow, rest, line)

	case "disallow":
		return pathDirective(types.DirectiveDisallow, rest, line)

	case "sitemap":
		// Sitemap values are URLs and may contain "#"; no comment stripping.
		value := strings.TrimSpace(rest)
		if value == "" {
			return types.ParsedLine{}, false
		}
		return types.ParsedLine{Type: types.DirectiveSitemap, Value: value, Line: line}, true
	}

	return types.ParsedLine{}, false
}

// agentToken extracts a user-agent token: the value ends at the first
// whitespace or "#", whichever comes first.
func agentToken(s string) string {
	s = strings.TrimSpace(s)
	for i, r := range s {
		if r == '#' || unicode.IsSpace(r) {
			return s[:i]
		}
	}
	return s
}

// pathDirective parses an allow/disallow value. An inline comment is
// stripped, and the remaining value must begin with "/" or the whole line
// fails to parse.
func pathDirective(t types.DirectiveType, rest string, line int) (types.ParsedLine, bool) {
	value := rest
	if i := strings.IndexByte(value, '#'); i >= 0 {
		value = value[:i]
	}
	value = strings.TrimSpace(value)
	if !strings.HasPrefix(value, "/") {
		return types.ParsedLine{}, false
	}
	return types.ParsedLine{Type: t, Value: value, Line: line}, true
}
