// Package types defines the shared value types for parsed robots.txt
// documents: directives, agent groups, rule sets, and query verdicts.
// Everything here is a plain value; a RuleSet is immutable once built and
// safe to share across concurrent queries.
package types

// DirectiveType identifies the kind of a recognized robots.txt line.
type DirectiveType int

const (
	DirectiveUnknown   DirectiveType = iota
	DirectiveUserAgent               // user-agent: <token>
	DirectiveAllow                   // allow: /<path pattern>
	DirectiveDisallow                // disallow: /<path pattern>
	DirectiveSitemap                 // sitemap: <url>
)

// String returns the canonical lowercase keyword for the directive type.
func (t DirectiveType) String() string {
	switch t {
	case DirectiveUserAgent:
		return "user-agent"
	case DirectiveAllow:
		return "allow"
	case DirectiveDisallow:
		return "disallow"
	case DirectiveSitemap:
		return "sitemap"
	default:
		return "unknown"
	}
}

// ParsedLine is one recognized source line. Lines the grammar cannot
// recognize produce no ParsedLine at all.
type ParsedLine struct {
	Type  DirectiveType
	Value string
	Line  int // 1-based line number in the source document
}

// Directive is an allow or disallow rule attached to an agent group.
// Path values always begin with "/" and preserve their original case.
type Directive struct {
	Type  DirectiveType // DirectiveAllow or DirectiveDisallow
	Value string        // path pattern, may contain "*" and a trailing "$"
	Line  int
}

// Agent is a user-agent token together with the line it first appeared on.
// The token is stored lowercased.
type Agent struct {
	Value string
	Line  int
}

// AgentGroup is the ordered set of directives that apply to one user-agent
// token. Directives are kept sorted longest-pattern-first with a
// lexicographic tie-break; that order is the evaluation order and must not
// be disturbed.
type AgentGroup struct {
	Agent      Agent
	Directives []Directive
}

// SitemapURL is a sitemap directive value with its source line.
type SitemapURL struct {
	URL  string
	Line int
}

// RuleSet is the complete parse result for one robots.txt document.
//
// Groups is ordered by agent token length descending, lexicographic
// ascending on ties, so that a linear scan implements longest-token-first
// selection. RawContent holds the original document verbatim so a verdict
// can be rendered back against its source.
type RuleSet struct {
	SitemapURLs []SitemapURL
	Groups      []*AgentGroup
	RawContent  string
}

// FindGroup returns the group for an exact lowercased agent token, or nil.
func (rs *RuleSet) FindGroup(token string) *AgentGroup {
	for _, g := range rs.Groups {
		if g.Agent.Value == token {
			return g
		}
	}
	return nil
}

// Query records the inputs a verdict was produced for.
type Query struct {
	URL       string
	UserAgent string
}

// Provenance identifies the directive that decided a verdict and the agent
// group it came from.
type Provenance struct {
	Directive Directive
	Agent     Agent
}

// Verdict is the outcome of evaluating one URL for one user agent.
// Because is nil when no directive matched and the default-allow policy
// applied.
type Verdict struct {
	Result  DirectiveType // DirectiveAllow or DirectiveDisallow
	Because *Provenance
	Query   Query
}

// Allowed reports whether the verdict permits crawling.
func (v Verdict) Allowed() bool {
	return v.Result != DirectiveDisallow
}
