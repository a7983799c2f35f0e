package parser

import (
	"sort"
	"strings"

	"github.com/isker/robots/pkg/logging"
	"github.com/isker/robots/pkg/types"
)

// Parse builds a RuleSet from robots.txt content. It never fails: lines
// the grammar cannot recognize are skipped, and the worst possible input
// yields an empty RuleSet. Both "\n" and "\r\n" line endings are accepted.
func Parse(content string) *types.RuleSet {
	logger := logging.GetLogger("parser")

	rs := &types.RuleSet{RawContent: content}

	var contributing []types.ParsedLine
	for i, raw := range strings.Split(content, "\n") {
		pl, ok := ParseLine(i+1, raw)
		if !ok {
			logger.Trace().Int("line", i+1).Msg("Ignored unrecognized line")
			continue
		}

		if pl.Type == types.DirectiveSitemap {
			rs.SitemapURLs = append(rs.SitemapURLs, types.SitemapURL{URL: pl.Value, Line: pl.Line})
			continue
		}
		contributing = append(contributing, pl)
	}

	rs.Groups = group(contributing)

	logger.Debug().
		Int("groups", len(rs.Groups)).
		Int("sitemaps", len(rs.SitemapURLs)).
		Msg("Parsed robots.txt document")

	return rs
}

// group folds the ordered group-contributing lines into one AgentGroup per
// distinct lowercased agent token. The fold carries the batch of agents
// currently being accumulated: consecutive user-agent lines extend the
// batch, a directive attaches to every agent in it, and a user-agent line
// after a directive starts a fresh batch.
func group(lines []types.ParsedLine) []*types.AgentGroup {
	logger := logging.GetLogger("parser.group")

	groups := make(map[string]*types.AgentGroup)
	firstSeen := make(map[string]int)
	var batch []string
	accumulating := false

	for _, pl := range lines {
		switch pl.Type {
		case types.DirectiveUserAgent:
			token := strings.ToLower(pl.Value)
			if !accumulating {
				batch = batch[:0]
			}
			batch = append(batch, token)
			if _, seen := firstSeen[token]; !seen {
				firstSeen[token] = pl.Line
			}
			accumulating = true

		case types.DirectiveAllow, types.DirectiveDisallow:
			accumulating = false
			if len(batch) == 0 {
				// A directive with no preceding user-agent line
				// belongs to nobody.
				logger.Debug().
					Int("line", pl.Line).
					Str("value", pl.Value).
					Msg("Discarded directive before any user-agent line")
				continue
			}

			d := types.Directive{Type: pl.Type, Value: pl.Value, Line: pl.Line}
			for _, token := range batch {
				g := groups[token]
				if g == nil {
					g = &types.AgentGroup{Agent: types.Agent{Value: token, Line: firstSeen[token]}}
					groups[token] = g
				}
				g.Directives = append(g.Directives, d)
			}
		}
	}

	out := make([]*types.AgentGroup, 0, len(groups))
	for _, g := range groups {
		orderDirectives(g)
		out = append(out, g)
	}

	// Longest token first so a linear scan over groups implements
	// longest-match agent selection.
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Agent.Value, out[j].Agent.Value
		if len(a) != len(b) {
			return len(a) > len(b)
		}
		return a < b
	})

	return out
}

// orderDirectives sorts a group's directives into evaluation order:
// longest pattern first, lexicographic ascending on equal lengths, source
// order on equal values. Exact duplicates, which occur when one batch
// lists the same agent token twice, collapse into a single entry.
func orderDirectives(g *types.AgentGroup) {
	ds := g.Directives
	sort.SliceStable(ds, func(i, j int) bool {
		a, b := ds[i], ds[j]
		if len(a.Value) != len(b.Value) {
			return len(a.Value) > len(b.Value)
		}
		if a.Value != b.Value {
			return a.Value < b.Value
		}
		return a.Line < b.Line
	})

	deduped := ds[:0]
	for i, d := range ds {
		if i > 0 && d == ds[i-1] {
			continue
		}
		deduped = append(deduped, d)
	}
	g.Directives = deduped
}
