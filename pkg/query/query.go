// Package query evaluates parsed robots.txt rule sets: it selects the
// agent group that applies to a requesting user agent and runs the
// group's directives against a URL in longest-pattern-first order.
package query

import (
	"strings"

	"github.com/isker/robots/pkg/logging"
	"github.com/isker/robots/pkg/types"
	"github.com/isker/robots/pkg/urlpath"
	"github.com/isker/robots/pkg/wildcard"
)

// Query evaluates rawURL for userAgent against rs. The verdict carries
// the deciding directive and agent when one matched; with no applicable
// group or no matching directive the result is an implicit allow with nil
// provenance. The only error is a URL the collaborator cannot parse.
func Query(rs *types.RuleSet, rawURL, userAgent string) (types.Verdict, error) {
	logger := logging.GetLogger("query")

	candidate, err := urlpath.PathAndQuery(rawURL)
	if err != nil {
		return types.Verdict{}, err
	}

	verdict := types.Verdict{
		Result: types.DirectiveAllow,
		Query:  types.Query{URL: rawURL, UserAgent: userAgent},
	}

	group := selectGroup(rs, strings.ToLower(userAgent))
	if group == nil {
		logger.Debug().Str("userAgent", userAgent).Msg("No applicable agent group")
		return verdict, nil
	}

	for _, d := range group.Directives {
		matched, err := wildcard.Match(d.Value, candidate)
		if err != nil {
			return types.Verdict{}, err
		}
		if matched {
			logger.Debug().
				Str("candidate", candidate).
				Str("pattern", d.Value).
				Str("agent", group.Agent.Value).
				Str("result", d.Type.String()).
				Msg("Directive matched")
			verdict.Result = d.Type
			verdict.Because = &types.Provenance{Directive: d, Agent: group.Agent}
			return verdict, nil
		}
	}

	logger.Debug().
		Str("candidate", candidate).
		Str("agent", group.Agent.Value).
		Msg("No directive matched, allowing by default")
	return verdict, nil
}

// IsCrawlable is the boolean convenience form of Query.
func IsCrawlable(rs *types.RuleSet, rawURL, userAgent string) (bool, error) {
	verdict, err := Query(rs, rawURL, userAgent)
	if err != nil {
		return false, err
	}
	return verdict.Allowed(), nil
}

// selectGroup picks the applicable agent group for a lowercased user
// agent: the first group, in stored longest-token-first order, whose
// token is a substring of the agent. The "*" group never participates in
// substring matching; it only serves as the fallback when nothing else
// applied.
func selectGroup(rs *types.RuleSet, agent string) *types.AgentGroup {
	for _, g := range rs.Groups {
		if g.Agent.Value == "*" {
			continue
		}
		if strings.Contains(agent, g.Agent.Value) {
			return g
		}
	}
	return rs.FindGroup("*")
}
