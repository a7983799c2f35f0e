// Package explain renders a verdict's provenance as a line-numbered
// excerpt of the original robots.txt source, for humans debugging why a
// URL was allowed or blocked.
package explain

import (
	"fmt"
	"strings"

	"github.com/isker/robots/pkg/types"
	"github.com/isker/robots/pkg/ui/styles"
)

// DefaultAllowMessage is returned when a verdict has no provenance: no
// rule in the document applied to the query.
const DefaultAllowMessage = "no rule in this robots.txt applies to the query; crawling is allowed by default"

// elisionMarker separates non-adjacent excerpt blocks.
const elisionMarker = ". . ."

// markup decorates excerpt lines. The plain variant leaves text
// untouched so programmatic callers get stable output; the styled variant
// is for terminal display.
type markup interface {
	Marked(s string) string
	Context(s string) string
	Elision(s string) string
}

type plainMarkup struct{}

func (plainMarkup) Marked(s string) string  { return s }
func (plainMarkup) Context(s string) string { return s }
func (plainMarkup) Elision(s string) string { return s }

type styledMarkup struct{}

func (styledMarkup) Marked(s string) string  { return styles.GetStyle("Match").Render(s) }
func (styledMarkup) Context(s string) string { return s }
func (styledMarkup) Elision(s string) string { return styles.GetStyle("Muted").Render(s) }

// Explain renders the source lines behind a verdict as plain text: the
// matched user-agent line and the matched directive line, each marked
// with an arrow and framed by one line of context, with non-adjacent
// regions elided.
func Explain(rs *types.RuleSet, v types.Verdict) string {
	return render(rs, v, plainMarkup{})
}

// Render is Explain with terminal styling applied to the marked lines.
func Render(rs *types.RuleSet, v types.Verdict) string {
	return render(rs, v, styledMarkup{})
}

type region struct {
	start, end int // 1-based, inclusive
}

func render(rs *types.RuleSet, v types.Verdict, m markup) string {
	if v.Because == nil {
		return DefaultAllowMessage
	}

	lines := strings.Split(rs.RawContent, "\n")

	agentLine := v.Because.Agent.Line
	directiveLine := v.Because.Directive.Line
	marked := map[int]bool{agentLine: true, directiveLine: true}

	first, second := agentLine, directiveLine
	if second < first {
		first, second = second, first
	}

	blocks := []region{clamp(first, len(lines))}
	next := clamp(second, len(lines))
	if last := &blocks[len(blocks)-1]; next.start <= last.end+1 {
		if next.end > last.end {
			last.end = next.end
		}
	} else {
		blocks = append(blocks, next)
	}

	var out []string
	for i, b := range blocks {
		if i > 0 {
			out = append(out, m.Elision(elisionMarker))
		}
		for n := b.start; n <= b.end; n++ {
			text := strings.TrimSuffix(lines[n-1], "\r")
			if marked[n] {
				out = append(out, m.Marked(fmt.Sprintf("%4d → %s", n, text)))
			} else {
				out = append(out, m.Context(fmt.Sprintf("%4d   %s", n, text)))
			}
		}
	}
	return strings.Join(out, "\n")
}

// clamp builds the one-line-of-context region around a marked line,
// bounded by the document.
func clamp(line, total int) region {
	r := region{start: line - 1, end: line + 1}
	if r.start < 1 {
		r.start = 1
	}
	if r.end > total {
		r.end = total
	}
	return r
}
