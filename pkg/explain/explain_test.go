// Test Type: Unit Test
// Description: Tests for the explain package - verdict provenance rendering

package explain_test

import (
	"strings"
	"testing"

	"github.com/isker/robots/pkg/explain"
	"github.com/isker/robots/pkg/parser"
	"github.com/isker/robots/pkg/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExplain_NoProvenance(t *testing.T) {
	rs := parser.Parse("user-agent: *\ndisallow: /private")

	v, err := query.Query(rs, "/public", "anybot")
	require.NoError(t, err)
	require.Nil(t, v.Because)

	assert.Equal(t, explain.DefaultAllowMessage, explain.Explain(rs, v))
}

func TestExplain_AdjacentLinesFormOneBlock(t *testing.T) {
	rs := parser.Parse(strings.Join([]string{
		"# header comment",
		"user-agent: *",
		"disallow: /private",
		"# trailing comment",
	}, "\n"))

	v, err := query.Query(rs, "/private/file", "anybot")
	require.NoError(t, err)
	require.NotNil(t, v.Because)

	got := explain.Explain(rs, v)

	want := strings.Join([]string{
		"   1   # header comment",
		"   2 → user-agent: *",
		"   3 → disallow: /private",
		"   4   # trailing comment",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestExplain_DistantLinesAreElided(t *testing.T) {
	doc := strings.Join([]string{
		"user-agent: grabber", // 1
		"# a",                 // 2
		"# b",                 // 3
		"# c",                 // 4
		"# d",                 // 5
		"# e",                 // 6
		"disallow: /vault",    // 7
	}, "\n")
	rs := parser.Parse(doc)

	v, err := query.Query(rs, "/vault/gold", "grabber 2.0")
	require.NoError(t, err)
	require.NotNil(t, v.Because)

	got := explain.Explain(rs, v)

	want := strings.Join([]string{
		"   1 → user-agent: grabber",
		"   2   # a",
		". . .",
		"   6   # e",
		"   7 → disallow: /vault",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestExplain_MarksLinesAtDocumentEdges(t *testing.T) {
	rs := parser.Parse("user-agent: *\ndisallow: /")

	v, err := query.Query(rs, "/anything", "anybot")
	require.NoError(t, err)
	require.NotNil(t, v.Because)

	got := explain.Explain(rs, v)

	want := strings.Join([]string{
		"   1 → user-agent: *",
		"   2 → disallow: /",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestExplain_CRLFSourceRendersCleanly(t *testing.T) {
	rs := parser.Parse("user-agent: *\r\ndisallow: /private\r\n")

	v, err := query.Query(rs, "/private", "anybot")
	require.NoError(t, err)
	require.NotNil(t, v.Because)

	got := explain.Explain(rs, v)
	assert.NotContains(t, got, "\r")
}

func TestRender_CoversSameLinesAsExplain(t *testing.T) {
	rs := parser.Parse("user-agent: *\ndisallow: /private")

	v, err := query.Query(rs, "/private", "anybot")
	require.NoError(t, err)

	// In a test environment styling degrades to plain text; the rendered
	// variant must still show the same excerpt.
	assert.Contains(t, explain.Render(rs, v), "disallow: /private")
}
