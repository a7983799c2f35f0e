// Test Type: Unit Test
// Description: Tests for the sitemap package - sitemap XML parsing

package sitemap_test

import (
	"testing"

	"github.com/isker/robots/pkg/errors"
	"github.com/isker/robots/pkg/parser"
	"github.com/isker/robots/pkg/sitemap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const urlsetDoc = `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url>
    <loc>https://example.com/</loc>
    <lastmod>2024-01-15</lastmod>
    <changefreq>daily</changefreq>
    <priority>1.0</priority>
  </url>
  <url>
    <loc>https://example.com/about</loc>
  </url>
  <url>
    <lastmod>2024-01-01</lastmod>
  </url>
</urlset>`

const indexDoc = `<?xml version="1.0" encoding="UTF-8"?>
<sitemapindex xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <sitemap>
    <loc>https://example.com/sitemap-articles.xml</loc>
    <lastmod>2024-02-01</lastmod>
  </sitemap>
  <sitemap>
    <loc>https://example.com/sitemap-images.xml</loc>
  </sitemap>
</sitemapindex>`

func TestParse_URLSet(t *testing.T) {
	doc, err := sitemap.Parse(urlsetDoc)
	require.NoError(t, err)

	assert.Equal(t, sitemap.KindURLSet, doc.Kind)
	require.Len(t, doc.Entries, 2, "a url element without loc is skipped")

	assert.Equal(t, sitemap.Entry{
		Loc:        "https://example.com/",
		LastMod:    "2024-01-15",
		ChangeFreq: "daily",
		Priority:   "1.0",
	}, doc.Entries[0])

	assert.Equal(t, []string{
		"https://example.com/",
		"https://example.com/about",
	}, doc.Locations())
}

func TestParse_Index(t *testing.T) {
	doc, err := sitemap.Parse(indexDoc)
	require.NoError(t, err)

	assert.Equal(t, sitemap.KindIndex, doc.Kind)
	assert.Equal(t, []string{
		"https://example.com/sitemap-articles.xml",
		"https://example.com/sitemap-images.xml",
	}, doc.Locations())
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"broken_xml", "<urlset><url></urlset>"},
		{"wrong_root", "<html></html>"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sitemap.Parse(tt.content)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrSitemapParse))
		})
	}
}

func TestDeclared(t *testing.T) {
	rs := parser.Parse("sitemap: https://example.com/sitemap1\nuser-agent: *\ndisallow: /x\nsitemap: https://example.com/sitemap2")

	assert.Equal(t, []string{
		"https://example.com/sitemap1",
		"https://example.com/sitemap2",
	}, sitemap.Declared(rs))
}
