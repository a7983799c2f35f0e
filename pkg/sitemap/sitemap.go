// Package sitemap parses sitemap XML documents: plain url sets and
// sitemap index files. It only consumes document content; fetching the
// documents a robots.txt points at is the caller's business.
package sitemap

import (
	"github.com/beevik/etree"

	"github.com/isker/robots/pkg/errors"
	"github.com/isker/robots/pkg/logging"
	"github.com/isker/robots/pkg/types"
)

// Kind distinguishes the two sitemap document shapes.
type Kind int

const (
	KindURLSet Kind = iota // <urlset> of page entries
	KindIndex              // <sitemapindex> pointing at further sitemaps
)

// Entry is one <url> or <sitemap> element of a sitemap document.
type Entry struct {
	Loc        string
	LastMod    string
	ChangeFreq string
	Priority   string
}

// Document is a parsed sitemap file.
type Document struct {
	Kind    Kind
	Entries []Entry
}

// Parse reads a sitemap XML document from content. Unlike robots.txt
// parsing, sitemap documents have a real schema; malformed XML or an
// unexpected root element is an error.
func Parse(content string) (*Document, error) {
	logger := logging.GetLogger("sitemap")

	xml := etree.NewDocument()
	if err := xml.ReadFromString(content); err != nil {
		return nil, errors.Wrap(err, errors.ErrSitemapParse, "malformed sitemap XML")
	}

	root := xml.Root()
	if root == nil {
		return nil, errors.New(errors.ErrSitemapParse, "sitemap document has no root element")
	}

	doc := &Document{}
	var entryTag string
	switch root.Tag {
	case "urlset":
		doc.Kind = KindURLSet
		entryTag = "url"
	case "sitemapindex":
		doc.Kind = KindIndex
		entryTag = "sitemap"
	default:
		return nil, errors.Newf(errors.ErrSitemapParse,
			"unexpected root element %q, want urlset or sitemapindex", root.Tag)
	}

	for _, el := range root.SelectElements(entryTag) {
		entry := Entry{
			Loc:        childText(el, "loc"),
			LastMod:    childText(el, "lastmod"),
			ChangeFreq: childText(el, "changefreq"),
			Priority:   childText(el, "priority"),
		}
		if entry.Loc == "" {
			// A location-less entry carries no information.
			continue
		}
		doc.Entries = append(doc.Entries, entry)
	}

	logger.Debug().
		Int("entries", len(doc.Entries)).
		Bool("index", doc.Kind == KindIndex).
		Msg("Parsed sitemap document")

	return doc, nil
}

// Locations returns just the URLs of the document's entries.
func (d *Document) Locations() []string {
	locs := make([]string, 0, len(d.Entries))
	for _, e := range d.Entries {
		locs = append(locs, e.Loc)
	}
	return locs
}

// Declared lists the sitemap URLs a parsed robots.txt advertises, in
// source order.
func Declared(rs *types.RuleSet) []string {
	urls := make([]string, 0, len(rs.SitemapURLs))
	for _, s := range rs.SitemapURLs {
		urls = append(urls, s.URL)
	}
	return urls
}

func childText(el *etree.Element, tag string) string {
	if child := el.SelectElement(tag); child != nil {
		return child.Text()
	}
	return ""
}
