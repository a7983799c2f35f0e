// Package urlpath extracts the matchable portion of a URL for directive
// evaluation: the path plus any query string and fragment, with scheme,
// host, port, and credentials discarded. Absolute and relative URLs are
// both accepted.
package urlpath

import (
	"net/url"

	"github.com/isker/robots/pkg/errors"
)

// PathAndQuery returns the candidate string a robots.txt directive is
// matched against. An empty path becomes "/". A URL the standard parser
// rejects is a caller-facing error.
func PathAndQuery(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrURLParse, "cannot parse url %q", rawURL).
			WithDetail("url", rawURL)
	}

	candidate := u.EscapedPath()
	if candidate == "" {
		candidate = "/"
	}
	if u.RawQuery != "" {
		candidate += "?" + u.RawQuery
	}
	if u.Fragment != "" {
		candidate += "#" + u.EscapedFragment()
	}

	return candidate, nil
}
