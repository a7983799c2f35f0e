// Package parser turns raw robots.txt text into a queryable RuleSet.
//
// The grammar is deliberately permissive. Each line is classified
// independently; a line is either one of the four recognized directives
//
//	user-agent: <token>
//	allow: /<path pattern>
//	disallow: /<path pattern>
//	sitemap: <url>
//
// or it is ignored. Keywords are case-insensitive, surrounding whitespace
// is insignificant, and inline "#" comments are stripped everywhere except
// after sitemap values (which are URLs and may legitimately contain "#").
// Unknown directives such as crawl-delay, malformed lines, and path values
// that do not start with "/" are all skipped without aborting the parse,
// so Parse always produces a RuleSet even for garbage input.
//
// Grouping follows the common crawler interpretation: consecutive
// user-agent lines share the directives that follow them, a directive
// before any user-agent line belongs to nobody, and each distinct agent
// token accumulates one directive set ordered longest-pattern-first for
// deterministic longest-match evaluation.
package parser
