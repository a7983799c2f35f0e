package robots

// Message constants for the CLI surface
const (
	MsgRootShort = "Parse and query robots.txt files"
	MsgRootLong  = `robots parses robots-exclusion files and answers whether a user agent may
fetch a URL, following the common crawler interpretation of the protocol:
longest-pattern-first evaluation, longest-agent-token group selection, and
a default-allow policy when nothing matches.

Documents are read from a local file or stdin; robots never fetches
anything over the network.`

	MsgCheckShort = "Check whether a URL may be crawled"
	MsgCheckLong  = `Check evaluates a URL against a robots.txt document for one user agent
and reports the verdict. The exit status is 0 when crawling is allowed
and 1 when it is blocked, so check can gate scripts directly.`

	MsgExplainShort = "Show which robots.txt lines decided a verdict"
	MsgExplainLong  = `Explain runs the same evaluation as check and then renders the source
lines behind the verdict: the matched user-agent line and the matched
directive, in context, with their line numbers.`

	MsgSitemapsShort = "List the sitemap URLs a robots.txt declares"

	MsgGenConfigShort = "Print a starter configuration file"
	MsgGenConfigLong  = `GenConfig prints a config.toml with every option present but commented
out. Redirect it to the path shown by --help to customize defaults.`

	MsgVersionShort = "Print version information"

	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagAgent   = "User agent to evaluate the query for"
)
