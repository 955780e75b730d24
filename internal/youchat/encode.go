package youchat

import "strings"

// queryReplacer escapes the characters the endpoint requires escaped, and
// nothing else. The table is the service's own: thirteen fixed substitutions,
// applied in a single pass. Everything outside it, including '%', '#', and
// non-ASCII, passes through untouched.
var queryReplacer = strings.NewReplacer(
	" ", "%20",
	"?", "%3F",
	"&", "%26",
	`"`, "%22",
	"'", "%27",
	",", "%2C",
	";", "%3B",
	":", "%3A",
	"/", "%2F",
	`\`, "%5C",
	"|", "%7C",
	"=", "%3D",
	"+", "%2B",
)

// PrepareQuery escapes a raw query for the q parameter. Replacement output is
// never rescanned, and no replacement contains a mapped character, so the
// operation is idempotent: already-escaped text comes back unchanged.
func (c *Client) PrepareQuery(query string) string {
	return queryReplacer.Replace(query)
}
