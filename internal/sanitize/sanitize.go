// Package sanitize turns untrusted form input into plain text.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

const maxPasses = 4

// Plain strips every HTML element from s and trims surrounding whitespace.
// Entities are decoded before stripping, so entity-encoded markup is removed
// as well; nested encodings are peeled until the text stops changing.
func Plain(s string) string {
	if s == "" {
		return ""
	}
	for i := 0; i < maxPasses; i++ {
		next := html.UnescapeString(strict.Sanitize(html.UnescapeString(s)))
		if next == s {
			break
		}
		s = next
	}
	return strings.TrimSpace(s)
}
