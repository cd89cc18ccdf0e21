package document

import (
	"html"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// PlainText strips markup from text the client echoes back, such as a
// rendered analysis, and cleans the result.
func PlainText(markup string) string {
	return Clean(html.UnescapeString(strictPolicy.Sanitize(markup)))
}
