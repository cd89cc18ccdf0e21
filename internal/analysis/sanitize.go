package analysis

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// MaxAnswerRunes caps a free-text answer.
const MaxAnswerRunes = 500

var (
	strictPolicy  = bluemonday.StrictPolicy()
	reURIScheme   = regexp.MustCompile(`(?i)(javascript|data)\s*:`)
	reDisallowed  = regexp.MustCompile(`[^\p{L}\p{N}\s.,!?'"()\-:;@#$%&*+=]`)
	reWhitespace  = regexp.MustCompile(`\s+`)
	reOptionLabel = regexp.MustCompile(`^[a-dA-D]\)\s*`)
)

// Sanitize makes a user answer safe to embed in a prompt: markup is
// dropped, script and data URIs are removed and the text is limited to
// MaxAnswerRunes.
func Sanitize(answer string) string {
	s := strictPolicy.Sanitize(answer)
	// bluemonday escapes what it keeps; the prompt wants plain text.
	s = html.UnescapeString(s)
	s = strings.NewReplacer("<", "", ">", "").Replace(s)
	s = reURIScheme.ReplaceAllString(s, "")
	s = reDisallowed.ReplaceAllString(s, "")
	s = strings.TrimSpace(reWhitespace.ReplaceAllString(s, " "))

	if r := []rune(s); len(r) > MaxAnswerRunes {
		s = strings.TrimSpace(string(r[:MaxAnswerRunes]))
	}
	return s
}
