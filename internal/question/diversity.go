package question

import (
	"strings"
	"unicode"

	"github.com/samber/lo"
)

var stopwords = map[string]struct{}{
	"what": {}, "which": {}, "when": {}, "where": {}, "would": {}, "your": {}, "you're": {},
	"that": {}, "this": {}, "with": {}, "from": {}, "have": {}, "they": {}, "them": {},
	"there": {}, "their": {}, "about": {}, "most": {}, "more": {}, "some": {}, "into": {},
	"than": {}, "then": {}, "does": {}, "were": {}, "will": {}, "been": {}, "being": {},
	"like": {}, "best": {}, "describes": {}, "prefer": {}, "usually": {}, "how": {},
	"do": {}, "the": {}, "and": {}, "are": {}, "for": {}, "feel": {}, "someone": {},
}

// DiversityRule rejects batches where too many content words repeat.
type DiversityRule struct {
	MinWordLen   int
	MaxRepeats   int
	MaxRepeaters int
}

// Repetitive reports whether more than MaxRepeaters distinct content words
// each appear more than MaxRepeats times across the question texts.
func (r DiversityRule) Repetitive(questions []Question) bool {
	words := lo.FlatMap(questions, func(q Question, _ int) []string {
		return contentWords(q.Question, r.MinWordLen)
	})
	counts := lo.CountValues(words)
	repeaters := lo.PickBy(counts, func(_ string, n int) bool {
		return n > r.MaxRepeats
	})
	return len(repeaters) > r.MaxRepeaters
}

func contentWords(text string, minLen int) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})
	return lo.FilterMap(fields, func(w string, _ int) (string, bool) {
		w = strings.Trim(w, "'")
		if len([]rune(w)) < minLen {
			return "", false
		}
		_, stop := stopwords[w]
		return w, !stop
	})
}
