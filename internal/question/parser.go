package question

import (
	"regexp"
	"strings"

	"github.com/saulo-duarte/persona-quiz/internal/apperr"
)

var (
	reQuestionLine = regexp.MustCompile(`^(\d+)\.\s*(.+)`)
	reOptionLine   = regexp.MustCompile(`^[a-d]\)\s*(.+)`)
)

// Parse turns oracle text into questions. Structured JSON output is tried
// first; otherwise the text is split into blocks at every line that starts a
// numbered question. A block yields a question only with exactly four
// lettered options; other blocks are dropped.
func Parse(raw string) ([]Question, error) {
	if qs, ok := parseStructured(raw); ok && len(qs) > 0 {
		return qs, nil
	}

	var questions []Question
	for _, block := range splitBlocks(raw) {
		if q, ok := parseBlock(block); ok {
			questions = append(questions, q)
		}
	}

	if len(questions) == 0 {
		return nil, apperr.Parse("no valid questions")
	}
	return questions, nil
}

// splitBlocks groups lines so that each block starts at a numbered line.
// Lines before the first numbered line form a block that never parses.
func splitBlocks(raw string) [][]string {
	var (
		blocks  [][]string
		current []string
	)
	for _, line := range strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n") {
		line = normalizeLine(line)
		if line == "" {
			continue
		}
		if reQuestionLine.MatchString(line) && len(current) > 0 {
			blocks = append(blocks, current)
			current = nil
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		blocks = append(blocks, current)
	}
	return blocks
}

func parseBlock(lines []string) (Question, bool) {
	m := reQuestionLine.FindStringSubmatch(lines[0])
	if m == nil {
		return Question{}, false
	}
	text := strings.TrimSpace(m[2])
	if text == "" {
		return Question{}, false
	}

	options := make([]string, 0, OptionsPerQuestion)
	for _, line := range lines[1:] {
		if om := reOptionLine.FindStringSubmatch(line); om != nil {
			options = append(options, strings.TrimSpace(om[1]))
		}
	}
	if len(options) != OptionsPerQuestion {
		return Question{}, false
	}
	return Question{Question: text, Options: options}, true
}

// normalizeLine trims whitespace and the emphasis markers models like to
// wrap lines in.
func normalizeLine(line string) string {
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(line), "*_"))
}
