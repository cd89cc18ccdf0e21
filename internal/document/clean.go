package document

import (
	"regexp"
	"strings"
)

var (
	reBullet        = regexp.MustCompile(`^\s*[*+•]\s+`)
	reHeaderMarks   = regexp.MustCompile(`^(?:#+\s*)+`)
	reEmphasis      = regexp.MustCompile("[*`]+|_{2,}")
	reEmptyWrapper  = regexp.MustCompile(`(?i)<(p|div|span)>\s*</(p|div|span)>`)
	reSpaceRun      = regexp.MustCompile(`[ \t]+`)
	reSpaceColon    = regexp.MustCompile(`[ \t]+:`)
	reBlankLineRuns = regexp.MustCompile(`\n{3,}`)
)

// Clean strips markdown emphasis and empty wrapper blocks from oracle text
// and normalizes its whitespace. Clean(Clean(s)) == Clean(s).
//
// Passes repeat until nothing changes. A pass never lengthens the text and
// only rewrites a bullet to "- " in place, which no later pass matches, so
// the loop ends.
func Clean(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	for {
		next := cleanPass(text)
		if next == text {
			return text
		}
		text = next
	}
}

func cleanPass(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		line = reBullet.ReplaceAllString(line, "- ")
		line = reEmphasis.ReplaceAllString(line, "")
		lines[i] = reHeaderMarks.ReplaceAllString(strings.TrimSpace(line), "")
	}
	text = strings.Join(lines, "\n")
	text = reEmptyWrapper.ReplaceAllString(text, "")

	text = reSpaceRun.ReplaceAllString(text, " ")
	text = reSpaceColon.ReplaceAllString(text, ":")

	lines = strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	text = strings.Join(lines, "\n")

	text = reBlankLineRuns.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
