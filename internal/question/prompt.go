package question

import (
	"fmt"
	"strings"
)

const formatRules = `Generate %d multiple choice questions with 4 options each.
IMPORTANT: Format each question exactly like this example, with no asterisks or other formatting:

1. What is your favorite color?
a) Red
b) Blue
c) Green
d) Yellow

2. What is your preferred activity?
a) Reading
b) Sports
c) Music
d) Art

Use this exact format:
- Number the questions from 1 to %d, each starting with its number and a period
- Each option starts with a lowercase letter (a, b, c, d) and a closing parenthesis
- Exactly 4 options per question
- No asterisks, no bold, no markdown, no special characters
- One blank line between questions
- Every question must explore a different aspect; do not repeat themes or wording`

const structuredRules = `Generate %d multiple choice questions with exactly 4 options each.
Return only a JSON array of %d objects shaped {"question": string, "options": [4 strings]}.
Options must not carry letter prefixes. Every question must explore a different aspect.`

// BuildPrompt embeds the theme instruction in the constant format rules.
func BuildPrompt(instruction, focus string, count int, structured bool) string {
	var b strings.Builder
	b.WriteString(strings.TrimSpace(instruction))
	b.WriteString("\n\n")
	if focus != "" {
		b.WriteString("Question focus: ")
		b.WriteString(focus)
		b.WriteString("\n\n")
	}
	if structured {
		fmt.Fprintf(&b, structuredRules, count, count)
	} else {
		fmt.Fprintf(&b, formatRules, count, count)
	}
	return b.String()
}
