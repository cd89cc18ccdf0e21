// Package document holds the section model shared by analyses and
// follow-up answers, and the post-processing applied to oracle text.
package document

import (
	"bytes"
	"regexp"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
)

type Section struct {
	Heading string `json:"heading,omitempty"`
	Body    string `json:"body"`
}

// Document is an ordered list of sections. The first section has an empty
// heading when the text had a lead paragraph.
type Document struct {
	Sections []Section `json:"sections"`
}

func (d Document) Len() int { return len(d.Sections) }

// HasSections reports whether at least one known heading was found.
func (d Document) HasSections() bool {
	for _, s := range d.Sections {
		if s.Heading != "" {
			return true
		}
	}
	return false
}

// Text renders the document back to plain text.
func (d Document) Text() string {
	parts := make([]string, 0, len(d.Sections))
	for _, s := range d.Sections {
		switch {
		case s.Heading == "":
			parts = append(parts, s.Body)
		case s.Body == "":
			parts = append(parts, s.Heading+":")
		default:
			parts = append(parts, s.Heading+":\n"+s.Body)
		}
	}
	return strings.Join(parts, "\n\n")
}

// Markdown renders every heading as a level two header.
func (d Document) Markdown() string {
	var b strings.Builder
	for _, s := range d.Sections {
		if s.Heading != "" {
			b.WriteString("## ")
			b.WriteString(s.Heading)
			b.WriteString("\n\n")
		}
		if s.Body != "" {
			b.WriteString(s.Body)
			b.WriteString("\n\n")
		}
	}
	return b.String()
}

// HTML renders the document for the browser. Raw HTML in the body is
// omitted by goldmark's default renderer.
func (d Document) HTML() (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(d.Markdown()), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Parse cleans text and splits it into sections on the given headings.
// Headings match case-insensitively, may be numbered ("1.") or bulleted,
// and may carry text after a colon, which starts the section body.
func Parse(text string, headings []string) Document {
	text = Clean(text)
	if text == "" {
		return Document{}
	}
	re := headingPattern(headings)
	canonical := make(map[string]string, len(headings))
	for _, h := range headings {
		canonical[strings.ToLower(h)] = h
	}

	var (
		doc     Document
		current = Section{}
		body    []string
		started bool
	)
	flush := func() {
		current.Body = strings.TrimSpace(strings.Join(body, "\n"))
		if current.Heading != "" || current.Body != "" {
			doc.Sections = append(doc.Sections, current)
		}
		body = nil
	}

	for _, line := range strings.Split(text, "\n") {
		if re != nil {
			if m := re.FindStringSubmatch(line); m != nil {
				if started || len(body) > 0 {
					flush()
				}
				started = true
				current = Section{Heading: canonical[strings.ToLower(m[1])]}
				if rest := strings.TrimSpace(m[2]); rest != "" {
					body = append(body, rest)
				}
				continue
			}
		}
		body = append(body, line)
	}
	flush()
	return doc
}

func headingPattern(headings []string) *regexp.Regexp {
	if len(headings) == 0 {
		return nil
	}
	sorted := append([]string(nil), headings...)
	sort.Slice(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })

	quoted := make([]string, len(sorted))
	for i, h := range sorted {
		quoted[i] = regexp.QuoteMeta(h)
	}
	return regexp.MustCompile(`(?i)^(?:\d+[.)]\s*)?(?:-\s*)?(` + strings.Join(quoted, "|") + `)\s*(?::\s*(.*))?$`)
}
