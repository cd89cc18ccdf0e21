package document_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/persona-quiz/internal/document"
)

var analysisHeadings = []string{"Core Traits", "Decision-Making Style", "Key Strengths", "Growth Areas"}

func TestClean(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"Emphasis", "You are **bold** and __brave__.", "You are bold and brave."},
		{"Headers", "## Core Traits\nCalm", "Core Traits\nCalm"},
		{"HeaderSpacing", "Core Traits :  calm", "Core Traits: calm"},
		{"Bullets", "* first\n+ second\n• third", "- first\n- second\n- third"},
		{"BlankLines", "a\n\n\n\n\nb", "a\n\nb"},
		{"Spaces", "a  \t b   c", "a b c"},
		{"EmptyWrappers", "<div><p> </p></div>Text<span></span>", "Text"},
		{"CRLF", "a\r\nb", "a\nb"},
		{"Backticks", "use `code` here", "use code here"},
		{"Empty", "   \n\n  ", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, document.Clean(tc.in))
		})
	}
}

func TestCleanIdempotent(t *testing.T) {
	inputs := []string{
		"**Core Traits** :\n\n\n* You are *curious*\n* You are __kind__",
		"# * nested header bullet",
		"# + plus after header",
		"*# emphasis before header",
		"<div>\n<p></p>\n</div>\n\n\n   trailing   ",
		"1. Direct Answer : yes\n2. Explanation :  because",
		"plain text with no markup at all",
		"Core Traits: " + strings.Repeat("<div>", 12) + strings.Repeat("</div>", 12) + " tail",
	}
	for _, in := range inputs {
		once := document.Clean(in)
		assert.Equal(t, once, document.Clean(once), "input %q", in)
	}
}

func TestCleanDeeplyNestedWrappers(t *testing.T) {
	in := "Core Traits: " + strings.Repeat("<p><div>", 10) + strings.Repeat("</div></p>", 10) + " tail"
	assert.Equal(t, "Core Traits: tail", document.Clean(in))
}

func TestParse(t *testing.T) {
	raw := `Here is your analysis.

**1. Core Traits:**
You are thoughtful.

2. Decision-Making Style: You weigh options carefully.
You rarely rush.

### KEY STRENGTHS
- Patience
- Empathy

Growth Areas
Speak up more often.`

	doc := document.Parse(raw, analysisHeadings)
	require.Equal(t, 5, doc.Len())
	assert.True(t, doc.HasSections())

	assert.Equal(t, document.Section{Body: "Here is your analysis."}, doc.Sections[0])
	assert.Equal(t, document.Section{Heading: "Core Traits", Body: "You are thoughtful."}, doc.Sections[1])
	assert.Equal(t, document.Section{
		Heading: "Decision-Making Style",
		Body:    "You weigh options carefully.\nYou rarely rush.",
	}, doc.Sections[2])
	assert.Equal(t, "Key Strengths", doc.Sections[3].Heading)
	assert.Equal(t, "- Patience\n- Empathy", doc.Sections[3].Body)
	assert.Equal(t, "Growth Areas", doc.Sections[4].Heading)
}

func TestParseHeadingNeedsWholeLine(t *testing.T) {
	doc := document.Parse("Core traits of people vary a lot.", analysisHeadings)
	require.Equal(t, 1, doc.Len())
	assert.False(t, doc.HasSections())
}

func TestParseWithoutHeadings(t *testing.T) {
	doc := document.Parse("Just some text.", nil)
	require.Equal(t, 1, doc.Len())
	assert.Equal(t, "Just some text.", doc.Sections[0].Body)

	assert.Zero(t, document.Parse("  ", analysisHeadings).Len())
}

func TestDocumentText(t *testing.T) {
	doc := document.Document{Sections: []document.Section{
		{Body: "Lead."},
		{Heading: "Core Traits", Body: "Calm."},
		{Heading: "Growth Areas"},
	}}
	assert.Equal(t, "Lead.\n\nCore Traits:\nCalm.\n\nGrowth Areas:", doc.Text())

	reparsed := document.Parse(doc.Text(), analysisHeadings)
	assert.Equal(t, doc, reparsed)
}

func TestDocumentHTML(t *testing.T) {
	doc := document.Document{Sections: []document.Section{
		{Heading: "Key Strengths", Body: "- Patience\n- Empathy"},
		{Heading: "Growth Areas", Body: "<script>alert(1)</script>"},
	}}

	html, err := doc.HTML()
	require.NoError(t, err)
	assert.Contains(t, html, "<h2>Key Strengths</h2>")
	assert.Contains(t, html, "<li>Patience</li>")
	assert.NotContains(t, html, "<script>")
}

func TestPlainText(t *testing.T) {
	doc := document.Document{Sections: []document.Section{
		{Heading: "Core Traits", Body: "You are **calm** & kind."},
	}}
	html, err := doc.HTML()
	require.NoError(t, err)

	assert.Equal(t, "Core Traits\nYou are calm & kind.", document.PlainText(html))
	assert.Equal(t, "hi", document.PlainText("<script>alert(1)</script><p>hi</p>"))
}
