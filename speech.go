package html2tei

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// Prefixes left on a text run when the source markup moved a punctuation
// mark out of the preceding element.
var (
	textArtifactPrefixes  = []string{", ", ". ", ": "}
	verseArtifactPrefixes = []string{", ", ". "}
)

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// addSpeakerText appends a prose run to the active speech.
//
// A leading ", ", ". " or ": " is cut off; its punctuation mark goes to the
// last created node if that is a stage direction. A remaining single
// character is treated the same way instead of becoming a paragraph.
func (c *Converter) addSpeakerText(text string) {
	if hasAnyPrefix(text, textArtifactPrefixes) {
		c.builder.AppendToLastStage(text[:1])
		text = text[2:]
	}
	text = strings.TrimSpace(stripNewlines(text))

	if c.builder.ActiveSpeech() == nil {
		return
	}
	switch n := utf8.RuneCountInString(text); {
	case n > 1:
		// Cannot fail: a speech is active.
		_, _ = c.builder.AddParagraph(text)
	case n == 1:
		c.builder.AppendToLastStage(text)
	}
}

// addVerse turns the direct text children of a p.vers into one line group
// in the active speech. Nested elements (line breaks, spans) are skipped.
func (c *Converter) addVerse(p *html.Node) error {
	var lines []string
	for child := p.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != html.TextNode {
			continue
		}
		line := child.Data
		if hasAnyPrefix(line, verseArtifactPrefixes) {
			line = line[2:]
		}
		line = strings.TrimSpace(stripNewlines(line))
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	_, err := c.builder.AddLineGroup(lines)
	return err
}

// trimSpeakerName cleans the text of a speaker span. Trailing periods are
// removed by the builder.
func trimSpeakerName(s string) string {
	return strings.TrimSpace(stripNewlines(s))
}
