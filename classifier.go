package html2tei

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// markupClass is the closed set of class values the source markup uses to
// tag paragraphs and inline spans.
type markupClass int

const (
	classOther   markupClass = iota // unknown or missing, ignored
	classVerse                      // p.vers: verse block
	classStage                      // p.stage, span.stage: stage direction between speeches
	classSpeaker                    // span.speaker: speaker name, starts a speech
	classRegie                      // span.regie: stage direction inside a speech
)

func parseMarkupClass(s string) markupClass {
	switch s {
	case "vers":
		return classVerse
	case "stage":
		return classStage
	case "speaker":
		return classSpeaker
	case "regie":
		return classRegie
	default:
		return classOther
	}
}

func (c markupClass) String() string {
	switch c {
	case classVerse:
		return "vers"
	case classStage:
		return "stage"
	case classSpeaker:
		return "speaker"
	case classRegie:
		return "regie"
	default:
		return "other"
	}
}

// addParagraph dispatches one <p> to the builder.
func (c *Converter) addParagraph(p *html.Node) error {
	class, hasClass := firstClass(p)
	if hasClass {
		switch parseMarkupClass(class) {
		case classVerse:
			return c.addVerse(p)
		case classStage:
			c.builder.AddStage(stripNewlines(textContent(p)))
		default:
			c.log.Debug().Str("class", class).Msg("skipping paragraph with unknown class")
		}
		return nil
	}

	for child := p.FirstChild; child != nil; child = child.NextSibling {
		switch {
		case child.Type == html.TextNode:
			c.addSpeakerText(child.Data)
		case isElement(child, atom.Span):
			if err := c.addSpan(child); err != nil {
				return err
			}
		}
	}
	return nil
}

// addSpan handles one inline span of an unclassed paragraph.
func (c *Converter) addSpan(span *html.Node) error {
	class, _ := firstClass(span)
	switch parseMarkupClass(class) {
	case classStage:
		c.builder.AddStage(stripNewlines(textContent(span)))
	case classSpeaker:
		c.builder.AddSpeech(trimSpeakerName(textContent(span)))
	case classRegie:
		if _, err := c.builder.AddInnerStage(stripNewlines(textContent(span))); err != nil {
			return err
		}
	default:
		c.log.Debug().Str("class", class).Msg("skipping span with unknown class")
	}
	return nil
}
