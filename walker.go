package html2tei

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// walkPage visits the direct children of the content container in order.
// Paragraphs go to the classifier; headings open acts or scenes when they
// contain a trigger. Headings without a trigger are not structural.
func (c *Converter) walkPage(doc *html.Node) error {
	container := findByID(doc, c.cfg.containerID)
	if container == nil {
		return ErrContainerNotFound
	}

	for n := container.FirstChild; n != nil; n = n.NextSibling {
		switch {
		case isElement(n, atom.P):
			if err := c.addParagraph(n); err != nil {
				return err
			}
		case isHeading(n):
			c.addHeading(textContent(n))
		}
	}
	return nil
}

func (c *Converter) addHeading(heading string) {
	switch {
	case strings.Contains(heading, c.cfg.actTrigger):
		c.builder.AddAct()
	case strings.Contains(heading, c.cfg.sceneTrigger):
		c.builder.AddScene()
	default:
		c.log.Debug().Str("heading", strings.TrimSpace(heading)).Msg("ignoring heading without trigger")
	}
}
