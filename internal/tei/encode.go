package tei

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/beevik/etree"
)

// indentSpaces is the pretty-print indentation of the encoded XML.
const indentSpaces = 2

// Marshal encodes doc as an indented UTF-8 XML document with declaration.
func Marshal(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode writes doc to w. See Marshal.
func Encode(w io.Writer, doc *Document) error {
	x := etree.NewDocument()
	x.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := x.CreateElement("TEI")
	root.CreateAttr("xmlns", Namespace)
	encodeHeader(root.CreateElement("teiHeader"), &doc.Header)

	body := root.CreateElement("text").CreateElement("body")
	encodeNodes(body, doc.Body.Children)

	x.Indent(indentSpaces)
	if _, err := x.WriteTo(w); err != nil {
		return fmt.Errorf("writing TEI document: %w", err)
	}
	return nil
}

func encodeHeader(el *etree.Element, h *Header) {
	fileDesc := el.CreateElement("fileDesc")
	titleStmt := fileDesc.CreateElement("titleStmt")
	titleStmt.CreateElement("title").SetText(h.Title)
	titleStmt.CreateElement("author").SetText(h.Author)

	if h.Publisher != "" || h.Date != "" {
		pub := fileDesc.CreateElement("publicationStmt")
		if h.Publisher != "" {
			pub.CreateElement("publisher").SetText(h.Publisher)
		}
		if h.Date != "" {
			date := pub.CreateElement("date")
			// @when only takes ISO dates; other formats stay as text.
			if _, err := time.Parse(time.DateOnly, h.Date); err == nil {
				date.CreateAttr("when", h.Date)
			}
			date.SetText(h.Date)
		}
	}

	if len(h.Sources) > 0 {
		sourceDesc := fileDesc.CreateElement("sourceDesc")
		for _, src := range h.Sources {
			ref := sourceDesc.CreateElement("bibl").CreateElement("ref")
			ref.CreateAttr("target", src)
			ref.SetText(src)
		}
	}

	profileDesc := el.CreateElement("profileDesc")
	lang := profileDesc.CreateElement("langUsage").CreateElement("language")
	lang.CreateAttr("ident", h.Language.Ident)
	lang.CreateAttr("usage", strconv.Itoa(h.Language.Usage))
	lang.SetText(h.Language.Name)

	listPerson := profileDesc.CreateElement("particDesc").CreateElement("listPerson")
	for _, p := range h.Cast {
		person := listPerson.CreateElement("person")
		person.CreateAttr("xml:id", p.ID)
		person.CreateElement("persName").SetText(p.Name)
	}
}

func encodeNodes(parent *etree.Element, nodes []Node) {
	for _, n := range nodes {
		switch v := n.(type) {
		case *Division:
			div := parent.CreateElement("div")
			div.CreateAttr("type", string(v.Type))
			encodeNodes(div, v.Children)
		case *Speech:
			sp := parent.CreateElement("sp")
			sp.CreateAttr("who", v.Who)
			sp.CreateElement("speaker").SetText(v.Speaker)
			encodeNodes(sp, v.Children)
		case *Paragraph:
			parent.CreateElement("p").SetText(v.Text)
		case *LineGroup:
			lg := parent.CreateElement("lg")
			for _, line := range v.Lines {
				lg.CreateElement("l").SetText(line)
			}
		case *StageDirection:
			parent.CreateElement("stage").SetText(v.Text)
		}
	}
}
