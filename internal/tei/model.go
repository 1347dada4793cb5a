package tei

import "strings"

// XML namespaces used by the encoder.
const (
	Namespace    = "http://www.tei-c.org/ns/1.0"
	XMLNamespace = "http://www.w3.org/XML/1998/namespace"
)

// DivisionType distinguishes acts from scenes.
type DivisionType string

// Division types.
const (
	Act   DivisionType = "act"
	Scene DivisionType = "scene"
)

// Node is a child of the body, a division or a speech.
// Implemented by *Division, *Speech, *Paragraph, *LineGroup and *StageDirection.
type Node interface {
	teiNode()
}

// Document is the root of a TEI document: exactly one header and one body.
type Document struct {
	Header Header
	Body   Body
}

// Header holds the teiHeader metadata.
type Header struct {
	Title     string
	Author    string
	Publisher string   // Optional publicationStmt/publisher
	Date      string   // Optional publicationStmt/date@when, YYYY-MM-DD
	Sources   []string // Optional sourceDesc entries (source page URLs)
	Language  Language
	Cast      []CastEntry // Filled by Builder.Finalize
}

// Language describes profileDesc/langUsage/language.
type Language struct {
	Ident string
	Usage int
	Name  string
}

// German is the language of every document produced by this package.
var German = Language{Ident: "de", Usage: 100, Name: "German"}

// CastEntry is one person in the cast list.
type CastEntry struct {
	ID   string
	Name string
}

// Body is the top-level container of the text.
type Body struct {
	Children []Node
}

// Division is an act or a scene.
type Division struct {
	Type     DivisionType
	Children []Node
}

// Speech is one speaker's turn.
type Speech struct {
	Who      string // "#" + speaker ID
	Speaker  string // display name
	Children []Node
}

// Paragraph is a prose utterance inside a speech.
type Paragraph struct {
	Text string
}

// LineGroup is a verse block.
type LineGroup struct {
	Lines []string
}

// StageDirection is non-spoken text, between speeches or inside one.
type StageDirection struct {
	Text string
}

func (*Division) teiNode()       {}
func (*Speech) teiNode()         {}
func (*Paragraph) teiNode()      {}
func (*LineGroup) teiNode()      {}
func (*StageDirection) teiNode() {}

// container is implemented by nodes that accept structural children.
type container interface {
	appendChild(Node)
}

func (b *Body) appendChild(n Node)     { b.Children = append(b.Children, n) }
func (d *Division) appendChild(n Node) { d.Children = append(d.Children, n) }
func (s *Speech) appendChild(n Node)   { s.Children = append(s.Children, n) }

// SpeakerID derives the identifier of a speaker from its display name:
// trailing periods removed, lowercased, spaces replaced by underscores.
// SpeakerID(SpeakerID(x)) == SpeakerID(x).
func SpeakerID(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimRight(name, ".")), " ", "_")
}

// Walk calls fn for every node below the body in document order.
// Children are visited after their parent.
func (d *Document) Walk(fn func(Node)) {
	walkNodes(d.Body.Children, fn)
}

func walkNodes(nodes []Node, fn func(Node)) {
	for _, n := range nodes {
		fn(n)
		switch v := n.(type) {
		case *Division:
			walkNodes(v.Children, fn)
		case *Speech:
			walkNodes(v.Children, fn)
		}
	}
}

// NewDocument returns an empty document with the given title and author.
func NewDocument(title, author string) *Document {
	return &Document{
		Header: Header{
			Title:    title,
			Author:   author,
			Language: German,
		},
	}
}
