package tei

import (
	"errors"
	"strings"
)

// ErrNoActiveSpeech is returned when a node that belongs inside a speech is
// added before any speaker has been seen.
var ErrNoActiveSpeech = errors.New("no active speech")

// Builder appends structural nodes to a Document and tracks the insertion
// state: the open act, the open scene, the active speech and the most
// recently created node. Every method updates the state before it returns.
//
// The last-node tracking is document-wide. A stage direction created in one
// scene can still receive punctuation from text that follows in another if
// nothing was created in between.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	doc    *Document
	act    *Division
	scene  *Division
	speech *Speech
	last   Node
}

// NewBuilder returns a Builder appending to doc.
func NewBuilder(doc *Document) *Builder {
	return &Builder{doc: doc}
}

// Document returns the document being built.
func (b *Builder) Document() *Document {
	return b.doc
}

// ActiveSpeech returns the speech that receives text, or nil.
func (b *Builder) ActiveSpeech() *Speech {
	return b.speech
}

// Last returns the most recently created node, or nil.
func (b *Builder) Last() Node {
	return b.last
}

// insertionPoint returns the innermost open division, or the body.
func (b *Builder) insertionPoint() container {
	switch {
	case b.scene != nil:
		return b.scene
	case b.act != nil:
		return b.act
	default:
		return &b.doc.Body
	}
}

// AddAct opens a new act under the body and closes the open scene.
func (b *Builder) AddAct() *Division {
	act := &Division{Type: Act}
	b.doc.Body.appendChild(act)
	b.act = act
	b.scene = nil
	b.last = act
	return act
}

// AddScene opens a new scene under the open act, or under the body if no
// act has been opened.
func (b *Builder) AddScene() *Division {
	scene := &Division{Type: Scene}
	if b.act != nil {
		b.act.appendChild(scene)
	} else {
		b.doc.Body.appendChild(scene)
	}
	b.scene = scene
	b.last = scene
	return scene
}

// AddSpeech starts a new speech at the insertion point and makes it active.
// Trailing periods are removed from the display name.
func (b *Builder) AddSpeech(name string) *Speech {
	sp := &Speech{
		Who:     "#" + SpeakerID(name),
		Speaker: strings.TrimRight(name, "."),
	}
	b.insertionPoint().appendChild(sp)
	b.speech = sp
	b.last = sp
	return sp
}

// AddStage appends a stage direction at division level.
func (b *Builder) AddStage(text string) *StageDirection {
	stage := &StageDirection{Text: text}
	b.insertionPoint().appendChild(stage)
	b.last = stage
	return stage
}

// AddInnerStage appends a stage direction inside the active speech.
func (b *Builder) AddInnerStage(text string) (*StageDirection, error) {
	if b.speech == nil {
		return nil, ErrNoActiveSpeech
	}
	stage := &StageDirection{Text: text}
	b.speech.appendChild(stage)
	b.last = stage
	return stage, nil
}

// AddLineGroup appends a verse block to the active speech.
func (b *Builder) AddLineGroup(lines []string) (*LineGroup, error) {
	if b.speech == nil {
		return nil, ErrNoActiveSpeech
	}
	lg := &LineGroup{Lines: lines}
	b.speech.appendChild(lg)
	b.last = lg
	return lg, nil
}

// AddParagraph appends prose to the active speech.
func (b *Builder) AddParagraph(text string) (*Paragraph, error) {
	if b.speech == nil {
		return nil, ErrNoActiveSpeech
	}
	p := &Paragraph{Text: text}
	b.speech.appendChild(p)
	b.last = p
	return p, nil
}

// AppendToLastStage appends s to the most recently created node if it is a
// stage direction. It reports whether the text was appended.
func (b *Builder) AppendToLastStage(s string) bool {
	stage, ok := b.last.(*StageDirection)
	if !ok {
		return false
	}
	stage.Text += s
	return true
}
