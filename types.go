package html2tei

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/alnah/go-html2tei/internal/tei"
)

// Default heading triggers and container id, matching the markup of the
// Projekt Gutenberg-DE drama pages.
const (
	DefaultActTrigger   = "Akt"
	DefaultSceneTrigger = "Szene"
	DefaultContainerID  = "gutenb"
)

// Metadata describes the drama being converted. Title and Author are required.
type Metadata struct {
	Title     string
	Author    string   // "Lastname, Firstname(s)" or "Name"
	Publisher string   // Optional, written to publicationStmt
	Date      string   // Optional conversion date, YYYY-MM-DD
	Sources   []string // Optional source page URLs, written to sourceDesc
}

// Validate checks that the required fields are set.
func (m *Metadata) Validate() error {
	if strings.TrimSpace(m.Title) == "" {
		return ErrEmptyTitle
	}
	if strings.TrimSpace(m.Author) == "" {
		return ErrEmptyAuthor
	}
	return nil
}

// Document model, re-exported from the internal tei package.
type (
	Document       = tei.Document
	Header         = tei.Header
	CastEntry      = tei.CastEntry
	Node           = tei.Node
	Division       = tei.Division
	Speech         = tei.Speech
	Paragraph      = tei.Paragraph
	LineGroup      = tei.LineGroup
	StageDirection = tei.StageDirection
)

// Result holds the output of Convert.
type Result struct {
	Document *Document // Finalized document tree
	XML      []byte    // Serialized TEI
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	actTrigger   string
	sceneTrigger string
	containerID  string
}

func defaultConfig() converterConfig {
	return converterConfig{
		actTrigger:   DefaultActTrigger,
		sceneTrigger: DefaultSceneTrigger,
		containerID:  DefaultContainerID,
	}
}

func (c *converterConfig) validate() error {
	if c.actTrigger == "" {
		return triggerError("act")
	}
	if c.sceneTrigger == "" {
		return triggerError("scene")
	}
	if c.containerID == "" {
		return ErrEmptyContainerID
	}
	return nil
}

// WithActTrigger sets the substring that marks a heading as a new act.
// Matching is case-sensitive.
func WithActTrigger(s string) Option {
	return func(c *Converter) {
		c.cfg.actTrigger = s
	}
}

// WithSceneTrigger sets the substring that marks a heading as a new scene.
// Matching is case-sensitive.
func WithSceneTrigger(s string) Option {
	return func(c *Converter) {
		c.cfg.sceneTrigger = s
	}
}

// WithContainerID sets the id of the element whose children hold the text.
func WithContainerID(id string) Option {
	return func(c *Converter) {
		c.cfg.containerID = id
	}
}

// WithLogger sets the logger used for diagnostics about skipped markup.
// The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Converter) {
		c.log = l
	}
}

// triggerError describes invalid trigger configuration.
func triggerError(name string) error {
	return fmt.Errorf("%w: %s", ErrEmptyTrigger, name)
}
