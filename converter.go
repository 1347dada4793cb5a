package html2tei

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/net/html"

	"github.com/alnah/go-html2tei/internal/tei"
)

// Converter builds one TEI document from the pages of one drama.
// Create with NewConverter, feed pages in order with AddPage, then call
// Finalize once. A Converter is not safe for concurrent use.
type Converter struct {
	cfg       converterConfig
	log       zerolog.Logger
	builder   *tei.Builder
	pages     int
	finalized bool
}

// NewConverter creates a Converter for the drama described by meta.
// Returns error if meta is incomplete or an option has an empty value.
func NewConverter(meta Metadata, opts ...Option) (*Converter, error) {
	if err := meta.Validate(); err != nil {
		return nil, err
	}

	c := &Converter{
		cfg: defaultConfig(),
		log: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.cfg.validate(); err != nil {
		return nil, err
	}

	doc := tei.NewDocument(meta.Title, meta.Author)
	doc.Header.Publisher = meta.Publisher
	doc.Header.Date = meta.Date
	doc.Header.Sources = append([]string(nil), meta.Sources...)
	c.builder = tei.NewBuilder(doc)

	return c, nil
}

// AddPage walks one parsed page and appends its content to the document.
// Pages must be added in reading order. An error leaves the document in an
// undefined state; discard the Converter.
func (c *Converter) AddPage(doc *html.Node) error {
	if c.finalized {
		return ErrFinalized
	}
	if err := c.walkPage(doc); err != nil {
		return fmt.Errorf("page %d: %w", c.pages+1, err)
	}
	c.pages++
	c.log.Debug().Int("page", c.pages).Msg("page converted")
	return nil
}

// Pages returns the number of pages added so far.
func (c *Converter) Pages() int {
	return c.pages
}

// Finalize builds the cast list and returns the finished document.
// Further calls return the same document; AddPage fails afterwards.
func (c *Converter) Finalize() *Document {
	if !c.finalized {
		c.builder.Finalize()
		c.finalized = true
	}
	return c.builder.Document()
}

// Convert parses and converts all pages, finalizes the document and
// serializes it. Conversion is all-or-nothing: any failing page fails the
// whole call. The context is checked between pages.
// Recovers from internal panics to prevent crashes from propagating to callers.
func Convert(ctx context.Context, meta Metadata, pages [][]byte, opts ...Option) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	c, err := NewConverter(meta, opts...)
	if err != nil {
		return nil, err
	}

	for i, page := range pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		doc, err := parsePageBytes(page)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i+1, err)
		}
		if err := c.AddPage(doc); err != nil {
			return nil, err
		}
	}

	document := c.Finalize()
	data, err := tei.Marshal(document)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTEIEncoding, err)
	}
	return &Result{Document: document, XML: data}, nil
}
