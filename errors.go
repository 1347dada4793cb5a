package html2tei

import (
	"errors"

	"github.com/alnah/go-html2tei/internal/tei"
)

// Sentinel errors for library operations.
var (
	ErrEmptyTitle        = errors.New("drama title cannot be empty")
	ErrEmptyAuthor       = errors.New("author name cannot be empty")
	ErrEmptyTrigger      = errors.New("heading trigger cannot be empty")
	ErrEmptyContainerID  = errors.New("container id cannot be empty")
	ErrHTMLParse         = errors.New("HTML parsing failed")
	ErrContainerNotFound = errors.New("content container not found")
	ErrFinalized         = errors.New("converter already finalized")
	ErrTEIEncoding       = errors.New("TEI encoding failed")

	// Structural errors in the source text.
	ErrNoActiveSpeech = tei.ErrNoActiveSpeech
)
