package main

import (
	"errors"
	"os"

	"github.com/alnah/go-html2tei"
	"github.com/alnah/go-html2tei/internal/config"
	"github.com/alnah/go-html2tei/internal/dateutil"
	"github.com/alnah/go-html2tei/internal/fetch"
)

// Exit codes for html2tei CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess   = 0 // Successful conversion
	ExitGeneral   = 1 // General/unexpected error
	ExitUsage     = 2 // Invalid flags, config, or validation
	ExitIO        = 3 // File not found, permission denied
	ExitFetch     = 4 // HTTP or browser errors while fetching pages
	ExitStructure = 5 // Pages do not have the expected drama markup
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
// A batch failure maps to the code of its first failed conversion.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var be *batchError
	if errors.As(err, &be) && len(be.errs) > 0 {
		return exitCodeFor(be.errs[0])
	}

	// Structure errors (exit 5)
	if errors.Is(err, html2tei.ErrContainerNotFound) ||
		errors.Is(err, html2tei.ErrNoActiveSpeech) ||
		errors.Is(err, html2tei.ErrHTMLParse) {
		return ExitStructure
	}

	// I/O errors (exit 3), checked before fetch errors so a missing local
	// page is reported as such.
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrWriteReport) {
		return ExitIO
	}

	// Fetch errors (exit 4)
	if errors.Is(err, ErrFetchPages) ||
		errors.Is(err, fetch.ErrBrowserConnect) ||
		errors.Is(err, fetch.ErrPageLoad) ||
		errors.Is(err, fetch.ErrFetchStatus) ||
		errors.Is(err, fetch.ErrPageTooLarge) {
		return ExitFetch
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, html2tei.ErrEmptyTitle) ||
		errors.Is(err, html2tei.ErrEmptyAuthor) ||
		errors.Is(err, html2tei.ErrEmptyTrigger) ||
		errors.Is(err, html2tei.ErrEmptyContainerID) ||
		errors.Is(err, fetch.ErrNoPageNumber) ||
		errors.Is(err, fetch.ErrInvalidPages) ||
		errors.Is(err, dateutil.ErrInvalidDateFormat) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrMixedInput) ||
		errors.Is(err, ErrPagesConflict) ||
		errors.Is(err, ErrOutputConflict) {
		return ExitUsage
	}

	return ExitGeneral
}
