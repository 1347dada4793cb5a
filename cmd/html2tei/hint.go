package main

import (
	"context"
	"errors"
	"net"
	"strings"

	"github.com/alnah/go-html2tei"
	"github.com/alnah/go-html2tei/internal/config"
	"github.com/alnah/go-html2tei/internal/fetch"
	"github.com/alnah/go-html2tei/internal/hints"
)

// hintFor returns an actionable hint for err, or "". containerID names the
// content element of the failing drama. Batch errors get no hint: each
// failure was already printed with its own.
func hintFor(err error, containerID string) string {
	var be *batchError
	if errors.As(err, &be) {
		return ""
	}

	var statusErr *fetch.StatusError
	var netErr net.Error
	switch {
	case errors.As(err, &statusErr):
		return hints.ForFetchStatus(statusErr.Code)
	case errors.Is(err, fetch.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, fetch.ErrPageLoad),
		errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr) && netErr.Timeout():
		return hints.ForTimeout()
	case errors.Is(err, fetch.ErrNoPageNumber):
		return hints.ForNoPageNumber()
	case errors.Is(err, html2tei.ErrContainerNotFound):
		return hints.ForContainerNotFound(containerID)
	case errors.Is(err, html2tei.ErrNoActiveSpeech):
		return hints.ForNoActiveSpeech()
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(triedPaths(err))
	case errors.Is(err, ErrWriteOutput), errors.Is(err, ErrWriteReport):
		return hints.ForOutputDirectory()
	}
	return ""
}

// triedPaths extracts the searched locations from a config lookup error
// ("... tried a, b").
func triedPaths(err error) []string {
	msg := err.Error()
	i := strings.Index(msg, "tried ")
	if i < 0 {
		return nil
	}
	return strings.Split(msg[i+len("tried "):], ", ")
}
