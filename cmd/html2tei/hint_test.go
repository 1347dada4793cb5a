package main

// Notes:
// - hintFor: we test that each error family gets its hint through wrapping,
//   and that batch errors and unknown errors get none.
// These are acceptable gaps: hint texts themselves are tested in internal/hints.

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/alnah/go-html2tei"
	"github.com/alnah/go-html2tei/internal/config"
	"github.com/alnah/go-html2tei/internal/fetch"
)

// timeoutErr is a net.Error reporting a timeout.
type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestHintFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string // substring, "" = no hint
	}{
		{"status 404", fmt.Errorf("%w: %w", ErrFetchPages, &fetch.StatusError{Code: 404, Status: "404 Not Found"}), "--pages"},
		{"status 429", &fetch.StatusError{Code: 429, Status: "429 Too Many Requests"}, "--rate"},
		{"page load", fetch.ErrPageLoad, "--timeout"},
		{"deadline", fmt.Errorf("page 1: %w", context.DeadlineExceeded), "--timeout"},
		{"net timeout", fmt.Errorf("get: %w", timeoutErr{}), "--timeout"},
		{"no page number", fetch.ErrNoPageNumber, "end with the page number"},
		{"container", fmt.Errorf("page 2: %w", html2tei.ErrContainerNotFound), `"content"`},
		{"no active speech", html2tei.ErrNoActiveSpeech, "first speaker"},
		{"config not found", fmt.Errorf("%w: tried a.yaml, /home/x/.config/go-html2tei/a.yaml", config.ErrConfigNotFound), "create /home/x/.config/go-html2tei/a.yaml"},
		{"write output", fmt.Errorf("%w: denied", ErrWriteOutput), "writable"},
		{"batch", &batchError{errs: []error{html2tei.ErrNoActiveSpeech}}, ""},
		{"unknown", errors.New("boom"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := hintFor(tt.err, "content")
			if tt.want == "" {
				if got != "" {
					t.Errorf("hintFor() = %q, want no hint", got)
				}
				return
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("hintFor() = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}

func TestTriedPaths(t *testing.T) {
	t.Parallel()

	got := triedPaths(errors.New("config file not found: tried a.yaml, a.yml"))
	if len(got) != 2 || got[0] != "a.yaml" || got[1] != "a.yml" {
		t.Errorf("triedPaths() = %v", got)
	}
	if triedPaths(errors.New("config file not found: x.yaml")) != nil {
		t.Error("triedPaths() without list should be nil")
	}
}
