package main

// Notes:
// - Shared test infrastructure: fake page source and a buffered environment.
// No coverage gaps: this is test infrastructure, not production code.

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alnah/go-html2tei/internal/config"
	"github.com/alnah/go-html2tei/internal/fetch"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Pages and fake fetcher
// ---------------------------------------------------------------------------

const (
	weberPage1 = `<html><body><div id="gutenb">
<h2>Erster Akt</h2>
<p><span class="speaker">MARIA.</span>Hallo</p>
</div></body></html>`

	weberPage2 = `<html><body><div id="gutenb">
<h3>Erste Szene</h3>
<p><span class="speaker">JOHANN.</span>Guten Tag</p>
</div></body></html>`

	noContainerPage = `<html><body><div id="other"><p>Kein Drama</p></div></body></html>`
)

// testNow is the fixed clock of testEnv.
var testNow = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

// mapFetcher serves pages from a map and answers 404 for unknown URLs.
type mapFetcher struct {
	pages  map[string]string
	closed atomic.Bool
}

func (f *mapFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, ok := f.pages[url]
	if !ok {
		return nil, &fetch.StatusError{Code: 404, Status: "404 Not Found"}
	}
	return []byte(p), nil
}

func (f *mapFetcher) Close() error {
	f.closed.Store(true)
	return nil
}

// testEnv returns an environment with buffered output, a fixed clock and
// remote pages served by f.
func testEnv(f fetch.Fetcher) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	env := &Environment{
		Now:    func() time.Time { return testNow },
		Stdout: stdout,
		Stderr: stderr,
		NewFetcher: func(config.FetchConfig) (fetch.Fetcher, error) {
			return f, nil
		},
	}
	return env, stdout, stderr
}

// weberSite serves the two Weber pages under https://example.org/weber/.
func weberSite() *mapFetcher {
	return &mapFetcher{pages: map[string]string{
		"https://example.org/weber/1": weberPage1,
		"https://example.org/weber/2": weberPage2,
	}}
}

// writeFile writes content to dir/name and returns the path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

// readFile returns the content of path or fails the test.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path) // #nosec G304 -- test path
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}
