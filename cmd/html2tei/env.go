package main

import (
	"io"
	"os"
	"time"

	"github.com/alnah/go-html2tei/internal/config"
	"github.com/alnah/go-html2tei/internal/fetch"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, time and the page source for remote dramas.
type Environment struct {
	Now        func() time.Time
	Stdout     io.Writer
	Stderr     io.Writer
	NewFetcher func(cfg config.FetchConfig) (fetch.Fetcher, error)
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:        time.Now,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		NewFetcher: newRemoteFetcher,
	}
}

// newRemoteFetcher returns a headless-browser fetcher when cfg.Browser is
// set, a rate-limited HTTP fetcher otherwise.
func newRemoteFetcher(cfg config.FetchConfig) (fetch.Fetcher, error) {
	timeout, err := cfg.TimeoutDuration()
	if err != nil {
		return nil, err
	}
	if cfg.Browser {
		return fetch.NewBrowserFetcher(timeout), nil
	}
	return fetch.NewHTTPFetcher(timeout,
		fetch.WithRateLimit(cfg.Rate, fetch.DefaultBurst),
		fetch.WithUserAgent(cfg.UserAgent),
	), nil
}
