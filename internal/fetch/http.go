package fetch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/net/html/charset"
	"golang.org/x/time/rate"
)

// Defaults for HTTPFetcher.
const (
	DefaultTimeout   = 30 * time.Second
	DefaultRate      = 2.0 // requests per second
	DefaultBurst     = 1
	DefaultUserAgent = "go-html2tei (+https://github.com/alnah/go-html2tei)"
)

// HTTPFetcher fetches pages with plain HTTP GET requests. Requests share one
// token bucket so parallel fetches stay polite to the source site.
type HTTPFetcher struct {
	client    *http.Client
	limiter   *rate.Limiter
	userAgent string
}

// HTTPOption configures an HTTPFetcher.
type HTTPOption func(*HTTPFetcher)

// WithHTTPClient replaces the default client. Its timeout is used as is.
func WithHTTPClient(c *http.Client) HTTPOption {
	return func(f *HTTPFetcher) {
		if c != nil {
			f.client = c
		}
	}
}

// WithRateLimit sets the sustained request rate and burst size.
// A rate <= 0 disables limiting.
func WithRateLimit(perSecond float64, burst int) HTTPOption {
	return func(f *HTTPFetcher) {
		if burst < 1 {
			burst = 1
		}
		limit := rate.Limit(perSecond)
		if perSecond <= 0 {
			limit = rate.Inf
		}
		f.limiter = rate.NewLimiter(limit, burst)
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) HTTPOption {
	return func(f *HTTPFetcher) {
		if ua != "" {
			f.userAgent = ua
		}
	}
}

// NewHTTPFetcher creates an HTTPFetcher with the given per-request timeout.
// A timeout <= 0 uses DefaultTimeout.
func NewHTTPFetcher(timeout time.Duration, opts ...HTTPOption) *HTTPFetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	f := &HTTPFetcher{
		client:    &http.Client{Timeout: timeout},
		limiter:   rate.NewLimiter(rate.Limit(DefaultRate), DefaultBurst),
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch downloads url and returns the body decoded to UTF-8. The charset is
// taken from the Content-Type header, a BOM or a <meta> declaration.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}

	body, err := readLimited(resp.Body)
	if err != nil {
		return nil, err
	}
	return decodeUTF8(body, resp.Header.Get("Content-Type"))
}

// Close is a no-op; idle connections are left to the client.
func (f *HTTPFetcher) Close() error {
	return nil
}

// StatusError reports an HTTP error status. It matches ErrFetchStatus with
// errors.Is.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%v: %s", ErrFetchStatus, e.Status)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrFetchStatus
}

// readLimited reads r up to MaxPageSize bytes.
func readLimited(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxPageSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading page: %w", err)
	}
	if len(data) > MaxPageSize {
		return nil, ErrPageTooLarge
	}
	return data, nil
}

// decodeUTF8 converts data to UTF-8. An empty contentType makes the
// encoding be sniffed from the content.
func decodeUTF8(data []byte, contentType string) ([]byte, error) {
	r, err := charset.NewReader(bytes.NewReader(data), contentType)
	if err != nil {
		return nil, fmt.Errorf("decoding page: %w", err)
	}
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("decoding page: %w", err)
	}
	return out, nil
}
